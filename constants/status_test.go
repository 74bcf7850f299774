package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStatusTransitions(t *testing.T) {
	assert.True(t, FileProcessing.CanTransition(FileCompleted))
	assert.True(t, FileProcessing.CanTransition(FileFailed))

	assert.False(t, FileProcessing.CanTransition(FileProcessing))
	assert.False(t, FileCompleted.CanTransition(FileFailed))
	assert.False(t, FileCompleted.CanTransition(FileProcessing))
	assert.False(t, FileFailed.CanTransition(FileCompleted))

	assert.False(t, FileProcessing.Terminal())
	assert.True(t, FileCompleted.Terminal())
	assert.True(t, FileFailed.Terminal())
}

func TestMapExtToFormat(t *testing.T) {
	cases := map[string]FileFormat{
		".pdf":  PDF,
		"PDF":   PDF,
		".PNG":  IMAGE,
		"jpg":   IMAGE,
		"jpeg":  IMAGE,
		".xlsx": SHEET,
		"xml":   ECXML,
		"ecxml": ECXML,
		"docx":  "",
		"":      "",
	}
	for ext, want := range cases {
		assert.Equal(t, want, MapExtToFormat(ext), ext)
	}
}
