package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("workspace_id", "not-a-uuid", Required, UUID).
		Field("actor_id", "", Required)

	assert.True(t, v.HasErrors())
	msg := v.ErrorMessage()
	assert.Contains(t, msg, "workspace_id")
	assert.Contains(t, msg, "actor_id")

	err := ValidateAndReturnError(v)
	assert.Error(t, err)
}

func TestValidatorPasses(t *testing.T) {
	v := NewValidator().
		Field("workspace_id", "7b2f1a44-9c1e-4a31-8d7e-0a8f6f0a9b10", Required, UUID).
		Field("filename", "statement.pdf", Required, SupportedExtension)

	assert.False(t, v.HasErrors())
	assert.NoError(t, ValidateAndReturnError(v))
}

func TestSupportedExtension(t *testing.T) {
	ok := []string{"a.pdf", "b.PNG", "c.jpg", "d.jpeg", "e.xlsx", "f.xml", "g.ecxml", "dir/h.PDF"}
	for _, name := range ok {
		assert.Nil(t, SupportedExtension("filename", name), name)
	}

	bad := []string{"a.docx", "b.txt", "noext", "c.pdf.exe"}
	for _, name := range bad {
		assert.NotNil(t, SupportedExtension("filename", name), name)
	}
}

func TestMaxLength(t *testing.T) {
	assert.Nil(t, MaxLength("actor_id", "short", 64))
	assert.NotNil(t, MaxLength("actor_id", "toolong", 3))
	// non-strings are ignored rather than rejected
	assert.Nil(t, MaxLength("actor_id", 42, 3))
}
