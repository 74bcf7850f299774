package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"bills": []}`, `{"bills": []}`},
		{"json fence", "```json\n{\"bills\": []}\n```", `{"bills": []}`},
		{"bare fence", "```\n{\"bills\": []}\n```", `{"bills": []}`},
		{"leading whitespace", "  \n```json\n{}\n```  ", "{}"},
		{"no closing fence", "```json\n{}", "{}"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFences(tc.in))
		})
	}
}
