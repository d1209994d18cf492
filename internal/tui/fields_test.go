package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayText(t *testing.T) {
	assert.Equal(t, "a    b\nc", displayText("a\tb\r\x01c"))
	assert.Equal(t, "", displayText(""))
}

func TestMergeEdit(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		before string
		after  string
		want   string
	}{
		{"append after tab", "a\tb", "a    b", "a    bc", "a\tbc"},
		{"insert before tab", "a\tb", "a    b", "ax    b", "ax\tb"},
		{"newline at end", "a\tb", "a    b", "a    b\n", "a\tb\n"},
		{"delete last rune", "a\tb", "a    b", "a    ", "a\t"},
		{"delete inside a tab", "a\tb", "a    b", "a   b", "a   b"},
		{"plain text", "ab", "ab", "a b", "a b"},
		{"out of sync takes the new value", "x", "y", "yz", "yz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeEdit(tt.raw, tt.before, tt.after))
		})
	}
}
