package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentChanged(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		current  string
		want     bool
	}{
		{"identical content", "hello world", "hello world", false},
		{"different content", "hello world", "goodbye world", true},
		{"surrounding whitespace is ignored", "  hello world\n", "hello world", false},
		{"interior whitespace matters", "hello  world", "hello world", true},
		{"empty to non-empty", "", "something", true},
		{"both empty", "", "  \n ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentChanged(tt.previous, tt.current))
		})
	}
}
