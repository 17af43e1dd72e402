package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDuration(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		fallback int
		want     int
	}{
		{"explicit days", "need chairs for 5 days", 3, 5},
		{"hyphenated day", "a 2-day wedding", 3, 2},
		{"day singular", "scissor lift for 1 day", 3, 1},
		{"weekend", "tables for a weekend party", 1, 3},
		{"friday through sunday", "friday through sunday event", 1, 3},
		{"friday to sunday", "setup friday to sunday", 1, 3},
		{"week", "rent a generator for a week", 3, 7},
		{"month", "scaffolding for a month", 3, 30},
		{"numeric beats keyword", "10 days over the weekend", 3, 10},
		{"weekend is not week", "weekend setup", 1, 3},
		{"no hint uses fallback", "20 chairs and 4 tables", 3, 3},
		{"fallback floored at one", "20 chairs", 0, 1},
		{"case insensitive", "Friday THROUGH Sunday", 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDuration(tt.message, tt.fallback))
		})
	}
}
