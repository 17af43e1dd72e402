package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantityParse(t *testing.T) {
	q := NewQuantityParser(DefaultWordNumbers())

	tests := []struct {
		in   string
		want int
	}{
		{"50 chairs", 50},
		{"5x tables", 5},
		{"qty 7 chairs", 7},
		{"qty: 12 linens", 12},
		{"fifty chairs", 50},
		{"twenty five chairs", 25},
		{"a dozen chairs", 12},
		{"half dozen mics", 6},
		{"a mixer", 1},
		{"an uplight", 1},
		{"one projector", 1},
		{"hundred chairs", 100},
		{"chairs", 1},
		{"", 1},
		// quantity tokens must sit clean at the front
		{"3.5 chairs", 1},
		{"-2 chairs", 1},
		{"chairs 50", 1},
		{"50x", 50},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, q.Parse(tt.in))
		})
	}
}

func TestQuantitySplit(t *testing.T) {
	q := NewQuantityParser(DefaultWordNumbers())

	qty, rest := q.Split("20 white folding chairs")
	assert.Equal(t, 20, qty)
	assert.Equal(t, "white folding chairs", rest)

	qty, rest = q.Split("twenty five folding chairs")
	assert.Equal(t, 25, qty)
	assert.Equal(t, "folding chairs", rest)

	qty, rest = q.Split("a dozen roses")
	assert.Equal(t, 12, qty)
	assert.Equal(t, "roses", rest)

	// no quantity token leaves the fragment untouched
	qty, rest = q.Split("folding chairs")
	assert.Equal(t, 1, qty)
	assert.Equal(t, "folding chairs", rest)

	// article alone is consumed
	qty, rest = q.Split("a generator")
	assert.Equal(t, 1, qty)
	assert.Equal(t, "generator", rest)
}
