package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcherExact(t *testing.T) {
	m := NewMatcher(DefaultSynonyms(), MatcherConfig{})

	sku, confidence := m.Match("white folding chairs")
	assert.Equal(t, "CHAIR-FOLD-WHT", sku)
	assert.Equal(t, 1.0, confidence)

	// normalization makes the size notations equivalent
	for _, phrase := range []string{`60" round table`, "60-inch round tables", "60in round table"} {
		sku, confidence = m.Match(phrase)
		assert.Equal(t, "TABLE-60RND", sku, phrase)
		assert.Equal(t, 1.0, confidence, phrase)
	}
}

func TestMatcherContains(t *testing.T) {
	m := NewMatcher(DefaultSynonyms(), MatcherConfig{})

	sku, confidence := m.Match("shiny white folding chairs for the patio")
	assert.Equal(t, "CHAIR-FOLD-WHT", sku)
	assert.Greater(t, confidence, 0.85)

	// the longest contained key wins over the bare "table" key
	sku, _ = m.Match("sturdy 8 foot banquet tables please")
	assert.Equal(t, "TABLE-8FT-RECT", sku)

}

func TestMatcherContainsWholeWordsOnly(t *testing.T) {
	// high threshold keeps the fuzzy strategy out of the way
	m := NewMatcher(SynonymTable{"chair": {"SKU-C"}}, MatcherConfig{Threshold: 0.95})

	sku, _ := m.Match("chairman of the board")
	assert.Empty(t, sku, "substring inside a word is not containment")

	sku, confidence := m.Match("stackable chair rental")
	assert.Equal(t, "SKU-C", sku)
	assert.InDelta(t, 0.95, confidence, 1e-12)
}

func TestMatcherFuzzyTypo(t *testing.T) {
	m := NewMatcher(DefaultSynonyms(), MatcherConfig{})

	sku, confidence := m.Match("chiavarri")
	assert.Equal(t, "CHAIR-CHIAVARI", sku)
	assert.GreaterOrEqual(t, confidence, m.Threshold())
	assert.Less(t, confidence, 1.0)
}

func TestMatcherThresholdBoundary(t *testing.T) {
	table := SynonymTable{"abcd": {"SKU-1"}}

	// DiceCoefficient("abcf","abcd") is exactly 2/3
	atBoundary := NewMatcher(table, MatcherConfig{Threshold: 2.0 / 3.0})
	sku, confidence := atBoundary.Match("abcf")
	assert.Equal(t, "SKU-1", sku, "score equal to threshold is accepted")
	assert.InDelta(t, 2.0/3.0, confidence, 1e-12)

	aboveBoundary := NewMatcher(table, MatcherConfig{Threshold: 0.7})
	sku, confidence = aboveBoundary.Match("abcf")
	assert.Empty(t, sku)
	// the best sub-threshold score still comes back for diagnostics
	assert.InDelta(t, 2.0/3.0, confidence, 1e-12)
}

func TestMatcherNoCandidate(t *testing.T) {
	m := NewMatcher(DefaultSynonyms(), MatcherConfig{})

	sku, _ := m.Match("zzzzqqqq")
	assert.Empty(t, sku)

	sku, confidence := m.Match("   ")
	assert.Empty(t, sku)
	assert.Equal(t, 0.0, confidence)
}

func TestMatcherDeterminism(t *testing.T) {
	m := NewMatcher(DefaultSynonyms(), MatcherConfig{})

	firstSKU, firstConfidence := m.Match("foldin chars")
	for i := 0; i < 50; i++ {
		sku, confidence := m.Match("foldin chars")
		assert.Equal(t, firstSKU, sku)
		assert.Equal(t, firstConfidence, confidence)
	}
}

func TestMatcherFallbackTieBreak(t *testing.T) {
	table := SynonymTable{
		"abcx": {"SKU-PLAIN"},
		"abcy": {"SKU-FALLBACK"},
	}
	m := NewMatcher(table, MatcherConfig{
		Threshold:    0.5,
		FallbackSKUs: []string{"SKU-FALLBACK"},
	})

	// "abcz" scores the same against both keys; the fallback SKU wins
	sku, _ := m.Match("abcz")
	assert.Equal(t, "SKU-FALLBACK", sku)
}

func TestMatcherDefaultThreshold(t *testing.T) {
	m := NewMatcher(DefaultSynonyms(), MatcherConfig{})
	assert.Equal(t, DefaultThreshold, m.Threshold())
}
