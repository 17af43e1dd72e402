package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	matcher := NewMatcher(DefaultSynonyms(), MatcherConfig{})
	return NewParser(matcher, NewQuantityParser(DefaultWordNumbers()))
}

func TestParseTypicalRequest(t *testing.T) {
	p := newTestParser()

	items := p.Parse(`I need 20 white folding chairs and 4 60" round tables for a weekend wedding`)
	require.Len(t, items, 2)

	assert.Equal(t, "CHAIR-FOLD-WHT", items[0].SKU)
	assert.Equal(t, 20, items[0].Quantity)
	assert.True(t, items[0].Matched)

	assert.Equal(t, "TABLE-60RND", items[1].SKU)
	assert.Equal(t, 4, items[1].Quantity)
}

func TestParseCommaAndSemicolonSegments(t *testing.T) {
	p := newTestParser()

	items := p.Parse("50 chairs, 10 banquet tables; 2 wireless mics")
	require.Len(t, items, 3)
	assert.Equal(t, "CHAIR-FOLD-WHT", items[0].SKU)
	assert.Equal(t, 50, items[0].Quantity)
	assert.Equal(t, "TABLE-8FT-RECT", items[1].SKU)
	assert.Equal(t, 10, items[1].Quantity)
	assert.Equal(t, "MIC-WIRELESS-HH", items[2].SKU)
	assert.Equal(t, 2, items[2].Quantity)
}

func TestParseSpelledQuantities(t *testing.T) {
	p := newTestParser()

	items := p.Parse("fifty folding chairs and a dozen uplights")
	require.Len(t, items, 2)
	assert.Equal(t, 50, items[0].Quantity)
	assert.Equal(t, "CHAIR-FOLD-WHT", items[0].SKU)
	assert.Equal(t, 12, items[1].Quantity)
	assert.Equal(t, "LIGHT-UPLIGHT-LED", items[1].SKU)
}

func TestParseKeepsUnmatchedItems(t *testing.T) {
	p := newTestParser()

	items := p.Parse("20 chairs and 3 zzqqxx widgets")
	require.Len(t, items, 2)

	assert.True(t, items[0].Matched)
	assert.False(t, items[1].Matched)
	assert.Empty(t, items[1].SKU)
	assert.Equal(t, 3, items[1].Quantity)
	assert.Equal(t, "zzqqxx widgets", items[1].UnmatchedName)
}

func TestParseDedupeKeepsHighestConfidence(t *testing.T) {
	p := newTestParser()

	// "folding chairs" is an exact synonym hit, "foldin chair" a weaker
	// containment hit; the stronger occurrence survives at the position
	// of the first hit
	items := p.Parse("foldin chair, 30 folding chairs")
	require.Len(t, items, 1)
	assert.Equal(t, "CHAIR-FOLD-WHT", items[0].SKU)
	assert.Equal(t, 30, items[0].Quantity)
	assert.Equal(t, 1.0, items[0].Confidence)
}

func TestParseDedupeFirstWinsOnTie(t *testing.T) {
	p := newTestParser()

	items := p.Parse("chairs, 10 chairs")
	require.Len(t, items, 1)
	assert.Equal(t, "CHAIR-FOLD-WHT", items[0].SKU)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestParsePreservesOrder(t *testing.T) {
	p := newTestParser()

	items := p.Parse("1 projector, 2 screens, 3 speakers, 4 mixers")
	require.Len(t, items, 4)
	want := []string{"PROJECTOR-4K", "SCREEN-PROJ-120", "SPEAKER-PA-BASIC", "MIXER-8CH"}
	for i, sku := range want {
		assert.Equal(t, sku, items[i].SKU)
		assert.Equal(t, i+1, items[i].Quantity)
	}
}

func TestParseBareQuantitySegment(t *testing.T) {
	p := newTestParser()

	// a segment that is only a number is not an item
	items := p.Parse("20")
	require.Len(t, items, 1)
	assert.False(t, items[0].Matched)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestParseEmptyMessage(t *testing.T) {
	p := newTestParser()

	assert.Empty(t, p.Parse(""))
	assert.Empty(t, p.Parse("   "))
}

func TestParseIntentPrefixStripped(t *testing.T) {
	p := newTestParser()

	for _, msg := range []string{
		"i need 20 chairs",
		"looking for 20 chairs",
		"give me 20 chairs",
		"order 20 chairs",
	} {
		items := p.Parse(msg)
		require.Len(t, items, 1, msg)
		assert.Equal(t, "CHAIR-FOLD-WHT", items[0].SKU, msg)
		assert.Equal(t, 20, items[0].Quantity, msg)
	}
}
