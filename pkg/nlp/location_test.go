package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSelectedOnly(t *testing.T) {
	r := NewLocationResolver()

	res := r.Resolve("", "Dallas, TX", "")
	assert.Equal(t, "Dallas, TX", res.Final)
	assert.False(t, res.Conflict)
	assert.Contains(t, res.Rationale, "selected by customer")
}

func TestResolveSelectedConfirmedByText(t *testing.T) {
	r := NewLocationResolver()

	res := r.Resolve("need 20 chairs delivered in dallas this weekend", "Dallas, TX", "")
	assert.Equal(t, "Dallas, TX", res.Final)
	assert.Equal(t, "Dallas, TX", res.FreeText)
	assert.False(t, res.Conflict)
	assert.Contains(t, res.Rationale, "confirmed by customer request")
}

func TestResolveConflict(t *testing.T) {
	r := NewLocationResolver()

	res := r.Resolve("setup in houston for a corporate event", "Dallas, TX", "")
	assert.Equal(t, "Dallas, TX", res.Final)
	assert.Equal(t, "Houston", res.FreeText)
	assert.True(t, res.Conflict)
	assert.Contains(t, res.ConflictMessage, "Location mismatch")
	assert.Contains(t, res.Rationale, "please confirm")
}

func TestResolveFreeTextOnly(t *testing.T) {
	r := NewLocationResolver()

	res := r.Resolve("tables for a wedding in fort worth", "", "")
	assert.Equal(t, "Fort Worth, TX", res.Final)
	assert.False(t, res.Conflict)
}

func TestResolvePostalCodeFallback(t *testing.T) {
	r := NewLocationResolver()

	res := r.Resolve("just 10 chairs please", "", "75001")
	assert.Equal(t, "ZIP 75001", res.Final)
	assert.Contains(t, res.Rationale, "postal code 75001")
}

func TestResolveNothingProvided(t *testing.T) {
	r := NewLocationResolver()

	res := r.Resolve("just 10 chairs please", "", "")
	assert.Equal(t, "Unknown / Not provided", res.Final)
	assert.False(t, res.Conflict)
}

func TestExtractKnownAliases(t *testing.T) {
	r := NewLocationResolver()

	cases := map[string]string{
		"delivery to ft. worth please":       "Fort Worth, TX",
		"we are in the dallas metro area":    "Dallas, TX",
		"party in southlake tx":              "Southlake, TX",
		"our venue is near Austin":           "Austin",
		"event at Oklahoma City next friday": "Oklahoma City",
	}
	for text, want := range cases {
		assert.Equal(t, want, r.extractFromText(text), text)
	}
}

func TestLocationsMatch(t *testing.T) {
	r := NewLocationResolver()

	assert.True(t, r.locationsMatch("dallas", "Dallas, TX"))
	assert.True(t, r.locationsMatch("Dallas metro area", "Dallas, TX"))
	assert.True(t, r.locationsMatch("ft worth", "Fort Worth, TX"))
	assert.True(t, r.locationsMatch("North Plano", "Plano, TX"))
	assert.False(t, r.locationsMatch("Houston", "Dallas, TX"))
	assert.False(t, r.locationsMatch("", "Dallas, TX"))
}
