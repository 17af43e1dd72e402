package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RentalCopilot/internal/entity"
	"RentalCopilot/pkg/nlp"
)

func testPolicy() entity.PricingPolicy {
	return entity.PricingPolicy{
		TaxRatePct:             9.5,
		TierDiscountPct:        map[string]float64{"A": 10, "B": 5, "C": 0},
		DefaultDamageWaiverPct: 0,
		DefaultRentalDays:      3,
	}
}

func testRates() map[string]entity.RateRecord {
	return map[string]entity.RateRecord{
		"CHAIR-FOLD-WHT": {SKU: "CHAIR-FOLD-WHT", Daily: 2.25, DeliveryFeeBase: 15},
		"TABLE-60RND":    {SKU: "TABLE-60RND", Daily: 11.25, DeliveryFeeBase: 25},
		"SPEAKER-PA-PRO": {SKU: "SPEAKER-PA-PRO", Daily: 45, DamageWaiverPct: 10, DeliveryFeeBase: 35},
	}
}

func matched(sku string, qty int) nlp.ParsedLineItem {
	return nlp.ParsedLineItem{SKU: sku, Quantity: qty, Confidence: 1, Matched: true}
}

func TestComputeFullChain(t *testing.T) {
	quote, err := Compute(Input{
		Items: []nlp.ParsedLineItem{
			matched("CHAIR-FOLD-WHT", 20),
			matched("TABLE-60RND", 4),
			matched("SPEAKER-PA-PRO", 1),
		},
		Days:   3,
		Tier:   "B",
		Rates:  testRates(),
		Policy: testPolicy(),
	})
	require.NoError(t, err)

	// goods total before discount stays on the quote as-is
	assert.Equal(t, 405.00, quote.Subtotal)
	// 5% tier discount on 405.00
	assert.Equal(t, 20.25, quote.Discount)
	// waiver is 10% of the discounted subtotal (384.75)
	assert.Equal(t, 38.48, quote.FeeAmount(entity.FeeDamageWaiver))
	// delivery is the max base across items, not a sum
	assert.Equal(t, 35.00, quote.FeeAmount(entity.FeeDelivery))
	assert.Equal(t, 43.53, quote.Tax)
	assert.Equal(t, 501.76, quote.Total)
	assert.Equal(t, "USD", quote.Currency)

	require.Len(t, quote.Items, 3)
	chairs := quote.Items[0]
	assert.Equal(t, "CHAIR-FOLD-WHT", chairs.SKU)
	assert.Equal(t, 20, chairs.Qty)
	assert.Equal(t, 3, chairs.Days)
	assert.Equal(t, 2.25, chairs.DailyRate)
	assert.Equal(t, 6.75, chairs.UnitPrice)
	assert.Equal(t, 135.00, chairs.Subtotal)
}

func TestComputeNoItems(t *testing.T) {
	_, err := Compute(Input{Policy: testPolicy()})
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestComputeOnlyUnmatchedItems(t *testing.T) {
	_, err := Compute(Input{
		Items:  []nlp.ParsedLineItem{{RawText: "unicorn", Quantity: 2}},
		Rates:  testRates(),
		Policy: testPolicy(),
	})
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestComputeRateMissing(t *testing.T) {
	_, err := Compute(Input{
		Items:  []nlp.ParsedLineItem{matched("TENT-20x20", 1)},
		Rates:  testRates(),
		Policy: testPolicy(),
	})
	assert.ErrorIs(t, err, ErrRateMissing)
	assert.Contains(t, err.Error(), "TENT-20x20")
}

func TestComputeNegativeRateRejected(t *testing.T) {
	rates := testRates()
	rec := rates["CHAIR-FOLD-WHT"]
	rec.Daily = -1
	rates["CHAIR-FOLD-WHT"] = rec

	_, err := Compute(Input{
		Items:  []nlp.ParsedLineItem{matched("CHAIR-FOLD-WHT", 1)},
		Rates:  rates,
		Policy: testPolicy(),
	})
	assert.ErrorIs(t, err, entity.ErrNegativeRate)
}

func TestComputeDaysFallback(t *testing.T) {
	quote, err := Compute(Input{
		Items:  []nlp.ParsedLineItem{matched("CHAIR-FOLD-WHT", 10)},
		Days:   0,
		Tier:   "C",
		Rates:  testRates(),
		Policy: testPolicy(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, quote.Items[0].Days)
	assert.Equal(t, 67.50, quote.Subtotal)
}

func TestComputeUnknownTierNoDiscount(t *testing.T) {
	quote, err := Compute(Input{
		Items:  []nlp.ParsedLineItem{matched("CHAIR-FOLD-WHT", 10)},
		Days:   2,
		Tier:   "Z",
		Rates:  testRates(),
		Policy: testPolicy(),
	})
	require.NoError(t, err)
	assert.Equal(t, 45.00, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Discount)
}

func TestComputeDefaultWaiverFromPolicy(t *testing.T) {
	policy := testPolicy()
	policy.DefaultDamageWaiverPct = 8
	policy.TaxRatePct = 0

	quote, err := Compute(Input{
		Items:  []nlp.ParsedLineItem{matched("CHAIR-FOLD-WHT", 10)},
		Days:   2,
		Tier:   "C",
		Rates:  testRates(),
		Policy: policy,
	})
	require.NoError(t, err)
	// 45.00 * 8% = 3.60
	assert.Equal(t, 3.60, quote.FeeAmount(entity.FeeDamageWaiver))
}

func TestComputeZeroQuantityTreatedAsOne(t *testing.T) {
	quote, err := Compute(Input{
		Items:  []nlp.ParsedLineItem{matched("CHAIR-FOLD-WHT", 0)},
		Days:   1,
		Tier:   "C",
		Rates:  testRates(),
		Policy: testPolicy(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, quote.Items[0].Qty)
}

func TestComputeMalformedPolicy(t *testing.T) {
	_, err := Compute(Input{
		Items:  []nlp.ParsedLineItem{matched("CHAIR-FOLD-WHT", 1)},
		Rates:  testRates(),
		Policy: entity.PricingPolicy{TaxRatePct: -1},
	})
	assert.ErrorIs(t, err, entity.ErrPolicyMalformed)
}

func TestApplyGoodwill(t *testing.T) {
	quote := &entity.Quote{Total: 501.76, Tax: 43.53}
	credit := ApplyGoodwill(quote, 10)
	assert.Equal(t, 50.18, credit)
	assert.Equal(t, 451.58, quote.Total)
	// the taxed base is untouched
	assert.Equal(t, 43.53, quote.Tax)

	assert.Equal(t, 0.0, ApplyGoodwill(nil, 10))
	assert.Equal(t, 0.0, ApplyGoodwill(quote, 0))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 38.48, RoundCents(38.475))
	assert.Equal(t, 43.53, RoundCents(43.53185))
	assert.Equal(t, -1.24, RoundCents(-1.235))
	assert.Equal(t, 2.00, RoundCents(1.999999))
}
