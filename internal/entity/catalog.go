package entity

import "errors"

var (
	ErrNegativeRate    = errors.New("rate record has a negative amount")
	ErrPolicyMalformed = errors.New("pricing policy is malformed")
)

type InventoryItem struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Location  string `json:"location"`
	OnHand    int    `json:"on_hand"`
	Committed int    `json:"committed"`

	// DailyRate is joined in from the rates table on reads; zero when
	// the item has no rate on file.
	DailyRate float64 `json:"daily_rate"`
}

// Available is the uncommitted stock, floored at zero.
func (i *InventoryItem) Available() int {
	available := i.OnHand - i.Committed
	if available < 0 {
		return 0
	}
	return available
}

type RateRecord struct {
	SKU             string  `json:"sku"`
	Daily           float64 `json:"daily"`
	Weekly          float64 `json:"weekly"`
	Monthly         float64 `json:"monthly"`
	DamageWaiverPct float64 `json:"damage_waiver_pct"`
	DeliveryFeeBase float64 `json:"delivery_fee_base"`
}

func (r *RateRecord) Validate() error {
	if r.Daily < 0 || r.Weekly < 0 || r.Monthly < 0 ||
		r.DamageWaiverPct < 0 || r.DeliveryFeeBase < 0 {
		return ErrNegativeRate
	}
	return nil
}

type CustomerTier string

const (
	TierA CustomerTier = "A"
	TierB CustomerTier = "B"
	TierC CustomerTier = "C"
)

func IsValidTier(tier string) bool {
	switch CustomerTier(tier) {
	case TierA, TierB, TierC:
		return true
	default:
		return false
	}
}

// PricingPolicy is process-wide pricing configuration loaded from the
// policy store at request time (and cached); it is never mutated by the
// pipeline itself.
type PricingPolicy struct {
	TaxRatePct             float64            `json:"tax_rate_pct"`
	TierDiscountPct        map[string]float64 `json:"tier_discount_pct"`
	DefaultDamageWaiverPct float64            `json:"default_damage_waiver_pct"`
	DefaultRentalDays      int                `json:"default_rental_days"`
	FallbackSKUs           []string           `json:"fallback_skus"`
}

func (p *PricingPolicy) Validate() error {
	if p.TaxRatePct < 0 || p.TierDiscountPct == nil {
		return ErrPolicyMalformed
	}
	if p.DefaultRentalDays < 1 {
		return ErrPolicyMalformed
	}
	return nil
}

// DiscountPct returns the discount for a tier, zero for unknown tiers.
func (p *PricingPolicy) DiscountPct(tier string) float64 {
	if p.TierDiscountPct == nil {
		return 0
	}
	return p.TierDiscountPct[tier]
}
