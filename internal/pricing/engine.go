package pricing

import (
	"errors"
	"fmt"
	"math"

	"RentalCopilot/internal/entity"
	"RentalCopilot/pkg/nlp"
)

var (
	ErrNoItems     = errors.New("no items to price")
	ErrRateMissing = errors.New("no rate record for sku")
)

// Input carries everything Compute needs; it holds no connections and
// no clocks, so pricing stays deterministic and testable in isolation.
type Input struct {
	Items     []nlp.ParsedLineItem
	Days      int
	Tier      string
	Rates     map[string]entity.RateRecord
	Inventory map[string]entity.InventoryItem
	Policy    entity.PricingPolicy
	Currency  string
}

// Compute prices a parsed request. The order is fixed: per-line goods
// subtotal, tier discount on the goods subtotal, damage waiver and
// delivery computed from the discounted figure, tax on the discounted
// subtotal plus fees. The published Subtotal is the raw sum of line
// subtotals; the discount is reported separately. Every monetary value
// is rounded to cents as it is produced.
func Compute(in Input) (*entity.Quote, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	if err := in.Policy.Validate(); err != nil {
		return nil, err
	}

	days := in.Days
	if days < 1 {
		days = in.Policy.DefaultRentalDays
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}

	lines := make([]entity.QuoteLine, 0, len(in.Items))
	var subtotal float64
	var waiverPctMax float64
	var deliveryMax float64

	for _, item := range in.Items {
		if !item.Matched {
			continue
		}
		rate, ok := in.Rates[item.SKU]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrRateMissing, item.SKU)
		}
		if err := rate.Validate(); err != nil {
			return nil, err
		}

		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		unitPrice := RoundCents(rate.Daily * float64(days))
		lineSubtotal := RoundCents(unitPrice * float64(qty))
		subtotal = RoundCents(subtotal + lineSubtotal)

		name := item.SKU
		if inv, ok := in.Inventory[item.SKU]; ok && inv.Name != "" {
			name = inv.Name
		}

		lines = append(lines, entity.QuoteLine{
			SKU:       item.SKU,
			Name:      name,
			Qty:       qty,
			Days:      days,
			DailyRate: rate.Daily,
			UnitPrice: unitPrice,
			Subtotal:  lineSubtotal,
		})

		waiverPct := rate.DamageWaiverPct
		if waiverPct == 0 {
			waiverPct = in.Policy.DefaultDamageWaiverPct
		}
		if waiverPct > waiverPctMax {
			waiverPctMax = waiverPct
		}
		if rate.DeliveryFeeBase > deliveryMax {
			deliveryMax = rate.DeliveryFeeBase
		}
	}

	if len(lines) == 0 {
		return nil, ErrNoItems
	}

	discountPct := in.Policy.DiscountPct(in.Tier)
	discounted := RoundCents(subtotal * (1 - discountPct/100))
	discount := RoundCents(subtotal - discounted)

	fees := make([]entity.QuoteFee, 0, 2)
	var feeTotal float64
	if waiverPctMax > 0 {
		waiver := RoundCents(discounted * waiverPctMax / 100)
		fees = append(fees, entity.QuoteFee{Name: entity.FeeDamageWaiver, Amount: waiver})
		feeTotal = RoundCents(feeTotal + waiver)
	}
	if deliveryMax > 0 {
		delivery := RoundCents(deliveryMax)
		fees = append(fees, entity.QuoteFee{Name: entity.FeeDelivery, Amount: delivery})
		feeTotal = RoundCents(feeTotal + delivery)
	}

	taxable := RoundCents(discounted + feeTotal)
	tax := RoundCents(taxable * in.Policy.TaxRatePct / 100)
	total := RoundCents(taxable + tax)

	if total < 0 {
		panic(fmt.Sprintf("pricing produced a negative total: %.2f", total))
	}

	return &entity.Quote{
		Currency: currency,
		Items:    lines,
		Subtotal: subtotal,
		Discount: discount,
		Fees:     fees,
		Tax:      tax,
		Total:    total,
	}, nil
}

// ApplyGoodwill reduces the total by pct percent without touching the
// taxed base; used when low feedback ratings trigger a courtesy credit.
func ApplyGoodwill(q *entity.Quote, pct float64) float64 {
	if q == nil || pct <= 0 {
		return 0
	}
	credit := RoundCents(q.Total * pct / 100)
	q.Total = RoundCents(q.Total - credit)
	return credit
}

// RoundCents rounds half away from zero to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
