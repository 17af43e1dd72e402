package entity

// QuoteLine is one priced line of a quote. UnitPrice is the per-unit
// charge for the whole rental window (daily rate times days), Subtotal
// is UnitPrice times Qty.
type QuoteLine struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Days      int     `json:"days"`
	DailyRate float64 `json:"dailyRate"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

type QuoteFee struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Quote is the priced result returned to callers. Subtotal is the raw
// sum of line subtotals before any discount; Discount is the tier
// discount amount taken off it. Tax applies to the discounted subtotal
// plus all fees.
type Quote struct {
	Currency string      `json:"currency"`
	Items    []QuoteLine `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Discount float64     `json:"discount"`
	Fees     []QuoteFee  `json:"fees"`
	Tax      float64     `json:"tax"`
	Total    float64     `json:"total"`
}

const (
	FeeDamageWaiver = "Damage Waiver"
	FeeDelivery     = "Delivery"
)

// FeeAmount returns the named fee's amount, zero when absent.
func (q *Quote) FeeAmount(name string) float64 {
	for _, fee := range q.Fees {
		if fee.Name == name {
			return fee.Amount
		}
	}
	return 0
}
