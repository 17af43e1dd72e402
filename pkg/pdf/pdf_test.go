package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RentalCopilot/internal/entity"
)

func TestRenderQuote(t *testing.T) {
	r := New("Acme Rentals")

	doc := QuoteDocument{
		RunID: "01J5TESTRUN",
		Days:  3,
		Quote: entity.Quote{
			Currency: "USD",
			Items: []entity.QuoteLine{
				{SKU: "CHAIR-FOLD-WHT", Name: "White Folding Chair", Qty: 20, Days: 3, DailyRate: 2.25, UnitPrice: 6.75, Subtotal: 135.00},
			},
			Subtotal: 384.75,
			Fees: []entity.QuoteFee{
				{Name: entity.FeeDamageWaiver, Amount: 38.48},
				{Name: entity.FeeDelivery, Amount: 35.00},
			},
			Tax:   43.53,
			Total: 501.76,
		},
		Summary: "Three day rental covering chairs and tables.",
	}

	out, err := r.RenderQuote(doc)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// %PDF header
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderQuoteNoItems(t *testing.T) {
	r := New("")

	out, err := r.RenderQuote(QuoteDocument{RunID: "empty", Quote: entity.Quote{Currency: "USD"}})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
