package quoteService

import (
	"RentalCopilot/internal/api/quote"
	quoteRepository "RentalCopilot/internal/api/quote/repository"
	"RentalCopilot/internal/entity"
	"RentalCopilot/pkg/nlp"
	"RentalCopilot/pkg/pdf"
	redisPkg "RentalCopilot/pkg/redis"
	"RentalCopilot/pkg/runstream"
	"RentalCopilot/pkg/utils"
	"context"
	"database/sql"
	"io"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	rates    map[string]entity.RateRecord
	policy   entity.PricingPolicy
	items    map[string]entity.InventoryItem
	runs     map[string]entity.QuoteRun
	steps    []entity.RunStep
	feedback map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rates: map[string]entity.RateRecord{
			"CHAIR-FOLD-WHT": {SKU: "CHAIR-FOLD-WHT", Daily: 2.25, DeliveryFeeBase: 15},
			"TABLE-60RND":    {SKU: "TABLE-60RND", Daily: 11.25, DeliveryFeeBase: 25},
			"SPEAKER-PA-PRO": {SKU: "SPEAKER-PA-PRO", Daily: 45, DamageWaiverPct: 10, DeliveryFeeBase: 35},
		},
		policy: entity.PricingPolicy{
			TaxRatePct:        9.5,
			TierDiscountPct:   map[string]float64{"A": 10, "B": 5, "C": 0},
			DefaultRentalDays: 3,
		},
		items: map[string]entity.InventoryItem{
			"CHAIR-FOLD-WHT": {SKU: "CHAIR-FOLD-WHT", Name: "White Folding Chair"},
			"TABLE-60RND":    {SKU: "TABLE-60RND", Name: `60" Round Table`},
		},
		runs:     map[string]entity.QuoteRun{},
		feedback: map[string]int{},
	}
}

func (f *fakeStore) NewClient(tx bool) (quoteRepository.Client, error) {
	return quoteRepository.Client{
		Rates:    f,
		Policies: f,
		Items:    &fakeItems{store: f},
		Runs:     f,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeStore) GetBySKUs(c context.Context, skus []string) (map[string]entity.RateRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]entity.RateRecord{}
	for _, sku := range skus {
		if rate, ok := f.rates[sku]; ok {
			out[sku] = rate
		}
	}
	return out, nil
}

func (f *fakeStore) GetActive(c context.Context) (entity.PricingPolicy, error) {
	return f.policy, nil
}

func (f *fakeStore) Insert(c context.Context, run entity.QuoteRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs[run.ID] = run
	return nil
}

func (f *fakeStore) InsertStep(c context.Context, step entity.RunStep) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.steps = append(f.steps, step)
	return nil
}

func (f *fakeStore) Finish(c context.Context, id string, status string, totalCents int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[id]
	if !ok {
		return sql.ErrNoRows
	}
	run.Status = status
	run.TotalCents = totalCents
	f.runs[id] = run
	return nil
}

func (f *fakeStore) GetByID(c context.Context, id string) (entity.QuoteRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[id]
	if !ok {
		return entity.QuoteRun{}, sql.ErrNoRows
	}
	return run, nil
}

func (f *fakeStore) HasFeedback(c context.Context, runID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.feedback[runID]
	return ok, nil
}

func (f *fakeStore) InsertFeedback(c context.Context, runID string, rating int, comment string, credit float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feedback[runID] = rating
	return nil
}

// fakeStore already has a GetBySKUs returning rates, so inventory
// lookups live on their own type.
type fakeItems struct{ store *fakeStore }

func (f *fakeItems) GetBySKUs(c context.Context, skus []string) (map[string]entity.InventoryItem, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	out := map[string]entity.InventoryItem{}
	for _, sku := range skus {
		if item, ok := f.store.items[sku]; ok {
			out[sku] = item
		}
	}
	return out, nil
}

func newTestService(t *testing.T, store *fakeStore) (IQuoteService, redisPkg.IRedis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := redisPkg.NewWithClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	parser := nlp.NewParser(
		nlp.NewMatcher(nlp.DefaultSynonyms(), nlp.MatcherConfig{}),
		nlp.NewQuantityParser(nlp.DefaultWordNumbers()),
	)

	svc := NewQuoteService(
		logger,
		store,
		parser,
		cache,
		nil,
		nil,
		nil,
		nil,
		nil,
		pdf.New("Test Rentals"),
		nil,
		runstream.NewBroker(),
		utils.New(),
	)

	return svc, cache
}

func TestRequestQuote(t *testing.T) {
	store := newFakeStore()
	svc, cache := newTestService(t, store)

	resp, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Message: "20 white folding chairs and 4 60 inch round tables for 3 days",
		Tier:    "B",
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "CHAIR-FOLD-WHT", resp.Items[0].SKU)
	assert.Equal(t, "White Folding Chair", resp.Items[0].Name)
	assert.Equal(t, 20, resp.Items[0].Qty)
	assert.Equal(t, "TABLE-60RND", resp.Items[1].SKU)
	assert.Equal(t, 4, resp.Items[1].Qty)
	assert.Equal(t, 3, resp.Days)

	// 270 gross, 5% tier discount, 25 delivery, 9.5% tax
	assert.Equal(t, 270.00, resp.Subtotal)
	assert.Equal(t, 13.50, resp.Discount)
	assert.Equal(t, 26.74, resp.Tax)
	assert.Equal(t, 308.24, resp.Total)
	assert.Empty(t, resp.Unmatched)

	run, ok := store.runs[resp.RunID]
	require.True(t, ok)
	assert.Equal(t, entity.RunStatusCompleted, run.Status)
	assert.Equal(t, int64(30824), run.TotalCents)
	assert.NotEmpty(t, store.steps)

	var snapshot quoteSnapshot
	require.NoError(t, cache.GetJSON(context.Background(), snapshotKey(resp.RunID), &snapshot))
	assert.Equal(t, resp.Total, snapshot.Quote.Total)
}

func TestRequestQuoteExplicitItems(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	resp, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Items: []quote.RequestItem{
			{SKU: "CHAIR-FOLD-WHT", Qty: 10},
			{SKU: "SPEAKER-PA-PRO"},
		},
		Tier: "C",
		Days: 2,
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "CHAIR-FOLD-WHT", resp.Items[0].SKU)
	assert.Equal(t, 10, resp.Items[0].Qty)
	assert.Equal(t, 1.0, resp.Items[0].Confidence)
	// qty omitted defaults to one
	assert.Equal(t, "SPEAKER-PA-PRO", resp.Items[1].SKU)
	assert.Equal(t, 1, resp.Items[1].Qty)
	assert.Equal(t, 1.0, resp.Items[1].Confidence)
	assert.Empty(t, resp.Unmatched)

	// 45.00 chairs + 90.00 speaker, no discount for tier C
	assert.Equal(t, 135.00, resp.Subtotal)
	assert.Equal(t, 0.0, resp.Discount)
}

func TestRequestQuoteExplicitItemsUnknownSKU(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	_, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Items: []quote.RequestItem{{SKU: "TENT-20x20", Qty: 1}},
		Tier:  "A",
		Days:  1,
	})
	assert.ErrorIs(t, err, quote.ErrRateNotFound)
}

func TestRequestQuoteWeekendScenario(t *testing.T) {
	store := newFakeStore()
	store.rates["CHAIR-FOLD-WHT"] = entity.RateRecord{SKU: "CHAIR-FOLD-WHT", Daily: 1.50, DeliveryFeeBase: 20}
	store.rates["TABLE-60RND"] = entity.RateRecord{SKU: "TABLE-60RND", Daily: 12.00, DamageWaiverPct: 10, DeliveryFeeBase: 35}
	svc, _ := newTestService(t, store)

	resp, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Message: "50 white folding chairs and 5 round tables for this weekend",
		Tier:    "B",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Days)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 50, resp.Items[0].Qty)
	assert.Equal(t, 225.00, resp.Items[0].Subtotal)
	assert.Equal(t, 5, resp.Items[1].Qty)
	assert.Equal(t, 180.00, resp.Items[1].Subtotal)

	// 405.00 gross, 5% tier discount leaves 384.75 for the fee base
	assert.Equal(t, 405.00, resp.Subtotal)
	assert.Equal(t, 20.25, resp.Discount)

	var waiver, delivery float64
	for _, fee := range resp.Fees {
		switch fee.Name {
		case entity.FeeDamageWaiver:
			waiver = fee.Amount
		case entity.FeeDelivery:
			delivery = fee.Amount
		}
	}
	assert.Equal(t, 38.48, waiver)
	assert.Equal(t, 35.00, delivery)

	assert.Equal(t, 43.53, resp.Tax)
	assert.Equal(t, 501.76, resp.Total)

	run := store.runs[resp.RunID]
	assert.Equal(t, int64(50176), run.TotalCents)
}

func TestRequestQuoteLocationConflict(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	resp, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Message:  "10 chairs for a party in houston",
		Tier:     "C",
		Location: "Dallas, TX",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dallas, TX", resp.Location.Final)
	assert.True(t, resp.Location.Conflict)
	assert.Contains(t, resp.Location.ConflictMessage, "Houston")
}

func TestRequestQuoteZipFallbackLocation(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	resp, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Message: "10 chairs please",
		Tier:    "C",
		Zip:     "75001",
	})
	require.NoError(t, err)

	assert.Equal(t, "ZIP 75001", resp.Location.Final)
	assert.False(t, resp.Location.Conflict)
}

func TestRequestQuoteKeepsUnmatched(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	resp, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Message: "10 chairs and 3 zzqqxx widgets",
		Tier:    "C",
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, []string{"zzqqxx widgets"}, resp.Unmatched)
}

func TestRequestQuoteNoItems(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	_, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Message: "hello, do you deliver on sundays?",
		Tier:    "A",
	})
	assert.ErrorIs(t, err, quote.ErrNoItemsRecognized)

	for _, run := range store.runs {
		assert.Equal(t, entity.RunStatusFailed, run.Status)
	}
}

func TestRequestQuoteRateMissing(t *testing.T) {
	store := newFakeStore()
	delete(store.rates, "TABLE-60RND")
	svc, _ := newTestService(t, store)

	_, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Message: "2 round tables for a week",
		Tier:    "A",
	})
	assert.ErrorIs(t, err, quote.ErrRateNotFound)
}

func TestRequestQuoteExplicitDates(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	resp, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Message:   "one pa system",
		Tier:      "C",
		StartDate: "2025-06-05",
		EndDate:   "2025-06-07",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Days)
}

func TestRequestQuoteInvalidDateRange(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	_, err := svc.RequestQuote(context.Background(), quote.QuoteRequest{
		Message:   "one pa system",
		Tier:      "C",
		StartDate: "2025-06-07",
		EndDate:   "2025-06-05",
	})
	assert.ErrorIs(t, err, quote.ErrInvalidDateRange)
}

func TestSubmitFeedback(t *testing.T) {
	store := newFakeStore()
	store.runs["01RUN"] = entity.QuoteRun{
		ID:         "01RUN",
		Status:     entity.RunStatusCompleted,
		TotalCents: 50176,
	}
	svc, _ := newTestService(t, store)

	resp, err := svc.SubmitFeedback(context.Background(), quote.FeedbackRequest{
		RunID:  "01RUN",
		Rating: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 50.18, resp.GoodwillCredit)
	assert.Equal(t, 451.58, resp.AdjustedTotal)

	_, err = svc.SubmitFeedback(context.Background(), quote.FeedbackRequest{
		RunID:  "01RUN",
		Rating: 2,
	})
	assert.ErrorIs(t, err, quote.ErrFeedbackRecorded)
}

func TestSubmitFeedbackHighRatingNoCredit(t *testing.T) {
	store := newFakeStore()
	store.runs["01RUN"] = entity.QuoteRun{
		ID:         "01RUN",
		Status:     entity.RunStatusCompleted,
		TotalCents: 50176,
	}
	svc, _ := newTestService(t, store)

	resp, err := svc.SubmitFeedback(context.Background(), quote.FeedbackRequest{
		RunID:  "01RUN",
		Rating: 5,
	})
	require.NoError(t, err)
	assert.Zero(t, resp.GoodwillCredit)
	assert.Equal(t, 501.76, resp.AdjustedTotal)
}

func TestSubmitFeedbackRunNotFound(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	_, err := svc.SubmitFeedback(context.Background(), quote.FeedbackRequest{
		RunID:  "missing",
		Rating: 1,
	})
	assert.ErrorIs(t, err, quote.ErrRunNotFound)
}
