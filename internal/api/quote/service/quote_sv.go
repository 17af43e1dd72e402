package quoteService

import (
	"RentalCopilot/internal/api/quote"
	quoteRepository "RentalCopilot/internal/api/quote/repository"
	"RentalCopilot/internal/entity"
	"RentalCopilot/internal/pricing"
	contextPkg "RentalCopilot/pkg/context"
	"RentalCopilot/pkg/nlp"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	policyCacheKey = "pricing:policy:active"
	policyCacheTTL = 5 * time.Minute
	rateCacheTTL   = 5 * time.Minute
	snapshotTTL    = 24 * time.Hour
	summaryTimeout = 8 * time.Second
)

func (s *quoteService) RequestQuote(ctx context.Context, req quote.QuoteRequest) (quote.QuoteResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.quoteRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return quote.QuoteResponse{}, err
	}

	runID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	run := entity.QuoteRun{
		ID:      runID,
		Message: req.Message,
		Tier:    req.Tier,
		Status:  entity.RunStatusRunning,
	}
	if err := repo.Runs.Insert(ctx, run); err != nil {
		return quote.QuoteResponse{}, err
	}

	trace := newTracer(s, repo, runID)

	policy, err := s.loadPolicy(ctx, repo)
	if err != nil {
		trace.fail(ctx, err)
		return quote.QuoteResponse{}, quote.ErrPolicyNotFound
	}

	parsed, err := s.parseRequest(ctx, req, policy)
	if err != nil {
		trace.fail(ctx, err)
		return quote.QuoteResponse{}, err
	}
	trace.step(ctx, entity.StepParseRequest, describeItems(parsed.Items))
	trace.step(ctx, entity.StepResolveLocation, parsed.Location.Rationale)

	skus := matchedSKUs(parsed.Items)
	rates, err := s.loadRates(ctx, repo, skus)
	if err != nil {
		trace.fail(ctx, err)
		return quote.QuoteResponse{}, err
	}
	for _, sku := range skus {
		if _, ok := rates[sku]; !ok {
			err := fmt.Errorf("%w: %s", pricing.ErrRateMissing, sku)
			trace.fail(ctx, err)
			return quote.QuoteResponse{}, quote.ErrRateNotFound
		}
	}
	trace.step(ctx, entity.StepLoadRates, fmt.Sprintf("%d rates loaded", len(rates)))

	inventory, err := repo.Items.GetBySKUs(ctx, skus)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Inventory lookup failed, falling back to SKU names")
		inventory = map[string]entity.InventoryItem{}
	}

	priced, err := pricing.Compute(pricing.Input{
		Items:     parsed.Items,
		Days:      parsed.Days,
		Tier:      req.Tier,
		Rates:     rates,
		Inventory: inventory,
		Policy:    policy,
	})
	if err != nil {
		trace.fail(ctx, err)
		if errors.Is(err, pricing.ErrNoItems) {
			return quote.QuoteResponse{}, quote.ErrNoItemsRecognized
		}
		return quote.QuoteResponse{}, quote.ErrQuoteFailed
	}
	trace.step(ctx, entity.StepComputeQuote, fmt.Sprintf("total %.2f %s", priced.Total, priced.Currency))

	summary := s.summarize(ctx, req, priced, parsed.Days)
	if summary != "" {
		trace.step(ctx, entity.StepSummarize, summary)
	}

	totalCents := int64(math.Round(priced.Total * 100))
	if err := repo.Runs.Finish(ctx, runID, entity.RunStatusCompleted, totalCents); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to finish run")
	}
	trace.done()

	snapshot := quoteSnapshot{
		RunID:    runID,
		Quote:    *priced,
		Days:     parsed.Days,
		Location: parsed.Location,
		Summary:  summary,
		Names:    itemNames(inventory),
	}
	if err := s.redis.SetJSON(ctx, snapshotKey(runID), snapshot, snapshotTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache quote snapshot")
	}

	if req.Notify && req.Phone != "" && s.whatsapp != nil {
		go s.notifyQuote(req.Phone, runID, priced)
	}

	return buildQuoteResponse(runID, parsed, priced, summary), nil
}

// parseRequest resolves the rental window and runs the item parser.
// Explicit dates beat the days field, which beats duration text in the
// message itself.
func (s *quoteService) parseRequest(ctx context.Context, req quote.QuoteRequest, policy entity.PricingPolicy) (quote.ParseResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	days := req.Days
	if req.StartDate != "" && req.EndDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return quote.ParseResult{}, quote.ErrInvalidDateRange
		}
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return quote.ParseResult{}, quote.ErrInvalidDateRange
		}
		span := int(end.Sub(start).Hours()/24) + 1
		if span < 1 {
			return quote.ParseResult{}, quote.ErrInvalidDateRange
		}
		days = span
	}
	if days == 0 {
		days = nlp.ExtractDuration(req.Message, policy.DefaultRentalDays)
	}

	var items []nlp.ParsedLineItem
	if len(req.Items) > 0 {
		items = explicitLineItems(req.Items)
	} else {
		items = s.parser.Parse(req.Message)
	}
	if len(matchedSKUs(items)) == 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"message":    req.Message,
		}).Warn("No items recognized in message")
		return quote.ParseResult{}, quote.ErrNoItemsRecognized
	}

	location := s.locations.Resolve(req.Message, req.Location, req.Zip)
	if location.Conflict {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"free_text":  location.FreeText,
			"selected":   location.Selected,
		}).Warn("Location conflict between message and selection")
	}

	return quote.ParseResult{Items: items, Days: days, Location: location}, nil
}

// explicitLineItems wraps caller-supplied items as already-matched lines
// with full confidence, bypassing the text parser.
func explicitLineItems(reqItems []quote.RequestItem) []nlp.ParsedLineItem {
	items := make([]nlp.ParsedLineItem, 0, len(reqItems))
	for _, it := range reqItems {
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		items = append(items, nlp.ParsedLineItem{
			RawText:    it.SKU,
			SKU:        it.SKU,
			Quantity:   qty,
			Confidence: 1.0,
			Matched:    true,
		})
	}
	return items
}

func (s *quoteService) loadPolicy(ctx context.Context, repo quoteRepository.Client) (entity.PricingPolicy, error) {
	var policy entity.PricingPolicy
	if err := s.redis.GetJSON(ctx, policyCacheKey, &policy); err == nil {
		return policy, nil
	}

	policy, err := repo.Policies.GetActive(ctx)
	if err != nil {
		return entity.PricingPolicy{}, err
	}

	if err := s.redis.SetJSON(ctx, policyCacheKey, policy, policyCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Failed to cache pricing policy")
	}

	return policy, nil
}

func (s *quoteService) loadRates(ctx context.Context, repo quoteRepository.Client, skus []string) (map[string]entity.RateRecord, error) {
	rates := make(map[string]entity.RateRecord, len(skus))
	missing := make([]string, 0, len(skus))

	for _, sku := range skus {
		var rate entity.RateRecord
		if err := s.redis.GetJSON(ctx, rateCacheKey(sku), &rate); err == nil {
			rates[sku] = rate
			continue
		}
		missing = append(missing, sku)
	}

	if len(missing) == 0 {
		return rates, nil
	}

	fetched, err := repo.Rates.GetBySKUs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for sku, rate := range fetched {
		rates[sku] = rate
		if err := s.redis.SetJSON(ctx, rateCacheKey(sku), rate, rateCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"sku":   sku,
				"error": err.Error(),
			}).Warn("Failed to cache rate")
		}
	}

	return rates, nil
}

// summarize asks the language model for a one-paragraph recap. Failures
// only cost the summary field, never the quote.
func (s *quoteService) summarize(ctx context.Context, req quote.QuoteRequest, priced *entity.Quote, days int) string {
	if s.gemini == nil {
		return ""
	}

	c, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	var sb strings.Builder
	sb.WriteString("Summarize this equipment rental quote for the customer in two sentences. ")
	sb.WriteString(fmt.Sprintf("Rental length: %d days. Items: ", days))
	for i, line := range priced.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%dx %s at %.2f", line.Qty, line.Name, line.Subtotal))
	}
	sb.WriteString(fmt.Sprintf(". Total %.2f %s including tax and fees.", priced.Total, priced.Currency))

	summary, err := s.gemini.GenerateText(c, sb.String())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Summary generation failed")
		return ""
	}

	return strings.TrimSpace(summary)
}

func (s *quoteService) notifyQuote(phone, runID string, priced *entity.Quote) {
	msg := fmt.Sprintf("Your rental quote %s is ready: total %.2f %s. Reply here with any changes.",
		runID, priced.Total, priced.Currency)
	if err := s.whatsapp.SendMessage(context.Background(), phone, msg); err != nil {
		s.log.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Warn("Failed to send quote notification")
	}
}

func rateCacheKey(sku string) string {
	return "pricing:rate:" + sku
}

func matchedSKUs(items []nlp.ParsedLineItem) []string {
	skus := make([]string, 0, len(items))
	for _, item := range items {
		if item.Matched {
			skus = append(skus, item.SKU)
		}
	}
	return skus
}

func unmatchedNames(items []nlp.ParsedLineItem) []string {
	var names []string
	for _, item := range items {
		if !item.Matched && item.UnmatchedName != "" {
			names = append(names, item.UnmatchedName)
		}
	}
	return names
}

func describeItems(items []nlp.ParsedLineItem) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("; ")
		}
		if item.Matched {
			sb.WriteString(fmt.Sprintf("%dx %s (%.2f)", item.Quantity, item.SKU, item.Confidence))
		} else {
			sb.WriteString(fmt.Sprintf("unmatched %q", item.UnmatchedName))
		}
	}
	return sb.String()
}

func itemNames(inventory map[string]entity.InventoryItem) map[string]string {
	names := make(map[string]string, len(inventory))
	for sku, item := range inventory {
		names[sku] = item.Name
	}
	return names
}

func buildQuoteResponse(runID string, parsed quote.ParseResult, priced *entity.Quote, summary string) quote.QuoteResponse {
	confidences := make(map[string]float64, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Matched {
			confidences[item.SKU] = item.Confidence
		}
	}

	items := make([]quote.LineItemResponse, 0, len(priced.Items))
	for _, line := range priced.Items {
		items = append(items, quote.LineItemResponse{
			SKU:        line.SKU,
			Name:       line.Name,
			Qty:        line.Qty,
			Days:       line.Days,
			DailyRate:  line.DailyRate,
			UnitPrice:  line.UnitPrice,
			Subtotal:   line.Subtotal,
			Confidence: confidences[line.SKU],
		})
	}

	fees := make([]quote.FeeResponse, 0, len(priced.Fees))
	for _, fee := range priced.Fees {
		fees = append(fees, quote.FeeResponse{Name: fee.Name, Amount: fee.Amount})
	}

	return quote.QuoteResponse{
		RunID:    runID,
		Currency: priced.Currency,
		Items:    items,
		Subtotal: priced.Subtotal,
		Discount: priced.Discount,
		Fees:     fees,
		Tax:      priced.Tax,
		Total:    priced.Total,
		Days:     parsed.Days,
		Location: quote.LocationResponse{
			Final:           parsed.Location.Final,
			Conflict:        parsed.Location.Conflict,
			ConflictMessage: parsed.Location.ConflictMessage,
			Rationale:       parsed.Location.Rationale,
		},
		Summary:   summary,
		Unmatched: unmatchedNames(parsed.Items),
	}
}
