package quoteService

import (
	"RentalCopilot/internal/api/quote"
	"RentalCopilot/internal/entity"
	"RentalCopilot/internal/pricing"
	contextPkg "RentalCopilot/pkg/context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Ratings at or below this trigger a courtesy credit on the total.
const (
	goodwillRatingCeiling = 3
	goodwillCreditPct     = 10.0
)

func (s *quoteService) SubmitFeedback(ctx context.Context, req quote.FeedbackRequest) (quote.FeedbackResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.quoteRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return quote.FeedbackResponse{}, err
	}

	run, err := repo.Runs.GetByID(ctx, req.RunID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quote.FeedbackResponse{}, quote.ErrRunNotFound
		}
		return quote.FeedbackResponse{}, err
	}
	if run.Status != entity.RunStatusCompleted {
		return quote.FeedbackResponse{}, quote.ErrRunNotFound
	}

	recorded, err := repo.Runs.HasFeedback(ctx, req.RunID)
	if err != nil {
		return quote.FeedbackResponse{}, err
	}
	if recorded {
		return quote.FeedbackResponse{}, quote.ErrFeedbackRecorded
	}

	total := float64(run.TotalCents) / 100
	var credit float64
	if req.Rating <= goodwillRatingCeiling {
		adjusted := &entity.Quote{Total: total}
		credit = pricing.ApplyGoodwill(adjusted, goodwillCreditPct)
		total = adjusted.Total

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"run_id":     req.RunID,
			"rating":     req.Rating,
			"credit":     credit,
		}).Info("Goodwill credit applied")
	}

	if err := repo.Runs.InsertFeedback(ctx, req.RunID, req.Rating, req.Comment, credit); err != nil {
		return quote.FeedbackResponse{}, err
	}

	trace := newTracer(s, repo, req.RunID)
	trace.seq = feedbackStepSeq
	trace.step(ctx, entity.StepFeedback, feedbackDetail(req.Rating, credit))

	return quote.FeedbackResponse{
		RunID:          req.RunID,
		Rating:         req.Rating,
		GoodwillCredit: credit,
		AdjustedTotal:  total,
	}, nil
}

// feedbackStepSeq keeps feedback steps sorted after every pipeline step.
const feedbackStepSeq = 100

func feedbackDetail(rating int, credit float64) string {
	if credit > 0 {
		return fmt.Sprintf("rating %d, goodwill credit %.2f applied", rating, credit)
	}
	return fmt.Sprintf("rating %d", rating)
}
