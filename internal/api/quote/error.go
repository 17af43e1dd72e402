package quote

import "RentalCopilot/pkg/response"

var (
	ErrNoItemsRecognized = response.NewError(422, "no rentable items recognized in message")
	ErrInvalidDateRange  = response.NewError(400, "end date must be after start date")
	ErrInvalidTier       = response.NewError(400, "unknown customer tier")
	ErrRateNotFound      = response.NewError(404, "no rate on file for a requested item")
	ErrPolicyNotFound    = response.NewError(500, "pricing policy not configured")
	ErrRunNotFound       = response.NewError(404, "quote run not found")
	ErrFeedbackRecorded  = response.NewError(409, "feedback already recorded for this run")
	ErrQuoteFailed       = response.NewError(500, "failed to compute quote")
	ErrDocumentFailed    = response.NewError(500, "failed to render quote document")
	ErrAudioFailed       = response.NewError(500, "failed to synthesize quote audio")
)
