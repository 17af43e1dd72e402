package entity

import "time"

// Run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Step names recorded while a quote request moves through the pipeline.
const (
	StepParseRequest    = "parse_request"
	StepResolveLocation = "resolve_location"
	StepLoadRates       = "load_rates"
	StepComputeQuote    = "compute_quote"
	StepSummarize       = "summarize"
	StepFeedback        = "feedback"
)

type QuoteRun struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	Tier       string    `json:"tier"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
	FinishedAt time.Time `json:"finished_at"`
}

type RunStep struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id"`
	Seq       int       `json:"seq"`
	Name      string    `json:"name"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
