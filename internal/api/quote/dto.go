package quote

import "RentalCopilot/pkg/nlp"

// RequestItem is a caller-supplied line item. Requests carrying these
// skip text parsing entirely.
type RequestItem struct {
	SKU string `json:"sku" validate:"required"`
	Qty int    `json:"qty" validate:"omitempty,gte=1"`
}

type QuoteRequest struct {
	Message   string        `json:"message" validate:"required_without=Items"`
	Items     []RequestItem `json:"items" validate:"omitempty,dive"`
	Tier      string        `json:"tier" validate:"required,oneof=A B C"`
	Days      int           `json:"days" validate:"omitempty,gte=1"`
	StartDate string        `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string        `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	// Location is the service location the caller picked; Zip is a
	// fallback when no location is known at all.
	Location string `json:"location" validate:"omitempty"`
	Zip      string `json:"zip" validate:"omitempty,numeric"`
	Notify   bool   `json:"notify"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
}

type FeedbackRequest struct {
	RunID   string `json:"run_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

type LineItemResponse struct {
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Qty        int     `json:"qty"`
	Days       int     `json:"days"`
	DailyRate  float64 `json:"dailyRate"`
	UnitPrice  float64 `json:"unitPrice"`
	Subtotal   float64 `json:"subtotal"`
	Confidence float64 `json:"confidence"`
}

type FeeResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type QuoteResponse struct {
	RunID     string             `json:"run_id"`
	Currency  string             `json:"currency"`
	Items     []LineItemResponse `json:"items"`
	Subtotal  float64            `json:"subtotal"`
	Discount  float64            `json:"discount"`
	Fees      []FeeResponse      `json:"fees"`
	Tax       float64            `json:"tax"`
	Total     float64            `json:"total"`
	Days      int                `json:"days"`
	Location  LocationResponse   `json:"location"`
	Summary   string             `json:"summary,omitempty"`
	Unmatched []string           `json:"unmatched,omitempty"`
}

// LocationResponse reports where the rental will be serviced and how that
// was decided. Conflict is set when the message names a different place
// than the location field on the request.
type LocationResponse struct {
	Final           string `json:"final"`
	Conflict        bool   `json:"conflict"`
	ConflictMessage string `json:"conflict_message,omitempty"`
	Rationale       string `json:"rationale"`
}

type FeedbackResponse struct {
	RunID          string  `json:"run_id"`
	Rating         int     `json:"rating"`
	GoodwillCredit float64 `json:"goodwill_credit"`
	AdjustedTotal  float64 `json:"adjusted_total"`
}

type DocumentResponse struct {
	RunID string `json:"run_id"`
	URL   string `json:"url"`
}

// ParseResult carries the understood request between pipeline stages.
type ParseResult struct {
	Items    []nlp.ParsedLineItem
	Days     int
	Location nlp.ResolvedLocation
}
