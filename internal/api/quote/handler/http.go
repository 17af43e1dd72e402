package quoteHandler

import (
	quoteService "RentalCopilot/internal/api/quote/service"
	"RentalCopilot/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type QuoteHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	quoteService quoteService.IQuoteService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	quoteService quoteService.IQuoteService,
) *QuoteHandler {
	return &QuoteHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		quoteService: quoteService,
	}
}

func (h *QuoteHandler) Start(srv fiber.Router) {
	quotes := srv.Group("/quotes")

	quotes.Post("/", h.middleware.NewRateLimiter, h.RequestQuote)
	quotes.Post("/voice", h.middleware.NewRateLimiter, h.RequestVoiceQuote)
	quotes.Post("/feedback", h.SubmitFeedback)
	quotes.Get("/:id/document", h.GetQuoteDocument)
	quotes.Get("/:id/audio", h.GetQuoteAudio)
	quotes.Get("/:id/audio/stream", h.StreamQuoteAudio)
}
