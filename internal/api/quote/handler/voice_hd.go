package quoteHandler

import (
	contextPkg "RentalCopilot/pkg/context"
	"RentalCopilot/pkg/handlerUtil"
	"RentalCopilot/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *QuoteHandler) RequestVoiceQuote(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 60*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing voice quote request")

	file, err := ctx.FormFile("audio")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("audio file is required"), ctx.Path())
	}

	tier := ctx.FormValue("tier")
	if tier != "A" && tier != "B" && tier != "C" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("tier must be one of A, B, C"), ctx.Path())
	}

	resp, err := h.quoteService.RequestQuoteFromAudio(c, tier, file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "request_voice_quote")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}
