package inventoryHandler

import (
	contextPkg "RentalCopilot/pkg/context"
	"RentalCopilot/pkg/handlerUtil"
	"RentalCopilot/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *InventoryHandler) ListItems(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list inventory request")

	category := ctx.Query("category")

	resp, err := h.inventoryService.ListItems(c, category)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_inventory")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *InventoryHandler) GetItem(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	sku := ctx.Params("sku")
	if sku == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("sku is required"), ctx.Path())
	}

	resp, err := h.inventoryService.GetItem(c, sku)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_inventory_item")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *InventoryHandler) ListCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	categories, err := h.inventoryService.ListCategories(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_categories")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"categories": categories,
		})
	}
}
