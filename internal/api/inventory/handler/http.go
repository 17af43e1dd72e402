package inventoryHandler

import (
	inventoryService "RentalCopilot/internal/api/inventory/service"
	"RentalCopilot/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type InventoryHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	inventoryService inventoryService.IInventoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	inventoryService inventoryService.IInventoryService,
) *InventoryHandler {
	return &InventoryHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		inventoryService: inventoryService,
	}
}

func (h *InventoryHandler) Start(srv fiber.Router) {
	items := srv.Group("/inventory")

	items.Get("/", h.ListItems)
	items.Get("/categories", h.ListCategories)
	items.Get("/:sku", h.GetItem)
}
