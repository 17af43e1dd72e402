package inventoryService

import (
	"RentalCopilot/internal/api/inventory"
	"RentalCopilot/internal/entity"
	contextPkg "RentalCopilot/pkg/context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const listCacheTTL = 2 * time.Minute

func (s *inventoryService) ListItems(ctx context.Context, category string) (inventory.ListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	cacheKey := "inventory:list:" + category
	var cached inventory.ListResponse
	if err := s.redis.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	repo, err := s.inventoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return inventory.ListResponse{}, err
	}

	items, err := repo.Inventory.List(ctx, category)
	if err != nil {
		return inventory.ListResponse{}, err
	}

	resp := inventory.ListResponse{
		Category: category,
		Items:    make([]inventory.ItemResponse, 0, len(items)),
		Total:    len(items),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}

	if err := s.redis.SetJSON(ctx, cacheKey, resp, listCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache inventory list")
	}

	return resp, nil
}

func (s *inventoryService) GetItem(ctx context.Context, sku string) (inventory.ItemResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.inventoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return inventory.ItemResponse{}, err
	}

	item, err := repo.Inventory.GetBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return inventory.ItemResponse{}, inventory.ErrItemNotFound
		}
		return inventory.ItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) ListCategories(ctx context.Context) ([]string, error) {
	repo, err := s.inventoryRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Inventory.Categories(ctx)
}

func toItemResponse(item entity.InventoryItem) inventory.ItemResponse {
	return inventory.ItemResponse{
		SKU:       item.SKU,
		Name:      item.Name,
		Category:  item.Category,
		Location:  item.Location,
		Available: item.Available(),
		DailyRate: item.DailyRate,
	}
}
