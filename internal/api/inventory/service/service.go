package inventoryService

import (
	"RentalCopilot/internal/api/inventory"
	inventoryRepository "RentalCopilot/internal/api/inventory/repository"
	redisPkg "RentalCopilot/pkg/redis"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IInventoryService interface {
	ListItems(ctx context.Context, category string) (inventory.ListResponse, error)
	GetItem(ctx context.Context, sku string) (inventory.ItemResponse, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type inventoryService struct {
	log                 *logrus.Logger
	inventoryRepository inventoryRepository.Repository
	redis               redisPkg.IRedis
}

func NewInventoryService(log *logrus.Logger, ir inventoryRepository.Repository, redis redisPkg.IRedis) IInventoryService {
	return &inventoryService{
		log:                 log,
		inventoryRepository: ir,
		redis:               redis,
	}
}
