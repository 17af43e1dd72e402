package inventoryRepository

import (
	"RentalCopilot/internal/entity"
	contextPkg "RentalCopilot/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type InventoryDB struct {
	SKU       sql.NullString  `db:"sku"`
	Name      sql.NullString  `db:"name"`
	Category  sql.NullString  `db:"category"`
	Location  sql.NullString  `db:"location"`
	OnHand    sql.NullInt64   `db:"on_hand"`
	Committed sql.NullInt64   `db:"committed"`
	Daily     sql.NullFloat64 `db:"daily"`
}

func (row InventoryDB) toEntity() entity.InventoryItem {
	return entity.InventoryItem{
		SKU:       row.SKU.String,
		Name:      row.Name.String,
		Category:  row.Category.String,
		Location:  row.Location.String,
		OnHand:    int(row.OnHand.Int64),
		Committed: int(row.Committed.Int64),
		DailyRate: row.Daily.Float64,
	}
}

func (r *inventoryRepository) List(c context.Context, category string) ([]entity.InventoryItem, error) {
	requestID := contextPkg.GetRequestID(c)

	query := queryListInventory
	var args []interface{}

	if category != "" {
		named, namedArgs, err := sqlx.Named(queryListInventoryByCategory, map[string]interface{}{
			"category": category,
		})
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to build SQL query for List inventory")
			return nil, err
		}
		query = named
		args = namedArgs
	}
	query = r.q.Rebind(query)

	var rows []InventoryDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing inventory")
		return nil, err
	}

	items := make([]entity.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}

	return items, nil
}

func (r *inventoryRepository) GetBySKU(c context.Context, sku string) (entity.InventoryItem, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryGetInventoryBySKU, map[string]interface{}{
		"sku": sku,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBySKU named query preparation err")
		return entity.InventoryItem{}, err
	}
	query = r.q.Rebind(query)

	var row InventoryDB
	if err := r.q.GetContext(c, &row, query, args...); err != nil {
		return entity.InventoryItem{}, err
	}

	return row.toEntity(), nil
}

func (r *inventoryRepository) Categories(c context.Context) ([]string, error) {
	requestID := contextPkg.GetRequestID(c)

	var categories []string
	if err := r.q.SelectContext(c, &categories, r.q.Rebind(queryListCategories)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing categories")
		return nil, err
	}

	return categories, nil
}
