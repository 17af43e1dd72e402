package quoteRepository

import (
	"RentalCopilot/internal/entity"
	contextPkg "RentalCopilot/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type InventoryDB struct {
	SKU       sql.NullString `db:"sku"`
	Name      sql.NullString `db:"name"`
	Category  sql.NullString `db:"category"`
	Location  sql.NullString `db:"location"`
	OnHand    sql.NullInt64  `db:"on_hand"`
	Committed sql.NullInt64  `db:"committed"`
}

func (r *itemsRepository) GetBySKUs(c context.Context, skus []string) (map[string]entity.InventoryItem, error) {
	requestID := contextPkg.GetRequestID(c)

	if len(skus) == 0 {
		return map[string]entity.InventoryItem{}, nil
	}

	query, args, err := sqlx.In(queryGetItemsBySKUs, skus)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for GetItemsBySKUs")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []InventoryDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching inventory items")
		return nil, err
	}

	items := make(map[string]entity.InventoryItem, len(rows))
	for _, row := range rows {
		items[row.SKU.String] = entity.InventoryItem{
			SKU:       row.SKU.String,
			Name:      row.Name.String,
			Category:  row.Category.String,
			Location:  row.Location.String,
			OnHand:    int(row.OnHand.Int64),
			Committed: int(row.Committed.Int64),
		}
	}

	return items, nil
}
