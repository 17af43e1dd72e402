package inventoryRepository

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db := sqlx.NewDb(mockDB, "postgres")
	return New(db, logger), mock
}

func inventoryColumns() []string {
	return []string{"sku", "name", "category", "location", "on_hand", "committed", "daily"}
}

func TestInventoryList(t *testing.T) {
	repo, mock := newMockRepository(t)
	client, err := repo.NewClient(false)
	require.NoError(t, err)

	rows := sqlmock.NewRows(inventoryColumns()).
		AddRow("CHAIR-FOLD-WHT", "White Folding Chair", "event", "north", 500, 120, 2.25).
		AddRow("TENT-20x20", "20x20 Frame Tent", "event", "north", 6, 2, 0.0)

	mock.ExpectQuery(`SELECT(.|\n)*FROM inventory i(.|\n)*LEFT JOIN rates r`).
		WillReturnRows(rows)

	items, err := client.Inventory.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "White Folding Chair", items[0].Name)
	assert.Equal(t, 2.25, items[0].DailyRate)
	// rateless items surface with a zero rate instead of being hidden
	assert.Equal(t, 0.0, items[1].DailyRate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryListByCategory(t *testing.T) {
	repo, mock := newMockRepository(t)
	client, err := repo.NewClient(false)
	require.NoError(t, err)

	rows := sqlmock.NewRows(inventoryColumns()).
		AddRow("GEN-5KW", "5kW Portable Generator", "construction", "south", 12, 4, 38.0)

	mock.ExpectQuery(`SELECT(.|\n)*WHERE i\.category =`).
		WithArgs("construction").
		WillReturnRows(rows)

	items, err := client.Inventory.List(context.Background(), "construction")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "GEN-5KW", items[0].SKU)
}

func TestInventoryGetBySKU(t *testing.T) {
	repo, mock := newMockRepository(t)
	client, err := repo.NewClient(false)
	require.NoError(t, err)

	rows := sqlmock.NewRows(inventoryColumns()).
		AddRow("FORKLIFT-5K", "5,000 lb Forklift", "heavy", "yard", 3, 1, 210.0)

	mock.ExpectQuery(`SELECT(.|\n)*WHERE i\.sku =`).
		WithArgs("FORKLIFT-5K").
		WillReturnRows(rows)

	item, err := client.Inventory.GetBySKU(context.Background(), "FORKLIFT-5K")
	require.NoError(t, err)
	assert.Equal(t, 3, item.OnHand)
	assert.Equal(t, 1, item.Committed)
	assert.Equal(t, 2, item.Available())
}

func TestInventoryGetBySKUNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT(.|\n)*WHERE i\.sku =`).
		WithArgs("NOPE").
		WillReturnError(sql.ErrNoRows)

	_, err = client.Inventory.GetBySKU(context.Background(), "NOPE")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInventoryCategories(t *testing.T) {
	repo, mock := newMockRepository(t)
	client, err := repo.NewClient(false)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"category"}).
		AddRow("av").
		AddRow("construction").
		AddRow("event")

	mock.ExpectQuery(`SELECT DISTINCT category`).WillReturnRows(rows)

	categories, err := client.Inventory.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"av", "construction", "event"}, categories)
}
