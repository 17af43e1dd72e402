package quoteRepository

import (
	"RentalCopilot/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Rates:    &ratesRepository{q: sqlExecutor, log: r.log},
		Policies: &policiesRepository{q: sqlExecutor, log: r.log},
		Items:    &itemsRepository{q: sqlExecutor, log: r.log},
		Runs:     &runsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Rates interface {
		GetBySKUs(c context.Context, skus []string) (map[string]entity.RateRecord, error)
	}

	Policies interface {
		GetActive(c context.Context) (entity.PricingPolicy, error)
	}

	Items interface {
		GetBySKUs(c context.Context, skus []string) (map[string]entity.InventoryItem, error)
	}

	Runs interface {
		Insert(c context.Context, run entity.QuoteRun) error
		InsertStep(c context.Context, step entity.RunStep) error
		Finish(c context.Context, id string, status string, totalCents int64) error
		GetByID(c context.Context, id string) (entity.QuoteRun, error)
		HasFeedback(c context.Context, runID string) (bool, error)
		InsertFeedback(c context.Context, runID string, rating int, comment string, credit float64) error
	}

	Commit   func() error
	Rollback func() error
}

type ratesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type policiesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type itemsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type runsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
