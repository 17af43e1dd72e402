package runsRepository

import (
	"RentalCopilot/internal/entity"
	contextPkg "RentalCopilot/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type RunDB struct {
	ID         sql.NullString `db:"id"`
	Message    sql.NullString `db:"message"`
	Tier       sql.NullString `db:"tier"`
	Status     sql.NullString `db:"status"`
	TotalCents sql.NullInt64  `db:"total_cents"`
	CreatedAt  time.Time      `db:"created_at"`
	FinishedAt sql.NullTime   `db:"finished_at"`
}

type StepDB struct {
	ID        sql.NullString `db:"id"`
	RunID     sql.NullString `db:"run_id"`
	Seq       sql.NullInt64  `db:"seq"`
	Name      sql.NullString `db:"name"`
	Detail    sql.NullString `db:"detail"`
	CreatedAt time.Time      `db:"created_at"`
}

func (row RunDB) toEntity() entity.QuoteRun {
	run := entity.QuoteRun{
		ID:         row.ID.String,
		Message:    row.Message.String,
		Tier:       row.Tier.String,
		Status:     row.Status.String,
		TotalCents: row.TotalCents.Int64,
		CreatedAt:  row.CreatedAt,
	}
	if row.FinishedAt.Valid {
		run.FinishedAt = row.FinishedAt.Time
	}
	return run
}

func (r *runsRepository) List(c context.Context, limit int) ([]entity.QuoteRun, error) {
	requestID := contextPkg.GetRequestID(c)

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query, args, err := sqlx.Named(queryListRuns, map[string]interface{}{
		"limit": limit,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for List runs")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []RunDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing runs")
		return nil, err
	}

	runs := make([]entity.QuoteRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, row.toEntity())
	}

	return runs, nil
}

func (r *runsRepository) GetByID(c context.Context, id string) (entity.QuoteRun, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryGetRunByID, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.QuoteRun{}, err
	}
	query = r.q.Rebind(query)

	var row RunDB
	if err := r.q.GetContext(c, &row, query, args...); err != nil {
		return entity.QuoteRun{}, err
	}

	return row.toEntity(), nil
}

func (r *runsRepository) GetSteps(c context.Context, runID string) ([]entity.RunStep, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryGetRunSteps, map[string]interface{}{
		"run_id": runID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSteps named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []StepDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching run steps")
		return nil, err
	}

	steps := make([]entity.RunStep, 0, len(rows))
	for _, row := range rows {
		steps = append(steps, entity.RunStep{
			ID:        row.ID.String,
			RunID:     row.RunID.String,
			Seq:       int(row.Seq.Int64),
			Name:      row.Name.String,
			Detail:    row.Detail.String,
			CreatedAt: row.CreatedAt,
		})
	}

	return steps, nil
}
