package quoteRepository

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

func (r *runsRepository) Insert(c context.Context, run entity.QuoteRun) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          run.ID,
		"message":     run.Message,
		"tier":        run.Tier,
		"status":      run.Status,
		"total_cents": run.TotalCents,
		"created_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryInsertRun, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Insert run")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when inserting run")
		return err
	}

	return nil
}

func (r *runsRepository) InsertStep(c context.Context, step entity.RunStep) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         step.ID,
		"run_id":     step.RunID,
		"seq":        step.Seq,
		"name":       step.Name,
		"detail":     step.Detail,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryInsertRunStep, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for InsertStep")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when inserting run step")
		return err
	}

	return nil
}

func (r *runsRepository) Finish(c context.Context, id string, status string, totalCents int64) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          id,
		"status":      status,
		"total_cents": totalCents,
		"finished_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryFinishRun, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Finish run")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when finishing run")
		return err
	}

	return nil
}

func (r *runsRepository) GetByID(c context.Context, id string) (entity.QuoteRun, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetRunByID, argsKV)
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

	return run, nil
}

func (r *runsRepository) HasFeedback(c context.Context, runID string) (bool, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"run_id": runID,
	}

	query, args, err := sqlx.Named(queryCountFeedback, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("HasFeedback named query preparation err")
		return false, err
	}
	query = r.q.Rebind(query)

	var count int
	if err := r.q.GetContext(c, &count, query, args...); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *runsRepository) InsertFeedback(c context.Context, runID string, rating int, comment string, credit float64) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"run_id":          runID,
		"rating":          rating,
		"comment":         comment,
		"goodwill_credit": credit,
		"created_at":      time.Now(),
	}

	query, args, err := sqlx.Named(queryInsertFeedback, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for InsertFeedback")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when inserting feedback")
		return err
	}

	return nil
}
