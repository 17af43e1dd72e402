package runsService

import (
	"RentalCopilot/internal/api/runs"
	"RentalCopilot/internal/entity"
	contextPkg "RentalCopilot/pkg/context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *runsService) ListRuns(ctx context.Context, limit int) (runs.ListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.runsRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return runs.ListResponse{}, err
	}

	records, err := repo.Runs.List(ctx, limit)
	if err != nil {
		return runs.ListResponse{}, err
	}

	resp := runs.ListResponse{
		Runs:  make([]runs.RunResponse, 0, len(records)),
		Total: len(records),
	}
	for _, record := range records {
		resp.Runs = append(resp.Runs, toRunResponse(record, nil))
	}

	return resp, nil
}

func (s *runsService) GetRun(ctx context.Context, id string) (runs.RunResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.runsRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return runs.RunResponse{}, err
	}

	record, err := repo.Runs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return runs.RunResponse{}, runs.ErrRunNotFound
		}
		return runs.RunResponse{}, err
	}

	steps, err := repo.Runs.GetSteps(ctx, id)
	if err != nil {
		return runs.RunResponse{}, err
	}

	return toRunResponse(record, steps), nil
}

func toRunResponse(record entity.QuoteRun, steps []entity.RunStep) runs.RunResponse {
	resp := runs.RunResponse{
		ID:        record.ID,
		Message:   record.Message,
		Tier:      record.Tier,
		Status:    record.Status,
		Total:     float64(record.TotalCents) / 100,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	}
	if !record.FinishedAt.IsZero() {
		resp.FinishedAt = record.FinishedAt.Format(time.RFC3339)
	}

	for _, step := range steps {
		resp.Steps = append(resp.Steps, runs.StepResponse{
			Seq:       step.Seq,
			Name:      step.Name,
			Detail:    step.Detail,
			CreatedAt: step.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp
}
