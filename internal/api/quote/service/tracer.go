package quoteService

import (
	quoteRepository "RentalCopilot/internal/api/quote/repository"
	"RentalCopilot/internal/entity"
	"RentalCopilot/pkg/runstream"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// tracer persists pipeline steps for a run and mirrors them onto the
// live stream. Step recording is best effort: a failed insert never
// aborts the quote itself.
type tracer struct {
	svc   *quoteService
	repo  quoteRepository.Client
	runID string
	seq   int
}

func newTracer(svc *quoteService, repo quoteRepository.Client, runID string) *tracer {
	return &tracer{svc: svc, repo: repo, runID: runID}
}

func (t *tracer) step(ctx context.Context, name, detail string) {
	t.seq++

	stepID, err := t.svc.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		stepID = t.runID + "-" + name
	}

	step := entity.RunStep{
		ID:     stepID,
		RunID:  t.runID,
		Seq:    t.seq,
		Name:   name,
		Detail: detail,
	}

	if err := t.repo.Runs.InsertStep(ctx, step); err != nil {
		t.svc.log.WithFields(logrus.Fields{
			"run_id": t.runID,
			"step":   name,
			"error":  err.Error(),
		}).Warn("Failed to persist run step")
	}

	if t.svc.stream != nil {
		t.svc.stream.Publish(t.runID, runstream.Event{
			RunID:  t.runID,
			Seq:    t.seq,
			Name:   name,
			Detail: detail,
		})
	}
}

func (t *tracer) fail(ctx context.Context, cause error) {
	t.step(ctx, "error", cause.Error())

	if err := t.repo.Runs.Finish(ctx, t.runID, entity.RunStatusFailed, 0); err != nil {
		t.svc.log.WithFields(logrus.Fields{
			"run_id": t.runID,
			"error":  err.Error(),
		}).Warn("Failed to mark run as failed")
	}

	if t.svc.stream != nil {
		t.svc.stream.Close(t.runID)
	}
}

func (t *tracer) done() {
	if t.svc.stream != nil {
		t.svc.stream.Close(t.runID)
	}
}
