package runsService

import (
	"RentalCopilot/internal/api/runs"
	runsRepository "RentalCopilot/internal/api/runs/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IRunsService interface {
	ListRuns(ctx context.Context, limit int) (runs.ListResponse, error)
	GetRun(ctx context.Context, id string) (runs.RunResponse, error)
}

type runsService struct {
	log            *logrus.Logger
	runsRepository runsRepository.Repository
}

func NewRunsService(log *logrus.Logger, rr runsRepository.Repository) IRunsService {
	return &runsService{
		log:            log,
		runsRepository: rr,
	}
}
