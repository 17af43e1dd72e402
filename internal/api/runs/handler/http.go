package runsHandler

import (
	runsService "RentalCopilot/internal/api/runs/service"
	"RentalCopilot/internal/middleware"
	"RentalCopilot/pkg/runstream"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type RunsHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	runsService runsService.IRunsService
	stream      *runstream.Broker
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	runsService runsService.IRunsService,
	stream *runstream.Broker,
) *RunsHandler {
	return &RunsHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		runsService: runsService,
		stream:      stream,
	}
}

func (h *RunsHandler) Start(srv fiber.Router) {
	runs := srv.Group("/runs")

	runs.Get("/", h.ListRuns)

	runs.Use("/:id/live", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	runs.Get("/:id/live", websocket.New(h.LiveTrace))

	runs.Get("/:id", h.GetRun)
}
