package config

import (
	"RentalCopilot/database/postgres"
	inventoryHandler "RentalCopilot/internal/api/inventory/handler"
	inventoryRepository "RentalCopilot/internal/api/inventory/repository"
	inventoryService "RentalCopilot/internal/api/inventory/service"
	quoteHandler "RentalCopilot/internal/api/quote/handler"
	quoteRepository "RentalCopilot/internal/api/quote/repository"
	quoteService "RentalCopilot/internal/api/quote/service"
	runsHandler "RentalCopilot/internal/api/runs/handler"
	runsRepository "RentalCopilot/internal/api/runs/repository"
	runsService "RentalCopilot/internal/api/runs/service"
	"RentalCopilot/internal/middleware"
	"RentalCopilot/pkg/audio"
	"RentalCopilot/pkg/gemini"
	"RentalCopilot/pkg/nlp"
	"RentalCopilot/pkg/pdf"
	"RentalCopilot/pkg/redis"
	"RentalCopilot/pkg/runstream"
	"RentalCopilot/pkg/s3"
	"RentalCopilot/pkg/utils"
	"RentalCopilot/pkg/whatsapp"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	redisServer    redis.IRedis
	whatsappClient whatsapp.ISender
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	ttsService     *audio.TTSService
	streamTTS      *audio.StreamingTTSService
	transcriber    *audio.TranscriptionService
	pdfRenderer    pdf.IRenderer
	runStream      *runstream.Broker
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		if err := postgres.Bootstrap(db); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithTTS() ServerOption {
	return func(s *Server) error {
		apiKey := os.Getenv("ELEVENLABS_API_KEY")
		voiceID := os.Getenv("ELEVENLABS_VOICE_ID")
		s.ttsService = audio.NewTTSService(apiKey, voiceID)
		s.streamTTS = audio.NewStreamingTTSService(apiKey, voiceID)
		return nil
	}
}

func WithTranscriber() ServerOption {
	return func(s *Server) error {
		s.transcriber = audio.NewTranscriptionService(os.Getenv("OPENAI_API_KEY"))
		return nil
	}
}

func WithPDFRenderer() ServerOption {
	return func(s *Server) error {
		s.pdfRenderer = pdf.New(os.Getenv("COMPANY_NAME"))
		return nil
	}
}

func WithRunStream() ServerOption {
	return func(s *Server) error {
		s.runStream = runstream.NewBroker()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	parser := nlp.NewParser(
		nlp.NewMatcher(nlp.DefaultSynonyms(), nlp.MatcherConfig{
			FallbackSKUs: []string{"CHAIR-FOLD-WHT", "TABLE-8FT-RECT"},
		}),
		nlp.NewQuantityParser(nlp.DefaultWordNumbers()),
	)

	// Quote Domain
	quoteRepo := quoteRepository.New(s.db, s.log)
	quoteServices := quoteService.NewQuoteService(s.log, quoteRepo, parser, s.redisServer, s.geminiClient, s.s3Client, s.ttsService, s.streamTTS, s.transcriber, s.pdfRenderer, s.whatsappClient, s.runStream, s.utils)
	quoteHandlers := quoteHandler.New(s.log, s.validator, s.middleware, quoteServices)

	// Inventory Domain
	inventoryRepo := inventoryRepository.New(s.db, s.log)
	inventoryServices := inventoryService.NewInventoryService(s.log, inventoryRepo, s.redisServer)
	inventoryHandlers := inventoryHandler.New(s.log, s.validator, s.middleware, inventoryServices)

	// Runs Domain
	runsRepo := runsRepository.New(s.db, s.log)
	runsServices := runsService.NewRunsService(s.log, runsRepo)
	runsHandlers := runsHandler.New(s.log, s.validator, s.middleware, runsServices, s.runStream)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, quoteHandlers, inventoryHandlers, runsHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
