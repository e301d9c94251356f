package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/proposal-backend/internal/api"
	proposalapi "github.com/futig/proposal-backend/internal/api/proposal"
	"github.com/futig/proposal-backend/internal/api/web"
	"github.com/futig/proposal-backend/internal/config"
	"github.com/futig/proposal-backend/internal/integration/llm"
	"github.com/futig/proposal-backend/internal/integration/notify"
	"github.com/futig/proposal-backend/internal/pkg/validator"
	"github.com/futig/proposal-backend/internal/repository"
	proposaluc "github.com/futig/proposal-backend/internal/usecase/proposal"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup proposal store. Postgres when DATABASE_URL is set, otherwise
	// an in-memory TTL store.
	var proposalRepo repository.ProposalRepository
	var db *pgxpool.Pool

	if cfg.DatabaseURL != "" {
		db, err = setupDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup database: %w", err)
		}

		logger.Info("Running database migrations")
		if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Database migrations completed successfully")

		proposalRepo = repository.NewProposalPostgres(db)
		logger.Info("Using Postgres proposal store")
	} else {
		proposalRepo = repository.NewProposalMemory(cfg.ProposalTTL)
		logger.Info("Using in-memory proposal store", zap.Duration("ttl", cfg.ProposalTTL))
	}

	// Initialize external service connectors (with mock support)
	var llmConnector proposaluc.LLMConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connector for LLM service")
		llmConnector = llm.NewMockConnector(logger)
	} else {
		logger.Info("Using real connector for LLM service")
		llmConnector = llm.NewConnector(cfg.LLMConnectorCfg, logger)
	}

	// Initialize notification dispatcher
	dispatcher := notify.NewDispatcher(cfg.NotifyCfg, cfg.BaseURL, logger)

	// Initialize validators
	surveyValidator := validator.NewSurveyValidator()
	logger.Info("Validators initialized")

	// Initialize use cases
	proposalUC := proposaluc.NewUsecase(
		proposalRepo,
		llmConnector,
		dispatcher,
		surveyValidator,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	proposalHandler := proposalapi.NewHandler(proposalUC, surveyValidator)
	webHandler := web.NewHandler(proposalUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(proposalHandler, webHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
