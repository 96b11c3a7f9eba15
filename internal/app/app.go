package app

import (
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/bissetw-stack/pelham-swimming-app/internal/config"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
	"github.com/bissetw-stack/pelham-swimming-app/internal/infrastructure/repository/memory"
	"github.com/bissetw-stack/pelham-swimming-app/internal/infrastructure/repository/postgres"
	"github.com/bissetw-stack/pelham-swimming-app/internal/interfaces/httpapi"
	"github.com/bissetw-stack/pelham-swimming-app/internal/usecase"
)

// NewHTTPServer wires repositories, services, and the HTTP router into
// a ready-to-run server. The returned cleanup closes the database
// connection when one was opened; it is a no-op in memory mode.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	swimmerRepo, resultRepo, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	rankingSvc := usecase.NewRankingService(swimmerRepo, resultRepo)
	selectionSvc := usecase.NewSelectionService(rankingSvc)
	batchSvc := usecase.NewBatchEntryService(resultRepo).WithWorkers(cfg.BatchWorkers)
	historySvc := usecase.NewHistoryService(swimmerRepo, resultRepo)
	swimmerSvc := usecase.NewSwimmerService(swimmerRepo)
	reportSvc := usecase.NewReportService(selectionSvc)

	handler := httpapi.NewHandler(
		swimmerSvc,
		batchSvc,
		historySvc,
		rankingSvc,
		selectionSvc,
		reportSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (swimmer.Repository, result.Repository, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("storage mode", "mode", "memory", "seeded", cfg.SeedDemoData)

		var swimmerRepo *memory.SwimmerRepository
		var resultRepo *memory.ResultRepository
		if cfg.SeedDemoData {
			swimmerRepo = memory.NewSwimmerRepository(memory.SeedSwimmers(), nil)
			resultRepo = memory.NewResultRepository(memory.SeedResults(), nil)
		} else {
			swimmerRepo = memory.NewSwimmerRepository(nil, nil)
			resultRepo = memory.NewResultRepository(nil, nil)
		}

		return swimmerRepo, resultRepo, func() error { return nil }, nil
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}
	logger.Info("storage mode", "mode", "postgres")

	return postgres.NewSwimmerRepository(db), postgres.NewResultRepository(db), db.Close, nil
}
