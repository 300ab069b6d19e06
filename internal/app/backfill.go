package app

import (
	"context"
	"os"

	"go-timeclock/internal/employee"
	"go-timeclock/internal/punch"
	"go-timeclock/internal/shared/connection"
	"go-timeclock/internal/summary"

	"go.uber.org/zap"
)

// RunBackfill recomputes every daily summary from the full punch history
// and exits. Meant to run as a one-shot job after bulk imports or engine
// changes; safe to rerun since summaries are upserts.
func RunBackfill() error {
	logger := zap.L().Named("app.backfill")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	employeeRepo := employee.NewRepository(gormDB)
	punchRepo := punch.NewRepository(gormDB)
	summaryRepo := summary.NewRepository(gormDB)

	// No outbox and no cache here: the backfill writes summaries only, the
	// event stream stays reserved for online recomputation.
	summaryService := summary.NewService(sqlDB, summaryRepo, punchRepo, employeeRepo, nil, nil, logger)

	written, err := summaryService.RegenerateAll(context.Background())
	if err != nil {
		return err
	}

	logger.Info("backfill complete", zap.Int("summaries_written", written))
	return nil
}
