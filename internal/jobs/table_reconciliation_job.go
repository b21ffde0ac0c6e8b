package jobs

import (
	"context"
	"log/slog"

	"tableside/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TableReconciliationJob periodically re-derives every table's occupancy from
// the open order set. The command handlers already keep occupancy in sync on
// each transition; this job repairs drift introduced by crashes or manual
// database edits.
type TableReconciliationJob struct {
	handler commands.ReconcileTablesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTableReconciliationJob creates a job that reconciles table occupancy
// every 30 seconds.
func NewTableReconciliationJob(
	handler commands.ReconcileTablesCommandHandler,
	logger *slog.Logger,
) *TableReconciliationJob {
	return &TableReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "table_reconciliation_job"),
	}
}

// Start begins the reconciliation job.
func (j *TableReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileTablesCommand()

		changed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Table reconciliation job failed", "error", handleErr)
			return
		}

		if changed > 0 {
			j.logger.WarnContext(ctx, "Table occupancy drift repaired", "tablesChanged", changed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Table reconciliation job started (running every 30 seconds)")
	return nil
}

// Stop stops the reconciliation job.
func (j *TableReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Table reconciliation job stopped")
}
