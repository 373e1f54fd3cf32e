package jobs

import (
	"context"
	"log/slog"

	"catering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogReportJob periodically logs how many orders are waiting on staff.
// It gives operators a heartbeat of the order pipeline without opening the
// dashboard.
type BacklogReportJob struct {
	handler queries.GetOrderBacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogReportJob creates a job reporting the order backlog.
func NewBacklogReportJob(handler queries.GetOrderBacklogQueryHandler, logger *slog.Logger) *BacklogReportJob {
	return &BacklogReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "backlog_report_job"),
	}
}

// Start begins the backlog report job to run every five minutes.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		backlog, err := j.handler.Handle(ctx, queries.NewGetOrderBacklogQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order backlog",
			"awaiting_confirmation", backlog.AwaitingConfirmation,
			"awaiting_courier", backlog.AwaitingCourier,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started (running every five minutes)")
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
