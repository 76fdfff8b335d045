package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DispatchSummaryJob logs the platform totals on a schedule.
type DispatchSummaryJob struct {
	handler  queries.GetDispatchSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDispatchSummaryJob accepts six-field cron specs (with seconds) and
// descriptors such as "@every 1m".
func NewDispatchSummaryJob(
	handler queries.GetDispatchSummaryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *DispatchSummaryJob {
	return &DispatchSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dispatch_summary_job"),
	}
}

func (j *DispatchSummaryJob) Name() string {
	return "dispatch summary"
}

func (j *DispatchSummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch summary job started", "schedule", j.schedule)
	return nil
}

// Run logs one summary.
func (j *DispatchSummaryJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetDispatchSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch summary job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Dispatch summary",
		"revenue", summary.Revenue.String(),
		"driver_pay", summary.Payouts.String(),
		"completed", summary.Completed,
		"users", summary.Users,
		"drivers", summary.Drivers,
		"available_drivers", summary.AvailableDrivers,
		"pending", summary.Pending(),
		"queue_sizes", summary.QueueSizes,
	)
}

func (j *DispatchSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch summary job stopped")
}
