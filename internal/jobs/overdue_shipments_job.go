package jobs

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueShipmentsJob periodically reports shipments whose estimated
// delivery date has passed while the status is still active. The report is
// log-only; operators act on it through the dashboard.
type OverdueShipmentsJob struct {
	handler queries.ListOverdueShipmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueShipmentsJob creates a job that checks for overdue shipments
// at the top of every hour.
func NewOverdueShipmentsJob(
	handler queries.ListOverdueShipmentsQueryHandler, logger *slog.Logger,
) *OverdueShipmentsJob {
	return &OverdueShipmentsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_shipments_job"),
	}
}

// Start begins the hourly overdue check.
func (j *OverdueShipmentsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipments job started (running hourly)")
	return nil
}

// Stop stops the overdue check.
func (j *OverdueShipmentsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipments job stopped")
}

func (j *OverdueShipmentsJob) run() {
	ctx := context.Background()

	query, err := queries.NewListOverdueShipmentsQuery(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue shipments job failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue shipments job failed", "error", err)
		return
	}

	if len(overdue) == 0 {
		j.logger.DebugContext(ctx, "No overdue shipments")
		return
	}

	perTenant := make(map[string]int)
	for _, item := range overdue {
		perTenant[item.TenantID.String()]++
	}

	j.logger.WarnContext(ctx, "Overdue shipments detected",
		"total", len(overdue), "tenants", len(perTenant))
	for tenantID, count := range perTenant {
		j.logger.WarnContext(ctx, "Overdue shipments for tenant",
			"tenantId", tenantID, "count", count)
	}
}
