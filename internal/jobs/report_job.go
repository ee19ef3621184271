package jobs

import (
	"context"
	"log/slog"

	"swiftgo/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type ShippingReporter interface {
	Handle(ctx context.Context, query queries.GetShippingReportQuery) (queries.GetShippingReportQueryResponse, error)
}

// ReportJob logs the shipping report summary on a schedule.
type ReportJob struct {
	reporter ShippingReporter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewReportJob(reporter ShippingReporter, schedule string, logger *slog.Logger) *ReportJob {
	return &ReportJob{
		reporter: reporter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "report_job"),
	}
}

func (j *ReportJob) Run(ctx context.Context) error {
	report, err := j.reporter.Handle(ctx, queries.NewGetShippingReportQuery())
	if err != nil {
		return err
	}

	s := report.Summary
	j.logger.InfoContext(ctx, "Shipping report",
		"total_orders", s.TotalOrders,
		"revenue", s.Revenue.Int64(),
		"pending", s.Statuses.Pending,
		"proses", s.Statuses.Proses,
		"selesai", s.Statuses.Selesai,
		"dibatalkan", s.Statuses.Dibatalkan,
	)
	return nil
}

func (j *ReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Report job started", "schedule", j.schedule)
	return nil
}

func (j *ReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Report job stopped")
}
