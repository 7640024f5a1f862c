package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkaudit"
)

// Ensure LoggingReportService implements linkaudit.ReportService.
var _ linkaudit.ReportService = (*LoggingReportService)(nil)

// LoggingReportService wraps a ReportService and logs each call at info
// level.
type LoggingReportService struct {
	next   linkaudit.ReportService
	logger *slog.Logger
}

// NewLoggingReportService creates a new LoggingReportService.
func NewLoggingReportService(next linkaudit.ReportService, logger *slog.Logger) *LoggingReportService {
	return &LoggingReportService{next: next, logger: logger}
}

// CreateReport delegates to the wrapped service and logs the assigned ID.
func (s *LoggingReportService) CreateReport(ctx context.Context, report *linkaudit.Report) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create report",
			"url", report.URL,
			"id", report.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateReport(ctx, report)
}

// FindReportByID delegates to the wrapped service.
func (s *LoggingReportService) FindReportByID(ctx context.Context, id string) (report *linkaudit.Report, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find report",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindReportByID(ctx, id)
}

// FindReports delegates to the wrapped service and logs the result count.
func (s *LoggingReportService) FindReports(ctx context.Context, filter linkaudit.ReportFilter) (reports []*linkaudit.Report, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find reports",
			"count", len(reports),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindReports(ctx, filter)
}

// DeleteReport delegates to the wrapped service.
func (s *LoggingReportService) DeleteReport(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete report",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteReport(ctx, id)
}
