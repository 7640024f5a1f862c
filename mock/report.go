package mock

import (
	"context"

	"github.com/fwojciec/linkaudit"
)

var _ linkaudit.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of linkaudit.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *linkaudit.Report) error
	FindReportByIDFn func(ctx context.Context, id string) (*linkaudit.Report, error)
	FindReportsFn    func(ctx context.Context, filter linkaudit.ReportFilter) ([]*linkaudit.Report, error)
	DeleteReportFn   func(ctx context.Context, id string) error
}

func (s *ReportService) CreateReport(ctx context.Context, report *linkaudit.Report) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*linkaudit.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter linkaudit.ReportFilter) ([]*linkaudit.Report, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}
