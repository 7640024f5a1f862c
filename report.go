package linkaudit

import (
	"context"
	"time"
)

// Report is a persisted link audit of one page.
type Report struct {
	ID          string    `json:"id" yaml:"id"`
	URL         string    `json:"url" yaml:"url"`
	ContentHash string    `json:"contentHash" yaml:"content_hash"`
	ParseIssues int       `json:"parseIssues" yaml:"parse_issues"`
	Summary     Summary   `json:"summary" yaml:"summary"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "report URL required")
	}
	if r.ParseIssues < 0 {
		return Errorf(EINVALID, "report parse issues must not be negative")
	}
	return nil
}

// ReportService represents a service for managing reports.
type ReportService interface {
	// CreateReport stores a new report and assigns its ID and timestamp.
	CreateReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a report by ID.
	// Returns ENOTFOUND if report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// FindReports retrieves reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	// DeleteReport permanently removes a report.
	// Returns ENOTFOUND if report does not exist.
	DeleteReport(ctx context.Context, id string) error
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
