package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/linkaudit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ linkaudit.ReportService = (*ReportService)(nil)

// ReportService implements linkaudit.ReportService using SQLite.
// Summaries are stored as JSON so that schema changes to Summary don't
// require migrations.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReport stores report, assigning ID and CreatedAt. An empty
// ContentHash is filled with the hash of the summary JSON.
func (s *ReportService) CreateReport(ctx context.Context, report *linkaudit.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	summary, err := json.Marshal(report.Summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC()
	if report.ContentHash == "" {
		report.ContentHash = hashContent(summary)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, url, content_hash, parse_issues, summary_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, report.ID, report.URL, report.ContentHash, report.ParseIssues, string(summary),
		formatTime(report.CreatedAt))

	return err
}

// FindReportByID retrieves a report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*linkaudit.Report, error) {
	reports, err := s.FindReports(ctx, linkaudit.ReportFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, linkaudit.Errorf(linkaudit.ENOTFOUND, "report not found")
	}
	return reports[0], nil
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter linkaudit.ReportFilter) ([]*linkaudit.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, content_hash, parse_issues, summary_json, created_at FROM reports WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []*linkaudit.Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// DeleteReport permanently removes a report.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return linkaudit.Errorf(linkaudit.ENOTFOUND, "report not found")
	}
	return nil
}

func scanReport(rows *sql.Rows) (*linkaudit.Report, error) {
	var report linkaudit.Report
	var summary, createdAt string

	if err := rows.Scan(&report.ID, &report.URL, &report.ContentHash, &report.ParseIssues,
		&summary, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(summary), &report.Summary); err != nil {
		return nil, fmt.Errorf("failed to decode summary_json: %w", err)
	}

	var err error
	report.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &report, nil
}
