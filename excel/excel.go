// Package excel exports link reports as XLSX workbooks using
// github.com/xuri/excelize/v2.
package excel

import (
	"fmt"

	"github.com/fwojciec/linkaudit"
	"github.com/xuri/excelize/v2"
)

// Sheet names, in workbook order.
const (
	SheetSummary       = "Summary"
	SheetExternalLinks = "External Links"
	SheetDomains       = "Domains"
)

// Exporter writes reports to XLSX files.
type Exporter struct{}

// NewExporter returns a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes report to path, replacing any existing file.
func (e *Exporter) Export(path string, report *linkaudit.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetExternalLinks, SheetDomains} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"305496"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	s := report.Summary
	sheets := []struct {
		name   string
		widths []float64
		rows   [][]any
	}{
		{SheetSummary, []float64{32, 48}, summaryRows(report)},
		{SheetExternalLinks, []float64{60, 12, 40, 8}, externalLinkRows(s)},
		{SheetDomains, []float64{40}, domainRows(s)},
	}

	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, sh.widths, sh.rows, header); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, widths []float64, rows [][]any, header int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	if err := f.SetRowStyle(sheet, 1, 1, header); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func summaryRows(r *linkaudit.Report) [][]any {
	s := r.Summary
	rows := [][]any{
		{"Metric", "Value"},
		{"URL", r.URL},
		{"Report ID", r.ID},
		{"Created", r.CreatedAt.Format("2006-01-02 15:04:05 MST")},
		{"Parse issues", r.ParseIssues},
		{"Total links", s.TotalLinks},
		{"Internal links", s.TotalInternalLinks},
		{"External links", s.TotalExternalLinks},
		{"Unique links", s.UniqueLinksCount},
		{"Link diversity score", s.LinkDiversityScore},
		{"DoFollow links", s.TotalDofollowLinks},
		{"NoFollow links", s.TotalNofollowLinks},
		{"DoFollow %", s.PercentageDofollowLinks},
		{"NoFollow %", s.PercentageNofollowLinks},
		{"Target _blank links", s.TotalTargetBlankLinks},
		{"Text links", s.TotalTextLinks},
		{"Image links", s.TotalImageLinks},
		{"Empty anchor text", s.TotalEmptyLinks},
		{"HTTPS links", s.TotalHTTPSLinks},
		{"HTTP links", s.TotalHTTPLinks},
		{"Tracking links", s.TotalTrackingLinks},
		{"Non-tracking links", s.TotalNonTrackingLinks},
		{"Average anchor text length", s.AverageAnchorTextLength},
		{"Unique external domains", s.UniqueExternalDomainsCount},
	}
	for _, p := range linkaudit.Positions() {
		rows = append(rows, []any{"Links in " + string(p), s.Positions[p]})
	}
	return rows
}

func externalLinkRows(s linkaudit.Summary) [][]any {
	rows := [][]any{{"Href", "Follow", "Anchor text", "Count"}}
	for _, g := range linkaudit.GroupExternalLinks(s.ExternalLinks) {
		rows = append(rows, []any{g.Href, g.FollowType.Label(), g.InnerText, g.Count})
	}
	return rows
}

func domainRows(s linkaudit.Summary) [][]any {
	rows := [][]any{{"Domain"}}
	for _, d := range s.ExternalDomains {
		rows = append(rows, []any{d})
	}
	return rows
}
