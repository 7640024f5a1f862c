package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/linkaudit"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := linkaudit.ReportFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'linkaudit analyze --save' to create one.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(deps.Stdout, "%s  %s  %4d links  %s\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Summary.TotalLinks, r.URL)
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	format, err := linkaudit.ParseFormat(c.Format)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	report, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if format != linkaudit.FormatText {
		return encode(deps.Stdout, format, report)
	}

	fmt.Fprintf(deps.Stdout, "Report %s (%s)\n\n", report.ID, report.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprint(deps.Stdout, linkaudit.FormatSummary(report.URL, report.Summary))
	fmt.Fprintf(deps.Stdout, "\n  Parse issues:     %d\n", report.ParseIssues)
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Reports.DeleteReport(deps.Ctx, c.ID); err != nil {
		printError(deps.Stderr, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted report %s\n", c.ID)
	return nil
}

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	report, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if err := deps.Exporter.Export(c.Path, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported report %s to %s\n", report.ID, c.Path)
	return nil
}
