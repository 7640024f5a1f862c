package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/audit"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	format, err := linkaudit.ParseFormat(c.Format)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	progress := func(event audit.ProgressEvent) {
		if event.Type == audit.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := deps.Auditor.AuditAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error auditing: %v\n", err)
		return err
	}

	if format == linkaudit.FormatText {
		c.printText(deps, result)
	} else {
		results := make([]pageResult, 0, len(result.Outcomes))
		for _, out := range result.Outcomes {
			results = append(results, newPageResult(out))
		}
		if err := encode(deps.Stdout, format, results); err != nil {
			printError(deps.Stderr, err)
			return err
		}
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d pages failed", result.Failed, len(result.Outcomes))
	}
	return nil
}

func (c *AnalyzeCmd) printText(deps *Dependencies, result *audit.Result) {
	var blocks []string
	for _, out := range result.Outcomes {
		if out.Analysis == nil {
			continue
		}
		block := linkaudit.FormatSummary(out.URL, out.Analysis.Summary)
		if out.Analysis.ParseIssues > 0 {
			block += fmt.Sprintf("\n  Parse issues:     %d\n", out.Analysis.ParseIssues)
		}
		if out.Report != nil {
			block += fmt.Sprintf("\n  Saved report %s\n", out.Report.ID)
		}
		blocks = append(blocks, block)
	}
	fmt.Fprint(deps.Stdout, strings.Join(blocks, "\n"))

	if result.Duplicates > 0 {
		fmt.Fprintf(deps.Stderr, "  skipped %d duplicate URLs\n", result.Duplicates)
	}
}

func newPageResult(out audit.Outcome) pageResult {
	r := pageResult{URL: out.URL}
	if out.Analysis != nil {
		r.ParseIssues = out.Analysis.ParseIssues
		r.Summary = &out.Analysis.Summary
	}
	if out.Report != nil {
		r.ReportID = out.Report.ID
	}
	if out.Err != nil {
		r.Error = out.Err.Error()
	}
	return r
}
