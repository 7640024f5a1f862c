package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/linkaudit"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	format, err := linkaudit.ParseFormat(c.Format)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	origin, err := linkaudit.ParseOrigin(c.Origin)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	html, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	analysis, err := deps.Analyzer.Analyze(string(html), origin)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if format == linkaudit.FormatText {
		fmt.Fprint(deps.Stdout, linkaudit.FormatSummary(c.File, analysis.Summary))
		fmt.Fprintf(deps.Stdout, "\n  Parse issues:     %d\n", analysis.ParseIssues)
		return nil
	}

	return encode(deps.Stdout, format, pageResult{
		URL:         origin.String(),
		ParseIssues: analysis.ParseIssues,
		Summary:     &analysis.Summary,
	})
}
