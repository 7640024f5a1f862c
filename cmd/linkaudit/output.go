package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/yaml"
)

// pageResult is the machine-readable audit of one page.
type pageResult struct {
	URL         string             `json:"url" yaml:"url"`
	ReportID    string             `json:"report_id,omitempty" yaml:"report_id,omitempty"`
	ParseIssues int                `json:"parse_issues" yaml:"parse_issues"`
	Summary     *linkaudit.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Error       string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// encode writes v as JSON or YAML. Text output is rendered by the caller.
func encode(w io.Writer, format linkaudit.Format, v any) error {
	switch format {
	case linkaudit.FormatJSON:
		return linkaudit.EncodeJSON(w, v)
	case linkaudit.FormatYAML:
		return yaml.Encode(w, v)
	}
	return linkaudit.Errorf(linkaudit.EINVALID, "format %q has no encoder", format)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", linkaudit.ErrorMessage(err))
}
