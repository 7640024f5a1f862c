package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/audit"
	"github.com/fwojciec/linkaudit/excel"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Reports  linkaudit.ReportService
	Analyzer linkaudit.Analyzer
	Auditor  *audit.Auditor
	Exporter *excel.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"LINKAUDIT_DB" default:"${db_path}" help:"SQLite database path"`
	Verbose bool   `short:"v" help:"Log fetches, analyses and storage calls to stderr"`

	Analyze AnalyzeCmd `cmd:"" help:"Fetch pages and report their links"`
	Inspect InspectCmd `cmd:"" help:"Report the links of a local HTML file"`
	List    ListCmd    `cmd:"" help:"List saved reports"`
	Show    ShowCmd    `cmd:"" help:"Show a saved report"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved report"`
	Export  ExportCmd  `cmd:"" help:"Export a saved report to an XLSX workbook"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Page URLs to audit"`
	Render      bool          `short:"r" help:"Render pages in headless Chrome before extracting links"`
	Format      string        `short:"f" default:"text" help:"Output format: text, json or yaml"`
	Save        bool          `short:"s" help:"Save each report to the database"`
	Concurrency int           `short:"c" env:"LINKAUDIT_CONCURRENCY" default:"4" help:"Concurrent fetch limit"`
	Timeout     time.Duration `env:"LINKAUDIT_TIMEOUT" default:"10s" help:"Per-page fetch timeout"`
	Rate        float64       `default:"1" help:"Requests per second per domain (0 disables limiting)"`
	UserAgent   string        `name:"user-agent" env:"LINKAUDIT_USER_AGENT" help:"User-Agent header for HTTP fetches"`
	Retries     int           `default:"3" help:"Retries per page after a failed fetch"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File   string `arg:"" type:"existingfile" help:"HTML file to analyze"`
	Origin string `required:"" help:"URL the page was served from, e.g. https://example.com"`
	Format string `short:"f" default:"text" help:"Output format: text, json or yaml"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only list reports for this page URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of reports (0 for all)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Report ID"`
	Format string `short:"f" default:"text" help:"Output format: text, json or yaml"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Report ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID   string `arg:"" help:"Report ID"`
	Path string `arg:"" help:"Destination .xlsx file"`
}
