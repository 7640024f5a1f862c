package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/audit"
	"github.com/fwojciec/linkaudit/excel"
	"github.com/fwojciec/linkaudit/goquery"
	lahttp "github.com/fwojciec/linkaudit/http"
	"github.com/fwojciec/linkaudit/rod"
	laslog "github.com/fwojciec/linkaudit/slog"
	"github.com/fwojciec/linkaudit/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env is fine; values already in the environment win.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path, used when neither --db nor LINKAUDIT_DB is set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher, when set, replaces the HTTP and browser fetchers.
	Fetcher linkaudit.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkaudit"),
		kong.Description("Extract and classify the links of web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"db_path": m.DBPath},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'linkaudit --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Selected().Name

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var analyzer linkaudit.Analyzer = goquery.NewAnalyzer()
	if logger != nil {
		analyzer = laslog.NewLoggingAnalyzer(analyzer, logger)
	}
	deps.Analyzer = analyzer
	deps.Exporter = excel.NewExporter()

	needsDB := cmd != "inspect" && (cmd != "analyze" || cli.Analyze.Save)
	if needsDB {
		if err := m.openDB(cli.DB); err != nil {
			fmt.Fprintln(stderr, "Hint: Set LINKAUDIT_DB or --db to use a different database path")
			return err
		}
		defer m.Close()

		var reports linkaudit.ReportService = sqlite.NewReportService(m.DB)
		if logger != nil {
			reports = laslog.NewLoggingReportService(reports, logger)
		}
		deps.Reports = reports
	}

	if cmd == "analyze" {
		fetcher, err := m.fetcher(cli.Analyze)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()
		if logger != nil {
			fetcher = laslog.NewLoggingFetcher(fetcher, logger)
		}

		deps.Auditor = &audit.Auditor{
			Fetcher:     fetcher,
			Analyzer:    analyzer,
			RateLimiter: audit.NewDomainLimiter(cli.Analyze.Rate),
			Concurrency: cli.Analyze.Concurrency,
			RetryDelays: retryDelays(cli.Analyze.Retries),
		}
		if cli.Analyze.Save {
			deps.Auditor.Reports = deps.Reports
		}
		if logger != nil {
			deps.Auditor.OnRetry = func(url string, attempt int, err error) {
				logger.Warn("retry", "url", url, "attempt", attempt, "err", err)
			}
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string) error {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

func (m *Main) fetcher(c AnalyzeCmd) (linkaudit.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if c.Render {
		return rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
	}
	opts := []lahttp.Option{lahttp.WithTimeout(c.Timeout)}
	if c.UserAgent != "" {
		opts = append(opts, lahttp.WithUserAgent(c.UserAgent))
	}
	return lahttp.NewFetcher(opts...), nil
}

// retryDelays doubles from one second: 1s, 2s, 4s, ...
func retryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	for i := range n {
		delays = append(delays, time.Second<<i)
	}
	return delays
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "linkaudit.db"
	}
	return filepath.Join(home, ".linkaudit", "linkaudit.db")
}
