package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkaudit"
)

// Ensure LoggingAnalyzer implements linkaudit.Analyzer.
var _ linkaudit.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer and logs link counts per page at info
// level.
type LoggingAnalyzer struct {
	next   linkaudit.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next linkaudit.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the link counts.
func (a *LoggingAnalyzer) Analyze(html string, origin linkaudit.Origin) (analysis *linkaudit.Analysis, err error) {
	defer func(begin time.Time) {
		attrs := []any{"origin", origin.String(), "duration", time.Since(begin)}
		if analysis != nil {
			attrs = append(attrs,
				"links", analysis.Summary.TotalLinks,
				"external", analysis.Summary.TotalExternalLinks,
				"parse_issues", analysis.ParseIssues,
			)
		}
		attrs = append(attrs, "err", err)
		a.logger.Info("analyze", attrs...)
	}(time.Now())
	return a.next.Analyze(html, origin)
}
