// Package audit runs link audits over a batch of independent page URLs.
// It coordinates fetching, analysis and optional storage of reports.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/linkaudit"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched at once.
const DefaultConcurrency = 4

// Auditor fetches and analyzes pages. Fetcher and Analyzer are required;
// Reports and RateLimiter are optional.
type Auditor struct {
	Fetcher     linkaudit.Fetcher
	Analyzer    linkaudit.Analyzer
	Reports     linkaudit.ReportService
	RateLimiter linkaudit.DomainLimiter
	Concurrency int

	// RetryDelays defaults to DefaultRetryDelays when nil. An empty,
	// non-nil slice disables retries.
	RetryDelays []time.Duration
	OnRetry     RetryFunc
}

// Outcome is the audit of one input URL.
type Outcome struct {
	URL      string
	Analysis *linkaudit.Analysis

	// Report is set when the analysis was saved.
	Report *linkaudit.Report
	Err    error
}

// Result holds the outcome of AuditAll.
type Result struct {
	// Outcomes has one entry per distinct input URL, in input order.
	Outcomes   []Outcome
	Succeeded  int
	Failed     int
	Duplicates int
}

// ProgressEvent reports progress during AuditAll.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting audit progress. It is always
// called from a single goroutine.
type ProgressFunc func(event ProgressEvent)

type job struct {
	position int
	url      string
	analysis *linkaudit.Analysis
	err      error
}

// AuditAll audits each distinct URL in urls. Per-URL failures are reported
// in the Outcome, not as an error; the returned error is only set when ctx
// is canceled, in which case the partial result is still returned.
func (a *Auditor) AuditAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	result := &Result{Outcomes: []Outcome{}}

	seen := make(map[string]struct{}, len(urls))
	var jobs []*job
	for _, raw := range urls {
		u := strings.TrimSpace(raw)
		key := dedupKey(u)
		if _, ok := seen[key]; ok {
			result.Duplicates++
			continue
		}
		seen[key] = struct{}{}
		jobs = append(jobs, &job{position: len(jobs), url: u})
	}

	total := len(jobs)
	notify := func(e ProgressEvent) {
		if progress != nil {
			e.Total = total
			progress(e)
		}
	}
	notify(ProgressEvent{Type: ProgressStarted})

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	done := make(chan *job, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, j := range jobs {
			g.Go(func() error {
				a.process(gctx, j)
				done <- j
				return nil
			})
		}
		_ = g.Wait()
		close(done)
	}()

	completed := 0
	for j := range done {
		completed++
		if j.err != nil {
			notify(ProgressEvent{Type: ProgressFailed, Completed: completed, URL: j.url, Error: j.err})
			continue
		}
		notify(ProgressEvent{Type: ProgressCompleted, Completed: completed, URL: j.url})
	}

	result.Outcomes = make([]Outcome, len(jobs))
	for _, j := range jobs {
		out := Outcome{URL: j.url, Analysis: j.analysis, Err: j.err}
		if out.Err == nil && a.Reports != nil {
			out.Report, out.Err = a.save(ctx, j)
		}
		if out.Err != nil {
			result.Failed++
		} else {
			result.Succeeded++
		}
		result.Outcomes[j.position] = out
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total})

	return result, ctx.Err()
}

// process fetches and analyzes a single URL.
func (a *Auditor) process(ctx context.Context, j *job) {
	origin, err := linkaudit.ParseOrigin(j.url)
	if err != nil {
		j.err = err
		return
	}

	delays := a.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetch := func(ctx context.Context, url string) (string, error) {
		if a.RateLimiter != nil {
			if err := a.RateLimiter.Wait(ctx, origin.Host); err != nil {
				return "", err
			}
		}
		return a.Fetcher.Fetch(ctx, url)
	}

	html, err := FetchWithRetry(ctx, j.url, fetch, delays, a.OnRetry)
	if err != nil {
		j.err = fmt.Errorf("fetch %s: %w", j.url, err)
		return
	}

	j.analysis, err = a.Analyzer.Analyze(html, origin)
	if err != nil {
		j.err = fmt.Errorf("analyze %s: %w", j.url, err)
	}
}

func (a *Auditor) save(ctx context.Context, j *job) (*linkaudit.Report, error) {
	report := &linkaudit.Report{
		URL:         j.url,
		ParseIssues: j.analysis.ParseIssues,
		Summary:     j.analysis.Summary,
	}
	if err := a.Reports.CreateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("save %s: %w", j.url, err)
	}
	return report, nil
}

// dedupKey treats URLs that differ only in scheme or host case, or in a
// trailing fragment, as the same page.
func dedupKey(u string) string {
	if i := strings.IndexByte(u, '#'); i >= 0 {
		u = u[:i]
	}
	if i := strings.Index(u, "://"); i >= 0 {
		rest := u[i+3:]
		end := strings.IndexAny(rest, "/?")
		if end < 0 {
			end = len(rest)
		}
		return strings.ToLower(u[:i+3+end]) + rest[end:]
	}
	return u
}
