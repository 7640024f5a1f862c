package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/audit"
	main "github.com/fwojciec/linkaudit/cmd/linkaudit"
	"github.com/fwojciec/linkaudit/goquery"
	"github.com/fwojciec/linkaudit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditDeps(fetch func(ctx context.Context, url string) (string, error)) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Analyzer: goquery.NewAnalyzer(),
		Auditor: &audit.Auditor{
			Fetcher:     &mock.Fetcher{FetchFn: fetch},
			Analyzer:    goquery.NewAnalyzer(),
			RetryDelays: []time.Duration{},
		},
	}, stdout, stderr
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	serve := func(_ context.Context, url string) (string, error) {
		if url == "https://example.com/broken" {
			return "", errors.New("HTTP 500")
		}
		return sitePage, nil
	}

	t.Run("prints a text report per page", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := auditDeps(serve)
		cmd := &main.AnalyzeCmd{URLs: []string{"https://example.com/", "https://example.com/about"}, Format: "text"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Links for https://example.com/\n")
		assert.Contains(t, stdout.String(), "Links for https://example.com/about\n")
		assert.Contains(t, stdout.String(), "(3 internal, 2 external)")
	})

	t.Run("encodes YAML list", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := auditDeps(serve)
		cmd := &main.AnalyzeCmd{URLs: []string{"https://example.com/"}, Format: "yaml"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "- url: https://example.com/\n")
		assert.Contains(t, stdout.String(), "total_links: 5")
	})

	t.Run("reports failed pages and returns error", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := auditDeps(serve)
		cmd := &main.AnalyzeCmd{URLs: []string{"https://example.com/", "https://example.com/broken"}, Format: "json"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 pages failed")
		assert.Contains(t, stderr.String(), "skip https://example.com/broken")
		assert.Contains(t, stdout.String(), `"error": "fetch https://example.com/broken: HTTP 500"`)
	})

	t.Run("notes skipped duplicates", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := auditDeps(serve)
		cmd := &main.AnalyzeCmd{URLs: []string{"https://example.com/", "https://EXAMPLE.com/"}, Format: "text"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "skipped 1 duplicate URLs")
	})
}

func TestInspectCmd_Run(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(file, []byte(sitePage+"</div>"), 0o644))

	t.Run("reports parse issues", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := auditDeps(nil)
		cmd := &main.InspectCmd{File: file, Origin: "https://example.com", Format: "text"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Parse issues:     1")
	})

	t.Run("classifies against the given origin", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := auditDeps(nil)
		cmd := &main.InspectCmd{File: file, Origin: "https://partner.org", Format: "json"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), `"url": "https://partner.org"`)
		assert.Contains(t, stdout.String(), `"total_external_links": 0`)
	})

	t.Run("rejects origin without scheme", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := auditDeps(nil)
		cmd := &main.InspectCmd{File: file, Origin: "example.com", Format: "text"}

		assert.Equal(t, linkaudit.EINVALID, linkaudit.ErrorCode(cmd.Run(deps)))
	})
}
