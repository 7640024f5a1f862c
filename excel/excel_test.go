package excel_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/excel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testReport() *linkaudit.Report {
	origin := linkaudit.Origin{Scheme: "https", Host: "example.com"}
	links := linkaudit.ClassifyAnchors([]linkaudit.RawAnchor{
		{Href: "/", Text: "Home", Position: linkaudit.PositionNav},
		{Href: "https://partner.org/", Text: "Partner", Position: linkaudit.PositionFooter},
		{Href: "https://partner.org/", Rel: "nofollow", Text: "Partner again"},
		{Href: "https://news.site/story", Rel: "nofollow"},
	}, origin)
	return &linkaudit.Report{
		ID:          "r-1",
		URL:         "https://example.com/",
		ParseIssues: 2,
		Summary:     linkaudit.Aggregate(links),
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func export(t *testing.T) *excelize.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, excel.NewExporter().Export(path, testReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes the three sheets in order", func(t *testing.T) {
		t.Parallel()

		f := export(t)
		assert.Equal(t, []string{excel.SheetSummary, excel.SheetExternalLinks, excel.SheetDomains}, f.GetSheetList())
	})

	t.Run("summary sheet lists metrics", func(t *testing.T) {
		t.Parallel()

		rows, err := export(t).GetRows(excel.SheetSummary)
		require.NoError(t, err)

		values := make(map[string]string, len(rows))
		for _, row := range rows {
			require.Len(t, row, 2)
			values[row[0]] = row[1]
		}
		assert.Equal(t, "Value", values["Metric"])
		assert.Equal(t, "https://example.com/", values["URL"])
		assert.Equal(t, "2", values["Parse issues"])
		assert.Equal(t, "4", values["Total links"])
		assert.Equal(t, "3", values["External links"])
		assert.Equal(t, "1", values["Links in nav"])
		assert.Equal(t, "2", values["Links in body"])
	})

	t.Run("external links sheet groups duplicates", func(t *testing.T) {
		t.Parallel()

		rows, err := export(t).GetRows(excel.SheetExternalLinks)
		require.NoError(t, err)

		assert.Equal(t, [][]string{
			{"Href", "Follow", "Anchor text", "Count"},
			{"https://partner.org/", "DoFollow", "Partner", "2"},
			{"https://news.site/story", "NoFollow", "", "1"},
		}, rows)
	})

	t.Run("domains sheet keeps first-seen order", func(t *testing.T) {
		t.Parallel()

		rows, err := export(t).GetRows(excel.SheetDomains)
		require.NoError(t, err)

		assert.Equal(t, [][]string{{"Domain"}, {"partner.org"}, {"news.site"}}, rows)
	})

	t.Run("returns error for unwritable path", func(t *testing.T) {
		t.Parallel()

		err := excel.NewExporter().Export("/nonexistent/dir/report.xlsx", testReport())
		require.Error(t, err)
	})
}
