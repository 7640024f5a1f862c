package goquery_test

import (
	"strings"
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDocument(t *testing.T, html string) *pq.Document {
	t.Helper()
	doc, err := pq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractAnchors(t *testing.T) {
	t.Parallel()

	t.Run("reads href, rel, target and text in document order", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><body>
<a href=" /first " rel="nofollow noopener" target="_blank">  First <b>link</b>  </a>
<p><a href="https://other.com/second">Second</a></p>
</body></html>`)

		anchors := goquery.ExtractAnchors(doc)

		require.Len(t, anchors, 2)
		assert.Equal(t, linkaudit.RawAnchor{
			Href:     "/first",
			Rel:      "nofollow noopener",
			Target:   "_blank",
			Text:     "First link",
			Position: linkaudit.PositionBody,
		}, anchors[0])
		assert.Equal(t, "https://other.com/second", anchors[1].Href)
		assert.Equal(t, "Second", anchors[1].Text)
	})

	t.Run("trims text but keeps inner whitespace", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, "<body><a href=\"/x\">\n  many\n   spaces  </a></body>")

		anchors := goquery.ExtractAnchors(doc)

		require.Len(t, anchors, 1)
		assert.Equal(t, "many\n   spaces", anchors[0].Text)
	})

	t.Run("drops anchors without navigational href", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<body>
<a name="top">Top</a>
<a href="">Empty</a>
<a href="   ">Blank</a>
<a href="#">Hash</a>
<a href=" # ">Spaced hash</a>
<a href="#section">Section</a>
</body>`)

		anchors := goquery.ExtractAnchors(doc)

		require.Len(t, anchors, 1)
		assert.Equal(t, "#section", anchors[0].Href)
	})

	t.Run("detects directly and indirectly nested images", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<body>
<a href="/a"><img src="a.png"></a>
<a href="/b"><span><picture><img src="b.png"></picture></span> Caption</a>
<a href="/c">No image</a>
</body>`)

		anchors := goquery.ExtractAnchors(doc)

		require.Len(t, anchors, 3)
		assert.True(t, anchors[0].HasImage)
		assert.Empty(t, anchors[0].Text)
		assert.True(t, anchors[1].HasImage)
		assert.Equal(t, "Caption", anchors[1].Text)
		assert.False(t, anchors[2].HasImage)
	})

	t.Run("survives malformed markup", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<div><a href="/one">one</div><p><a href="/two">two</span>`)

		anchors := goquery.ExtractAnchors(doc)

		require.Len(t, anchors, 2)
		assert.Equal(t, "/one", anchors[0].Href)
		assert.Equal(t, "/two", anchors[1].Href)
	})
}
