package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkaudit"
)

// ExtractAnchors returns every navigational anchor of doc in document order.
// Anchors without an href, or whose trimmed href is empty or "#", are
// left out.
func ExtractAnchors(doc *goquery.Document) []linkaudit.RawAnchor {
	var anchors []linkaudit.RawAnchor

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || href == "#" {
			return
		}

		rel, _ := sel.Attr("rel")
		target, _ := sel.Attr("target")

		anchors = append(anchors, linkaudit.RawAnchor{
			Href:     href,
			Rel:      rel,
			Target:   target,
			Text:     strings.TrimSpace(sel.Text()),
			HasImage: sel.Find("img").Length() > 0,
			Position: Locate(sel),
		})
	})

	return anchors
}
