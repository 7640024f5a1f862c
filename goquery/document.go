// Package goquery implements link extraction over HTML documents parsed
// with github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkaudit"
	"golang.org/x/net/html"
)

// Document is a leniently parsed HTML page.
type Document struct {
	*goquery.Document

	// ParseIssues counts markup problems the parser recovered from.
	ParseIssues int
}

// Parse parses src into a Document. Malformed markup never fails: the
// HTML5 parsing algorithm repairs it and the repairs are counted in
// ParseIssues.
func Parse(src string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, linkaudit.Errorf(linkaudit.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{
		Document:    doc,
		ParseIssues: countParseIssues(src),
	}, nil
}

// voidElements never have end tags.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// impliedEndElements may legally be left open.
var impliedEndElements = map[string]bool{
	"html": true, "head": true, "body": true, "p": true, "li": true,
	"dt": true, "dd": true, "option": true, "optgroup": true, "tr": true,
	"td": true, "th": true, "thead": true, "tbody": true, "tfoot": true,
	"colgroup": true, "caption": true, "rb": true, "rt": true, "rp": true,
}

// countParseIssues replays the token stream against a stack of open
// elements. Every end tag with no matching open element is one issue, as
// is every element that has to be closed implicitly by an outer end tag or
// by the end of input, unless its end tag is optional.
func countParseIssues(src string) int {
	z := html.NewTokenizer(strings.NewReader(src))
	var stack []string
	issues := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			for _, tag := range stack {
				if !impliedEndElements[tag] {
					issues++
				}
			}
			return issues

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if !voidElements[tag] {
				stack = append(stack, tag)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if voidElements[tag] {
				issues++
				continue
			}

			i := len(stack) - 1
			for i >= 0 && stack[i] != tag {
				i--
			}
			if i < 0 {
				issues++
				continue
			}
			for _, open := range stack[i+1:] {
				if !impliedEndElements[open] {
					issues++
				}
			}
			stack = stack[:i]
		}
	}
}
