package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkaudit"
)

// Ensure Analyzer implements linkaudit.Analyzer at compile time.
var _ linkaudit.Analyzer = (*Analyzer)(nil)

// Analyzer classifies the links of HTML pages.
// Analyzer is stateless and safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze parses html and classifies its links against origin.
func (a *Analyzer) Analyze(html string, origin linkaudit.Origin) (*linkaudit.Analysis, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}

	analysis := AnalyzeDocument(doc.Document, origin)
	analysis.ParseIssues = doc.ParseIssues
	return analysis, nil
}

// AnalyzeDocument classifies the links of an already parsed document.
// The document is only read.
func AnalyzeDocument(doc *goquery.Document, origin linkaudit.Origin) *linkaudit.Analysis {
	links := linkaudit.ClassifyAnchors(ExtractAnchors(doc), origin)
	return &linkaudit.Analysis{
		Links:   links,
		Summary: linkaudit.Aggregate(links),
	}
}
