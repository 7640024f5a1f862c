package mock

import "github.com/fwojciec/linkaudit"

var _ linkaudit.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of linkaudit.Analyzer.
type Analyzer struct {
	AnalyzeFn func(html string, origin linkaudit.Origin) (*linkaudit.Analysis, error)
}

func (a *Analyzer) Analyze(html string, origin linkaudit.Origin) (*linkaudit.Analysis, error) {
	return a.AnalyzeFn(html, origin)
}
