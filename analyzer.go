package linkaudit

// Analysis is the outcome of analyzing one page.
type Analysis struct {
	Links   []ClassifiedLink
	Summary Summary

	// ParseIssues counts recoverable markup problems the parser worked
	// around, such as stray end tags or elements left open.
	ParseIssues int
}

// Analyzer extracts and classifies the links of an HTML page.
// Implementations hold no state between calls and are safe for concurrent use.
type Analyzer interface {
	// Analyze parses html and classifies its links against origin.
	// Malformed markup and unresolvable hrefs never cause an error;
	// they only reduce what ends up in the analysis.
	Analyze(html string, origin Origin) (*Analysis, error)
}
