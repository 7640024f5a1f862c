package linkaudit

import (
	"net/url"
	"strings"
)

// ResolvedURL is an href after resolution against the page origin.
type ResolvedURL struct {
	Href   string // absolute form, or the raw href for document-relative links
	Scheme string
	Host   string
	Path   string
	Query  string
}

// Resolve normalizes rawHref against origin.
//
// Protocol-relative hrefs get the origin scheme and root-relative hrefs get
// the origin scheme, host and port. Everything else is parsed as given, so
// document-relative hrefs keep an empty scheme and host. Empty, "#" and
// "tel:" hrefs are rejected, as is anything url.Parse refuses.
func Resolve(rawHref string, origin Origin) (ResolvedURL, bool) {
	href := strings.TrimSpace(rawHref)
	if href == "" || href == "#" {
		return ResolvedURL{}, false
	}
	if isTelephone(href) {
		return ResolvedURL{}, false
	}

	switch {
	case strings.HasPrefix(href, "//"):
		href = origin.Scheme + ":" + href
	case strings.HasPrefix(href, "/"):
		href = origin.String() + href
	}

	u, err := url.Parse(href)
	if err != nil {
		return ResolvedURL{}, false
	}

	return ResolvedURL{
		Href:   href,
		Scheme: strings.ToLower(u.Scheme),
		Host:   strings.ToLower(u.Hostname()),
		Path:   u.Path,
		Query:  u.RawQuery,
	}, true
}

func isTelephone(href string) bool {
	return len(href) >= 4 && strings.EqualFold(href[:4], "tel:")
}
