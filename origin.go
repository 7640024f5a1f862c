package linkaudit

import (
	"net/url"
	"strings"
)

// Origin identifies the analyzed page by scheme and host.
type Origin struct {
	Scheme string
	Host   string // without port

	// Authority is host[:port] as it appeared in the page URL. Empty means
	// the same as Host.
	Authority string
}

// ParseOrigin builds an Origin from a page URL.
// Host and Authority are lower-cased; only Authority keeps the port.
func ParseOrigin(rawURL string) (Origin, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Origin{}, Errorf(EINVALID, "invalid page URL: %v", err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return Origin{}, Errorf(EINVALID, "page URL %q must include scheme and host", rawURL)
	}
	return Origin{
		Scheme:    strings.ToLower(u.Scheme),
		Host:      strings.ToLower(u.Hostname()),
		Authority: strings.ToLower(u.Host),
	}, nil
}

// String returns the origin as "scheme://host[:port]".
func (o Origin) String() string {
	return o.Scheme + "://" + o.authority()
}

func (o Origin) authority() string {
	if o.Authority == "" {
		return o.Host
	}
	return o.Authority
}

// Owns reports whether host belongs to the origin. An empty host (a
// document-relative link) is owned, as are the bare and "www." forms
// of the origin host.
func (o Origin) Owns(host string) bool {
	if host == "" {
		return true
	}
	return strings.EqualFold(host, o.Host) || strings.EqualFold(host, "www."+o.Host)
}
