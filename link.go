package linkaudit

import "strings"

// FollowType tells crawlers whether a link passes ranking signal.
type FollowType string

// Follow types, derived from the rel attribute.
const (
	Dofollow FollowType = "dofollow"
	Nofollow FollowType = "nofollow"
)

// LinkKind distinguishes text links from image links.
type LinkKind string

// Link kinds.
const (
	LinkText  LinkKind = "text"
	LinkImage LinkKind = "image"
)

// ClassifiedLink is a resolved anchor with all its classification flags.
type ClassifiedLink struct {
	Href     string
	Internal bool
	Follow   FollowType
	NewTab   bool
	Tracking bool

	// HTTPS and HTTP are both false when the href carries no explicit scheme.
	HTTPS bool
	HTTP  bool

	Kind     LinkKind
	Text     string
	Rel      string
	Target   string
	Position Position

	// ExternalHost is set only for external links.
	ExternalHost string
}

// Classify resolves raw against origin and classifies it.
// The second return value is true when the anchor must be skipped because
// its href could not be resolved.
func Classify(raw RawAnchor, origin Origin) (ClassifiedLink, bool) {
	u, ok := Resolve(raw.Href, origin)
	if !ok {
		return ClassifiedLink{}, true
	}

	link := ClassifiedLink{
		Href:     u.Href,
		Follow:   Dofollow,
		NewTab:   strings.EqualFold(raw.Target, "_blank"),
		Tracking: strings.Contains(strings.ToLower(u.Query), "utm_"),
		Kind:     LinkText,
		Text:     raw.Text,
		Rel:      raw.Rel,
		Target:   raw.Target,
		Position: raw.Position,
	}

	// Substring test: any rel string mentioning nofollow counts.
	if strings.Contains(strings.ToLower(raw.Rel), "nofollow") {
		link.Follow = Nofollow
	}

	switch u.Scheme {
	case "https":
		link.HTTPS = true
	case "http":
		link.HTTP = true
	}

	if raw.HasImage {
		link.Kind = LinkImage
	}

	link.Internal = origin.Owns(u.Host)
	if !link.Internal {
		link.ExternalHost = u.Host
	}

	if link.Position == "" {
		link.Position = PositionBody
	}

	return link, false
}

// ClassifyAnchors classifies anchors in order, dropping the ones that
// cannot be resolved.
func ClassifyAnchors(anchors []RawAnchor, origin Origin) []ClassifiedLink {
	links := make([]ClassifiedLink, 0, len(anchors))
	for _, raw := range anchors {
		link, skip := Classify(raw, origin)
		if skip {
			continue
		}
		links = append(links, link)
	}
	return links
}
