package linkaudit

import (
	"fmt"
	"strings"
)

// ExternalLinkGroup is one distinct external href with the number of
// times it appears on the page.
type ExternalLinkGroup struct {
	Href       string     `json:"href" yaml:"href"`
	FollowType FollowType `json:"follow_type" yaml:"follow_type"`
	InnerText  string     `json:"innertext" yaml:"innertext"`
	Count      int        `json:"count" yaml:"count"`
}

// GroupExternalLinks groups external links by exact href, keeping the
// first occurrence's follow type and text. Groups are in first-seen order.
func GroupExternalLinks(links []ExternalLink) []ExternalLinkGroup {
	groups := make([]ExternalLinkGroup, 0, len(links))
	index := make(map[string]int, len(links))

	for _, link := range links {
		if i, ok := index[link.Href]; ok {
			groups[i].Count++
			continue
		}
		index[link.Href] = len(groups)
		groups = append(groups, ExternalLinkGroup{
			Href:       link.Href,
			FollowType: link.FollowType,
			InnerText:  link.InnerText,
			Count:      1,
		})
	}

	return groups
}

// Label returns the human-readable label for a follow type.
func (f FollowType) Label() string {
	switch f {
	case Nofollow:
		return "NoFollow"
	case Dofollow:
		return "DoFollow"
	}
	return "Unknown"
}

// FormatSummary renders a plain-text link report for the page at url.
func FormatSummary(url string, s Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Links for %s\n\n", url)
	fmt.Fprintf(&sb, "  Total:            %d (%d internal, %d external)\n", s.TotalLinks, s.TotalInternalLinks, s.TotalExternalLinks)
	fmt.Fprintf(&sb, "  Unique:           %d (diversity %.2f)\n", s.UniqueLinksCount, s.LinkDiversityScore)
	fmt.Fprintf(&sb, "  DoFollow:         %d (%.2f%%)\n", s.TotalDofollowLinks, s.PercentageDofollowLinks)
	fmt.Fprintf(&sb, "  NoFollow:         %d (%.2f%%)\n", s.TotalNofollowLinks, s.PercentageNofollowLinks)
	fmt.Fprintf(&sb, "  Target _blank:    %d\n", s.TotalTargetBlankLinks)
	fmt.Fprintf(&sb, "  Text / image:     %d / %d\n", s.TotalTextLinks, s.TotalImageLinks)
	fmt.Fprintf(&sb, "  Empty anchor:     %d\n", s.TotalEmptyLinks)
	fmt.Fprintf(&sb, "  HTTPS / HTTP:     %d / %d\n", s.TotalHTTPSLinks, s.TotalHTTPLinks)
	fmt.Fprintf(&sb, "  Tracking:         %d (%d without)\n", s.TotalTrackingLinks, s.TotalNonTrackingLinks)
	fmt.Fprintf(&sb, "  Avg anchor text:  %.2f chars\n", s.AverageAnchorTextLength)

	if s.TotalLinks > 0 {
		sb.WriteString("\nPositions:\n")
		for _, p := range Positions() {
			if n := s.Positions[p]; n > 0 {
				fmt.Fprintf(&sb, "  %-8s %d\n", p, n)
			}
		}
	}

	if s.UniqueExternalDomainsCount > 0 {
		fmt.Fprintf(&sb, "\nExternal domains (%d):\n", s.UniqueExternalDomainsCount)
		for _, d := range s.ExternalDomains {
			fmt.Fprintf(&sb, "  %s\n", d)
		}
	}

	if groups := GroupExternalLinks(s.ExternalLinks); len(groups) > 0 {
		sb.WriteString("\nExternal links:\n")
		for _, g := range groups {
			text := g.InnerText
			if text == "" {
				text = "(no text)"
			}
			fmt.Fprintf(&sb, "  %dx  %-8s  %s  %s\n", g.Count, g.FollowType.Label(), g.Href, text)
		}
	}

	return sb.String()
}
