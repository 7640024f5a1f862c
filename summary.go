package linkaudit

import (
	"math"
	"unicode/utf8"
)

// ExternalLink is a single outbound link kept for duplicate-aware reporting.
type ExternalLink struct {
	Href       string     `json:"href" yaml:"href"`
	FollowType FollowType `json:"follow_type" yaml:"follow_type"`
	Target     string     `json:"target" yaml:"target"`
	InnerText  string     `json:"innertext" yaml:"innertext"`
	Rel        string     `json:"rel" yaml:"rel"`
}

// Summary aggregates the classified links of one page. Field names are
// stable: they are persisted and read by report consumers.
type Summary struct {
	TotalLinks                 int              `json:"total_links" yaml:"total_links"`
	TotalInternalLinks         int              `json:"total_internal_links" yaml:"total_internal_links"`
	TotalExternalLinks         int              `json:"total_external_links" yaml:"total_external_links"`
	UniqueLinksCount           int              `json:"unique_links_count" yaml:"unique_links_count"`
	TotalNofollowLinks         int              `json:"total_nofollow_links" yaml:"total_nofollow_links"`
	TotalDofollowLinks         int              `json:"total_dofollow_links" yaml:"total_dofollow_links"`
	PercentageNofollowLinks    float64          `json:"percentage_nofollow_links" yaml:"percentage_nofollow_links"`
	PercentageDofollowLinks    float64          `json:"percentage_dofollow_links" yaml:"percentage_dofollow_links"`
	TotalTargetBlankLinks      int              `json:"total_target_blank_links" yaml:"total_target_blank_links"`
	TotalImageLinks            int              `json:"total_image_links" yaml:"total_image_links"`
	TotalTextLinks             int              `json:"total_text_links" yaml:"total_text_links"`
	TotalInternalTextLinks     int              `json:"total_internal_text_links" yaml:"total_internal_text_links"`
	TotalEmptyLinks            int              `json:"total_empty_links" yaml:"total_empty_links"`
	ExternalDomains            []string         `json:"external_domains" yaml:"external_domains"`
	UniqueExternalDomainsCount int              `json:"unique_external_domains_count" yaml:"unique_external_domains_count"`
	TotalHTTPSLinks            int              `json:"total_https_links" yaml:"total_https_links"`
	TotalHTTPLinks             int              `json:"total_http_links" yaml:"total_http_links"`
	TotalTrackingLinks         int              `json:"total_tracking_links" yaml:"total_tracking_links"`
	TotalNonTrackingLinks      int              `json:"total_non_tracking_links" yaml:"total_non_tracking_links"`
	AverageAnchorTextLength    float64          `json:"average_anchor_text_length" yaml:"average_anchor_text_length"`
	LinkDiversityScore         float64          `json:"link_diversity_score" yaml:"link_diversity_score"`
	Positions                  map[Position]int `json:"positions" yaml:"positions"`
	ExternalLinks              []ExternalLink   `json:"external_links" yaml:"external_links"`
}

// Aggregate folds classified links into a Summary. Percentages, ratios and
// averages are rounded to two decimals and are zero when there is nothing
// to divide by.
//
// AverageAnchorTextLength only covers internal text links; external and
// image links do not contribute to it.
func Aggregate(links []ClassifiedLink) Summary {
	s := Summary{
		TotalLinks:      len(links),
		ExternalDomains: []string{},
		ExternalLinks:   []ExternalLink{},
		Positions:       make(map[Position]int, len(Positions())),
	}
	for _, p := range Positions() {
		s.Positions[p] = 0
	}

	hrefs := make(map[string]struct{}, len(links))
	domains := make(map[string]struct{})
	var internalTextLength int

	for _, link := range links {
		hrefs[link.Href] = struct{}{}

		pos := link.Position
		if pos == "" {
			pos = PositionBody
		}
		s.Positions[pos]++

		if link.Internal {
			s.TotalInternalLinks++
		} else {
			s.TotalExternalLinks++
			if _, ok := domains[link.ExternalHost]; !ok {
				domains[link.ExternalHost] = struct{}{}
				s.ExternalDomains = append(s.ExternalDomains, link.ExternalHost)
			}
			s.ExternalLinks = append(s.ExternalLinks, ExternalLink{
				Href:       link.Href,
				FollowType: link.Follow,
				Target:     link.Target,
				InnerText:  link.Text,
				Rel:        link.Rel,
			})
		}

		if link.Follow == Nofollow {
			s.TotalNofollowLinks++
		} else {
			s.TotalDofollowLinks++
		}

		if link.NewTab {
			s.TotalTargetBlankLinks++
		}

		if link.Kind == LinkImage {
			s.TotalImageLinks++
		} else {
			s.TotalTextLinks++
			if link.Internal {
				s.TotalInternalTextLinks++
				internalTextLength += utf8.RuneCountInString(link.Text)
			}
		}

		if link.Text == "" {
			s.TotalEmptyLinks++
		}

		switch {
		case link.HTTPS:
			s.TotalHTTPSLinks++
		case link.HTTP:
			s.TotalHTTPLinks++
		}

		if link.Tracking {
			s.TotalTrackingLinks++
		} else {
			s.TotalNonTrackingLinks++
		}
	}

	s.UniqueLinksCount = len(hrefs)
	s.UniqueExternalDomainsCount = len(domains)
	s.PercentageNofollowLinks = percentage(s.TotalNofollowLinks, s.TotalLinks)
	s.PercentageDofollowLinks = percentage(s.TotalDofollowLinks, s.TotalLinks)
	s.LinkDiversityScore = ratio(s.UniqueLinksCount, s.TotalLinks)
	s.AverageAnchorTextLength = ratio(internalTextLength, s.TotalInternalTextLinks)

	return s
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return round2(float64(num) / float64(den))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
