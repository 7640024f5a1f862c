package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkaudit"
)

// Locate walks up from sel and returns the region of the nearest
// enclosing landmark element, or PositionBody when there is none.
func Locate(sel *goquery.Selection) linkaudit.Position {
	for current := sel.Parent(); current.Length() > 0; current = current.Parent() {
		if pos, ok := linkaudit.LandmarkPosition(goquery.NodeName(current)); ok {
			return pos
		}
	}
	return linkaudit.PositionBody
}
