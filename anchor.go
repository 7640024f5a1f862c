package linkaudit

// Position is the coarse page region an anchor sits in.
type Position string

// Page regions, named after the landmark element that defines them.
const (
	PositionHeader  Position = "header"
	PositionNav     Position = "nav"
	PositionMain    Position = "main"
	PositionFooter  Position = "footer"
	PositionAside   Position = "aside"
	PositionSection Position = "section"
	PositionBody    Position = "body"
)

// Positions returns every region in display order.
func Positions() []Position {
	return []Position{
		PositionHeader,
		PositionNav,
		PositionMain,
		PositionSection,
		PositionAside,
		PositionFooter,
		PositionBody,
	}
}

// LandmarkPosition maps an element name to its region.
// Returns false for elements that are not landmarks.
func LandmarkPosition(element string) (Position, bool) {
	switch Position(element) {
	case PositionHeader, PositionNav, PositionMain, PositionFooter, PositionAside, PositionSection:
		return Position(element), true
	}
	return "", false
}

// RawAnchor is an <a> element as read from the document, before resolution.
type RawAnchor struct {
	Href     string
	Rel      string
	Target   string
	Text     string // trimmed visible text, markup stripped
	HasImage bool   // an <img> is nested somewhere inside the anchor
	Position Position
}
