package text

import "golang.org/x/text/unicode/bidi"

// Direction is the resolved direction of a text run.
type Direction uint8

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// DominantDirection resolves the paragraph direction of the text with
// the Unicode bidi algorithm. Neutral text (digits, punctuation,
// whitespace) resolves to left-to-right.
func DominantDirection(text string) Direction {
	if text == "" {
		return DirectionLTR
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return DirectionLTR
	}
	if p.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}
