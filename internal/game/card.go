// internal/game/card.go
package game

// Color is a card face color. Wild cards carry ColorWild until a color
// is chosen for them on the discard pile.
type Color string

const (
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorWild   Color = "wild"
)

// BaseColors are the four colors a wild card can be turned into.
var BaseColors = []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue}

// Value is a card face value. Number cards use their digit ("0".."9");
// the action values match the wire vocabulary the client renders.
type Value string

const (
	ValueSkip         Value = "skip"
	ValueReverse      Value = "reverse"
	ValueDrawTwo      Value = "+2"
	ValueWild         Value = "wild"
	ValueWildDrawFour Value = "wilddraw4"
)

// Card is a single UNO card. Cards are shared by pointer between the
// deck, the discard pile and player hands; the only mutation ever made
// is ChooseColor rewriting a wild card's Color once it hits the top of
// the discard pile.
type Card struct {
	Color Color `json:"color"`
	Value Value `json:"value"`
}

// IsWild reports whether the card was printed wild, regardless of any
// color later applied to it.
func (c *Card) IsWild() bool {
	return c.Value == ValueWild || c.Value == ValueWildDrawFour
}

// CanFollow reports whether the card may legally be played on top.
// A wild candidate always follows; a wild top accepts anything; otherwise
// either the colors or the values must match.
func (c *Card) CanFollow(top *Card) bool {
	if c.Color == ColorWild || top.Color == ColorWild {
		return true
	}
	return c.Color == top.Color || c.Value == top.Value
}

// String renders the card the way the match log shows it.
func (c *Card) String() string {
	return string(c.Color) + " " + string(c.Value)
}

// ValidBaseColor reports whether col is one of the four playable colors.
func ValidBaseColor(col Color) bool {
	for _, c := range BaseColors {
		if c == col {
			return true
		}
	}
	return false
}
