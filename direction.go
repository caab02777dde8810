package cssmix

import (
	"errors"
	"strings"
)

// Keyword is a compass phrase such as "to top right"
type Keyword string

// Modern gradient direction keywords
const (
	ToTop         Keyword = "to top"
	ToTopRight    Keyword = "to top right"
	ToRightTop    Keyword = "to right top"
	ToRight       Keyword = "to right"
	ToBottomRight Keyword = "to bottom right"
	ToRightBottom Keyword = "to right bottom"
	ToBottom      Keyword = "to bottom"
	ToBottomLeft  Keyword = "to bottom left"
	ToLeftBottom  Keyword = "to left bottom"
	ToLeft        Keyword = "to left"
	ToLeftTop     Keyword = "to left top"
	ToTopLeft     Keyword = "to top left"
)

// legacyKeywords maps every modern keyword to the side the legacy syntax
// starts from, which is the opposite of the side the modern syntax points to.
var legacyKeywords = map[Keyword]Keyword{
	ToTop:         "bottom",
	ToTopRight:    "bottom left",
	ToRightTop:    "left bottom",
	ToRight:       "left",
	ToBottomRight: "top left",
	ToRightBottom: "left top",
	ToBottom:      "top",
	ToBottomLeft:  "top right",
	ToLeftBottom:  "right top",
	ToLeft:        "right",
	ToLeftTop:     "right bottom",
	ToTopLeft:     "bottom right",
}

// Keywords returns the twelve modern direction keywords
func Keywords() []Keyword {
	return []Keyword{
		ToTop, ToTopRight, ToRightTop, ToRight,
		ToBottomRight, ToRightBottom, ToBottom, ToBottomLeft,
		ToLeftBottom, ToLeft, ToLeftTop, ToTopLeft,
	}
}

// IsValid reports whether k is one of the twelve modern keywords
func (k Keyword) IsValid() bool {
	_, ok := legacyKeywords[k]
	return ok
}

type directionKind int

const (
	kindNone directionKind = iota
	kindKeyword
	kindAngle
)

// Direction is the orientation of a gradient: exactly one of a keyword or an
// angle. The zero value holds neither and is not a valid direction.
type Direction struct {
	kind    directionKind
	keyword Keyword
	angle   Angle
}

// KeywordDirection returns a keyword direction. The keyword is not validated;
// use IsDirection for that.
func KeywordDirection(k Keyword) Direction {
	return Direction{kind: kindKeyword, keyword: k}
}

// AngleDirection returns an angle direction
func AngleDirection(a Angle) Direction {
	return Direction{kind: kindAngle, angle: a}
}

// DefaultDirection is the implicit direction of a linear gradient (top to bottom)
var DefaultDirection = AngleDirection(Angle{Value: 180, Unit: Deg})

// IsKeyword reports whether d holds a keyword
func (d Direction) IsKeyword() bool { return d.kind == kindKeyword }

// IsAngle reports whether d holds an angle
func (d Direction) IsAngle() bool { return d.kind == kindAngle }

// Keyword returns the keyword and whether d holds one
func (d Direction) Keyword() (Keyword, bool) {
	return d.keyword, d.kind == kindKeyword
}

// Angle returns the angle and whether d holds one
func (d Direction) Angle() (Angle, bool) {
	return d.angle, d.kind == kindAngle
}

// String renders the direction as CSS text
func (d Direction) String() string {
	switch d.kind {
	case kindKeyword:
		return string(d.keyword)
	case kindAngle:
		return d.angle.String()
	default:
		return ""
	}
}

func (Direction) isGradientArg() {}

// IsDirection reports whether d is a usable modern direction: one of the
// twelve keywords, or an angle in deg, grad, turn or rad.
func IsDirection(d Direction) bool {
	switch d.kind {
	case kindKeyword:
		return d.keyword.IsValid()
	case kindAngle:
		return d.angle.Unit.IsSupported()
	default:
		return false
	}
}

// ParseDirection parses CSS direction text such as "to right" or "45deg".
// Whitespace between keyword words is normalised and matching ignores case.
func ParseDirection(s string) (Direction, error) {
	text := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if text == "" {
		return Direction{}, &DirectionError{Value: s}
	}

	if isKeywordShaped(text) {
		k := Keyword(text)
		if !k.IsValid() {
			return Direction{}, &DirectionError{Value: s}
		}
		return KeywordDirection(k), nil
	}

	a, err := ParseAngle(text)
	if err != nil {
		var unitErr *UnitError
		if errors.As(err, &unitErr) {
			return Direction{}, &DirectionError{Value: s, Err: unitErr}
		}
		return Direction{}, &DirectionError{Value: s}
	}
	return AngleDirection(a), nil
}

// isKeywordShaped reports whether text starts with the "to" keyword
func isKeywordShaped(text string) bool {
	return text == "to" || strings.HasPrefix(text, "to ")
}

// looksLikeDirection reports whether text is meant as a direction even if it
// is not a valid one: a "to ..." phrase or a number with a unit.
func looksLikeDirection(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if isKeywordShaped(text) {
		return true
	}
	_, unit, ok := splitDimension(text)
	return ok && isIdent(unit)
}

func isIdent(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '-' {
			return false
		}
	}
	return s != ""
}

// LegacyDirection converts a modern direction into the equivalent for the
// prefixed legacy gradient syntax.
//
// Keywords map to the opposite side ("to top" becomes "bottom"). The returned
// keyword is a legacy phrase and is not itself a modern direction. Angles are
// converted to degrees and measured from the legacy axis: 90deg - angle.
func LegacyDirection(d Direction) (Direction, error) {
	if !IsDirection(d) {
		return Direction{}, &DirectionError{Value: d.String()}
	}

	if k, ok := d.Keyword(); ok {
		return KeywordDirection(legacyKeywords[k]), nil
	}

	deg, err := d.angle.To(Deg)
	if err != nil {
		return Direction{}, &DirectionError{Value: d.String(), Err: err}
	}
	return AngleDirection(Angle{Value: 90 - deg.Value, Unit: Deg}), nil
}
