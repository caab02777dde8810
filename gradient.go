package cssmix

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorStop is a colour with an optional position along the gradient axis
type ColorStop struct {
	Color    string // "#E47D7D", "rgba(0, 0, 0, .5)", "red"
	Position string // "0%", "10px" or empty
}

// String renders the stop as CSS text
func (s ColorStop) String() string {
	if s.Position == "" {
		return s.Color
	}
	return s.Color + " " + s.Position
}

func (ColorStop) isGradientArg() {}

// Validate checks hex colours for well-formedness. Named and functional
// colours are passed through untouched.
func (s ColorStop) Validate() error {
	c := strings.TrimSpace(s.Color)
	if c == "" {
		return fmt.Errorf("%w: empty color", ErrInvalidColor)
	}
	if !strings.HasPrefix(c, "#") {
		return nil
	}

	digits := strings.ToLower(c[1:])
	for _, r := range digits {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return fmt.Errorf("%w %q", ErrInvalidColor, c)
		}
	}
	switch len(digits) {
	case 3, 6:
		if _, err := colorful.Hex("#" + digits); err != nil {
			return fmt.Errorf("%w %q: %v", ErrInvalidColor, c, err)
		}
	case 4, 8:
		// #rgba / #rrggbbaa; go-colorful has no alpha form
	default:
		return fmt.Errorf("%w %q", ErrInvalidColor, c)
	}
	return nil
}

// GradientArg is the first argument of a linear gradient: either a Direction
// or, in the shorthand form, the first ColorStop.
type GradientArg interface {
	isGradientArg()
}

// Gradient is a parsed linear gradient
type Gradient struct {
	Direction Direction
	Stops     []ColorStop
}

// NewGradient resolves the shorthand form once, up front. A Direction first
// argument must be valid; an invalid one is an error, not a colour stop.
// A ColorStop first argument means the direction was
// omitted: it defaults to 180deg and the argument becomes the first stop.
func NewGradient(first GradientArg, stops ...ColorStop) (Gradient, error) {
	var g Gradient

	switch arg := first.(type) {
	case Direction:
		if !IsDirection(arg) {
			return Gradient{}, &DirectionError{Value: arg.String()}
		}
		g.Direction = arg
		g.Stops = append([]ColorStop(nil), stops...)
	case ColorStop:
		g.Direction = DefaultDirection
		g.Stops = append([]ColorStop{arg}, stops...)
	case nil:
		g.Direction = DefaultDirection
		g.Stops = append([]ColorStop(nil), stops...)
	default:
		return Gradient{}, fmt.Errorf("unsupported gradient argument %T", first)
	}

	if err := g.Validate(); err != nil {
		return Gradient{}, err
	}
	return g, nil
}

// Validate checks the direction, the stop count and every stop colour
func (g Gradient) Validate() error {
	if !IsDirection(g.Direction) {
		return &DirectionError{Value: g.Direction.String()}
	}
	if len(g.Stops) < 2 {
		return fmt.Errorf("%w (got %d)", ErrTooFewStops, len(g.Stops))
	}
	for i, s := range g.Stops {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("color stop %d: %w", i+1, err)
		}
	}
	return nil
}

// stopList renders the stops as a comma separated list, verbatim
func (g Gradient) stopList() string {
	parts := make([]string, len(g.Stops))
	for i, s := range g.Stops {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// String renders the modern linear-gradient() value
func (g Gradient) String() string {
	return fmt.Sprintf("linear-gradient(%s, %s)", g.Direction, g.stopList())
}

// Declarations renders the fallback, legacy and modern forms of g
func (g Gradient) Declarations() (Declarations, error) {
	if err := g.Validate(); err != nil {
		return Declarations{}, err
	}

	legacy, err := LegacyDirection(g.Direction)
	if err != nil {
		return Declarations{}, err
	}

	return Declarations{
		Fallback: g.Stops[0].Color,
		Legacy:   fmt.Sprintf("-webkit-linear-gradient(%s, %s)", legacy, g.stopList()),
		Modern:   g.String(),
	}, nil
}

// Declarations is the cross-browser output of a linear gradient
type Declarations struct {
	Fallback string // flat colour for browsers without gradient support
	Legacy   string // -webkit-linear-gradient(...)
	Modern   string // linear-gradient(...)
}

// Lines renders the declarations for property ("background-image" when
// empty). The fallback always goes to background-color.
func (d Declarations) Lines(property string) []string {
	if property == "" {
		property = "background-image"
	}
	return []string{
		fmt.Sprintf("background-color: %s;", d.Fallback),
		fmt.Sprintf("%s: %s;", property, d.Legacy),
		fmt.Sprintf("%s: %s;", property, d.Modern),
	}
}

// LinearGradient parses its arguments and emits the three declarations.
//
//	decl, err := cssmix.LinearGradient(
//		cssmix.KeywordDirection(cssmix.ToRight),
//		cssmix.ColorStop{Color: "#E47D7D", Position: "0%"},
//		cssmix.ColorStop{Color: "#4FB4E8", Position: "100%"},
//	)
func LinearGradient(first GradientArg, stops ...ColorStop) (Declarations, error) {
	g, err := NewGradient(first, stops...)
	if err != nil {
		return Declarations{}, err
	}
	return g.Declarations()
}
