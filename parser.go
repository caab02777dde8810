package cssmix

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

const linearGradientFunc = "linear-gradient("

// ParseGradient parses the arguments of linear-gradient(), e.g.
// "to right, #E47D7D 0%, #4FB4E8 100%".
//
// A first argument that is shaped like a direction ("to ..." or a number with
// a unit) must be a valid one: "to the moon" or "45parsec" is returned as an
// error wrapping ErrInvalidDirection and is never reread as a colour stop.
// Only an argument that does not look like a direction at all ("red",
// "#fff", "rgba(...)") is read as the first colour stop, and the direction
// then defaults to 180deg.
func ParseGradient(value string) (Gradient, error) {
	args, err := splitArgs(value)
	if err != nil {
		return Gradient{}, err
	}

	var direction *Direction
	if len(args) > 0 && looksLikeDirection(args[0]) {
		d, err := ParseDirection(args[0])
		if err != nil {
			return Gradient{}, err
		}
		direction = &d
		args = args[1:]
	}

	stops := make([]ColorStop, 0, len(args))
	for _, arg := range args {
		stop, err := ParseColorStop(arg)
		if err != nil {
			return Gradient{}, err
		}
		stops = append(stops, stop)
	}

	switch {
	case direction != nil:
		return NewGradient(*direction, stops...)
	case len(stops) == 0:
		return NewGradient(nil)
	default:
		return NewGradient(stops[0], stops[1:]...)
	}
}

// ParseLinearGradient parses a complete "linear-gradient(...)" value
func ParseLinearGradient(text string) (Gradient, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(strings.ToLower(text), linearGradientFunc) || !strings.HasSuffix(text, ")") {
		return Gradient{}, fmt.Errorf("not a linear-gradient() value: %q", text)
	}
	return ParseGradient(text[len(linearGradientFunc) : len(text)-1])
}

// ParseColorStop splits "rgba(0, 0, 0, .5) 20%" into colour and position.
// Up to two trailing positions are kept together ("red 10% 40%"), and
// calc(), min(), max(), clamp() and var() count as positions after a colour.
func ParseColorStop(s string) (ColorStop, error) {
	components, err := splitComponents(s)
	if err != nil {
		return ColorStop{}, err
	}
	if len(components) == 0 {
		return ColorStop{}, fmt.Errorf("%w: empty color stop", ErrInvalidColor)
	}

	colorEnd := len(components)
	for colorEnd > 1 && len(components)-colorEnd < 2 && components[colorEnd-1].position {
		colorEnd--
	}

	stop := ColorStop{Color: joinComponents(components[:colorEnd])}
	if colorEnd < len(components) {
		stop.Position = joinComponents(components[colorEnd:])
	}
	return stop, nil
}

// component is one whitespace separated part of a CSS value
type component struct {
	text     string
	position bool // percentage, length or unitless number
}

func joinComponents(cs []component) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.text
	}
	return strings.Join(parts, " ")
}

// splitComponents splits a value on top-level whitespace
func splitComponents(s string) ([]component, error) {
	lexer := css.NewLexer(parse.NewInputString(s))

	var components []component
	var cur strings.Builder
	items := 0 // top-level tokens or function calls in cur
	position := false
	depth := 0

	flush := func() {
		if cur.Len() > 0 {
			components = append(components, component{text: cur.String(), position: items == 1 && position})
		}
		cur.Reset()
		items = 0
		position = false
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("tokenize %q: %w", s, err)
			}
			break
		}

		switch tt {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			if depth == 0 {
				flush()
			} else {
				cur.WriteByte(' ')
			}
			continue
		}

		if depth == 0 {
			items++
			position = isPositionToken(tt, text)
		}

		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", s)
			}
		}
		cur.Write(text)
	}

	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", s)
	}
	flush()
	return components, nil
}

// positionFuncs are the functions that can only stand for a length or
// percentage. var() may hold either, so it counts as a position only after a
// colour, which ParseColorStop ensures by never taking the first component.
var positionFuncs = map[string]bool{
	"calc": true, "min": true, "max": true, "clamp": true, "var": true,
}

func isPositionToken(tt css.TokenType, text []byte) bool {
	switch tt {
	case css.PercentageToken, css.DimensionToken, css.NumberToken:
		return true
	case css.FunctionToken:
		name := strings.ToLower(strings.TrimSuffix(string(text), "("))
		return positionFuncs[name]
	default:
		return false
	}
}

// splitArgs splits a function argument list on top-level commas and
// collapses whitespace inside each argument.
func splitArgs(value string) ([]string, error) {
	lexer := css.NewLexer(parse.NewInputString(value))

	var args []string
	var cur strings.Builder
	depth := 0
	pendingSpace := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("tokenize %q: %w", value, err)
			}
			break
		}

		switch tt {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			pendingSpace = cur.Len() > 0
			continue
		case css.CommaToken:
			if depth == 0 {
				arg := strings.TrimSpace(cur.String())
				if arg == "" {
					return nil, fmt.Errorf("empty argument in %q", value)
				}
				args = append(args, arg)
				cur.Reset()
				pendingSpace = false
				continue
			}
			pendingSpace = false
			cur.Write(text)
			continue
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", value)
			}
			pendingSpace = false
		}

		if pendingSpace {
			cur.WriteByte(' ')
			pendingSpace = false
		}
		cur.Write(text)
	}

	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", value)
	}
	if arg := strings.TrimSpace(cur.String()); arg != "" {
		args = append(args, arg)
	} else if len(args) > 0 {
		return nil, fmt.Errorf("empty argument in %q", value)
	}
	return args, nil
}

// findLinearGradient locates the first unprefixed linear-gradient(...) call
// in a declaration value and returns its byte range [start, end). end is -1
// when the call is not closed on this line.
func findLinearGradient(value string) (start, end int, ok bool) {
	lower := strings.ToLower(value)
	offset := 0
	for {
		idx := strings.Index(lower[offset:], linearGradientFunc)
		if idx < 0 {
			return 0, 0, false
		}
		start = offset + idx
		offset = start + len(linearGradientFunc)

		// skip -webkit-linear-gradient and repeating-linear-gradient
		if start > 0 && (lower[start-1] == '-' || isNameByte(lower[start-1])) {
			continue
		}

		depth := 0
		for i := start; i < len(value); i++ {
			switch value[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return start, i + 1, true
				}
			}
		}
		return start, -1, true
	}
}

func isNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_'
}

// declSpan is a "property: value" declaration found inside a line
type declSpan struct {
	start, end int // byte range of the declaration, without its ';'
	property   string
	value      string
	valueStart int
}

var spanPattern = regexp.MustCompile(`^\s*([A-Za-z-]+)\s*:\s*(.*?)\s*$`)

// lineDeclarations splits a line into declaration-shaped segments with the
// CSS lexer. Segments end at top-level ';', '{' and '}' and at end of line.
// code is line with comments blanked out, byte for byte.
func lineDeclarations(line string) (code string, spans []declSpan) {
	lexer := css.NewLexer(parse.NewInputString(line))

	var b strings.Builder
	segStart, offset, depth := 0, 0, 0
	endSegment := func(end int) {
		if span, ok := parseDeclSpan(b.String(), segStart, end); ok {
			spans = append(spans, span)
		}
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.CommentToken:
			b.WriteString(strings.Repeat(" ", len(text)))
			offset += len(text)
			continue
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken:
			if depth == 0 {
				endSegment(offset)
				segStart = offset + len(text)
			}
		}
		b.Write(text)
		offset += len(text)
	}
	endSegment(b.Len())

	return b.String(), spans
}

func parseDeclSpan(code string, start, end int) (declSpan, bool) {
	if start >= end || end > len(code) {
		return declSpan{}, false
	}
	m := spanPattern.FindStringSubmatchIndex(code[start:end])
	if m == nil {
		return declSpan{}, false
	}
	return declSpan{
		start:      start + m[2],
		end:        start + m[5],
		property:   code[start+m[2] : start+m[3]],
		value:      code[start+m[4] : start+m[5]],
		valueStart: start + m[4],
	}, true
}
