package cssmix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGradient(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		direction string
		stops     []ColorStop
	}{
		{
			name:      "keyword with positions",
			input:     "to right, #E47D7D 0%, #C195D3 50%, #4FB4E8 100%",
			direction: "to right",
			stops: []ColorStop{
				{Color: "#E47D7D", Position: "0%"},
				{Color: "#C195D3", Position: "50%"},
				{Color: "#4FB4E8", Position: "100%"},
			},
		},
		{
			name:      "shorthand without direction",
			input:     "#31B7D7, #EDAC7D",
			direction: "180deg",
			stops:     []ColorStop{{Color: "#31B7D7"}, {Color: "#EDAC7D"}},
		},
		{
			name:      "angle direction",
			input:     "45deg, red, blue",
			direction: "45deg",
			stops:     []ColorStop{{Color: "red"}, {Color: "blue"}},
		},
		{
			name:      "functional colors keep inner commas",
			input:     "to bottom, rgba(0,0,0,.5) 20%, rgb(255, 255, 255) 10px",
			direction: "to bottom",
			stops: []ColorStop{
				{Color: "rgba(0,0,0,.5)", Position: "20%"},
				{Color: "rgb(255, 255, 255)", Position: "10px"},
			},
		},
		{
			name:      "whitespace is collapsed",
			input:     "  to   top  left ,\n  red   0 ,blue 40% 60%",
			direction: "to top left",
			stops: []ColorStop{
				{Color: "red", Position: "0"},
				{Color: "blue", Position: "40% 60%"},
			},
		},
		{
			name:      "comments are ignored",
			input:     "to left /* reversed */, red, blue",
			direction: "to left",
			stops:     []ColorStop{{Color: "red"}, {Color: "blue"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGradient(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.direction, g.Direction.String())
			assert.Equal(t, tt.stops, g.Stops)
		})
	}
}

func TestParseGradientErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "unknown keyword", input: "to the moon, red, blue", wantErr: ErrInvalidDirection},
		{name: "unsupported unit", input: "45parsec, red, blue", wantErr: ErrUnsupportedUnit},
		{name: "single stop", input: "red", wantErr: ErrTooFewStops},
		{name: "direction only", input: "to right", wantErr: ErrTooFewStops},
		{name: "empty", input: "", wantErr: ErrTooFewStops},
		{name: "bad hex", input: "to right, #zzz, red", wantErr: ErrInvalidColor},
		{name: "empty argument", input: "red, , blue"},
		{name: "trailing comma", input: "red, blue,"},
		{name: "unbalanced", input: "rgba(0,0,0, red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGradient(tt.input)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseGradientFunctionPositions(t *testing.T) {
	g, err := ParseGradient("to right, red calc(10% + 5px), blue")
	require.NoError(t, err)
	assert.Equal(t, []ColorStop{
		{Color: "red", Position: "calc(10% + 5px)"},
		{Color: "blue"},
	}, g.Stops)

	decl, err := g.Declarations()
	require.NoError(t, err)
	assert.Equal(t, "red", decl.Fallback)
	assert.Equal(t, "-webkit-linear-gradient(left, red calc(10% + 5px), blue)", decl.Legacy)
}

func TestParseLinearGradient(t *testing.T) {
	g, err := ParseLinearGradient("Linear-Gradient(to right, #E47D7D 0%, #4FB4E8 100%)")
	require.NoError(t, err)
	assert.Equal(t, "linear-gradient(to right, #E47D7D 0%, #4FB4E8 100%)", g.String())

	_, err = ParseLinearGradient("radial-gradient(red, blue)")
	assert.Error(t, err)

	_, err = ParseLinearGradient("linear-gradient(red, blue")
	assert.Error(t, err)
}

func TestParseColorStop(t *testing.T) {
	tests := []struct {
		input string
		want  ColorStop
	}{
		{input: "#E47D7D 0%", want: ColorStop{Color: "#E47D7D", Position: "0%"}},
		{input: "red", want: ColorStop{Color: "red"}},
		{input: "rgba(0, 0, 0, .5) 20%", want: ColorStop{Color: "rgba(0, 0, 0, .5)", Position: "20%"}},
		{input: "hsl(120 50% 50%) 2em", want: ColorStop{Color: "hsl(120 50% 50%)", Position: "2em"}},
		{input: "var(--accent) 30%", want: ColorStop{Color: "var(--accent)", Position: "30%"}},
		{input: "blue 10% 20%", want: ColorStop{Color: "blue", Position: "10% 20%"}},
		{input: "red calc(10% + 5px)", want: ColorStop{Color: "red", Position: "calc(10% + 5px)"}},
		{input: "blue min(10%, 2em) max(50%, 4em)", want: ColorStop{Color: "blue", Position: "min(10%, 2em) max(50%, 4em)"}},
		{input: "#fff clamp(0%, 5vw, 20%)", want: ColorStop{Color: "#fff", Position: "clamp(0%, 5vw, 20%)"}},
		{input: "var(--start) var(--start-at)", want: ColorStop{Color: "var(--start)", Position: "var(--start-at)"}},
		{input: "var(--accent)", want: ColorStop{Color: "var(--accent)"}},
		{input: "rgb(0 0 0) CALC(1em)", want: ColorStop{Color: "rgb(0 0 0)", Position: "CALC(1em)"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorStop(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindLinearGradient(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantFound bool
		want      string
		unclosed  bool
	}{
		{name: "plain", value: "linear-gradient(red, blue)", wantFound: true, want: "linear-gradient(red, blue)"},
		{name: "nested parens", value: "linear-gradient(rgba(0,0,0,.5), blue) !important", wantFound: true, want: "linear-gradient(rgba(0,0,0,.5), blue)"},
		{name: "webkit prefixed", value: "-webkit-linear-gradient(left, red, blue)"},
		{name: "repeating", value: "repeating-linear-gradient(red, blue 10%)"},
		{name: "after prefixed", value: "-webkit-linear-gradient(red, blue), linear-gradient(red, blue)", wantFound: true, want: "linear-gradient(red, blue)"},
		{name: "unclosed", value: "linear-gradient(", wantFound: true, unclosed: true},
		{name: "none", value: "url(bg.png)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := findLinearGradient(tt.value)
			require.Equal(t, tt.wantFound, ok)
			if !ok {
				return
			}
			if tt.unclosed {
				assert.Equal(t, -1, end)
				return
			}
			assert.Equal(t, tt.want, tt.value[start:end])
		})
	}
}
