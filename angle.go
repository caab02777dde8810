package cssmix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is a CSS angle unit.
type Unit string

// Supported angle units
const (
	Deg  Unit = "deg"
	Grad Unit = "grad"
	Turn Unit = "turn"
	Rad  Unit = "rad"
)

// angleUnits and angleFactors are parallel: angleFactors[i] is how many
// angleUnits[i] make up one degree.
var (
	angleUnits   = []Unit{Deg, Grad, Turn, Rad}
	angleFactors = []float64{1, 10.0 / 9.0, 1.0 / 360.0, math.Pi / 180.0}
)

// Units returns the supported angle units in lookup order
func Units() []Unit {
	units := make([]Unit, len(angleUnits))
	copy(units, angleUnits)
	return units
}

// IsSupported reports whether u is one of deg, grad, turn or rad
func (u Unit) IsSupported() bool {
	return unitIndex(u) >= 0
}

func unitIndex(u Unit) int {
	for i, candidate := range angleUnits {
		if candidate == u {
			return i
		}
	}
	return -1
}

// ConvertAngle converts value from one angle unit to another.
//
// An unknown unit on either side returns a *UnitError; no partial value is
// ever returned.
func ConvertAngle(value float64, from, to Unit) (float64, error) {
	fromIdx := unitIndex(from)
	if fromIdx < 0 {
		return 0, &UnitError{Unit: from}
	}
	toIdx := unitIndex(to)
	if toIdx < 0 {
		return 0, &UnitError{Unit: to}
	}
	if fromIdx == toIdx {
		return value, nil
	}
	return value / angleFactors[fromIdx] * angleFactors[toIdx], nil
}

// Angle is a numeric magnitude tagged with a unit
type Angle struct {
	Value float64
	Unit  Unit
}

// To returns the angle expressed in unit.
func (a Angle) To(unit Unit) (Angle, error) {
	v, err := ConvertAngle(a.Value, a.Unit, unit)
	if err != nil {
		return Angle{}, err
	}
	return Angle{Value: v, Unit: unit}, nil
}

// String renders the angle as CSS text, e.g. "48deg"
func (a Angle) String() string {
	return formatNumber(a.Value) + string(a.Unit)
}

// ParseAngle parses a CSS dimension such as "45deg", "-0.25turn" or "1.5rad".
// Units are matched case-insensitively.
func ParseAngle(s string) (Angle, error) {
	s = strings.TrimSpace(s)
	value, unit, ok := splitDimension(s)
	if !ok {
		return Angle{}, fmt.Errorf("parse angle %q: not a dimension", s)
	}
	u := Unit(strings.ToLower(unit))
	if !u.IsSupported() {
		return Angle{}, &UnitError{Unit: u}
	}
	return Angle{Value: value, Unit: u}, nil
}

// splitDimension separates the numeric prefix of a CSS dimension from its
// unit. Both parts must be non-empty.
func splitDimension(s string) (float64, string, bool) {
	end := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || ((r == '-' || r == '+') && i == 0) {
			end = i + 1
			continue
		}
		break
	}
	if end == 0 || end == len(s) {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, "", false
	}
	return value, s[end:], true
}

// formatNumber renders a float in its shortest CSS form.
// Conversion noise below 1e-9 is rounded away so 90-42 prints as 48.
func formatNumber(v float64) string {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		v = r
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
