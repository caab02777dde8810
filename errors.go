package cssmix

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below unwrap to these so callers can use
// errors.Is without caring about the detail.
var (
	ErrUnsupportedUnit  = errors.New("unsupported angle unit")
	ErrInvalidDirection = errors.New("invalid gradient direction")
	ErrTooFewStops      = errors.New("linear gradient needs at least two color stops")
	ErrInvalidColor     = errors.New("invalid color")
)

// UnitError reports an angle unit outside deg, grad, turn and rad
type UnitError struct {
	Unit Unit
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%s %q (want one of deg, grad, turn, rad)", ErrUnsupportedUnit, string(e.Unit))
}

func (e *UnitError) Unwrap() error { return ErrUnsupportedUnit }

// DirectionError reports a value that is neither a direction keyword nor a
// supported angle.
type DirectionError struct {
	Value string
	Err   error // underlying cause, e.g. a *UnitError; may be nil
}

func (e *DirectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", ErrInvalidDirection, e.Value, e.Err)
	}
	return fmt.Sprintf("%s %q", ErrInvalidDirection, e.Value)
}

// Unwrap exposes both ErrInvalidDirection and the underlying cause.
func (e *DirectionError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidDirection, e.Err}
	}
	return []error{ErrInvalidDirection}
}
