package types

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned for inputs that can not define a valid model:
	// over or under determined gases, unsupported nozzle types, geometry styles,
	// correlation or channel names
	ErrConfiguration = errors.New("configuration error")

	// ErrDomain is returned when a position or pressure is outside the range a relation is defined on
	ErrDomain = errors.New("domain error")

	// ErrInfeasible is returned for physically impossible operating points
	ErrInfeasible = errors.New("physically infeasible")

	// ErrMissingComponent is returned when an analysis needs a component that was never added to the engine
	ErrMissingComponent = errors.New("missing engine component")
)

// UnchokedError reports a throat larger than the choked-flow limit
type UnchokedError struct {
	At, MaxAt float64
}

func (e *UnchokedError) Error() string {
	return fmt.Sprintf("the nozzle throat is not choked (At = %g m^2), "+
		"you need to reduce the throat area to at least %g m^2", e.At, e.MaxAt)
}

func (e *UnchokedError) Unwrap() error { return ErrInfeasible }

// SeparationError reports flow separation inside the nozzle
type SeparationError struct {
	PAmb     float64 // Ambient pressure (Pa)
	Position float64 // Separation point downstream of the throat (m)
}

func (e *SeparationError) Error() string {
	return fmt.Sprintf("flow separation occurred in the nozzle at an ambient pressure of %g Pa, "+
		"at a position %g m downstream of the throat", e.PAmb, e.Position)
}

func (e *SeparationError) Unwrap() error { return ErrInfeasible }
