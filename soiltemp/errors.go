// Package soiltemp: sentinel error set.
// Algorithms return these sentinels (possibly wrapped with context via
// fmt.Errorf("...: %w", ...)); tests match them with errors.Is.
package soiltemp

import "errors"

var (
	// ErrNilColumn indicates a nil *Column was supplied.
	ErrNilColumn = errors.New("soiltemp: column is nil")

	// ErrBadColumn indicates the column arrays are missing, inconsistently
	// sized, non-monotonic in depth, or hold non-positive thicknesses,
	// conductivities, or heat capacities.
	ErrBadColumn = errors.New("soiltemp: invalid column")

	// ErrBadTimeStep indicates dt <= 0 (or NaN).
	ErrBadTimeStep = errors.New("soiltemp: time step must be positive")

	// ErrBadScheme indicates an unknown SolutionScheme value.
	ErrBadScheme = errors.New("soiltemp: unknown solution scheme")

	// ErrBadMethod indicates an unknown PhaseChangeMethod value.
	ErrBadMethod = errors.New("soiltemp: unknown phase-change method")

	// ErrMissingWaterState indicates the ExcessHeat method was requested on
	// a column without liquid water and ice arrays.
	ErrMissingWaterState = errors.New("soiltemp: excess-heat phase change requires liquid water and ice state")

	// ErrEnergyConservation indicates the post-solve energy balance residual
	// exceeded the tolerance. This is an internal-consistency failure — a
	// bug in coefficient construction or an ill-posed input — and is not
	// recoverable by retrying.
	ErrEnergyConservation = errors.New("soiltemp: energy conservation check failed")
)
