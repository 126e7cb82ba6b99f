// Package soiltemp: configuration enums, options, and result types.
package soiltemp

// SolutionScheme selects the time discretization of the diffusion equation.
//
//   - Implicit      — fully implicit (backward Euler): unconditionally
//     stable, first-order accurate in time.
//   - CrankNicolson — averages the explicit (time-n) and implicit (time-n+1)
//     flux terms: second-order accurate, still unconditionally stable for
//     diffusion.
type SolutionScheme int

const (
	// Implicit evaluates all conduction fluxes at the new time level.
	Implicit SolutionScheme = iota

	// CrankNicolson averages conduction fluxes between the old and new
	// time levels.
	CrankNicolson
)

// String implements fmt.Stringer.
func (s SolutionScheme) String() string {
	switch s {
	case Implicit:
		return "implicit"
	case CrankNicolson:
		return "crank-nicolson"
	default:
		return "unknown"
	}
}

// PhaseChangeMethod selects how freezing and thawing of soil water are
// represented in the surface-temperature solver.
//
//   - ApparentHeatCapacity — latent heat is folded into an effective heat
//     capacity curve near the freezing point (by the property collaborator,
//     see package soilprops); no explicit mass bookkeeping, and the solver
//     reports zero phase-change flux.
//   - ExcessHeat — layer temperatures crossing the freezing point are
//     clipped back to it and the surplus or deficit energy is converted to
//     ice/water mass change, limited by the mass available.
type PhaseChangeMethod int

const (
	// ApparentHeatCapacity embeds phase change in the heat-capacity curve.
	ApparentHeatCapacity PhaseChangeMethod = iota

	// ExcessHeat performs explicit clip-and-convert phase change with
	// ice/water mass bookkeeping.
	ExcessHeat
)

// String implements fmt.Stringer.
func (m PhaseChangeMethod) String() string {
	switch m {
	case ApparentHeatCapacity:
		return "apparent-heat-capacity"
	case ExcessHeat:
		return "excess-heat"
	default:
		return "unknown"
	}
}

// Options configures a solver call. Both fields are per-run configuration;
// switching them between steps of the same simulation is not meaningful.
type Options struct {
	// Scheme is the time discretization. Default: Implicit.
	Scheme SolutionScheme

	// Method is the phase-change treatment of the surface-temperature
	// solver. Ignored by SolveSurfaceFlux. Default: ApparentHeatCapacity.
	Method PhaseChangeMethod
}

// DefaultOptions returns the default solver configuration:
// Implicit time stepping with the ApparentHeatCapacity method.
func DefaultOptions() Options {
	return Options{Scheme: Implicit, Method: ApparentHeatCapacity}
}

// Fluxes carries the energy fluxes diagnosed by a solver call, W/m²,
// positive into the soil.
type Fluxes struct {
	// SurfaceHeatFlux (gsoi) is the conductive heat flux across the
	// soil surface over the step.
	SurfaceHeatFlux float64

	// PhaseChangeFlux (hfsoi) is the aggregate latent energy released by
	// freezing (positive) or consumed by melting (negative) soil water.
	// Zero under the ApparentHeatCapacity method and for the flux variant.
	PhaseChangeFlux float64
}

// SnowMelt reports the snow-melt partitioning resolved by SolveSurfaceFlux.
// Both fields are recomputed on every call; nothing is persisted.
type SnowMelt struct {
	// Rate is the melt rate, kg/m²/s, bounded by the available snow water
	// divided by the time step.
	Rate float64

	// EnergyFlux is the latent energy consumed by the melt, W/m²
	// (Rate times the latent heat of fusion), withdrawn from the top
	// soil layer's energy balance.
	EnergyFlux float64
}
