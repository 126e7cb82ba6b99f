// Package soiltemp models one-dimensional transient heat conduction through
// a layered soil column.
//
// 🚀 What does it solve?
//
//	The heat diffusion equation over a fixed vertical grid, advanced one
//	implicit (or Crank–Nicolson) time step per call. Two surface boundary
//	conditions are supported, matching the two ways a land-surface scheme
//	hands energy to the soil:
//	  • SolveSurfaceTemperature — the surface temperature is known
//	    (Dirichlet condition); the solver also freezes/melts soil water and
//	    verifies energy conservation.
//	  • SolveSurfaceFlux — the surface energy flux is known only through a
//	    linearization f0 + df0·ΔT₁ (a Taylor expansion of the surface energy
//	    balance); the solver works in temperature increments and resolves
//	    snow-melt energy partitioning at the top layer.
//
// ✨ Key features:
//   - harmonic-mean interface conductivities for layered media
//   - Implicit and CrankNicolson time schemes
//   - ApparentHeatCapacity and ExcessHeat phase-change treatments
//   - strict post-solve energy-balance self-check (Dirichlet variant),
//     failing hard with ErrEnergyConservation on inconsistency
//   - snow melt clipped to the available snow water, holding the top layer
//     at the freezing point while melt proceeds at the potential rate
//
// ⚙️ Usage:
//
//	import "github.com/jl-pkgs/bonanmodeling/soiltemp"
//
//	col := soiltemp.NewColumn([]float64{0.1, 0.1, 0.2, 0.4, 0.8})
//	// ... fill col.Temperature, col.ThermalConductivity, col.HeatCapacity
//	opts := soiltemp.DefaultOptions()
//	flx, err := soiltemp.SolveSurfaceTemperature(col, 270.0, 1800, opts)
//
// Thermal conductivity and heat capacity depend on the moisture and ice
// state and are refreshed by the caller before every step (see package
// soilprops); the solvers read them but never write them. Temperature — and,
// under ExcessHeat, the liquid/ice masses — are mutated in place.
//
// Sign convention: depths are negative below the surface (surface at 0) and
// the surface heat flux is positive downward, into the soil.
//
// Single-threaded by design: calls on the same Column must not overlap.
//
// Complexity:
//
//   - Time:   O(n) per call, n = number of layers
//   - Memory: O(n) scratch per call
package soiltemp
