package soiltemp

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/jl-pkgs/bonanmodeling/tridiag"
)

// energyTolerance is the permitted energy-balance residual, W/m².
const energyTolerance = 1e-03

// SolveSurfaceTemperature advances the column temperature one step of
// length dt (s) with a prescribed surface temperature tsurf (K) as the top
// boundary condition and zero flux through the bottom.
//
// Per call:
//  1. Harmonic-mean interface conductances are computed from the current
//     per-layer conductivities.
//  2. The tridiagonal system for the new temperatures is assembled per
//     opts.Scheme: fully implicit, or Crank–Nicolson with halved
//     off-diagonal terms plus half of the explicit time-n flux divergence
//     on the right-hand side.
//  3. The system is solved and the new profile replaces col.Temperature;
//     the time-n snapshot is kept separate so no equation ever reads an
//     already-updated value.
//  4. The surface heat flux gsoi is diagnosed from the surface gradient
//     (averaged over the old and new profiles under Crank–Nicolson, which
//     is the flux the scheme actually applied).
//  5. Phase change is dispatched per opts.Method: ApparentHeatCapacity
//     reports zero flux; ExcessHeat clips crossings of the freezing point
//     and converts the excess energy to ice/water mass change.
//  6. The energy balance Σ cv·dz·ΔT/dt = gsoi + hfsoi is verified to
//     energyTolerance; a violation means inconsistent coefficients, not a
//     bad input, and fails with ErrEnergyConservation.
//
// Errors: ErrNilColumn / ErrBadColumn / ErrBadTimeStep / ErrBadScheme /
// ErrBadMethod / ErrMissingWaterState on precondition violations,
// ErrEnergyConservation on the self-check.
func SolveSurfaceTemperature(col *Column, tsurf, dt float64, opts Options) (Fluxes, error) {
	if err := validateStep(col, dt); err != nil {
		return Fluxes{}, err
	}
	if opts.Scheme != Implicit && opts.Scheme != CrankNicolson {
		return Fluxes{}, ErrBadScheme
	}
	if opts.Method != ApparentHeatCapacity && opts.Method != ExcessHeat {
		return Fluxes{}, ErrBadMethod
	}
	if opts.Method == ExcessHeat && (col.LiquidWater == nil || col.Ice == nil) {
		return Fluxes{}, ErrMissingWaterState
	}

	n := col.Layers()
	coef := interfaceConductance(col) // layer-to-layer, W/m²/K
	surf := surfaceConductance(col)   // surface-to-top-layer, W/m²/K
	told := slices.Clone(col.Temperature)

	// Off-diagonal terms are halved under Crank-Nicolson; the other half of
	// the conduction then enters explicitly through the time-n fluxes.
	theta := 1.0
	if opts.Scheme == CrankNicolson {
		theta = 0.5
	}

	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		m := col.HeatCapacity[i] * col.Thickness[i] / dt
		if i > 0 {
			a[i] = -theta * coef[i-1]
		}
		if i < n-1 {
			c[i] = -theta * coef[i]
		}
		b[i] = m - a[i] - c[i]
		d[i] = m * told[i]
		if i == 0 {
			b[i] += theta * surf
			d[i] += theta * surf * tsurf
		}
		if opts.Scheme == CrankNicolson {
			// Half of the explicit flux divergence at time n.
			f := 0.0
			if i == 0 {
				f += surf * (tsurf - told[i])
			} else {
				f += coef[i-1] * (told[i-1] - told[i])
			}
			if i < n-1 {
				f -= coef[i] * (told[i] - told[i+1])
			}
			d[i] += 0.5 * f
		}
	}

	tnew, err := tridiag.Solve(a, b, c, d)
	if err != nil {
		return Fluxes{}, err
	}
	copy(col.Temperature, tnew)

	// Surface heat flux actually applied by the scheme, positive downward.
	var gsoi float64
	switch opts.Scheme {
	case Implicit:
		gsoi = surf * (tsurf - tnew[0])
	case CrankNicolson:
		gsoi = 0.5 * surf * ((tsurf - told[0]) + (tsurf - tnew[0]))
	}

	// Phase change. Under ApparentHeatCapacity the latent heat already sits
	// inside the heat-capacity curve, so no explicit flux appears here.
	hfsoi := 0.0
	if opts.Method == ExcessHeat {
		hfsoi = adjustPhaseChange(col, dt)
	}

	// Energy-conservation self-check.
	terms := make([]float64, n)
	for i := 0; i < n; i++ {
		terms[i] = col.HeatCapacity[i] * col.Thickness[i] * (col.Temperature[i] - told[i]) / dt
	}
	edif := floats.Sum(terms)
	if residual := edif - gsoi - hfsoi; math.Abs(residual) > energyTolerance {
		return Fluxes{SurfaceHeatFlux: gsoi, PhaseChangeFlux: hfsoi},
			fmt.Errorf("%w: residual %.6e W/m²", ErrEnergyConservation, residual)
	}

	return Fluxes{SurfaceHeatFlux: gsoi, PhaseChangeFlux: hfsoi}, nil
}
