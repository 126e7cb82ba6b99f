package soiltemp

import (
	"math"
	"slices"

	"github.com/jl-pkgs/bonanmodeling/physcon"
)

// SolveSurfaceFlux advances the column temperature one step of length dt
// (s) when the top boundary condition is a linearized surface energy flux
//
//	gsoi(T₁ⁿ⁺¹) ≈ f0 + df0·(T₁ⁿ⁺¹ - T₁ⁿ)
//
// with f0 the flux evaluated at the current top-layer temperature (W/m²,
// positive into the soil) and df0 its derivative with respect to that
// temperature (W/m²/K, ≤ 0 for a stabilizing feedback). snowWaterMass
// (kg/m²) is the snow available for melting; zero flux closes the bottom.
//
// The system is solved for the temperature increments ΔT rather than the
// absolute temperatures, which makes the flux linearization enter only the
// surface row: b(1) = cv₁·dz₁/dt - c(1) - df0. Elimination runs bottom-up
// so the surface equation reduces to a scalar num/den before any increment
// is committed; that is where snow melt is resolved:
//
//   - provisional top temperature tsoiTest = T₁ⁿ + num/den
//   - potential melt max(0, (tsoiTest - Tfrz)·den/Lf), clipped to
//     snowWaterMass/dt
//   - the melt energy Rate·Lf is withdrawn from the surface equation, so
//     while snow melts at the potential rate the top layer is held exactly
//     at the freezing point
//
// The remaining increments follow by top-down substitution. Returns the
// realized surface flux f0 + df0·ΔT₁ and the snow-melt partitioning.
// opts.Method is ignored: this variant performs no soil phase change, and —
// unlike SolveSurfaceTemperature — no energy-conservation self-check
// (snow-melt accounting stands in for it; see the package tests).
//
// Errors: ErrNilColumn / ErrBadColumn / ErrBadTimeStep / ErrBadScheme.
func SolveSurfaceFlux(col *Column, f0, df0, dt, snowWaterMass float64, opts Options) (Fluxes, SnowMelt, error) {
	if err := validateStep(col, dt); err != nil {
		return Fluxes{}, SnowMelt{}, err
	}
	if opts.Scheme != Implicit && opts.Scheme != CrankNicolson {
		return Fluxes{}, SnowMelt{}, ErrBadScheme
	}

	n := col.Layers()
	coef := interfaceConductance(col)
	told := slices.Clone(col.Temperature)

	theta := 1.0
	if opts.Scheme == CrankNicolson {
		theta = 0.5
	}

	// Increment system: off-diagonals carry theta times the conductances,
	// the right-hand side carries the full explicit flux divergence at
	// time n plus f0 in the surface row.
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		m := col.HeatCapacity[i] * col.Thickness[i] / dt
		if i > 0 {
			a[i] = -theta * coef[i-1]
			d[i] += coef[i-1] * (told[i-1] - told[i])
		}
		if i < n-1 {
			c[i] = -theta * coef[i]
			d[i] -= coef[i] * (told[i] - told[i+1])
		}
		b[i] = m - a[i] - c[i]
		if i == 0 {
			b[i] -= df0
			d[i] += f0
		}
	}

	// Bottom-up elimination leaves the surface equation as den·ΔT₁ = num.
	den := make([]float64, n)
	num := make([]float64, n)
	den[n-1] = b[n-1]
	num[n-1] = d[n-1]
	for i := n - 2; i >= 0; i-- {
		den[i] = b[i] - c[i]*a[i+1]/den[i+1]
		num[i] = d[i] - c[i]*num[i+1]/den[i+1]
	}

	// Snow melt holds the top layer at the freezing point while snow lasts.
	var melt SnowMelt
	tsoiTest := told[0] + num[0]/den[0]
	if snowWaterMass > 0 && tsoiTest > physcon.Tfrz {
		potential := (tsoiTest - physcon.Tfrz) * den[0] / physcon.Hfus
		melt.Rate = math.Min(math.Max(0, potential), snowWaterMass/dt)
		melt.EnergyFlux = melt.Rate * physcon.Hfus
		num[0] -= melt.EnergyFlux
	}

	// Top-down substitution and in-place update.
	dT := num[0] / den[0]
	col.Temperature[0] = told[0] + dT
	gsoi := f0 + df0*dT
	for i := 1; i < n; i++ {
		dT = (num[i] - a[i]*dT) / den[i]
		col.Temperature[i] = told[i] + dT
	}

	return Fluxes{SurfaceHeatFlux: gsoi}, melt, nil
}
