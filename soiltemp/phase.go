package soiltemp

import (
	"math"

	"github.com/jl-pkgs/bonanmodeling/physcon"
)

// AdjustPhaseChange clips layers that crossed the freezing point back to it
// and converts the temperature excess or deficit into ice/water mass change
// (the excess-heat treatment). Returns the aggregate phase-change energy
// flux hfsoi (W/m², positive for freezing) for the caller's energy
// bookkeeping.
//
// Per layer: the energy implied by pulling the provisional temperature to
// the freezing point is Hf = (Tfrz - T)·cv·dz/dt. Melting consumes ice,
// freezing consumes liquid water; when the implied phase change exceeds the
// mass available it is clipped to that mass, and the unconsumed residual
// energy reappears as a temperature departure from the freezing point
// (phase change is mass-limited, never energy-limited). The per-layer total
// water mass liquid+ice is conserved exactly.
//
// SolveSurfaceTemperature invokes this internally under the ExcessHeat
// method; it is exported for drivers that manage phase change themselves.
func AdjustPhaseChange(col *Column, dt float64) (float64, error) {
	if err := validateStep(col, dt); err != nil {
		return 0, err
	}
	if col.LiquidWater == nil || col.Ice == nil {
		return 0, ErrMissingWaterState
	}

	return adjustPhaseChange(col, dt), nil
}

func adjustPhaseChange(col *Column, dt float64) float64 {
	hfsoi := 0.0
	for i := range col.Temperature {
		wliq0 := col.LiquidWater[i]
		wice0 := col.Ice[i]
		wmass := wliq0 + wice0
		t0 := col.Temperature[i]

		melting := wice0 > 0 && t0 > physcon.Tfrz
		freezing := wliq0 > 0 && t0 < physcon.Tfrz
		if !melting && !freezing {
			continue
		}

		// Energy implied by clipping the layer to the freezing point, W/m²:
		// negative when melting (surplus warmth), positive when freezing.
		heatCap := col.HeatCapacity[i] * col.Thickness[i] / dt
		hf := (physcon.Tfrz - t0) * heatCap

		// Mass-limited ice change.
		var iceNew float64
		if melting {
			iceNew = math.Max(0, wice0+hf*dt/physcon.Hfus)
		} else {
			iceNew = math.Min(wmass, wice0+hf*dt/physcon.Hfus)
		}
		col.Ice[i] = iceNew
		col.LiquidWater[i] = wmass - iceNew

		// Energy actually consumed or released by the realized phase change;
		// the residual goes back into the layer temperature.
		flux := physcon.Hfus * (iceNew - wice0) / dt
		col.Temperature[i] = physcon.Tfrz - (hf-flux)/heatCap
		hfsoi += flux
	}

	return hfsoi
}
