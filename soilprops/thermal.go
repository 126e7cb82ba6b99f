package soilprops

import (
	"math"

	"github.com/jl-pkgs/bonanmodeling/physcon"
	"github.com/jl-pkgs/bonanmodeling/soiltemp"
)

const (
	// cvSolids is the volumetric heat capacity of soil solids (J/m³/K).
	cvSolids = 1.926e06

	// tkQuartz and tkOtherMinerals are the thermal conductivities used in
	// the geometric-mean solids conductivity (W/m/K); the quartz fraction
	// is approximated by the sand fraction.
	tkQuartz        = 7.7
	tkOtherMinerals = 2.0

	// tinc is the half-width of the freezing front (K) over which latent
	// heat is spread by the apparent-heat-capacity method.
	tinc = 0.5

	// dryThreshold is the degree of saturation below which the soil is
	// treated as fully dry.
	dryThreshold = 1e-07
)

// Thermal refreshes col.ThermalConductivity and col.HeatCapacity from the
// texture class and the column's current temperature, liquid water, and ice
// state. Called once per time step, before the temperature solve.
//
// Conductivity follows Johansen's method: a geometric-mean solids
// conductivity, Farouki's dry conductivity from bulk density, a saturated
// conductivity partitioned between liquid and ice, and Kersten-number
// interpolation in between (logarithmic in the degree of saturation when
// unfrozen, linear when frozen). Heat capacity sums the solids, liquid, and
// ice contributions; when method is ApparentHeatCapacity and the layer sits
// within Tfrz ± 0.5 K, the latent heat of its water is spread over that
// temperature range as extra heat capacity.
//
// Errors: ErrUnknownTexture, or the column's own validation sentinels
// (soiltemp.ErrNilColumn, soiltemp.ErrBadColumn via missing water state as
// soiltemp.ErrMissingWaterState).
func Thermal(col *soiltemp.Column, tex Texture, method soiltemp.PhaseChangeMethod) error {
	class, err := tex.Class()
	if err != nil {
		return err
	}
	if col == nil {
		return soiltemp.ErrNilColumn
	}
	if col.LiquidWater == nil || col.Ice == nil {
		return soiltemp.ErrMissingWaterState
	}

	watsat := class.Porosity()
	quartz := class.SandPercent / 100
	tkSolids := math.Pow(tkQuartz, quartz) * math.Pow(tkOtherMinerals, 1-quartz)
	bd := class.BulkDensity()
	tkDry := (0.135*bd + 64.7) / (2700 - 0.947*bd)

	for i := range col.Temperature {
		dz := col.Thickness[i]
		wliq := col.LiquidWater[i]
		wice := col.Ice[i]
		frozen := col.Temperature[i] < physcon.Tfrz

		// Degree of saturation from the volumetric liquid and ice contents.
		satLiq := wliq / (physcon.RhoWat * dz)
		satIce := wice / (physcon.RhoIce * dz)
		s := math.Min(1, (satLiq+satIce)/watsat)

		// Saturated conductivity, partitioned by the liquid fraction.
		fliq := 1.0
		if wliq+wice > 0 {
			fliq = wliq / (wliq + wice)
		}
		tkSat := math.Pow(tkSolids, 1-watsat) *
			math.Pow(physcon.TkWat, fliq*watsat) *
			math.Pow(physcon.TkIce, (1-fliq)*watsat)

		// Kersten-number interpolation between dry and saturated.
		tk := tkDry
		if s > dryThreshold {
			ke := s
			if !frozen {
				ke = math.Max(0, math.Log10(s)+1)
			}
			tk = ke*tkSat + (1-ke)*tkDry
		}
		col.ThermalConductivity[i] = tk

		// Volumetric heat capacity: solids + liquid + ice.
		cv := (1-watsat)*cvSolids + physcon.CvWat*satLiq + physcon.CvIce*satIce

		// Apparent heat capacity: spread the latent heat of the layer's
		// water over the freezing front.
		if method == soiltemp.ApparentHeatCapacity &&
			math.Abs(col.Temperature[i]-physcon.Tfrz) <= tinc {
			cv += physcon.Hfus * (wliq + wice) / (2 * tinc * dz)
		}
		col.HeatCapacity[i] = cv
	}

	return nil
}
