package soiltemp

import (
	"fmt"
	"math"
)

// Column is the vertical discretization of a soil profile. The surface sits
// at depth 0 and all depths below it are negative; index 0 is the top layer
// and indices increase downward.
//
// The grid (Depth, DepthInterface, Thickness, ThicknessInterface) is fixed
// for a run. ThermalConductivity and HeatCapacity are refreshed by the
// caller each step as the moisture state evolves; Temperature — and, under
// the ExcessHeat method, LiquidWater and Ice — are mutated by the solvers.
type Column struct {
	// Depth holds layer-center depths z[i] (m, negative), strictly
	// decreasing with the index.
	Depth []float64

	// DepthInterface holds the depth of the interface below each layer
	// (m, negative), strictly decreasing with the index.
	DepthInterface []float64

	// Thickness holds layer thicknesses dz[i] (m, positive).
	Thickness []float64

	// ThicknessInterface holds center-to-center spacings
	// Depth[i]-Depth[i+1] (m, positive); the last entry is the distance
	// from the bottom layer's center to the column bottom.
	ThicknessInterface []float64

	// ThermalConductivity holds per-layer conductivities tk[i] (W/m/K).
	ThermalConductivity []float64

	// HeatCapacity holds per-layer volumetric heat capacities cv[i]
	// (J/m³/K).
	HeatCapacity []float64

	// Temperature holds layer temperatures tsoi[i] (K), the primary state.
	Temperature []float64

	// LiquidWater and Ice hold per-layer water masses (kg/m²). They are
	// required (and mutated) only by the ExcessHeat phase-change method;
	// their sum per layer is conserved across phase change.
	LiquidWater []float64
	Ice         []float64
}

// NewColumn builds a column grid from the given layer thicknesses (m, top
// first). Interfaces accumulate downward from the surface and layer centers
// sit midway between interfaces. All physical-property and state arrays are
// allocated zeroed; the caller fills Temperature, ThermalConductivity, and
// HeatCapacity before the first solve.
func NewColumn(thickness []float64) *Column {
	n := len(thickness)
	c := &Column{
		Depth:               make([]float64, n),
		DepthInterface:      make([]float64, n),
		Thickness:           append([]float64(nil), thickness...),
		ThicknessInterface:  make([]float64, n),
		ThermalConductivity: make([]float64, n),
		HeatCapacity:        make([]float64, n),
		Temperature:         make([]float64, n),
		LiquidWater:         make([]float64, n),
		Ice:                 make([]float64, n),
	}

	above := 0.0 // interface above the current layer
	for i := 0; i < n; i++ {
		c.DepthInterface[i] = above - thickness[i]
		c.Depth[i] = 0.5 * (above + c.DepthInterface[i])
		above = c.DepthInterface[i]
	}
	for i := 0; i < n-1; i++ {
		c.ThicknessInterface[i] = c.Depth[i] - c.Depth[i+1]
	}
	if n > 0 {
		c.ThicknessInterface[n-1] = c.Depth[n-1] - c.DepthInterface[n-1]
	}

	return c
}

// Layers returns the number of soil layers.
func (c *Column) Layers() int { return len(c.Temperature) }

// Validate fails fast on malformed columns: mismatched array lengths,
// non-positive thicknesses, conductivities, or heat capacities, and
// non-monotonic depths. LiquidWater/Ice may be nil (they are only needed by
// the ExcessHeat method) but must match the layer count when present.
// All failures wrap ErrBadColumn (ErrNilColumn for a nil receiver).
func (c *Column) Validate() error {
	if c == nil {
		return ErrNilColumn
	}
	n := len(c.Temperature)
	if n == 0 {
		return fmt.Errorf("%w: no layers", ErrBadColumn)
	}
	if len(c.Depth) != n || len(c.DepthInterface) != n ||
		len(c.Thickness) != n || len(c.ThicknessInterface) != n ||
		len(c.ThermalConductivity) != n || len(c.HeatCapacity) != n {
		return fmt.Errorf("%w: array lengths differ", ErrBadColumn)
	}
	if (c.LiquidWater != nil && len(c.LiquidWater) != n) ||
		(c.Ice != nil && len(c.Ice) != n) {
		return fmt.Errorf("%w: water state length differs from layer count", ErrBadColumn)
	}

	above := 0.0
	for i := 0; i < n; i++ {
		if !(c.Depth[i] < above) || !(c.DepthInterface[i] < c.Depth[i]) {
			return fmt.Errorf("%w: depths not strictly decreasing at layer %d", ErrBadColumn, i)
		}
		above = c.DepthInterface[i]
		if !(c.Thickness[i] > 0) || !(c.ThicknessInterface[i] > 0) {
			return fmt.Errorf("%w: non-positive thickness at layer %d", ErrBadColumn, i)
		}
		if !(c.ThermalConductivity[i] > 0) {
			return fmt.Errorf("%w: non-positive conductivity at layer %d", ErrBadColumn, i)
		}
		if !(c.HeatCapacity[i] > 0) {
			return fmt.Errorf("%w: non-positive heat capacity at layer %d", ErrBadColumn, i)
		}
		if math.IsNaN(c.Temperature[i]) {
			return fmt.Errorf("%w: NaN temperature at layer %d", ErrBadColumn, i)
		}
	}

	return nil
}

// validateStep bundles the shared per-call precondition checks.
func validateStep(c *Column, dt float64) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !(dt > 0) {
		return ErrBadTimeStep
	}

	return nil
}
