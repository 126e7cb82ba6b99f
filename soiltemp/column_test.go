package soiltemp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/jl-pkgs/bonanmodeling/soiltemp"
)

// uniformColumn builds an n-layer column with identical thickness dz,
// conductivity tk, heat capacity cv, and initial temperature t0.
func uniformColumn(n int, dz, tk, cv, t0 float64) *soiltemp.Column {
	thickness := make([]float64, n)
	for i := range thickness {
		thickness[i] = dz
	}
	col := soiltemp.NewColumn(thickness)
	for i := 0; i < n; i++ {
		col.ThermalConductivity[i] = tk
		col.HeatCapacity[i] = cv
		col.Temperature[i] = t0
	}
	return col
}

// TestNewColumn_Grid checks interface depths, center depths, and spacings
// for a simple two-layer grid.
func TestNewColumn_Grid(t *testing.T) {
	col := soiltemp.NewColumn([]float64{0.1, 0.2})

	assert.True(t, floats.EqualApprox(col.DepthInterface, []float64{-0.1, -0.3}, 1e-15))
	assert.True(t, floats.EqualApprox(col.Depth, []float64{-0.05, -0.2}, 1e-15))
	assert.True(t, floats.EqualApprox(col.Thickness, []float64{0.1, 0.2}, 1e-15))
	assert.True(t, floats.EqualApprox(col.ThicknessInterface, []float64{0.15, 0.1}, 1e-15))
	assert.Equal(t, 2, col.Layers())
}

// TestValidate_FailsFast covers the malformed-input preconditions.
func TestValidate_FailsFast(t *testing.T) {
	t.Run("nil column", func(t *testing.T) {
		var col *soiltemp.Column
		assert.ErrorIs(t, col.Validate(), soiltemp.ErrNilColumn)
	})

	t.Run("empty column", func(t *testing.T) {
		assert.ErrorIs(t, (&soiltemp.Column{}).Validate(), soiltemp.ErrBadColumn)
	})

	t.Run("length mismatch", func(t *testing.T) {
		col := uniformColumn(3, 0.1, 1.5, 2e6, 280)
		col.HeatCapacity = col.HeatCapacity[:2]
		assert.ErrorIs(t, col.Validate(), soiltemp.ErrBadColumn)
	})

	t.Run("non-positive conductivity", func(t *testing.T) {
		col := uniformColumn(3, 0.1, 1.5, 2e6, 280)
		col.ThermalConductivity[1] = 0
		assert.ErrorIs(t, col.Validate(), soiltemp.ErrBadColumn)
	})

	t.Run("non-positive heat capacity", func(t *testing.T) {
		col := uniformColumn(3, 0.1, 1.5, 2e6, 280)
		col.HeatCapacity[2] = -1
		assert.ErrorIs(t, col.Validate(), soiltemp.ErrBadColumn)
	})

	t.Run("non-monotonic depths", func(t *testing.T) {
		col := uniformColumn(3, 0.1, 1.5, 2e6, 280)
		col.Depth[2] = col.Depth[1] + 0.2
		assert.ErrorIs(t, col.Validate(), soiltemp.ErrBadColumn)
	})

	t.Run("valid column passes", func(t *testing.T) {
		col := uniformColumn(3, 0.1, 1.5, 2e6, 280)
		require.NoError(t, col.Validate())
	})
}

// TestSolvers_RejectBadTimeStep verifies dt <= 0 fails fast in both
// variants.
func TestSolvers_RejectBadTimeStep(t *testing.T) {
	col := uniformColumn(3, 0.1, 1.5, 2e6, 280)

	_, err := soiltemp.SolveSurfaceTemperature(col, 275, 0, soiltemp.DefaultOptions())
	assert.ErrorIs(t, err, soiltemp.ErrBadTimeStep)

	_, _, err = soiltemp.SolveSurfaceFlux(col, 100, -20, -3600, 0, soiltemp.DefaultOptions())
	assert.ErrorIs(t, err, soiltemp.ErrBadTimeStep)
}

// TestSolvers_RejectBadEnums verifies unknown scheme/method values fail.
func TestSolvers_RejectBadEnums(t *testing.T) {
	col := uniformColumn(3, 0.1, 1.5, 2e6, 280)

	_, err := soiltemp.SolveSurfaceTemperature(col, 275, 3600,
		soiltemp.Options{Scheme: soiltemp.SolutionScheme(99)})
	assert.ErrorIs(t, err, soiltemp.ErrBadScheme)

	_, err = soiltemp.SolveSurfaceTemperature(col, 275, 3600,
		soiltemp.Options{Method: soiltemp.PhaseChangeMethod(99)})
	assert.ErrorIs(t, err, soiltemp.ErrBadMethod)

	_, _, err = soiltemp.SolveSurfaceFlux(col, 100, -20, 3600, 0,
		soiltemp.Options{Scheme: soiltemp.SolutionScheme(99)})
	assert.ErrorIs(t, err, soiltemp.ErrBadScheme)
}

// TestSolveSurfaceTemperature_RequiresWaterState verifies the ExcessHeat
// method demands the mass arrays.
func TestSolveSurfaceTemperature_RequiresWaterState(t *testing.T) {
	col := uniformColumn(3, 0.1, 1.5, 2e6, 280)
	col.LiquidWater, col.Ice = nil, nil

	_, err := soiltemp.SolveSurfaceTemperature(col, 275, 3600,
		soiltemp.Options{Method: soiltemp.ExcessHeat})
	assert.ErrorIs(t, err, soiltemp.ErrMissingWaterState)
}
