package soilprops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jl-pkgs/bonanmodeling/soilprops"
)

// TestParseTexture accepts names case-insensitively and with hyphens.
func TestParseTexture(t *testing.T) {
	tests := []struct {
		in   string
		want soilprops.Texture
	}{
		{"sand", soilprops.Sand},
		{"Silt Loam", soilprops.SiltLoam},
		{"silty-clay-loam", soilprops.SiltyClayLoam},
		{"  CLAY  ", soilprops.Clay},
	}
	for _, tc := range tests {
		got, err := soilprops.ParseTexture(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := soilprops.ParseTexture("peat")
	assert.ErrorIs(t, err, soilprops.ErrUnknownTexture)
}

// TestClass_Pedotransfer spot-checks the Cosby regressions and their
// physically expected ordering from sand to clay.
func TestClass_Pedotransfer(t *testing.T) {
	sand, err := soilprops.Sand.Class()
	require.NoError(t, err)
	clay, err := soilprops.Clay.Class()
	require.NoError(t, err)

	// Porosity: 0.489 - 0.00126·sand%.
	assert.InDelta(t, 0.489-0.00126*92, sand.Porosity(), 1e-12)
	assert.Greater(t, clay.Porosity(), sand.Porosity(), "finer soil holds more water")

	// Pore-size exponent b grows with clay content.
	assert.Greater(t, clay.ClappHornbergerB(), sand.ClappHornbergerB())

	// Sandy soil drains much faster and holds water less tightly.
	assert.Greater(t, sand.HydraulicConductivitySat(), 10*clay.HydraulicConductivitySat())
	assert.Greater(t, sand.MatricPotentialSat(), clay.MatricPotentialSat(),
		"sand's (negative) air-entry potential is closer to zero")

	// Bulk density complements porosity.
	assert.InDelta(t, 2700*(1-sand.Porosity()), sand.BulkDensity(), 1e-9)

	_, err = soilprops.Texture(-1).Class()
	assert.ErrorIs(t, err, soilprops.ErrUnknownTexture)
}

// TestTexture_String round-trips every class name through ParseTexture.
func TestTexture_String(t *testing.T) {
	for tex := soilprops.Sand; tex <= soilprops.Clay; tex++ {
		parsed, err := soilprops.ParseTexture(tex.String())
		require.NoError(t, err, tex)
		assert.Equal(t, tex, parsed)
	}
	assert.Equal(t, "unknown", soilprops.Texture(99).String())
}
