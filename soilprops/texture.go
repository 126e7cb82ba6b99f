package soilprops

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownTexture indicates a texture class outside the defined set.
var ErrUnknownTexture = errors.New("soilprops: unknown texture class")

// Texture enumerates the eleven USDA soil texture classes, ordered from
// coarsest to finest as in Clapp and Hornberger (1978).
type Texture int

const (
	Sand Texture = iota
	LoamySand
	SandyLoam
	SiltLoam
	Loam
	SandyClayLoam
	SiltyClayLoam
	ClayLoam
	SandyClay
	SiltyClay
	Clay
)

var textureNames = [...]string{
	"sand", "loamy sand", "sandy loam", "silt loam", "loam",
	"sandy clay loam", "silty clay loam", "clay loam", "sandy clay",
	"silty clay", "clay",
}

// String implements fmt.Stringer.
func (t Texture) String() string {
	if t < Sand || t > Clay {
		return "unknown"
	}
	return textureNames[t]
}

// ParseTexture resolves a texture class from its name, case-insensitively
// and tolerating hyphens for spaces ("silty-clay-loam").
func ParseTexture(name string) (Texture, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", " "))
	for i, n := range textureNames {
		if n == key {
			return Texture(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTexture, name)
}

// Class holds the representative sand and clay mass percentages of a
// texture class. Everything else is derived from these two numbers by the
// pedotransfer functions below.
type Class struct {
	SandPercent float64
	ClayPercent float64
}

// textureClasses is the immutable per-class composition table
// (Clapp and Hornberger 1978, Table 2).
var textureClasses = [...]Class{
	Sand:          {92, 3},
	LoamySand:     {82, 6},
	SandyLoam:     {58, 10},
	SiltLoam:      {17, 13},
	Loam:          {43, 18},
	SandyClayLoam: {58, 27},
	SiltyClayLoam: {10, 34},
	ClayLoam:      {32, 34},
	SandyClay:     {52, 42},
	SiltyClay:     {6, 47},
	Clay:          {22, 58},
}

// Class returns the composition entry for the texture. Out-of-range
// textures fail with ErrUnknownTexture.
func (t Texture) Class() (Class, error) {
	if t < Sand || t > Clay {
		return Class{}, fmt.Errorf("%w: %d", ErrUnknownTexture, int(t))
	}
	return textureClasses[t], nil
}

// Porosity returns the saturated volumetric water content (m³/m³),
// Cosby et al. (1984).
func (c Class) Porosity() float64 {
	return 0.489 - 0.00126*c.SandPercent
}

// ClappHornbergerB returns the Clapp-Hornberger pore-size exponent b,
// Cosby et al. (1984).
func (c Class) ClappHornbergerB() float64 {
	return 2.91 + 0.159*c.ClayPercent
}

// MatricPotentialSat returns the saturated soil matric potential (mm,
// negative), Cosby et al. (1984).
func (c Class) MatricPotentialSat() float64 {
	return -10.0 * math.Pow(10, 1.88-0.0131*c.SandPercent)
}

// HydraulicConductivitySat returns the saturated hydraulic conductivity
// (mm/s), Cosby et al. (1984).
func (c Class) HydraulicConductivitySat() float64 {
	return 0.0070556 * math.Pow(10, -0.884+0.0153*c.SandPercent)
}

// BulkDensity returns the dry soil bulk density (kg/m³) implied by the
// porosity, assuming a 2700 kg/m³ mineral density.
func (c Class) BulkDensity() float64 {
	return 2700.0 * (1 - c.Porosity())
}
