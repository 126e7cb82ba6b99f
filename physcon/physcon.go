// Package physcon collects the physical constants shared by the soil physics
// packages: freezing point, latent heats, and the densities, specific heats,
// and thermal conductivities of liquid water and ice.
//
// All values are SI. Volumetric quantities (J/m³/K) are provided alongside the
// specific ones (J/kg/K) because the soil solvers work per unit volume.
package physcon

const (
	// Tfrz is the freezing point of water (K).
	Tfrz = 273.15

	// Hfus is the latent heat of fusion of water at 0°C (J/kg).
	Hfus = 0.3337e6

	// Hvap is the latent heat of vaporization of water at 15°C (J/kg).
	Hvap = 2.466e6

	// RhoWat is the density of liquid water (kg/m³).
	RhoWat = 1000.0

	// RhoIce is the density of ice (kg/m³).
	RhoIce = 917.0

	// CpWat is the specific heat of liquid water (J/kg/K).
	CpWat = 4188.0

	// CpIce is the specific heat of ice (J/kg/K).
	CpIce = 2117.27

	// CvWat is the volumetric heat capacity of liquid water (J/m³/K).
	CvWat = CpWat * RhoWat

	// CvIce is the volumetric heat capacity of ice (J/m³/K).
	CvIce = CpIce * RhoIce

	// TkWat is the thermal conductivity of liquid water (W/m/K).
	TkWat = 0.57

	// TkIce is the thermal conductivity of ice (W/m/K).
	TkIce = 2.29

	// Sigma is the Stefan-Boltzmann constant (W/m²/K⁴).
	Sigma = 5.67e-08
)
