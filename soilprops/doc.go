// Package soilprops supplies the thermal and hydraulic properties of soil
// from its texture class and current moisture state.
//
// 🚀 What does it provide?
//
//	The property collaborator the soil temperature solvers depend on:
//	before every time step the per-layer thermal conductivity and
//	volumetric heat capacity must be refreshed, because both depend on how
//	much liquid water and ice the layer currently holds. This package
//	derives them from an immutable lookup table keyed by the eleven USDA
//	texture classes, using the standard pedotransfer parameterizations:
//
//	  • Cosby et al. (1984): porosity, Clapp–Hornberger b, saturated
//	    matric potential and hydraulic conductivity from sand/clay percent
//	  • Farouki (1981): dry thermal conductivity from bulk density
//	  • Johansen, via the Kersten number: interpolation between dry and
//	    saturated conductivity as a function of the degree of saturation,
//	    with distinct unfrozen and frozen forms
//	  • de Vries-style volumetric heat capacity: solids + liquid + ice,
//	    plus the latent-heat bump over Tfrz ± 0.5 K that implements the
//	    apparent-heat-capacity phase-change method
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/jl-pkgs/bonanmodeling/soilprops"
//	  "github.com/jl-pkgs/bonanmodeling/soiltemp"
//	)
//
//	col := soiltemp.NewColumn(thickness)
//	// each step, after hydrology has updated col.LiquidWater / col.Ice:
//	err := soilprops.Thermal(col, soilprops.SiltLoam, soiltemp.ExcessHeat)
//
// The texture table is process-wide constant data: nothing in this package
// mutates it, and callers receive values, never references into it.
package soilprops
