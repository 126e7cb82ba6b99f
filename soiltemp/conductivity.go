package soiltemp

// interfaceConductance returns the conduction coefficients between adjacent
// layer centers, W/m²/K: coef[i] couples layers i and i+1 (length n-1).
//
// The conductivity at the interface z_{i+1/2} is the thickness-weighted
// harmonic mean of the two layer conductivities,
//
//	tk_{i+1/2} = tk_i·tk_{i+1}·(z_i - z_{i+1}) /
//	             (tk_i·(z_{i+1/2} - z_{i+1}) + tk_{i+1}·(z_i - z_{i+1/2}))
//
// which makes the conductive flux continuous across the interface even when
// the two layers differ in conductivity and thickness. The coefficient is
// that conductivity divided by the center-to-center spacing.
func interfaceConductance(c *Column) []float64 {
	n := c.Layers()
	if n < 2 {
		return nil
	}
	coef := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		tkA, tkB := c.ThermalConductivity[i], c.ThermalConductivity[i+1]
		span := c.Depth[i] - c.Depth[i+1]
		tkHalf := tkA * tkB * span /
			(tkA*(c.DepthInterface[i]-c.Depth[i+1]) + tkB*(c.Depth[i]-c.DepthInterface[i]))
		coef[i] = tkHalf / c.ThicknessInterface[i]
	}

	return coef
}

// surfaceConductance returns the conduction coefficient between the surface
// (depth 0) and the top layer center, W/m²/K.
func surfaceConductance(c *Column) float64 {
	return c.ThermalConductivity[0] / (0 - c.Depth[0])
}
