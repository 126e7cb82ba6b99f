// Package bonanmodeling is a teaching toolbox for land-surface physics:
// small, sharply scoped numerical packages you can read in one sitting and
// compose into a working soil model.
//
// 🚀 What is bonanmodeling?
//
//	A collection of the numerical kernels a land-surface scheme is built
//	from, centered on one-dimensional transient heat conduction in layered
//	soil:
//		• soiltemp  — implicit / Crank–Nicolson soil temperature solvers with
//		  Dirichlet (known surface temperature) and linearized-flux surface
//		  boundary conditions, freeze/thaw phase change, snow-melt coupling,
//		  and a strict energy-conservation self-check
//		• tridiag   — the Thomas algorithm every 1-D implicit solver rests on
//		• brent     — bracketed root finding for nonlinear surface energy
//		  balances, with auxiliary state threaded through the residual
//		• soilprops — soil texture classes and the pedotransfer functions
//		  turning moisture state into thermal properties
//		• physcon   — the shared physical constants
//
// ✨ Why this shape?
//
//   - Clarity over generality – fixed stencil, fixed layers, no PDE framework
//   - Hard guarantees – energy balance verified after every Dirichlet solve,
//     water mass conserved exactly through phase change
//   - Plain data – columns are slices you can inspect, not opaque handles
//
// The cmd/soilsim command strings the packages together into runnable
// demonstrations: a diurnal cycle driven through the Dirichlet solver, and
// a surface energy balance closed by Brent's method around the flux solver.
//
//	go get github.com/jl-pkgs/bonanmodeling
package bonanmodeling
