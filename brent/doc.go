// Package brent finds a root of a scalar function inside a bracketing
// interval using Brent's method.
//
// 🚀 What is Brent's method?
//
//	The classic combination of bisection, the secant method, and inverse
//	quadratic interpolation. It keeps the guaranteed convergence of
//	bisection while taking the faster interpolating steps whenever they
//	are safe, which makes it the default choice for one-dimensional
//	root finding when a bracket is available. In a land-surface model it
//	solves the nonlinear surface energy balance: the skin temperature at
//	which net radiation, turbulent fluxes, and the soil heat flux close.
//
// ✨ Key features:
//   - generic auxiliary-state threading: the residual function receives a
//     state value and returns an updated one, so side outputs (a recomputed
//     temperature profile, diagnostic fluxes) stay in sync with the root
//   - strict bracket precondition, checked before any iteration (ErrBracket)
//   - fixed iteration cap of 50 (ErrConvergence on overrun)
//
// ⚙️ Usage:
//
//	import "github.com/jl-pkgs/bonanmodeling/brent"
//
//	f := func(x float64, s int) (int, float64) { return s + 1, x*x - 2 }
//	root, evals, err := brent.Root(f, 0, 2, 1e-6, 0)
//	if err != nil {
//	  // handle ErrBracket or ErrConvergence
//	}
//
// The returned state is the one produced by the evaluation at the returned
// root, so a caller that accumulates results in the state sees exactly the
// evaluation the root corresponds to.
//
// Complexity:
//
//   - Time:   O(iterations) function evaluations, ≤ MaxIterations
//   - Memory: O(1) beyond the threaded state
package brent
