// Package tridiag solves tridiagonal linear systems with the Thomas
// algorithm.
//
// 🚀 What is a tridiagonal system?
//
//	A linear system in which each equation couples at most three
//	neighboring unknowns:
//
//	    a[i]·x[i-1] + b[i]·x[i] + c[i]·x[i+1] = d[i]
//
//	Such systems arise whenever a one-dimensional diffusion equation is
//	discretized implicitly — heat conduction through layered soil, moisture
//	flow through a column, radiative transfer through a canopy. They are
//	solvable in O(n) time and O(n) memory, no general matrix machinery
//	required.
//
// ✨ Key features:
//   - single-pass forward elimination + back substitution (Thomas algorithm)
//   - inputs are never modified; the solution is a fresh slice
//   - fail-fast validation of lengths (ErrEmptySystem, ErrLengthMismatch)
//
// ⚙️ Usage:
//
//	import "github.com/jl-pkgs/bonanmodeling/tridiag"
//
//	x, err := tridiag.Solve(a, b, c, d)
//	if err != nil {
//	  // handle ErrEmptySystem or ErrLengthMismatch
//	}
//
// By convention a[0] and c[n-1] are zero (no wraparound). The solver assumes
// a well-posed, diagonally dominant system — the guarantee every sane
// finite-difference discretization provides — and does not pivot or guard
// against a vanishing diagonal.
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(n)
package tridiag
