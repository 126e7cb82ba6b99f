// Package brent defines the callback contract and tuning constants for
// Brent's root finder.
package brent

import "errors"

// Sentinel errors for root finding.
var (
	// ErrBracket indicates f(xa) and f(xb) do not have opposite signs, so the
	// interval is not guaranteed to contain a root. No iterations are run.
	ErrBracket = errors.New("brent: root must be bracketed: f(xa) and f(xb) have the same sign")

	// ErrConvergence indicates the iteration cap was reached before the
	// bracket shrank below the requested tolerance.
	ErrConvergence = errors.New("brent: maximum iterations exceeded")
)

const (
	// MaxIterations caps the number of refinement iterations.
	MaxIterations = 50

	// Epsilon is the relative floating-point error floor used in the
	// convergence test: half-bracket ≤ 2·Epsilon·|b| + tol/2.
	Epsilon = 1e-08
)

// Func is the residual function contract. Each call receives the evaluation
// point and the current auxiliary state and returns the updated state
// together with the scalar residual. The finder retains and swaps prior
// evaluations, state included, so every call must return a complete,
// self-consistent state snapshot rather than mutating shared data.
type Func[S any] func(x float64, state S) (S, float64)
