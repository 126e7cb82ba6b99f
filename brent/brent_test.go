package brent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jl-pkgs/bonanmodeling/brent"
)

// countingFunc wraps a plain residual into a Func that counts evaluations
// through the threaded state.
func countingFunc(f func(float64) float64) brent.Func[int] {
	return func(x float64, evals int) (int, float64) {
		return evals + 1, f(x)
	}
}

// TestRoot_Sqrt2 finds the root of x²-2 on [0,2] and checks it against √2.
func TestRoot_Sqrt2(t *testing.T) {
	f := countingFunc(func(x float64) float64 { return x*x - 2 })

	root, evals, err := brent.Root(f, 0, 2, 1e-6, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-6, "root must approximate √2")
	assert.Greater(t, evals, 2, "refinement must evaluate beyond the bracket ends")
	assert.LessOrEqual(t, evals, brent.MaxIterations+2, "evaluation count is capped")
}

// TestRoot_BracketViolation verifies ErrBracket with no refinement
// iterations when both residuals are positive.
func TestRoot_BracketViolation(t *testing.T) {
	f := countingFunc(func(x float64) float64 { return x*x + 1 })

	_, evals, err := brent.Root(f, -1, 1, 1e-6, 0)
	assert.ErrorIs(t, err, brent.ErrBracket, "same-sign bracket must error ErrBracket")
	assert.Equal(t, 2, evals, "only the two bracket ends may be evaluated")
}

// TestRoot_ExactEndpointRoot accepts a bracket whose end already sits on
// the root.
func TestRoot_ExactEndpointRoot(t *testing.T) {
	f := countingFunc(func(x float64) float64 { return x - 1 })

	root, _, err := brent.Root(f, 1, 3, 1e-9, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, root, 1e-8)
}

// TestRoot_TranscendentalResiduals exercises interpolation and bisection on
// a few classic residuals with known roots.
func TestRoot_TranscendentalResiduals(t *testing.T) {
	tests := []struct {
		name     string
		f        func(float64) float64
		xa, xb   float64
		want     float64
	}{
		{"cos crosses zero", math.Cos, 1, 2, math.Pi / 2},
		{"exp(x)-3", func(x float64) float64 { return math.Exp(x) - 3 }, 0, 2, math.Log(3)},
		{"cubic", func(x float64) float64 { return x*x*x - 2*x - 5 }, 2, 3, 2.0945514815423265},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root, _, err := brent.Root(countingFunc(tc.f), tc.xa, tc.xb, 1e-10, 0)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, root, 1e-8)
		})
	}
}

// TestRoot_StateMatchesRoot verifies the returned state belongs to the
// evaluation at the returned root: the state records the last x seen.
func TestRoot_StateMatchesRoot(t *testing.T) {
	type snap struct{ x, residual float64 }
	f := func(x float64, _ snap) (snap, float64) {
		r := x*x*x - x - 2
		return snap{x: x, residual: r}, r
	}

	root, state, err := brent.Root(f, 1, 2, 1e-12, snap{})
	require.NoError(t, err)
	assert.Equal(t, root, state.x, "state must come from the evaluation at the root")
	assert.InDelta(t, 0, state.residual, 1e-9, "residual at the root must be ~0")
}

// TestRoot_ConvergenceFailure forces ErrConvergence: a step residual whose
// sign flips at x=0 gives the convergence test nothing to work with when
// tol=0, because the relative floor 2·Epsilon·|b| also vanishes as b → 0
// and the residual is never exactly zero.
func TestRoot_ConvergenceFailure(t *testing.T) {
	f := func(x float64, evals int) (int, float64) {
		if x < 0 {
			return evals + 1, -1
		}
		return evals + 1, 1
	}

	_, _, err := brent.Root[int](f, -1, 1, 0, 0)
	assert.ErrorIs(t, err, brent.ErrConvergence, "zero tolerance on a step residual must exhaust the cap")
}
