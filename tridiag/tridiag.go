package tridiag

import "errors"

var (
	// ErrEmptySystem indicates a zero-length system was supplied.
	ErrEmptySystem = errors.New("tridiag: system must have at least one equation")

	// ErrLengthMismatch indicates the four coefficient slices differ in length.
	ErrLengthMismatch = errors.New("tridiag: a, b, c, d must have equal length")
)

// Solve solves the tridiagonal system
//
//	a[i]·x[i-1] + b[i]·x[i] + c[i]·x[i+1] = d[i],  i = 0..n-1
//
// with the boundary terms dropped at i=0 and i=n-1 (a[0] and c[n-1] are
// ignored and conventionally zero). Returns the solution as a new slice;
// the inputs are left untouched.
//
// Algorithm Outline (Thomas):
//  1. Forward elimination: substitute each equation into the next,
//     producing modified diagonal and right-hand-side terms.
//  2. Back substitution from the last unknown down to the first.
//
// The system must be well posed: a zero (modified) diagonal is a caller
// precondition violation and is not guarded against. Diagonal dominance,
// which implicit diffusion discretizations guarantee, is sufficient.
//
// Errors:
//   - ErrEmptySystem    — n == 0.
//   - ErrLengthMismatch — slices of unequal length.
func Solve(a, b, c, d []float64) ([]float64, error) {
	n := len(b)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	if len(a) != n || len(c) != n || len(d) != n {
		return nil, ErrLengthMismatch
	}

	// Forward elimination into scratch copies so the inputs survive.
	e := make([]float64, n) // modified super-diagonal
	f := make([]float64, n) // modified right-hand side
	e[0] = c[0] / b[0]
	f[0] = d[0] / b[0]
	for i := 1; i < n; i++ {
		den := b[i] - a[i]*e[i-1]
		e[i] = c[i] / den
		f[i] = (d[i] - a[i]*f[i-1]) / den
	}

	// Back substitution.
	x := make([]float64, n)
	x[n-1] = f[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = f[i] - e[i]*x[i+1]
	}

	return x, nil
}
