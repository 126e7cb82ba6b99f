package brent

import "math"

// Root finds a root of f inside the bracket [xa, xb] to absolute tolerance
// tol, threading the auxiliary state through every evaluation of f.
// Returns the root estimate and the state produced by the evaluation at
// that root.
//
// Algorithm Outline (Brent):
//  1. Evaluate both bracket ends; same-sign residuals fail with ErrBracket
//     before any refinement.
//  2. Each iteration keeps three points: the current best b, its
//     counterpoint c on the other side of the root, and the previous best a.
//  3. Attempt an inverse-quadratic-interpolation step (secant when a == c);
//     accept it only if it lands inside the bracket and shrinks faster than
//     bisection, otherwise bisect.
//  4. Converge when the half-bracket width falls below
//     2·Epsilon·|b| + tol/2, or the residual is exactly zero.
//  5. Give up with ErrConvergence after MaxIterations iterations.
//
// The state returned by each evaluation is fed into the next, and a snapshot
// is kept per bracketing point so that the state handed back always belongs
// to the evaluation at the returned root, even across bracket swaps.
//
// Errors:
//   - ErrBracket     — f(xa) and f(xb) have the same (nonzero) sign.
//   - ErrConvergence — tolerance not met within MaxIterations.
func Root[S any](f Func[S], xa, xb, tol float64, state S) (float64, S, error) {
	a, b := xa, xb
	sa, fa := f(a, state)
	sb, fb := f(b, sa)

	if (fa > 0 && fb > 0) || (fa < 0 && fb < 0) {
		return 0, sb, ErrBracket
	}

	c, fc, sc := b, fb, sb
	var d, e float64
	for iter := 0; iter < MaxIterations; iter++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			// b and c fell on the same side; restore a as the counterpoint.
			c, fc, sc = a, fa, sa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, fa, sa = b, fb, sb
			b, fb, sb = c, fc, sc
			c, fc, sc = a, fa, sa
		}

		tol1 := 2*Epsilon*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, sb, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Interpolate: secant when only two distinct points, inverse
			// quadratic when a, b, c are distinct.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				// Interpolation acceptable.
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			// Bracket shrinking too slowly; bisect.
			d = xm
			e = d
		}

		a, fa, sa = b, fb, sb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		sb, fb = f(b, sb)
	}

	return b, sb, ErrConvergence
}
