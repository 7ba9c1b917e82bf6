// Package polyroot finds the real roots of truncated Chebyshev series with
// the colleague-matrix eigenvalue method.
//
// The eigenvalues of the colleague matrix of sum c_k T_k (or sum c_k U_k)
// are exactly the roots of the expansion. They are computed with gonum's
// general eigenvalue solver after an optional Parlett–Reinsch balancing
// step; only real roots inside [-1, 1] are kept and mapped to the caller's
// interval.
package polyroot

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-firpm/internal/cheby"
	"github.com/cwbudde/algo-firpm/internal/numeric"
)

var (
	// ErrNoConvergence is returned when the eigenvalue iteration fails for
	// a colleague matrix.
	ErrNoConvergence = errors.New("polyroot: eigenvalue iteration did not converge")

	// ErrDegeneratePolynomial is returned for coefficients that are NaN or
	// infinite.
	ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")
)

const (
	// ImagTol is the largest imaginary part of an eigenvalue still accepted
	// as a real root.
	ImagTol = 1e-8

	// DomainTol is how far outside [-1, 1] a root may fall before it is
	// discarded. Accepted roots are clamped to the interval.
	DomainTol = 1e-10

	// trimTol marks trailing coefficients negligible relative to the
	// largest one.
	trimTol = 4 * 0x1p-52
)

// Roots returns the real roots in [a, b] of the Chebyshev expansion c,
// which is defined on [a, b] through the affine map onto [-1, 1]. The
// roots are sorted in increasing order.
//
// An expansion that is identically zero has no isolated roots; Roots
// returns nil without an error in that case.
func Roots[T numeric.Real](c []T, a, b T, kind cheby.Kind, balance bool) ([]T, error) {
	cf := make([]float64, len(c))
	for i, v := range c {
		if !numeric.IsFinite(v) {
			return nil, fmt.Errorf("%w: coefficient %d is %v", ErrDegeneratePolynomial, i, v)
		}
		cf[i] = float64(v)
	}

	cf = trim(cf)
	n := len(cf) - 1

	var unit []float64
	switch {
	case n < 1:
		return nil, nil
	case n == 1:
		r := -cf[0] / cf[1]
		if kind == cheby.Second {
			r /= 2
		}
		unit = []float64{r}
	default:
		m := Colleague(cf, kind)
		if balance {
			Balance(m)
		}

		var eig mat.Eigen
		if ok := eig.Factorize(m, mat.EigenNone); !ok {
			return nil, fmt.Errorf("%w: degree %d", ErrNoConvergence, n)
		}

		for _, v := range eig.Values(nil) {
			if math.Abs(imag(v)) <= ImagTol {
				unit = append(unit, real(v))
			}
		}
	}

	roots := make([]T, 0, len(unit))
	fa, fb := float64(a), float64(b)
	for _, r := range unit {
		if r < -1-DomainTol || r > 1+DomainTol {
			continue
		}

		r = min(max(r, -1), 1)
		roots = append(roots, T((fb+fa)/2+r*(fb-fa)/2))
	}

	slices.Sort(roots)

	return roots, nil
}

// trim drops trailing coefficients that are negligible relative to the
// largest one. An all-zero expansion trims to a single zero.
func trim(c []float64) []float64 {
	scale := floats.Norm(c, math.Inf(1))
	if scale == 0 {
		return c[:1]
	}

	n := len(c) - 1
	for n > 0 && math.Abs(c[n]) <= trimTol*scale {
		n--
	}

	return c[:n+1]
}

// Colleague returns the n×n colleague matrix of the degree-n expansion c.
// Its eigenvalues are the roots of sum c_k T_k (kind First) or
// sum c_k U_k (kind Second). c[n] must be non-zero and n ≥ 2; [Roots]
// solves the linear case directly.
//
// The matrix encodes x·P_k = (P_{k-1} + P_{k+1})/2 for the basis P, with the
// first row adjusted for the basis kind and the last row eliminating P_n.
func Colleague(c []float64, kind cheby.Kind) *mat.Dense {
	n := len(c) - 1
	m := mat.NewDense(n, n, nil)

	if kind == cheby.Second {
		m.Set(0, 1, 0.5)
	} else {
		m.Set(0, 1, 1)
	}

	for k := 1; k < n-1; k++ {
		m.Set(k, k-1, 0.5)
		m.Set(k, k+1, 0.5)
	}

	m.Set(n-1, n-2, 0.5)
	for j := range n {
		m.Set(n-1, j, m.At(n-1, j)-0.5*c[j]/c[n])
	}

	return m
}

// Balance applies the Parlett–Reinsch radix-2 balancing to m in place. The
// result is a diagonal similarity transform of m with rows and columns of
// comparable norm; eigenvalues are unchanged.
func Balance(m *mat.Dense) {
	const (
		radix = 2.0
		sqrdx = radix * radix
	)

	n, _ := m.Dims()

	for done := false; !done; {
		done = true

		for i := range n {
			var r, c float64
			for j := range n {
				if j != i {
					c += math.Abs(m.At(j, i))
					r += math.Abs(m.At(i, j))
				}
			}

			if c == 0 || r == 0 {
				continue
			}

			g := r / radix
			f := 1.0
			s := c + r

			for c < g {
				f *= radix
				c *= sqrdx
			}

			g = r * radix
			for c > g {
				f /= radix
				c /= sqrdx
			}

			if (c+r)/f < 0.95*s {
				done = false

				for j := range n {
					m.Set(i, j, m.At(i, j)/f)
					m.Set(j, i, m.At(j, i)*f)
				}
			}
		}
	}
}
