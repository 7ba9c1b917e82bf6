// Package barycentric evaluates the interpolant behind one Remez exchange
// iteration.
//
// Given a reference set x of k strictly increasing nodes in [-1, 1], the
// interpolant is the polynomial of degree k-2 that deviates from the ideal
// response by ±δ/W with alternating sign at the nodes. It is evaluated with
// the second (true) barycentric formula.
package barycentric

import (
	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm/band"
	"github.com/cwbudde/algo-firpm/internal/numeric"
)

// logThreshold is the reference size above which weights are computed in
// the log domain.
const logThreshold = 500

// Weights returns the barycentric weights of the nodes x, defined up to a
// common factor.
//
// Each pairwise difference is doubled (the capacity of [-1, 1] is 1/2) and
// the factors are multiplied in interleaved passes, which keeps the running
// product from overflowing or underflowing for the reference sizes of
// practical filters.
func Weights[T numeric.Real](x []T) []T {
	n := len(x)
	w := make([]T, n)

	if n == 1 {
		w[0] = 1
		return w
	}

	if n > logThreshold {
		return logWeights(x)
	}

	step := (n-2)/15 + 1
	for i, xi := range x {
		denom := T(1)
		for j := range step {
			for k := j; k < n; k += step {
				if k != i {
					denom *= (xi - x[k]) * 2
				}
			}
		}

		w[i] = 1 / denom
	}

	return w
}

func logWeights[T numeric.Real](x []T) []T {
	n := len(x)
	w := make([]T, n)
	ln2 := numeric.Log(T(2))

	for i, xi := range x {
		var sum T
		sign := T(1)
		for j, xj := range x {
			if j == i {
				continue
			}

			d := xi - xj
			if d < 0 {
				sign = -sign
				d = -d
			}

			sum += numeric.Log(d)
		}

		w[i] = sign / numeric.Exp(sum+ln2*T(n-1))
	}

	return w
}

// IdealValues returns the desired response D and the weight W at xv. The
// band containing xv is used; when rounding puts xv just outside every
// band, the nearest band is used instead.
func IdealValues[T numeric.Real](xv T, bands []band.Band[T]) (d, w T) {
	nearest := 0
	best := T(-1)

	for i, b := range bands {
		if b.Contains(xv) {
			return b.Ideal(xv)
		}

		dist := min(numeric.Abs(xv-b.Start), numeric.Abs(xv-b.Stop))
		if best < 0 || dist < best {
			best = dist
			nearest = i
		}
	}

	return bands[nearest].Ideal(xv)
}

// Delta returns the signed levelled error δ of the reference x:
//
//	δ = Σ w_i D_i / Σ (-1)^(i+1) w_i / W_i
func Delta[T numeric.Real](w, x []T, bands []band.Band[T]) T {
	var num, denom T

	for i, xi := range x {
		d, wt := IdealValues(xi, bands)
		num += w[i] * d

		term := w[i] / wt
		if i%2 == 0 {
			term = -term
		}

		denom += term
	}

	return num / denom
}

// ResponseSamples returns the values C_i = D_i + (-1)^i δ / W_i of the
// interpolant at the reference nodes.
func ResponseSamples[T numeric.Real](delta T, x []T, bands []band.Band[T]) []T {
	c := make([]T, len(x))

	for i, xi := range x {
		d, wt := IdealValues(xi, bands)
		if i%2 == 0 {
			c[i] = d + delta/wt
		} else {
			c[i] = d - delta/wt
		}
	}

	return c
}

// Approximate evaluates the interpolant through (x_i, C_i) at xv. At a node
// the stored value is returned exactly.
func Approximate[T numeric.Real](xv T, x, c, w []T) T {
	var num, denom T

	for i, xi := range x {
		diff := xv - xi
		if diff == 0 {
			return c[i]
		}

		t := w[i] / diff
		num += t * c[i]
		denom += t
	}

	return num / denom
}

// Error returns the weighted approximation error (D(xv) - p(xv)) W(xv).
// At a reference node x_i it is exactly -(-1)^i δ.
func Error[T numeric.Real](xv, delta T, x, c, w []T, bands []band.Band[T]) T {
	for i, xi := range x {
		if xv == xi {
			if i%2 == 0 {
				return -delta
			}

			return delta
		}
	}

	d, wt := IdealValues(xv, bands)
	return (d - Approximate(xv, x, c, w)) * wt
}
