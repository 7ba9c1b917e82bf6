// Package cheby represents functions on [-1, 1] as truncated Chebyshev
// series. It samples them at Chebyshev points of the second kind, fits
// coefficients with a discrete cosine sum, evaluates them with the Clenshaw
// recurrence and differentiates them.
//
// Every function returns a freshly allocated slice; input slices are never
// modified.
package cheby

import (
	"github.com/cwbudde/algo-firpm/internal/numeric"
)

// Kind selects the Chebyshev basis of an expansion.
type Kind int

const (
	// First is the basis T_0, T_1, ... of first-kind polynomials.
	First Kind = iota
	// Second is the basis U_0, U_1, ... of second-kind polynomials.
	Second
)

// String returns the name of the basis.
func (k Kind) String() string {
	switch k {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "unknown"
	}
}

// Cos returns the element-wise cosine of in.
func Cos[T numeric.Real](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = numeric.Cos(v)
	}

	return out
}

// ChangeOfVariable maps points of [-1, 1] affinely onto [a, b].
func ChangeOfVariable[T numeric.Real](in []T, a, b T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = (b+a)/2 + v*(b-a)/2
	}

	return out
}

// EquidistantAngles returns the n+1 angles iπ/n, i = 0..n.
func EquidistantAngles[T numeric.Real](n int) []T {
	v := make([]T, n+1)
	if n == 0 {
		return v
	}

	pi := numeric.Pi[T]()
	for i := range v {
		v[i] = pi * T(i) / T(n)
	}

	return v
}

// Nodes returns the n+1 Chebyshev points of the second kind in decreasing
// order, computed as sin(πk/(2n)) for k = n, n-2, ..., -n. The sine form is
// symmetric about zero to the last bit. For n = 0 the single node is 0.
func Nodes[T numeric.Real](n int) []T {
	if n == 0 {
		return []T{0}
	}

	x := make([]T, 0, n+1)
	pi := numeric.Pi[T]()
	for k := n; k >= -n; k -= 2 {
		x = append(x, numeric.Sin(pi*T(k)/T(2*n)))
	}

	return x
}

// Evaluate computes sum c[k] T_k(x) with the Clenshaw recurrence.
func Evaluate[T numeric.Real](c []T, x T) T {
	n := len(c) - 1
	if n < 0 {
		return 0
	}

	if n == 0 {
		return c[0]
	}

	var bn2 T
	bn1 := c[n]
	for k := n - 1; k >= 1; k-- {
		bn := 2*x*bn1 - bn2 + c[k]
		bn2 = bn1
		bn1 = bn
	}

	return x*bn1 - bn2 + c[0]
}

// EvaluateSecond computes sum c[k] U_k(x) with the Clenshaw recurrence.
func EvaluateSecond[T numeric.Real](c []T, x T) T {
	n := len(c) - 1
	if n < 0 {
		return 0
	}

	if n == 0 {
		return c[0]
	}

	var bn2 T
	bn1 := c[n]
	for k := n - 1; k >= 1; k-- {
		bn := 2*x*bn1 - bn2 + c[k]
		bn2 = bn1
		bn1 = bn
	}

	return 2*x*bn1 - bn2 + c[0]
}

// Coefficients returns the n+1 first-kind coefficients of the polynomial
// interpolating fv, where fv[i] is the function value at cos(iπ/n) (the
// order produced by [Nodes]). The endpoint samples carry half weight.
func Coefficients[T numeric.Real](fv []T) []T {
	n := len(fv) - 1
	c := make([]T, n+1)
	if n == 0 {
		c[0] = fv[0]
		return c
	}

	half := make([]T, n+1)
	copy(half, fv)
	half[0] /= 2
	half[n] /= 2

	angles := EquidistantAngles[T](n)
	for i := range c {
		// sum_j'' fv[j] cos(ijπ/n) = sum_j'' fv[j] T_j(cos(iπ/n))
		c[i] = Evaluate(half, numeric.Cos(angles[i]))
		if i == 0 || i == n {
			c[i] /= T(n)
		} else {
			c[i] *= 2 / T(n)
		}
	}

	return c
}

// Derivative returns the coefficients of the derivative of the first-kind
// expansion c, expressed in the requested basis. The result has len(c)-1
// coefficients (at least one).
func Derivative[T numeric.Real](c []T, kind Kind) []T {
	if len(c) < 2 {
		return []T{0}
	}

	if kind == Second {
		return derivativeSecond(c)
	}

	return derivativeFirst(c)
}

// derivativeFirst runs the backward recurrence
// d[i] = 2(i+1) c[i+1] + d[i+2], halving d[0] at the end.
func derivativeFirst[T numeric.Real](c []T) []T {
	n := len(c) - 2
	d := make([]T, n+1)

	d[n] = T(2*(n+1)) * c[n+1]
	if n >= 1 {
		d[n-1] = T(2*n) * c[n]
	}

	for i := n - 2; i >= 0; i-- {
		d[i] = T(2*(i+1))*c[i+1] + d[i+2]
	}

	d[0] /= 2

	return d
}

// derivativeSecond uses T_n' = n U_{n-1}.
func derivativeSecond[T numeric.Real](c []T) []T {
	d := make([]T, len(c)-1)
	for i := len(c) - 1; i > 0; i-- {
		d[i-1] = T(i) * c[i]
	}

	return d
}
