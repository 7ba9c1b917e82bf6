// Package numeric defines the real-number contract shared by the Remez
// exchange packages and a few precision-aware helpers.
//
// All arithmetic is done in the instantiated type T. Transcendental
// functions round-trip through float64, which is exact for float64 and
// correctly rounded for float32.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is the set of floating-point types the engine can be instantiated
// with.
type Real interface {
	constraints.Float
}

// Pi returns π rounded to T.
func Pi[T Real]() T { return T(math.Pi) }

// Cos returns cos(x).
func Cos[T Real](x T) T { return T(math.Cos(float64(x))) }

// Sin returns sin(x).
func Sin[T Real](x T) T { return T(math.Sin(float64(x))) }

// Acos returns arccos(x).
func Acos[T Real](x T) T { return T(math.Acos(float64(x))) }

// Sqrt returns the square root of x.
func Sqrt[T Real](x T) T { return T(math.Sqrt(float64(x))) }

// Log returns the natural logarithm of x.
func Log[T Real](x T) T { return T(math.Log(float64(x))) }

// Exp returns e**x.
func Exp[T Real](x T) T { return T(math.Exp(float64(x))) }

// Abs returns |x|.
func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Real](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Real]() T {
	// A 2^-30 increment survives in float64 but not in float32.
	if T(1)+T(math.Ldexp(1, -30)) == T(1) {
		return T(math.Ldexp(1, -23))
	}

	return T(math.Ldexp(1, -52))
}

// MaxAbs returns the largest magnitude in v, or zero for an empty slice.
func MaxAbs[T Real](v []T) T {
	var m T
	for _, x := range v {
		if a := Abs(x); a > m {
			m = a
		}
	}

	return m
}
