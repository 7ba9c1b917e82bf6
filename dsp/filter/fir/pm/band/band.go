package band

import (
	"github.com/cwbudde/algo-firpm/internal/numeric"
)

// Space identifies the domain a band's bounds are expressed in.
type Space int

const (
	// SpaceFreq is angular frequency in [0, π].
	SpaceFreq Space = iota
	// SpaceCheby is the normalized interpolation domain [-1, 1], x = cos(ω).
	SpaceCheby
)

// String returns the space name.
func (s Space) String() string {
	switch s {
	case SpaceFreq:
		return "freq"
	case SpaceCheby:
		return "cheby"
	default:
		return "unknown"
	}
}

// Direction selects the change of variable applied by [Convert].
type Direction int

const (
	// FromFreq applies x = cos(ω).
	FromFreq Direction = iota
	// ToFreq applies ω = arccos(x).
	ToFreq
)

// Band is one approximation interval.
type Band[T numeric.Real] struct {
	Space     Space
	Start     T
	Stop      T
	Amplitude Response[T]
	Weight    Response[T]
	// Extremas is the number of reference points currently in the band.
	Extremas int
}

// Width returns Stop - Start.
func (b Band[T]) Width() T { return b.Stop - b.Start }

// Contains reports whether x lies in the closed interval [Start, Stop].
func (b Band[T]) Contains(x T) bool { return x >= b.Start && x <= b.Stop }

// Ideal returns the desired amplitude and weight at x, where x is given in
// the band's own space.
func (b Band[T]) Ideal(x T) (d, w T) {
	return b.Amplitude.Eval(b.Space, x), b.Weight.Eval(b.Space, x)
}

// Convert applies the change of variable selected by dir to every band of
// in. Since cos is decreasing, band order is reversed and each band's
// bounds are swapped so that the result is again increasing. The response
// shapes are shared with in, which is not modified.
//
// Values outside [0, π] (FromFreq) or [-1, 1] (ToFreq) are not checked.
func Convert[T numeric.Real](in []Band[T], dir Direction) []Band[T] {
	n := len(in)
	out := make([]Band[T], n)

	for i, b := range in {
		o := Band[T]{
			Amplitude: b.Amplitude,
			Weight:    b.Weight,
			Extremas:  b.Extremas,
		}

		if dir == FromFreq {
			o.Space = SpaceCheby
			o.Start = numeric.Cos(b.Stop)
			o.Stop = numeric.Cos(b.Start)
		} else {
			o.Space = SpaceFreq
			o.Start = numeric.Acos(b.Stop)
			o.Stop = numeric.Acos(b.Start)
		}

		out[n-1-i] = o
	}

	return out
}
