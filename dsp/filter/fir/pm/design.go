package pm

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm/band"
	"github.com/cwbudde/algo-firpm/internal/barycentric"
	"github.com/cwbudde/algo-firpm/internal/cheby"
	"github.com/cwbudde/algo-firpm/internal/numeric"
)

// ErrOrder is returned when the filter order is negative or too small to
// place a reference point in every band.
var ErrOrder = errors.New("pm: filter order too small for the band specification")

// nyquistClip is how far (as a fraction of π) a type II design keeps its
// last band away from the Nyquist frequency, where its response is forced
// to zero.
const nyquistClip = 1e-4

// FilterType is the linear-phase symmetry class of a design.
type FilterType int

const (
	// TypeI is a symmetric filter of even order (odd length).
	TypeI FilterType = iota + 1
	// TypeII is a symmetric filter of odd order (even length).
	TypeII
)

// String returns the conventional name.
func (t FilterType) String() string {
	switch t {
	case TypeI:
		return "I"
	case TypeII:
		return "II"
	default:
		return "unknown"
	}
}

// TypeOf returns the symmetric filter type for a given order.
func TypeOf(order int) FilterType {
	if order%2 == 0 {
		return TypeI
	}

	return TypeII
}

// Degree returns the degree of the cosine polynomial behind a symmetric
// filter of the given order.
func Degree(order int) int {
	if order%2 == 0 {
		return order / 2
	}

	return (order - 1) / 2
}

// Design computes the minimax-optimal symmetric FIR filter of the given
// order (order+1 taps) for the band specification f, a, w (see
// [band.FromEdges]). The exchange starts from a uniformly spaced reference.
func Design[T numeric.Real](order int, f, a, w []T, opts ...Option) (Output[T], error) {
	cfg := applyOptions(opts...)

	freqBands, err := prepare(order, f, a, w)
	if err != nil {
		return Output[T]{}, err
	}

	degree := Degree(order)
	chebyBands := band.Convert(freqBands, band.FromFreq)
	x := ToCheby(UniformReference(degree+2, freqBands))

	out, err := exchange(x, chebyBands, cfg)
	if err != nil {
		return out, err
	}

	out.H = Taps(out.X, chebyBands, degree, TypeOf(order))

	return out, nil
}

// DesignRS computes the same filter as [Design] with reference scaling:
// the first exchange runs at degree/2^depth from a uniform reference, and
// each following stage doubles the degree, seeded with [ReferenceScaling]
// of the previous result. Output.Iter counts the final stage only.
func DesignRS[T numeric.Real](order int, f, a, w []T, opts ...Option) (Output[T], error) {
	cfg := applyOptions(opts...)

	freqBands, err := prepare(order, f, a, w)
	if err != nil {
		return Output[T]{}, err
	}

	degree := Degree(order)
	depth := cfg.scalingDepth
	for depth > 0 && (degree>>depth)+2 < 2*len(freqBands) {
		depth--
	}

	chebyBands := band.Convert(freqBands, band.FromFreq)
	x := ToCheby(UniformReference((degree>>depth)+2, freqBands))

	out, err := exchange(x, chebyBands, cfg)
	if err != nil {
		return out, err
	}

	for d := depth - 1; d >= 0; d-- {
		x = ReferenceScaling((degree>>d)+2, out.X, chebyBands)

		out, err = exchange(x, chebyBands, cfg)
		if err != nil {
			return out, fmt.Errorf("pm: scaling stage %d: %w", depth-d, err)
		}
	}

	out.H = Taps(out.X, chebyBands, degree, TypeOf(order))

	return out, nil
}

func prepare[T numeric.Real](order int, f, a, w []T) ([]band.Band[T], error) {
	freqBands, err := band.FromEdges(f, a, w)
	if err != nil {
		return nil, fmt.Errorf("pm: %w", err)
	}

	if order < 0 || Degree(order)+2 < len(freqBands) {
		return nil, fmt.Errorf("%w: order %d, %d bands", ErrOrder, order, len(freqBands))
	}

	if TypeOf(order) == TypeII {
		return typeIIBands(freqBands)
	}

	return freqBands, nil
}

// typeIIBands rewrites the problem H(ω) = cos(ω/2) P(ω) as an approximation
// of D/cos(ω/2) by P with weight W cos(ω/2).
func typeIIBands[T numeric.Real](freqBands []band.Band[T]) ([]band.Band[T], error) {
	pi := numeric.Pi[T]()
	out := make([]band.Band[T], len(freqBands))

	for i, b := range freqBands {
		if b.Stop > pi*(1-nyquistClip) {
			b.Stop = pi * (1 - nyquistClip)
			if b.Stop <= b.Start {
				return nil, fmt.Errorf("%w: band %d collapses at the Nyquist frequency of a type II filter",
					band.ErrZeroWidth, i)
			}
		}

		amp, wt := b.Amplitude, b.Weight
		b.Amplitude = band.Func[T]{Space: band.SpaceFreq, F: func(omega T) T {
			return amp.Eval(band.SpaceFreq, omega) / numeric.Cos(omega/2)
		}}
		b.Weight = band.Func[T]{Space: band.SpaceFreq, F: func(omega T) T {
			return wt.Eval(band.SpaceFreq, omega) * numeric.Cos(omega/2)
		}}

		out[i] = b
	}

	return out, nil
}

// Taps converts the reference x of a converged exchange into the impulse
// response of a symmetric filter. The interpolant is sampled at degree+1
// Chebyshev points and expanded as P(cos ω) = Σ a_k cos(kω); type I taps
// are a_0 at the centre and a_k/2 either side, type II taps come from the
// product cos(ω/2) P(ω).
func Taps[T numeric.Real](x []T, chebyBands []band.Band[T], degree int, typ FilterType) []T {
	w := barycentric.Weights(x)
	delta := barycentric.Delta(w, x, chebyBands)
	c := barycentric.ResponseSamples(delta, x, chebyBands)

	nodes := cheby.Nodes[T](degree)
	fv := make([]T, len(nodes))
	for i, v := range nodes {
		fv[i] = barycentric.Approximate(v, x, c, w)
	}

	coeffs := cheby.Coefficients(fv)

	if typ == TypeII {
		h := make([]T, 2*degree+2)
		for m := 1; m <= degree+1; m++ {
			var g T
			switch {
			case m == 1 && degree >= 1:
				g = coeffs[0] + coeffs[1]/2
			case m == 1:
				g = coeffs[0]
			case m <= degree:
				g = (coeffs[m-1] + coeffs[m]) / 2
			default:
				g = coeffs[m-1] / 2
			}

			h[degree+1-m] = g / 2
			h[degree+m] = g / 2
		}

		return h
	}

	h := make([]T, 2*degree+1)
	h[degree] = coeffs[0]
	for k := 1; k <= degree; k++ {
		h[degree-k] = coeffs[k] / 2
		h[degree+k] = coeffs[k] / 2
	}

	return h
}
