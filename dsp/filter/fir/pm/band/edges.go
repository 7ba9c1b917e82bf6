package band

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-firpm/internal/numeric"
)

var (
	// ErrEdgeCount is returned when the edge list is empty or has odd length.
	ErrEdgeCount = errors.New("band: edge count must be even and positive")
	// ErrLengthMismatch is returned when amplitudes or weights do not match the edges.
	ErrLengthMismatch = errors.New("band: amplitude or weight count does not match edges")
	// ErrEdgeRange is returned for edges outside [0, 1].
	ErrEdgeRange = errors.New("band: edge outside [0, 1]")
	// ErrUnsorted is returned when edges decrease.
	ErrUnsorted = errors.New("band: edges are not sorted")
	// ErrZeroWidth is returned for a band whose start equals its stop.
	ErrZeroWidth = errors.New("band: zero-width band")
	// ErrWeight is returned for a weight that is not strictly positive.
	ErrWeight = errors.New("band: weight must be positive")
)

// FromEdges builds frequency-space bands from normalized band edges.
//
// f holds pairs of edges in [0, 1], where 1 is the Nyquist frequency, a the
// desired amplitude at each edge and w one weight per band. A band with
// different amplitudes at its edges gets a [Linear] response in frequency.
func FromEdges[T numeric.Real](f, a, w []T) ([]Band[T], error) {
	if len(f) == 0 || len(f)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEdgeCount, len(f))
	}

	if len(a) != len(f) || len(w) != len(f)/2 {
		return nil, fmt.Errorf("%w: %d edges, %d amplitudes, %d weights",
			ErrLengthMismatch, len(f), len(a), len(w))
	}

	for i, v := range f {
		if v < 0 || v > 1 || !numeric.IsFinite(v) {
			return nil, fmt.Errorf("%w: f[%d] = %v", ErrEdgeRange, i, v)
		}

		if i > 0 && v < f[i-1] {
			return nil, fmt.Errorf("%w: f[%d] = %v < f[%d] = %v", ErrUnsorted, i, v, i-1, f[i-1])
		}
	}

	pi := numeric.Pi[T]()
	bands := make([]Band[T], len(w))

	for i := range bands {
		lo, hi := f[2*i], f[2*i+1]
		if lo == hi {
			return nil, fmt.Errorf("%w: band %d at %v", ErrZeroWidth, i, lo)
		}

		if !(w[i] > 0) {
			return nil, fmt.Errorf("%w: band %d weight %v", ErrWeight, i, w[i])
		}

		b := Band[T]{
			Space:  SpaceFreq,
			Start:  pi * lo,
			Stop:   pi * hi,
			Weight: Constant[T]{Value: w[i]},
		}

		if a[2*i] == a[2*i+1] {
			b.Amplitude = Constant[T]{Value: a[2*i]}
		} else {
			b.Amplitude = Linear[T]{
				Space: SpaceFreq,
				Start: b.Start,
				Stop:  b.Stop,
				From:  a[2*i],
				To:    a[2*i+1],
			}
		}

		bands[i] = b
	}

	return bands, nil
}
