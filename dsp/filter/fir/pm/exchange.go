package pm

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm/band"
	"github.com/cwbudde/algo-firpm/internal/barycentric"
	"github.com/cwbudde/algo-firpm/internal/numeric"
)

var (
	// ErrReference is returned for a reference set that is too small or
	// not strictly increasing.
	ErrReference = errors.New("pm: reference must be strictly increasing with at least two nodes")

	// ErrBands is returned for an empty band collection or bands that are
	// not in Chebyshev space.
	ErrBands = errors.New("pm: bands must be non-empty and in Chebyshev space")
)

// Status is the state of an exchange run.
type Status int

const (
	// StatusInitialized is the state before the first iteration.
	StatusInitialized Status = iota
	// StatusIterating is the state while iterations run.
	StatusIterating
	// StatusConverged means Q or δ reached its tolerance.
	StatusConverged
	// StatusExhausted means the iteration cap was reached first.
	StatusExhausted
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusIterating:
		return "iterating"
	case StatusConverged:
		return "converged"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Output is the result of an exchange run.
type Output[T numeric.Real] struct {
	// X is the final reference set in [-1, 1], increasing.
	X []T
	// Delta is the magnitude of the levelled error on X.
	Delta T
	// Q is (max|e| - min|e|) / max|e| over the extrema of the last
	// iteration. It is 1 when the last iteration was degraded.
	Q T
	// Iter is the number of iterations run.
	Iter int
	// Status is StatusConverged or StatusExhausted.
	Status Status
	// Degraded reports that the last iteration found fewer alternating
	// extrema than reference points.
	Degraded bool
	// Bands is a copy of the input bands with Extremas counted on X.
	Bands []band.Band[T]
	// H holds the filter taps; only the design drivers fill it.
	H []T
}

// Exchange runs the Remez exchange from the reference x over Chebyshev-space
// bands. x is not modified. The returned error is non-nil only for invalid
// input or a rootfinder failure; non-convergence is reported through
// Output.Status and Output.Q.
func Exchange[T numeric.Real](x []T, bands []band.Band[T], opts ...Option) (Output[T], error) {
	return exchange(x, bands, applyOptions(opts...))
}

func exchange[T numeric.Real](x []T, bands []band.Band[T], cfg config) (Output[T], error) {
	if err := validate(x, bands); err != nil {
		return Output[T]{}, err
	}

	ref := slices.Clone(x)
	out := Output[T]{Status: StatusInitialized}

	var prev T
	for iter := 1; iter <= cfg.maxIterations; iter++ {
		out.Status = StatusIterating

		w := barycentric.Weights(ref)
		delta := barycentric.Delta(w, ref, bands)
		c := barycentric.ResponseSamples(delta, ref, bands)

		cands, err := findCandidates(ref, delta, c, w, bands, cfg)
		if err != nil {
			return Output[T]{}, fmt.Errorf("pm: iteration %d: %w", iter, err)
		}

		if levelled(delta, c, cands) {
			// The ideal response is reproduced; no exchange can improve it.
			out.Iter, out.Q, out.Degraded = iter, 0, false
			out.Status = StatusConverged
			break
		}

		next, degraded := selectReference(cands, ref, delta, c, w, bands, cfg.selection)
		q := T(1)
		if !degraded {
			q = quality(next)
		}

		ref = positions(next)
		out.Iter = iter
		out.Q = q
		out.Degraded = degraded

		if cfg.logger != nil {
			cfg.logger.Printf("pm: iteration %d: delta=%.6e Q=%.3e degraded=%t",
				iter, float64(numeric.Abs(delta)), float64(q), degraded)
		}

		if !degraded && float64(q) <= cfg.tolerance {
			out.Status = StatusConverged
			break
		}

		cur := numeric.Abs(delta)
		if !degraded && iter > 1 && cur > 0 &&
			float64(numeric.Abs(cur-prev)/cur) < cfg.deltaTolerance {
			out.Status = StatusConverged
			break
		}

		prev = cur
	}

	if out.Status != StatusConverged {
		out.Status = StatusExhausted
	}

	w := barycentric.Weights(ref)
	out.X = ref
	out.Delta = numeric.Abs(barycentric.Delta(w, ref, bands))
	out.Bands = countExtremas(ref, bands)

	return out, nil
}

func validate[T numeric.Real](x []T, bands []band.Band[T]) error {
	if len(x) < 2 {
		return fmt.Errorf("%w: got %d nodes", ErrReference, len(x))
	}

	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w: x[%d] = %v, x[%d] = %v", ErrReference, i-1, x[i-1], i, x[i])
		}
	}

	if len(bands) == 0 {
		return ErrBands
	}

	for i, b := range bands {
		if b.Space != band.SpaceCheby {
			return fmt.Errorf("%w: band %d is in %v space", ErrBands, i, b.Space)
		}
	}

	return nil
}

// countExtremas returns a copy of bands with Extremas set to the number of
// nodes of x in each band. Nodes that rounding left outside every band are
// counted in the nearest one.
func countExtremas[T numeric.Real](x []T, bands []band.Band[T]) []band.Band[T] {
	out := slices.Clone(bands)
	for i := range out {
		out[i].Extremas = 0
	}

	for _, v := range x {
		out[nearestBand(v, bands)].Extremas++
	}

	return out
}

func nearestBand[T numeric.Real](v T, bands []band.Band[T]) int {
	best, bestDist := 0, T(-1)
	for i, b := range bands {
		if b.Contains(v) {
			return i
		}

		d := min(numeric.Abs(v-b.Start), numeric.Abs(v-b.Stop))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// levelled reports whether both δ and the weighted error at every candidate
// are at rounding level relative to the response samples. A small δ alone
// only says the current reference is badly placed.
func levelled[T numeric.Real](delta T, c []T, cands []extremum[T]) bool {
	tol := 64 * numeric.Epsilon[T]() * max(numeric.MaxAbs(c), 1)
	if numeric.Abs(delta) > tol {
		return false
	}

	for _, e := range cands {
		if !(numeric.Abs(e.e) <= tol) {
			return false
		}
	}

	return true
}
