package pm

import (
	"cmp"
	"math"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm/band"
	"github.com/cwbudde/algo-firpm/internal/barycentric"
	"github.com/cwbudde/algo-firpm/internal/cheby"
	"github.com/cwbudde/algo-firpm/internal/numeric"
	"github.com/cwbudde/algo-firpm/internal/polyroot"
)

// extremum is a candidate point with its weighted error.
type extremum[T numeric.Real] struct {
	x, e T
}

type interval[T numeric.Real] struct {
	a, b T
}

// splitInterval cuts every band at the midpoints between consecutive
// reference nodes inside it, so each piece holds about one extremum of the
// error and a low-degree interpolant resolves it.
func splitInterval[T numeric.Real](bands []band.Band[T], x []T) []interval[T] {
	var out []interval[T]

	for _, b := range bands {
		pts := []T{b.Start}

		var last T
		seen := false
		for _, v := range x {
			if !b.Contains(v) {
				continue
			}

			if seen {
				pts = append(pts, (last+v)/2)
			}

			last, seen = v, true
		}

		pts = append(pts, b.Stop)

		if b.Start == b.Stop {
			out = append(out, interval[T]{b.Start, b.Stop})
			continue
		}

		for i := 1; i < len(pts); i++ {
			if pts[i] > pts[i-1] {
				out = append(out, interval[T]{pts[i-1], pts[i]})
			}
		}
	}

	return out
}

// findCandidates returns the critical points of the weighted error on every
// sub-interval, together with the sub-interval endpoints, sorted and
// de-duplicated.
func findCandidates[T numeric.Real](x []T, delta T, c, w []T, bands []band.Band[T], cfg config) ([]extremum[T], error) {
	errAt := func(v T) T { return barycentric.Error(v, delta, x, c, w, bands) }

	nodes := cheby.Nodes[T](cfg.nmax)
	var cands []extremum[T]

	for _, iv := range splitInterval(bands, x) {
		if iv.a == iv.b {
			cands = append(cands, extremum[T]{iv.a, errAt(iv.a)})
			continue
		}

		// nodes run from 1 down to -1, so fv[0] is at b and fv[n] at a.
		pts := cheby.ChangeOfVariable(nodes, iv.a, iv.b)
		pts[0], pts[len(pts)-1] = iv.b, iv.a
		fv := make([]T, len(pts))
		for i, p := range pts {
			fv[i] = errAt(p)
		}

		coeffs := cheby.Coefficients(fv)
		deriv := cheby.Derivative(coeffs, cfg.kind)

		roots, err := polyroot.Roots(deriv, iv.a, iv.b, cfg.kind, cfg.balance)
		if err != nil {
			return nil, err
		}

		cands = append(cands,
			extremum[T]{iv.a, fv[len(fv)-1]},
			extremum[T]{iv.b, fv[0]},
		)
		for _, r := range roots {
			cands = append(cands, extremum[T]{r, errAt(r)})
		}
	}

	return dedupe(cands), nil
}

// dedupe sorts candidates by position and merges points closer than a few
// ulps, keeping the larger error.
func dedupe[T numeric.Real](cands []extremum[T]) []extremum[T] {
	slices.SortFunc(cands, func(p, q extremum[T]) int { return cmp.Compare(p.x, q.x) })

	tol := 16 * numeric.Epsilon[T]()
	out := cands[:0]
	for _, c := range cands {
		if n := len(out); n > 0 && c.x-out[n-1].x <= tol {
			if numeric.Abs(c.e) > numeric.Abs(out[n-1].e) {
				out[n-1] = c
			}
			continue
		}

		out = append(out, c)
	}

	return out
}

// alternating collapses runs of equal error sign to their largest member.
// Points with zero error carry no sign and are skipped.
func alternating[T numeric.Real](cands []extremum[T]) []extremum[T] {
	var out []extremum[T]

	for _, c := range cands {
		if c.e == 0 {
			continue
		}

		if n := len(out); n > 0 && (c.e > 0) == (out[n-1].e > 0) {
			if numeric.Abs(c.e) > numeric.Abs(out[n-1].e) {
				out[n-1] = c
			}
			continue
		}

		out = append(out, c)
	}

	return out
}

// selectReference reduces the candidates to len(x) alternating extrema. If
// there are too few, the set is completed from the strongest remaining
// candidates and then from the old reference, and degraded is true.
func selectReference[T numeric.Real](
	cands []extremum[T], x []T, delta T, c, w []T, bands []band.Band[T], sel Selection,
) (next []extremum[T], degraded bool) {
	k := len(x)
	alt := alternating(cands)

	if len(alt) >= k {
		if sel == SelectMaxMinWindow {
			return maxMinWindow(alt, k), false
		}

		return weakestPair(alt, k), false
	}

	used := make(map[T]bool, k)
	next = slices.Clone(alt)
	for _, e := range next {
		used[e.x] = true
	}

	rest := make([]extremum[T], 0, len(cands))
	for _, e := range cands {
		if !used[e.x] {
			rest = append(rest, e)
		}
	}

	slices.SortFunc(rest, func(p, q extremum[T]) int {
		return cmp.Compare(numeric.Abs(q.e), numeric.Abs(p.e))
	})

	for _, e := range rest {
		if len(next) == k {
			break
		}

		next = append(next, e)
		used[e.x] = true
	}

	for _, v := range x {
		if len(next) == k {
			break
		}

		if !used[v] {
			next = append(next, extremum[T]{v, barycentric.Error(v, delta, x, c, w, bands)})
			used[v] = true
		}
	}

	slices.SortFunc(next, func(p, q extremum[T]) int { return cmp.Compare(p.x, q.x) })

	return next, true
}

func weakestPair[T numeric.Real](alt []extremum[T], k int) []extremum[T] {
	a := slices.Clone(alt)

	for len(a) > k {
		n := len(a)
		if n-k == 1 {
			if numeric.Abs(a[0].e) < numeric.Abs(a[n-1].e) {
				a = a[1:]
			} else {
				a = a[:n-1]
			}
			continue
		}

		idx := 0
		best := max(numeric.Abs(a[0].e), numeric.Abs(a[1].e))
		for i := 1; i < n-1; i++ {
			if m := max(numeric.Abs(a[i].e), numeric.Abs(a[i+1].e)); m < best {
				best, idx = m, i
			}
		}

		a = slices.Delete(a, idx, idx+2)
	}

	return a
}

func maxMinWindow[T numeric.Real](alt []extremum[T], k int) []extremum[T] {
	start := 0
	bestMin, bestSum := T(-1), T(-1)

	for s := 0; s+k <= len(alt); s++ {
		mn := numeric.Abs(alt[s].e)
		var sum T
		for _, e := range alt[s : s+k] {
			m := numeric.Abs(e.e)
			mn = min(mn, m)
			sum += m
		}

		if mn > bestMin || (mn == bestMin && sum > bestSum) {
			start, bestMin, bestSum = s, mn, sum
		}
	}

	return slices.Clone(alt[start : start+k])
}

// quality returns (max|e| - min|e|) / max|e| over the extrema.
func quality[T numeric.Real](ext []extremum[T]) T {
	mags := make(stats.Float64Data, len(ext))
	for i, e := range ext {
		mags[i] = math.Abs(float64(e.e))
	}

	hi, err := stats.Max(mags)
	if err != nil {
		return 1
	}

	if hi == 0 {
		return 0
	}

	lo, err := stats.Min(mags)
	if err != nil {
		return 1
	}

	return T((hi - lo) / hi)
}

func positions[T numeric.Real](ext []extremum[T]) []T {
	x := make([]T, len(ext))
	for i, e := range ext {
		x[i] = e.x
	}

	return x
}
