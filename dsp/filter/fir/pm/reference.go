package pm

import (
	"math"
	"slices"
	"sort"

	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm/band"
	"github.com/cwbudde/algo-firpm/internal/numeric"
)

// UniformReference returns k frequencies spread over the frequency-space
// bands proportionally to their widths, equispaced inside each band. Every
// band receives at least one point, so k must be at least len(bands).
func UniformReference[T numeric.Real](k int, freqBands []band.Band[T]) []T {
	widths := make([]float64, len(freqBands))
	for i, b := range freqBands {
		widths[i] = float64(b.Width())
	}

	counts := apportion(k, widths)
	omega := make([]T, 0, k)

	for i, b := range freqBands {
		n := counts[i]
		// A band starting where the previous one stops must not repeat the
		// shared edge.
		shared := i > 0 && b.Start <= freqBands[i-1].Stop

		switch {
		case n == 1:
			if b.Width() == 0 || !shared {
				omega = append(omega, b.Start)
			} else {
				omega = append(omega, b.Start+b.Width()/2)
			}
		case shared:
			step := b.Width() / T(n)
			for j := range n {
				omega = append(omega, b.Start+T(j+1)*step)
			}
		default:
			step := b.Width() / T(n-1)
			for j := range n {
				omega = append(omega, b.Start+T(j)*step)
			}
			omega[len(omega)-1] = b.Stop
		}
	}

	return omega
}

// ToCheby maps increasing frequencies to increasing points of [-1, 1] via
// x = cos(ω).
func ToCheby[T numeric.Real](omega []T) []T {
	n := len(omega)
	x := make([]T, n)
	for i, w := range omega {
		x[n-1-i] = numeric.Cos(w)
	}

	return x
}

// ReferenceScaling builds a reference of newK points from the converged
// reference x of a lower-degree problem on the same Chebyshev-space bands.
// Each band receives a share of newK proportional to its share of x, and
// its new points follow the old in-band distribution (piecewise linear in
// the node index), so the clustering near band edges is kept.
func ReferenceScaling[T numeric.Real](newK int, x []T, chebyBands []band.Band[T]) []T {
	groups := make([][]T, len(chebyBands))
	for _, v := range x {
		i := nearestBand(v, chebyBands)
		groups[i] = append(groups[i], v)
	}

	shares := make([]float64, len(groups))
	for i, g := range groups {
		shares[i] = float64(len(g))
	}

	counts := apportion(newK, shares)
	out := make([]T, 0, newK)

	for i, g := range groups {
		b := chebyBands[i]
		n := counts[i]

		switch {
		case len(g) >= 2 && n >= 2:
			out = append(out, resample(g, n)...)
		case n == 1 && len(g) > 0:
			out = append(out, g[len(g)/2])
		case n == 1:
			out = append(out, b.Start+b.Width()/2)
		default:
			step := b.Width() / T(n-1)
			for j := range n {
				out = append(out, b.Start+T(j)*step)
			}
		}
	}

	slices.Sort(out)

	return out
}

// resample returns n points following the increasing sequence p, linearly
// interpolated over the fractional index j(len(p)-1)/(n-1).
func resample[T numeric.Real](p []T, n int) []T {
	m := len(p)
	out := make([]T, n)

	for j := range n {
		t := float64(j*(m-1)) / float64(n-1)
		i := min(int(t), m-2)
		f := T(t - float64(i))
		out[j] = p[i] + f*(p[i+1]-p[i])
	}

	out[n-1] = p[m-1]

	return out
}

// apportion splits k into len(weights) positive integers proportional to
// weights using largest remainders. Entries with zero weight receive one.
func apportion(k int, weights []float64) []int {
	counts := make([]int, len(weights))
	if len(weights) == 0 {
		return counts
	}

	var total float64
	for i, w := range weights {
		counts[i] = 1
		total += w
	}

	avail := k - len(weights)
	if avail <= 0 || total == 0 {
		return counts
	}

	type rem struct {
		i int
		f float64
	}

	rems := make([]rem, len(weights))
	used := 0
	for i, w := range weights {
		q := float64(avail) * w / total
		fl := math.Floor(q)
		counts[i] += int(fl)
		used += int(fl)
		rems[i] = rem{i, q - fl}
	}

	sort.SliceStable(rems, func(a, b int) bool { return rems[a].f > rems[b].f })
	for j := 0; used < avail; j++ {
		counts[rems[j%len(rems)].i]++
		used++
	}

	return counts
}
