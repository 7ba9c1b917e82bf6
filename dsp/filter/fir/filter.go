package fir

import (
	"math"
	"math/cmplx"
)

// Filter implements a direct-form FIR filter using a circular-buffer delay line.
type Filter struct {
	coeffs    []float64
	delay     []float64
	pos       int
	symmetric bool
}

// New creates a FIR filter from the given taps. The taps are copied. The
// filter order is len(coeffs)-1.
func New(coeffs []float64) *Filter {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return &Filter{
		coeffs:    c,
		delay:     make([]float64, len(coeffs)),
		symmetric: isSymmetric(c),
	}
}

func isSymmetric(c []float64) bool {
	n := len(c)
	for i := range n / 2 {
		if c[i] != c[n-1-i] {
			return false
		}
	}

	return n > 0
}

// ProcessSample filters one input sample.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
//
// For symmetric taps the pairs x[n-k] and x[n-(N-1-k)] are added before the
// multiply.
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.coeffs)
	f.delay[f.pos] = x

	var y float64
	if f.symmetric {
		// newest and oldest sample in the delay line
		p, q := f.pos, f.pos+1
		if q == n {
			q = 0
		}

		for k := range n / 2 {
			y += f.coeffs[k] * (f.delay[p] + f.delay[q])
			p--
			if p < 0 {
				p = n - 1
			}

			q++
			if q == n {
				q = 0
			}
		}

		if n%2 == 1 {
			y += f.coeffs[n/2] * f.delay[p]
		}
	} else {
		p := f.pos
		for k := range n {
			y += f.coeffs[k] * f.delay[p]
			p--
			if p < 0 {
				p = n - 1
			}
		}
	}

	f.pos++
	if f.pos >= n {
		f.pos = 0
	}

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Symmetric reports whether the taps are symmetric (linear phase).
func (f *Filter) Symmetric() bool {
	return f.symmetric
}

// Coefficients returns a copy of the filter taps.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Response computes the complex frequency response H(e^{jω}) at the
// angular frequency omega in radians per sample.
func (f *Filter) Response(omega float64) complex128 {
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}

	return h
}

// Amplitude returns the real zero-phase amplitude
//
//	A(ω) = sum_k h[k] cos((k - (N-1)/2) ω)
//
// which equals H(e^{jω}) e^{jω(N-1)/2} for symmetric taps. Unlike the
// magnitude it keeps its sign, so it is what a minimax design approximates.
func (f *Filter) Amplitude(omega float64) float64 {
	mid := float64(len(f.coeffs)-1) / 2

	var a float64
	for k, c := range f.coeffs {
		a += c * math.Cos((float64(k)-mid)*omega)
	}

	return a
}

// MagnitudeDB returns the magnitude response in dB at omega (rad/sample).
func (f *Filter) MagnitudeDB(omega float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(omega)))
}
