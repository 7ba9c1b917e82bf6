package fir

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrFFTSize is returned for an FFT size that is not a power of two or
	// is shorter than the tap set.
	ErrFFTSize = errors.New("fir: FFT size must be a power of two not smaller than the tap count")

	// ErrBandRange is returned for band edges outside [0, 1] or reversed.
	ErrBandRange = errors.New("fir: band edges must satisfy 0 <= lo <= hi <= 1")
)

// MagnitudeResponse returns |H(e^{jω_k})| at ω_k = 2πk/nfft for
// k = 0..nfft/2, i.e. nfft/2+1 bins from DC to Nyquist.
func MagnitudeResponse(h []float64, nfft int) ([]float64, error) {
	if nfft < 2 || nfft&(nfft-1) != 0 || nfft < len(h) {
		return nil, fmt.Errorf("%w: nfft=%d taps=%d", ErrFFTSize, nfft, len(h))
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("fir: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, nfft)
	for i, v := range h {
		padded[i] = complex(v, 0)
	}

	spec := make([]complex128, nfft)
	if err := plan.Forward(spec, padded); err != nil {
		return nil, fmt.Errorf("fir: forward FFT failed: %w", err)
	}

	bins := nfft/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// BandDeviation returns the largest |mag[k] - want| over the bins of a
// [MagnitudeResponse] result whose normalized frequency (1 = Nyquist) lies
// in [lo, hi].
func BandDeviation(mag []float64, lo, hi, want float64) (float64, error) {
	if lo < 0 || hi > 1 || lo > hi {
		return 0, fmt.Errorf("%w: [%v, %v]", ErrBandRange, lo, hi)
	}

	last := len(mag) - 1
	if last < 1 {
		return 0, fmt.Errorf("%w: %d bins", ErrFFTSize, len(mag))
	}

	var dev float64
	for k, m := range mag {
		f := float64(k) / float64(last)
		if f < lo || f > hi {
			continue
		}

		dev = math.Max(dev, math.Abs(m-want))
	}

	return dev, nil
}
