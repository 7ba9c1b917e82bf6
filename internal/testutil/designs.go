package testutil

import "math"

// BandTarget is the expected amplitude over a normalized frequency range
// (1 = Nyquist).
type BandTarget struct {
	Lo, Hi float64
	Want   float64
}

// DesignCase is a band specification together with the bands its result
// should be checked against.
type DesignCase struct {
	Name    string
	Order   int
	F, A, W []float64
	Targets []BandTarget
}

// Lowpass returns a lowpass with a passband to 0.4 and a stopband from 0.5.
func Lowpass(order int) DesignCase {
	return DesignCase{
		Name:  "lowpass",
		Order: order,
		F:     []float64{0, 0.4, 0.5, 1},
		A:     []float64{1, 1, 0, 0},
		W:     []float64{1, 1},
		Targets: []BandTarget{
			{Lo: 0, Hi: 0.4, Want: 1},
			{Lo: 0.5, Hi: 1, Want: 0},
		},
	}
}

// Bandstop returns a three-band bandstop with the stopband in [0.3, 0.5].
func Bandstop(order int) DesignCase {
	return DesignCase{
		Name:  "bandstop",
		Order: order,
		F:     []float64{0, 0.2, 0.3, 0.5, 0.6, 1},
		A:     []float64{1, 1, 0, 0, 1, 1},
		W:     []float64{1, 1, 1},
		Targets: []BandTarget{
			{Lo: 0, Hi: 0.2, Want: 1},
			{Lo: 0.3, Hi: 0.5, Want: 0},
			{Lo: 0.6, Hi: 1, Want: 1},
		},
	}
}

// Bandpass returns a bandpass with a passband in [0.3, 0.6] and weighted
// stopbands.
func Bandpass(order int) DesignCase {
	return DesignCase{
		Name:  "bandpass",
		Order: order,
		F:     []float64{0, 0.2, 0.3, 0.6, 0.7, 1},
		A:     []float64{0, 0, 1, 1, 0, 0},
		W:     []float64{10, 1, 10},
		Targets: []BandTarget{
			{Lo: 0, Hi: 0.2, Want: 0},
			{Lo: 0.3, Hi: 0.6, Want: 1},
			{Lo: 0.7, Hi: 1, Want: 0},
		},
	}
}

// ZeroPhaseAmplitude evaluates sum_k h[k] cos((k - (N-1)/2) ω) at
// ω = π·f, with f normalized to Nyquist.
func ZeroPhaseAmplitude(h []float64, f float64) float64 {
	mid := float64(len(h)-1) / 2
	omega := math.Pi * f

	var a float64
	for k, c := range h {
		a += c * math.Cos((float64(k)-mid)*omega)
	}

	return a
}

// MaxBandError returns the largest |A(f) - want| over n+1 equispaced
// points of [lo, hi].
func MaxBandError(h []float64, t BandTarget, n int) float64 {
	var dev float64
	for i := 0; i <= n; i++ {
		f := t.Lo + (t.Hi-t.Lo)*float64(i)/float64(n)
		dev = math.Max(dev, math.Abs(ZeroPhaseAmplitude(h, f)-t.Want))
	}

	return dev
}
