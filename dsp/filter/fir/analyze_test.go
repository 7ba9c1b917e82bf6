package fir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeResponse_MatchesDirectEvaluation(t *testing.T) {
	h := []float64{0.05, -0.1, 0.3, 0.5, 0.3, -0.1, 0.05}
	f := New(h)

	mag, err := MagnitudeResponse(h, 64)
	if err != nil {
		t.Fatalf("MagnitudeResponse: %v", err)
	}
	if len(mag) != 33 {
		t.Fatalf("len = %d, want 33", len(mag))
	}

	for k, m := range mag {
		w := 2 * math.Pi * float64(k) / 64
		if want := cmplx.Abs(f.Response(w)); !almostEqual(m, want, 1e-12) {
			t.Errorf("bin %d: got %v, want %v", k, m, want)
		}
	}
}

func TestMagnitudeResponse_Errors(t *testing.T) {
	cases := []struct {
		name string
		taps int
		nfft int
	}{
		{"not power of two", 3, 48},
		{"too short", 9, 8},
		{"one", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MagnitudeResponse(make([]float64, tc.taps), tc.nfft)
			if !errors.Is(err, ErrFFTSize) {
				t.Fatalf("err = %v, want ErrFFTSize", err)
			}
		})
	}
}

func TestBandDeviation(t *testing.T) {
	mag := []float64{1, 1.1, 0.95, 0.5, 0.02, 0.01, 0.0}

	dev, err := BandDeviation(mag, 0, 2.0/6, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(dev, 0.1, 1e-12) {
		t.Errorf("passband deviation = %v, want 0.1", dev)
	}

	dev, err = BandDeviation(mag, 4.0/6, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(dev, 0.02, 1e-12) {
		t.Errorf("stopband deviation = %v, want 0.02", dev)
	}

	if _, err := BandDeviation(mag, 0.6, 0.4, 0); !errors.Is(err, ErrBandRange) {
		t.Errorf("reversed band: err = %v, want ErrBandRange", err)
	}
	if _, err := BandDeviation(mag[:1], 0, 1, 0); !errors.Is(err, ErrFFTSize) {
		t.Errorf("single bin: err = %v, want ErrFFTSize", err)
	}
}
