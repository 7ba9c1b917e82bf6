package fir

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-firpm/internal/testutil"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// reference is a plain convolution over the full input history.
func reference(h, x []float64) []float64 {
	y := make([]float64, len(x))
	for n := range x {
		for k, c := range h {
			if n-k >= 0 {
				y[n] += c * x[n-k]
			}
		}
	}

	return y
}

func TestNew(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)
	if f.Order() != 2 {
		t.Fatalf("Order: got %d, want 2", f.Order())
	}
	if !f.Symmetric() {
		t.Fatal("expected symmetric taps to be detected")
	}

	coeffs[0] = 999
	if f.coeffs[0] == 999 {
		t.Error("New did not copy coefficients")
	}
}

func TestSymmetricDetection(t *testing.T) {
	cases := []struct {
		taps []float64
		want bool
	}{
		{[]float64{1}, true},
		{[]float64{1, 1}, true},
		{[]float64{1, 2}, false},
		{[]float64{1, 2, 3, 2, 1}, true},
		{[]float64{1, 2, 3, 3, 2, 1}, true},
		{[]float64{1, 2, 3, 3, 2, 0}, false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := isSymmetric(tc.taps); got != tc.want {
			t.Errorf("isSymmetric(%v) = %v, want %v", tc.taps, got, tc.want)
		}
	}
}

func TestProcessSample_Impulse(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)

	for i, want := range coeffs {
		var x float64
		if i == 0 {
			x = 1
		}
		y := f.ProcessSample(x)
		if !almostEqual(y, want, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want)
		}
	}
	for i := range 5 {
		if y := f.ProcessSample(0); !almostEqual(y, 0, eps) {
			t.Errorf("post-IR sample %d: got %v, want 0", i, y)
		}
	}
}

func TestProcessSample_MatchesConvolution(t *testing.T) {
	x := testutil.DeterministicNoise(7, 1, 200)
	for _, h := range [][]float64{
		{0.1, -0.3, 0.7, -0.3, 0.1},     // odd symmetric
		{0.2, 0.5, -0.1, -0.1, 0.5, 0.2}, // even symmetric
		{1, -1},                          // asymmetric
		{0.3, 0.2, 0.9, -0.4},            // asymmetric
		{0.5},
	} {
		f := New(h)
		got := make([]float64, len(x))
		f.ProcessBlockTo(got, x)
		testutil.RequireSliceNearlyEqual(t, got, reference(h, x), 1e-12)
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	h := []float64{0.1, 0.2, 0.4, 0.2, 0.1}
	x := testutil.DeterministicSine(1000, 48000, 1, 64)

	a := New(h)
	want := make([]float64, len(x))
	for i, v := range x {
		want[i] = a.ProcessSample(v)
	}

	b := New(h)
	got := append([]float64(nil), x...)
	b.ProcessBlock(got)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestReset(t *testing.T) {
	f := New([]float64{0.5, 0.5})
	f.ProcessSample(1)
	f.ProcessSample(2)
	f.Reset()

	if y := f.ProcessSample(0); y != 0 {
		t.Fatalf("after Reset: got %v, want 0", y)
	}
}

func TestResponse_DCGain(t *testing.T) {
	f := New([]float64{0.25, 0.5, 0.25})
	if h := f.Response(0); !almostEqual(real(h), 1, eps) || !almostEqual(imag(h), 0, eps) {
		t.Fatalf("DC response: got %v, want 1", h)
	}
	if h := f.Response(math.Pi); cmplx.Abs(h) > 1e-12 {
		t.Fatalf("Nyquist response: got %v, want 0", h)
	}
}

func TestAmplitude_MatchesResponse(t *testing.T) {
	for _, h := range [][]float64{
		{0.1, -0.3, 0.7, -0.3, 0.1},
		{0.2, 0.5, -0.1, -0.1, 0.5, 0.2},
	} {
		f := New(h)
		delay := float64(len(h)-1) / 2
		for _, w := range []float64{0, 0.3, 1, 2, 3, math.Pi} {
			rot := f.Response(w) * cmplx.Exp(complex(0, w*delay))
			if !almostEqual(real(rot), f.Amplitude(w), 1e-12) || math.Abs(imag(rot)) > 1e-12 {
				t.Errorf("taps=%d ω=%v: amplitude %v, rotated response %v", len(h), w, f.Amplitude(w), rot)
			}
		}
	}
}

func TestAmplitude_KeepsSign(t *testing.T) {
	// -1 at DC, where the magnitude would be +1.
	f := New([]float64{-0.25, -0.5, -0.25})
	if a := f.Amplitude(0); !almostEqual(a, -1, eps) {
		t.Fatalf("Amplitude(0) = %v, want -1", a)
	}
}

func TestMagnitudeDB_MatchesResponse(t *testing.T) {
	f := New([]float64{0.1, 0.2, 0.4, 0.2, 0.1})
	for _, w := range []float64{0.1, 0.5, 1, 2} {
		want := 20 * math.Log10(cmplx.Abs(f.Response(w)))
		if got := f.MagnitudeDB(w); !almostEqual(got, want, 1e-10) {
			t.Errorf("ω=%v: MagnitudeDB=%.15f, ref=%.15f", w, got, want)
		}
	}
}

func TestCoefficients_IsCopy(t *testing.T) {
	f := New([]float64{1, 2, 3})
	c := f.Coefficients()
	c[0] = 999
	if f.coeffs[0] != 1 {
		t.Fatal("Coefficients returned internal slice")
	}
}
