package cheby

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(n int, f func(float64) float64) ([]float64, []float64) {
	x := Nodes[float64](n)
	fv := make([]float64, len(x))
	for i, v := range x {
		fv[i] = f(v)
	}

	return x, fv
}

func TestNodes(t *testing.T) {
	assert.Equal(t, []float64{0}, Nodes[float64](0))

	got := Nodes[float64](4)
	want := []float64{1, math.Sqrt2 / 2, 0, -math.Sqrt2 / 2, -1}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Fatalf("Nodes(4) mismatch (-want +got):\n%s", diff)
	}

	// Symmetric about zero to the last bit.
	x := Nodes[float64](37)
	for i := range x {
		assert.Equal(t, x[i], -x[len(x)-1-i], "node %d", i)
	}
}

func TestNodesMatchCosineAngles(t *testing.T) {
	n := 16
	got := Nodes[float64](n)
	want := Cos(EquidistantAngles[float64](n))
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Fatalf("nodes differ from cos(iπ/n) (-want +got):\n%s", diff)
	}
}

func TestEvaluateKnownPolynomials(t *testing.T) {
	// T_3(x) = 4x^3 - 3x, U_3(x) = 8x^3 - 4x
	c := []float64{0, 0, 0, 1}
	for _, x := range []float64{-1, -0.3, 0, 0.25, 0.9, 1} {
		assert.InDelta(t, 4*x*x*x-3*x, Evaluate(c, x), 1e-14)
		assert.InDelta(t, 8*x*x*x-4*x, EvaluateSecond(c, x), 1e-14)
	}

	assert.Equal(t, 2.5, Evaluate([]float64{2.5}, 0.3))
	assert.Equal(t, 2.5, EvaluateSecond([]float64{2.5}, 0.3))
	assert.Equal(t, 0.0, Evaluate[float64](nil, 0.3))
}

func TestCoefficientsRoundTrip(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"exp":      math.Exp,
		"runge":    func(x float64) float64 { return 1 / (1 + 25*x*x) },
		"abs-ish":  func(x float64) float64 { return math.Sqrt(x*x + 0.01) },
		"constant": func(float64) float64 { return 0.75 },
	}

	for name, f := range funcs {
		for _, n := range []int{1, 2, 4, 9, 32} {
			x, fv := sample(n, f)
			c := Coefficients(fv)
			require.Len(t, c, n+1)

			for i, v := range x {
				assert.InDeltaf(t, fv[i], Evaluate(c, v), 1e-13,
					"%s n=%d node %d", name, n, i)
			}
		}
	}
}

func TestCoefficientsDoesNotModifyInput(t *testing.T) {
	_, fv := sample(6, math.Cos)
	orig := append([]float64(nil), fv...)
	_ = Coefficients(fv)
	assert.Equal(t, orig, fv)
}

func TestCoefficientsRecoversChebyshevSeries(t *testing.T) {
	want := []float64{0.5, -0.25, 1, 0, 0.125}
	_, fv := sample(4, func(x float64) float64 { return Evaluate(want, x) })

	got := Coefficients(fv)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-14)); diff != "" {
		t.Fatalf("coefficients mismatch (-want +got):\n%s", diff)
	}
}

func TestDerivativeBothKindsAgree(t *testing.T) {
	c := []float64{0.1, -0.7, 0.4, 1.3, -0.2, 0.05}
	d1 := Derivative(c, First)
	d2 := Derivative(c, Second)
	require.Len(t, d1, len(c)-1)
	require.Len(t, d2, len(c)-1)

	const h = 1e-6
	for _, x := range []float64{-0.9, -0.4, 0, 0.35, 0.8} {
		fd := (Evaluate(c, x+h) - Evaluate(c, x-h)) / (2 * h)
		assert.InDelta(t, fd, Evaluate(d1, x), 1e-7)
		assert.InDelta(t, fd, EvaluateSecond(d2, x), 1e-7)
	}
}

func TestDerivativeLowDegree(t *testing.T) {
	assert.Equal(t, []float64{0}, Derivative([]float64{3}, First))
	assert.Equal(t, []float64{2}, Derivative([]float64{1, 2}, First))
	assert.Equal(t, []float64{2}, Derivative([]float64{1, 2}, Second))
	// d/dx T_2 = 4x = 4 T_1 = 2 U_1
	assert.Equal(t, []float64{0, 4}, Derivative([]float64{0, 0, 1}, First))
	assert.Equal(t, []float64{0, 2}, Derivative([]float64{0, 0, 1}, Second))
}

func TestChangeOfVariable(t *testing.T) {
	got := ChangeOfVariable([]float64{-1, 0, 1}, 2.0, 4.0)
	assert.Equal(t, []float64{2, 3, 4}, got)
}

func TestFloat32RoundTrip(t *testing.T) {
	x := Nodes[float32](8)
	fv := make([]float32, len(x))
	for i, v := range x {
		fv[i] = float32(math.Exp(float64(v)))
	}

	c := Coefficients(fv)
	for i, v := range x {
		assert.InDelta(t, float64(fv[i]), float64(Evaluate(c, v)), 1e-5)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "first", First.String())
	assert.Equal(t, "second", Second.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
