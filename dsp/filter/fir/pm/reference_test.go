package pm

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm/band"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestApportion(t *testing.T) {
	cases := []struct {
		k       int
		weights []float64
		want    []int
	}{
		{10, []float64{1, 1}, []int{5, 5}},
		{7, []float64{1, 0, 1}, []int{3, 1, 3}},
		{10, []float64{0.4, 0.5}, []int{5, 5}},
		{2, []float64{1, 1, 1}, []int{1, 1, 1}},
		{5, []float64{0, 0}, []int{1, 1}},
		{0, nil, []int{}},
	}

	for _, tc := range cases {
		got := apportion(tc.k, tc.weights)
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("apportion(%d, %v) mismatch (-want +got):\n%s", tc.k, tc.weights, diff)
		}
	}
}

func TestApportionSumsToK(t *testing.T) {
	weights := []float64{0.13, 0.31, 0.07, 0.49}
	for k := len(weights); k < 60; k++ {
		total := 0
		for _, c := range apportion(k, weights) {
			assert.GreaterOrEqual(t, c, 1)
			total += c
		}
		assert.Equal(t, k, total, "k=%d", k)
	}
}

func TestUniformReference(t *testing.T) {
	freq, _ := lowpassCheby(t)

	got := UniformReference(10, freq)
	require.Len(t, got, 10)

	want := []float64{
		0, 0.1 * math.Pi, 0.2 * math.Pi, 0.3 * math.Pi, 0.4 * math.Pi,
		0.5 * math.Pi, 0.625 * math.Pi, 0.75 * math.Pi, 0.875 * math.Pi, math.Pi,
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("UniformReference mismatch (-want +got):\n%s", diff)
	}
}

func TestUniformReferenceSharedEdge(t *testing.T) {
	freq, err := band.FromEdges([]float64{0, 0.5, 0.5, 1}, []float64{1, 1, 0.5, 0.5}, []float64{1, 1})
	require.NoError(t, err)

	got := UniformReference(6, freq)
	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1])
	}

	want := []float64{0, 0.25 * math.Pi, 0.5 * math.Pi, 2 * math.Pi / 3, 5 * math.Pi / 6, math.Pi}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("UniformReference mismatch (-want +got):\n%s", diff)
	}
}

func TestToCheby(t *testing.T) {
	got := ToCheby([]float64{0, math.Pi / 3, math.Pi / 2, math.Pi})
	want := []float64{-1, 0, 0.5, 1}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Fatalf("ToCheby mismatch (-want +got):\n%s", diff)
	}
}

func TestResample(t *testing.T) {
	got := resample([]float64{0, 1, 3}, 5)
	if diff := cmp.Diff([]float64{0, 0.5, 1, 2, 3}, got, approx); diff != "" {
		t.Fatalf("resample mismatch (-want +got):\n%s", diff)
	}

	got = resample([]float64{-1, 1}, 2)
	assert.Equal(t, []float64{-1, 1}, got)
}

func TestReferenceScaling(t *testing.T) {
	freq, cb := lowpassCheby(t)

	coarse, err := Exchange(ToCheby(UniformReference(14, freq)), cb)
	require.NoError(t, err)

	x := ReferenceScaling(26, coarse.X, cb)
	require.Len(t, x, 26)

	for i := 1; i < len(x); i++ {
		assert.Greater(t, x[i], x[i-1])
	}

	// same proportion per band as the coarse reference
	counts := countExtremas(x, cb)
	for i, b := range coarse.Bands {
		share := float64(b.Extremas) / 14
		assert.InDelta(t, share*26, float64(counts[i].Extremas), 1)
	}

	// band edges that were reference points stay reference points
	for _, edge := range []float64{-1, 1} {
		if slices.Contains(coarse.X, edge) {
			assert.Contains(t, x, edge)
		}
	}
}

func TestReferenceScalingEmptyBand(t *testing.T) {
	_, cb := lowpassCheby(t)

	// every old point sits in the first band
	x := ReferenceScaling(6, []float64{-0.9, -0.8, -0.6}, cb)
	require.Len(t, x, 6)

	counts := countExtremas(x, cb)
	assert.Equal(t, 5, counts[0].Extremas)
	assert.Equal(t, 1, counts[1].Extremas)
}
