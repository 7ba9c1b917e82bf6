package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-firpm/dsp/filter/fir"
	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm"
	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm/band"
)

func report(w io.Writer, out pm.Output[float64]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	order := len(out.H) - 1
	fmt.Fprintf(tw, "Taps\t%d\n", len(out.H))
	fmt.Fprintf(tw, "Type\t%s\n", pm.TypeOf(order))
	fmt.Fprintf(tw, "Status\t%s\n", out.Status)
	fmt.Fprintf(tw, "Iterations\t%d\n", out.Iter)
	fmt.Fprintf(tw, "Delta\t%.6e\t(%.2f dB)\n", out.Delta, 20*math.Log10(out.Delta))
	fmt.Fprintf(tw, "Q\t%.3e\n", out.Q)

	f := fir.New(out.H)
	fmt.Fprintf(tw, "Linear phase\t%t\n", f.Symmetric())
	fmt.Fprintf(tw, "Gain at DC\t% .6f\n", f.Amplitude(0))
	fmt.Fprintf(tw, "Gain at Nyquist\t% .6f\n", f.Amplitude(math.Pi))
	if out.Degraded {
		fmt.Fprintf(tw, "Warning\tlast iteration found too few alternating extrema\n")
	}

	if len(out.Bands) > 0 {
		fmt.Fprintf(tw, "\nBand\tEdges\tExtremas\n")
		fmt.Fprintf(tw, "----\t-----\t--------\n")
		for i, b := range band.Convert(out.Bands, band.ToFreq) {
			fmt.Fprintf(tw, "%d\t[%.4f, %.4f]\t%d\n", i, b.Start/math.Pi, b.Stop/math.Pi, b.Extremas)
		}
	}

	fmt.Fprintf(tw, "\nIndex\tTap\n")
	fmt.Fprintf(tw, "-----\t---\n")
	for i, h := range out.H {
		fmt.Fprintf(tw, "%d\t% .15e\n", i, h)
	}

	return errors.Wrap(tw.Flush(), "flush report")
}

// printResponse prints the magnitude response on nfft/2+1 bins and, for
// every band with a flat target, the largest deviation seen on the grid.
func printResponse(w io.Writer, h []float64, nfft int, f, a []float64) error {
	mag, err := fir.MagnitudeResponse(h, nfft)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nBin\tFrequency\tMagnitude\tMagnitude [dB]\n")
	fmt.Fprintf(tw, "---\t---------\t---------\t--------------\n")

	last := len(mag) - 1
	for k, m := range mag {
		fmt.Fprintf(tw, "%d\t%.5f\t%.6e\t%.2f\n", k, float64(k)/float64(last), m, 20*math.Log10(m))
	}

	fmt.Fprintf(tw, "\nBand\tEdges\tTarget\tMax deviation\n")
	fmt.Fprintf(tw, "----\t-----\t------\t-------------\n")
	for i := 0; i+1 < len(f) && i+1 < len(a); i += 2 {
		if a[i] != a[i+1] {
			fmt.Fprintf(tw, "%d\t[%g, %g]\tsloped\t-\n", i/2, f[i], f[i+1])
			continue
		}

		// magnitude cannot follow a negative target
		dev, err := fir.BandDeviation(mag, f[i], f[i+1], math.Abs(a[i]))
		if err != nil {
			return errors.Wrapf(err, "band %d", i/2)
		}

		fmt.Fprintf(tw, "%d\t[%g, %g]\t%g\t%.6e\n", i/2, f[i], f[i+1], a[i], dev)
	}

	return errors.Wrap(tw.Flush(), "flush response")
}

// printStep runs a unit step through the designed filter and prints the
// first n output samples.
func printStep(w io.Writer, h []float64, n int) error {
	step := make([]float64, n)
	for i := range step {
		step[i] = 1
	}

	y := make([]float64, n)
	fir.New(h).ProcessBlockTo(y, step)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nSample\tStep response\n")
	fmt.Fprintf(tw, "------\t-------------\n")
	for i, v := range y {
		fmt.Fprintf(tw, "%d\t% .9f\n", i, v)
	}

	return errors.Wrap(tw.Flush(), "flush step response")
}
