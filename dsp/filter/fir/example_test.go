package fir_test

import (
	"fmt"

	"github.com/cwbudde/algo-firpm/dsp/filter/fir"
)

func ExampleFilter_ProcessSample() {
	// 3-tap moving average filter.
	f := fir.New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})

	input := []float64{0, 1, 2, 3, 3, 3}
	for i, x := range input {
		y := f.ProcessSample(x)
		fmt.Printf("y[%d] = %.4f\n", i, y)
	}
	// Output:
	// y[0] = 0.0000
	// y[1] = 0.3333
	// y[2] = 1.0000
	// y[3] = 2.0000
	// y[4] = 2.6667
	// y[5] = 3.0000
}

func ExampleMagnitudeResponse() {
	mag, err := fir.MagnitudeResponse([]float64{0.25, 0.5, 0.25}, 8)
	if err != nil {
		panic(err)
	}

	for k, m := range mag {
		fmt.Printf("bin %d: %.4f\n", k, m)
	}
	// Output:
	// bin 0: 1.0000
	// bin 1: 0.8536
	// bin 2: 0.5000
	// bin 3: 0.1464
	// bin 4: 0.0000
}
