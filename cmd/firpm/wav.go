package main

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

const wavBitDepth = 32

// writeWAV stores h as a mono 32-bit PCM file, scaled so that the largest
// tap reaches full scale.
func writeWAV(path string, h []float64, rate int) error {
	if len(h) == 0 {
		return errors.New("no taps to write")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}

	enc := wav.NewEncoder(f, rate, wavBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           quantize(h),
		SourceBitDepth: wavBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return errors.Wrap(err, "encode samples")
	}

	if err := enc.Close(); err != nil {
		f.Close()
		return errors.Wrap(err, "finish wav")
	}

	return errors.Wrap(f.Close(), "close output")
}

// quantize maps h to 32-bit integers with the peak at full scale.
func quantize(h []float64) []int {
	var peak float64
	for _, v := range h {
		peak = math.Max(peak, math.Abs(v))
	}

	out := make([]int, len(h))
	if peak == 0 {
		return out
	}

	scale := float64(math.MaxInt32) / peak
	for i, v := range h {
		out[i] = int(math.Round(v * scale))
	}

	return out
}
