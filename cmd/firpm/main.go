// Command firpm designs linear-phase FIR filters with the Parks–McClellan
// algorithm and prints the result.
//
// Usage:
//
//	firpm [flags]
//
// Examples:
//
//	firpm -n 100 -f 0,0.4,0.5,1 -a 1,1,0,0 -w 1,1
//	firpm -n 200 -f 0,0.2,0.25,1 -a 1,1,0,0 -w 1,10 -rs 2 -response 1024
//	firpm -n 64 -f 0,0.3,0.4,1 -a 1,1,0,0 -w 1,1 -wav lowpass.wav -rate 44100
//	firpm -n 40 -f 0,0.3,0.4,1 -a 1,1,0,0 -w 1,1 -step 60
package main

import (
	"log"
	"os"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm"
	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm/band"
)

// AppName is the app name
const AppName = "firpm"

// AppDesc is the app description
const AppDesc = "Minimax linear-phase FIR filter designer"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := NewZeroConfig()
	chk(doFlags(&cfg), "failed to parse flags")

	req, err := cfg.Sanitize()
	chk(err, "invalid settings")

	out, err := run(req, cfg.Float32)
	chk(err, "design failed")

	chk(report(os.Stdout, out), "failed to write report")

	if cfg.Response > 0 {
		chk(printResponse(os.Stdout, out.H, cfg.Response, req.f, req.a), "failed to compute response")
	}

	if cfg.Step > 0 {
		chk(printStep(os.Stdout, out.H, cfg.Step), "failed to run step response")
	}

	if cfg.Wav != "" {
		chk(writeWAV(cfg.Wav, out.H, cfg.Rate), "failed to write wav")
		log.Printf("impulse response written to %s", cfg.Wav)
	}
}

func doFlags(cfg *Config) error {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.Version = version

	parser.Int(&cfg.Order, "n", "order", "filter order (taps - 1)")
	parser.String(&cfg.Edges, "f", "edges", "band edges, normalized to Nyquist, comma separated")
	parser.String(&cfg.Amps, "a", "amplitudes", "amplitude at each edge, comma separated")
	parser.String(&cfg.Weights, "w", "weights", "weight per band, comma separated")
	parser.Int(&cfg.Scaling, "rs", "scaling", "reference scaling depth (0 disables)")
	parser.Float64(&cfg.Tolerance, "tol", "tolerance", "convergence threshold on Q")
	parser.Int(&cfg.MaxIter, "iter", "iterations", "iteration limit")
	parser.Int(&cfg.Nmax, "nmax", "nmax", "degree of the local extremum search")
	parser.String(&cfg.Select, "sel", "select", "extrema selection: pair or window")
	parser.String(&cfg.Wav, "o", "wav", "write the impulse response to a WAV file")
	parser.Int(&cfg.Rate, "r", "rate", "sample rate of the WAV file")
	parser.Int(&cfg.Response, "resp", "response", "print the magnitude response with this FFT size")
	parser.Int(&cfg.Step, "st", "step", "print this many samples of the step response")
	parser.Bool(&cfg.Verbose, "v", "verbose", "log every exchange iteration")
	parser.Bool(&cfg.Float32, "s", "single", "design in single precision")

	return parser.Parse()
}

// run designs the filter in the requested precision and returns a float64
// result.
func run(req request, single bool) (pm.Output[float64], error) {
	if single {
		return runSingle(req)
	}

	if req.scaling > 0 {
		return pm.DesignRS(req.order, req.f, req.a, req.w, req.opts...)
	}

	return pm.Design(req.order, req.f, req.a, req.w, req.opts...)
}

func runSingle(req request) (pm.Output[float64], error) {
	f, a, w := toFloat32(req.f), toFloat32(req.a), toFloat32(req.w)

	design := pm.Design[float32]
	if req.scaling > 0 {
		design = pm.DesignRS[float32]
	}

	out, err := design(req.order, f, a, w, req.opts...)
	if err != nil {
		return pm.Output[float64]{}, err
	}

	return pm.Output[float64]{
		X:        toFloat64(out.X),
		Delta:    float64(out.Delta),
		Q:        float64(out.Q),
		Iter:     out.Iter,
		Status:   out.Status,
		Degraded: out.Degraded,
		Bands:    widenBands(out.Bands),
		H:        toFloat64(out.H),
	}, nil
}

// widen presents a float32 response shape as a float64 one.
type widen struct {
	r band.Response[float32]
}

func (w widen) Eval(space band.Space, x float64) float64 {
	return float64(w.r.Eval(space, float32(x)))
}

func widenBands(in []band.Band[float32]) []band.Band[float64] {
	out := make([]band.Band[float64], len(in))
	for i, b := range in {
		out[i] = band.Band[float64]{
			Space:     b.Space,
			Start:     float64(b.Start),
			Stop:      float64(b.Stop),
			Amplitude: widen{b.Amplitude},
			Weight:    widen{b.Weight},
			Extremas:  b.Extremas,
		}
	}

	return out
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}

	return out
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}

	return out
}

func chk(err error, msg string) {
	if err != nil {
		log.Fatalln("error:", errors.Wrap(err, msg))
	}
}
