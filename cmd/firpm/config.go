package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-firpm/dsp/filter/fir/pm"
)

// Config holds the command line settings.
type Config struct {
	// Order is the filter order; the filter has Order+1 taps.
	Order int
	// Edges, Amps and Weights are comma separated lists.
	Edges   string
	Amps    string
	Weights string
	// Scaling is the reference scaling depth; 0 runs a plain design.
	Scaling   int
	Tolerance float64
	MaxIter   int
	Nmax      int
	// Select is "pair" or "window".
	Select string
	// Wav is the output path for the impulse response.
	Wav  string
	Rate int
	// Response is the FFT size of the printed magnitude response.
	Response int
	// Step is the number of step-response samples to print.
	Step     int
	Verbose  bool
	Float32  bool
}

// request is a sanitized Config.
type request struct {
	order   int
	f, a, w []float64
	scaling int
	opts    []pm.Option
}

// NewZeroConfig returns the defaults.
func NewZeroConfig() Config {
	return Config{
		Order:     50,
		Edges:     "0,0.4,0.5,1",
		Amps:      "1,1,0,0",
		Weights:   "1,1",
		Tolerance: 0.01,
		MaxIter:   100,
		Nmax:      4,
		Select:    "pair",
		Rate:      48000,
	}
}

// Sanitize checks the settings and turns them into a design request.
func (cfg *Config) Sanitize() (request, error) {
	var req request

	if cfg.Order < 1 {
		return req, errors.Errorf("order must be positive, got %d", cfg.Order)
	}

	if cfg.Scaling < 0 {
		return req, errors.Errorf("scaling depth must not be negative, got %d", cfg.Scaling)
	}

	if cfg.Tolerance <= 0 || cfg.Tolerance >= 1 {
		return req, errors.Errorf("tolerance must be in (0, 1), got %v", cfg.Tolerance)
	}

	if cfg.MaxIter < 1 {
		return req, errors.Errorf("iteration limit must be positive, got %d", cfg.MaxIter)
	}

	if cfg.Nmax < 2 {
		return req, errors.Errorf("nmax must be at least 2, got %d", cfg.Nmax)
	}

	if cfg.Wav != "" && cfg.Rate < 1 {
		return req, errors.Errorf("sample rate must be positive, got %d", cfg.Rate)
	}

	if cfg.Response != 0 && (cfg.Response < 2 || cfg.Response&(cfg.Response-1) != 0) {
		return req, errors.Errorf("response size must be a power of two, got %d", cfg.Response)
	}

	if cfg.Step < 0 {
		return req, errors.Errorf("step length must not be negative, got %d", cfg.Step)
	}

	var sel pm.Selection
	switch strings.ToLower(cfg.Select) {
	case "pair":
		sel = pm.SelectWeakestPair
	case "window":
		sel = pm.SelectMaxMinWindow
	default:
		return req, errors.Errorf("unknown selection %q (pair or window)", cfg.Select)
	}

	var err error
	if req.f, err = parseList(cfg.Edges); err != nil {
		return req, errors.Wrap(err, "bad edges")
	}

	if req.a, err = parseList(cfg.Amps); err != nil {
		return req, errors.Wrap(err, "bad amplitudes")
	}

	if req.w, err = parseList(cfg.Weights); err != nil {
		return req, errors.Wrap(err, "bad weights")
	}

	req.order = cfg.Order
	req.scaling = cfg.Scaling
	req.opts = []pm.Option{
		pm.WithTolerance(cfg.Tolerance),
		pm.WithMaxIterations(cfg.MaxIter),
		pm.WithNmax(cfg.Nmax),
		pm.WithSelection(sel),
	}

	if cfg.Scaling > 0 {
		req.opts = append(req.opts, pm.WithScalingDepth(cfg.Scaling))
	}

	if cfg.Verbose {
		req.opts = append(req.opts, pm.WithLogger(log.Default()))
	}

	return req, nil
}

// parseList parses "0, 0.4,0.5 ,1".
func parseList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))

	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %q", f)
		}

		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, errors.New("empty list")
	}

	return out, nil
}
