package pm

import (
	"log"

	"github.com/cwbudde/algo-firpm/internal/cheby"
)

// Kind is the Chebyshev basis used for the error derivative.
type Kind = cheby.Kind

const (
	// KindFirst expresses the derivative in first-kind polynomials.
	KindFirst = cheby.First
	// KindSecond expresses the derivative in second-kind polynomials.
	KindSecond = cheby.Second
)

// Selection picks k alternating extrema when the exchange finds more.
type Selection int

const (
	// SelectWeakestPair drops the weaker end while one extremum is extra,
	// otherwise the adjacent pair with the smallest larger magnitude.
	SelectWeakestPair Selection = iota
	// SelectMaxMinWindow keeps the contiguous run of k extrema whose
	// smallest magnitude is largest.
	SelectMaxMinWindow
)

// String returns the policy name.
func (s Selection) String() string {
	switch s {
	case SelectWeakestPair:
		return "pair"
	case SelectMaxMinWindow:
		return "window"
	default:
		return "unknown"
	}
}

const (
	defaultTolerance      = 0.01
	defaultDeltaTolerance = 1e-9
	defaultMaxIterations  = 100
	defaultNmax           = 4
	defaultScalingDepth   = 1
)

type config struct {
	tolerance      float64
	deltaTolerance float64
	maxIterations  int
	nmax           int
	kind           Kind
	balance        bool
	selection      Selection
	scalingDepth   int
	logger         *log.Logger
}

// Option configures the exchange and the design drivers.
type Option func(*config)

func defaultConfig() config {
	return config{
		tolerance:      defaultTolerance,
		deltaTolerance: defaultDeltaTolerance,
		maxIterations:  defaultMaxIterations,
		nmax:           defaultNmax,
		kind:           KindSecond,
		balance:        true,
		selection:      SelectWeakestPair,
		scalingDepth:   defaultScalingDepth,
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithTolerance sets the Q threshold below which the exchange stops.
func WithTolerance(q float64) Option {
	return func(cfg *config) {
		if q > 0 {
			cfg.tolerance = q
		}
	}
}

// WithDeltaTolerance sets the relative change of δ between iterations below
// which the exchange is considered converged.
func WithDeltaTolerance(eps float64) Option {
	return func(cfg *config) {
		if eps >= 0 {
			cfg.deltaTolerance = eps
		}
	}
}

// WithMaxIterations caps the number of exchange iterations.
func WithMaxIterations(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIterations = n
		}
	}
}

// WithNmax sets the degree of the Chebyshev interpolants used to locate
// extrema on each sub-interval.
func WithNmax(n int) Option {
	return func(cfg *config) {
		if n >= 2 {
			cfg.nmax = n
		}
	}
}

// WithDerivativeKind selects the basis the error derivative is expressed
// in before rootfinding.
func WithDerivativeKind(kind Kind) Option {
	return func(cfg *config) {
		cfg.kind = kind
	}
}

// WithBalancing enables or disables balancing of the colleague matrices.
func WithBalancing(on bool) Option {
	return func(cfg *config) {
		cfg.balance = on
	}
}

// WithSelection sets the extrema selection policy.
func WithSelection(s Selection) Option {
	return func(cfg *config) {
		cfg.selection = s
	}
}

// WithScalingDepth sets how many times [DesignRS] doubles the degree; the
// first stage runs at degree/2^depth.
func WithScalingDepth(depth int) Option {
	return func(cfg *config) {
		if depth >= 0 {
			cfg.scalingDepth = depth
		}
	}
}

// WithLogger logs one line per exchange iteration to l.
func WithLogger(l *log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}
