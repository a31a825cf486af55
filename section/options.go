package section

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hspace/entropy"
)

// DefaultWorkers evaluates cells sequentially.
const DefaultWorkers = 1

const panicNilEstimator = "section: WithEstimator: estimator must not be nil"

// Option configures a Section.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	positions []entropy.Position
	workers   int
	estimator entropy.Estimator // nil selects the sort-based estimator
	logger    logrus.FieldLogger
}

// WithPositions sets the fixed positions joined to every cell. The slice is
// copied. An empty list means plain per-cell entropy.
func WithPositions(positions []entropy.Position) Option {
	cp := append([]entropy.Position(nil), positions...)

	return func(o *Options) {
		o.positions = cp
	}
}

// WithWorkers bounds the number of cells evaluated concurrently.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return func(o *Options) {
		o.workers = n
	}
}

// WithEstimator replaces the sort-based estimator, e.g. with
// entropy.FrequencyEstimator. Panics on nil.
func WithEstimator(est entropy.Estimator) Option {
	if est == nil {
		panic(panicNilEstimator)
	}

	return func(o *Options) {
		o.estimator = est
	}
}

// WithLogger routes debug logs of each computation to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.logger = l
	}

	return o
}
