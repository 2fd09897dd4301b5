package retry

import "go.uber.org/zap"

// settings collects the tunables shared by every strategy constructor.
type settings struct {
	randomness float64
	src        Source
	logger     *zap.SugaredLogger
}

// Option adjusts strategy construction.
type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{
		randomness: defaultRandomness,
		src:        DefaultSource,
		logger:     zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithRandomness overrides the jitter fraction r in [0, 1). Zero collapses
// the window so every draw returns the gap itself, which makes the emitted
// sequence fully deterministic.
func WithRandomness(r float64) Option {
	return func(s *settings) {
		s.randomness = r
	}
}

// WithSource substitutes the random source backing jitter draws.
func WithSource(src Source) Option {
	return func(s *settings) {
		s.src = src
	}
}

// WithLogger attaches a logger for per-step debug output. The default
// discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
