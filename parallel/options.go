package parallel

// DefaultWorkers is the number of goroutines launched in addition to the
// calling goroutine, giving three column ranges per multiply.
const DefaultWorkers = 2

// Option customizes a multiply call.
type Option func(*config)

// config is the resolved per-call configuration.
type config struct {
	workers int // concurrent goroutines besides the caller (>= 0)
}

// WithWorkers sets the number of concurrent goroutines W; the output is
// split into W+1 ranges. Zero runs everything on the calling goroutine.
// Negative values are not rejected here: the multiply call reports them as
// matrix.ErrInvalidDimension so the error reaches the caller as a value.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

func gatherOptions(opts ...Option) config {
	cfg := config{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
