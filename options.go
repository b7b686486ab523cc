package staticvec

type options struct {
	registry  *Registry
	logger    *Logger
	metrics   MetricsCollector
	scrub     bool
	lockPages bool
}

// Option configures a region declaration.
type Option func(*options)

// WithRegistry declares the region in reg instead of Default.
func WithRegistry(reg *Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithLogger sets the logger for the region.
// Defaults to the registry's logger, which defaults to NoopLogger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the metrics collector for the region.
// Defaults to the registry's collector, which defaults to NoopMetricsCollector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithScrubOnAcquire resets the whole region to its default value on every
// successful Acquire, so a new holder can never observe a previous holder's
// data, not even through Raw or Pointer. Costs one pass over the region per acquire.
func WithScrubOnAcquire() Option {
	return func(o *options) {
		o.scrub = true
	}
}

// WithLockedPages pins the pages of a mapped region in physical memory.
// Declaration fails if the operating system refuses. Ignored by Declare and Alloc.
func WithLockedPages() Option {
	return func(o *options) {
		o.lockPages = true
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = Default
	}
	if o.logger == nil {
		o.logger = o.registry.logger
	}
	if o.metrics == nil {
		o.metrics = o.registry.metrics
	}
	return o
}
