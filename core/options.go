package core

// options collects the knobs shared by Thread, Runner and ActiveRunner
// constructors.
type options struct {
	logger   Logger
	metrics  Metrics
	name     string
	priority Priority
}

// Option configures a Thread, Runner or ActiveRunner at construction time.
type Option func(*options)

// WithLogger injects the logger used to report OS scheduling failures.
// Defaults to DefaultLogger.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics injects a metrics sink. No metrics are recorded by default.
func WithMetrics(metrics Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithName sets the initial thread name. The name is applied to the OS
// thread when it starts.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithPriority sets the initial scheduling priority, applied to the OS
// thread when it starts.
func WithPriority(priority Priority) Option {
	return func(o *options) {
		o.priority = priority
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   NewDefaultLogger(),
		priority: DefaultPriority(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
