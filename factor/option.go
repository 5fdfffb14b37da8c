package factor

import "github.com/sgostarter/i/l"

type Options struct {
	logger l.Wrapper
	trace  bool
	strict bool
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func TraceOption(trace bool) Option {
	return func(o *Options) {
		o.trace = trace
	}
}

// StrictOption reports ErrIncompleteFactorization instead of dropping a residual
// whose prime factors lie beyond the table.
func StrictOption(strict bool) Option {
	return func(o *Options) {
		o.strict = strict
	}
}
