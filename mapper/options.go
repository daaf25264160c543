package mapper

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *options) correct() *options {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

// Option configures a Mapper.
type Option func(o *options)

// WithLogger routes the mapper's debug events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
