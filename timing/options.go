package timing

import (
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Option configures Measure.
type Option func(*options)

type options struct {
	logger *zap.Logger
	scope  tally.Scope
}

// WithLogger logs every finished trial at debug level. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScope records every trial duration on the timer named after the test.
// nil is ignored.
func WithScope(s tally.Scope) Option {
	return func(o *options) {
		if s != nil {
			o.scope = s
		}
	}
}

func defaultOptions() options {
	return options{logger: zap.NewNop(), scope: tally.NoopScope}
}
