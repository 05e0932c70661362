package parser

import (
	"io"

	"github.com/golangee/lithe/dtd"
	"github.com/sirupsen/logrus"
)

// An Option configures Parse and Build.
type Option func(*options)

type options struct {
	dialect  dtd.Dialect
	filename string
	logger   logrus.FieldLogger
}

func newOptions(opts []Option) options {
	o := options{
		dialect: dtd.HTML,
		logger:  discardLogger(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDialect selects the preferred vocabulary to resolve doctype shorthands. Defaults to dtd.HTML.
// Shorthands which only exist in the other vocabulary, like "1.1", are resolved there.
func WithDialect(d dtd.Dialect) Option {
	return func(o *options) {
		o.dialect = d
	}
}

// WithFilename sets the name reported in positions and errors.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithLogger sets a logger for diagnostics. By default, nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
