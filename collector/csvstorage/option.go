package csvstorage

import (
	"time"

	"go.uber.org/zap"
)

type options struct {
	dir     string
	prefix  string
	product string
	columns []string
	now     func() time.Time
	logger  *zap.Logger
}

var defaultOptions = options{
	dir:    ".",
	prefix: "commonsense",
	now:    time.Now,
	logger: zap.NewNop(),
}

type Option func(opts *options)

func WithDir(dir string) Option {
	return func(opts *options) {
		if dir != "" {
			opts.dir = dir
		}
	}
}

func WithPrefix(prefix string) Option {
	return func(opts *options) {
		opts.prefix = prefix
	}
}

func WithProduct(product string) Option {
	return func(opts *options) {
		opts.product = product
	}
}

func WithColumns(columns ...string) Option {
	return func(opts *options) {
		opts.columns = columns
	}
}

func WithClock(now func() time.Time) Option {
	return func(opts *options) {
		opts.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}
