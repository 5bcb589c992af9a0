package sqlstorage

import "go.uber.org/zap"

type options struct {
	logger     *zap.Logger
	sqlUrl     string
	batchCount int
	table      string
	columns    []string
}

var defaultOptions = options{
	logger:     zap.NewNop(),
	batchCount: 50,
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithSqlUrl(sqlUrl string) Option {
	return func(opts *options) {
		opts.sqlUrl = sqlUrl
	}
}

func WithBatchCount(batchCount int) Option {
	return func(opts *options) {
		if batchCount > 0 {
			opts.batchCount = batchCount
		}
	}
}

func WithTable(table string) Option {
	return func(opts *options) {
		opts.table = table
	}
}

func WithColumns(columns ...string) Option {
	return func(opts *options) {
		opts.columns = columns
	}
}
