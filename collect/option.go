package collect

import (
	"time"

	"github.com/Nrich-sunny/reviewcrawler/limiter"
	"go.uber.org/zap"
)

type options struct {
	Property
	fetcher Fetcher
	limit   limiter.RateLimiter
	logger  *zap.Logger
	rule    RuleTree
}

var defaultOptions = options{
	Property: Property{
		WaitTime: 2 * time.Second,
	},
	logger: zap.NewNop(),
}

type Option func(opts *options)

func WithName(name string) Option {
	return func(opts *options) {
		opts.Name = name
	}
}

func WithCookie(cookie string) Option {
	return func(opts *options) {
		opts.Cookie = cookie
	}
}

func WithWaitTime(d time.Duration) Option {
	return func(opts *options) {
		opts.WaitTime = d
	}
}

func WithMaxDepth(depth int) Option {
	return func(opts *options) {
		opts.MaxDepth = depth
	}
}

func WithFetcher(f Fetcher) Option {
	return func(opts *options) {
		opts.fetcher = f
	}
}

func WithLimit(l limiter.RateLimiter) Option {
	return func(opts *options) {
		opts.limit = l
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithRule(rule RuleTree) Option {
	return func(opts *options) {
		opts.rule = rule
	}
}
