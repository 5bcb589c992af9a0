package engine

import (
	"context"
	"time"

	"github.com/Nrich-sunny/reviewcrawler/collect"
	"go.uber.org/zap"
)

type Option func(opts *options)

type options struct {
	Fetcher   collect.Fetcher // 任务没有指定 Fetcher 时使用
	Logger    *zap.Logger
	Seeds     []*collect.Task
	Scheduler Scheduler
	sleep     func(ctx context.Context, d time.Duration)
	now       func() time.Time
}

var defaultOptions = options{
	Logger: zap.NewNop(),
	sleep:  sleepContext,
	now:    time.Now,
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.Logger = logger
	}
}

func WithFetcher(fetcher collect.Fetcher) Option {
	return func(opts *options) {
		opts.Fetcher = fetcher
	}
}

func WithSeeds(seed []*collect.Task) Option {
	return func(opts *options) {
		opts.Seeds = seed
	}
}

func WithScheduler(schedule Scheduler) Option {
	return func(opts *options) {
		opts.Scheduler = schedule
	}
}

// WithSleeper 替换成功后的停顿实现，测试中用来避免真实等待
func WithSleeper(sleep func(ctx context.Context, d time.Duration)) Option {
	return func(opts *options) {
		opts.sleep = sleep
	}
}

func WithClock(now func() time.Time) Option {
	return func(opts *options) {
		opts.now = now
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
