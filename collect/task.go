package collect

import (
	"time"

	"github.com/Nrich-sunny/reviewcrawler/limiter"
	"go.uber.org/zap"
)

type Property struct {
	Name     string        `json:"name"` // 任务名称，应保证唯一性
	Cookie   string        `json:"cookie"`
	WaitTime time.Duration `json:"wait_time"` // 每条成功后的停顿时间
	MaxDepth int           `json:"max_depth"`
}

// Task 整个任务实例，所有请求共享的参数
type Task struct {
	Property
	Fetcher Fetcher
	Limit   limiter.RateLimiter
	Logger  *zap.Logger
	Rule    RuleTree // 任务中的规则
}

func NewTask(opts ...Option) *Task {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	t := &Task{}
	t.Property = options.Property
	t.Fetcher = options.fetcher
	t.Limit = options.limit
	t.Logger = options.logger
	t.Rule = options.rule

	return t
}
