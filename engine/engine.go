package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nrich-sunny/reviewcrawler/collect"
	"github.com/Nrich-sunny/reviewcrawler/collector"
	"go.uber.org/zap"
)

var ErrParsePanic = errors.New("parse panic")

// Crawler 顺序执行所有请求：抓取、解析、收集结果。
// 单个请求失败只记录日志并跳过，不重试
type Crawler struct {
	options
}

func NewEngine(opts ...Option) *Crawler {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.Scheduler == nil {
		options.Scheduler = NewSchedule()
	}
	crawler := &Crawler{}
	crawler.options = options
	return crawler
}

// Run 处理完所有种子及其派生的请求后返回，结果顺序与请求处理顺序一致
func (c *Crawler) Run(ctx context.Context) []collector.OutputData {
	c.Schedule()

	var (
		out   []collector.OutputData
		index int
		skip  int
	)
	for {
		req := c.Scheduler.Pull()
		if req == nil {
			break
		}
		index++
		c.Logger.Info("collecting",
			zap.Int("index", index),
			zap.Int("pending", c.Scheduler.Len()),
			zap.String("url", req.Url),
		)

		items, err := c.handle(ctx, req)
		if err != nil {
			skip++
			c.Logger.Error("skip request", zap.String("url", req.Url), zap.Error(err))
			continue
		}
		out = append(out, items...)
		c.sleep(ctx, req.Task.WaitTime)
	}

	c.Logger.Info("collect finished",
		zap.Int("requests", index),
		zap.Int("skipped", skip),
		zap.Int("items", len(out)),
	)
	return out
}

// Schedule 把所有种子任务的根请求放入调度器
func (c *Crawler) Schedule() {
	for _, seed := range c.Seeds {
		reqs, err := seed.Rule.Root()
		if err != nil {
			c.Logger.Error("get root requests failed", zap.String("task", seed.Name), zap.Error(err))
			continue
		}
		for _, req := range reqs {
			req.Task = seed
		}
		c.Scheduler.Push(reqs...)
	}
}

func (c *Crawler) handle(ctx context.Context, req *collect.Request) ([]collector.OutputData, error) {
	if err := req.Check(); err != nil {
		return nil, err
	}
	task := req.Task

	if task.Limit != nil {
		if err := task.Limit.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	fetcher := task.Fetcher
	if fetcher == nil {
		fetcher = c.Fetcher
	}
	if fetcher == nil {
		return nil, errors.New("no fetcher for task " + task.Name)
	}

	rule, err := task.Rule.Lookup(req.RuleName)
	if err != nil {
		return nil, err
	}

	fetchedAt := c.now()
	body, err := fetcher.Get(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	ctxt := &collect.Context{Body: body, Req: req, Time: fetchedAt}
	result, err := c.parse(rule, ctxt)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	for _, r := range result.Requests {
		if r.Task == nil {
			r.Task = task
		}
	}
	c.Scheduler.Push(result.Requests...)

	items := make([]collector.OutputData, 0, len(result.Items))
	for _, item := range result.Items {
		switch d := item.(type) {
		case collector.OutputData:
			items = append(items, d)
		default:
			items = append(items, ctxt.Output(d))
		}
	}
	return items, nil
}

func (c *Crawler) parse(rule *collect.Rule, ctxt *collect.Context) (result collect.ParseResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Error("parse panic", zap.String("url", ctxt.Req.Url), zap.Any("panic", r), zap.Stack("stack"))
			err = fmt.Errorf("%w: %v", ErrParsePanic, r)
		}
	}()
	return rule.ParseFunc(ctxt)
}
