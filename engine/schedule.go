package engine

import (
	"github.com/Nrich-sunny/reviewcrawler/collect"
)

type Scheduler interface {
	Push(...*collect.Request) // 将请求放入调度器
	Pull() *collect.Request   // 取出下一个请求，队列为空时返回 nil
	Len() int
}

// Schedule 单线程的先进先出队列，优先级大于 0 的请求先出队
type Schedule struct {
	priReqQueue []*collect.Request
	reqQueue    []*collect.Request
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

func (s *Schedule) Push(reqs ...*collect.Request) {
	for _, req := range reqs {
		if req.Priority > 0 {
			s.priReqQueue = append(s.priReqQueue, req)
			continue
		}
		s.reqQueue = append(s.reqQueue, req)
	}
}

func (s *Schedule) Pull() *collect.Request {
	var req *collect.Request
	if len(s.priReqQueue) > 0 {
		req = s.priReqQueue[0]
		s.priReqQueue = s.priReqQueue[1:]
		return req
	}
	if len(s.reqQueue) > 0 {
		req = s.reqQueue[0]
		s.reqQueue = s.reqQueue[1:]
	}
	return req
}

func (s *Schedule) Len() int {
	return len(s.priReqQueue) + len(s.reqQueue)
}
