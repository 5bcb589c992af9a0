package collect

import (
	"errors"
	"time"

	"github.com/Nrich-sunny/reviewcrawler/collector"
)

// TimeLayout 采集时间的格式，精确到微秒
const TimeLayout = "2006-01-02T15:04:05.000000"

type Context struct {
	Body []byte
	Req  *Request
	Time time.Time // 抓取时间
}

// Output 把解析出的数据包装成统一的输出格式
func (c *Context) Output(data interface{}) collector.OutputData {
	res := collector.OutputData{}
	res.Data = make(map[string]interface{})
	res.Data["Task"] = c.Req.Task.Name
	res.Data["Rule"] = c.Req.RuleName
	res.Data["Url"] = c.Req.Url
	res.Data["Time"] = c.Time.Format(TimeLayout)
	res.Data["Data"] = data
	return res
}

// Request 单个请求
type Request struct {
	Task     *Task
	Url      string
	Method   string
	Depth    int
	Priority int    // 值越大优先级越高，目前只区分 0 和大于 0
	RuleName string // 该请求对应的规则名
}

type ParseResult struct {
	Requests []*Request    // 需要进一步抓取的请求
	Items    []interface{} // 获取到的数据
}

func (r *Request) Check() error {
	if r.Task != nil && r.Task.MaxDepth > 0 && r.Depth > r.Task.MaxDepth {
		return errors.New("max depth limit reached")
	}
	return nil
}
