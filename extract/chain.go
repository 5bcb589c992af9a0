package extract

import (
	"github.com/PuerkitoBio/goquery"
)

// Unknown 所有字段提取失败时的默认值
const Unknown = "Unknown"

// Strategy 单个提取策略，返回空串表示没有命中
type Strategy struct {
	Name string
	Func func(doc *goquery.Document) string
}

// Chain 按优先级排列的策略链，第一个非空结果生效，不做合并
type Chain []Strategy

// First 依次执行策略，返回命中的值与策略名；都没命中时返回 Unknown
func (c Chain) First(doc *goquery.Document) (value string, name string) {
	for _, s := range c {
		if v := s.Func(doc); v != "" {
			return v, s.Name
		}
	}
	return Unknown, "default"
}
