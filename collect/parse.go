package collect

import "fmt"

// RuleTree 采集规则树
type RuleTree struct {
	Root  func() ([]*Request, error) // 根节点(执行入口)，生成种子请求
	Trunk map[string]*Rule           // 规则名 -> 具体规则
}

// Rule 采集规则节点
type Rule struct {
	ItemFields []string                            // 当前输出数据的字段名，同时决定导出的列顺序
	ParseFunc  func(*Context) (ParseResult, error) // 内容解析函数
}

// Lookup 按规则名取规则，请求中的 RuleName 写错时返回错误
func (t RuleTree) Lookup(name string) (*Rule, error) {
	rule, ok := t.Trunk[name]
	if !ok || rule == nil || rule.ParseFunc == nil {
		return nil, fmt.Errorf("rule %q not found", name)
	}
	return rule, nil
}
