package collector

import "fmt"

// OutputData 一条解析结果。Data 中固定包含 Task、Rule、Url、Time，
// 具体字段放在 Data["Data"] 里
type OutputData struct {
	Data map[string]interface{}
}

type Store interface {
	Save(data ...OutputData) error
}

// Item 取出具体字段
func (o OutputData) Item() map[string]interface{} {
	if item, ok := o.Data["Data"].(map[string]interface{}); ok {
		return item
	}
	return nil
}

// Row 按列名取值，缺失的字段为空串
func (o OutputData) Row(columns []string) []string {
	item := o.Item()
	row := make([]string, len(columns))
	for i, c := range columns {
		v, ok := item[c]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			row[i] = s
		default:
			row[i] = fmt.Sprint(s)
		}
	}
	return row
}
