package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Nrich-sunny/reviewcrawler/collector"
	"github.com/Nrich-sunny/reviewcrawler/extract"
	"github.com/jedib0t/go-pretty/v6/table"
)

type Count struct {
	Name  string
	Count int
}

// Summary 一次运行的统计结果
type Summary struct {
	Product      string
	Path         string
	Total        int
	Products     []Count // 按数量从多到少
	DatesFound   int
	DatesUnknown int
}

func Summarize(product, path string, items []collector.OutputData) Summary {
	s := Summary{Product: product, Path: path, Total: len(items)}

	counts := make(map[string]int)
	for _, it := range items {
		item := it.Item()
		name, _ := item["product_name"].(string)
		counts[name]++

		if date, _ := item["date_posted"].(string); date == extract.Unknown {
			s.DatesUnknown++
		}
	}
	s.DatesFound = s.Total - s.DatesUnknown

	for name, c := range counts {
		s.Products = append(s.Products, Count{Name: name, Count: c})
	}
	sort.Slice(s.Products, func(i, j int) bool {
		if s.Products[i].Count != s.Products[j].Count {
			return s.Products[i].Count > s.Products[j].Count
		}
		return s.Products[i].Name < s.Products[j].Name
	})
	return s
}

func (s Summary) Render(w io.Writer) {
	fmt.Fprintf(w, "EVIDENCE PRESERVED: %s\n", strings.ToUpper(s.Product))
	fmt.Fprintf(w, "Data exported to: %s\n", s.Path)
	fmt.Fprintf(w, "Total reviews: %d\n", s.Total)

	products := table.NewWriter()
	products.SetOutputMirror(w)
	products.AppendHeader(table.Row{"Product", "Reviews"})
	for _, c := range s.Products {
		products.AppendRow(table.Row{c.Name, c.Count})
	}
	products.SetStyle(table.StyleRounded)
	products.Render()

	dates := table.NewWriter()
	dates.SetOutputMirror(w)
	dates.AppendHeader(table.Row{"Date extraction", "Reviews"})
	dates.AppendRow(table.Row{"Found", fmt.Sprintf("%d/%d", s.DatesFound, s.Total)})
	if s.DatesUnknown > 0 {
		dates.AppendRow(table.Row{"Unknown", s.DatesUnknown})
	}
	dates.SetStyle(table.StyleRounded)
	dates.Render()
}
