package report

import (
	"bytes"
	"testing"

	"github.com/Nrich-sunny/reviewcrawler/collector"
	"github.com/stretchr/testify/assert"
)

func item(product, date string) collector.OutputData {
	return collector.OutputData{Data: map[string]interface{}{
		"Data": map[string]interface{}{"product_name": product, "date_posted": date},
	}}
}

func TestSummarize(t *testing.T) {
	s := Summarize("kahoot", "out.csv", []collector.OutputData{
		item("Kahoot!", "2024-01-10"),
		item("Unknown", "Unknown"),
		item("Kahoot!", "3 months ago"),
		item("Blooket", "Unknown"),
	})

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.DatesFound)
	assert.Equal(t, 2, s.DatesUnknown)
	assert.Equal(t, []Count{
		{Name: "Kahoot!", Count: 2},
		{Name: "Blooket", Count: 1},
		{Name: "Unknown", Count: 1},
	}, s.Products)
}

func TestRender(t *testing.T) {
	s := Summarize("kahoot", "commonsense_kahoot_20260210_153000.csv", []collector.OutputData{
		item("Kahoot!", "Unknown"),
	})

	var buf bytes.Buffer
	s.Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "EVIDENCE PRESERVED: KAHOOT")
	assert.Contains(t, out, "commonsense_kahoot_20260210_153000.csv")
	assert.Contains(t, out, "Kahoot!")
	assert.Contains(t, out, "0/1")
	assert.Contains(t, out, "Unknown")
}
