package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

var (
	subjectHrefRe = regexp.MustCompile(`/education/(reviews|app|website)/`)
	dateRe        = regexp.MustCompile(`(\w+ \d+, \d{4}|Submitted .+ ago|\d+ \w+ ago)`)
)

// Fields 单个页面能提取到的全部字段
type Fields struct {
	Title    string
	Subject  string
	Date     string
	Sections Sections
	Body     string
}

// Extractor 对评论页做启发式字段提取，任何一步找不到目标都会退回默认值
type Extractor struct {
	options
	subjectChain Chain
	dateChain    Chain
}

func New(opts ...Option) *Extractor {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	e := &Extractor{options: options}
	e.subjectChain = Chain{
		{Name: "anchor", Func: anchorSubject},
		{Name: "page-title", Func: pageTitleSubject},
	}
	e.dateChain = Chain{
		{Name: "time-element", Func: timeElementDate},
		{Name: "text-pattern", Func: e.textPatternDate},
	}
	return e
}

func (e *Extractor) Extract(doc *goquery.Document) Fields {
	sections := e.Sections(doc)
	f := Fields{
		Title:    e.Title(doc),
		Subject:  e.Subject(doc),
		Date:     e.Date(doc),
		Sections: sections,
		Body:     e.PostClean(e.AssembleBody(doc, sections)),
	}
	return f
}

// Title 第一个 h1 的文本
func (e *Extractor) Title(doc *goquery.Document) string {
	if t := cleanText(doc.Find("h1").First()); t != "" {
		return t
	}
	return Unknown
}

func (e *Extractor) Subject(doc *goquery.Document) string {
	v, name := e.subjectChain.First(doc)
	e.logger.Debug("subject extracted", zap.String("strategy", name), zap.String("value", v))
	return v
}

func (e *Extractor) Date(doc *goquery.Document) string {
	v, name := e.dateChain.First(doc)
	e.logger.Debug("date extracted", zap.String("strategy", name), zap.String("value", v))
	return v
}

func anchorSubject(doc *goquery.Document) string {
	var name string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if !subjectHrefRe.MatchString(href) {
			return true
		}
		name = cleanText(s)
		return false
	})
	return name
}

// pageTitleSubject 从 "Review of <X> | Site" 形式的 title 中取出 X
func pageTitleSubject(doc *goquery.Document) string {
	title := doc.Find("title").First().Text()
	idx := strings.Index(title, "Review of")
	if idx < 0 {
		return ""
	}
	rest := title[idx+len("Review of"):]
	if end := strings.Index(rest, "|"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func timeElementDate(doc *goquery.Document) string {
	t := doc.Find("time").First()
	if t.Length() == 0 {
		return ""
	}
	if v, ok := t.Attr("datetime"); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return cleanText(t)
}

// textPatternDate 只看短文本，避免从大段正文里误匹配
func (e *Extractor) textPatternDate(doc *goquery.Document) string {
	var date string
	doc.Find("span, p, div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := cleanText(s)
		if utf8.RuneCountInString(text) >= e.maxDateTextLen {
			return true
		}
		m := dateRe.FindStringSubmatch(text)
		if m == nil {
			return true
		}
		date = m[1]
		return false
	})
	return date
}

// Sections 按 h2~h4 切分正文。标题里出现终止标记时整体停止；
// 段落里出现终止标记时只结束当前小节，该段落不计入。
func (e *Extractor) Sections(doc *goquery.Document) Sections {
	var sections Sections
	doc.Find("h2, h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		label := spacedText(h)
		if e.hasMarker(label) {
			return false
		}

		var b strings.Builder
		for next := h.Next(); next.Length() > 0 && !isHeading(next); next = next.Next() {
			if !next.Is("p, div") {
				continue
			}
			text := spacedText(next)
			if e.hasMarker(text) {
				break
			}
			b.WriteString(text)
			b.WriteString("\n")
		}

		if content := strings.TrimSpace(b.String()); content != "" {
			sections.set(label, content)
		}
		return true
	})
	return sections
}

// AssembleBody 有小节时按小节拼接，否则退回到所有较长段落
func (e *Extractor) AssembleBody(doc *goquery.Document, sections Sections) string {
	if len(sections) > 0 {
		parts := make([]string, 0, len(sections))
		for _, s := range sections {
			parts = append(parts, "### "+s.Label+"\n"+s.Content)
		}
		return strings.Join(parts, "\n\n")
	}

	var paragraphs []string
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := cleanText(p)
		if e.hasMarker(text) {
			return false
		}
		if utf8.RuneCountInString(text) > e.minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
		return true
	})
	return strings.Join(paragraphs, "\n\n")
}

// PostClean 截掉第一个终止标记及其后的内容
func (e *Extractor) PostClean(text string) string {
	idx := e.markerIndex(text)
	if idx < 0 {
		return text
	}
	return strings.TrimSpace(text[:idx])
}

func (e *Extractor) hasMarker(text string) bool {
	return e.markerIndex(text) >= 0
}

func (e *Extractor) markerIndex(text string) int {
	idx := -1
	for _, m := range e.markers {
		if i := strings.Index(text, m); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}
	return idx
}
