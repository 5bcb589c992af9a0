package commonsense

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Nrich-sunny/reviewcrawler/collect"
	"github.com/Nrich-sunny/reviewcrawler/extract"
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const RuleReview = "评论详情"

const (
	SectionMyTake    = "My Take"
	SectionHowIUseIt = "How I Use It"
)

// ItemFields 导出的列，顺序固定
var ItemFields = []string{
	"url",
	"node_id",
	"collected_date",
	"review_title",
	"product_name",
	"date_posted",
	"review_text",
	"my_take",
	"how_i_use_it",
}

// Review 一条社区评论
type Review struct {
	Url           string
	NodeID        string
	CollectedDate string
	Title         string
	Product       string
	DatePosted    string
	Text          string
	MyTake        string
	HowIUseIt     string
	Sections      extract.Sections
}

func (r Review) Item() map[string]interface{} {
	return map[string]interface{}{
		"url":            r.Url,
		"node_id":        r.NodeID,
		"collected_date": r.CollectedDate,
		"review_title":   r.Title,
		"product_name":   r.Product,
		"date_posted":    r.DatePosted,
		"review_text":    r.Text,
		"my_take":        r.MyTake,
		"how_i_use_it":   r.HowIUseIt,
	}
}

// NodeID 只有 /node/ 形式的地址才有编号，取最后一段
func NodeID(url string) string {
	if !strings.Contains(url, "/node/") {
		return ""
	}
	return url[strings.LastIndex(url, "/")+1:]
}

type Parser struct {
	extractor *extract.Extractor
	logger    *zap.Logger
}

func NewParser(extractor *extract.Extractor, logger *zap.Logger) *Parser {
	if extractor == nil {
		extractor = extract.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{extractor: extractor, logger: logger}
}

// Review 从已经解析好的文档中组装一条评论
func (p *Parser) Review(url string, fetchedAt time.Time, doc *goquery.Document) Review {
	f := p.extractor.Extract(doc)
	return Review{
		Url:           url,
		NodeID:        NodeID(url),
		CollectedDate: fetchedAt.Format(collect.TimeLayout),
		Title:         f.Title,
		Product:       f.Subject,
		DatePosted:    f.Date,
		Text:          f.Body,
		MyTake:        p.extractor.PostClean(f.Sections.Get(SectionMyTake)),
		HowIUseIt:     p.extractor.PostClean(f.Sections.Get(SectionHowIUseIt)),
		Sections:      f.Sections,
	}
}

func (p *Parser) ParseReview(ctx *collect.Context) (collect.ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(ctx.Body))
	if err != nil {
		return collect.ParseResult{}, fmt.Errorf("parse html: %w", err)
	}

	r := p.Review(ctx.Req.Url, ctx.Time, doc)
	p.logger.Info("review extracted",
		zap.String("url", r.Url),
		zap.String("title", r.Title),
		zap.String("product", r.Product),
		zap.Int("text_length", utf8.RuneCountInString(r.Text)),
	)

	return collect.ParseResult{
		Items: []interface{}{ctx.Output(r.Item())},
	}, nil
}

// NewReviewTask 每个 url 生成一个请求，按给定顺序抓取
func NewReviewTask(product string, urls []string, parser *Parser, opts ...collect.Option) *collect.Task {
	rule := collect.RuleTree{
		Root: func() ([]*collect.Request, error) {
			roots := make([]*collect.Request, 0, len(urls))
			for _, u := range urls {
				roots = append(roots, &collect.Request{
					Url:      u,
					Method:   "GET",
					RuleName: RuleReview,
				})
			}
			return roots, nil
		},
		Trunk: map[string]*collect.Rule{
			RuleReview: {
				ItemFields: ItemFields,
				ParseFunc:  parser.ParseReview,
			},
		},
	}

	name := "commonsense"
	if product != "" {
		name += "_" + product
	}
	opts = append([]collect.Option{collect.WithName(name)}, opts...)
	opts = append(opts, collect.WithRule(rule))
	return collect.NewTask(opts...)
}
