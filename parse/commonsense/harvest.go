package commonsense

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NodeLinkPattern 评论页地址中必然包含的片段
const NodeLinkPattern = "commonsense.org/node/"

const googleRedirect = "/url?q="

// HarvestLinks 从保存下来的搜索结果页中找出评论页地址：
// 展开搜索引擎的跳转链接，去掉锚点，按首次出现顺序去重
func HarvestLinks(body []byte, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = NodeLinkPattern
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var urls []string
	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.Contains(href, pattern) {
			return
		}
		if i := strings.Index(href, googleRedirect); i >= 0 {
			href = href[i+len(googleRedirect):]
			if j := strings.Index(href, "&"); j >= 0 {
				href = href[:j]
			}
			if unescaped, err := url.QueryUnescape(href); err == nil {
				href = unescaped
			}
		}
		href = strings.SplitN(href, "#", 2)[0]
		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}
		urls = append(urls, href)
	})
	return urls, nil
}
