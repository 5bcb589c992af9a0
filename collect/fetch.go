package collect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Nrich-sunny/reviewcrawler/proxy"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultUserAgent 固定的身份标识，方便站方联系
const DefaultUserAgent = "NET Lab EdTech Research (Academic, meredith@netlab.inc)"

var ErrUnexpectedStatus = errors.New("unexpected status code")

type Fetcher interface {
	Get(req *Request) ([]byte, error)
}

// BrowserFetch 带固定 UA、超时和可选代理的 GET。
// 第一次 Get 时创建 http.Client，之后复用连接，字段需在此之前设置好
type BrowserFetch struct {
	Timeout   time.Duration
	UserAgent string
	Proxy     proxy.ProxyFunc // 替换 Transport 中的代理函数
	Logger    *zap.Logger

	once   sync.Once
	client *http.Client
}

func (b *BrowserFetch) httpClient() *http.Client {
	b.once.Do(func() {
		b.client = &http.Client{
			Timeout: b.Timeout,
		}
		if b.Proxy != nil {
			transport := http.DefaultTransport.(*http.Transport).Clone()
			transport.Proxy = b.Proxy
			b.client.Transport = transport
		}
	})
	return b.client
}

func (b *BrowserFetch) Get(request *Request) ([]byte, error) {
	client := b.httpClient()

	method := request.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequest(method, request.Url, nil)
	if err != nil {
		return nil, fmt.Errorf("get url failed: %w", err)
	}

	if request.Task != nil && len(request.Task.Cookie) > 0 {
		req.Header.Set("Cookie", request.Task.Cookie)
	}
	ua := b.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := client.Do(req)
	if err != nil {
		b.logger().Debug("fetch failed", zap.String("url", request.Url), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	bodyReader := bufio.NewReader(resp.Body)
	e := DetermineEncoding(bodyReader, resp.Header.Get("Content-Type"))
	utf8Reader := transform.NewReader(bodyReader, e.NewDecoder())
	return io.ReadAll(utf8Reader)
}

func (b *BrowserFetch) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}

// DetermineEncoding 根据前 1024 字节和 Content-Type 猜测编码
func DetermineEncoding(r *bufio.Reader, contentType string) encoding.Encoding {
	bytes, err := r.Peek(1024)
	if err != nil && !errors.Is(err, io.EOF) {
		zap.S().Debugf("peek body failed: %v", err)
		return unicode.UTF8
	}

	e, _, _ := charset.DetermineEncoding(bytes, contentType)
	return e
}
