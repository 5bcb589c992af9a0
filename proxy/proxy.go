package proxy

import (
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
)

// ProxyFunc 与 http.Transport.Proxy 的签名一致
type ProxyFunc func(*http.Request) (*url.URL, error)

type roundRobinSwitcher struct {
	proxyURLs []*url.URL
	index     uint32
}

// GetProxy 轮询选取代理地址
func (r *roundRobinSwitcher) GetProxy(pr *http.Request) (*url.URL, error) {
	index := atomic.AddUint32(&r.index, 1) - 1
	u := r.proxyURLs[index%uint32(len(r.proxyURLs))]
	return u, nil
}

// RoundRobinProxySwitcher 没有传入代理时返回 nil，表示直连
func RoundRobinProxySwitcher(proxyURLs ...string) (ProxyFunc, error) {
	if len(proxyURLs) < 1 {
		return nil, nil
	}
	parsedProxyURLs := make([]*url.URL, len(proxyURLs))
	for i, u := range proxyURLs {
		parsedURL, err := url.Parse(u)
		if err != nil {
			return nil, err
		}
		if parsedURL.Scheme == "" || parsedURL.Host == "" {
			return nil, errors.New("invalid proxy url: " + u)
		}
		parsedProxyURLs[i] = parsedURL
	}
	return (&roundRobinSwitcher{parsedProxyURLs, 0}).GetProxy, nil
}
