package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/proxy"
)

// HTTPTransport HTTP 模式传输：每条命令一次 POST，连接池复用。
// 调用之间无共享可变状态，多个并发调用是安全的（受连接池上限约束）。
type HTTPTransport struct {
	url     string
	headers map[string]string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTP 创建 HTTP 传输。配置了代理时，http 与 https 出站均经
// 本地 SOCKS5 代理，域名在代理侧解析。
func NewHTTP(url string, opts Options) (*HTTPTransport, error) {
	tr := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	if opts.Proxy != nil {
		dialer, err := socksDialer(opts.Proxy)
		if err != nil {
			return nil, err
		}
		tr.DialContext = dialer.DialContext
	}

	return &HTTPTransport{
		url:     url,
		headers: opts.Headers,
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: tr,
		},
		logger: opts.logger(),
	}, nil
}

// Send 发出一次 POST 并等待完成。非 2xx 状态是传输层故障，
// 携带状态码与响应体返回，不重试。
func (t *HTTPTransport) Send(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	t.logger.Debug("post command", zap.String("url", t.url), zap.Int("bytes", len(body)))

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.logger.Warn("close response body", zap.Error(err))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: data}
	}
	return data, nil
}

// Close 清理空闲连接。HTTP 模式没有持久会话，调用任意次都是安全的。
func (t *HTTPTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}

// socksDialer 构建经本地 SOCKS5 代理的拨号器。
// 目标地址以域名形式交给代理，由代理侧完成解析。
func socksDialer(cfg *ProxyConfig) (proxy.ContextDialer, error) {
	d, err := proxy.SOCKS5("tcp", cfg.addr(), nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("socks5 proxy %s: %w", cfg.addr(), err)
	}
	cd, ok := d.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("socks5 proxy %s: dialer does not support context", cfg.addr())
	}
	return cd, nil
}

var _ Transport = (*HTTPTransport)(nil)
