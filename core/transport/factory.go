package transport

import (
	"strings"
)

// New 按连接串前缀选择传输模式。
// http:// 与 https:// 走 HTTP 模式，ws:// 与 wss:// 走 WebSocket 模式，
// 其余前缀立即返回 EndpointError，不发起连接。
func New(url string, opts Options) (Transport, error) {
	switch {
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return NewHTTP(url, opts)
	case strings.HasPrefix(url, "ws://"), strings.HasPrefix(url, "wss://"):
		return NewWebSocket(url, opts)
	default:
		return nil, &EndpointError{URL: url}
	}
}
