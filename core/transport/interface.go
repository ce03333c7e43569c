// Package transport 提供与节点通信的传输层抽象。
//
// 两种互斥的连接模式实现同一个 Transport 接口：HTTP 模式每条命令一次
// POST（连接池复用，无会话状态）；WebSocket 模式在构建时建立唯一的持久
// 连接，每条命令是同一连接上的一次写入加一次阻塞读取。模式在构建时由
// 连接串前缀一次性选定，运行期不切换。
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Transport 统一传输抽象：投递一条已序列化的命令并等待原始回复。
// 传输层只负责送达与回收字节，不解释回复内容。
type Transport interface {
	// Send 投递载荷并阻塞等待回复。仅传输层故障返回错误；
	// 节点在格式良好的回复中报告的失败原样作为数据返回。
	Send(ctx context.Context, body []byte) ([]byte, error)

	// Close 释放底层连接。幂等；HTTP 模式下没有持久资源，仅清理空闲连接。
	Close() error
}

// DefaultProxyAddr 本地 SOCKS5 代理的默认地址
const DefaultProxyAddr = "localhost:9050"

// ProxyConfig SOCKS5 代理配置。域名解析在代理侧完成。
type ProxyConfig struct {
	Addr string // host:port，空值取 DefaultProxyAddr
}

func (p *ProxyConfig) addr() string {
	if p == nil || p.Addr == "" {
		return DefaultProxyAddr
	}
	return p.Addr
}

// Options 传输构建选项
type Options struct {
	// Headers 附加到每次请求的头部（HTTP 模式逐请求附加，WebSocket 模式用于握手）
	Headers map[string]string

	// Proxy 非空时所有出站流量经本地 SOCKS5 代理
	Proxy *ProxyConfig

	// Timeout HTTP 客户端整体超时；零值表示不设超时，
	// 超时与取消策略由调用方通过 context 或此处的底层原语施加
	Timeout time.Duration

	// Logger 可选日志器，缺省为 nop
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// ErrClosed 在已关闭的流式连接上发送
var ErrClosed = errors.New("transport: connection closed")

// EndpointError 无法识别的连接串。构建期致命错误，不会发起任何连接。
type EndpointError struct {
	URL string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("invalid endpoint url %q: expect http://, https://, ws:// or wss:// prefix", e.URL)
}

// DialError 流式连接建立失败。构建期致命错误，不可恢复。
type DialError struct {
	URL string
	Err error
}

func (e *DialError) Error() string {
	return fmt.Sprintf("dial %s: %v", e.URL, e.Err)
}

func (e *DialError) Unwrap() error { return e.Err }

// StatusError 非成功状态的 HTTP 回复。携带状态码与响应体，不在内部重试。
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}
