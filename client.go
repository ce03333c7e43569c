// Package nanorpc 是面向远端账本节点的命令客户端。
//
// 调用方通过统一的客户端方法发出命令并取回结构化回复，无须关心节点是经
// 事务式 HTTP 通道还是持久 WebSocket 连接到达，也无须了解每条命令的线上
// 字段布局——字段规则由声明式命令目录（core/command）统一承载。
//
// 密钥派生与签名、地址编解码、工作量计算均不在本包范围内；相关取值以
// 不透明字符串原样透传。
package nanorpc

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nanorpc/v1/core/command"
	"github.com/nanorpc/v1/core/transport"
)

// DefaultURL 节点 RPC 的默认地址
const DefaultURL = "http://localhost:7076"

// Config 客户端配置
type Config struct {
	// Headers 附加到每次请求的头部
	Headers map[string]string

	// Tor 为真时所有出站流量经本地 SOCKS5 代理（默认 localhost:9050）
	Tor bool

	// ProxyAddr 覆盖代理地址；仅在 Tor 为真时生效
	ProxyAddr string

	// Timeout HTTP 模式的整体请求超时；零值不设超时
	Timeout time.Duration

	// Logger 可选日志器
	Logger *zap.Logger
}

// Client 账本节点命令客户端。
// 传输模式在构建时由连接串前缀一次性选定；Client 独占其会话资源，
// WebSocket 模式下由构建方负责调用 Close 释放连接。
type Client struct {
	transport transport.Transport
}

// New 创建客户端，连接串前缀决定传输模式
func New(nodeURL string) (*Client, error) {
	return NewWithConfig(nodeURL, Config{})
}

// NewWithConfig 创建带配置的客户端
func NewWithConfig(nodeURL string, cfg Config) (*Client, error) {
	opts := transport.Options{
		Headers: cfg.Headers,
		Timeout: cfg.Timeout,
		Logger:  cfg.Logger,
	}
	if cfg.Tor {
		opts.Proxy = &transport.ProxyConfig{Addr: cfg.ProxyAddr}
	}
	t, err := transport.New(nodeURL, opts)
	if err != nil {
		return nil, err
	}
	return &Client{transport: t}, nil
}

// NewWithTransport 使用自定义传输创建客户端
func NewWithTransport(t transport.Transport) *Client {
	return &Client{transport: t}
}

// Close 释放底层连接。幂等；HTTP 模式下仅清理空闲连接。
func (c *Client) Close() error {
	return c.transport.Close()
}

// Call 发出目录中的任意命令（高级接口）。
// action 为命令名，args 为调用方提供的字段取值；字段取舍规则由目录决定。
func (c *Client) Call(ctx context.Context, action string, args command.Args) (Reply, error) {
	return c.call(ctx, action, args)
}

func (c *Client) call(ctx context.Context, action string, args command.Args) (Reply, error) {
	payload, err := command.Build(action, args)
	if err != nil {
		return nil, err
	}
	body, err := payload.Encode()
	if err != nil {
		return nil, err
	}
	raw, err := c.transport.Send(ctx, body)
	if err != nil {
		return nil, err
	}
	return decodeReply(raw)
}

// ===== 参数收集辅助 =====

// Bool 返回布尔值指针，用于反极性可选字段（默认 true，显式传 false 才上线）
func Bool(v bool) *bool { return &v }

func putBool(args command.Args, name string, v *bool) {
	if v != nil {
		args[name] = *v
	}
}

func putStr(args command.Args, name, v string) {
	if v != "" {
		args[name] = v
	}
}

func putInt(args command.Args, name string, v int) {
	if v != 0 {
		args[name] = v
	}
}

func putList(args command.Args, name string, v []string) {
	if len(v) > 0 {
		args[name] = v
	}
}
