package transport

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSTransport WebSocket 模式传输：构建时建立唯一的持久连接，
// 每条命令是同一连接上的一次写入加一次阻塞读取。
//
// 使用约束：请求不携带标识，回复靠严格的一发一收顺序对应。
// 单个实例同一时刻只允许一条命令在途；内部互斥锁把发送与接收
// 作为原子单元串行化，并发调用方会依次排队。
type WSTransport struct {
	url    string
	conn   *websocket.Conn
	logger *zap.Logger

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
	closeErr  error
}

// NewWebSocket 创建 WebSocket 传输并立即建立连接。
// 连接失败是构建期致命错误，返回 DialError，不可恢复。
func NewWebSocket(url string, opts Options) (*WSTransport, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	if opts.Proxy != nil {
		sd, err := socksDialer(opts.Proxy)
		if err != nil {
			return nil, err
		}
		dialer.NetDialContext = sd.DialContext
	}

	var header http.Header
	if len(opts.Headers) > 0 {
		header = make(http.Header, len(opts.Headers))
		for k, v := range opts.Headers {
			header.Set(k, v)
		}
	}

	conn, resp, err := dialer.Dial(url, header)
	if err != nil {
		return nil, &DialError{URL: url, Err: err}
	}
	if resp != nil && resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			opts.logger().Warn("close handshake response body", zap.Error(err))
		}
	}

	return &WSTransport{
		url:    url,
		conn:   conn,
		logger: opts.logger(),
	}, nil
}

// Send 写入一条消息并阻塞读取下一条消息作为回复。
// 发送与接收在锁内完成，保证一发一收不被交错。
func (t *WSTransport) Send(ctx context.Context, body []byte) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.logger.Debug("write command", zap.String("url", t.url), zap.Int("bytes", len(body)))

	if err := t.conn.WriteMessage(websocket.TextMessage, body); err != nil {
		return nil, fmt.Errorf("write message: %w", err)
	}
	_, data, err := t.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	return data, nil
}

// Close 关闭底层连接。幂等，重复调用返回首次关闭的结果。
func (t *WSTransport) Close() error {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()
		t.closeErr = t.conn.Close()
	})
	return t.closeErr
}

var _ Transport = (*WSTransport)(nil)
