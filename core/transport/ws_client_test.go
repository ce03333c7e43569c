package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

// echoServer 启动一个回显 WebSocket 服务，每条消息原样返回
func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() {
			_ = conn.Close()
		}()
		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(mt, msg); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWSSendRoundTrip(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	tr, err := NewWebSocket(wsURL(srv), Options{})
	if err != nil {
		t.Fatalf("NewWebSocket error: %v", err)
	}
	defer func() {
		if err := tr.Close(); err != nil {
			t.Errorf("Close error: %v", err)
		}
	}()

	for _, body := range []string{
		`{"action":"version"}`,
		`{"action":"block_count"}`,
		`{"action":"peers"}`,
	} {
		reply, err := tr.Send(context.Background(), []byte(body))
		if err != nil {
			t.Fatalf("Send error: %v", err)
		}
		if string(reply) != body {
			t.Errorf("reply = %s, want %s", reply, body)
		}
	}
}

// 并发调用方共用一条连接，互斥锁保证一发一收不交错
func TestWSSendConcurrent(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	tr, err := NewWebSocket(wsURL(srv), Options{})
	if err != nil {
		t.Fatalf("NewWebSocket error: %v", err)
	}
	defer func() {
		if err := tr.Close(); err != nil {
			t.Errorf("Close error: %v", err)
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := []byte(`{"action":"version"}`)
			for j := 0; j < 10; j++ {
				reply, err := tr.Send(context.Background(), body)
				if err != nil {
					t.Errorf("Send error: %v", err)
					return
				}
				if string(reply) != string(body) {
					t.Errorf("reply = %s", reply)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestWSDialFailure(t *testing.T) {
	tr, err := NewWebSocket("ws://127.0.0.1:1", Options{})
	if tr != nil {
		t.Fatal("transport should be nil on dial failure")
	}
	var de *DialError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DialError", err)
	}
	if de.URL != "ws://127.0.0.1:1" {
		t.Errorf("DialError.URL = %q", de.URL)
	}
}

func TestWSHandshakeHeaders(t *testing.T) {
	var mu sync.Mutex
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotAuth = r.Header.Get("Authorization")
		mu.Unlock()
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = conn.Close()
	}))
	defer srv.Close()

	tr, err := NewWebSocket(wsURL(srv), Options{
		Headers: map[string]string{"Authorization": "Bearer token"},
	})
	if err != nil {
		t.Fatalf("NewWebSocket error: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if gotAuth != "Bearer token" {
		t.Errorf("handshake header = %q", gotAuth)
	}
}

func TestWSSendAfterClose(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	tr, err := NewWebSocket(wsURL(srv), Options{})
	if err != nil {
		t.Fatalf("NewWebSocket error: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	if _, err := tr.Send(context.Background(), []byte(`{"action":"version"}`)); !errors.Is(err, ErrClosed) {
		t.Errorf("Send after close = %v, want ErrClosed", err)
	}
}

func TestWSCloseIdempotent(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	tr, err := NewWebSocket(wsURL(srv), Options{})
	if err != nil {
		t.Fatalf("NewWebSocket error: %v", err)
	}
	first := tr.Close()
	for i := 0; i < 3; i++ {
		if got := tr.Close(); !errors.Is(got, first) {
			t.Errorf("Close #%d = %v, want %v", i, got, first)
		}
	}
}

func TestWSSendCanceledContext(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	tr, err := NewWebSocket(wsURL(srv), Options{})
	if err != nil {
		t.Fatalf("NewWebSocket error: %v", err)
	}
	defer func() {
		if err := tr.Close(); err != nil {
			t.Errorf("Close error: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := tr.Send(ctx, []byte(`{"action":"version"}`)); !errors.Is(err, context.Canceled) {
		t.Errorf("Send with canceled ctx = %v, want context.Canceled", err)
	}
}
