// Package transport opens the push connection over a websocket.
package transport

import (
	"chat-session/contract"
	"chat-session/domain"
	"chat-session/errors"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingInterval     = 30 * time.Second
	handshakeTimeout = 10 * time.Second
	readLimit        = 1 << 20
)

// Dialer connects to the push endpoint, passing the credential as the token query parameter.
type Dialer struct {
	endpoint string
	log      *slog.Logger
	dialer   *websocket.Dialer
}

func NewDialer(endpoint string, log *slog.Logger) *Dialer {
	return &Dialer{
		endpoint: endpoint,
		log:      log,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

// Dial returns errors.ErrAuthExpired when the handshake is refused with 401.
func (d *Dialer) Dial(ctx context.Context, credential domain.Credential) (contract.IPushConn, error) {
	target, err := url.Parse(d.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse push endpoint: %w", err)
	}
	query := target.Query()
	query.Set("token", credential.Value)
	target.RawQuery = query.Encode()

	ws, response, err := d.dialer.DialContext(ctx, target.String(), nil)
	if response != nil && response.Body != nil {
		_ = response.Body.Close()
	}
	if err != nil {
		if response != nil && response.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("push handshake: %w", errors.ErrAuthExpired)
		}
		return nil, fmt.Errorf("dial push endpoint: %w", err)
	}
	d.log.Debug("Push endpoint reached", "host", target.Host)
	return newConn(ws), nil
}

// Conn serializes writes and keeps the connection alive with pings.
// A normal close from the peer surfaces as io.EOF.
type Conn struct {
	ws     *websocket.Conn
	mu     sync.Mutex
	done   chan struct{}
	closed sync.Once
}

func newConn(ws *websocket.Conn) *Conn {
	c := &Conn{ws: ws, done: make(chan struct{})}
	ws.SetReadLimit(readLimit)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	go c.pingLoop()
	return c
}

// ReadMessage returns the next text frame.
func (c *Conn) ReadMessage() ([]byte, error) {
	for {
		kind, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil, io.EOF
			}
			return nil, err
		}
		if kind == websocket.TextMessage {
			return payload, nil
		}
	}
}

func (c *Conn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(v)
}

// Close sends a close frame when possible, then closes the socket.
func (c *Conn) Close() error {
	var err error
	c.closed.Do(func() {
		close(c.done)
		c.mu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
		c.mu.Unlock()
		err = c.ws.Close()
	})
	return err
}

func (c *Conn) pingLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}
