// Package pushtest provides an in-memory push connection and dialer for tests.
package pushtest

import (
	"chat-session/contract"
	"chat-session/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Conn is a push connection driven by the test.
type Conn struct {
	frames  chan []byte
	closed  chan struct{}
	once    sync.Once
	mu      sync.Mutex
	written []json.RawMessage
}

func NewConn() *Conn {
	return &Conn{frames: make(chan []byte, 64), closed: make(chan struct{})}
}

// Push delivers a raw frame to the reader.
func (c *Conn) Push(frame string) {
	c.frames <- []byte(frame)
}

// Drop simulates the peer closing the connection.
func (c *Conn) Drop() {
	_ = c.Close()
}

func (c *Conn) ReadMessage() ([]byte, error) {
	select {
	case <-c.closed:
		return nil, io.EOF
	default:
	}
	select {
	case frame := <-c.frames:
		return frame, nil
	case <-c.closed:
		return nil, io.EOF
	}
}

func (c *Conn) WriteJSON(v any) error {
	select {
	case <-c.closed:
		return fmt.Errorf("write on closed connection")
	default:
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written = append(c.written, raw)
	return nil
}

func (c *Conn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *Conn) IsClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// Written returns the frames written so far, decoded as generic JSON objects.
func (c *Conn) Written() []map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]map[string]any, 0, len(c.written))
	for _, raw := range c.written {
		var m map[string]any
		_ = json.Unmarshal(raw, &m)
		out = append(out, m)
	}
	return out
}

// Dialer hands out a new Conn per dial and records the credentials used.
type Dialer struct {
	mu          sync.Mutex
	credentials []domain.Credential
	conns       []*Conn
	failures    []error
}

func NewDialer() *Dialer {
	return &Dialer{}
}

// FailNext makes the next dial return err.
func (d *Dialer) FailNext(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failures = append(d.failures, err)
}

func (d *Dialer) Dial(_ context.Context, credential domain.Credential) (contract.IPushConn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.credentials = append(d.credentials, credential)
	if len(d.failures) > 0 {
		err := d.failures[0]
		d.failures = d.failures[1:]
		return nil, err
	}
	conn := NewConn()
	d.conns = append(d.conns, conn)
	return conn, nil
}

func (d *Dialer) Dials() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.credentials)
}

func (d *Dialer) Credentials() []domain.Credential {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Credential(nil), d.credentials...)
}

// Last returns the most recent successful connection, nil if none.
func (d *Dialer) Last() *Conn {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.conns) == 0 {
		return nil
	}
	return d.conns[len(d.conns)-1]
}
