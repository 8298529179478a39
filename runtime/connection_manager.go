package runtime

import (
	"chat-session/contract"
	"chat-session/domain"
	"chat-session/domain/event"
	errs "chat-session/errors"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/benbjohnson/clock"
)

// ConnectionManager owns the push connection lifecycle.
//
//	Disconnected --Connect--> Connecting --open--> Connected --close--> Disconnected --(backoff)--> Connecting
//
// Each dial gets an epoch. Callbacks carrying an older epoch (late dial results,
// reads on a replaced connection, timers armed before Disconnect) are ignored.
// Inbound frames are delivered to the handler from the read goroutine, one at a time.
type ConnectionManager struct {
	mu            sync.Mutex
	log           *slog.Logger
	dialer        contract.IPushDialer
	handler       contract.IPushHandler
	backoff       contract.IBackoffPolicy
	clock         clock.Clock
	authenticated func() bool

	state      domain.ConnectionState
	credential domain.Credential
	conn       contract.IPushConn
	epoch      uint64
	attempt    int
	timer      *clock.Timer
	cancelDial context.CancelFunc
	stopped    bool
}

func NewConnectionManager(
	log *slog.Logger,
	dialer contract.IPushDialer,
	handler contract.IPushHandler,
	backoff contract.IBackoffPolicy,
	clk clock.Clock,
	authenticated func() bool,
) *ConnectionManager {
	if backoff == nil {
		backoff = NewFixedBackoff(DefaultReconnectDelay)
	}
	if clk == nil {
		clk = clock.New()
	}
	if authenticated == nil {
		authenticated = func() bool { return true }
	}
	return &ConnectionManager{
		log:           log,
		dialer:        dialer,
		handler:       handler,
		backoff:       backoff,
		clock:         clk,
		authenticated: authenticated,
	}
}

// Connect starts dialing with the credential and returns immediately.
// An empty credential fails fast without any connection attempt.
func (m *ConnectionManager) Connect(credential domain.Credential) error {
	if credential.IsZero() {
		return errs.ErrEmptyCredential
	}
	m.mu.Lock()
	if m.state != domain.Disconnected {
		m.mu.Unlock()
		return nil
	}
	m.stopped = false
	m.credential = credential
	m.attempt = 0
	m.cancelTimerLocked()
	epoch, ctx := m.beginDialLocked()
	m.mu.Unlock()

	m.handler.OnState(domain.Connecting)
	go m.dial(ctx, epoch, credential)
	return nil
}

func (m *ConnectionManager) State() domain.ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Send writes an event while connected. Outside of Connected it is a silent no-op.
func (m *ConnectionManager) Send(evt event.Outbound) error {
	m.mu.Lock()
	conn, state := m.conn, m.state
	m.mu.Unlock()

	if state != domain.Connected || conn == nil {
		m.log.Debug("Dropping outbound event, not connected", "type", evt.Type(), "state", state.String())
		return nil
	}
	if err := conn.WriteJSON(evt); err != nil {
		return fmt.Errorf("send %s: %w", evt.Type(), err)
	}
	return nil
}

// Disconnect tears the connection down, cancels any pending reconnect
// and suppresses auto-reconnect until Connect is called again.
func (m *ConnectionManager) Disconnect() {
	m.mu.Lock()
	m.stopped = true
	m.cancelTimerLocked()
	m.epoch++
	if m.cancelDial != nil {
		m.cancelDial()
		m.cancelDial = nil
	}
	conn := m.conn
	m.conn = nil
	previous := m.state
	m.state = domain.Disconnected
	m.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if previous != domain.Disconnected {
		m.log.Info("Push connection closed by client")
		m.handler.OnState(domain.Disconnected)
	}
}

func (m *ConnectionManager) dial(ctx context.Context, epoch uint64, credential domain.Credential) {
	conn, err := m.dialer.Dial(ctx, credential)

	m.mu.Lock()
	if epoch != m.epoch || m.stopped {
		m.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		return
	}
	if m.cancelDial != nil {
		m.cancelDial()
		m.cancelDial = nil
	}
	if err != nil {
		m.state = domain.Disconnected
		if !errors.Is(err, errs.ErrAuthExpired) {
			m.scheduleReconnectLocked()
		}
		m.mu.Unlock()

		m.log.Warn("Push connection failed", "error", err)
		m.handler.OnError(err)
		m.handler.OnState(domain.Disconnected)
		return
	}
	m.conn = conn
	m.state = domain.Connected
	m.attempt = 0
	m.mu.Unlock()

	m.log.Info("Push connection established", "source", credential.Source)
	m.handler.OnState(domain.Connected)
	m.readLoop(epoch, conn)
}

func (m *ConnectionManager) readLoop(epoch uint64, conn contract.IPushConn) {
	for {
		data, err := conn.ReadMessage()
		if err != nil {
			m.onClose(epoch, conn, err)
			return
		}
		evt, err := event.Decode(data)
		if err != nil {
			m.log.Warn("Dropping malformed push event", "error", err)
			continue
		}
		m.handler.OnEvent(evt)
	}
}

func (m *ConnectionManager) onClose(epoch uint64, conn contract.IPushConn, cause error) {
	_ = conn.Close()

	m.mu.Lock()
	if epoch != m.epoch {
		m.mu.Unlock()
		return
	}
	m.conn = nil
	m.state = domain.Disconnected
	m.scheduleReconnectLocked()
	m.mu.Unlock()

	if errors.Is(cause, io.EOF) {
		m.log.Info("Push connection closed by peer")
	} else {
		m.log.Warn("Push connection lost", "error", cause)
		m.handler.OnError(cause)
	}
	m.handler.OnState(domain.Disconnected)
}

// scheduleReconnectLocked arms the reconnect timer. The lock must be held.
func (m *ConnectionManager) scheduleReconnectLocked() {
	if m.stopped || !m.authenticated() {
		return
	}
	m.attempt++
	delay, ok := m.backoff.Next(m.attempt)
	if !ok {
		m.log.Warn("Giving up reconnecting", "attempts", m.attempt-1)
		return
	}
	epoch := m.epoch
	m.timer = m.clock.AfterFunc(delay, func() { m.reconnect(epoch) })
	m.log.Debug("Reconnect scheduled", "delay", delay, "attempt", m.attempt)
}

func (m *ConnectionManager) reconnect(epoch uint64) {
	m.mu.Lock()
	if m.stopped || epoch != m.epoch || m.state != domain.Disconnected || !m.authenticated() {
		m.mu.Unlock()
		return
	}
	m.timer = nil
	credential := m.credential
	next, ctx := m.beginDialLocked()
	m.mu.Unlock()

	m.handler.OnState(domain.Connecting)
	m.dial(ctx, next, credential)
}

func (m *ConnectionManager) beginDialLocked() (uint64, context.Context) {
	m.epoch++
	m.state = domain.Connecting
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelDial = cancel
	return m.epoch, ctx
}

func (m *ConnectionManager) cancelTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}
