package services

import (
	"chat-session/domain"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/samber/lo"
)

const DefaultTypingHorizon = 2000 * time.Millisecond

// TypingSignal is an outbound typing notification for the channel it was raised in.
type TypingSignal struct {
	Started bool
	Key     domain.ChannelKey
}

type remoteTyper struct {
	username string
	timer    *clock.Timer
	token    uint64
}

// TypingCoordinator tracks who is typing in the active channel and debounces
// the local user's own typing notifications.
//
// Signals are emitted after the internal lock is released, so emit may call
// back into the coordinator.
type TypingCoordinator struct {
	mu         sync.Mutex
	log        *slog.Logger
	clock      clock.Clock
	horizon    time.Duration
	remoteIdle time.Duration
	emit       func(TypingSignal)
	onChange   func()

	localUser  string
	key        domain.ChannelKey
	typing     bool
	generation uint64
	timer      *clock.Timer
	remote     []remoteTyper
	tokens     uint64
}

// NewTypingCoordinator builds a coordinator. A zero horizon falls back to 2000 ms.
// remoteIdle expires remote typers that never sent a stop; zero disables it.
func NewTypingCoordinator(
	log *slog.Logger,
	clk clock.Clock,
	horizon, remoteIdle time.Duration,
	emit func(TypingSignal),
	onChange func(),
) *TypingCoordinator {
	if horizon <= 0 {
		horizon = DefaultTypingHorizon
	}
	if onChange == nil {
		onChange = func() {}
	}
	return &TypingCoordinator{
		log:        log,
		clock:      clk,
		horizon:    horizon,
		remoteIdle: remoteIdle,
		emit:       emit,
		onChange:   onChange,
	}
}

func (c *TypingCoordinator) SetLocalUser(username string) {
	c.mu.Lock()
	c.localUser = username
	removed := c.removeLocked(username)
	c.mu.Unlock()
	if removed {
		c.onChange()
	}
}

// Activate scopes the coordinator to another channel.
// A pending local typing state is stopped for the previous channel.
func (c *TypingCoordinator) Activate(key domain.ChannelKey) {
	c.mu.Lock()
	if key == c.key {
		c.mu.Unlock()
		return
	}
	signal, stopped := c.stopLocalLocked()
	c.clearRemoteLocked()
	c.key = key
	c.mu.Unlock()

	if stopped {
		c.send(signal)
	}
	c.onChange()
}

func (c *TypingCoordinator) OnRemoteStart(username string) {
	c.mu.Lock()
	if username == "" || username == c.localUser {
		c.mu.Unlock()
		return
	}
	idx := lo.IndexOf(lo.Map(c.remote, func(r remoteTyper, _ int) string { return r.username }), username)
	if idx < 0 {
		c.remote = append(c.remote, remoteTyper{username: username})
		idx = len(c.remote) - 1
	}
	if c.remoteIdle > 0 {
		if c.remote[idx].timer != nil {
			c.remote[idx].timer.Stop()
		}
		c.tokens++
		token := c.tokens
		c.remote[idx].token = token
		c.remote[idx].timer = c.clock.AfterFunc(c.remoteIdle, func() { c.expireRemote(username, token) })
	}
	c.mu.Unlock()
	c.onChange()
}

func (c *TypingCoordinator) OnRemoteStop(username string) {
	c.mu.Lock()
	removed := c.removeLocked(username)
	c.mu.Unlock()
	if removed {
		c.onChange()
	}
}

// OnLocalInput reacts to a change of the local input box.
func (c *TypingCoordinator) OnLocalInput(hasText bool) {
	c.mu.Lock()
	if c.key == "" {
		c.mu.Unlock()
		return
	}
	if !hasText {
		signal, stopped := c.stopLocalLocked()
		c.mu.Unlock()
		if stopped {
			c.send(signal)
		}
		return
	}

	started := !c.typing
	c.typing = true
	c.armLocked()
	key := c.key
	c.mu.Unlock()

	if started {
		c.send(TypingSignal{Started: true, Key: key})
	}
}

// Clear ends the local typing state after a message was sent.
// Peers get a stop when the user was typing.
func (c *TypingCoordinator) Clear() {
	c.mu.Lock()
	signal, stopped := c.stopLocalLocked()
	c.mu.Unlock()
	if stopped {
		c.send(signal)
	}
}

func (c *TypingCoordinator) IsTyping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing
}

// Users returns remote typers in arrival order.
func (c *TypingCoordinator) Users() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo.Map(c.remote, func(r remoteTyper, _ int) string { return r.username })
}

// Stop cancels every timer. No signal is emitted.
func (c *TypingCoordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typing = false
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.clearRemoteLocked()
}

func (c *TypingCoordinator) armLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.generation++
	generation := c.generation
	c.timer = c.clock.AfterFunc(c.horizon, func() { c.expireLocal(generation) })
}

func (c *TypingCoordinator) expireLocal(generation uint64) {
	c.mu.Lock()
	if generation != c.generation || !c.typing {
		c.mu.Unlock()
		return
	}
	signal, stopped := c.stopLocalLocked()
	c.mu.Unlock()
	if stopped {
		c.log.Debug("Typing horizon elapsed", "channel", signal.Key)
		c.send(signal)
	}
}

func (c *TypingCoordinator) stopLocalLocked() (TypingSignal, bool) {
	if !c.typing {
		return TypingSignal{}, false
	}
	c.typing = false
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	return TypingSignal{Started: false, Key: c.key}, true
}

// expireRemote only removes the entry if it was not refreshed since the timer was armed.
func (c *TypingCoordinator) expireRemote(username string, token uint64) {
	c.mu.Lock()
	_, found := lo.Find(c.remote, func(r remoteTyper) bool {
		return r.username == username && r.token == token
	})
	removed := found && c.removeLocked(username)
	c.mu.Unlock()
	if removed {
		c.log.Debug("Remote typing expired", "username", username)
		c.onChange()
	}
}

func (c *TypingCoordinator) removeLocked(username string) bool {
	for i, r := range c.remote {
		if r.username != username {
			continue
		}
		if r.timer != nil {
			r.timer.Stop()
		}
		c.remote = append(c.remote[:i], c.remote[i+1:]...)
		return true
	}
	return false
}

func (c *TypingCoordinator) clearRemoteLocked() {
	for _, r := range c.remote {
		if r.timer != nil {
			r.timer.Stop()
		}
	}
	c.remote = nil
}

func (c *TypingCoordinator) send(signal TypingSignal) {
	if c.emit != nil {
		c.emit(signal)
	}
}
