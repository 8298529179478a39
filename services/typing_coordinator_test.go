package services

import (
	"chat-session/domain"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type signals struct {
	mu   sync.Mutex
	sent []TypingSignal
}

func (s *signals) emit(signal TypingSignal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, signal)
}

func (s *signals) All() []TypingSignal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TypingSignal(nil), s.sent...)
}

var general = domain.Key("s1", "general")

func newCoordinator(mock *clock.Mock, remoteIdle time.Duration) (*TypingCoordinator, *signals) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	recorded := &signals{}
	coordinator := NewTypingCoordinator(log, mock, DefaultTypingHorizon, remoteIdle, recorded.emit, nil)
	coordinator.Activate(general)
	return coordinator, recorded
}

func TestTypingCoordinator_SingleStopAfterHorizon(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	coordinator, recorded := newCoordinator(mock, 0)

	// Given the user starts typing
	coordinator.OnLocalInput(true)
	req.Equal([]TypingSignal{{Started: true, Key: general}}, recorded.All())
	req.True(coordinator.IsTyping())

	// When the horizon is not reached yet
	mock.Add(1999 * time.Millisecond)
	time.Sleep(settle)
	req.Len(recorded.All(), 1)

	// Then exactly one stop is emitted at 2000 ms
	mock.Add(time.Millisecond)
	req.Eventually(func() bool { return len(recorded.All()) == 2 }, waitFor, tick)
	req.Equal(TypingSignal{Started: false, Key: general}, recorded.All()[1])
	req.False(coordinator.IsTyping())

	mock.Add(time.Minute)
	time.Sleep(settle)
	req.Len(recorded.All(), 2)
}

func TestTypingCoordinator_ContinuousInputNeverStops(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	coordinator, recorded := newCoordinator(mock, 0)

	coordinator.OnLocalInput(true)
	for i := 0; i < 20; i++ {
		mock.Add(1500 * time.Millisecond)
		coordinator.OnLocalInput(true)
	}
	time.Sleep(settle)

	req.Equal([]TypingSignal{{Started: true, Key: general}}, recorded.All())
	req.True(coordinator.IsTyping())

	// The stop comes 2000 ms after the last keystroke
	mock.Add(2 * time.Second)
	req.Eventually(func() bool { return len(recorded.All()) == 2 }, waitFor, tick)
}

func TestTypingCoordinator_EmptyInputStopsImmediately(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	coordinator, recorded := newCoordinator(mock, 0)

	coordinator.OnLocalInput(true)
	coordinator.OnLocalInput(false)

	req.Equal([]TypingSignal{
		{Started: true, Key: general},
		{Started: false, Key: general},
	}, recorded.All())
	req.False(coordinator.IsTyping())

	// The cancelled timer never fires a second stop
	mock.Add(time.Minute)
	time.Sleep(settle)
	req.Len(recorded.All(), 2)

	// Empty input while idle emits nothing
	coordinator.OnLocalInput(false)
	req.Len(recorded.All(), 2)
}

func TestTypingCoordinator_ClearEmitsSingleStop(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	coordinator, recorded := newCoordinator(mock, 0)

	// Given the user is typing
	coordinator.OnLocalInput(true)

	// When the typing state is cleared after a send
	coordinator.Clear()

	// Then a stop is emitted right away and the horizon timer is gone
	req.Equal([]TypingSignal{{Started: true, Key: general}, {Started: false, Key: general}}, recorded.All())
	req.False(coordinator.IsTyping())
	mock.Add(time.Minute)
	time.Sleep(settle)
	coordinator.OnLocalInput(false)
	req.Len(recorded.All(), 2)

	// Clearing while idle emits nothing
	coordinator.Clear()
	req.Len(recorded.All(), 2)
}

func TestTypingCoordinator_NoChannelNoSignal(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	recorded := &signals{}
	coordinator := NewTypingCoordinator(log, clock.NewMock(), 0, 0, recorded.emit, nil)

	coordinator.OnLocalInput(true)

	req.Empty(recorded.All())
	req.False(coordinator.IsTyping())
}

func TestTypingCoordinator_ActivateStopsPreviousChannel(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	coordinator, recorded := newCoordinator(mock, 0)
	random := domain.Key("s1", "random")

	// Given the user is typing in general while bob types there too
	coordinator.OnLocalInput(true)
	coordinator.OnRemoteStart("bob")

	// When switching to another channel
	coordinator.Activate(random)

	// Then the stop is tagged with the previous channel and remote typers are gone
	req.Equal([]TypingSignal{
		{Started: true, Key: general},
		{Started: false, Key: general},
	}, recorded.All())
	req.Empty(coordinator.Users())
	req.False(coordinator.IsTyping())
}

func TestTypingCoordinator_RemoteTypers(t *testing.T) {
	testCases := []struct {
		description string
		actions     func(c *TypingCoordinator)
		expected    []string
	}{
		{
			description: "starts are kept in arrival order",
			actions: func(c *TypingCoordinator) {
				c.OnRemoteStart("bob")
				c.OnRemoteStart("carol")
			},
			expected: []string{"bob", "carol"},
		},
		{
			description: "a repeated start does not duplicate",
			actions: func(c *TypingCoordinator) {
				c.OnRemoteStart("bob")
				c.OnRemoteStart("bob")
			},
			expected: []string{"bob"},
		},
		{
			description: "stop removes the user",
			actions: func(c *TypingCoordinator) {
				c.OnRemoteStart("bob")
				c.OnRemoteStart("carol")
				c.OnRemoteStop("bob")
			},
			expected: []string{"carol"},
		},
		{
			description: "the local user is ignored",
			actions: func(c *TypingCoordinator) {
				c.SetLocalUser("alice")
				c.OnRemoteStart("alice")
				c.OnRemoteStart("bob")
			},
			expected: []string{"bob"},
		},
		{
			description: "stop for an unknown user is harmless",
			actions: func(c *TypingCoordinator) {
				c.OnRemoteStop("nobody")
			},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			req := require.New(t)
			coordinator, _ := newCoordinator(clock.NewMock(), 0)

			tc.actions(coordinator)

			req.ElementsMatch(tc.expected, coordinator.Users())
			req.Equal(len(tc.expected), len(coordinator.Users()))
		})
	}
}

func TestTypingCoordinator_RemoteIdleExpiry(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	coordinator, _ := newCoordinator(mock, 10*time.Second)

	coordinator.OnRemoteStart("bob")
	mock.Add(8 * time.Second)

	// A refresh pushes the deadline back
	coordinator.OnRemoteStart("bob")
	mock.Add(8 * time.Second)
	time.Sleep(settle)
	req.Equal([]string{"bob"}, coordinator.Users())

	mock.Add(2 * time.Second)
	req.Eventually(func() bool { return len(coordinator.Users()) == 0 }, waitFor, tick)
}

func TestTypingCoordinator_StopCancelsTimers(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	coordinator, recorded := newCoordinator(mock, 5*time.Second)

	coordinator.OnLocalInput(true)
	coordinator.OnRemoteStart("bob")
	coordinator.Stop()

	mock.Add(time.Minute)
	time.Sleep(settle)
	req.Len(recorded.All(), 1)
	req.Empty(coordinator.Users())
}
