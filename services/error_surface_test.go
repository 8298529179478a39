package services

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

func TestErrorSurface_ClearsAfterTTL(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	surface := NewErrorSurface(mock, nil)

	surface.Set("select a server and channel", 3*time.Second)
	req.Equal("select a server and channel", surface.Current())

	mock.Add(2999 * time.Millisecond)
	req.Equal("select a server and channel", surface.Current())

	mock.Add(time.Millisecond)
	req.Eventually(func() bool { return surface.Current() == "" }, waitFor, tick)
}

func TestErrorSurface_NewerMessageSurvivesOlderTimer(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	surface := NewErrorSurface(mock, nil)

	// Given a first error shown for 3 s
	surface.Set("first", 3*time.Second)
	mock.Add(2 * time.Second)

	// When a second error arrives with 5 s
	surface.Set("second", 5*time.Second)

	// Then the first deadline does not clear it
	mock.Add(2 * time.Second)
	time.Sleep(settle)
	req.Equal("second", surface.Current())

	mock.Add(3 * time.Second)
	req.Eventually(func() bool { return surface.Current() == "" }, waitFor, tick)
}

func TestErrorSurface_Stop(t *testing.T) {
	req := require.New(t)
	mock := clock.NewMock()
	changes := 0
	surface := NewErrorSurface(mock, func() { changes++ })

	surface.Set("boom", time.Second)
	surface.Stop()

	req.Empty(surface.Current())
	mock.Add(time.Minute)
	time.Sleep(settle)
	req.Equal(1, changes)
}
