package main

import (
	"bytes"
	"chat-session/domain"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	mu       sync.Mutex
	view     domain.View
	changes  chan struct{}
	sent     []string
	selected []string
}

func newFakeSession(v domain.View) *fakeSession {
	return &fakeSession{view: v, changes: make(chan struct{}, 1)}
}

func (f *fakeSession) View() domain.View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view
}

func (f *fakeSession) Changes() <-chan struct{} { return f.changes }

func (f *fakeSession) SelectServer(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = append(f.selected, "server:"+id)
	return nil
}

func (f *fakeSession) SelectChannel(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = append(f.selected, "channel:"+id)
	return nil
}

func (f *fakeSession) SendMessage(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return nil
}

func TestRenderWorker_PrintsEachMessageOnce(t *testing.T) {
	req := require.New(t)
	color.Disable()
	var out bytes.Buffer
	key := domain.Key("s1", "general")
	view := domain.View{
		Authenticated: true,
		Connection:    domain.Connected,
		ServerID:      "s1",
		ChannelID:     "general",
		Messages:      []domain.Message{{ID: "m1", Author: "bob", Body: "hi", Timestamp: "10:00", Key: key}},
	}
	worker := newRenderWorker(newFakeSession(view), &out, func() {})

	req.True(worker.render(view))
	view.Messages = append(view.Messages, domain.Message{ID: "m2", Author: "carol", Body: "yo", Timestamp: "10:01", Key: key})
	view.Typing = []string{"dave"}
	view.Error = "rate limited"
	req.True(worker.render(view))

	printed := out.String()
	req.Equal(1, strings.Count(printed, "bob: hi"))
	req.Equal(1, strings.Count(printed, "carol: yo"))
	req.Equal(1, strings.Count(printed, "# s1 / general"))
	req.Contains(printed, "dave typing...")
	req.Contains(printed, "! rate limited")
}

func TestRenderWorker_StopsWhenCredentialIsRejected(t *testing.T) {
	req := require.New(t)
	color.Disable()
	var out bytes.Buffer
	cancelled := false
	session := newFakeSession(domain.View{Authenticated: false})
	worker := newRenderWorker(session, &out, func() { cancelled = true })

	err := worker.Run(context.Background())

	req.NoError(err)
	req.True(cancelled)
	req.Contains(out.String(), "session ended")
}

func TestInputWorker_DispatchesLines(t *testing.T) {
	req := require.New(t)
	session := newFakeSession(domain.View{Authenticated: true})
	in := strings.NewReader("/server s2\n/channel lobby\nhello there\n/quit\nnever read\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker := newInputWorker(session, in, &bytes.Buffer{}, cancel)

	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("input worker did not stop on /quit")
	}
	req.Equal([]string{"server:s2", "channel:lobby"}, session.selected)
	req.Equal([]string{"hello there"}, session.sent)
	req.Error(ctx.Err())
}
