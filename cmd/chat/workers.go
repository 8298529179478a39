package main

import (
	"bufio"
	"chat-session/domain"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
)

// view is the part of the session the workers need.
type view interface {
	View() domain.View
	Changes() <-chan struct{}
	SelectServer(ctx context.Context, serverID string) error
	SelectChannel(ctx context.Context, channelID string) error
	SendMessage(text string) error
}

var (
	styleHeader  = color.New(color.FgCyan, color.OpBold)
	styleAuthor  = color.New(color.FgGreen, color.OpBold)
	styleTyping  = color.New(color.FgGray)
	styleError   = color.New(color.FgRed)
	styleWarning = color.New(color.FgYellow)
)

// RenderWorker prints what changed in the session view since the last signal.
type RenderWorker struct {
	session view
	out     io.Writer
	cancel  context.CancelFunc

	mu         sync.Mutex
	printed    map[domain.ChannelKey]map[string]struct{}
	key        domain.ChannelKey
	connection domain.ConnectionState
	typing     string
	error      string
}

func newRenderWorker(session view, out io.Writer, cancel context.CancelFunc) *RenderWorker {
	return &RenderWorker{
		session:    session,
		out:        out,
		cancel:     cancel,
		printed:    make(map[domain.ChannelKey]map[string]struct{}),
		connection: domain.ConnectionState(-1),
	}
}

func (w *RenderWorker) Run(ctx context.Context) error {
	if !w.render(w.session.View()) {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.session.Changes():
			if !w.render(w.session.View()) {
				return nil
			}
		}
	}
}

// render returns false once the session lost its credential.
func (w *RenderWorker) render(v domain.View) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !v.Authenticated {
		fmt.Fprintln(w.out, styleError.Render("session ended: the credential was rejected, run the client with a new token"))
		w.cancel()
		return false
	}
	if v.Connection != w.connection {
		w.connection = v.Connection
		style := styleWarning
		if v.Connection == domain.Connected {
			style = styleAuthor
		}
		fmt.Fprintln(w.out, style.Render("* "+v.Connection.String()))
	}

	key := domain.ChannelKey("")
	if v.ServerID != "" && v.ChannelID != "" {
		key = domain.Key(v.ServerID, v.ChannelID)
	}
	if key != w.key {
		w.key = key
		w.printed[key] = make(map[string]struct{})
		if key != "" {
			fmt.Fprintln(w.out, styleHeader.Render(fmt.Sprintf("# %s / %s", v.ServerID, v.ChannelID)))
		}
	}
	if key != "" {
		seen := w.printed[key]
		for i, m := range v.Messages {
			id := m.ID
			if id == "" {
				id = fmt.Sprintf("#%d", i)
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			fmt.Fprintf(w.out, "[%s] %s %s\n", m.Timestamp, styleAuthor.Render(m.Author+":"), m.Body)
		}
	}

	typing := strings.Join(v.Typing, ", ")
	if typing != w.typing {
		w.typing = typing
		if typing != "" {
			fmt.Fprintln(w.out, styleTyping.Render(typing+" typing..."))
		}
	}
	if v.Error != w.error {
		w.error = v.Error
		if v.Error != "" {
			fmt.Fprintln(w.out, styleError.Render("! "+v.Error))
		}
	}
	return true
}

// InputWorker reads one command or message per line.
//
//	/server <id>   switch server
//	/channel <id>  switch channel
//	/quit          leave
type InputWorker struct {
	session view
	lines   <-chan string
	out     io.Writer
	cancel  context.CancelFunc
}

func newInputWorker(session view, in io.Reader, out io.Writer, cancel context.CancelFunc) *InputWorker {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return &InputWorker{session: session, lines: lines, out: out, cancel: cancel}
}

func (w *InputWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-w.lines:
			if !ok {
				w.cancel()
				return nil
			}
			if quit := w.handle(ctx, line); quit {
				w.cancel()
				return nil
			}
		}
	}
}

func (w *InputWorker) handle(ctx context.Context, line string) bool {
	command, argument, _ := strings.Cut(strings.TrimSpace(line), " ")
	var err error
	switch command {
	case "/quit":
		return true
	case "/server":
		err = w.session.SelectServer(ctx, strings.TrimSpace(argument))
	case "/channel":
		err = w.session.SelectChannel(ctx, strings.TrimSpace(argument))
	default:
		// Validation failures already reach the view through the error surface
		_ = w.session.SendMessage(line)
		return false
	}
	if err != nil {
		fmt.Fprintln(w.out, styleError.Render("! "+err.Error()))
	}
	return false
}
