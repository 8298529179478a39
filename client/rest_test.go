package client

import (
	"chat-session/domain"
	"chat-session/errors"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var credential = domain.Credential{Value: "token-A", Source: domain.SourceStore}

// fakeChat serves the /chat endpoints and records the headers it received.
type fakeChat struct {
	mu       sync.Mutex
	auth     []string
	requests []string
	limits   []string
	status   int
}

func (f *fakeChat) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			f.auth = append(f.auth, req.Header.Get("Authorization"))
			f.requests = append(f.requests, req.Header.Get("X-Request-ID"))
			status := f.status
			f.mu.Unlock()
			if status != 0 {
				w.WriteHeader(status)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/chat/servers", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"servers": []map[string]string{
			{"id": "s1", "name": "My Server", "icon": "house"},
			{"id": "bad|id", "name": "Broken"},
			{"id": "s2", "name": "Gaming", "icon": "pad"},
		}})
	})
	r.Get("/chat/servers/{serverId}/channels", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "serverId") != "s1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{"channels": []map[string]string{
			{"id": "general", "name": "general", "type": "text"},
			{"id": "voice", "name": "Voice General", "type": "voice"},
		}})
	})
	r.Get("/chat/servers/{serverId}/channels/{channelId}/messages", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		f.limits = append(f.limits, req.URL.Query().Get("limit"))
		f.mu.Unlock()
		writeJSON(w, map[string]any{"messages": []map[string]string{
			{"id": "m1", "user": "bob", "text": "first", "timestamp": "10:00"},
			{"id": "m2", "user": "carol", "text": "second", "timestamp": "09:00"},
		}})
	})
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newAPI(t *testing.T, fake *fakeChat) *ChatAPI {
	server := httptest.NewServer(fake.router())
	t.Cleanup(server.Close)
	return NewChatAPI(server.URL+"/", 0, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestChatAPI_Servers(t *testing.T) {
	req := require.New(t)
	fake := &fakeChat{}
	api := newAPI(t, fake)

	servers, err := api.Servers(context.Background(), credential)

	req.NoError(err)
	// The entry with a reserved character is dropped
	req.Equal([]domain.ServerDescriptor{
		{ID: "s1", Name: "My Server", Icon: "house"},
		{ID: "s2", Name: "Gaming", Icon: "pad"},
	}, servers)
	req.Equal([]string{"Bearer token-A"}, fake.auth)
	_, err = uuid.Parse(fake.requests[0])
	req.NoError(err)
}

func TestChatAPI_Servers_ObjectKeyedWithEmbeddedChannels(t *testing.T) {
	req := require.New(t)
	r := chi.NewRouter()
	r.Get("/chat/servers", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"servers": map[string]any{
			"2": map[string]any{"id": "2", "name": "Gaming", "channels": []map[string]string{
				{"id": "lobby", "name": "lobby", "type": "text"},
				{"id": "bad|channel", "name": "Broken", "type": "text"},
			}},
			"1": map[string]any{"name": "My Server", "icon": "house"},
		}})
	})
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	api := NewChatAPI(server.URL, 0, logs.GetLoggerFromLevel(slog.LevelDebug))

	servers, err := api.Servers(context.Background(), credential)

	// Keys fill missing ids, servers come in key order, invalid channels are dropped
	req.NoError(err)
	req.Equal([]domain.ServerDescriptor{
		{ID: "1", Name: "My Server", Icon: "house"},
		{ID: "2", Name: "Gaming", Channels: []domain.ChannelDescriptor{
			{ID: "lobby", Name: "lobby", Kind: domain.TextChannel},
		}},
	}, servers)
}

func TestChatAPI_Channels(t *testing.T) {
	req := require.New(t)
	api := newAPI(t, &fakeChat{})

	channels, err := api.Channels(context.Background(), credential, "s1")

	req.NoError(err)
	req.Equal([]domain.ChannelDescriptor{
		{ID: "general", Name: "general", Kind: domain.TextChannel},
		{ID: "voice", Name: "Voice General", Kind: domain.VoiceChannel},
	}, channels)
}

func TestChatAPI_Messages_KeepServerOrder(t *testing.T) {
	req := require.New(t)
	fake := &fakeChat{}
	api := newAPI(t, fake)
	key := domain.Key("s1", "general")

	messages, err := api.Messages(context.Background(), credential, key, 50)

	req.NoError(err)
	req.Equal([]domain.Message{
		{ID: "m1", Author: "bob", Body: "first", Timestamp: "10:00", Key: key},
		{ID: "m2", Author: "carol", Body: "second", Timestamp: "09:00", Key: key},
	}, messages)
	req.Equal([]string{"50"}, fake.limits)
}

func TestChatAPI_Errors(t *testing.T) {
	testCases := []struct {
		description string
		status      int
		expected    error
	}{
		{description: "unauthorized expires the credential", status: http.StatusUnauthorized, expected: errors.ErrAuthExpired},
		{description: "server error is a fetch failure", status: http.StatusInternalServerError, expected: errors.ErrFetchFailure},
		{description: "forbidden is a fetch failure", status: http.StatusForbidden, expected: errors.ErrFetchFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			req := require.New(t)
			api := newAPI(t, &fakeChat{status: tc.status})

			_, err := api.Servers(context.Background(), credential)

			req.ErrorIs(err, tc.expected)
		})
	}
}

func TestChatAPI_FetchErrorCarriesStatus(t *testing.T) {
	req := require.New(t)
	api := newAPI(t, &fakeChat{})

	_, err := api.Channels(context.Background(), credential, "unknown")

	var fetchErr *FetchError
	req.ErrorAs(err, &fetchErr)
	req.Equal(http.StatusNotFound, fetchErr.StatusCode)
	req.Equal("/chat/servers/unknown/channels", fetchErr.Path)
}

func TestChatAPI_InvalidIdentifiersNeverLeave(t *testing.T) {
	req := require.New(t)
	fake := &fakeChat{}
	api := newAPI(t, fake)

	_, err := api.Channels(context.Background(), credential, "a|b")
	req.ErrorIs(err, errors.ErrInvalidIdentifier)

	_, err = api.Messages(context.Background(), credential, "nokey", 50)
	req.ErrorIs(err, errors.ErrInvalidIdentifier)
	req.Empty(fake.auth)
}

func TestChatAPI_UnreachableServer(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	api := NewChatAPI(server.URL, 0, logs.GetLoggerFromLevel(slog.LevelDebug))

	_, err := api.Servers(context.Background(), credential)

	req.ErrorIs(err, errors.ErrFetchFailure)
}
