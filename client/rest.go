// Package client is the REST side of the chat server.
package client

import (
	"chat-session/domain"
	"chat-session/domain/event"
	"chat-session/errors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultTimeout  = 10 * time.Second
	maxResponseSize = 4 << 20
)

// FetchError is a non-2xx answer other than 401. It matches errors.ErrFetchFailure.
type FetchError struct {
	Method     string
	Path       string
	StatusCode int
	RequestID  string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s returned %d (request %s)", e.Method, e.Path, e.StatusCode, e.RequestID)
}

func (e *FetchError) Is(target error) bool {
	return target == errors.ErrFetchFailure
}

type messageDTO struct {
	ID        string `json:"id" validate:"required"`
	User      string `json:"user"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// ChatAPI calls the /chat endpoints with the session credential as bearer token.
type ChatAPI struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	validate   *validator.Validate
}

func NewChatAPI(baseURL string, timeout time.Duration, log *slog.Logger) *ChatAPI {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	v := validator.New()
	_ = v.RegisterValidation("chatid", func(fl validator.FieldLevel) bool {
		return domain.ValidIdentifier(fl.Field().String())
	})
	return &ChatAPI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		validate:   v,
	}
}

// Servers fetches the catalog. The server list may be an array or an object keyed by server id,
// and each server may embed its channel list.
func (c *ChatAPI) Servers(ctx context.Context, credential domain.Credential) ([]domain.ServerDescriptor, error) {
	var body struct {
		Servers event.ServerList `json:"servers"`
	}
	if err := c.get(ctx, credential, "/chat/servers", nil, &body); err != nil {
		return nil, err
	}
	servers := make([]domain.ServerDescriptor, 0, len(body.Servers))
	for _, server := range body.Servers {
		embedded := server.Channels
		server.Channels = nil
		if !accept(c, server, "server") {
			continue
		}
		descriptor := domain.ServerDescriptor{ID: server.ID, Name: server.Name, Icon: server.Icon}
		if embedded != nil {
			descriptor.Channels = channelDescriptors(valid(c, embedded, "channel"))
		}
		servers = append(servers, descriptor)
	}
	return servers, nil
}

func (c *ChatAPI) Channels(ctx context.Context, credential domain.Credential, serverID string) ([]domain.ChannelDescriptor, error) {
	if !domain.ValidIdentifier(serverID) {
		return nil, fmt.Errorf("%w: server %q", errors.ErrInvalidIdentifier, serverID)
	}
	var body struct {
		Channels []event.ChannelData `json:"channels"`
	}
	path := fmt.Sprintf("/chat/servers/%s/channels", url.PathEscape(serverID))
	if err := c.get(ctx, credential, path, nil, &body); err != nil {
		return nil, err
	}
	return channelDescriptors(valid(c, body.Channels, "channel")), nil
}

// Messages fetches the latest history page of a channel, oldest first as sent by the server.
func (c *ChatAPI) Messages(ctx context.Context, credential domain.Credential, key domain.ChannelKey, limit int) ([]domain.Message, error) {
	serverID, channelID, ok := domain.Split(key)
	if !ok {
		return nil, fmt.Errorf("%w: channel key %q", errors.ErrInvalidIdentifier, key)
	}
	var body struct {
		Messages []messageDTO `json:"messages"`
	}
	path := fmt.Sprintf("/chat/servers/%s/channels/%s/messages", url.PathEscape(serverID), url.PathEscape(channelID))
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}
	if err := c.get(ctx, credential, path, query, &body); err != nil {
		return nil, err
	}
	messages := valid(c, body.Messages, "message")
	return lo.Map(messages, func(m messageDTO, _ int) domain.Message {
		return domain.Message{ID: m.ID, Author: m.User, Body: m.Text, Timestamp: m.Timestamp, Key: key}
	}), nil
}

func (c *ChatAPI) get(ctx context.Context, credential domain.Credential, path string, query url.Values, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request %s: %w", path, err)
	}
	requestID := uuid.NewString()
	request.Header.Set("Authorization", "Bearer "+credential.Value)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", errors.ErrFetchFailure, path, err)
	}
	defer response.Body.Close()
	c.log.Debug("Chat API call", "path", path, "status", response.StatusCode,
		"request_id", requestID, "elapsed", time.Since(start))

	switch {
	case response.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("GET %s: %w", path, errors.ErrAuthExpired)
	case response.StatusCode < 200 || response.StatusCode >= 300:
		return &FetchError{Method: http.MethodGet, Path: path, StatusCode: response.StatusCode, RequestID: requestID}
	}

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", errors.ErrFetchFailure, path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", errors.ErrFetchFailure, path, err)
	}
	return nil
}

// valid drops the entries the validator rejects.
func valid[T any](c *ChatAPI, items []T, kind string) []T {
	return lo.Filter(items, func(item T, _ int) bool { return accept(c, item, kind) })
}

func accept[T any](c *ChatAPI, item T, kind string) bool {
	if err := c.validate.Struct(item); err != nil {
		c.log.Warn("Dropping invalid entry", "kind", kind, "error", err)
		return false
	}
	return true
}

func channelDescriptors(channels []event.ChannelData) []domain.ChannelDescriptor {
	return lo.Map(channels, func(ch event.ChannelData, _ int) domain.ChannelDescriptor {
		return ch.Descriptor()
	})
}
