package services

import (
	"chat-session/contract"
	"chat-session/domain"
	"chat-session/domain/event"
	errs "chat-session/errors"
	"chat-session/projection"
	"chat-session/runtime"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultHistoryLimit       = 50
	DefaultValidationErrorTTL = 3000 * time.Millisecond
	DefaultServerErrorTTL     = 5000 * time.Millisecond
)

type SessionOptions struct {
	HistoryLimit       int
	Backoff            contract.IBackoffPolicy
	Clock              clock.Clock
	TypingHorizon      time.Duration
	RemoteTypingIdle   time.Duration
	ValidationErrorTTL time.Duration
	ServerErrorTTL     time.Duration
}

func (o SessionOptions) withDefaults() SessionOptions {
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = DefaultHistoryLimit
	}
	if o.Backoff == nil {
		o.Backoff = runtime.NewFixedBackoff(runtime.DefaultReconnectDelay)
	}
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.TypingHorizon <= 0 {
		o.TypingHorizon = DefaultTypingHorizon
	}
	if o.ValidationErrorTTL <= 0 {
		o.ValidationErrorTTL = DefaultValidationErrorTTL
	}
	if o.ServerErrorTTL <= 0 {
		o.ServerErrorTTL = DefaultServerErrorTTL
	}
	return o
}

// SessionController drives one chat session: credential, catalog, selection,
// history and the push stream. It is the IPushHandler of its ConnectionManager.
//
// Lock order is s.mu before the cache, the coordinator and the connection.
// None of them calls back into the controller while holding its own lock.
type SessionController struct {
	mu         sync.Mutex
	log        *slog.Logger
	resolver   contract.IAuthResolver
	api        contract.IChatAPI
	store      contract.ICredentialStore
	selection  contract.ISelectionStore
	options    SessionOptions
	cache      *projection.MessageCache
	typing     *TypingCoordinator
	errors     *ErrorSurface
	connection contract.IConnectionManager
	changes    chan struct{}

	authenticated atomic.Bool

	credential domain.Credential
	username   string
	servers    []domain.ServerDescriptor
	channels   map[string][]domain.ChannelDescriptor
	serverID   string
	channelID  string
	generation uint64
	loaded     map[domain.ChannelKey]bool
	online     []string
	closed     bool
}

func NewSessionController(
	log *slog.Logger,
	resolver contract.IAuthResolver,
	api contract.IChatAPI,
	dialer contract.IPushDialer,
	store contract.ICredentialStore,
	selection contract.ISelectionStore,
	options SessionOptions,
) *SessionController {
	options = options.withDefaults()
	s := &SessionController{
		log:       log.With("session", uuid.NewString()),
		resolver:  resolver,
		api:       api,
		store:     store,
		selection: selection,
		options:   options,
		cache:     projection.NewMessageCache(),
		changes:   make(chan struct{}, 1),
		channels:  make(map[string][]domain.ChannelDescriptor),
		loaded:    make(map[domain.ChannelKey]bool),
	}
	s.errors = NewErrorSurface(options.Clock, s.notify)
	s.typing = NewTypingCoordinator(s.log, options.Clock, options.TypingHorizon, options.RemoteTypingIdle, s.sendTyping, s.notify)
	s.connection = runtime.NewConnectionManager(s.log, dialer, s, options.Backoff, options.Clock, s.authenticated.Load)
	return s
}

// Start resolves the credential, loads the catalog and the default channel
// history, then opens the push connection.
// Without a credential the session stays unauthenticated and nothing touches the network.
// A failed catalog fetch is surfaced and returned, the push connection is opened anyway.
func (s *SessionController) Start(ctx context.Context) error {
	credential, ok := s.resolver.Resolve(ctx)
	if !ok {
		s.log.Info("No credential available, session is unauthenticated")
		s.notify()
		return errs.ErrAuthMissing
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errs.ErrSessionClosed
	}
	s.credential = credential
	s.mu.Unlock()
	s.authenticated.Store(true)
	s.log.Info("Session authenticated", "source", credential.Source)
	s.notify()

	catalogErr := s.loadCatalog(ctx, credential)
	if errors.Is(catalogErr, errs.ErrAuthExpired) {
		return catalogErr
	}
	if err := s.connection.Connect(credential); err != nil {
		return err
	}
	return catalogErr
}

// SelectServer switches to another server and to its default channel.
// The current channel is kept when the new server has a channel with the same id.
func (s *SessionController) SelectServer(ctx context.Context, serverID string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errs.ErrSessionClosed
	}
	if !lo.ContainsBy(s.servers, func(d domain.ServerDescriptor) bool { return d.ID == serverID }) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", errs.ErrUnknownServer, serverID)
	}
	// A server whose channel list failed to load can be selected again to retry
	if serverID == s.serverID && s.channelID != "" {
		s.mu.Unlock()
		return nil
	}
	current := s.channelID
	s.mu.Unlock()

	return s.activateServer(ctx, serverID, current)
}

func (s *SessionController) SelectChannel(ctx context.Context, channelID string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errs.ErrSessionClosed
	}
	if s.serverID == "" {
		s.mu.Unlock()
		return errs.ErrNoSelection
	}
	if !lo.ContainsBy(s.channels[s.serverID], func(d domain.ChannelDescriptor) bool { return d.ID == channelID }) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", errs.ErrUnknownChannel, channelID)
	}
	if channelID == s.channelID {
		s.mu.Unlock()
		return nil
	}
	generation := s.generation
	s.mu.Unlock()

	return s.activateChannel(ctx, generation, channelID)
}

// SendMessage transmits text to the active channel.
// Validation failures are shown on the error surface and nothing is sent.
// Whitespace-only text is rejected silently.
func (s *SessionController) SendMessage(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.ErrEmptyMessage
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errs.ErrSessionClosed
	}
	key := s.activeKeyLocked()
	s.mu.Unlock()

	if key == "" {
		return s.reject(errs.ErrNoSelection)
	}
	if s.connection.State() != domain.Connected {
		return s.reject(errs.ErrNotConnected)
	}
	msg := event.NewSendMessage(key, text)
	if err := event.ValidateOutbound(msg); err != nil {
		return s.reject(err)
	}
	if err := s.connection.Send(msg); err != nil {
		s.log.Warn("Failed to send message", "channel", key, "error", err)
		return s.reject(err)
	}
	s.typing.Clear()
	return nil
}

// OnInput reports the current content of the input box.
func (s *SessionController) OnInput(text string) {
	s.typing.OnLocalInput(text != "")
}

// View returns a snapshot of everything the presentation layer shows.
func (s *SessionController) View() domain.View {
	s.mu.Lock()
	view := domain.View{
		Authenticated: s.authenticated.Load(),
		Username:      s.username,
		Servers:       append([]domain.ServerDescriptor(nil), s.servers...),
		Channels:      append([]domain.ChannelDescriptor(nil), s.channels[s.serverID]...),
		ServerID:      s.serverID,
		ChannelID:     s.channelID,
		OnlineUsers:   append([]string(nil), s.online...),
	}
	key := s.activeKeyLocked()
	s.mu.Unlock()

	view.Connection = s.connection.State()
	view.Error = s.errors.Current()
	if key != "" {
		view.Messages = s.cache.Get(key)
		view.Typing = s.typing.Users()
	}
	return view
}

// Changes signals that the view may have changed. Notifications are coalesced:
// a reader always gets at least one signal after the last change. The channel is never closed.
func (s *SessionController) Changes() <-chan struct{} {
	return s.changes
}

// Cache exposes the per-channel history.
func (s *SessionController) Cache() *projection.MessageCache {
	return s.cache
}

// Close disconnects and cancels every timer. The session cannot be restarted.
func (s *SessionController) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.generation++
	s.mu.Unlock()

	s.connection.Disconnect()
	s.typing.Stop()
	s.errors.Stop()
	s.log.Info("Session closed")
}

func (s *SessionController) OnState(state domain.ConnectionState) {
	s.log.Debug("Connection state changed", "state", state.String())
	s.notify()
}

func (s *SessionController) OnError(err error) {
	if errors.Is(err, errs.ErrAuthExpired) {
		s.log.Warn("Push handshake rejected, credential expired")
		s.deauthenticate()
		return
	}
	s.log.Warn("Push connection error", "error", err)
}

func (s *SessionController) OnEvent(evt event.Inbound) {
	switch e := evt.(type) {
	case event.Connected:
		s.mu.Lock()
		s.username = e.Username
		s.mu.Unlock()
		s.typing.SetLocalUser(e.Username)
		s.log.Info("Joined chat", "username", e.Username)
	case event.NewMessage:
		s.cache.Append(e.Key(), e.Message())
	case event.TypingStart:
		if s.typingApplies(e.ServerID, e.ChannelID) {
			s.typing.OnRemoteStart(e.Username)
		}
		return
	case event.TypingStop:
		if s.typingApplies(e.ServerID, e.ChannelID) {
			s.typing.OnRemoteStop(e.Username)
		}
		return
	case event.ServersData:
		s.applyServersData(e)
	case event.Error:
		s.errors.Set(e.Message, s.options.ServerErrorTTL)
		return
	case event.UsersUpdate:
		s.mu.Lock()
		s.online = lo.Uniq(e.Users)
		s.mu.Unlock()
	case event.UserJoined:
		s.mu.Lock()
		if !lo.Contains(s.online, e.Username) {
			s.online = append(s.online, e.Username)
		}
		s.mu.Unlock()
	case event.UserLeft:
		s.mu.Lock()
		s.online = lo.Without(s.online, e.Username)
		s.mu.Unlock()
	default:
		s.log.Debug("Ignoring push event", "type", evt.Type())
		return
	}
	s.notify()
}

func (s *SessionController) loadCatalog(ctx context.Context, credential domain.Credential) error {
	servers, err := s.api.Servers(ctx, credential)
	if err != nil {
		return s.fail("failed to load servers", fmt.Errorf("fetch servers: %w", err))
	}
	preferredServer, preferredChannel, hasPreferred := s.selection.Take()

	s.mu.Lock()
	s.servers = lo.Map(servers, func(d domain.ServerDescriptor, _ int) domain.ServerDescriptor {
		if d.Channels != nil {
			s.channels[d.ID] = d.Channels
		}
		d.Channels = nil
		return d
	})
	s.mu.Unlock()
	s.notify()

	if len(servers) == 0 {
		s.log.Info("Catalog is empty")
		return nil
	}
	serverID, channelID := servers[0].ID, ""
	if hasPreferred && lo.ContainsBy(servers, func(d domain.ServerDescriptor) bool { return d.ID == preferredServer }) {
		serverID, channelID = preferredServer, preferredChannel
	}
	return s.activateServer(ctx, serverID, channelID)
}

// activateServer selects serverID, fetching its channels if needed, then
// selects preferredChannel when the server has it, else the default channel.
func (s *SessionController) activateServer(ctx context.Context, serverID, preferredChannel string) error {
	s.mu.Lock()
	s.serverID = serverID
	s.channelID = ""
	s.generation++
	generation := s.generation
	credential := s.credential
	channels, cached := s.channels[serverID]
	s.mu.Unlock()
	s.typing.Activate("")
	s.notify()

	if !cached {
		fetched, err := s.api.Channels(ctx, credential, serverID)
		if err != nil {
			return s.fail("failed to load channels", fmt.Errorf("fetch channels of %s: %w", serverID, err))
		}
		s.mu.Lock()
		if _, known := s.channels[serverID]; !known && s.authenticated.Load() {
			s.channels[serverID] = fetched
		}
		if generation != s.generation {
			s.mu.Unlock()
			s.log.Debug("Selection moved, channel list cached only", "server", serverID)
			return nil
		}
		s.mu.Unlock()
		channels = fetched
	}

	channelID := defaultChannel(channels, preferredChannel)
	if channelID == "" {
		s.notify()
		return nil
	}
	return s.activateChannel(ctx, generation, channelID)
}

// activateChannel is a no-op when the selection moved past expected.
func (s *SessionController) activateChannel(ctx context.Context, expected uint64, channelID string) error {
	s.mu.Lock()
	if expected != s.generation {
		s.mu.Unlock()
		return nil
	}
	s.channelID = channelID
	s.generation++
	generation := s.generation
	serverID := s.serverID
	key := domain.Key(serverID, channelID)
	credential := s.credential
	loaded := s.loaded[key]
	s.mu.Unlock()

	s.selection.Save(serverID, channelID)
	s.typing.Activate(key)
	s.notify()
	if loaded {
		return nil
	}
	return s.loadHistory(ctx, generation, credential, key)
}

func (s *SessionController) loadHistory(ctx context.Context, generation uint64, credential domain.Credential, key domain.ChannelKey) error {
	mark := s.cache.Mark()
	messages, err := s.api.Messages(ctx, credential, key, s.options.HistoryLimit)
	if err != nil {
		return s.fail("failed to load messages", fmt.Errorf("fetch history of %s: %w", key, err))
	}

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		s.log.Debug("Discarding stale history", "channel", key)
		return nil
	}
	s.cache.MergeHistory(key, messages, mark)
	s.loaded[key] = true
	s.mu.Unlock()

	s.log.Debug("History loaded", "channel", key, "count", len(messages))
	s.notify()
	return nil
}

func (s *SessionController) applyServersData(e event.ServersData) {
	descriptors := e.Descriptors()
	embedded := e.ChannelsByServer()

	s.mu.Lock()
	s.servers = descriptors
	for id, channels := range embedded {
		s.channels[id] = channels
	}
	dropped := s.serverID != "" && !lo.ContainsBy(descriptors, func(d domain.ServerDescriptor) bool { return d.ID == s.serverID })
	if dropped {
		s.log.Info("Selected server left the catalog", "server", s.serverID)
		s.serverID, s.channelID = "", ""
		s.generation++
	}
	s.mu.Unlock()

	if dropped {
		s.typing.Activate("")
	}
}

// fail routes a REST error: a rejected credential ends the session,
// anything else is shown for the server error TTL.
func (s *SessionController) fail(surface string, err error) error {
	switch {
	case errors.Is(err, errs.ErrAuthExpired):
		s.log.Warn("Credential rejected by chat API", "error", err)
		s.deauthenticate()
	case errors.Is(err, context.Canceled):
		s.log.Debug("Request cancelled", "error", err)
	default:
		s.log.Error("Chat API request failed", "error", err)
		s.errors.Set(surface, s.options.ServerErrorTTL)
	}
	return err
}

func (s *SessionController) reject(err error) error {
	s.errors.Set(err.Error(), s.options.ValidationErrorTTL)
	return err
}

// deauthenticate drops the credential everywhere. There is no automatic retry.
func (s *SessionController) deauthenticate() {
	if !s.authenticated.Swap(false) {
		return
	}
	s.mu.Lock()
	s.credential = domain.Credential{}
	s.username = ""
	s.servers = nil
	s.channels = make(map[string][]domain.ChannelDescriptor)
	s.loaded = make(map[domain.ChannelKey]bool)
	s.serverID, s.channelID = "", ""
	s.online = nil
	s.generation++
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.log.Warn("Failed to clear credential store", "error", err)
	}
	s.connection.Disconnect()
	s.typing.Stop()
	s.cache.Clear()
	s.log.Info("Session de-authenticated")
	s.notify()
}

func (s *SessionController) typingApplies(serverID, channelID string) bool {
	s.mu.Lock()
	key := s.activeKeyLocked()
	s.mu.Unlock()
	return key != "" && event.AppliesTo(serverID, channelID, key)
}

func (s *SessionController) sendTyping(signal TypingSignal) {
	if signal.Key == "" {
		return
	}
	if err := s.connection.Send(event.NewTyping(signal.Started, signal.Key)); err != nil {
		s.log.Warn("Failed to send typing signal", "channel", signal.Key, "error", err)
	}
}

func (s *SessionController) activeKeyLocked() domain.ChannelKey {
	if s.serverID == "" || s.channelID == "" {
		return ""
	}
	return domain.Key(s.serverID, s.channelID)
}

func (s *SessionController) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// defaultChannel picks preferred when listed, else the first text channel, else the first one.
func defaultChannel(channels []domain.ChannelDescriptor, preferred string) string {
	if preferred != "" && lo.ContainsBy(channels, func(c domain.ChannelDescriptor) bool { return c.ID == preferred }) {
		return preferred
	}
	if text, ok := lo.Find(channels, func(c domain.ChannelDescriptor) bool { return c.Kind == domain.TextChannel }); ok {
		return text.ID
	}
	if len(channels) > 0 {
		return channels[0].ID
	}
	return ""
}
