package repositories

import "sync"

// SelectionStore is the session-scoped preferred server/channel.
// It is consumed by the first Take.
type SelectionStore struct {
	mu        sync.Mutex
	serverID  string
	channelID string
	set       bool
}

// NewSelectionStore seeds the store. Empty identifiers leave it empty.
func NewSelectionStore(serverID, channelID string) *SelectionStore {
	s := &SelectionStore{}
	if serverID != "" {
		s.Save(serverID, channelID)
	}
	return s
}

func (s *SelectionStore) Take() (string, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", "", false
	}
	s.set = false
	return s.serverID, s.channelID, true
}

func (s *SelectionStore) Save(serverID, channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serverID, s.channelID, s.set = serverID, channelID, true
}
