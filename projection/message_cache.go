// Package projection builds the local per-channel message history.
// It merges REST history pages with messages delivered by the push stream.
// Does not emit events or interact with UI directly.
package projection

import (
	"chat-session/domain"
	"sync"

	"github.com/samber/lo"
)

type entry struct {
	message domain.Message
	seq     uint64
}

// MessageCache holds the ordered history of every channel seen during the session.
// Ordering is arrival order: history pages are installed as a block, never sorted by timestamp.
// Every entry is tagged with a local sequence number so a history page can be merged
// behind push messages that arrived while the page was in flight.
type MessageCache struct {
	mu      sync.RWMutex
	seq     uint64
	entries map[domain.ChannelKey][]entry
}

func NewMessageCache() *MessageCache {
	return &MessageCache{entries: make(map[domain.ChannelKey][]entry)}
}

// Get returns a copy of the channel history, empty if the channel was never seen.
func (c *MessageCache) Get(key domain.ChannelKey) []domain.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Map(c.entries[key], func(e entry, _ int) domain.Message {
		return e.message
	})
}

// Mark returns the current sequence number.
// Take it right before issuing a history fetch and hand it back to MergeHistory.
func (c *MessageCache) Mark() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seq
}

// ReplaceHistory installs a history page, overwriting any prior content for the key.
func (c *MessageCache) ReplaceHistory(key domain.ChannelKey, messages []domain.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = c.tag(key, messages)
}

// MergeHistory installs a history page fetched after mark was taken.
// Entries appended after mark stay behind the page, older ones are dropped.
// A retained entry whose ID is already in the page is dropped as well.
func (c *MessageCache) MergeHistory(key domain.ChannelKey, messages []domain.Message, mark uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	inPage := lo.SliceToMap(messages, func(m domain.Message) (string, struct{}) {
		return m.ID, struct{}{}
	})
	retained := lo.Filter(c.entries[key], func(e entry, _ int) bool {
		if e.seq <= mark {
			return false
		}
		_, dup := inPage[e.message.ID]
		return !dup || e.message.ID == ""
	})

	merged := make([]entry, 0, len(messages)+len(retained))
	merged = append(merged, c.tag(key, messages)...)
	c.entries[key] = append(merged, retained...)
}

// Append adds a message at the end of the channel, regardless of its timestamp.
func (c *MessageCache) Append(key domain.ChannelKey, message domain.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	message.Key = key
	c.seq++
	c.entries[key] = append(c.entries[key], entry{message: message, seq: c.seq})
}

func (c *MessageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[domain.ChannelKey][]entry)
}

// tag must be called with the lock held.
func (c *MessageCache) tag(key domain.ChannelKey, messages []domain.Message) []entry {
	tagged := make([]entry, 0, len(messages))
	for _, m := range messages {
		m.Key = key
		c.seq++
		tagged = append(tagged, entry{message: m, seq: c.seq})
	}
	return tagged
}
