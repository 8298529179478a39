package domain

import "strings"

// KeySeparator is reserved: identifiers containing it are rejected.
const KeySeparator = "|"

// ChannelKey indexes cached history for a (server, channel) pair.
type ChannelKey string

// Key derives the ChannelKey of a channel. Equal pairs always give equal keys.
func Key(serverID, channelID string) ChannelKey {
	return ChannelKey(serverID + KeySeparator + channelID)
}

// Split is the inverse of Key.
func Split(key ChannelKey) (serverID, channelID string, ok bool) {
	serverID, channelID, ok = strings.Cut(string(key), KeySeparator)
	if !ok || serverID == "" || channelID == "" {
		return "", "", false
	}
	return serverID, channelID, true
}

// ValidIdentifier reports whether id can take part in a ChannelKey.
func ValidIdentifier(id string) bool {
	return id != "" && !strings.Contains(id, KeySeparator)
}

func (k ChannelKey) String() string {
	return string(k)
}
