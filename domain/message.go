// Package domain contains core concepts of the chat session.
// This file defines Message values as seen by the client.
// Messages are immutable once cached.
package domain

// Message is a chat message as delivered by the history endpoint or the push stream.
// Timestamp is kept as the display string the server produced.
type Message struct {
	ID        string
	Author    string
	Body      string
	Timestamp string
	Key       ChannelKey
}
