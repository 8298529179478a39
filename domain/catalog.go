// Package domain contains core concepts of the chat session.
// This file defines the catalog: servers and the channels they own.
package domain

type ChannelKind string

const (
	TextChannel  ChannelKind = "text"
	VoiceChannel ChannelKind = "voice"
)

type ServerDescriptor struct {
	ID   string
	Name string
	Icon string
	// Channels is the channel list embedded in the catalog payload, nil when none was sent.
	Channels []ChannelDescriptor
}

type ChannelDescriptor struct {
	ID   string
	Name string
	Kind ChannelKind
}
