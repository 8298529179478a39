package domain

// View is the snapshot handed to the presentation layer.
// Slices are copies and can be kept by the caller.
type View struct {
	Authenticated bool
	Username      string
	Connection    ConnectionState
	Servers       []ServerDescriptor
	Channels      []ChannelDescriptor
	ServerID      string
	ChannelID     string
	Messages      []Message
	Typing        []string
	OnlineUsers   []string
	Error         string
}
