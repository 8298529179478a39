package event

import (
	"chat-session/domain"
	"chat-session/errors"
	"fmt"
	"strings"
)

// Outbound is any frame written to the push connection.
type Outbound interface {
	Type() string
}

type SendMessage struct {
	Name      string `json:"type"`
	ServerID  string `json:"serverId" validate:"required,chatid"`
	ChannelID string `json:"channelId" validate:"required,chatid"`
	Text      string `json:"text" validate:"required"`
}

func (m SendMessage) Type() string { return m.Name }

func NewSendMessage(key domain.ChannelKey, text string) SendMessage {
	serverID, channelID, _ := domain.Split(key)
	return SendMessage{Name: TypeSendMessage, ServerID: serverID, ChannelID: channelID, Text: text}
}

type Typing struct {
	Name      string `json:"type" validate:"oneof=typing_start typing_stop"`
	ServerID  string `json:"serverId" validate:"required,chatid"`
	ChannelID string `json:"channelId" validate:"required,chatid"`
}

func (t Typing) Type() string { return t.Name }

func NewTyping(started bool, key domain.ChannelKey) Typing {
	serverID, channelID, _ := domain.Split(key)
	name := TypeTypingStop
	if started {
		name = TypeTypingStart
	}
	return Typing{Name: name, ServerID: serverID, ChannelID: channelID}
}

// ValidateOutbound checks a frame before it reaches the connection.
func ValidateOutbound(e Outbound) error {
	if m, ok := e.(SendMessage); ok && strings.TrimSpace(m.Text) == "" {
		return errors.ErrEmptyMessage
	}
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrInvalidIdentifier, e.Type(), err)
	}
	return nil
}
