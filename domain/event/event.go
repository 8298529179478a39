// Package event defines the frames exchanged over the push connection.
// Inbound frames are decoded and validated here; unknown types are kept
// as Unknown so callers can ignore them without failing.
package event

import (
	"chat-session/domain"
	"chat-session/errors"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	TypeConnected   = "connected"
	TypeNewMessage  = "new_message"
	TypeTypingStart = "typing_start"
	TypeTypingStop  = "typing_stop"
	TypeServersData = "servers_data"
	TypeError       = "error"
	TypeUsersUpdate = "users_update"
	TypeUserJoined  = "user_joined"
	TypeUserLeft    = "user_left"
	TypeSendMessage = "send_message"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("chatid", func(fl validator.FieldLevel) bool {
		return domain.ValidIdentifier(fl.Field().String())
	})
	return v
}

// Inbound is any frame received from the push connection.
type Inbound interface {
	Type() string
}

type Connected struct {
	Username string `json:"username" validate:"required"`
}

func (Connected) Type() string { return TypeConnected }

type NewMessage struct {
	ServerID  string `json:"serverId" validate:"required,chatid"`
	ChannelID string `json:"channelId" validate:"required,chatid"`
	ID        string `json:"id" validate:"required"`
	User      string `json:"user"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

func (NewMessage) Type() string { return TypeNewMessage }

func (m NewMessage) Key() domain.ChannelKey {
	return domain.Key(m.ServerID, m.ChannelID)
}

func (m NewMessage) Message() domain.Message {
	return domain.Message{
		ID:        m.ID,
		Author:    m.User,
		Body:      m.Text,
		Timestamp: m.Timestamp,
		Key:       m.Key(),
	}
}

// TypingStart and TypingStop may be tagged with the channel they were raised in.
type TypingStart struct {
	Username  string `json:"username" validate:"required"`
	ServerID  string `json:"serverId" validate:"omitempty,chatid"`
	ChannelID string `json:"channelId" validate:"omitempty,chatid"`
}

func (TypingStart) Type() string { return TypeTypingStart }

type TypingStop struct {
	Username  string `json:"username" validate:"required"`
	ServerID  string `json:"serverId" validate:"omitempty,chatid"`
	ChannelID string `json:"channelId" validate:"omitempty,chatid"`
}

func (TypingStop) Type() string { return TypeTypingStop }

// AppliesTo reports whether a typing frame concerns the given channel.
// Untagged frames apply to whatever channel is active.
func AppliesTo(serverID, channelID string, key domain.ChannelKey) bool {
	if serverID == "" || channelID == "" {
		return true
	}
	return domain.Key(serverID, channelID) == key
}

type ChannelData struct {
	ID   string             `json:"id" validate:"required,chatid"`
	Name string             `json:"name"`
	Kind domain.ChannelKind `json:"type"`
}

func (c ChannelData) Descriptor() domain.ChannelDescriptor {
	return domain.ChannelDescriptor{ID: c.ID, Name: c.Name, Kind: c.Kind}
}

type ServerData struct {
	ID       string        `json:"id" validate:"required,chatid"`
	Name     string        `json:"name"`
	Icon     string        `json:"icon"`
	Channels []ChannelData `json:"channels" validate:"dive"`
}

// ServerList accepts both a JSON array of servers and an object keyed by server id.
type ServerList []ServerData

func (l *ServerList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var byID map[string]ServerData
		if err := json.Unmarshal(data, &byID); err != nil {
			return err
		}
		ids := lo.Keys(byID)
		sort.Strings(ids)
		servers := make([]ServerData, 0, len(ids))
		for _, id := range ids {
			server := byID[id]
			if server.ID == "" {
				server.ID = id
			}
			servers = append(servers, server)
		}
		*l = servers
		return nil
	}
	var servers []ServerData
	if err := json.Unmarshal(data, &servers); err != nil {
		return err
	}
	*l = servers
	return nil
}

type ServersData struct {
	Servers ServerList `json:"servers" validate:"dive"`
}

func (ServersData) Type() string { return TypeServersData }

func (d ServersData) Descriptors() []domain.ServerDescriptor {
	return lo.Map(d.Servers, func(s ServerData, _ int) domain.ServerDescriptor {
		return domain.ServerDescriptor{ID: s.ID, Name: s.Name, Icon: s.Icon}
	})
}

// ChannelsByServer returns the channel lists embedded in the payload, if any.
func (d ServersData) ChannelsByServer() map[string][]domain.ChannelDescriptor {
	channels := make(map[string][]domain.ChannelDescriptor)
	for _, s := range d.Servers {
		if s.Channels == nil {
			continue
		}
		channels[s.ID] = lo.Map(s.Channels, func(c ChannelData, _ int) domain.ChannelDescriptor {
			return c.Descriptor()
		})
	}
	return channels
}

type Error struct {
	Message string `json:"message"`
}

func (Error) Type() string { return TypeError }

type UsersUpdate struct {
	Users []string `json:"users"`
}

func (UsersUpdate) Type() string { return TypeUsersUpdate }

type UserJoined struct {
	Username string `json:"username" validate:"required"`
}

func (UserJoined) Type() string { return TypeUserJoined }

type UserLeft struct {
	Username string `json:"username" validate:"required"`
}

func (UserLeft) Type() string { return TypeUserLeft }

// Unknown carries the name of a frame type this client does not handle.
type Unknown struct {
	Name string
}

func (u Unknown) Type() string { return u.Name }

// Decode parses a raw push frame. Every failure wraps errors.ErrMalformedEvent.
func Decode(data []byte) (Inbound, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedEvent, err)
	}
	switch envelope.Type {
	case "":
		return nil, fmt.Errorf("%w: missing type", errors.ErrMalformedEvent)
	case TypeConnected:
		return decodeAs[Connected](data)
	case TypeNewMessage:
		return decodeAs[NewMessage](data)
	case TypeTypingStart:
		return decodeAs[TypingStart](data)
	case TypeTypingStop:
		return decodeAs[TypingStop](data)
	case TypeServersData:
		return decodeAs[ServersData](data)
	case TypeError:
		return decodeAs[Error](data)
	case TypeUsersUpdate:
		return decodeAs[UsersUpdate](data)
	case TypeUserJoined:
		return decodeAs[UserJoined](data)
	case TypeUserLeft:
		return decodeAs[UserLeft](data)
	default:
		return Unknown{Name: envelope.Type}, nil
	}
}

func decodeAs[T Inbound](data []byte) (Inbound, error) {
	var evt T
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedEvent, err)
	}
	if err := validate.Struct(evt); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrMalformedEvent, evt.Type(), err)
	}
	return evt, nil
}
