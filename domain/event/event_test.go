package event

import (
	"chat-session/domain"
	"chat-session/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_NewMessage(t *testing.T) {
	req := require.New(t)
	raw := []byte(`{"type":"new_message","serverId":"s1","channelId":"general","id":"m1","user":"alice","text":"hi","timestamp":"12:00"}`)

	evt, err := Decode(raw)
	req.NoError(err)

	msg, ok := evt.(NewMessage)
	req.True(ok)
	req.Equal(domain.ChannelKey("s1|general"), msg.Key())
	req.Equal(domain.Message{
		ID:        "m1",
		Author:    "alice",
		Body:      "hi",
		Timestamp: "12:00",
		Key:       "s1|general",
	}, msg.Message())
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		description string
		raw         string
	}{
		{"Not JSON", `hello`},
		{"Missing type", `{"username":"bob"}`},
		{"Message without channel", `{"type":"new_message","serverId":"s1","id":"m1"}`},
		{"Message with reserved separator", `{"type":"new_message","serverId":"s|1","channelId":"general","id":"m1"}`},
		{"Typing without username", `{"type":"typing_start"}`},
		{"Wrong field type", `{"type":"users_update","users":"bob"}`},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			require.ErrorIs(t, err, errors.ErrMalformedEvent)
		})
	}
}

func TestDecode_UnknownTypeIsNotAnError(t *testing.T) {
	req := require.New(t)

	evt, err := Decode([]byte(`{"type":"user_permissions","accessible_servers":["1"]}`))
	req.NoError(err)
	req.Equal(Unknown{Name: "user_permissions"}, evt)
}

func TestDecode_ServersData_ArrayForm(t *testing.T) {
	req := require.New(t)

	evt, err := Decode([]byte(`{"type":"servers_data","servers":[{"id":"s1","name":"My Server","icon":"H"}]}`))
	req.NoError(err)

	data := evt.(ServersData)
	req.Equal([]domain.ServerDescriptor{{ID: "s1", Name: "My Server", Icon: "H"}}, data.Descriptors())
	req.Empty(data.ChannelsByServer())
}

func TestDecode_ServersData_ObjectFormWithChannels(t *testing.T) {
	req := require.New(t)
	raw := []byte(`{"type":"servers_data","servers":{
		"2":{"id":"2","name":"Gaming","icon":"G","channels":[{"id":"general","name":"general","type":"text"}]},
		"1":{"name":"My Server","icon":"H","channels":[]}
	}}`)

	evt, err := Decode(raw)
	req.NoError(err)

	data := evt.(ServersData)
	req.Equal([]domain.ServerDescriptor{
		{ID: "1", Name: "My Server", Icon: "H"},
		{ID: "2", Name: "Gaming", Icon: "G"},
	}, data.Descriptors())
	channels := data.ChannelsByServer()
	req.Len(channels, 2)
	req.Empty(channels["1"])
	req.Equal([]domain.ChannelDescriptor{{ID: "general", Name: "general", Kind: domain.TextChannel}}, channels["2"])
}

func TestAppliesTo(t *testing.T) {
	req := require.New(t)
	key := domain.Key("s1", "general")

	req.True(AppliesTo("", "", key))
	req.True(AppliesTo("s1", "general", key))
	req.False(AppliesTo("s1", "random", key))
}

func TestValidateOutbound(t *testing.T) {
	req := require.New(t)
	key := domain.Key("s1", "general")

	req.NoError(ValidateOutbound(NewSendMessage(key, "hello")))
	req.NoError(ValidateOutbound(NewTyping(true, key)))
	req.ErrorIs(ValidateOutbound(NewSendMessage(key, "   ")), errors.ErrEmptyMessage)
	req.ErrorIs(ValidateOutbound(NewSendMessage("", "hello")), errors.ErrInvalidIdentifier)

	typing := NewTyping(false, key)
	req.Equal(TypeTypingStop, typing.Type())
	req.Equal("s1", typing.ServerID)
	req.Equal("general", typing.ChannelID)
}

func TestValidateOutbound_LongTextIsAccepted(t *testing.T) {
	req := require.New(t)
	key := domain.Key("s1", "general")

	// No length cap is applied to the message body
	msg := NewSendMessage(key, strings.Repeat("a", 20000))

	req.NoError(ValidateOutbound(msg))
}
