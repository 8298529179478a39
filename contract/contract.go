//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-session/domain"
	"chat-session/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ICredentialStore is a key-value slot holding one credential.
// Read returns errors.ErrCredentialNotFound on a miss.
type ICredentialStore interface {
	Read() (string, error)
	Write(value string) error
	Clear() error
}

// IBootstrapSource is the launch address that may carry a one-shot credential.
type IBootstrapSource interface {
	Token() (string, bool)
	Strip()
}

// ISelectionStore holds a one-shot preferred server/channel, consumed on first use.
type ISelectionStore interface {
	Take() (serverID, channelID string, ok bool)
	Save(serverID, channelID string)
}

type IAuthResolver interface {
	Resolve(ctx context.Context) (domain.Credential, bool)
}

// IChatAPI is the REST side of the chat server.
type IChatAPI interface {
	Servers(ctx context.Context, credential domain.Credential) ([]domain.ServerDescriptor, error)
	Channels(ctx context.Context, credential domain.Credential, serverID string) ([]domain.ChannelDescriptor, error)
	Messages(ctx context.Context, credential domain.Credential, key domain.ChannelKey, limit int) ([]domain.Message, error)
}

// IPushConn is an established push connection.
// ReadMessage blocks until a frame arrives or the connection closes.
type IPushConn interface {
	ReadMessage() ([]byte, error)
	WriteJSON(v any) error
	Close() error
}

type IPushDialer interface {
	Dial(ctx context.Context, credential domain.Credential) (IPushConn, error)
}

// IPushHandler receives everything the ConnectionManager observes.
type IPushHandler interface {
	OnState(state domain.ConnectionState)
	OnEvent(evt event.Inbound)
	OnError(err error)
}

type IConnectionManager interface {
	Connect(credential domain.Credential) error
	Send(evt event.Outbound) error
	State() domain.ConnectionState
	Disconnect()
}

// IBackoffPolicy gives the delay before reconnect attempt n (starting at 1).
// ok is false once the policy gives up.
type IBackoffPolicy interface {
	Next(attempt int) (delay time.Duration, ok bool)
}
