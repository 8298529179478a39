package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Authentication
	ErrAuthMissing        = fmt.Errorf("no credential could be resolved")
	ErrAuthExpired        = fmt.Errorf("credential rejected by server")
	ErrEmptyCredential    = fmt.Errorf("credential is empty")
	ErrCredentialNotFound = fmt.Errorf("credential not found in store")

	// Transport
	ErrFetchFailure   = fmt.Errorf("fetch failure")
	ErrMalformedEvent = fmt.Errorf("malformed push event")
	ErrNotConnected   = fmt.Errorf("not connected to chat server")

	// Validation
	ErrEmptyMessage      = fmt.Errorf("message is empty")
	ErrNoSelection       = fmt.Errorf("select a server and channel")
	ErrUnknownServer     = fmt.Errorf("unknown server")
	ErrUnknownChannel    = fmt.Errorf("unknown channel")
	ErrInvalidIdentifier = fmt.Errorf("invalid identifier")

	ErrSessionClosed = fmt.Errorf("session is closed")
)
