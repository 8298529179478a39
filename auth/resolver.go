// Package auth resolves the credential used by the chat session.
package auth

import (
	"chat-session/contract"
	"chat-session/domain"
	errs "chat-session/errors"
	"context"
	"errors"
	"log/slog"
	"time"
)

// Resolver looks for a credential, in order, in the launch address,
// the durable store and the optional parent store.
// A credential found in the launch address or the parent store is written
// through to the durable store. Store failures are logged, never returned.
type Resolver struct {
	log       *slog.Logger
	bootstrap contract.IBootstrapSource
	store     contract.ICredentialStore
	parent    contract.ICredentialStore
	now       func() time.Time
}

// NewResolver builds a resolver. bootstrap and parent may be nil.
func NewResolver(log *slog.Logger, bootstrap contract.IBootstrapSource, store, parent contract.ICredentialStore) *Resolver {
	return &Resolver{log: log, bootstrap: bootstrap, store: store, parent: parent, now: time.Now}
}

func (r *Resolver) Resolve(ctx context.Context) (domain.Credential, bool) {
	if ctx.Err() != nil {
		return domain.Credential{}, false
	}
	if value, ok := r.fromBootstrap(); ok {
		r.persist(value)
		return r.found(value, domain.SourceBootstrap), true
	}
	if value, ok := r.fromStore(); ok {
		return r.found(value, domain.SourceStore), true
	}
	if value, ok := r.fromParent(); ok {
		r.persist(value)
		return r.found(value, domain.SourceParent), true
	}
	r.log.Info("No credential found")
	return domain.Credential{}, false
}

func (r *Resolver) fromBootstrap() (string, bool) {
	if r.bootstrap == nil {
		return "", false
	}
	value, ok := r.bootstrap.Token()
	if !ok {
		return "", false
	}
	// The address must not keep the credential, even an unusable one
	r.bootstrap.Strip()
	if err := ValidateCredential(value); err != nil {
		r.log.Warn("Ignoring launch credential", "error", err)
		return "", false
	}
	return value, true
}

func (r *Resolver) fromStore() (string, bool) {
	value, err := r.store.Read()
	switch {
	case err == nil:
		return value, value != ""
	case errors.Is(err, errs.ErrCredentialNotFound):
		return "", false
	default:
		r.log.Warn("Failed to read credential store", "error", err)
		return "", false
	}
}

// fromParent treats every failure as a miss, panics included.
func (r *Resolver) fromParent() (value string, ok bool) {
	if r.parent == nil {
		return "", false
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Debug("Parent store unavailable", "panic", rec)
			value, ok = "", false
		}
	}()
	value, err := r.parent.Read()
	if err != nil {
		r.log.Debug("Parent store miss", "error", err)
		return "", false
	}
	return value, value != ""
}

func (r *Resolver) persist(value string) {
	if err := r.store.Write(value); err != nil {
		r.log.Warn("Failed to persist credential", "error", err)
	}
}

func (r *Resolver) found(value string, source domain.CredentialSource) domain.Credential {
	attrs := []any{"source", source}
	if claims, ok := Inspect(value); ok {
		attrs = append(attrs, "subject", claims.Subject, "expires_at", claims.ExpiresAt)
		if claims.Expired(r.now()) {
			r.log.Warn("Credential looks expired, the server will decide", attrs...)
		}
	}
	r.log.Info("Credential resolved", attrs...)
	return domain.Credential{Value: value, Source: source}
}
