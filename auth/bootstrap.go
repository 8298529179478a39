package auth

import (
	"fmt"
	"net/url"
	"sync"
)

// TokenParam is the query parameter carrying a one-shot credential.
const TokenParam = "token"

// LaunchAddress is the address the client was opened with.
// Its token parameter is consumed once, then stripped.
type LaunchAddress struct {
	mu  sync.Mutex
	url *url.URL
}

func NewLaunchAddress(raw string) (*LaunchAddress, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse launch address: %w", err)
	}
	return &LaunchAddress{url: u}, nil
}

func (a *LaunchAddress) Token() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	value := a.url.Query().Get(TokenParam)
	return value, value != ""
}

// Strip removes the token parameter, leaving the rest of the address untouched.
func (a *LaunchAddress) Strip() {
	a.mu.Lock()
	defer a.mu.Unlock()
	query := a.url.Query()
	if !query.Has(TokenParam) {
		return
	}
	query.Del(TokenParam)
	a.url.RawQuery = query.Encode()
}

func (a *LaunchAddress) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.url.String()
}
