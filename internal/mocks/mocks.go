// Package mocks contains simple hand-written test doubles.
// These are lightweight and suitable for unit tests without codegen.
package mocks

import (
	"net/http"
	"sync"

	"github.com/ressources-relationnelles/resrel-go/resrel"
)

// Ensure compile-time conformance.
var (
	_ resrel.TokenStore = (*TokenStoreStub)(nil)
	_ http.RoundTripper = (RoundTripperFunc)(nil)
)

// RoundTripperFunc adapts a function to http.RoundTripper, letting tests
// intercept requests without a listener.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// TokenStoreStub is a scriptable TokenStore that records every call.
type TokenStoreStub struct {
	mu sync.Mutex

	// Scripted results. When the error is nil the stub behaves like a
	// working in-memory store.
	TokenErr error
	SaveErr  error
	ClearErr error

	token  string
	Saved  []string
	Clears int
}

// NewTokenStoreStub returns a stub pre-loaded with a token.
func NewTokenStoreStub(token string) *TokenStoreStub {
	return &TokenStoreStub{token: token}
}

func (s *TokenStoreStub) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.TokenErr != nil {
		return "", s.TokenErr
	}
	return s.token, nil
}

func (s *TokenStoreStub) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.token = token
	s.Saved = append(s.Saved, token)
	return nil
}

func (s *TokenStoreStub) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.token = ""
	s.Clears++
	return nil
}

// Current returns the token the stub holds right now.
func (s *TokenStoreStub) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
