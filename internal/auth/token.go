package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// DefaultScheme is the authorization scheme Open Klant expects.
const DefaultScheme = "Token"

// Static errors for err113 compliance.
var (
	ErrNoToken = errors.New("no API token configured")
)

// Token is an API credential together with its authorization scheme.
type Token struct {
	Value  string
	Scheme string
}

// Valid reports whether the token can be sent.
func (t *Token) Valid() bool {
	return t != nil && strings.TrimSpace(t.Value) != ""
}

// Header formats the token as an Authorization header value.
func (t *Token) Header() string {
	scheme := t.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}

	return scheme + " " + t.Value
}

// TokenManager supplies the token for each request. A nil token with a nil
// error means the request is sent without authentication.
type TokenManager interface {
	GetToken(ctx context.Context) (*Token, error)
}

// TokenStore holds a token that may be replaced while requests are in flight.
type TokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns a copy of the current token, or nil.
func (s *TokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.token == nil {
		return nil
	}

	token := *s.token

	return &token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// Clear removes the current token.
func (s *TokenStore) Clear() {
	s.Set(nil)
}

// StaticTokenManager serves a fixed token that can be rotated with SetToken.
type StaticTokenManager struct {
	store  *TokenStore
	scheme string
}

// NewStaticTokenManager creates a manager for value. An empty value
// produces unauthenticated requests.
func NewStaticTokenManager(value, scheme string) *StaticTokenManager {
	m := &StaticTokenManager{store: NewTokenStore(), scheme: scheme}
	m.SetToken(value)

	return m
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(_ context.Context) (*Token, error) {
	token := m.store.Get()
	if !token.Valid() {
		return nil, nil //nolint:nilnil // no token means no Authorization header
	}

	return token, nil
}

// SetToken rotates the token used by subsequent requests.
func (m *StaticTokenManager) SetToken(value string) {
	if value == "" {
		m.store.Clear()

		return
	}

	m.store.Set(&Token{Value: value, Scheme: m.scheme})
}

// EnvTokenManager reads the token from an environment variable on every
// request, so a rotated secret is picked up without a restart.
type EnvTokenManager struct {
	variable string
	scheme   string
	lookup   func(string) (string, bool)
}

// NewEnvTokenManager creates a manager reading variable.
func NewEnvTokenManager(variable, scheme string) *EnvTokenManager {
	return &EnvTokenManager{variable: variable, scheme: scheme, lookup: os.LookupEnv}
}

// GetToken implements TokenManager. An unset or empty variable is an error.
func (m *EnvTokenManager) GetToken(_ context.Context) (*Token, error) {
	value, ok := m.lookup(m.variable)
	if !ok || strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("reading %s: %w", m.variable, ErrNoToken)
	}

	return &Token{Value: value, Scheme: m.scheme}, nil
}
