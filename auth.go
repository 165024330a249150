package autodoc

import (
	"context"
	"errors"
)

// ErrNoToken is returned by TokenStore implementations when no bearer token
// has been saved.
var ErrNoToken = errors.New("no token stored")

// TokenStore persists the bearer token between sessions. Implementations
// must never echo a stored token back to the user; updates always require a
// fresh value.
type TokenStore interface {
	// Token returns the stored bearer token, or ErrNoToken.
	Token() (string, error)

	// SetToken replaces the stored token.
	SetToken(token string) error

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

// Credentials are the username/password pair exchanged for a bearer token.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthService exchanges credentials for a bearer token. A 401 from the login
// endpoint means bad credentials, not an expired session, and must not clear
// an existing token.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (token string, err error)
}

// PreferenceStore persists small per-user UI preferences, such as the
// selected prompt id.
type PreferenceStore interface {
	// SelectedPrompt returns the stored prompt id, or 0 if none is set.
	SelectedPrompt() (int, error)
	SetSelectedPrompt(id int) error
}
