package mock

import "github.com/noahmasoud/autodoc"

// Compile-time interface verification.
var _ autodoc.TokenStore = (*TokenStore)(nil)

// TokenStore is a mock implementation of autodoc.TokenStore.
type TokenStore struct {
	TokenFn    func() (string, error)
	SetTokenFn func(token string) error
	ClearFn    func() error
}

func (s *TokenStore) Token() (string, error) {
	return s.TokenFn()
}

func (s *TokenStore) SetToken(token string) error {
	return s.SetTokenFn(token)
}

func (s *TokenStore) Clear() error {
	return s.ClearFn()
}
