package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.TokenStore = (*TokenStore)(nil)

// TokenStore keeps the bearer token in a single file, readable only by the
// owning user. The token plaintext is never surfaced through the CLI; it is
// only read back into the Authorization header.
type TokenStore struct {
	path string
}

// NewTokenStore creates a TokenStore at path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Token returns the stored bearer token, or autodoc.ErrNoToken.
func (s *TokenStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", autodoc.ErrNoToken
		}
		return "", err
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", autodoc.ErrNoToken
	}
	return token, nil
}

// SetToken replaces the stored token.
func (s *TokenStore) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// Clear removes the stored token. Clearing an empty store is not an error.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
