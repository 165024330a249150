package rest

import (
	"context"
	"net/http"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.AuthService = (*Client)(nil)

// Login exchanges credentials for a bearer token. The caller decides whether
// to persist the token; Login itself never writes to a TokenStore.
func (c *Client) Login(ctx context.Context, creds autodoc.Credentials) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}
