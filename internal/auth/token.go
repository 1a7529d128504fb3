// Package auth loads the Google service account used for Docs and Sheets.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// ErrNoServiceAccount indicates no service account file was configured.
var ErrNoServiceAccount = errors.New("no service account file defined")

// ServiceAccount holds the JWT configuration decoded from a service account key file.
type ServiceAccount struct {
	cfg  *jwt.Config
	path string
}

// NewServiceAccount reads and decodes a service account key file for the given scopes.
func NewServiceAccount(path string, scopes ...string) (*ServiceAccount, error) {
	if path == "" {
		return nil, ErrNoServiceAccount
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile failed: %w", err)
	}

	cfg, err := google.JWTConfigFromJSON(raw, scopes...)
	if err != nil {
		return nil, fmt.Errorf("google.JWTConfigFromJSON failed: %w", err)
	}

	return &ServiceAccount{cfg: cfg, path: path}, nil
}

// Email returns the service account's client email.
func (s *ServiceAccount) Email() string {
	return s.cfg.Email
}

// Path returns the key file the account was loaded from.
func (s *ServiceAccount) Path() string {
	return s.path
}

// TokenSource returns a token source that mints tokens for the configured scopes.
func (s *ServiceAccount) TokenSource(ctx context.Context) oauth2.TokenSource {
	return s.cfg.TokenSource(ctx)
}

// Client returns an HTTP client authorizing every request as the service account.
func (s *ServiceAccount) Client(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, s.TokenSource(ctx))
}
