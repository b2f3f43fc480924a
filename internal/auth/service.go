package auth

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Profile is the public identity returned to authenticated clients.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Service ties token verification to the credential store: tokens prove who
// is calling, the store decides whether that caller is an admin.
type Service struct {
	tokens *Tokens
	store  CredentialStore
}

// NewService wires the token service to a credential store.
func NewService(tokens *Tokens, store CredentialStore) *Service {
	return &Service{tokens: tokens, store: store}
}

// Login checks the supplied credentials and issues a bearer token. Unknown
// emails and wrong passwords both report ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, time.Time, Profile, error) {
	email = strings.TrimSpace(email)
	creds, err := s.store.Snapshot()
	if err != nil {
		return "", time.Time{}, Profile{}, fmt.Errorf("load credentials: %w", err)
	}
	cred, ok := creds[email]
	if !ok || !VerifyPassword(cred.Password, password) {
		return "", time.Time{}, Profile{}, ErrInvalidCredentials
	}
	token, expiresAt, err := s.tokens.Issue(email)
	if err != nil {
		return "", time.Time{}, Profile{}, fmt.Errorf("issue token: %w", err)
	}
	return token, expiresAt, Profile{Email: email, Name: cred.Name}, nil
}

// Authenticate resolves a bearer token into an identity. An empty token is an
// anonymous caller, not an error; a present but bad token propagates
// ErrInvalidToken or ErrExpiredToken.
func (s *Service) Authenticate(ctx context.Context, token string) (string, bool, error) {
	if strings.TrimSpace(token) == "" {
		return "", false, nil
	}
	email, err := s.tokens.Verify(token)
	if err != nil {
		return "", false, err
	}
	return email, true, nil
}

// RequireAdmin checks that the identity belongs to a known admin. The store
// is consulted on every call, so a credential change applies to the next
// request even while older tokens are still outstanding.
func (s *Service) RequireAdmin(ctx context.Context, email string) (Profile, error) {
	if strings.TrimSpace(email) == "" {
		return Profile{}, ErrAuthRequired
	}
	creds, err := s.store.Snapshot()
	if err != nil {
		return Profile{}, fmt.Errorf("load credentials: %w", err)
	}
	cred, ok := creds[email]
	if !ok {
		return Profile{}, ErrAdminRequired
	}
	return Profile{Email: email, Name: cred.Name}, nil
}
