package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks an email/password pair. Implementations return ErrInvalidCredentials on mismatch.
type Verifier interface {
	Verify(ctx context.Context, email, password string) error
}

// Issuer mints the session token handed back after a successful login.
type Issuer interface {
	Issue(email string) (string, error)
}

type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type Authenticator struct {
	verifier Verifier
	issuer   Issuer
}

func NewAuthenticator(v Verifier, i Issuer) *Authenticator {
	return &Authenticator{verifier: v, issuer: i}
}

func (a *Authenticator) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := a.verifier.Verify(ctx, email, password); err != nil {
		return nil, err
	}

	token, err := a.issuer.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &Session{Token: token, Email: email}, nil
}

// DefaultUsers is the demo account table.
func DefaultUsers() map[string]string {
	return map[string]string{
		"user@example.com":  "password",
		"admin@example.com": "admin123",
	}
}

// ParseUsers reads "email:secret,email2:secret2". The secret is everything after the first colon.
func ParseUsers(s string) (map[string]string, error) {
	users := make(map[string]string)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		email, secret, ok := strings.Cut(entry, ":")
		email = strings.TrimSpace(email)
		if !ok || email == "" || secret == "" {
			return nil, fmt.Errorf("invalid user entry %q, want email:secret", entry)
		}
		users[email] = secret
	}
	if len(users) == 0 {
		return nil, errors.New("no users configured")
	}
	return users, nil
}
