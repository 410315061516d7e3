package auth

import (
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// StaticVerifier compares against a fixed plaintext table. The table is copied and never mutated.
type StaticVerifier struct {
	users map[string]string
}

func NewStaticVerifier(users map[string]string) *StaticVerifier {
	m := make(map[string]string, len(users))
	for k, v := range users {
		m[k] = v
	}
	return &StaticVerifier{users: m}
}

func (v *StaticVerifier) Verify(_ context.Context, email, password string) error {
	want, ok := v.users[email]
	if !ok || subtle.ConstantTimeCompare([]byte(want), []byte(password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier holds bcrypt hashes instead of plaintext.
type BcryptVerifier struct {
	hashes map[string][]byte
}

func NewBcryptVerifier(hashes map[string]string) *BcryptVerifier {
	m := make(map[string][]byte, len(hashes))
	for k, v := range hashes {
		m[k] = []byte(v)
	}
	return &BcryptVerifier{hashes: m}
}

func (v *BcryptVerifier) Verify(_ context.Context, email, password string) error {
	hash, ok := v.hashes[email]
	if !ok {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
