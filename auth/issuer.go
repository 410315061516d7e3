package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const StaticToken = "fake-jwt-token-123"

// StaticIssuer hands every user the same opaque token.
type StaticIssuer struct{}

func (StaticIssuer) Issue(string) (string, error) {
	return StaticToken, nil
}

// JWTIssuer signs HS256 tokens carrying sub, iat and exp.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *JWTIssuer) Issue(email string) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}
