// Package auth verifies bearer tokens and resolves the calling principal.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the parsed claims of a verified token.
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
}

// TokenCodec verifies token integrity and expiry and decodes its claims.
type TokenCodec interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// HS256Codec verifies and issues tokens signed with a shared secret.
type HS256Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewHS256Codec creates a codec. ttl is used by Issue.
func NewHS256Codec(secret, issuer string, ttl time.Duration) (*HS256Codec, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &HS256Codec{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for subject valid for the codec's ttl.
func (c *HS256Codec) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	if c.issuer != "" {
		claims.Issuer = c.issuer
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. Tokens without an exp claim
// or subject are rejected.
func (c *HS256Codec) Verify(_ context.Context, token string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	var rc jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &rc, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	if rc.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	claims := &Claims{
		Subject:  rc.Subject,
		Issuer:   rc.Issuer,
		Audience: rc.Audience,
	}
	if rc.ExpiresAt != nil {
		claims.ExpiresAt = rc.ExpiresAt.Time
	}
	return claims, nil
}

var _ TokenCodec = (*HS256Codec)(nil)
