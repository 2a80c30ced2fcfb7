// Package jwt issues and verifies the HS256 bearer tokens handed out on
// sign-up and log-in.
package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwt: invalid token")
	ErrNoSecret     = errors.New("jwt: empty signing secret")
)

// leeway tolerates clock drift between instances when checking exp/nbf.
const leeway = 30 * time.Second

// Issuer signs tokens whose subject is a user id.
type Issuer struct {
	Iss    string
	Secret []byte
	TTL    time.Duration

	now func() time.Time
}

func NewIssuer(iss, secret string, ttl time.Duration) (*Issuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Issuer{Iss: iss, Secret: []byte(secret), TTL: ttl, now: time.Now}, nil
}

// Sign returns a token for sub and its expiry.
func (i *Issuer) Sign(sub string) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.TTL)
	claims := jwtv5.RegisteredClaims{
		Issuer:    i.Iss,
		Subject:   sub,
		IssuedAt:  jwtv5.NewNumericDate(now),
		NotBefore: jwtv5.NewNumericDate(now),
		ExpiresAt: jwtv5.NewNumericDate(exp),
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := tk.SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies signature, issuer and validity window and returns the
// subject. Every failure is reported as ErrInvalidToken.
func (i *Issuer) Parse(token string) (string, error) {
	opts := []jwtv5.ParserOption{
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithLeeway(leeway),
		jwtv5.WithExpirationRequired(),
		jwtv5.WithTimeFunc(i.now),
	}
	if i.Iss != "" {
		opts = append(opts, jwtv5.WithIssuer(i.Iss))
	}

	var claims jwtv5.RegisteredClaims
	tok, err := jwtv5.ParseWithClaims(token, &claims, func(*jwtv5.Token) (any, error) {
		return i.Secret, nil
	}, opts...)
	if err != nil || !tok.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
