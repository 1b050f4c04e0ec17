// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package token

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// RefreshTokenBytes is the entropy of a refresh token before encoding.
const RefreshTokenBytes = 32

// Request is the claim set a token pair is issued for.
type Request struct {
	UserID string
	Email  string
	Roles  []string
}

// Pair is an issued access token and its companion refresh token.
type Pair struct {
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// Claims is the payload of an access token.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// HasRole reports whether the claims grant role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Issuer signs access tokens and mints refresh tokens.
// It is immutable after construction and safe for concurrent use.
type Issuer struct {
	cfg     Config
	key     []byte
	now     func() time.Time
	entropy io.Reader
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithClock overrides the time source used for expiry calculation.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

// WithEntropy overrides the random source used for refresh tokens.
func WithEntropy(r io.Reader) Option {
	return func(i *Issuer) {
		i.entropy = r
	}
}

// NewIssuer validates cfg and returns an Issuer bound to it.
func NewIssuer(cfg Config, opts ...Option) (*Issuer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	i := &Issuer{
		cfg:     cfg,
		key:     []byte(cfg.Key),
		now:     time.Now,
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Issue signs an access token for req and generates a fresh refresh token.
// Errors are limited to entropy and signing failures.
func (i *Issuer) Issue(req Request) (Pair, error) {
	now := i.now().UTC()
	accessExpiry := now.Add(i.cfg.AccessTokenTTL())

	roles := make([]string, len(req.Roles))
	copy(roles, req.Roles)

	claims := Claims{
		Email: req.Email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.UserID,
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        ulid.Make().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return Pair{}, oops.Code("TOKEN_SIGN_FAILED").With("subject", req.UserID).Wrap(err)
	}

	refresh, err := i.generateRefreshToken()
	if err != nil {
		return Pair{}, err
	}

	return Pair{
		AccessToken:           signed,
		AccessTokenExpiresAt:  accessExpiry,
		RefreshToken:          refresh,
		RefreshTokenExpiresAt: i.RefreshTokenExpiry(now),
	}, nil
}

// RefreshTokenExpiry is the expiry of a refresh token issued at t.
func (i *Issuer) RefreshTokenExpiry(t time.Time) time.Time {
	return t.UTC().Add(i.cfg.RefreshTokenTTL())
}

func (i *Issuer) generateRefreshToken() (string, error) {
	b := make([]byte, RefreshTokenBytes)
	if _, err := io.ReadFull(i.entropy, b); err != nil {
		return "", oops.Code("TOKEN_ENTROPY_FAILED").Wrap(err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
