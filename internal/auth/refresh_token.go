// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// RefreshToken is a stored refresh token. Rotation overwrites Token and
// ExpiresAt in place, so a row outlives every value it has held.
type RefreshToken struct {
	ID        ulid.ULID
	UserID    ulid.ULID
	Token     string
	ExpiresAt time.Time
}

// NewRefreshToken creates a validated RefreshToken with a fresh id.
func NewRefreshToken(userID ulid.ULID, token string, expiresAt time.Time) (*RefreshToken, error) {
	if userID.Compare(ulid.ULID{}) == 0 {
		return nil, oops.Code("REFRESH_TOKEN_INVALID_USER").Errorf("user ID cannot be zero")
	}
	if token == "" {
		return nil, oops.Code("REFRESH_TOKEN_INVALID_TOKEN").Errorf("token cannot be empty")
	}
	if expiresAt.IsZero() {
		return nil, oops.Code("REFRESH_TOKEN_INVALID_EXPIRY").Errorf("expiry time cannot be zero")
	}
	return &RefreshToken{
		ID:        ulid.Make(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

// IsExpiredAt reports whether the token had expired at t.
// A token is still valid at the exact instant of its expiry.
func (t *RefreshToken) IsExpiredAt(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// RefreshTokenStore persists refresh tokens.
type RefreshTokenStore interface {
	// Create persists a new refresh token.
	Create(ctx context.Context, token *RefreshToken) error

	// GetByToken retrieves a refresh token by its exact value.
	// Returns ErrNotFound if no row holds that value.
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)

	// Rotate replaces the token value and expiry of row id, but only while the
	// row still holds oldToken.
	// Returns ErrTokenConflict if the row no longer holds oldToken.
	Rotate(ctx context.Context, id ulid.ULID, oldToken, newToken string, expiresAt time.Time) error
}
