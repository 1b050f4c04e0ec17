// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/gatekeeper/gatekeeper/internal/auth"
)

// RefreshTokenRepository implements auth.RefreshTokenStore using PostgreSQL.
type RefreshTokenRepository struct {
	db DB
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository.
func NewRefreshTokenRepository(db DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create stores a new refresh token.
func (r *RefreshTokenRepository) Create(ctx context.Context, token *auth.RefreshToken) error {
	_, err := execerFromCtx(ctx, r.db).Exec(ctx, `
		INSERT INTO identity.refresh_tokens (id, user_id, token, expires_at)
		VALUES ($1, $2, $3, $4)
	`,
		token.ID.String(),
		token.UserID.String(),
		token.Token,
		token.ExpiresAt,
	)
	if err != nil {
		return oops.Code("REFRESH_TOKEN_CREATE_FAILED").
			With("operation", "insert refresh token").
			With("refresh_token_id", token.ID.String()).
			With("unique_violation", isUniqueViolation(err)).
			Wrap(err)
	}
	return nil
}

// GetByToken retrieves a refresh token by its exact value.
func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*auth.RefreshToken, error) {
	row := execerFromCtx(ctx, r.db).QueryRow(ctx, `
		SELECT id, user_id, token, expires_at
		FROM identity.refresh_tokens
		WHERE token = $1
	`, token)

	var (
		rt     auth.RefreshToken
		id     string
		userID string
	)
	err := row.Scan(&id, &userID, &rt.Token, &rt.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// The token value itself is never attached to errors.
		return nil, oops.Code("REFRESH_TOKEN_NOT_FOUND").Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("REFRESH_TOKEN_QUERY_FAILED").
			With("operation", "get refresh token").
			Wrap(err)
	}

	if rt.ID, err = ulid.Parse(id); err != nil {
		return nil, oops.With("operation", "parse refresh token id").With("refresh_token_id", id).Wrap(err)
	}
	if rt.UserID, err = ulid.Parse(userID); err != nil {
		return nil, oops.With("operation", "parse user id").With("user_id", userID).Wrap(err)
	}
	rt.ExpiresAt = rt.ExpiresAt.UTC()
	return &rt, nil
}

// Rotate overwrites token and expiry of row id while it still holds oldToken.
// The row-level update serializes concurrent rotations; the loser sees zero
// affected rows.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, id ulid.ULID, oldToken, newToken string, expiresAt time.Time) error {
	result, err := execerFromCtx(ctx, r.db).Exec(ctx, `
		UPDATE identity.refresh_tokens
		SET token = $3, expires_at = $4
		WHERE id = $1 AND token = $2
	`, id.String(), oldToken, newToken, expiresAt.UTC())
	if err != nil {
		return oops.Code("REFRESH_TOKEN_ROTATE_FAILED").
			With("operation", "rotate refresh token").
			With("refresh_token_id", id.String()).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("REFRESH_TOKEN_CONFLICT").
			With("refresh_token_id", id.String()).
			Wrap(auth.ErrTokenConflict)
	}
	return nil
}

var _ auth.RefreshTokenStore = (*RefreshTokenRepository)(nil)
