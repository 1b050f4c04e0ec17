// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/gatekeeper/gatekeeper/internal/auth"
)

// PrincipalRepository implements auth.PrincipalStore using PostgreSQL.
type PrincipalRepository struct {
	db DB
}

// NewPrincipalRepository creates a new PrincipalRepository.
func NewPrincipalRepository(db DB) *PrincipalRepository {
	return &PrincipalRepository{db: db}
}

// Create stores a new principal.
func (r *PrincipalRepository) Create(ctx context.Context, principal *auth.Principal) error {
	_, err := execerFromCtx(ctx, r.db).Exec(ctx, `
		INSERT INTO app.principals (id, identity_id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		principal.ID,
		principal.IdentityID.String(),
		principal.Name,
		principal.Email,
		principal.CreatedAt,
		principal.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return auth.NewRegistrationError(auth.ReasonDuplicateEmail,
			fmt.Sprintf("Email '%s' is already taken.", principal.Email))
	}
	if err != nil {
		return oops.Code("PRINCIPAL_CREATE_FAILED").
			With("operation", "insert principal").
			With("principal_id", principal.ID).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves a principal by ID.
func (r *PrincipalRepository) GetByID(ctx context.Context, id string) (*auth.Principal, error) {
	row := execerFromCtx(ctx, r.db).QueryRow(ctx, `
		SELECT id, identity_id, name, email, created_at, updated_at
		FROM app.principals
		WHERE id = $1
	`, id)

	principal, err := scanPrincipal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("PRINCIPAL_NOT_FOUND").
			With("principal_id", id).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("PRINCIPAL_QUERY_FAILED").
			With("operation", "get principal by id").
			With("principal_id", id).
			Wrap(err)
	}
	return principal, nil
}

// GetByIdentityID retrieves the principal linked to a credential.
func (r *PrincipalRepository) GetByIdentityID(ctx context.Context, identityID ulid.ULID) (*auth.Principal, error) {
	row := execerFromCtx(ctx, r.db).QueryRow(ctx, `
		SELECT id, identity_id, name, email, created_at, updated_at
		FROM app.principals
		WHERE identity_id = $1
	`, identityID.String())

	principal, err := scanPrincipal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("PRINCIPAL_NOT_FOUND").
			With("identity_id", identityID.String()).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("PRINCIPAL_QUERY_FAILED").
			With("operation", "get principal by identity").
			With("identity_id", identityID.String()).
			Wrap(err)
	}
	return principal, nil
}

// DeleteByIdentityID removes the principal linked to a credential.
func (r *PrincipalRepository) DeleteByIdentityID(ctx context.Context, identityID ulid.ULID) error {
	result, err := execerFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM app.principals WHERE identity_id = $1`, identityID.String())
	if err != nil {
		return oops.Code("PRINCIPAL_DELETE_FAILED").
			With("operation", "delete principal").
			With("identity_id", identityID.String()).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("PRINCIPAL_NOT_FOUND").
			With("identity_id", identityID.String()).
			Wrap(auth.ErrNotFound)
	}
	return nil
}

func scanPrincipal(row pgx.Row) (*auth.Principal, error) {
	var (
		p          auth.Principal
		identityID string
		updatedAt  *time.Time
	)
	if err := row.Scan(&p.ID, &identityID, &p.Name, &p.Email, &p.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	parsed, err := ulid.Parse(identityID)
	if err != nil {
		return nil, oops.With("operation", "parse identity id").With("identity_id", identityID).Wrap(err)
	}
	p.IdentityID = parsed
	p.CreatedAt = p.CreatedAt.UTC()
	if updatedAt != nil {
		u := updatedAt.UTC()
		p.UpdatedAt = &u
	}
	return &p, nil
}

var _ auth.PrincipalStore = (*PrincipalRepository)(nil)
