// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/gatekeeper/gatekeeper/internal/auth"
)

// CredentialRepository implements auth.CredentialRepository using PostgreSQL.
type CredentialRepository struct {
	db DB
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(db DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create stores a new credential.
func (r *CredentialRepository) Create(ctx context.Context, credential *auth.Credential) error {
	_, err := execerFromCtx(ctx, r.db).Exec(ctx, `
		INSERT INTO identity.credentials (id, email, normalized_email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		credential.ID.String(),
		credential.Email,
		credential.NormalizedEmail,
		credential.PasswordHash,
		credential.CreatedAt,
	)
	if isUniqueViolation(err) {
		return auth.NewRegistrationError(auth.ReasonDuplicateEmail,
			fmt.Sprintf("Email '%s' is already taken.", credential.Email))
	}
	if err != nil {
		return oops.Code("CREDENTIAL_CREATE_FAILED").
			With("operation", "insert credential").
			With("credential_id", credential.ID.String()).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves a credential by ID.
func (r *CredentialRepository) GetByID(ctx context.Context, id ulid.ULID) (*auth.Credential, error) {
	row := execerFromCtx(ctx, r.db).QueryRow(ctx, `
		SELECT id, email, normalized_email, password_hash, created_at
		FROM identity.credentials
		WHERE id = $1
	`, id.String())

	credential, err := scanCredential(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("CREDENTIAL_NOT_FOUND").
			With("credential_id", id.String()).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("CREDENTIAL_QUERY_FAILED").
			With("operation", "get credential by id").
			With("credential_id", id.String()).
			Wrap(err)
	}
	return credential, nil
}

// GetByNormalizedEmail retrieves a credential by normalized email.
func (r *CredentialRepository) GetByNormalizedEmail(ctx context.Context, normalizedEmail string) (*auth.Credential, error) {
	row := execerFromCtx(ctx, r.db).QueryRow(ctx, `
		SELECT id, email, normalized_email, password_hash, created_at
		FROM identity.credentials
		WHERE normalized_email = $1
	`, normalizedEmail)

	credential, err := scanCredential(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("CREDENTIAL_NOT_FOUND").Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("CREDENTIAL_QUERY_FAILED").
			With("operation", "get credential by email").
			Wrap(err)
	}
	return credential, nil
}

// Delete removes a credential; its roles and refresh tokens cascade.
func (r *CredentialRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result, err := execerFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM identity.credentials WHERE id = $1`, id.String())
	if err != nil {
		return oops.Code("CREDENTIAL_DELETE_FAILED").
			With("operation", "delete credential").
			With("credential_id", id.String()).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("CREDENTIAL_NOT_FOUND").
			With("credential_id", id.String()).
			Wrap(auth.ErrNotFound)
	}
	return nil
}

// AddRole grants a role; granting a held role is a no-op.
func (r *CredentialRepository) AddRole(ctx context.Context, id ulid.ULID, role string) error {
	_, err := execerFromCtx(ctx, r.db).Exec(ctx, `
		INSERT INTO identity.credential_roles (credential_id, role_name)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, id.String(), role)
	if isForeignKeyViolation(err) {
		return auth.NewRegistrationError(auth.ReasonInvalidRoleName,
			fmt.Sprintf("Role '%s' does not exist.", role))
	}
	if err != nil {
		return oops.Code("CREDENTIAL_ROLE_FAILED").
			With("operation", "add role").
			With("credential_id", id.String()).
			With("role", role).
			Wrap(err)
	}
	return nil
}

// ListRoles returns the credential's roles in name order.
func (r *CredentialRepository) ListRoles(ctx context.Context, id ulid.ULID) ([]string, error) {
	rows, err := execerFromCtx(ctx, r.db).Query(ctx, `
		SELECT role_name
		FROM identity.credential_roles
		WHERE credential_id = $1
		ORDER BY role_name
	`, id.String())
	if err != nil {
		return nil, oops.Code("CREDENTIAL_QUERY_FAILED").
			With("operation", "list roles").
			With("credential_id", id.String()).
			Wrap(err)
	}

	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, oops.Code("CREDENTIAL_QUERY_FAILED").
			With("operation", "scan roles").
			With("credential_id", id.String()).
			Wrap(err)
	}
	return roles, nil
}

// EnsureRole creates role if missing and reports whether it did.
func (r *CredentialRepository) EnsureRole(ctx context.Context, role string) (bool, error) {
	result, err := execerFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO identity.roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role)
	if err != nil {
		return false, oops.Code("ROLE_CREATE_FAILED").
			With("operation", "insert role").
			With("role", role).
			Wrap(err)
	}
	return result.RowsAffected() == 1, nil
}

func scanCredential(row pgx.Row) (*auth.Credential, error) {
	var (
		c  auth.Credential
		id string
	)
	if err := row.Scan(&id, &c.Email, &c.NormalizedEmail, &c.PasswordHash, &c.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := ulid.Parse(id)
	if err != nil {
		return nil, oops.With("operation", "parse credential id").With("credential_id", id).Wrap(err)
	}
	c.ID = parsed
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

var _ auth.CredentialRepository = (*CredentialRepository)(nil)
