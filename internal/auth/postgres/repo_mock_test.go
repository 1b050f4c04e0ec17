// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekeeper/gatekeeper/internal/auth"
	"github.com/gatekeeper/gatekeeper/internal/auth/postgres"
	"github.com/gatekeeper/gatekeeper/pkg/errutil"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func sql(fragment string) string {
	return regexp.QuoteMeta(fragment)
}

func TestCredentialRepository_Create(t *testing.T) {
	ctx := context.Background()
	cred, err := auth.NewCredential("Alice@Example.com", "$argon2id$hash", time.Now())
	require.NoError(t, err)

	t.Run("inserts", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("INSERT INTO identity.credentials")).
			WithArgs(cred.ID.String(), "Alice@Example.com", "alice@example.com", "$argon2id$hash", cred.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, postgres.NewCredentialRepository(mock).Create(ctx, cred))
	})

	t.Run("unique violation is a duplicate email", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("INSERT INTO identity.credentials")).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "credentials_normalized_email_key"})

		err := postgres.NewCredentialRepository(mock).Create(ctx, cred)
		reasons, ok := auth.RegistrationReasons(err)
		require.True(t, ok)
		assert.Equal(t, "Email 'Alice@Example.com' is already taken.", reasons[auth.ReasonDuplicateEmail])
	})

	t.Run("other failures keep their cause", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("INSERT INTO identity.credentials")).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("connection refused"))

		err := postgres.NewCredentialRepository(mock).Create(ctx, cred)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "CREDENTIAL_CREATE_FAILED")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestCredentialRepository_Get(t *testing.T) {
	ctx := context.Background()
	id := ulid.Make()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cols := []string{"id", "email", "normalized_email", "password_hash", "created_at"}

	t.Run("by email", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sql("WHERE normalized_email = $1")).
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows(cols).AddRow(id.String(), "Alice@example.com", "alice@example.com", "hash", created))

		got, err := postgres.NewCredentialRepository(mock).GetByNormalizedEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Alice@example.com", got.Email)
		assert.Equal(t, created, got.CreatedAt)
	})

	t.Run("by id not found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sql("WHERE id = $1")).
			WithArgs(id.String()).
			WillReturnRows(pgxmock.NewRows(cols))

		_, err := postgres.NewCredentialRepository(mock).GetByID(ctx, id)
		require.ErrorIs(t, err, auth.ErrNotFound)
		errutil.AssertErrorCode(t, err, "CREDENTIAL_NOT_FOUND")
	})

	t.Run("corrupt id", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sql("WHERE id = $1")).
			WithArgs(id.String()).
			WillReturnRows(pgxmock.NewRows(cols).AddRow("bogus", "a", "a", "h", created))

		_, err := postgres.NewCredentialRepository(mock).GetByID(ctx, id)
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrNotFound)
	})
}

func TestCredentialRepository_Roles(t *testing.T) {
	ctx := context.Background()
	id := ulid.Make()

	t.Run("add role", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("INSERT INTO identity.credential_roles")).
			WithArgs(id.String(), auth.RoleMember).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, postgres.NewCredentialRepository(mock).AddRole(ctx, id, auth.RoleMember))
	})

	t.Run("unknown role is a registration failure", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("INSERT INTO identity.credential_roles")).
			WithArgs(id.String(), "Ghost").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

		err := postgres.NewCredentialRepository(mock).AddRole(ctx, id, "Ghost")
		reasons, ok := auth.RegistrationReasons(err)
		require.True(t, ok)
		assert.Contains(t, reasons, auth.ReasonInvalidRoleName)
	})

	t.Run("list roles", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sql("SELECT role_name")).
			WithArgs(id.String()).
			WillReturnRows(pgxmock.NewRows([]string{"role_name"}).AddRow(auth.RoleAdmin).AddRow(auth.RoleMember))

		roles, err := postgres.NewCredentialRepository(mock).ListRoles(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{auth.RoleAdmin, auth.RoleMember}, roles)
	})

	t.Run("ensure role reports creation", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("INSERT INTO identity.roles")).
			WithArgs(auth.RoleAdmin).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(sql("INSERT INTO identity.roles")).
			WithArgs(auth.RoleAdmin).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		repo := postgres.NewCredentialRepository(mock)
		created, err := repo.EnsureRole(ctx, auth.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, created)
		created, err = repo.EnsureRole(ctx, auth.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("delete missing credential", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("DELETE FROM identity.credentials")).
			WithArgs(id.String()).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := postgres.NewCredentialRepository(mock).Delete(ctx, id)
		require.ErrorIs(t, err, auth.ErrNotFound)
	})
}

func TestPrincipalRepository(t *testing.T) {
	ctx := context.Background()
	identityID := ulid.Make()
	cols := []string{"id", "identity_id", "name", "email", "created_at", "updated_at"}
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("duplicate email", func(t *testing.T) {
		mock := newMockPool(t)
		p, err := auth.NewPrincipal(identityID, "Alice Example", "alice@example.com", created)
		require.NoError(t, err)

		mock.ExpectExec(sql("INSERT INTO app.principals")).
			WithArgs(p.ID, identityID.String(), "Alice Example", "alice@example.com", created, p.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err = postgres.NewPrincipalRepository(mock).Create(ctx, p)
		reasons, ok := auth.RegistrationReasons(err)
		require.True(t, ok)
		assert.Contains(t, reasons, auth.ReasonDuplicateEmail)
	})

	t.Run("get by identity with null updated_at", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sql("WHERE identity_id = $1")).
			WithArgs(identityID.String()).
			WillReturnRows(pgxmock.NewRows(cols).AddRow("u_1", identityID.String(), "Alice", "alice@example.com", created, nil))

		got, err := postgres.NewPrincipalRepository(mock).GetByIdentityID(ctx, identityID)
		require.NoError(t, err)
		assert.Equal(t, "u_1", got.ID)
		assert.Equal(t, identityID, got.IdentityID)
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("get by id not found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sql("WHERE id = $1")).
			WithArgs("u_missing").
			WillReturnRows(pgxmock.NewRows(cols))

		_, err := postgres.NewPrincipalRepository(mock).GetByID(ctx, "u_missing")
		require.ErrorIs(t, err, auth.ErrNotFound)
	})

	t.Run("delete by identity", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("DELETE FROM app.principals")).
			WithArgs(identityID.String()).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, postgres.NewPrincipalRepository(mock).DeleteByIdentityID(ctx, identityID))
	})
}

func TestRefreshTokenRepository(t *testing.T) {
	ctx := context.Background()
	id := ulid.Make()
	userID := ulid.Make()
	expiry := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)

	t.Run("get by token", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sql("WHERE token = $1")).
			WithArgs("opaque").
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token", "expires_at"}).
				AddRow(id.String(), userID.String(), "opaque", expiry))

		rt, err := postgres.NewRefreshTokenRepository(mock).GetByToken(ctx, "opaque")
		require.NoError(t, err)
		assert.Equal(t, id, rt.ID)
		assert.Equal(t, userID, rt.UserID)
		assert.Equal(t, expiry, rt.ExpiresAt)
	})

	t.Run("unknown token hides the value", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(sql("WHERE token = $1")).
			WithArgs("secret-value").
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token", "expires_at"}))

		_, err := postgres.NewRefreshTokenRepository(mock).GetByToken(ctx, "secret-value")
		require.ErrorIs(t, err, auth.ErrNotFound)
		assert.NotContains(t, err.Error(), "secret-value")
	})

	t.Run("rotate is keyed on the old value", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("WHERE id = $1 AND token = $2")).
			WithArgs(id.String(), "old", "new", expiry).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, postgres.NewRefreshTokenRepository(mock).Rotate(ctx, id, "old", "new", expiry))
	})

	t.Run("rotate loses the race", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(sql("WHERE id = $1 AND token = $2")).
			WithArgs(id.String(), "old", "new", expiry).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := postgres.NewRefreshTokenRepository(mock).Rotate(ctx, id, "old", "new", expiry)
		require.ErrorIs(t, err, auth.ErrTokenConflict)
		errutil.AssertErrorCode(t, err, "REFRESH_TOKEN_CONFLICT")
	})

	t.Run("create failure", func(t *testing.T) {
		mock := newMockPool(t)
		rt, err := auth.NewRefreshToken(userID, "opaque", expiry)
		require.NoError(t, err)
		mock.ExpectExec(sql("INSERT INTO identity.refresh_tokens")).
			WithArgs(rt.ID.String(), userID.String(), "opaque", expiry).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err = postgres.NewRefreshTokenRepository(mock).Create(ctx, rt)
		require.Error(t, err)
		errutil.AssertErrorContext(t, err, "unique_violation", true)
	})
}
