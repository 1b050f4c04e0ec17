// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekeeper/gatekeeper/internal/auth"
	"github.com/gatekeeper/gatekeeper/internal/auth/postgres"
	"github.com/gatekeeper/gatekeeper/pkg/errutil"
)

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	mock := newMockPool(t)
	id := ulid.Make()

	mock.ExpectBegin()
	mock.ExpectExec(sql("INSERT INTO identity.credential_roles")).
		WithArgs(id.String(), auth.RoleMember).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	repo := postgres.NewCredentialRepository(mock)
	err := postgres.NewTransactor(mock).InTransaction(context.Background(), func(ctx context.Context) error {
		return repo.AddRole(ctx, id, auth.RoleMember)
	})
	require.NoError(t, err)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	mock := newMockPool(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := postgres.NewTransactor(mock).InTransaction(context.Background(), func(context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestTransactor_RollsBackOnPanic(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = postgres.NewTransactor(mock).InTransaction(context.Background(), func(context.Context) error {
			panic("kaboom")
		})
	})
}

func TestTransactor_BeginFailure(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := postgres.NewTransactor(mock).InTransaction(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	errutil.AssertErrorCode(t, err, "TX_BEGIN_FAILED")
}

func TestTransactor_CommitFailure(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := postgres.NewTransactor(mock).InTransaction(context.Background(), func(context.Context) error {
		return nil
	})
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "TX_COMMIT_FAILED")
}

func TestTransactor_NestedCallsShareTransaction(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	tx := postgres.NewTransactor(mock)
	err := tx.InTransaction(context.Background(), func(ctx context.Context) error {
		return tx.InTransaction(ctx, func(context.Context) error { return nil })
	})
	require.NoError(t, err)
}

func TestTransactor_OtherPoolIgnoresTransaction(t *testing.T) {
	identity := newMockPool(t)
	principals := newMockPool(t)
	identityID := ulid.Make()

	identity.ExpectBegin()
	// The principal repository is on another pool and must not use identity's tx.
	principals.ExpectExec(sql("DELETE FROM app.principals")).
		WithArgs(identityID.String()).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	identity.ExpectCommit()

	repo := postgres.NewPrincipalRepository(principals)
	err := postgres.NewTransactor(identity).InTransaction(context.Background(), func(ctx context.Context) error {
		return repo.DeleteByIdentityID(ctx, identityID)
	})
	require.NoError(t, err)
}
