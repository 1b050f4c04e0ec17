// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekeeper/gatekeeper/internal/auth"
	"github.com/gatekeeper/gatekeeper/internal/auth/postgres"
)

func createCredential(ctx context.Context, t *testing.T, email string) *auth.Credential {
	t.Helper()
	cred, err := auth.NewCredential(email, "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA", time.Now())
	require.NoError(t, err)
	require.NoError(t, postgres.NewCredentialRepository(testPool).Create(ctx, cred))
	return cred
}

func uniqueEmail(t *testing.T) string {
	return strings.ToLower(ulid.Make().String()) + "@example.com"
}

func TestCredentialRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewCredentialRepository(testPool)
	email := uniqueEmail(t)
	cred := createCredential(ctx, t, email)

	t.Run("lookup is by normalized email", func(t *testing.T) {
		got, err := repo.GetByNormalizedEmail(ctx, auth.NormalizeEmail(strings.ToUpper(email)))
		require.NoError(t, err)
		assert.Equal(t, cred.ID, got.ID)
	})

	t.Run("duplicate differing only in case is rejected", func(t *testing.T) {
		dup, err := auth.NewCredential(strings.ToUpper(email), "hash", time.Now())
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		reasons, ok := auth.RegistrationReasons(err)
		require.True(t, ok)
		assert.Contains(t, reasons, auth.ReasonDuplicateEmail)
	})

	t.Run("roles", func(t *testing.T) {
		require.NoError(t, repo.AddRole(ctx, cred.ID, auth.RoleMember))
		require.NoError(t, repo.AddRole(ctx, cred.ID, auth.RoleMember))
		require.NoError(t, repo.AddRole(ctx, cred.ID, auth.RoleAdmin))

		roles, err := repo.ListRoles(ctx, cred.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{auth.RoleAdmin, auth.RoleMember}, roles)

		err = repo.AddRole(ctx, cred.ID, "Ghost")
		_, ok := auth.RegistrationReasons(err)
		assert.True(t, ok)
	})

	t.Run("ensure role", func(t *testing.T) {
		created, err := repo.EnsureRole(ctx, auth.RoleMember)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("delete cascades tokens and roles", func(t *testing.T) {
		tokens := postgres.NewRefreshTokenRepository(testPool)
		rt, err := auth.NewRefreshToken(cred.ID, "cascade-"+ulid.Make().String(), time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, tokens.Create(ctx, rt))

		require.NoError(t, repo.Delete(ctx, cred.ID))

		_, err = tokens.GetByToken(ctx, rt.Token)
		assert.ErrorIs(t, err, auth.ErrNotFound)
		roles, err := repo.ListRoles(ctx, cred.ID)
		require.NoError(t, err)
		assert.Empty(t, roles)
	})
}

func TestRefreshTokenRepository_ConcurrentRotate(t *testing.T) {
	ctx := context.Background()
	cred := createCredential(ctx, t, uniqueEmail(t))
	tokens := postgres.NewRefreshTokenRepository(testPool)

	old := "old-" + ulid.Make().String()
	rt, err := auth.NewRefreshToken(cred.ID, old, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, tokens.Create(ctx, rt))

	const racers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   int
		conflicts int
	)
	for i := range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next := "new-" + ulid.Make().String() + string(rune('a'+i))
			err := tokens.Rotate(ctx, rt.ID, old, next, time.Now().Add(2*time.Hour))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, auth.ErrTokenConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, racers-1, conflicts)

	_, err = tokens.GetByToken(ctx, old)
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestTransactor_Integration(t *testing.T) {
	ctx := context.Background()
	creds := postgres.NewCredentialRepository(testPool)
	principals := postgres.NewPrincipalRepository(testPool)
	tx := postgres.NewTransactor(testPool)

	email := uniqueEmail(t)
	cred, err := auth.NewCredential(email, "hash", time.Now())
	require.NoError(t, err)

	err = tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := creds.Create(ctx, cred); err != nil {
			return err
		}
		p, err := auth.NewPrincipal(cred.ID, "Rolled Back", email, time.Now())
		if err != nil {
			return err
		}
		if err := principals.Create(ctx, p); err != nil {
			return err
		}
		return creds.AddRole(ctx, cred.ID, "NoSuchRole")
	})
	require.Error(t, err)

	_, err = creds.GetByID(ctx, cred.ID)
	assert.ErrorIs(t, err, auth.ErrNotFound, "credential insert must roll back")
	_, err = principals.GetByIdentityID(ctx, cred.ID)
	assert.ErrorIs(t, err, auth.ErrNotFound, "principal insert must roll back")
}
