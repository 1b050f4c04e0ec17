// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// dummyPasswordHash is verified when a login names an unknown email so the
// response time does not reveal whether the account exists.
//
//nolint:gosec // G101: intentionally fake hash, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// CredentialService is the Credential Store: it applies the password policy,
// hashes passwords and manages role membership over a CredentialRepository.
type CredentialService struct {
	repo   CredentialRepository
	hasher PasswordHasher
	policy PasswordPolicy
	now    func() time.Time
}

// NewCredentialService creates a CredentialService with the default password policy.
func NewCredentialService(repo CredentialRepository, hasher PasswordHasher) (*CredentialService, error) {
	if repo == nil {
		return nil, oops.Code("CREDENTIAL_SERVICE_INVALID").Errorf("credential repository is required")
	}
	if hasher == nil {
		return nil, oops.Code("CREDENTIAL_SERVICE_INVALID").Errorf("password hasher is required")
	}
	return &CredentialService{
		repo:   repo,
		hasher: hasher,
		policy: DefaultPasswordPolicy(),
		now:    time.Now,
	}, nil
}

// Create validates email and password, hashes the password and persists a credential.
func (s *CredentialService) Create(ctx context.Context, email, password string) (*Credential, error) {
	if _, err := mail.ParseAddress(email); err != nil || NormalizeEmail(email) == "" {
		return nil, NewRegistrationError(ReasonInvalidEmail, fmt.Sprintf("Email '%s' is invalid.", email))
	}
	if regErr := s.policy.Check(password); regErr != nil {
		return nil, regErr
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, oops.Code("CREDENTIAL_CREATE_FAILED").With("operation", "hash password").Wrap(err)
	}

	credential, err := NewCredential(email, hash, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, credential); err != nil {
		return nil, err
	}
	return credential, nil
}

// AddToRole grants role to the credential.
func (s *CredentialService) AddToRole(ctx context.Context, id ulid.ULID, role string) error {
	return s.repo.AddRole(ctx, id, role)
}

// FindByEmail looks a credential up case-insensitively.
func (s *CredentialService) FindByEmail(ctx context.Context, email string) (*Credential, error) {
	return s.repo.GetByNormalizedEmail(ctx, NormalizeEmail(email))
}

// FindByID looks a credential up by id.
func (s *CredentialService) FindByID(ctx context.Context, id ulid.ULID) (*Credential, error) {
	return s.repo.GetByID(ctx, id)
}

// CheckPassword verifies password against the credential's hash. With a nil
// credential the dummy hash is verified instead and the result is always false.
func (s *CredentialService) CheckPassword(_ context.Context, credential *Credential, password string) (bool, error) {
	if credential == nil {
		_, _ = s.hasher.Verify(password, dummyPasswordHash) //nolint:errcheck // timing only
		return false, nil
	}
	ok, err := s.hasher.Verify(password, credential.PasswordHash)
	if err != nil {
		return false, oops.Code("CREDENTIAL_VERIFY_FAILED").
			With("credential_id", credential.ID.String()).
			Wrap(err)
	}
	return ok, nil
}

// Roles returns the credential's current roles.
func (s *CredentialService) Roles(ctx context.Context, id ulid.ULID) ([]string, error) {
	return s.repo.ListRoles(ctx, id)
}

// Delete removes the credential.
func (s *CredentialService) Delete(ctx context.Context, id ulid.ULID) error {
	return s.repo.Delete(ctx, id)
}

// AssignRole grants role to the credential registered under email.
func (s *CredentialService) AssignRole(ctx context.Context, email, role string) error {
	credential, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return oops.Code("CREDENTIAL_NOT_FOUND").With("email", email).Wrap(err)
		}
		return oops.With("operation", "find credential").Wrap(err)
	}
	return s.repo.AddRole(ctx, credential.ID, role)
}

// EnsureRoles creates any missing roles and returns the ones it created.
func (s *CredentialService) EnsureRoles(ctx context.Context, roles ...string) ([]string, error) {
	var created []string
	for _, role := range roles {
		ok, err := s.repo.EnsureRole(ctx, role)
		if err != nil {
			return created, oops.With("operation", "ensure role").With("role", role).Wrap(err)
		}
		if ok {
			created = append(created, role)
		}
	}
	return created, nil
}

var _ CredentialStore = (*CredentialService)(nil)
