// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Built-in roles.
const (
	RoleMember = "Member"
	RoleAdmin  = "Admin"
)

// DefaultRole is assigned to every newly registered credential.
const DefaultRole = RoleMember

// Credential is the authentication record behind a principal.
type Credential struct {
	ID              ulid.ULID
	Email           string
	NormalizedEmail string
	PasswordHash    string
	CreatedAt       time.Time
}

// NewCredential creates a validated Credential with a fresh id.
func NewCredential(email, passwordHash string, now time.Time) (*Credential, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return nil, oops.Code("CREDENTIAL_INVALID_EMAIL").Errorf("email cannot be empty")
	}
	if passwordHash == "" {
		return nil, oops.Code("CREDENTIAL_INVALID_HASH").Errorf("password hash cannot be empty")
	}
	return &Credential{
		ID:              ulid.Make(),
		Email:           strings.TrimSpace(email),
		NormalizedEmail: normalized,
		PasswordHash:    passwordHash,
		CreatedAt:       now.UTC(),
	}, nil
}

// NormalizeEmail returns the case-insensitive lookup key for an email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CredentialRepository persists credentials and their role membership.
type CredentialRepository interface {
	// Create persists a new credential.
	// Returns a *RegistrationError with ReasonDuplicateEmail if the email is taken.
	Create(ctx context.Context, credential *Credential) error

	// GetByID retrieves a credential by id.
	// Returns ErrNotFound if no credential exists.
	GetByID(ctx context.Context, id ulid.ULID) (*Credential, error)

	// GetByNormalizedEmail retrieves a credential by its normalized email.
	// Returns ErrNotFound if no credential exists.
	GetByNormalizedEmail(ctx context.Context, normalizedEmail string) (*Credential, error)

	// Delete removes a credential. Roles and refresh tokens cascade.
	// Returns ErrNotFound if no credential exists.
	Delete(ctx context.Context, id ulid.ULID) error

	// AddRole grants role to the credential. Granting a held role is a no-op.
	// Returns a *RegistrationError with ReasonInvalidRoleName if the role does not exist.
	AddRole(ctx context.Context, id ulid.ULID, role string) error

	// ListRoles returns the credential's roles in name order.
	ListRoles(ctx context.Context, id ulid.ULID) ([]string, error)

	// EnsureRole creates a role if it does not exist and reports whether it was created.
	EnsureRole(ctx context.Context, role string) (bool, error)
}

// CredentialStore is what the coordinators need from the credential side:
// creation under the password policy, role membership and verification.
type CredentialStore interface {
	// Create hashes password and persists a credential for email.
	// Policy and uniqueness rejections are returned as *RegistrationError.
	Create(ctx context.Context, email, password string) (*Credential, error)

	// AddToRole grants role to the credential.
	AddToRole(ctx context.Context, id ulid.ULID, role string) error

	// FindByEmail looks a credential up case-insensitively.
	FindByEmail(ctx context.Context, email string) (*Credential, error)

	// FindByID looks a credential up by id.
	FindByID(ctx context.Context, id ulid.ULID) (*Credential, error)

	// CheckPassword reports whether password matches the credential.
	// A nil credential is checked against a dummy hash and never matches.
	CheckPassword(ctx context.Context, credential *Credential, password string) (bool, error)

	// Roles returns the credential's current roles.
	Roles(ctx context.Context, id ulid.ULID) ([]string, error)

	// Delete removes the credential.
	Delete(ctx context.Context, id ulid.ULID) error
}
