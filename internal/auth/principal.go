// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// PrincipalIDPrefix marks principal ids apart from credential ids.
const PrincipalIDPrefix = "u_"

// Principal name limits.
const (
	MinNameLength = 3
	MaxNameLength = 50
)

// Principal is the application-facing user record.
type Principal struct {
	ID         string
	IdentityID ulid.ULID
	Name       string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// NewPrincipalID returns a fresh time-ordered principal id.
func NewPrincipalID() string {
	return PrincipalIDPrefix + strings.ToLower(ulid.Make().String())
}

// NewPrincipal creates a validated Principal linked to a credential.
func NewPrincipal(identityID ulid.ULID, name, email string, now time.Time) (*Principal, error) {
	if identityID.Compare(ulid.ULID{}) == 0 {
		return nil, oops.Code("PRINCIPAL_INVALID_IDENTITY").Errorf("identity ID cannot be zero")
	}
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return nil, NewRegistrationError(ReasonInvalidName,
			"Name must be between 3 and 50 characters.")
	}
	if strings.TrimSpace(email) == "" {
		return nil, oops.Code("PRINCIPAL_INVALID_EMAIL").Errorf("email cannot be empty")
	}
	return &Principal{
		ID:         NewPrincipalID(),
		IdentityID: identityID,
		Name:       name,
		Email:      strings.TrimSpace(email),
		CreatedAt:  now.UTC(),
	}, nil
}

// PrincipalStore persists principals.
type PrincipalStore interface {
	// Create persists a new principal.
	// Returns a *RegistrationError with ReasonDuplicateEmail if the email is taken.
	Create(ctx context.Context, principal *Principal) error

	// GetByID retrieves a principal by id.
	// Returns ErrNotFound if no principal exists.
	GetByID(ctx context.Context, id string) (*Principal, error)

	// GetByIdentityID retrieves the principal linked to a credential.
	// Returns ErrNotFound if no principal exists.
	GetByIdentityID(ctx context.Context, identityID ulid.ULID) (*Principal, error)

	// DeleteByIdentityID removes the principal linked to a credential.
	// Only used to undo a registration that could not complete.
	DeleteByIdentityID(ctx context.Context, identityID ulid.ULID) error
}
