// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"context"
	"errors"

	"github.com/samber/oops"
)

// ProfileService reads principals on behalf of authenticated callers.
type ProfileService struct {
	principals PrincipalStore
}

// NewProfileService creates a ProfileService.
func NewProfileService(principals PrincipalStore) (*ProfileService, error) {
	if principals == nil {
		return nil, oops.Code("PROFILE_SERVICE_INVALID").Errorf("principal store is required")
	}
	return &ProfileService{principals: principals}, nil
}

// Me returns the principal linked to the credential named by an access
// token's subject.
func (s *ProfileService) Me(ctx context.Context, subject string) (*Principal, error) {
	identityID, err := credentialIDFromSubject(subject)
	if err != nil {
		return nil, err
	}
	principal, err := s.principals.GetByIdentityID(ctx, identityID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code("PRINCIPAL_NOT_FOUND").With("identity_id", identityID.String()).Wrap(err)
		}
		return nil, oops.Code("PROFILE_LOOKUP_FAILED").With("operation", "get principal by identity").Wrap(err)
	}
	return principal, nil
}

// Get returns the principal with the given id.
func (s *ProfileService) Get(ctx context.Context, id string) (*Principal, error) {
	principal, err := s.principals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code("PRINCIPAL_NOT_FOUND").With("principal_id", id).Wrap(err)
		}
		return nil, oops.Code("PROFILE_LOOKUP_FAILED").With("operation", "get principal").Wrap(err)
	}
	return principal, nil
}
