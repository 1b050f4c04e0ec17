// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

// Package auth registers principals, authenticates credentials and rotates
// refresh tokens.
//
// # Domain Types
//
// Domain types should be created using their constructors:
//   - NewCredential - a Credential with a normalized email and password hash
//   - NewPrincipal - a Principal with a fresh "u_" prefixed id
//   - NewRefreshToken - a RefreshToken bound to a credential and expiry
//
// Direct struct initialization bypasses validation and may create invalid state.
//
// # Stores
//
// Three stores back the package. The Credential Store (CredentialStore,
// implemented by CredentialService over a CredentialRepository) owns email
// uniqueness, the password policy and role membership. The Principal Store
// (PrincipalStore) owns the user records exposed to the application. The
// Refresh Token Store (RefreshTokenStore) maps opaque refresh tokens to
// credentials.
//
// # Services
//
//   - RegistrationService - creates credential, default role, principal and
//     first refresh token as one unit, through a shared Transactor or, when
//     the stores live in different databases, with compensating deletes
//   - Service - Login and Refresh
//   - ProfileService - principal lookups for authenticated callers
//
// Services are created with New*Service constructors that validate dependencies.
//
// # Errors
//
// Failures reach callers in three shapes. Registration rejections wrap a
// *RegistrationError carrying a reason code to description map. Every login
// and refresh rejection wraps ErrUnauthorized with the same message, whatever
// the cause. Anything else is a store failure and should be reported as a
// generic server error.
package auth
