// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

// Package token issues and verifies the bearer credentials handed to clients.
//
// An [Issuer] turns a [Request] (user id, email, roles) into a [Pair]: a
// short-lived HS256 access token that carries its own expiry, and an opaque
// refresh token that is only meaningful to the refresh token store. The
// issuer never touches storage; persisting the refresh token is the caller's
// job.
//
// The signing configuration is validated once, by [NewIssuer]. A
// misconfigured issuer is a startup failure, never a per-request one.
package token
