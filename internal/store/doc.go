// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

// Package store owns database connectivity and schema migrations for the
// identity and app schemas.
package store
