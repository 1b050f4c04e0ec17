// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package api

import (
	"context"
	"time"

	"github.com/gatekeeper/gatekeeper/internal/auth"
	"github.com/gatekeeper/gatekeeper/internal/token"
)

// Registrar creates accounts.
type Registrar interface {
	Register(ctx context.Context, name, email, password string) (token.Pair, error)
}

// Authenticator exchanges credentials or a refresh token for a token pair.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (token.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (token.Pair, error)
}

// Profiles reads principals.
type Profiles interface {
	Me(ctx context.Context, subject string) (*auth.Principal, error)
	Get(ctx context.Context, id string) (*auth.Principal, error)
}

// TokenVerifier validates bearer access tokens.
type TokenVerifier interface {
	Parse(raw string) (*token.Claims, error)
}

// Metrics receives request and auth outcome observations.
type Metrics interface {
	RecordAuth(operation, outcome string)
	ObserveRequest(route, method string, status int, d time.Duration)
	RecordRateLimited(route string)
}

type noopMetrics struct{}

func (noopMetrics) RecordAuth(string, string) {}
func (noopMetrics) ObserveRequest(string, string, int, time.Duration) {}
func (noopMetrics) RecordRateLimited(string) {}
