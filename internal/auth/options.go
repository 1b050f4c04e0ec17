// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/gatekeeper/gatekeeper/internal/token"
)

// TokenIssuer issues token pairs. Implemented by *token.Issuer.
type TokenIssuer interface {
	Issue(req token.Request) (token.Pair, error)
}

// Transactor runs fn inside a single transaction shared by every store that
// is enlisted in it. fn's error rolls the transaction back and is returned.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ServiceOption configures a service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	logger     *slog.Logger
	now        func() time.Time
	transactor Transactor
}

func defaultServiceOptions() serviceOptions {
	return serviceOptions{
		logger: slog.Default(),
		now:    time.Now,
	}
}

// WithLogger sets the logger. A nil logger is rejected by the constructors.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(o *serviceOptions) {
		o.now = now
	}
}

// WithTransactor makes registration run inside one shared transaction.
// Without it, registration undoes partial writes with compensating deletes.
func WithTransactor(tx Transactor) ServiceOption {
	return func(o *serviceOptions) {
		o.transactor = tx
	}
}
