// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

// PoolOptions tunes Open.
type PoolOptions struct {
	// ConnectAttempts bounds the number of pings before Open gives up.
	ConnectAttempts uint64
	// ConnectBackoff is the initial wait between pings; it doubles each time.
	ConnectBackoff time.Duration
}

// DefaultPoolOptions allows a database that is still starting a few seconds
// to come up.
func DefaultPoolOptions() PoolOptions {
	return PoolOptions{ConnectAttempts: 5, ConnectBackoff: 200 * time.Millisecond}
}

// Open creates a pool for databaseURL and waits until the database answers a
// ping.
func Open(ctx context.Context, databaseURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		// The parse error can echo the URL, password included.
		return nil, oops.Code("DB_CONFIG_INVALID").Errorf("database url is malformed")
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, oops.Code("DB_CONNECT_FAILED").With("host", cfg.ConnConfig.Host).Wrap(err)
	}

	if opts.ConnectBackoff <= 0 {
		opts.ConnectBackoff = DefaultPoolOptions().ConnectBackoff
	}
	backoff := retry.WithMaxRetries(opts.ConnectAttempts, retry.NewExponential(opts.ConnectBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, oops.Code("DB_CONNECT_FAILED").
			With("host", cfg.ConnConfig.Host).
			With("database", cfg.ConnConfig.Database).
			Wrap(err)
	}
	return pool, nil
}
