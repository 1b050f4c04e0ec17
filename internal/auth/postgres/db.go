// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

// Package postgres implements the auth stores on PostgreSQL.
//
// Credentials, roles and refresh tokens live in the identity schema;
// principals live in the app schema. The two schemas may share a database, in
// which case a Transactor enlists every repository built on the same pool in
// one transaction, or live in separate databases, in which case registration
// falls back to compensating deletes.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the query surface shared by *pgxpool.Pool, pgx.Tx and pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is a DB that can start transactions.
type Pool interface {
	DB
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txKey struct{}

// txState ties an open transaction to the pool it was started on, so a
// repository on a different database never picks it up.
type txState struct {
	owner DB
	tx    pgx.Tx
}

// execerFromCtx returns the transaction in ctx if it was started on db,
// otherwise db itself.
func execerFromCtx(ctx context.Context, db DB) DB {
	if st, ok := ctx.Value(txKey{}).(*txState); ok && st.owner == db {
		return st.tx
	}
	return db
}
