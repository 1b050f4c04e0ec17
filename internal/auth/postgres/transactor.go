// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package postgres

import (
	"context"

	"github.com/samber/oops"

	"github.com/gatekeeper/gatekeeper/internal/auth"
)

// Transactor implements auth.Transactor over a pool. Repositories built on
// the same pool join the transaction through the context.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// InTransaction runs fn in a transaction, committing if fn returns nil and
// rolling back otherwise. A nested call reuses the outer transaction.
func (t *Transactor) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if st, ok := ctx.Value(txKey{}).(*txState); ok && st.owner == DB(t.pool) {
		return fn(ctx)
	}

	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return oops.Code("TX_BEGIN_FAILED").Wrap(err)
	}

	committed := false
	defer func() {
		if !committed {
			// Rollback must run even if the caller's context is already done.
			_ = tx.Rollback(context.WithoutCancel(ctx)) //nolint:errcheck // original error takes precedence
		}
	}()

	txCtx := context.WithValue(ctx, txKey{}, &txState{owner: t.pool, tx: tx})
	if err := fn(txCtx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		// A failed commit leaves nothing to roll back.
		committed = true
		return oops.Code("TX_COMMIT_FAILED").Wrap(err)
	}
	committed = true
	return nil
}

var _ auth.Transactor = (*Transactor)(nil)
