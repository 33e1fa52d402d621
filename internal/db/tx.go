// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
)

type lazyTxContextKey struct{}

// lazyTx wraps transaction state for lazy initialization.
type lazyTx struct {
	db        *sql.DB
	tx        TxInterface
	committed bool
	cancel    context.CancelFunc
}

// get returns the transaction, creating it lazily on first call.
func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// detached from the request context so a client disconnect cannot roll back a
	// transaction halfway through the commit, bounded by defaultTxTimeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: false})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) isStarted() bool {
	return lt.tx != nil
}

func (lt *lazyTx) release() {
	if lt.cancel != nil {
		lt.cancel()
	}
}

// failedRunner reports the error that prevented a transaction from starting.
type failedRunner struct {
	err error
}

func (f *failedRunner) Exec(string, ...interface{}) (sql.Result, error) {
	return nil, f.err
}

func (f *failedRunner) Query(string, ...interface{}) (*sql.Rows, error) {
	return nil, f.err
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		return lt
	}
	return nil
}

func contextWithLazyTx(ctx context.Context, lt *lazyTx) context.Context {
	return context.WithValue(ctx, lazyTxContextKey{}, lt)
}
