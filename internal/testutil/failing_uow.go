package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/fittrack/internal/db"
)

// FailOnNthExecUoW injects Err on the Nth write inside a transaction, so tests
// can check that a progress transition commits all of its rows or none.
//
// Writes are ExecContext calls counted from 1. When Match is set only
// statements containing it are counted, e.g. "INSERT INTO completed_sets".
// Reads pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Match  string
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingTx{DBTX: tx, failOn: u.FailOn, match: u.Match, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	match  string
	err    error
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.match == "" || strings.Contains(query, f.match) {
		if f.count.Add(1) == f.failOn {
			return nil, f.err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
