package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DBTX is what repositories run their statements against: the shared
// *sql.DB for reads, or the *sql.Tx of a turn being saved.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// ErrBusy is returned when another process kept the session store locked
// through every attempt.
var ErrBusy = errors.New("session store is busy")

// UnitOfWork runs a group of writes atomically. A turn touches the session
// row, its cards and its turn log together; callers build tx-scoped
// repositories from the DBTX handed to fn.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

const (
	txAttempts  = 3
	busyBackoff = 50 * time.Millisecond
)

// SQLiteUnitOfWork implements UnitOfWork with database/sql transactions.
// The CLI and a running server may share one database file, so a
// transaction that hits SQLITE_BUSY is rolled back and run again.
type SQLiteUnitOfWork struct {
	db *sql.DB
}

// NewSQLiteUnitOfWork creates a UnitOfWork backed by db.
func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

// WithinTx commits when fn returns nil and rolls back on error or panic.
// Panics are re-raised after the rollback. fn may run more than once, so it
// must not keep side effects outside tx.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	var err error
	for attempt := 1; attempt <= txAttempts; attempt++ {
		err = u.run(ctx, fn)
		if !isBusy(err) {
			return err
		}
		if attempt == txAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * busyBackoff):
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrBusy, txAttempts, err)
}

func (u *SQLiteUnitOfWork) run(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// isBusy reports whether err carries SQLITE_BUSY or one of its extended codes.
func isBusy(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_BUSY
}
