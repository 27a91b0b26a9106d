package db_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/scenariogen/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertSession = `INSERT INTO sessions (id, title, created_at, updated_at) VALUES (?, ?, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`

func openStore(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func sessionTitle(t *testing.T, database *sql.DB, id string) (string, bool) {
	t.Helper()
	var title string
	err := database.QueryRow(`SELECT title FROM sessions WHERE id = ?`, id).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	require.NoError(t, err)
	return title, true
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database := openStore(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertSession, "s1", "Heist"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO turns (id, session_id, seq, kind, text, created_at) VALUES ('t1', 's1', 0, 'opening', 'x', '2026-01-01T00:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	title, found := sessionTitle(t, database, "s1")
	assert.True(t, found, "session should exist after commit")
	assert.Equal(t, "Heist", title)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database := openStore(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertSession, "s2", "Heist"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.NotErrorIs(t, err, db.ErrBusy)

	_, found := sessionTitle(t, database, "s2")
	assert.False(t, found, "session should not exist after rollback")
}

func TestWithinTx_RollbackOnConstraintFailure(t *testing.T) {
	database := openStore(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertSession, "s3", "Heist"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO turns (id, session_id, seq, kind, text, created_at) VALUES ('t1', 's3', 0, 'bogus', 'x', '2026-01-01T00:00:00Z')`)
		return err
	})
	require.Error(t, err)

	_, found := sessionTitle(t, database, "s3")
	assert.False(t, found)
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database := openStore(t)
	uow := db.NewSQLiteUnitOfWork(database)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertSession, "s4", "Heist")
			panic("boom")
		})
	})

	_, found := sessionTitle(t, database, "s4")
	assert.False(t, found, "session should not exist after panic rollback")
}

func TestWithinTx_RetriesWhileLocked(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.db")

	holder, err := db.OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { holder.Close() })
	lock, err := holder.Conn(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { lock.Close() })
	_, err = lock.ExecContext(ctx, "BEGIN IMMEDIATE")
	require.NoError(t, err)

	other, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { other.Close() })
	other.SetMaxOpenConns(1)
	_, err = other.Exec("PRAGMA busy_timeout = 0")
	require.NoError(t, err)

	uow := db.NewSQLiteUnitOfWork(other)
	calls := 0
	write := func(ctx context.Context, tx db.DBTX) error {
		calls++
		_, err := tx.ExecContext(ctx, insertSession, "s5", "Heist")
		return err
	}

	err = uow.WithinTx(ctx, write)
	require.ErrorIs(t, err, db.ErrBusy)
	assert.Equal(t, 3, calls)

	_, err = lock.ExecContext(ctx, "ROLLBACK")
	require.NoError(t, err)

	require.NoError(t, uow.WithinTx(ctx, write))
	assert.Equal(t, 4, calls)
	title, found := sessionTitle(t, holder, "s5")
	assert.True(t, found)
	assert.Equal(t, "Heist", title)
}
