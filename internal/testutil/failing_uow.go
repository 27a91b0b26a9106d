package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariogen/internal/db"
)

// FailOnStatementUoW runs fn in a real transaction but fails the write whose
// SQL starts with Statement (compared with whitespace collapsed), after
// letting Skip earlier matches through. Reads are never failed.
//
//	&FailOnStatementUoW{DB: d, Statement: "INSERT INTO turns", Skip: 1}
//
// fails the second turn a save appends.
type FailOnStatementUoW struct {
	DB        *sql.DB
	Statement string
	Skip      int
	Err       error

	// Executed lists the statements that ran before the failure.
	Executed []string
}

func (u *FailOnStatementUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if fnErr := fn(ctx, &failingTx{DBTX: tx, uow: u}); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	uow *FailOnStatementUoW
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	stmt := strings.Join(strings.Fields(query), " ")
	if strings.HasPrefix(stmt, f.uow.Statement) {
		if f.uow.Skip == 0 {
			return nil, f.uow.Err
		}
		f.uow.Skip--
	}
	f.uow.Executed = append(f.uow.Executed, stmt)
	return f.DBTX.ExecContext(ctx, query, args...)
}
