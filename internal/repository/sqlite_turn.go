package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/scenariogen/internal/db"
	"github.com/alexanderramin/scenariogen/internal/domain"
)

// SQLiteTurnRepo implements TurnRepo using a SQLite database.
type SQLiteTurnRepo struct {
	db db.DBTX
}

// NewSQLiteTurnRepo creates a new SQLiteTurnRepo.
func NewSQLiteTurnRepo(db db.DBTX) *SQLiteTurnRepo {
	return &SQLiteTurnRepo{db: db}
}

const turnColumns = `id, session_id, seq, kind, text, created_at`

func (r *SQLiteTurnRepo) Append(ctx context.Context, t *domain.Turn) error {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), -1) + 1 FROM turns WHERE session_id = ?`, t.SessionID,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("next turn sequence: %w", err)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = nowUTC()
	}

	query := `INSERT INTO turns (` + turnColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		t.SessionID,
		next,
		string(t.Kind),
		t.Text,
		formatTime(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("appending turn: %w", err)
	}
	t.Seq = next
	return nil
}

func (r *SQLiteTurnRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.Turn, error) {
	query := `SELECT ` + turnColumns + ` FROM turns WHERE session_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing turns: %w", err)
	}
	defer rows.Close()

	var turns []*domain.Turn
	for rows.Next() {
		t, err := scanTurn(rows)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

func scanTurn(row scanner) (*domain.Turn, error) {
	var (
		t         domain.Turn
		kind      string
		createdAt string
	)
	err := row.Scan(&t.ID, &t.SessionID, &t.Seq, &kind, &t.Text, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scanning turn: %w", err)
	}
	t.Kind = domain.TurnKind(kind)
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &t, nil
}
