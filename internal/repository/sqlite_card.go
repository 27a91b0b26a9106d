package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/scenariogen/internal/db"
	"github.com/alexanderramin/scenariogen/internal/domain"
)

// SQLiteCardRepo implements CardRepo using a SQLite database.
type SQLiteCardRepo struct {
	db db.DBTX
}

// NewSQLiteCardRepo creates a new SQLiteCardRepo.
func NewSQLiteCardRepo(db db.DBTX) *SQLiteCardRepo {
	return &SQLiteCardRepo{db: db}
}

const cardColumns = `id, session_id, role, title, entry, notes, created_at, updated_at`

func (r *SQLiteCardRepo) Upsert(ctx context.Context, c *domain.Card) error {
	if !domain.ValidDocumentRoles[c.Role] {
		return fmt.Errorf("invalid card role %q", c.Role)
	}
	c.UpdatedAt = nowUTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = c.UpdatedAt
	}
	query := `INSERT INTO cards (` + cardColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, role) DO UPDATE SET
			title = excluded.title,
			entry = excluded.entry,
			notes = excluded.notes,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.SessionID,
		string(c.Role),
		c.Title,
		c.Entry,
		c.Notes,
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting %s card: %w", c.Role, err)
	}
	return nil
}

func (r *SQLiteCardRepo) Get(ctx context.Context, sessionID string, role domain.DocumentRole) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE session_id = ? AND role = ?`
	c, err := scanCard(r.db.QueryRowContext(ctx, query, sessionID, string(role)))
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%s card: %w", role, ErrNotFound)
	}
	return c, err
}

func (r *SQLiteCardRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE session_id = ? ORDER BY role`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func scanCard(row scanner) (*domain.Card, error) {
	var (
		c                    domain.Card
		role                 string
		createdAt, updatedAt string
	)
	err := row.Scan(&c.ID, &c.SessionID, &role, &c.Title, &c.Entry, &c.Notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("card: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning card: %w", err)
	}
	c.Role = domain.DocumentRole(role)
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
