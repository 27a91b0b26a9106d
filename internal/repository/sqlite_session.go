package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariogen/internal/db"
	"github.com/alexanderramin/scenariogen/internal/domain"
)

// ErrAmbiguousPrefix is returned when an ID prefix matches several sessions.
var ErrAmbiguousPrefix = errors.New("ambiguous session id prefix")

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

const sessionColumns = `id, title, status, action_count, state, exported_at, created_at, updated_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	state, err := encodeState(s.State)
	if err != nil {
		return err
	}
	query := `INSERT INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Title,
		string(s.Status),
		s.ActionCount,
		state,
		nullableTimeToString(s.ExportedAt),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.Session, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, fmt.Errorf("session %q: %w", prefix, ErrNotFound)
	}
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id LIKE ? || '%' ESCAPE '\' ORDER BY created_at LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, escapeLike(prefix))
	if err != nil {
		return nil, fmt.Errorf("looking up session prefix: %w", err)
	}
	defer rows.Close()

	sessions, err := r.scanSessions(rows)
	if err != nil {
		return nil, err
	}
	switch len(sessions) {
	case 0:
		return nil, fmt.Errorf("session %q: %w", prefix, ErrNotFound)
	case 1:
		return sessions[0], nil
	default:
		return nil, fmt.Errorf("session %q: %w", prefix, ErrAmbiguousPrefix)
	}
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY updated_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	state, err := encodeState(s.State)
	if err != nil {
		return err
	}
	s.UpdatedAt = nowUTC()
	query := `UPDATE sessions SET title = ?, status = ?, action_count = ?, state = ?, exported_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Title,
		string(s.Status),
		s.ActionCount,
		state,
		nullableTimeToString(s.ExportedAt),
		formatTime(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return requireAffected(res, "session")
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return requireAffected(res, "session")
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteSessionRepo) scanSession(row scanner) (*domain.Session, error) {
	var (
		s                    domain.Session
		status, state        string
		exportedAt           sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(&s.ID, &s.Title, &status, &s.ActionCount, &state, &exportedAt, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	s.Status = domain.SessionStatus(status)
	if s.State, err = decodeState(state); err != nil {
		return nil, err
	}
	s.ExportedAt = parseNullableTime(exportedAt)
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
