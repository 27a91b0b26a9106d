package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/scenariogen/internal/db"
	"github.com/alexanderramin/scenariogen/internal/domain"
)

// Seed is a session row written straight into the schema, with its
// transcript already played. The first turn is stored as the opening and the
// rest as outputs; ActionCount is set to the number of turns.
type Seed struct {
	Session *domain.Session
	Turns   []string
}

// NewTestDB opens an in-memory session store with migrations applied and the
// seeds inserted. The database is closed when the test completes.
func NewTestDB(t *testing.T, seeds ...Seed) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	for _, s := range seeds {
		insertSeed(t, database, s)
	}
	return database
}

func insertSeed(t *testing.T, database *sql.DB, s Seed) {
	t.Helper()
	sess := s.Session
	sess.ActionCount = len(s.Turns)
	state, err := json.Marshal(sess.State)
	if err != nil {
		t.Fatalf("encoding seed state: %v", err)
	}
	_, err = database.Exec(`INSERT INTO sessions (id, title, status, action_count, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Title, string(sess.Status), sess.ActionCount, string(state),
		sess.CreatedAt.Format(time.RFC3339Nano), sess.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		t.Fatalf("seeding session %s: %v", sess.ID, err)
	}

	for seq, text := range s.Turns {
		kind := domain.TurnOutput
		if seq == 0 {
			kind = domain.TurnOpening
		}
		_, err := database.Exec(`INSERT INTO turns (id, session_id, seq, kind, text, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), sess.ID, seq, string(kind), text, sess.CreatedAt.Format(time.RFC3339Nano))
		if err != nil {
			t.Fatalf("seeding turn %d of %s: %v", seq, sess.ID, err)
		}
	}
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
