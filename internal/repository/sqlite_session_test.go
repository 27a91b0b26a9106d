package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	state := domain.TurnState{Continuation: true, PendingHeader: "world_info", Seeds: []string{"lantern", "harbor"}}
	s := testutil.NewTestSession("Heist", testutil.WithActionCount(3), testutil.WithTurnState(state))
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heist", got.Title)
	assert.Equal(t, domain.SessionActive, got.Status)
	assert.Equal(t, 3, got.ActionCount)
	assert.Equal(t, state, got.State)
	assert.Nil(t, got.ExportedAt)
	assert.WithinDuration(t, s.CreatedAt, got.CreatedAt, time.Millisecond)

	done := testutil.NewTestSession("Finished", testutil.WithSessionStatus(domain.SessionComplete))
	require.NoError(t, repo.Create(ctx, done))
	got, err = repo.GetByID(ctx, done.ID)
	require.NoError(t, err)
	assert.True(t, got.IsComplete())
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_GetByPrefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	a := testutil.NewTestSession("A", testutil.WithSessionID("abc12345-0000"))
	b := testutil.NewTestSession("B", testutil.WithSessionID("abd99999-0000"))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	tests := []struct {
		name    string
		prefix  string
		wantID  string
		wantErr error
	}{
		{"full id", "abc12345-0000", a.ID, nil},
		{"unique prefix", "abc", a.ID, nil},
		{"other session", " abd9 ", b.ID, nil},
		{"ambiguous", "ab", "", ErrAmbiguousPrefix},
		{"no match", "zzz", "", ErrNotFound},
		{"empty", "", "", ErrNotFound},
		{"wildcards are literal", "%", "", ErrNotFound},
		{"underscore is literal", "ab_", "", ErrNotFound},
		{"backslash is literal", `ab\`, "", ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByPrefix(ctx, tt.prefix)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSessionRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := testutil.NewTestSession("Old", testutil.WithUpdatedAt(base))
	recent := testutil.NewTestSession("Recent", testutil.WithUpdatedAt(base.Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Recent", list[0].Title)
	assert.Equal(t, "Old", list[1].Title)
}

func TestSessionRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	s := testutil.NewTestSession("Draft")
	require.NoError(t, repo.Create(ctx, s))

	exported := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	s.Status = domain.SessionComplete
	s.ActionCount = 7
	s.ExportedAt = &exported
	s.State.Record("Context Parsing Error", "bad line")
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.IsComplete())
	assert.Equal(t, 7, got.ActionCount)
	require.NotNil(t, got.ExportedAt)
	assert.True(t, exported.Equal(*got.ExportedAt))
	assert.True(t, got.State.Failed())
}

func TestSessionRepo_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)

	err := repo.Update(context.Background(), testutil.NewTestSession("Ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	sessions := NewSQLiteSessionRepo(db)
	cards := NewSQLiteCardRepo(db)
	turns := NewSQLiteTurnRepo(db)

	s := testutil.NewTestSession("Doomed")
	require.NoError(t, sessions.Create(ctx, s))
	require.NoError(t, cards.Upsert(ctx, testutil.NewTestCard(s.ID, domain.RoleOutline, "Overview\n> Tags: ...")))
	require.NoError(t, turns.Append(ctx, testutil.NewTestTurn(s.ID, domain.TurnOpening, "\nOverview\n")))

	require.NoError(t, sessions.Delete(ctx, s.ID))

	_, err := cards.Get(ctx, s.ID, domain.RoleOutline)
	assert.ErrorIs(t, err, ErrNotFound, "card should be cascade-deleted with its session")
	list, err := turns.ListBySession(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, list, "turns should be cascade-deleted with their session")

	assert.ErrorIs(t, sessions.Delete(ctx, s.ID), ErrNotFound)
}
