package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRepo_UpsertReplacesContent(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	sessions := NewSQLiteSessionRepo(db)
	repo := NewSQLiteCardRepo(db)

	s := testutil.NewTestSession("Cards")
	require.NoError(t, sessions.Create(ctx, s))

	first := testutil.NewTestCard(s.ID, domain.RoleOutline, "Overview\n> Tags: ...", testutil.WithCardNotes("edit me"))
	require.NoError(t, repo.Upsert(ctx, first))

	second := testutil.NewTestCard(s.ID, domain.RoleOutline, "Overview\n> Genre: ...", testutil.WithCardTitle("Outline v2"))
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.Get(ctx, s.ID, domain.RoleOutline)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID, "upsert keeps the original row")
	assert.Equal(t, "Overview\n> Genre: ...", got.Entry)
	assert.Equal(t, "Outline v2", got.Title)
	assert.Empty(t, got.Notes)
}

func TestCardRepo_OneCardPerRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	sessions := NewSQLiteSessionRepo(db)
	repo := NewSQLiteCardRepo(db)

	s := testutil.NewTestSession("Cards")
	require.NoError(t, sessions.Create(ctx, s))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestCard(s.ID, domain.RoleSettings, "General Settings")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestCard(s.ID, domain.RoleOutline, "Overview")))

	cards, err := repo.ListBySession(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, domain.RoleOutline, cards[0].Role)
	assert.Equal(t, domain.RoleSettings, cards[1].Role)
}

func TestCardRepo_Errors(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteCardRepo(db)

	_, err := repo.Get(ctx, "nope", domain.RoleSettings)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Upsert(ctx, testutil.NewTestCard("nope", domain.DocumentRole("notes"), ""))
	assert.ErrorContains(t, err, "invalid card role")

	err = repo.Upsert(ctx, testutil.NewTestCard("nope", domain.RoleOutline, ""))
	assert.Error(t, err, "foreign key should reject a card without a session")
}
