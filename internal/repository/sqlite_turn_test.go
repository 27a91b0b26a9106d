package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnRepo_AppendAssignsSequence(t *testing.T) {
	other := testutil.NewTestSession("Other")
	db := testutil.NewTestDB(t, testutil.Seed{Session: other, Turns: []string{"\nOverview\n", "Tags: Crime\n"}})
	ctx := context.Background()
	sessions := NewSQLiteSessionRepo(db)
	repo := NewSQLiteTurnRepo(db)

	s := testutil.NewTestSession("Turns")
	require.NoError(t, sessions.Create(ctx, s))

	texts := []struct {
		kind domain.TurnKind
		text string
	}{
		{domain.TurnOpening, "\nOverview\nTags: Crime\n"},
		{domain.TurnOutput, "Genre: Noir\n"},
		{domain.TurnInput, "\n"},
		{domain.TurnOutput, "Synopsis: A heist."},
	}
	for i, tt := range texts {
		turn := testutil.NewTestTurn(s.ID, tt.kind, tt.text)
		require.NoError(t, repo.Append(ctx, turn))
		assert.Equal(t, i, turn.Seq)
	}

	o := testutil.NewTestTurn(other.ID, domain.TurnOutput, "Genre: Noir\n")
	require.NoError(t, repo.Append(ctx, o))
	assert.Equal(t, 2, o.Seq, "sequences are per session")

	list, err := repo.ListBySession(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "\nOverview\nTags: Crime\nGenre: Noir\n\nSynopsis: A heist.", domain.JoinTurns(list))
	assert.Equal(t, domain.TurnOpening, list[0].Kind)
	assert.Equal(t, 3, list[3].Seq)
}

func TestTurnRepo_ListsSeededTranscript(t *testing.T) {
	s := testutil.NewTestSession("Seeded")
	db := testutil.NewTestDB(t, testutil.Seed{Session: s, Turns: []string{"\nOverview\nTags: Crime\n", "Genre: Noir\n"}})
	ctx := context.Background()

	list, err := NewSQLiteTurnRepo(db).ListBySession(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.TurnOpening, list[0].Kind)
	assert.Equal(t, domain.TurnOutput, list[1].Kind)
	assert.Equal(t, "\nOverview\nTags: Crime\nGenre: Noir\n", domain.JoinTurns(list))

	stored, err := NewSQLiteSessionRepo(db).GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ActionCount)
}

func TestTurnRepo_EmptySession(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteTurnRepo(db)

	list, err := repo.ListBySession(ctx, "none")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTurnRepo_AppendRejectsUnknownSession(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTurnRepo(db)

	err := repo.Append(context.Background(), testutil.NewTestTurn("missing", domain.TurnInput, "x"))
	assert.Error(t, err)
}
