package board_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/charlaboard/internal/board"
	"github.com/nhle/charlaboard/internal/model"
	"github.com/nhle/charlaboard/tests/testutil"
)

func TestBoard_PersistsThroughSQLite(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	b := board.New(s, nil)
	require.NoError(t, b.Load(ctx, false))

	created, err := b.Create(ctx, "", "Recordatorio para la semana", true)
	require.NoError(t, err)
	require.NoError(t, b.MoveTo(ctx, created.ID, model.ColumnDone))

	// A second board over the same store sees the mutated state.
	b2 := board.New(s, nil)
	require.NoError(t, b2.Load(ctx, true))

	cards := b2.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, created.ID, cards[0].ID)
	assert.Equal(t, model.ColumnDone, cards[0].Column)
	assert.Equal(t, []string{"Recordatorio"}, cards[0].Tags)
}

func TestBoard_EveryMutationWrites(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	b := board.New(s, nil)
	require.NoError(t, b.Load(ctx, false))

	card, err := b.Create(ctx, "Charla", "contenido", false)
	require.NoError(t, err)
	require.NoError(t, b.Delete(ctx, card.ID))

	// The delete reached storage, not just memory.
	fresh := board.New(s, nil)
	require.NoError(t, fresh.Load(ctx, true))
	assert.Empty(t, fresh.Cards())
}
