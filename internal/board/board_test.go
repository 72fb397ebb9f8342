package board_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/charlaboard/internal/board"
	"github.com/nhle/charlaboard/internal/model"
	"github.com/nhle/charlaboard/internal/store"
)

func newBoard(t *testing.T) (*board.Board, *store.MemoryBlob) {
	t.Helper()

	blob := &store.MemoryBlob{}
	b := board.New(blob, nil)
	require.NoError(t, b.Load(context.Background(), false))
	return b, blob
}

func TestLoad_SeedsExampleCard(t *testing.T) {
	b := board.New(&store.MemoryBlob{}, nil)
	require.NoError(t, b.Load(context.Background(), true))

	cards := b.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "Propuesta ChocoBoo", cards[0].Title)
	assert.Equal(t, []string{"ChocoBoo", "Diseño"}, cards[0].Tags)
	assert.Equal(t, model.ColumnIdeas, cards[0].Column)
}

func TestLoad_NoSeedWhenDisabled(t *testing.T) {
	b, _ := newBoard(t)
	assert.Empty(t, b.Cards())
}

func TestLoad_ReadsPersistedState(t *testing.T) {
	ctx := context.Background()
	blob := &store.MemoryBlob{}

	b := board.New(blob, nil)
	require.NoError(t, b.Load(ctx, false))
	created, err := b.Create(ctx, "Nota", "Contenido de la nota", false)
	require.NoError(t, err)

	b2 := board.New(blob, nil)
	require.NoError(t, b2.Load(ctx, true))

	cards := b2.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, created, cards[0])
}

func TestCreate_UniqueIDs(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		card, err := b.Create(ctx, "", "texto", false)
		require.NoError(t, err)
		assert.False(t, seen[card.ID], "duplicate id %d", card.ID)
		seen[card.ID] = true
	}
}

func TestCreate_DerivesFields(t *testing.T) {
	b, _ := newBoard(t)

	card, err := b.Create(context.Background(), "",
		"Diseño de branding para un negocio nuevo", true)
	require.NoError(t, err)

	assert.Subset(t, card.Tags, []string{"Diseño", "branding", "Negocios"})
	assert.Equal(t, model.ColumnDev, card.Column)
	assert.Equal(t, "Diseño de branding para un negocio nuevo", card.Summary)
	// No title given, so a short summary of the content stands in.
	assert.Equal(t, "Diseño de branding para un negocio nuevo", card.Title)
	assert.False(t, card.Date.IsZero())
}

func TestCreate_AutoClassifyDisabled(t *testing.T) {
	b, _ := newBoard(t)

	card, err := b.Create(context.Background(), "Charla",
		"Recordatorio para cerrar el trato", false)
	require.NoError(t, err)

	// Tags are still derived; only the column stays at the default.
	assert.NotEmpty(t, card.Tags)
	assert.Equal(t, model.ColumnIdeas, card.Column)
}

func TestCreate_InsertsAtFront(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	first, err := b.Create(ctx, "primera", "uno", false)
	require.NoError(t, err)
	second, err := b.Create(ctx, "segunda", "dos", false)
	require.NoError(t, err)

	cards := b.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, second.ID, cards[0].ID)
	assert.Equal(t, first.ID, cards[1].ID)
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	_, err := b.Create(ctx, "Charla", "contenido", false)
	require.NoError(t, err)
	before := b.Cards()

	title := "otro título"
	require.NoError(t, b.Update(ctx, 424242, board.CardPatch{Title: &title}))

	assert.Equal(t, before, b.Cards())
}

func TestUpdate_MergesPatch(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	card, err := b.Create(ctx, "Charla", "contenido original", false)
	require.NoError(t, err)

	title := "editada"
	tags := []string{"Idea", "Idea", "Humor"}
	require.NoError(t, b.Update(ctx, card.ID, board.CardPatch{
		Title: &title,
		Tags:  &tags,
	}))

	got, ok := b.Get(card.ID)
	require.True(t, ok)
	assert.Equal(t, "editada", got.Title)
	assert.Equal(t, []string{"Idea", "Humor"}, got.Tags)
	// Untouched fields survive.
	assert.Equal(t, card.Content, got.Content)
	assert.Equal(t, card.Column, got.Column)
	assert.Equal(t, card.Date, got.Date)
}

func TestUpdate_RejectsUnknownColumn(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	card, err := b.Create(ctx, "Charla", "contenido", false)
	require.NoError(t, err)

	bogus := model.Column("archived")
	err = b.Update(ctx, card.ID, board.CardPatch{Column: &bogus})
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	card, err := b.Create(ctx, "Charla", "contenido", false)
	require.NoError(t, err)

	require.NoError(t, b.Delete(ctx, card.ID))
	assert.Empty(t, b.Cards())

	// Deleting again is a no-op.
	require.NoError(t, b.Delete(ctx, card.ID))
}

func TestMoveTo(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	card, err := b.Create(ctx, "Charla", "contenido", false)
	require.NoError(t, err)

	require.NoError(t, b.MoveTo(ctx, card.ID, model.ColumnDone))

	got, _ := b.Get(card.ID)
	assert.Equal(t, model.ColumnDone, got.Column)
}

func TestMutation_SurfacesStorageFailure(t *testing.T) {
	b, blob := newBoard(t)
	ctx := context.Background()

	blob.FailSave = errors.New("disk full")
	_, err := b.Create(ctx, "Charla", "contenido", false)
	assert.ErrorIs(t, err, board.ErrStorage)

	// The in-memory mutation is kept.
	assert.Len(t, b.Cards(), 1)
}

func TestImport_RoundTrip(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	for _, content := range []string{
		"Idea de video para el canal",
		"Recordatorio. Llamar al cliente de diseño.",
		"Cerrar la charla de spotify",
	} {
		_, err := b.Create(ctx, "", content, true)
		require.NoError(t, err)
	}
	original := b.Cards()

	data, err := b.Export()
	require.NoError(t, err)

	fresh, _ := newBoard(t)
	report, err := fresh.Import(ctx, data)
	require.NoError(t, err)

	assert.Equal(t, len(original), report.Imported)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, original, fresh.Cards())
}

func TestImport_AppendsAfterExisting(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	existing, err := b.Create(ctx, "local", "contenido local", false)
	require.NoError(t, err)

	data := []byte(`[{"id":7,"title":"importada","content":"x","tags":[],"column":"dev","date":"2025-01-02T03:04:05Z"}]`)
	report, err := b.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)

	cards := b.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, existing.ID, cards[0].ID)
	assert.Equal(t, int64(7), cards[1].ID)
}

func TestImport_ExistingWinsIDConflict(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	existing, err := b.Create(ctx, "local", "contenido local", false)
	require.NoError(t, err)

	data := []byte(fmt.Sprintf(
		`[{"id":%d,"title":"sombra","content":"y","tags":[],"column":"ideas","date":"2025-01-02T03:04:05Z"}]`,
		existing.ID))

	report, err := b.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, 1, report.Duplicates)

	got, _ := b.Get(existing.ID)
	assert.Equal(t, "local", got.Title)
}

func TestImport_AssignsIDsToAnonymousEntries(t *testing.T) {
	b, _ := newBoard(t)

	data := []byte(`[{"title":"sin id","content":"x","column":"ideas","date":"2025-01-02T03:04:05Z"}]`)
	report, err := b.Import(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)

	cards := b.Cards()
	require.Len(t, cards, 1)
	assert.NotZero(t, cards[0].ID)
}

func TestImport_MalformedDocumentLeavesStateAlone(t *testing.T) {
	b, _ := newBoard(t)
	ctx := context.Background()

	_, err := b.Create(ctx, "Charla", "contenido", false)
	require.NoError(t, err)
	before := b.Cards()

	_, err = b.Import(ctx, []byte(`{"no":"array"}`))
	assert.Error(t, err)
	_, err = b.Import(ctx, []byte(`not json at all`))
	assert.Error(t, err)

	assert.Equal(t, before, b.Cards())
}
