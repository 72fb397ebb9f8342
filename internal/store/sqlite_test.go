package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/charlaboard/internal/store"
)

func newStore(t *testing.T, key string) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:", key)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})
	return s
}

func TestSQLiteStore_LoadMissingKey(t *testing.T) {
	s := newStore(t, "charlaboard_v1")

	data, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSQLiteStore_SaveThenLoad(t *testing.T) {
	s := newStore(t, "charlaboard_v1")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte(`[{"id":1}]`)))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(data))
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	s := newStore(t, "charlaboard_v1")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte(`[]`)))
	require.NoError(t, s.Save(ctx, []byte(`[{"id":2}]`)))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":2}]`, string(data))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")
	ctx := context.Background()

	s, err := store.NewSQLiteStore(dbPath, "charlaboard_v1")
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, []byte(`[{"id":3}]`)))
	require.NoError(t, s.Close())

	s2, err := store.NewSQLiteStore(dbPath, "charlaboard_v1")
	require.NoError(t, err)
	defer s2.Close()

	data, err := s2.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":3}]`, string(data))
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")
	ctx := context.Background()

	a, err := store.NewSQLiteStore(dbPath, "board_a")
	require.NoError(t, err)
	defer a.Close()

	b, err := store.NewSQLiteStore(dbPath, "board_b")
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Save(ctx, []byte(`["a"]`)))

	data, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
}
