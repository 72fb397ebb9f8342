package testutil

import (
	"context"
	"testing"

	"github.com/nhle/charlaboard/internal/board"
	"github.com/nhle/charlaboard/internal/model"
	"github.com/nhle/charlaboard/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore bound to the default board
// key with all migrations applied. It automatically closes the store when
// the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:", model.StorageKey)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewTestBoard creates an empty board over an in-memory SQLite store.
func NewTestBoard(t *testing.T) *board.Board {
	t.Helper()

	b := board.New(NewTestStore(t), nil)
	if err := b.Load(context.Background(), false); err != nil {
		t.Fatalf("loading test board: %v", err)
	}
	return b
}
