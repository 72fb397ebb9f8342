// Package board owns the authoritative in-memory card collection and
// mediates all mutation. Every mutating operation rewrites the whole
// collection through the persistence port.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nhle/charlaboard/internal/classify"
	"github.com/nhle/charlaboard/internal/gateway"
	"github.com/nhle/charlaboard/internal/model"
	"github.com/nhle/charlaboard/internal/store"
)

// ErrStorage marks a persistence write failure. The in-memory mutation is
// kept; the caller decides whether to retry or surface the error.
var ErrStorage = errors.New("board storage failure")

// Board is the card collection with its load/save lifecycle. It is not
// safe for concurrent use; all access is expected to be serialized by the
// single event loop driving it.
type Board struct {
	blob   store.Blob
	log    *zap.Logger
	cards  []model.Card
	lastID int64
}

// New creates a Board backed by the given blob store. A nil logger is
// replaced with a no-op one.
func New(blob store.Blob, log *zap.Logger) *Board {
	if log == nil {
		log = zap.NewNop()
	}
	return &Board{blob: blob, log: log}
}

// Load reads the persisted collection. When nothing has been persisted
// yet, the board starts empty, or with the fixed example card if
// seedExample is set.
func (b *Board) Load(ctx context.Context, seedExample bool) error {
	data, err := b.blob.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	if len(data) == 0 {
		if seedExample {
			b.cards = []model.Card{seedCard()}
			b.lastID = b.cards[0].ID
			if err := b.save(ctx); err != nil {
				return err
			}
		}
		b.log.Info("board initialized", zap.Int("cards", len(b.cards)))
		return nil
	}

	if err := json.Unmarshal(data, &b.cards); err != nil {
		return fmt.Errorf("decoding board state: %w", err)
	}
	for _, c := range b.cards {
		if c.ID > b.lastID {
			b.lastID = c.ID
		}
	}
	b.log.Info("board loaded", zap.Int("cards", len(b.cards)))
	return nil
}

// seedCard is the example card a fresh board starts with.
func seedCard() model.Card {
	now := time.Now()
	return model.Card{
		ID:      now.UnixMilli() - 1000,
		Title:   "Propuesta ChocoBoo",
		Content: "Post para Instagram sobre ChocoBoo. Quiero destacar que soy diseñador y mostrar skills.",
		Summary: "Post IG sobre ChocoBoo enfocando mis skills como diseñador.",
		Tags:    []string{"ChocoBoo", "Diseño"},
		Column:  model.ColumnIdeas,
		Date:    now.UTC(),
	}
}

// Cards returns a copy of the collection, most recent first.
func (b *Board) Cards() []model.Card {
	out := make([]model.Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Get returns the card with the given ID.
func (b *Board) Get(id int64) (model.Card, bool) {
	for _, c := range b.cards {
		if c.ID == id {
			return c, true
		}
	}
	return model.Card{}, false
}

// Create builds a new card from title and content and inserts it at the
// front of the collection. The summary, a missing title, and the tags are
// derived from content; the classifier's suggested column is used only
// when autoClassify is set.
func (b *Board) Create(ctx context.Context, title, content string, autoClassify bool) (model.Card, error) {
	res := classify.Classify(content)

	card := model.Card{
		ID:      b.nextID(),
		Title:   title,
		Content: content,
		Summary: classify.Summarize(content, classify.MaxSummaryChars),
		Tags:    res.Tags,
		Column:  model.ColumnIdeas,
		Date:    time.Now().UTC(),
	}
	if card.Title == "" {
		card.Title = classify.Summarize(content, classify.TitleChars)
	}
	if autoClassify {
		card.Column = res.Suggested
	}

	b.cards = append([]model.Card{card}, b.cards...)
	b.log.Info("card created",
		zap.Int64("id", card.ID),
		zap.String("column", string(card.Column)),
		zap.Strings("tags", card.Tags),
	)
	return card, b.save(ctx)
}

// CardPatch is a partial card update. Nil fields are left untouched.
// The board does not re-derive summary or tags here; callers editing
// content are responsible for recomputing both.
type CardPatch struct {
	Title   *string
	Content *string
	Summary *string
	Tags    *[]string
	Column  *model.Column
}

// Update merges patch over the card with the given ID. An unknown ID is a
// benign no-op, not an error.
func (b *Board) Update(ctx context.Context, id int64, patch CardPatch) error {
	if patch.Column != nil && !patch.Column.Known() {
		return fmt.Errorf("unknown column %q", *patch.Column)
	}

	idx := b.indexOf(id)
	if idx < 0 {
		b.log.Debug("update ignored, card not found", zap.Int64("id", id))
		return nil
	}

	c := &b.cards[idx]
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Content != nil {
		c.Content = *patch.Content
	}
	if patch.Summary != nil {
		c.Summary = *patch.Summary
	}
	if patch.Tags != nil {
		c.Tags = dedup(*patch.Tags)
	}
	if patch.Column != nil {
		c.Column = *patch.Column
	}

	b.log.Info("card updated", zap.Int64("id", id))
	return b.save(ctx)
}

// Delete removes the card with the given ID. An unknown ID is a no-op.
func (b *Board) Delete(ctx context.Context, id int64) error {
	idx := b.indexOf(id)
	if idx < 0 {
		b.log.Debug("delete ignored, card not found", zap.Int64("id", id))
		return nil
	}
	b.cards = append(b.cards[:idx], b.cards[idx+1:]...)
	b.log.Info("card deleted", zap.Int64("id", id))
	return b.save(ctx)
}

// MoveTo relocates the card with the given ID to the target column.
func (b *Board) MoveTo(ctx context.Context, id int64, col model.Column) error {
	return b.Update(ctx, id, CardPatch{Column: &col})
}

// Export renders the whole collection in the export format.
func (b *Board) Export() ([]byte, error) {
	return gateway.Export(b.cards)
}

// Import parses data, appends the accepted cards after the existing
// collection (existing entries win ID conflicts), and persists the merge.
// A malformed document leaves the collection unmodified.
func (b *Board) Import(ctx context.Context, data []byte) (gateway.Report, error) {
	imported, report, err := gateway.Parse(data)
	if err != nil {
		return gateway.Report{}, err
	}

	// Entries without an ID get a fresh one so the uniqueness invariant
	// holds for everything that lands on the board.
	for i := range imported {
		if imported[i].ID == 0 {
			imported[i].ID = b.nextID()
		} else if imported[i].ID > b.lastID {
			b.lastID = imported[i].ID
		}
	}

	merged, duplicates := gateway.Merge(b.cards, imported)
	report.Duplicates = duplicates
	report.Imported -= duplicates

	b.cards = merged
	b.log.Info("cards imported",
		zap.Int("imported", report.Imported),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("skipped", len(report.Skipped)),
	)
	return report, b.save(ctx)
}

// nextID returns a millisecond-timestamp ID, bumped past the last issued
// one so IDs stay strictly increasing even within a millisecond.
func (b *Board) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= b.lastID {
		id = b.lastID + 1
	}
	b.lastID = id
	return id
}

func (b *Board) indexOf(id int64) int {
	for i, c := range b.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// save persists the whole collection through the blob port.
func (b *Board) save(ctx context.Context) error {
	data, err := json.Marshal(b.cards)
	if err != nil {
		return fmt.Errorf("encoding board state: %w", err)
	}
	if err := b.blob.Save(ctx, data); err != nil {
		b.log.Error("board save failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// dedup removes duplicate tags preserving first-seen order.
func dedup(tags []string) []string {
	if len(tags) < 2 {
		return tags
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
