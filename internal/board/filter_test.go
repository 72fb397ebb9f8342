package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/charlaboard/internal/board"
	"github.com/nhle/charlaboard/internal/model"
)

func card(id int64, title, content string, col model.Column, tags ...string) model.Card {
	return model.Card{
		ID:      id,
		Title:   title,
		Content: content,
		Tags:    tags,
		Column:  col,
	}
}

func TestVisible_ColumnEquality(t *testing.T) {
	cards := []model.Card{
		card(1, "a", "", model.ColumnIdeas),
		card(2, "b", "", model.ColumnDev),
		card(3, "c", "", model.ColumnIdeas),
	}

	got := board.Visible(cards, model.ColumnIdeas, "", nil)
	assert.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, model.ColumnIdeas, c.Column)
	}
}

func TestVisible_QueryMatchesTitleContentOrTags(t *testing.T) {
	cards := []model.Card{
		card(1, "Charla de branding", "x", model.ColumnIdeas),
		card(2, "b", "contenido sobre BRANDING", model.ColumnIdeas),
		card(3, "c", "y", model.ColumnIdeas, "branding"),
		card(4, "d", "z", model.ColumnIdeas, "Humor"),
	}

	got := board.Visible(cards, model.ColumnIdeas, "branding", nil)
	assert.Len(t, got, 3)
}

func TestVisible_QueryMatchesJoinedTagList(t *testing.T) {
	// The query is matched against the space-joined tag list, so it may
	// span adjacent tags.
	cards := []model.Card{
		card(1, "a", "x", model.ColumnIdeas, "IA", "machine learning"),
	}

	got := board.Visible(cards, model.ColumnIdeas, "ia machine", nil)
	assert.Len(t, got, 1)
}

func TestVisible_ActiveTagsRequireAll(t *testing.T) {
	cards := []model.Card{
		card(1, "a", "x", model.ColumnIdeas, "A", "B"),
	}

	assert.Len(t, board.Visible(cards, model.ColumnIdeas, "", []string{"A", "B"}), 1)
	assert.Empty(t, board.Visible(cards, model.ColumnIdeas, "", []string{"A", "C"}))
}

func TestVisible_PreservesOrder(t *testing.T) {
	cards := []model.Card{
		card(3, "c", "", model.ColumnDev),
		card(2, "b", "", model.ColumnDev),
		card(1, "a", "", model.ColumnDev),
	}

	got := board.Visible(cards, model.ColumnDev, "", nil)
	assert.Equal(t, []int64{3, 2, 1}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestVisible_CombinesAllConditions(t *testing.T) {
	cards := []model.Card{
		card(1, "charla", "x", model.ColumnDev, "A"),
		card(2, "charla", "x", model.ColumnDev, "B"),
		card(3, "otra", "x", model.ColumnDev, "A"),
		card(4, "charla", "x", model.ColumnPause, "A"),
	}

	got := board.Visible(cards, model.ColumnDev, "charla", []string{"A"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestAllTags_FirstSeenOrder(t *testing.T) {
	cards := []model.Card{
		card(1, "a", "", model.ColumnIdeas, "B", "A"),
		card(2, "b", "", model.ColumnDev, "A", "C"),
	}

	assert.Equal(t, []string{"B", "A", "C"}, board.AllTags(cards))
}

func TestAllTags_EmptyCollection(t *testing.T) {
	assert.Empty(t, board.AllTags(nil))
}
