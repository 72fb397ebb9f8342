package board

import (
	"strings"

	"github.com/nhle/charlaboard/internal/model"
)

// Visible derives the cards shown in one column for the given free-text
// query and active tag selection. The query matches case-insensitively
// against title, content, or the space-joined tag list; active tags all
// have to be present on the card. Collection order is preserved.
func Visible(cards []model.Card, col model.Column, query string, activeTags []string) []model.Card {
	q := strings.ToLower(query)

	var out []model.Card
	for _, c := range cards {
		if c.Column != col {
			continue
		}
		if q != "" && !matchesQuery(c, q) {
			continue
		}
		if !hasAllTags(c, activeTags) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Visible applies the filter to the board's own collection.
func (b *Board) Visible(col model.Column, query string, activeTags []string) []model.Card {
	return Visible(b.cards, col, query, activeTags)
}

// AllTags returns the tag universe of the collection in first-seen order.
func AllTags(cards []model.Card) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cards {
		for _, t := range c.Tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// AllTags returns the tag universe of the board's own collection.
func (b *Board) AllTags() []string {
	return AllTags(b.cards)
}

func matchesQuery(c model.Card, q string) bool {
	return strings.Contains(strings.ToLower(c.Title), q) ||
		strings.Contains(strings.ToLower(c.Content), q) ||
		strings.Contains(strings.ToLower(strings.Join(c.Tags, " ")), q)
}

func hasAllTags(c model.Card, tags []string) bool {
	for _, t := range tags {
		if !c.HasTag(t) {
			return false
		}
	}
	return true
}
