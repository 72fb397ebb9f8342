// Package gateway serializes the card collection to and from the JSON
// export format and validates inbound documents entry by entry.
package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nhle/charlaboard/internal/model"
)

// DefaultExportFilename is the file name offered for exports.
const DefaultExportFilename = "charlas_export.json"

// ErrNotArray is returned when an import document parses as JSON but is
// not a top-level array.
var ErrNotArray = errors.New("import document is not a JSON array")

// Skipped records one quarantined import entry.
type Skipped struct {
	// Index is the entry's position in the imported array.
	Index int `json:"index"`

	// Reason says why the entry was rejected.
	Reason string `json:"reason"`
}

// Report summarizes an import: how many entries were accepted, how many
// collided with existing IDs, and which were quarantined.
type Report struct {
	Imported   int       `json:"imported"`
	Duplicates int       `json:"duplicates"`
	Skipped    []Skipped `json:"skipped,omitempty"`
}

// Export renders the collection as a pretty-printed JSON array.
func Export(cards []model.Card) ([]byte, error) {
	if cards == nil {
		cards = []model.Card{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling cards: %w", err)
	}
	return data, nil
}

// Parse decodes an import document. The top level must be a JSON array or
// the whole document is rejected. Individual entries that do not decode as
// cards, carry neither a title nor content, or name an unknown column are
// quarantined into the report; the rest come back unmodified (an empty
// column defaults to ideas, tags are deduplicated).
func Parse(data []byte) ([]model.Card, Report, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		if json.Valid(data) {
			return nil, Report{}, ErrNotArray
		}
		return nil, Report{}, fmt.Errorf("parsing import document: %w", err)
	}
	// A top-level "null" decodes into a nil slice without error but is
	// not an array.
	if t := bytes.TrimLeft(data, " \t\r\n"); len(t) == 0 || t[0] != '[' {
		return nil, Report{}, ErrNotArray
	}

	var cards []model.Card
	var report Report
	for i, raw := range entries {
		var card model.Card
		if err := json.Unmarshal(raw, &card); err != nil {
			report.Skipped = append(report.Skipped, Skipped{
				Index:  i,
				Reason: fmt.Sprintf("not a card object: %v", err),
			})
			continue
		}
		if strings.TrimSpace(card.Title) == "" && strings.TrimSpace(card.Content) == "" {
			report.Skipped = append(report.Skipped, Skipped{
				Index:  i,
				Reason: "missing title and content",
			})
			continue
		}
		if card.Column == "" {
			card.Column = model.ColumnIdeas
		}
		if !card.Column.Known() {
			report.Skipped = append(report.Skipped, Skipped{
				Index:  i,
				Reason: fmt.Sprintf("unknown column %q", card.Column),
			})
			continue
		}
		card.Tags = dedupTags(card.Tags)

		cards = append(cards, card)
	}

	report.Imported = len(cards)
	return cards, report, nil
}

// Merge appends imported cards after the existing collection. Imported
// entries whose ID is already present yield to the existing card; the
// second return value counts those conflicts.
func Merge(existing, imported []model.Card) ([]model.Card, int) {
	seen := make(map[int64]bool, len(existing))
	for _, c := range existing {
		seen[c.ID] = true
	}

	merged := make([]model.Card, 0, len(existing)+len(imported))
	merged = append(merged, existing...)

	duplicates := 0
	for _, c := range imported {
		if c.ID != 0 && seen[c.ID] {
			duplicates++
			continue
		}
		if c.ID != 0 {
			seen[c.ID] = true
		}
		merged = append(merged, c)
	}

	return merged, duplicates
}

// dedupTags removes duplicate tags preserving first-seen order.
func dedupTags(tags []string) []string {
	if len(tags) < 2 {
		return tags
	}
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
