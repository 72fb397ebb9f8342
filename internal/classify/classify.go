// Package classify derives tags and a suggested board column from raw
// charla text. Everything here is pure: no state, no I/O.
package classify

import (
	"strings"

	"github.com/nhle/charlaboard/internal/model"
)

// LongTextThreshold is the rune count above which unclassified text is
// presumed to be in-development material.
const LongTextThreshold = 250

// Result is the outcome of classifying a piece of text.
type Result struct {
	// Tags in first-insertion order, no duplicates.
	Tags []string

	// Suggested is the column the text appears to belong to.
	Suggested model.Column
}

// rule maps a lowercase keyword substring to the tags it contributes and
// the column it suggests.
type rule struct {
	keyword string
	tags    []string
	column  model.Column
}

// rules is evaluated in order against the full lowercased text. Every
// matching rule contributes its tags and overwrites the suggestion, so the
// last match wins.
var rules = []rule{
	{"diseñ", []string{"Diseño", "branding"}, model.ColumnDev},
	{"ia", []string{"IA", "machine learning"}, model.ColumnDev},
	{"video", []string{"Video", "reel"}, model.ColumnDev},
	{"idea", []string{"Idea"}, model.ColumnIdeas},
	{"chocolate", []string{"ChocoBoo"}, model.ColumnIdeas},
	{"negocio", []string{"Negocios"}, model.ColumnDev},
	{"recordatorio", []string{"Recordatorio"}, model.ColumnPause},
	{"cerrar", []string{"Cerrada"}, model.ColumnDone},
	{"deadline", []string{"Urgente"}, model.ColumnDev},
	{"spotify", []string{"Música"}, model.ColumnIdeas},
	{"humor", []string{"Humor"}, model.ColumnIdeas},
}

// Classify scans text against the keyword rules and returns the union of
// matched tags plus a suggested column. With no matches the result is an
// empty tag list and the default column. Text longer than
// LongTextThreshold runes that still suggests the default column is
// bumped to dev.
func Classify(text string) Result {
	t := strings.ToLower(text)

	res := Result{Suggested: model.ColumnIdeas}
	seen := make(map[string]bool)

	for _, r := range rules {
		if !strings.Contains(t, r.keyword) {
			continue
		}
		for _, tag := range r.tags {
			if !seen[tag] {
				seen[tag] = true
				res.Tags = append(res.Tags, tag)
			}
		}
		res.Suggested = r.column
	}

	if res.Suggested == model.ColumnIdeas && len([]rune(text)) > LongTextThreshold {
		res.Suggested = model.ColumnDev
	}

	return res
}
