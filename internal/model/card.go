package model

import "time"

// Column identifies one of the four fixed board columns.
type Column string

const (
	ColumnIdeas Column = "ideas"
	ColumnDev   Column = "dev"
	ColumnPause Column = "pause"
	ColumnDone  Column = "done"
)

// Columns returns the board columns in display order.
func Columns() []Column {
	return []Column{ColumnIdeas, ColumnDev, ColumnPause, ColumnDone}
}

// Known reports whether c is one of the four board columns.
func (c Column) Known() bool {
	switch c {
	case ColumnIdeas, ColumnDev, ColumnPause, ColumnDone:
		return true
	}
	return false
}

// Title returns the display title for the column.
func (c Column) Title() string {
	switch c {
	case ColumnIdeas:
		return "Ideas"
	case ColumnDev:
		return "En desarrollo"
	case ColumnPause:
		return "En pausa"
	case ColumnDone:
		return "Cerradas"
	}
	return string(c)
}

// Card is a single charla on the board.
//
// ID is assigned once at creation (millisecond timestamp, bumped to stay
// strictly increasing) and never changes. Content is the source of truth:
// Summary and Tags are derived from it on create and on content edits.
type Card struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Summary string    `json:"summary"`
	Tags    []string  `json:"tags"`
	Column  Column    `json:"column"`
	Date    time.Time `json:"date"`
}

// HasTag reports whether the card carries the given tag.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
