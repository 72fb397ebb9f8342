package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/charlaboard/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the top header bar and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// ColumnStyle frames one board column.
var ColumnStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// FocusedColumnStyle highlights the column holding the cursor.
var FocusedColumnStyle = ColumnStyle.
	BorderForeground(ColorBlue)

// CardStyle renders one card inside a column.
var CardStyle = lipgloss.NewStyle().
	PaddingLeft(1)

// SelectedCardStyle highlights the focused card.
var SelectedCardStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// SummaryStyle renders a card's preview text.
var SummaryStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// TagStyle renders an inactive tag pill.
var TagStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// ActiveTagStyle renders a toggled-on tag pill.
var ActiveTagStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorSubtle)

// FocusedTagStyle highlights the tag under the cursor in the tag bar.
var FocusedTagStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ColumnAccent returns the accent color for a board column.
func ColumnAccent(col model.Column) lipgloss.AdaptiveColor {
	switch col {
	case model.ColumnIdeas:
		return ColorYellow
	case model.ColumnDev:
		return ColorBlue
	case model.ColumnPause:
		return ColorMagenta
	case model.ColumnDone:
		return ColorGreen
	}
	return ColorGray
}

// ColumnTitleStyle returns the header style for a column, tinted with the
// column's accent color.
func ColumnTitleStyle(col model.Column) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColumnAccent(col))
}
