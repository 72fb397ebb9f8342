package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/charlaboard/internal/theme"
)

// Layout manages the terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	FilterBarHeight int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		FilterBarHeight: 2,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the board columns,
// accounting for the header, filter bar, and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.FilterBarHeight - l.StatusBarHeight
}

// ColumnWidth returns the width of one of n evenly split board columns.
func (l Layout) ColumnWidth(n int) int {
	if n < 1 {
		n = 1
	}
	w := l.Width/n - 2
	if w < 16 {
		w = 16
	}
	return w
}

// RenderHeader renders the top header bar with a title and a right-aligned
// mode indicator.
func (l Layout) RenderHeader(title string, mode string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	modeRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(mode)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(modeRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		modeRendered,
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining the
// header, board content (which carries its own filter bar), and status bar.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
