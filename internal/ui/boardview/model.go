// Package boardview renders the four-column kanban board with its search
// box and tag filter bar, and handles card navigation and relocation.
package boardview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/charlaboard/internal/board"
	"github.com/nhle/charlaboard/internal/keys"
	"github.com/nhle/charlaboard/internal/model"
	"github.com/nhle/charlaboard/internal/theme"
	"github.com/nhle/charlaboard/internal/ui"
)

// NewCardMsg asks the root model to open the create form.
type NewCardMsg struct{}

// EditCardMsg asks the root model to open the edit form for a card.
type EditCardMsg struct {
	Card model.Card
}

// Model is the Bubble Tea model for the board view.
type Model struct {
	board *board.Board
	keys  *keys.KeyMap

	focusCol  int
	focusCard int

	query     textinput.Model
	searching bool

	activeTags []string
	tagMode    bool
	tagFocus   int

	autoClassify bool
	status       string

	width  int
	height int
}

// New creates a board view over the given board.
func New(b *board.Board, km *keys.KeyMap, autoClassify bool, width, height int) Model {
	query := textinput.New()
	query.Placeholder = "Buscar por texto o tag..."
	query.CharLimit = 120
	query.Width = 40

	return Model{
		board:        b,
		keys:         km,
		query:        query,
		autoClassify: autoClassify,
		width:        width,
		height:       height,
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// AutoClassify reports whether new cards should land in the suggested
// column.
func (m Model) AutoClassify() bool {
	return m.autoClassify
}

// Status returns the last operation's message, empty when all is well.
func (m Model) Status() string {
	return m.status
}

// Capturing reports whether the view is consuming raw keystrokes (search
// box or tag bar focused), so global bindings should stay out of the way.
func (m Model) Capturing() bool {
	return m.searching || m.tagMode
}

// Update handles messages for the board view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}
	if m.tagMode {
		return m.updateTagBar(keyMsg)
	}
	return m.updateBoard(keyMsg)
}

// updateSearch routes keys while the search box is focused.
func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.searching = false
		m.query.Blur()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.searching = false
		m.query.Blur()
		m.clampFocus()
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.clampFocus()
	return m, cmd
}

// updateTagBar routes keys while the tag filter bar is focused.
func (m Model) updateTagBar(msg tea.KeyMsg) (Model, tea.Cmd) {
	tags := m.board.AllTags()
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.TagBar):
		m.tagMode = false
	case key.Matches(msg, m.keys.Left):
		if m.tagFocus > 0 {
			m.tagFocus--
		}
	case key.Matches(msg, m.keys.Right):
		if m.tagFocus < len(tags)-1 {
			m.tagFocus++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.tagFocus < len(tags) {
			m.toggleTag(tags[m.tagFocus])
			m.clampFocus()
		}
	}
	return m, nil
}

// updateBoard routes keys in normal board navigation mode.
func (m Model) updateBoard(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status = ""
	cols := model.Columns()

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.query.Focus()

	case key.Matches(msg, m.keys.TagBar):
		if len(m.board.AllTags()) > 0 {
			m.tagMode = true
			m.tagFocus = 0
		}

	case key.Matches(msg, m.keys.AutoMode):
		m.autoClassify = !m.autoClassify

	case key.Matches(msg, m.keys.Left):
		if m.focusCol > 0 {
			m.focusCol--
			m.clampFocus()
		}

	case key.Matches(msg, m.keys.Right):
		if m.focusCol < len(cols)-1 {
			m.focusCol++
			m.clampFocus()
		}

	case key.Matches(msg, m.keys.Up):
		if m.focusCard > 0 {
			m.focusCard--
		}

	case key.Matches(msg, m.keys.Down):
		if m.focusCard < len(m.visible(cols[m.focusCol]))-1 {
			m.focusCard++
		}

	case key.Matches(msg, m.keys.New):
		return m, func() tea.Msg { return NewCardMsg{} }

	case key.Matches(msg, m.keys.Edit):
		if card, ok := m.focusedCard(); ok {
			return m, func() tea.Msg { return EditCardMsg{Card: card} }
		}

	case key.Matches(msg, m.keys.Delete):
		if card, ok := m.focusedCard(); ok {
			if err := m.board.Delete(context.Background(), card.ID); err != nil {
				m.status = err.Error()
			}
			m.clampFocus()
		}

	case key.Matches(msg, m.keys.MoveLeft):
		m.moveFocused(-1)

	case key.Matches(msg, m.keys.MoveRight):
		m.moveFocused(1)
	}

	return m, nil
}

// moveFocused relocates the focused card one column over and follows it.
func (m *Model) moveFocused(delta int) {
	cols := model.Columns()
	target := m.focusCol + delta
	if target < 0 || target >= len(cols) {
		return
	}
	card, ok := m.focusedCard()
	if !ok {
		return
	}
	if err := m.board.MoveTo(context.Background(), card.ID, cols[target]); err != nil {
		m.status = err.Error()
		return
	}
	m.focusCol = target
	m.focusCard = 0
	m.clampFocus()
}

func (m *Model) toggleTag(tag string) {
	for i, t := range m.activeTags {
		if t == tag {
			m.activeTags = append(m.activeTags[:i], m.activeTags[i+1:]...)
			return
		}
	}
	m.activeTags = append(m.activeTags, tag)
}

func (m Model) visible(col model.Column) []model.Card {
	return m.board.Visible(col, m.query.Value(), m.activeTags)
}

func (m Model) focusedCard() (model.Card, bool) {
	cards := m.visible(model.Columns()[m.focusCol])
	if m.focusCard >= len(cards) {
		return model.Card{}, false
	}
	return cards[m.focusCard], true
}

// clampFocus keeps the card cursor inside the focused column's visible
// list after filters or the collection change.
func (m *Model) clampFocus() {
	n := len(m.visible(model.Columns()[m.focusCol]))
	if m.focusCard >= n {
		m.focusCard = n - 1
	}
	if m.focusCard < 0 {
		m.focusCard = 0
	}
}

// View renders the filter bar and the four columns.
func (m Model) View() string {
	layout := ui.NewLayout(m.width, m.height)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderFilterBar(),
		m.renderColumns(layout),
	)
}

// FilterBar renders the search box, tag toggles, and auto-classify state.
func (m Model) renderFilterBar() string {
	var parts []string
	parts = append(parts, m.query.View())

	auto := "auto-clasificar: off"
	if m.autoClassify {
		auto = "auto-clasificar: on"
	}
	parts = append(parts, theme.HelpStyle.Render(auto))

	bar := strings.Join(parts, "  ")

	tags := m.board.AllTags()
	if len(tags) == 0 {
		return bar + "\n"
	}

	pills := make([]string, len(tags))
	for i, t := range tags {
		style := theme.TagStyle
		if m.isActive(t) {
			style = theme.ActiveTagStyle
		}
		if m.tagMode && i == m.tagFocus {
			style = theme.FocusedTagStyle
		}
		pills[i] = style.Render("#" + t)
	}
	return bar + "\n" + strings.Join(pills, " ")
}

func (m Model) isActive(tag string) bool {
	for _, t := range m.activeTags {
		if t == tag {
			return true
		}
	}
	return false
}

// renderColumns renders the four columns side by side.
func (m Model) renderColumns(layout ui.Layout) string {
	cols := model.Columns()
	colWidth := layout.ColumnWidth(len(cols))
	colHeight := layout.ContentHeight()

	rendered := make([]string, len(cols))
	for i, col := range cols {
		rendered[i] = m.renderColumn(col, i == m.focusCol, colWidth, colHeight)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderColumn(col model.Column, focused bool, width, height int) string {
	cards := m.visible(col)

	var b strings.Builder
	b.WriteString(theme.ColumnTitleStyle(col).Render(
		fmt.Sprintf("%s (%d)", col.Title(), len(cards))))
	b.WriteString("\n")

	for i, card := range cards {
		style := theme.CardStyle
		if focused && i == m.focusCard {
			style = theme.SelectedCardStyle
		}
		b.WriteString(style.Render(truncate(card.Title, width-4)))
		b.WriteString("\n")
		if card.Summary != "" {
			b.WriteString(theme.SummaryStyle.Render(truncate(card.Summary, width-4)))
			b.WriteString("\n")
		}
		if len(card.Tags) > 0 {
			b.WriteString(theme.TagStyle.Render(truncate("#"+strings.Join(card.Tags, " #"), width-4)))
			b.WriteString("\n")
		}
	}

	style := theme.ColumnStyle
	if focused {
		style = theme.FocusedColumnStyle
	}
	return style.Width(width).Height(height).Render(b.String())
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
