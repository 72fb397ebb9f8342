// Package app wires the board and form views into the root Bubble Tea
// model.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/charlaboard/internal/board"
	"github.com/nhle/charlaboard/internal/classify"
	"github.com/nhle/charlaboard/internal/keys"
	"github.com/nhle/charlaboard/internal/ui"
	"github.com/nhle/charlaboard/internal/ui/boardview"
	"github.com/nhle/charlaboard/internal/ui/cardform"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewForm
)

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the board.
type Model struct {
	currentView ViewState
	layout      ui.Layout
	board       *board.Board
	keys        *keys.KeyMap
	boardView   boardview.Model
	formView    cardform.Model
	ready       bool
	errMsg      string
}

// New creates the root application model over the given board.
func New(b *board.Board, autoClassify bool) Model {
	km := keys.DefaultKeyMap()
	return Model{
		currentView: ViewBoard,
		board:       b,
		keys:        km,
		boardView:   boardview.New(b, km, autoClassify, 80, 24),
		formView:    cardform.New(80, 24),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.boardView.SetSize(msg.Width, msg.Height)
		m.formView.SetSize(msg.Width, msg.Height)
		// Forward to the form so huh can calculate its layout.
		if m.currentView == ViewForm {
			return m.updateForm(msg)
		}
		return m, nil

	case boardview.NewCardMsg:
		m.currentView = ViewForm
		return m, m.formView.StartCreate()

	case boardview.EditCardMsg:
		m.currentView = ViewForm
		return m, m.formView.StartEdit(msg.Card)

	case cardform.CardSavedMsg:
		m.currentView = ViewBoard
		m.errMsg = ""
		if err := m.saveCard(msg); err != nil {
			m.errMsg = err.Error()
		}
		return m, nil

	case cardform.CardFormCancelMsg:
		m.currentView = ViewBoard
		return m, nil

	case tea.KeyMsg:
		if m.currentView == ViewBoard {
			if !m.boardView.Capturing() && key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.boardView, cmd = m.boardView.Update(msg)
			return m, cmd
		}
		return m.updateForm(msg)
	}

	if m.currentView == ViewForm {
		return m.updateForm(msg)
	}
	return m, nil
}

// saveCard applies a submitted form: a zero edit ID creates a card, any
// other updates the card in place. Edits recompute the summary and tags
// from the new content but never change the column.
func (m *Model) saveCard(msg cardform.CardSavedMsg) error {
	ctx := context.Background()

	if msg.EditID == 0 {
		_, err := m.board.Create(ctx, msg.Title, msg.Content, m.boardView.AutoClassify())
		return err
	}

	summary := classify.Summarize(msg.Content, classify.MaxSummaryChars)
	tags := classify.Classify(msg.Content).Tags
	return m.board.Update(ctx, msg.EditID, board.CardPatch{
		Title:   &msg.Title,
		Content: &msg.Content,
		Summary: &summary,
		Tags:    &tags,
	})
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.formView, cmd = m.formView.Update(msg)
	return m, cmd
}

// View renders the active view inside the application frame.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.currentView == ViewForm {
		return m.formView.View()
	}

	mode := "auto-clasificar: off"
	if m.boardView.AutoClassify() {
		mode = "auto-clasificar: on"
	}
	header := m.layout.RenderHeader("CharlaBoard — Organizador de charlas", mode)

	hints := "n nueva · e editar · d borrar · H/L mover · / buscar · f tags · a auto · q salir"
	if m.errMsg != "" {
		hints = m.errMsg
	} else if s := m.boardView.Status(); s != "" {
		hints = s
	}
	statusBar := m.layout.RenderStatusBar(hints)

	return m.layout.RenderWithFrame(header, m.boardView.View(), statusBar)
}
