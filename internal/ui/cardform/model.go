package cardform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/charlaboard/internal/model"
	"github.com/nhle/charlaboard/internal/theme"
)

// CardSavedMsg is dispatched when the form is submitted. EditID is zero
// for a newly created card.
type CardSavedMsg struct {
	EditID  int64
	Title   string
	Content string
}

// CardFormCancelMsg is dispatched when the user cancels the form.
type CardFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title   string
	content string
}

// Model is the Bubble Tea model for the card create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   int64
	width    int
	height   int
}

// New creates a new card form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for creating a new card.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = 0
	m.fb.title = ""
	m.fb.content = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing card.
func (m *Model) StartEdit(card model.Card) tea.Cmd {
	m.editMode = true
	m.editID = card.ID
	m.fb.title = card.Title
	m.fb.content = card.Content
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the card form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CardFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the card form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "Nueva charla"
	if m.editMode {
		titleText = "Editar charla"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Título").
				Placeholder("Título (opcional)").
				Value(&m.fb.title),
			huh.NewText().
				Title("Contenido").
				Placeholder("Pega acá la charla, ideas o fragmentos...").
				Value(&m.fb.content).
				Validate(validateRequired("Contenido")),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	saved := CardSavedMsg{
		EditID:  m.editID,
		Title:   strings.TrimSpace(m.fb.title),
		Content: strings.TrimSpace(m.fb.content),
	}
	return func() tea.Msg { return saved }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
