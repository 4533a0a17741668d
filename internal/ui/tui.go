package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/dailycheck/internal/checklist"
	"github.com/idilsaglam/dailycheck/internal/model"
)

// Backend is what the interactive view needs from the checklist service.
type Backend interface {
	View(ctx context.Context) (checklist.View, error)
	Toggle(ctx context.Context, id int64) (bool, error)
	Add(ctx context.Context, text string, r model.Recurrence) (int64, error)
	Delete(ctx context.Context, text string) (int64, error)
}

type mode int

const (
	browsing mode = iota
	adding
	deleting
)

type keyMap struct {
	Up, Down, Toggle, Add, Delete, Cycle, Help, Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Add, k.Delete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Add, k.Cycle, k.Delete},
		{k.Help, k.Quit},
	}
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "check")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Cycle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "recurrence")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type modelTUI struct {
	ctx     context.Context
	backend Backend

	// Rebuilt from the backend after every change.
	view checklist.View
	rows []model.Item

	cursor int
	mode   mode

	ti  textinput.Model
	rec model.Recurrence // recurrence for the next add

	status string
	err    error

	keys keyMap
	help help.Model

	width, height int
}

func newTUI(ctx context.Context, b Backend, rec model.Recurrence) modelTUI {
	if !rec.IsValid() {
		rec = model.Daily
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.FullKey = helpStyle
	h.Styles.FullDesc = helpStyle

	m := modelTUI{
		ctx:     ctx,
		backend: b,
		ti:      ti,
		rec:     rec,
		keys:    defaultKeys(),
		help:    h,
		width:   80,
		height:  24,
	}
	m.refresh()
	return m
}

// Run starts the interactive checklist. Every change is written through the
// backend as it happens, so there is nothing to save on exit.
// A checklist that cannot be read is reported before the screen opens.
func Run(ctx context.Context, b Backend, defaultRec model.Recurrence) error {
	m := newTUI(ctx, b, defaultRec)
	if m.err != nil {
		return fmt.Errorf("load checklist: %w", m.err)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// refresh re-reads the store and clamps the cursor to the new rows.
func (m *modelTUI) refresh() {
	v, err := m.backend.View(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	m.view = v
	m.rows = v.Flat()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m modelTUI) selected() (model.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return model.Item{}, false
	}
	return m.rows[m.cursor], true
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.help.Width = ws.Width
		return m, nil
	}

	switch m.mode {
	case adding:
		return m.updateAdding(msg)
	case deleting:
		return m.updateDeleting(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status, m.err = "", nil
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			if _, err := m.backend.Toggle(m.ctx, it.ID); err != nil {
				m.err = err
				return m, nil
			}
			m.refresh()
		}
	case key.Matches(km, m.keys.Add):
		m.mode = adding
		m.ti.SetValue("")
		m.ti.Placeholder = "New item..."
		cmd := m.ti.Focus()
		return m, cmd
	case key.Matches(km, m.keys.Delete):
		m.mode = deleting
		m.ti.SetValue("")
		if it, ok := m.selected(); ok {
			m.ti.SetValue(it.Text)
			m.ti.CursorEnd()
		}
		m.ti.Placeholder = "Text to delete..."
		cmd := m.ti.Focus()
		return m, cmd
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m modelTUI) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			text := m.ti.Value()
			id, err := m.backend.Add(m.ctx, text, m.rec)
			if err != nil {
				m.err = err
				return m, nil
			}
			if id != 0 {
				m.status = "added"
			}
			m.closeInput()
			m.refresh()
			return m, nil
		case "tab":
			m.rec = m.rec.Next()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) updateDeleting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			n, err := m.backend.Delete(m.ctx, m.ti.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			if strings.TrimSpace(m.ti.Value()) != "" {
				m.status = fmt.Sprintf("removed %d", n)
			}
			m.closeInput()
			m.refresh()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *modelTUI) closeInput() {
	m.mode = browsing
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m modelTUI) View() string {
	t := Current()
	var b strings.Builder

	pending := m.view.Total - m.view.Done
	fmt.Fprintf(&b, "%s   %s %d  %s %d  %s %d\n",
		titleStyle.Render("Routine"),
		successStyle.Render(t.SymDone), m.view.Done,
		pendingStyle.Render(t.SymUnchecked), pending,
		accentStyle.Render("Total"), m.view.Total,
	)
	b.WriteString(mutedStyle.Render(ProgressBar(m.view.Done, m.view.Total, 28)))
	b.WriteString("\n")

	row := 0
	for _, sec := range m.view.Sections {
		b.WriteString(sectionStyle.Render("=== "+sec.Recurrence.Label()+" ===") + "\n")
		if len(sec.Items) == 0 {
			b.WriteString("  " + mutedStyle.Render("(none)") + "\n")
		}
		for _, it := range sec.Items {
			b.WriteString(m.renderRow(it, row == m.cursor) + "\n")
			row++
		}
	}

	if m.mode != browsing {
		title := "Delete items with text"
		if m.mode == adding {
			title = "Add " + accentStyle.Render(m.rec.Label()) + " item " + helpStyle.Render("(tab to change)")
		}
		b.WriteString("\n" + borderStyle.Render(title+"\n"+m.ti.View()) + "\n")
	}

	switch {
	case m.err != nil:
		b.WriteString("\n" + errorStyle.Render("✖ "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString("\n" + successStyle.Render("✔ "+m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))

	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return borderStyle.Width(width).Render(b.String())
}

func (m modelTUI) renderRow(it model.Item, selected bool) string {
	t := Current()
	box := mutedStyle.Render(t.BoxUnchecked)
	text := it.Text
	if it.Checked {
		box = successStyle.Render(t.BoxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if selected {
		prefix = selectedStyle.Render(">") + " "
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, box, " ", text)
}
