package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravedigger/internal/savefile"
	"github.com/vovakirdan/gravedigger/internal/storage"
)

// MenuModel is the Bubble Tea model for the world picker.
type MenuModel struct {
	dir      string
	store    *storage.Store
	records  []*savefile.Record
	table    table.Model
	input    textinput.Model
	naming   bool // the new world input is open
	help     help.Model
	keys     MenuKeyMap
	status   string
	width    int
	height   int
	quitting bool
	selected *savefile.Record
}

// NewMenuModel creates a picker over the saves in dir. store may be nil.
func NewMenuModel(dir string, store *storage.Store, width, height int) MenuModel {
	in := textinput.New()
	in.Placeholder = "name [seed]"
	in.CharLimit = 64
	in.Width = 40

	m := MenuModel{
		dir:    dir,
		store:  store,
		input:  in,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates the world table sized to the window.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "World", Width: 20},
		{Title: "Seed", Width: 20},
		{Title: "Tick", Width: 10},
		{Title: "Saved", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload lists the save directory again.
func (m *MenuModel) reload() {
	records, err := savefile.List(m.dir)
	if err != nil {
		m.status = err.Error()
		records = nil
	}
	m.records = records

	rows := make([]table.Row, len(records))
	for i, r := range records {
		tick := "new"
		if r.Played() {
			tick = formatTick(r.Tick)
		}
		rows[i] = table.Row{
			r.Name,
			fmt.Sprintf("%d", r.Seed),
			tick,
			r.Time.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.updateInput(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.records) {
				m.selected = m.records[i]
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.New):
			m.naming = true
			m.status = ""
			m.input.SetValue("")
			return m, m.input.Focus()

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateInput handles keys while the new world name is typed.
func (m MenuModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.naming = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		rec, err := m.create(m.input.Value())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.naming = false
		m.input.Blur()
		m.selected = rec
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// create makes a new world file from "name [seed]". Without a seed the
// clock is used.
func (m *MenuModel) create(value string) (*savefile.Record, error) {
	name, seed, err := ParseNewWorld(value, time.Now())
	if err != nil {
		return nil, err
	}
	rec := savefile.New(m.dir, name, seed)
	if err := rec.Create(); err != nil {
		if errors.Is(err, savefile.ErrFileExists) {
			return nil, fmt.Errorf("world %q already exists", name)
		}
		return nil, err
	}
	return rec, nil
}

// ParseNewWorld splits "name [seed]" input. The seed defaults to now.
func ParseNewWorld(value string, now time.Time) (string, uint64, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "", 0, errors.New("world name is empty")
	}
	if len(fields) > 2 {
		return "", 0, errors.New("expected a name and an optional seed")
	}
	seed := uint64(now.UnixNano())
	if len(fields) == 2 {
		seed = savefile.ParseSeed(fields[1])
	}
	return fields[0], seed, nil
}

// deleteSelected removes the highlighted world file and its index entry.
func (m *MenuModel) deleteSelected() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return
	}
	rec := m.records[i]
	if err := savefile.Delete(rec.Path); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("deleted %s", rec.Name)
	if m.store != nil {
		if err := m.store.DeleteWorld(rec.Name); err != nil && !errors.Is(err, storage.ErrNotFound) {
			m.status = err.Error()
		}
	}
	m.reload()
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("GRAVEDIGGER", m.width)))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
		b.WriteString(emptyStyle.Render("No worlds yet. Press n to dig one up."))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
		b.WriteString(tableStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	if m.naming {
		b.WriteString("\nNew world: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText pads text to be centered in the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// IsQuitting returns true if the user quit the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Selected returns the chosen world, or nil.
func (m MenuModel) Selected() *savefile.Record {
	return m.selected
}

// RunMenu shows the picker and returns the chosen world, or nil when the
// user quit.
func RunMenu(dir string, store *storage.Store) (*savefile.Record, error) {
	p := tea.NewProgram(NewMenuModel(dir, store, 80, 24), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	if m, ok := final.(MenuModel); ok {
		return m.Selected(), nil
	}
	return nil, nil
}
