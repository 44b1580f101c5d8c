package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravedigger/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	North     key.Binding
	South     key.Binding
	West      key.Binding
	East      key.Binding
	NorthWest key.Binding
	NorthEast key.Binding
	SouthWest key.Binding
	SouthEast key.Binding
	Here      key.Binding
	Wield     key.Binding
	Drop      key.Binding
	Dig       key.Binding
	Read      key.Binding
	Animate   key.Binding
	Cancel    key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Wield, k.Drop, k.Dig, k.Read, k.Animate, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.West, k.East},
		{k.NorthWest, k.NorthEast, k.SouthWest, k.SouthEast, k.Here},
		{k.Wield, k.Drop, k.Dig, k.Read, k.Animate},
		{k.Cancel, k.Save, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows or vi keys to move.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "north")),
		South:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "south")),
		West:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "west")),
		East:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "east")),
		NorthWest: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "north-west")),
		NorthEast: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "north-east")),
		SouthWest: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "south-west")),
		SouthEast: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "south-east")),
		Here:      key.NewBinding(key.WithKeys(".", " "), key.WithHelp(".", "wait / here")),
		Wield:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "pick up")),
		Drop:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "put down")),
		Dig:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dig")),
		Read:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "read")),
		Animate:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "raise")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

// direction returns the direction bound to msg, if any.
func (k KeyMap) direction(msg tea.KeyMsg) (core.Direction, bool) {
	switch {
	case key.Matches(msg, k.North):
		return core.North, true
	case key.Matches(msg, k.South):
		return core.South, true
	case key.Matches(msg, k.West):
		return core.West, true
	case key.Matches(msg, k.East):
		return core.East, true
	case key.Matches(msg, k.NorthWest):
		return core.NorthWest, true
	case key.Matches(msg, k.NorthEast):
		return core.NorthEast, true
	case key.Matches(msg, k.SouthWest):
		return core.SouthWest, true
	case key.Matches(msg, k.SouthEast):
		return core.SouthEast, true
	case key.Matches(msg, k.Here):
		return core.Here, true
	}
	return core.Here, false
}

// Frame translates a key press into an input frame. While a direction
// prompt is open only directions and cancel are recognized.
func (k KeyMap) Frame(msg tea.KeyMsg, prompting bool) core.InputFrame {
	f := core.NewInputFrame()

	switch {
	case key.Matches(msg, k.Quit):
		f.Set(core.IntentQuit)
		return f
	case key.Matches(msg, k.Save):
		f.Set(core.IntentSave)
		return f
	case key.Matches(msg, k.Cancel):
		f.Set(core.IntentCancel)
		return f
	}

	if d, ok := k.direction(msg); ok {
		f.SetDir(d)
		if !prompting {
			if d == core.Here {
				f.Set(core.IntentSkip)
			} else {
				f.Set(core.IntentMove)
			}
		}
		return f
	}
	if prompting {
		return f
	}

	switch {
	case key.Matches(msg, k.Wield):
		f.Set(core.IntentWield)
	case key.Matches(msg, k.Drop):
		f.Set(core.IntentDrop)
	case key.Matches(msg, k.Dig):
		f.Set(core.IntentDig)
	case key.Matches(msg, k.Read):
		f.Set(core.IntentRead)
	case key.Matches(msg, k.Animate):
		f.Set(core.IntentAnimate)
	}
	return f
}

// MenuKeyMap defines the key bindings for the world picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	New    key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.New, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.New, k.Delete, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new world"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
