package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravedigger/internal/config"
	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game"
	"github.com/vovakirdan/gravedigger/internal/savefile"
	"github.com/vovakirdan/gravedigger/internal/storage"
)

// statusRows is the number of screen rows below the map that are not log
// lines: a separator and the status line. The help line is rendered under
// the screen.
const statusRows = 2

// screenHeight leaves room for the help line.
func screenHeight(h int) int {
	return core.Max(h-1, 1)
}

// Model is the Bubble Tea model for playing one world.
type Model struct {
	world    *game.World
	record   *savefile.Record
	store    *storage.Store
	cfg      config.Config
	runtime  core.RuntimeConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	log      *MessageLog
	logger   *log.Logger
	prompt   core.Intent // waiting for a direction
	quitting bool
}

// NewModel creates a model playing w. The record and the store receive
// saves; store may be nil.
func NewModel(w *game.World, rec *savefile.Record, store *storage.Store, cfg config.Config, rt core.RuntimeConfig) Model {
	rt.TickRate = cfg.Sim.TickRate
	rt.StepsPerFrame = cfg.Sim.StepsPerFrame
	return Model{
		world:   w,
		record:  rec,
		store:   store,
		cfg:     cfg,
		runtime: rt,
		screen:  core.NewScreen(rt.ScreenW, screenHeight(rt.ScreenH)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		log:     NewMessageLog(cfg.Log.Limit),
		logger:  log.Default(),
	}
}

// WithLogger returns the model reporting save errors to l.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

// Init loads the surroundings and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.loadView()
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenHeight(msg.Height))
		m.help.Width = msg.Width
		m.loadView()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns a key press into player input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m.handleFrame(m.keys.Frame(msg, m.prompt != core.IntentNone))
}

// handleFrame applies one frame of input.
func (m Model) handleFrame(f core.InputFrame) (tea.Model, tea.Cmd) {
	switch f.Intent {
	case core.IntentQuit:
		m.save()
		m.quitting = true
		return m, tea.Quit
	case core.IntentSave:
		if m.save() {
			m.log.Push("Game saved")
		}
		return m, nil
	case core.IntentCancel:
		if m.prompt != core.IntentNone {
			m.prompt = core.IntentNone
			return m, nil
		}
		if p := m.world.Player(); p != nil && p.Action != nil {
			kind := p.Action.Type.Kind
			if m.world.Cancel(p.ID) {
				m.log.Push("You stop " + kind.String())
			}
		}
		return m, nil
	}

	p := m.world.Player()
	if p == nil || p.Action != nil {
		return m, nil
	}

	if m.prompt != core.IntentNone {
		if f.HasDir {
			intent := m.prompt
			m.prompt = core.IntentNone
			m.submit(actionFor(intent, f.Dir))
		}
		return m, nil
	}

	switch {
	case f.Has(core.IntentMove) && f.HasDir:
		m.submit(game.Walk(f.Dir))
	case f.Has(core.IntentSkip):
		m.submit(game.Skip())
	case f.Intent.NeedsDirection():
		m.prompt = f.Intent
	}
	return m, nil
}

// actionFor builds the action a prompted intent stands for.
func actionFor(intent core.Intent, d core.Direction) game.ActionType {
	switch intent {
	case core.IntentWield:
		return game.Wield(d)
	case core.IntentDrop:
		return game.Drop(0, d)
	case core.IntentDig:
		return game.Dig(d)
	case core.IntentRead:
		return game.Read(d)
	case core.IntentAnimate:
		return game.Raise(d)
	}
	return game.Skip()
}

// submit starts a player action, logging why it is impossible.
func (m *Model) submit(t game.ActionType) {
	p := m.world.Player()
	_, err := m.world.Submit(p.ID, t)
	var impossible *game.ImpossibleError
	switch {
	case err == nil:
	case errors.As(err, &impossible):
		m.log.Push(impossible.Reason)
	default:
		m.logger.Warn("cannot start action", "action", t.String(), "error", err)
	}
}

// handleTick advances the world while the player is busy.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if p := m.world.Player(); p != nil && p.Action != nil {
		events, _ := m.world.RunUntilIdle(m.runtime.StepsPerFrame)
		msgs := game.Messages(events)
		for _, msg := range msgs {
			m.log.Push(msg)
		}
		if len(msgs) > 0 && m.store != nil {
			if err := m.store.AppendJournal(m.world.Name(), m.world.CurrentTick(), msgs); err != nil {
				m.logger.Warn("cannot write journal", "world", m.world.Name(), "error", err)
			}
		}
		m.loadView()
	}
	return m, tickCmd(m.runtime.TickRate)
}

// loadView generates every chunk the map view can show.
func (m *Model) loadView() {
	p := m.world.Player()
	if p == nil {
		return
	}
	m.world.LoadAround(p.Pos, core.Max(m.runtime.ScreenW, m.runtime.ScreenH)/2+1)
}

// save writes the record and indexes it, reporting success.
func (m *Model) save() bool {
	if m.record == nil {
		return false
	}
	if err := SaveWorld(m.record, m.world, m.store); err != nil {
		m.logger.Error("cannot save world", "world", m.world.Name(), "error", err)
		m.log.Push("Save failed")
		return false
	}
	return true
}

// SaveWorld writes w into rec and updates the world index when store is
// not nil.
func SaveWorld(rec *savefile.Record, w *game.World, store *storage.Store) error {
	if err := rec.Save(w); err != nil {
		return err
	}
	if store == nil {
		return nil
	}
	now := time.Now()
	err := store.UpsertWorld(storage.WorldEntry{
		Name:      rec.Name,
		Seed:      rec.Seed,
		Path:      rec.Path,
		Tick:      rec.Tick,
		Actors:    len(w.Actors()),
		CreatedAt: rec.Time,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("index %s: %w", rec.Name, err)
	}
	return nil
}

// mapView is the screen area used by the map.
func (m Model) mapView() core.Rect {
	h := m.screen.Height() - statusRows - m.cfg.Log.Limit
	return core.NewRect(0, 0, m.screen.Width(), core.Max(h, 1))
}

// View renders the map, the status line, the message log and the help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	p := m.world.Player()
	if p == nil {
		return "no player in " + m.world.Name()
	}

	m.screen.Clear()
	view := m.mapView()
	DrawWorld(m.screen, m.world, view, p.Pos)

	m.screen.DrawHLine(0, view.Bottom(), view.W, '─')
	y := view.Bottom() + 1
	status := statusLine(m.world, p)
	if m.prompt != core.IntentNone {
		DrawCursor(m.screen, view, p.Vision)
		status = promptText(m.prompt)
	}
	m.screen.DrawTextColored(0, y, status, core.ColorCursor)
	for i, line := range m.log.Lines() {
		color := core.ColorMessage
		if i > 0 {
			color = core.ColorDim
		}
		m.screen.DrawTextColored(0, y+1+i, line, color)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// promptText asks for the direction of a prompted intent.
func promptText(intent core.Intent) string {
	return intent.String() + ": which direction? (. for here, esc to cancel)"
}

// IsQuitting reports whether the player left the world.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// World returns the world being played.
func (m Model) World() *game.World {
	return m.world
}
