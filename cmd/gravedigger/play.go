package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravedigger/internal/config"
	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/platform/tui"
	"github.com/vovakirdan/gravedigger/internal/savefile"
	"github.com/vovakirdan/gravedigger/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <name>",
	Short: "Play a world",
	Long: `Play the named world. The world is saved when you quit.

Controls:
  Arrows/hjkl/yubn  - Walk
  . / Space         - Wait a moment
  g                 - Pick up (then a direction)
  p                 - Put down (then a direction)
  x                 - Dig (then a direction; needs a shovel)
  r                 - Read (then a direction)
  a                 - Raise the dead (then a direction)
  Esc               - Cancel prompt or current action
  Ctrl+S            - Save
  ?                 - Toggle help
  Q/Ctrl+C          - Save and quit

Examples:
  gravedigger play crypt`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger("gravedigger")

	rec := findWorld(cfg, args[0])
	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	if err := playWorld(rec, store, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalRuntime sizes the screen to the terminal.
func terminalRuntime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}

// playWorld opens rec and runs the game until the player quits.
func playWorld(rec *savefile.Record, store *storage.Store, cfg config.Config, logger *log.Logger) error {
	w, err := rec.Open(cfg.Rules(), cfg.Setup())
	if err != nil {
		return err
	}
	logger.Debug("world opened", "world", rec.Name, "seed", rec.Seed, "tick", w.CurrentTick())

	model := tui.NewModel(w, rec, store, cfg, terminalRuntime()).WithLogger(logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	logger.Debug("world closed", "world", rec.Name, "tick", w.CurrentTick())
	return nil
}
