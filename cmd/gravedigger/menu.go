package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravedigger/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a world interactively",
	Long: `Open the world picker. Create, delete and play worlds from one screen.
Quitting a world brings you back to the picker.

Controls:
  Up/Down  - Navigate
  Enter    - Play
  n        - New world ("name" or "name seed")
  d        - Delete world
  Q/Ctrl+C - Quit`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger("gravedigger")

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	for {
		rec, err := tui.RunMenu(cfg.World.SavesDir, store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if rec == nil {
			return
		}
		if err := playWorld(rec, store, cfg, logger); err != nil {
			logger.Error("cannot play world", "world", rec.Name, "error", err)
		}
	}
}
