// gravedigger is a turn-based roguelike about digging up graves and raising
// the dead, played in the terminal.
//
// Usage:
//
//	gravedigger new <name>            - Create a world
//	gravedigger play <name>           - Play a world
//	gravedigger menu                  - Pick a world interactively
//	gravedigger list                  - List saved worlds
//	gravedigger sim <name>            - Advance a world without a terminal UI
//	gravedigger journal <name>        - Show the event journal of a world
//	gravedigger export <name> <file>  - Write a compressed copy of a world
//	gravedigger import <file>         - Restore a compressed world
//	gravedigger delete <name>         - Delete a world
//	gravedigger serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.gravedigger, ./configs)
//	--db <path>      - World index database (default: ~/.gravedigger/worlds.db)
//	--saves <dir>    - Saves directory (default: ~/.gravedigger/save)
//	--verbose        - Debug logging
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravedigger/internal/config"
	"github.com/vovakirdan/gravedigger/internal/savefile"
	"github.com/vovakirdan/gravedigger/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagSaves   string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravedigger",
	Short: "Gravedigger - dig up graves and raise the dead in your terminal",
	Long: `Gravedigger is a turn-based roguelike. Every action takes time; the
world only moves while you are busy. Dig up the graves scattered over an
endless graveyard, read the stones and raise the dead.

Available commands:
  new      - Create a world
  play     - Play a world
  menu     - Interactive world picker
  list     - Show saved worlds
  sim      - Advance a world headless
  journal  - Show what happened in a world
  export   - Write a compressed copy of a world
  import   - Restore a compressed world
  delete   - Delete a world
  serve    - Start SSH server for remote play

Examples:
  gravedigger new crypt --seed 42
  gravedigger play crypt
  gravedigger menu
  gravedigger serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to world index database (overrides world.db_path)")
	rootCmd.PersistentFlags().StringVar(&flagSaves, "saves", "", "Saves directory (overrides world.saves_dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(serveCmd)
}

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates the command logger.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the config, applies the global flags and expands the
// file locations.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	if flagDBPath != "" {
		cfg.World.DBPath = flagDBPath
	}
	if flagSaves != "" {
		cfg.World.SavesDir = flagSaves
	}
	if cfg.World.SavesDir, err = config.ExpandHome(cfg.World.SavesDir); err != nil {
		exitf("%v", err)
	}
	if cfg.World.DBPath, err = config.ExpandHome(cfg.World.DBPath); err != nil {
		exitf("%v", err)
	}
	return cfg
}

// openStore opens the world index. Commands keep working without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.World.DBPath)
	if err != nil {
		logger.Warn("could not open world index", "path", cfg.World.DBPath, "error", err)
		return nil
	}
	return store
}

// findWorld loads the named world from the saves directory.
func findWorld(cfg config.Config, name string) *savefile.Record {
	rec, err := savefile.Find(cfg.World.SavesDir, name)
	if errors.Is(err, os.ErrNotExist) {
		exitf("no world named %q in %s\nRun 'gravedigger new %s' to create it.", name, cfg.World.SavesDir, name)
	}
	if err != nil {
		exitf("%v", err)
	}
	return rec
}
