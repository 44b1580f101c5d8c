package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravedigger/internal/savefile"
	"github.com/vovakirdan/gravedigger/internal/storage"
)

var flagSeed string

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a world",
	Long: `Create a new world in the saves directory. The world is populated the
first time it is played.

The seed decides the whole graveyard. Numeric seeds are used as they are,
any other text is hashed. Without --seed the current time is used.

Examples:
  gravedigger new crypt
  gravedigger new crypt --seed 42
  gravedigger new "old chapel" --seed chapel`,
	Args: cobra.ExactArgs(1),
	Run:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagSeed, "seed", "", "World seed (number or text; default: current time)")
}

func runNew(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger("gravedigger")

	seed := uint64(time.Now().UnixNano())
	if flagSeed != "" {
		seed = savefile.ParseSeed(flagSeed)
	}

	rec := savefile.New(cfg.World.SavesDir, args[0], seed)
	if rec.Name == "" {
		exitf("world name is empty")
	}
	if err := rec.Create(); err != nil {
		if errors.Is(err, savefile.ErrFileExists) {
			exitf("world %q already exists", rec.Name)
		}
		exitf("%v", err)
	}

	if store := openStore(cfg, logger); store != nil {
		defer store.Close()
		err := store.UpsertWorld(storage.WorldEntry{
			Name:      rec.Name,
			Seed:      rec.Seed,
			Path:      rec.Path,
			CreatedAt: rec.Time,
			UpdatedAt: rec.Time,
		})
		if err != nil {
			logger.Warn("could not index world", "world", rec.Name, "error", err)
		}
	}

	fmt.Printf("Created world %q (seed %d) at %s\n", rec.Name, rec.Seed, rec.Path)
}
