package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravedigger/internal/savefile"
	"github.com/vovakirdan/gravedigger/internal/storage"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a world",
	Long:  `Deletes the save file of the named world together with its index entry and journal.`,
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

func runDelete(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger("gravedigger")

	rec := findWorld(cfg, args[0])
	if err := savefile.Delete(rec.Path); err != nil {
		exitf("%v", err)
	}

	if store := openStore(cfg, logger); store != nil {
		defer store.Close()
		if err := store.DeleteWorld(rec.Name); err != nil && !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("could not remove world from index", "world", rec.Name, "error", err)
		}
	}

	fmt.Printf("Deleted %q\n", rec.Name)
}
