package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravedigger/internal/savefile"
	"github.com/vovakirdan/gravedigger/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Write a compressed copy of a world",
	Long: `Writes the named world as a zstd-compressed archive.

Examples:
  gravedigger export crypt crypt.save.zst`,
	Args: cobra.ExactArgs(2),
	Run:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a compressed world",
	Long: `Restores a world archive into the saves directory. An existing world
with the same name is never overwritten.

Examples:
  gravedigger import crypt.save.zst`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runExport(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	rec := findWorld(cfg, args[0])

	f, err := os.Create(args[1])
	if err != nil {
		exitf("%v", err)
	}
	if err := savefile.WriteArchive(f, rec); err != nil {
		f.Close()
		exitf("%v", err)
	}
	if err := f.Close(); err != nil {
		exitf("%v", err)
	}

	fmt.Printf("Exported %q to %s\n", rec.Name, args[1])
}

func runImport(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger("gravedigger")

	f, err := os.Open(args[0])
	if err != nil {
		exitf("%v", err)
	}
	rec, err := savefile.ReadArchive(f)
	f.Close()
	if err != nil {
		exitf("%v", err)
	}

	rec.Path = filepath.Join(cfg.World.SavesDir, savefile.FileName(rec.Name))
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
			Tick:      rec.Tick,
			CreatedAt: rec.Time,
			UpdatedAt: time.Now(),
		})
		if err != nil {
			logger.Warn("could not index world", "world", rec.Name, "error", err)
		}
	}

	fmt.Printf("Imported %q to %s\n", rec.Name, rec.Path)
}
