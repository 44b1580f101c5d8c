package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagJournalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal <name>",
	Short: "Show the event journal of a world",
	Long: `Shows the latest messages logged while the world was played or
simulated, oldest first.

Examples:
  gravedigger journal crypt
  gravedigger journal crypt --limit 100`,
	Args: cobra.ExactArgs(1),
	Run:  runJournal,
}

func init() {
	journalCmd.Flags().IntVarP(&flagJournalLimit, "limit", "n", 20, "Number of entries to show")
}

func runJournal(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger("gravedigger")

	store := openStore(cfg, logger)
	if store == nil {
		exitf("the world index is not available")
	}
	defer store.Close()

	entries, err := store.Journal(args[0], flagJournalLimit)
	if err != nil {
		exitf("%v", err)
	}
	if len(entries) == 0 {
		fmt.Printf("Nothing has happened in %q yet.\n", args[0])
		return
	}

	fmt.Printf("Journal of %s:\n\n", args[0])
	for _, e := range entries {
		fmt.Printf("  %10s  %s\n", formatTick(e.Tick), e.Message)
	}
}
