package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravedigger/internal/savefile"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved worlds",
	Long:  `Shows the worlds in the saves directory, most recently saved first.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	records, err := savefile.List(cfg.World.SavesDir)
	if err != nil {
		exitf("%v", err)
	}
	if len(records) == 0 {
		fmt.Println("No worlds yet.")
		fmt.Println("Run 'gravedigger new <name>' to create one.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, r := range records {
		if len(r.Name) > maxNameLen {
			maxNameLen = len(r.Name)
		}
	}

	fmt.Printf("  %-*s  %-20s  %10s  %s\n", maxNameLen, "Name", "Seed", "Tick", "Saved")
	fmt.Printf("  %-*s  %-20s  %10s  %s\n", maxNameLen, "----", "----", "----", "-----")
	for _, r := range records {
		tick := "new"
		if r.Played() {
			tick = fmt.Sprintf("%g", r.Tick)
		}
		fmt.Printf("  %-*s  %-20d  %10s  %s\n", maxNameLen, r.Name, r.Seed, tick, r.Time.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'gravedigger play <name>' to play a world.")
}
