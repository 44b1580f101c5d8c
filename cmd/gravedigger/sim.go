package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game"
	"github.com/vovakirdan/gravedigger/internal/platform/tui"
)

var (
	flagSimSteps int
	flagSimWalk  string
	flagSimDry   bool
)

var simCmd = &cobra.Command{
	Use:   "sim <name>",
	Short: "Advance a world without a terminal UI",
	Long: `Advance the named world by a number of player actions. Each action is
run to completion, so zombies keep wandering in between. Log messages are
printed and appended to the journal; the world is saved afterwards.

Without --walk the player waits; with it the player walks in that
direction, waiting whenever the way is blocked.

Examples:
  gravedigger sim crypt --steps 100
  gravedigger sim crypt --steps 20 --walk east
  gravedigger sim crypt --steps 20 --dry-run`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSteps, "steps", 10, "Number of player actions to run")
	simCmd.Flags().StringVar(&flagSimWalk, "walk", "", "Walk direction (north, east, southwest, ...)")
	simCmd.Flags().BoolVar(&flagSimDry, "dry-run", false, "Do not save the world afterwards")
}

func runSim(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger("gravedigger-sim")

	var walk core.Direction
	if flagSimWalk != "" {
		if err := walk.UnmarshalText([]byte(flagSimWalk)); err != nil {
			exitf("%v", err)
		}
	}

	rec := findWorld(cfg, args[0])
	w, err := rec.Open(cfg.Rules(), cfg.Setup())
	if err != nil {
		exitf("%v", err)
	}
	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	p := w.Player()
	if p == nil {
		exitf("world %q has no player", rec.Name)
	}
	logger.Info("simulating", "world", w.Name(), "tick", w.CurrentTick(), "actions", flagSimSteps)

	ticks := 0
	for i := 0; i < flagSimSteps; i++ {
		if p.Action == nil {
			action := game.Skip()
			if walk != core.Here {
				action = game.Walk(walk)
			}
			if _, err := w.Submit(p.ID, action); err != nil {
				var impossible *game.ImpossibleError
				if !errors.As(err, &impossible) {
					exitf("%v", err)
				}
				logger.Debug("action rejected", "action", action.String(), "reason", impossible.Reason)
				if _, err := w.Submit(p.ID, game.Skip()); err != nil {
					exitf("%v", err)
				}
			}
		}

		events, n := w.RunUntilIdle(cfg.Sim.RunLimit)
		ticks += n
		w.LoadAround(p.Pos, core.ChunkSize)

		msgs := game.Messages(events)
		for _, msg := range msgs {
			fmt.Printf("[%s] %s\n", formatTick(w.CurrentTick()), msg)
		}
		if len(msgs) > 0 && store != nil && !flagSimDry {
			if err := store.AppendJournal(w.Name(), w.CurrentTick(), msgs); err != nil {
				logger.Warn("could not write journal", "error", err)
			}
		}
	}

	snap := w.Snapshot()
	logger.Info("done",
		"tick", snap.Tick,
		"ticks_run", ticks,
		"player", snap.PlayerPos.String(),
		"actors", snap.Actors,
		"busy", snap.Busy,
		"chunks", snap.Chunks,
	)

	if flagSimDry {
		return
	}
	if err := tui.SaveWorld(rec, w, store); err != nil {
		exitf("%v", err)
	}
	logger.Debug("world saved", "path", rec.Path)
}

// formatTick prints a tick with at most two decimals.
func formatTick(t float64) string {
	return fmt.Sprintf("%.2f", t)
}
