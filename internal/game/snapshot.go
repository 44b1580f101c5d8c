package game

import "github.com/vovakirdan/gravedigger/internal/core"

// Snapshot is a compact summary of the world for determinism checks.
type Snapshot struct {
	Tick      float64
	Actors    int
	PlayerPos core.TilePos
	Positions []core.TilePos
	Busy      int
	Chunks    int
}

// Snapshot summarizes the current world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   w.meta.CurrentTick,
		Actors: len(w.order),
		Chunks: len(w.chunks),
	}
	if p := w.Player(); p != nil {
		s.PlayerPos = p.Pos
	}
	for _, a := range w.Actors() {
		s.Positions = append(s.Positions, a.Pos)
		if a.Action != nil {
			s.Busy++
		}
	}
	return s
}
