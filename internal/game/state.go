package game

import (
	"fmt"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game/tilemap"
	"github.com/vovakirdan/gravedigger/internal/human"
)

// ActorState is the saved form of an Avatar. Brain is empty for the player.
type ActorState struct {
	ID        core.ActorID    `json:"id"`
	Pos       core.TilePos    `json:"pos"`
	Character human.Character `json:"character"`
	Body      human.Body      `json:"body"`
	Wear      []tilemap.Item  `json:"wear,omitempty"`
	Wield     []tilemap.Item  `json:"wield,omitempty"`
	Action    *Action         `json:"action,omitempty"`
	Vision    core.Direction  `json:"vision"`
	Brain     string          `json:"brain,omitempty"`
}

// State is everything needed to resume a world. Chunks are not part of it:
// they are regenerated from the seed. Terrain changes made by digging are
// therefore lost between sessions.
type State struct {
	Meta   Meta         `json:"meta"`
	Actors []ActorState `json:"actors"`
	NextID core.ActorID `json:"next_id"`
	Player core.ActorID `json:"player"`
}

// State captures the world for saving.
func (w *World) State() State {
	s := State{
		Meta:   w.meta,
		Actors: make([]ActorState, 0, len(w.order)),
		NextID: w.nextID,
		Player: w.player,
	}
	for _, a := range w.Actors() {
		as := ActorState{
			ID:        a.ID,
			Pos:       a.Pos,
			Character: a.Character,
			Body:      a.Body,
			Wear:      append([]tilemap.Item(nil), a.Wear...),
			Wield:     append([]tilemap.Item(nil), a.Wield...),
			Vision:    a.Vision,
		}
		if a.Action != nil {
			action := *a.Action
			as.Action = &action
		}
		if a.Brain != nil {
			as.Brain = a.Brain.Kind()
		}
		s.Actors = append(s.Actors, as)
	}
	return s
}

// Restore rebuilds a world from a saved state.
func Restore(s State, rules Rules) (*World, error) {
	w := New(s.Meta, rules)
	for _, as := range s.Actors {
		if as.ID == 0 {
			return nil, fmt.Errorf("game: actor without id")
		}
		if _, dup := w.actors[as.ID]; dup {
			return nil, fmt.Errorf("game: duplicate actor %s", as.ID)
		}
		a := &Avatar{
			ID:        as.ID,
			Pos:       as.Pos,
			Character: as.Character,
			Body:      as.Body,
			Wear:      as.Wear,
			Wield:     as.Wield,
			Action:    as.Action,
			Vision:    as.Vision,
		}
		if as.Brain != "" {
			b, err := NewBrain(as.Brain)
			if err != nil {
				return nil, err
			}
			a.Brain = b
		}
		w.addActor(a)
	}
	if s.NextID > w.nextID {
		w.nextID = s.NextID
	}

	p, ok := w.actors[s.Player]
	if !ok || !p.IsPlayer() {
		return nil, fmt.Errorf("game: state has no player %s", s.Player)
	}
	w.player = p.ID
	w.LoadAround(p.Pos, core.ChunkSize)
	return w, nil
}
