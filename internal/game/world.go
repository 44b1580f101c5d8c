// Package game is the turn-based simulation: actors commit to timed
// actions, the world clock advances while the player is busy, and the map is
// generated chunk by chunk on demand. A World is owned by a single driving
// loop and is not safe for concurrent use.
package game

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game/tilemap"
	"github.com/vovakirdan/gravedigger/internal/human"
)

// Meta is the persistent identity of a world.
type Meta struct {
	Name        string  `json:"name"`
	Seed        uint64  `json:"seed"`
	CurrentTick float64 `json:"current_tick"`
}

// Rules are the tunable speed modifiers. Walking time is multiplied by them.
type Rules struct {
	DefaultSpeed float64
	ZombieSpeed  float64
}

// DefaultRules returns the stock speed modifiers.
func DefaultRules() Rules {
	return Rules{DefaultSpeed: 1.0, ZombieSpeed: 0.75}
}

// World owns the chunk cache, the actors and the clock.
type World struct {
	meta   Meta
	rules  Rules
	rng    *rand.Rand
	chunks map[core.ChunkPos]*tilemap.Chunk
	actors map[core.ActorID]*Avatar
	order  []core.ActorID // ascending
	nextID core.ActorID
	player core.ActorID
}

// New creates an empty world without actors.
func New(meta Meta, rules Rules) *World {
	return &World{
		meta:   meta,
		rules:  rules,
		rng:    newRNG(meta),
		chunks: make(map[core.ChunkPos]*tilemap.Chunk),
		actors: make(map[core.ActorID]*Avatar),
		nextID: 1,
	}
}

// brains are fed from the seed mixed with the clock so a restored world
// continues deterministically
func newRNG(meta Meta) *rand.Rand {
	return rand.New(rand.NewSource(int64(meta.Seed ^ math.Float64bits(meta.CurrentTick))))
}

func (w *World) Meta() Meta           { return w.meta }
func (w *World) Name() string         { return w.meta.Name }
func (w *World) Seed() uint64         { return w.meta.Seed }
func (w *World) CurrentTick() float64 { return w.meta.CurrentTick }
func (w *World) Rules() Rules         { return w.rules }

func (w *World) speedOf(a *Avatar) float64 {
	if _, ok := a.Brain.(*ZombieBrain); ok {
		return w.rules.ZombieSpeed
	}
	return w.rules.DefaultSpeed
}

// LoadChunk returns the cached chunk, generating it on first access.
func (w *World) LoadChunk(pos core.ChunkPos) *tilemap.Chunk {
	c, ok := w.chunks[pos]
	if !ok {
		c = tilemap.Generate(w.meta.Seed, pos)
		w.chunks[pos] = c
	}
	return c
}

// LoadTile returns the tile at pos, generating its chunk if needed.
func (w *World) LoadTile(pos core.TilePos) *tilemap.Tile {
	chunk, index := pos.ChunkAndIndex()
	return w.LoadChunk(chunk).Tile(index)
}

// GetTile returns the tile at pos only if its chunk is already loaded.
func (w *World) GetTile(pos core.TilePos) (*tilemap.Tile, bool) {
	chunk, index := pos.ChunkAndIndex()
	c, ok := w.chunks[chunk]
	if !ok {
		return nil, false
	}
	return c.Tile(index), true
}

// LoadedChunks lists cached chunk positions sorted by row, then column.
func (w *World) LoadedChunks() []core.ChunkPos {
	out := make([]core.ChunkPos, 0, len(w.chunks))
	for pos := range w.chunks {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// LoadAround loads every chunk touching the square of the given radius
// around center.
func (w *World) LoadAround(center core.TilePos, radius int) {
	from := core.TilePos{X: center.X - radius, Y: center.Y - radius}.Chunk()
	to := core.TilePos{X: center.X + radius, Y: center.Y + radius}.Chunk()
	for cy := from.Y; cy <= to.Y; cy++ {
		for cx := from.X; cx <= to.X; cx++ {
			w.LoadChunk(core.ChunkPos{X: cx, Y: cy})
		}
	}
}

func (w *World) addActor(a *Avatar) {
	if a.ID == 0 {
		a.ID = w.nextID
	}
	if a.ID >= w.nextID {
		w.nextID = a.ID + 1
	}
	w.actors[a.ID] = a
	i := sort.Search(len(w.order), func(i int) bool { return w.order[i] >= a.ID })
	w.order = append(w.order, 0)
	copy(w.order[i+1:], w.order[i:])
	w.order[i] = a.ID
	w.LoadTile(a.Pos).AddOccupant(a.ID)
}

// SpawnPlayer puts the player at pos and loads the chunks around it. An
// impassable spawn tile is turned into dirt, and a shovel is left there.
func (w *World) SpawnPlayer(c human.Character, pos core.TilePos) *Avatar {
	w.LoadAround(pos, core.ChunkSize)
	tile := w.LoadTile(pos)
	if !tile.Terrain.IsPassable() {
		tile.Terrain = tilemap.NewDirt(1)
	}
	tile.PushItem(tilemap.NewItem(tilemap.Shovel))

	p := newPlayer(c, pos)
	w.addActor(p)
	w.player = p.ID
	return p
}

// SpawnZombie raises a zombie at pos.
func (w *World) SpawnZombie(c human.Character, body human.Body, pos core.TilePos) *Avatar {
	z := newZombie(c, body, pos)
	w.addActor(z)
	return z
}

// Actor looks up an actor by id.
func (w *World) Actor(id core.ActorID) (*Avatar, bool) {
	a, ok := w.actors[id]
	return a, ok
}

// Player returns the input-driven actor, or nil before it is spawned.
func (w *World) Player() *Avatar {
	return w.actors[w.player]
}

// Actors returns all actors in ascending id order.
func (w *World) Actors() []*Avatar {
	out := make([]*Avatar, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.actors[id])
	}
	return out
}

// Submit starts an action for the actor if it is possible.
func (w *World) Submit(id core.ActorID, t ActionType) (Action, error) {
	a, ok := w.actors[id]
	if !ok {
		return Action{}, ErrUnknownActor
	}
	if a.Action != nil {
		return Action{}, ErrBusy
	}
	action, err := NewAction(a, t, w)
	if err != nil {
		return Action{}, err
	}
	a.Action = &action
	return action, nil
}

// Cancel drops the actor's action. Time already spent is lost.
func (w *World) Cancel(id core.ActorID) bool {
	a, ok := w.actors[id]
	if !ok || a.Action == nil {
		return false
	}
	a.Action = nil
	return true
}

// Tick runs one simulation step:
//  1. due actions are applied in actor id order;
//  2. idle brain actors plan and start their proposals;
//  3. the clock moves towards the player's finish tick, by at most one.
//
// While the player is idle the clock stands still.
func (w *World) Tick() []Event {
	var events []Event

	for _, id := range w.order {
		a := w.actors[id]
		if a.Action == nil || a.Action.Finish > w.meta.CurrentTick {
			continue
		}
		action := *a.Action
		a.Action = nil
		events = append(events, w.act(a, action)...)
	}

	for _, id := range w.order {
		a := w.actors[id]
		if a.Brain == nil || a.Action != nil {
			continue
		}
		a.Brain.Plan(w.rng)
		if t, ok := a.Brain.Action(); ok {
			_, _ = w.Submit(id, t)
		}
	}

	if p := w.Player(); p != nil && p.Action != nil {
		w.meta.CurrentTick += math.Min(1, p.Action.Remaining(w.meta.CurrentTick))
	}
	return events
}

// RunUntilIdle ticks until the player has no action, at most limit times.
// It returns the events and the number of ticks run.
func (w *World) RunUntilIdle(limit int) ([]Event, int) {
	var events []Event
	steps := 0
	for steps < limit {
		p := w.Player()
		if p == nil || p.Action == nil {
			break
		}
		events = append(events, w.Tick()...)
		steps++
	}
	return events, steps
}
