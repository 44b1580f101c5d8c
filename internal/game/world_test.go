package game

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game/tilemap"
	"github.com/vovakirdan/gravedigger/internal/human"
)

var (
	digger = human.Character{Name: "Jasper Thorne", Gender: human.Male, Age: 35}
	buried = human.Character{Name: "Edith Marsh", Gender: human.Female, Age: 55}
)

// testWorld returns a world whose spawn area is flat, empty dirt.
func testWorld(t *testing.T) (*World, *Avatar) {
	t.Helper()
	w := New(Meta{Name: "test", Seed: 1}, DefaultRules())
	w.LoadAround(core.TilePos{}, core.ChunkSize)
	for y := -4; y <= 4; y++ {
		for x := -4; x <= 4; x++ {
			tile := w.LoadTile(core.TilePos{X: x, Y: y})
			tile.Terrain = tilemap.NewDirt(1)
			tile.Items = nil
		}
	}
	p := w.SpawnPlayer(digger, core.TilePos{})
	w.LoadTile(core.TilePos{}).Items = nil
	return w, p
}

func expectImpossible(t *testing.T, err error, reason string) {
	t.Helper()
	var ie *ImpossibleError
	if !errors.As(err, &ie) {
		t.Fatalf("expected ImpossibleError %q, got %v", reason, err)
	}
	if ie.Reason != reason {
		t.Errorf("reason = %q, expected %q", ie.Reason, reason)
	}
}

func TestTickWithoutActionKeepsClock(t *testing.T) {
	w, _ := testWorld(t)
	w.SpawnZombie(buried, human.NewHumanBody(buried, human.Rotten), core.TilePos{X: 3, Y: 3})

	for i := 0; i < 20; i++ {
		w.Tick()
	}
	if w.CurrentTick() != 0 {
		t.Errorf("CurrentTick() = %v, expected 0 while the player is idle", w.CurrentTick())
	}
}

func TestWalkingEast(t *testing.T) {
	w, p := testWorld(t)

	action, err := w.Submit(p.ID, Walk(core.East))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if action.Finish != 10 {
		t.Fatalf("Finish = %v, expected 10", action.Finish)
	}

	for i := 0; i < 10; i++ {
		w.Tick()
		if p.Pos != (core.TilePos{}) {
			t.Fatalf("player moved at tick %v, before the action resolved", w.CurrentTick())
		}
	}
	if w.CurrentTick() != 10 {
		t.Fatalf("CurrentTick() = %v, expected 10", w.CurrentTick())
	}

	w.Tick()
	if p.Pos != (core.TilePos{X: 1, Y: 0}) {
		t.Errorf("player at %v, expected (1, 0)", p.Pos)
	}
	if p.Action != nil {
		t.Error("action slot should be cleared")
	}
	if w.CurrentTick() != 10 {
		t.Errorf("CurrentTick() = %v, expected 10", w.CurrentTick())
	}
	if len(w.LoadTile(core.TilePos{}).Occupants) != 0 {
		t.Error("old tile still lists the player")
	}
	if occ := w.LoadTile(p.Pos).Occupants; len(occ) != 1 || occ[0] != p.ID {
		t.Errorf("new tile occupants = %v", occ)
	}
}

func TestRunUntilIdle(t *testing.T) {
	w, p := testWorld(t)
	if _, err := w.Submit(p.ID, Walk(core.South)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	_, steps := w.RunUntilIdle(100)
	if steps != 11 {
		t.Errorf("steps = %d, expected 11", steps)
	}
	if p.Pos != (core.TilePos{X: 0, Y: 1}) {
		t.Errorf("player at %v", p.Pos)
	}

	if _, err := w.Submit(p.ID, Walk(core.South)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, steps := w.RunUntilIdle(3); steps != 3 {
		t.Errorf("limit not honored: %d steps", steps)
	}
}

func TestWalkingSpeedMonotone(t *testing.T) {
	w, p := testWorld(t)

	prev := 0.0
	for _, speed := range []float64{0.25, 0.5, 0.75, 1, 1.25, 2} {
		w.rules.DefaultSpeed = speed
		length := Walk(core.East).Length(p, w)
		if length < prev {
			t.Errorf("speed %v gives %v ticks, less than %v", speed, length, prev)
		}
		prev = length
	}
}

func TestZombieWalkLength(t *testing.T) {
	w, _ := testWorld(t)
	z := w.SpawnZombie(buried, human.NewHumanBody(buried, human.Rotten), core.TilePos{X: 2, Y: 2})

	if got := Walk(core.East).Length(z, w); got != 8 {
		t.Errorf("zombie walk = %v, expected 8", got)
	}
	if z.NameForActions() != "Zombie Edith Marsh" {
		t.Errorf("NameForActions() = %q", z.NameForActions())
	}
}

func TestWalkingImpossible(t *testing.T) {
	w, p := testWorld(t)

	w.LoadTile(core.TilePos{X: 1, Y: 0}).Terrain = tilemap.NewBoulder(2)
	_, err := w.Submit(p.ID, Walk(core.East))
	expectImpossible(t, err, "You can't walk to the boulder")
	if p.Action != nil {
		t.Error("rejected action must not be attached")
	}

	w.SpawnZombie(buried, human.NewHumanBody(buried, human.Rotten), core.TilePos{X: 0, Y: 1})
	_, err = w.Submit(p.ID, Walk(core.South))
	expectImpossible(t, err, "Zombie Edith Marsh is on the way")

	if _, err := w.Submit(p.ID, Walk(core.Here)); err != nil {
		t.Errorf("standing still should be possible: %v", err)
	}
}

func TestWalkingIntoUnloadedChunk(t *testing.T) {
	w := New(Meta{Seed: 3}, DefaultRules())
	edge := core.TilePos{X: core.ChunkSize - 1, Y: 0}
	w.LoadTile(edge).Terrain = tilemap.NewDirt(1)
	p := newPlayer(digger, edge)
	w.addActor(p)
	w.player = p.ID

	if got := Walk(core.East).Length(p, w); got != 0 {
		t.Errorf("length into an unloaded chunk = %v, expected 0", got)
	}
	_, err := w.Submit(p.ID, Walk(core.East))
	expectImpossible(t, err, "Tile isn't loaded yet")
}

func TestWieldAndDrop(t *testing.T) {
	w, p := testWorld(t)
	east := w.LoadTile(core.TilePos{X: 1, Y: 0})

	_, err := w.Submit(p.ID, Wield(core.East))
	expectImpossible(t, err, "There is nothing to pick up")

	east.PushItem(tilemap.NewItem(tilemap.Hat))
	east.PushItem(tilemap.NewItem(tilemap.Shovel))
	action, err := w.Submit(p.ID, Wield(core.East))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if action.Finish != 10 {
		t.Errorf("wield finish = %v, expected 10", action.Finish)
	}
	w.RunUntilIdle(100)

	if len(p.Wield) != 1 || p.Wield[0].Kind != tilemap.Shovel {
		t.Fatalf("wielded = %v", p.Wield)
	}
	if len(east.Items) != 1 || east.Items[0].Kind != tilemap.Hat {
		t.Errorf("tile items = %v", east.Items)
	}

	_, err = w.Submit(p.ID, Wield(core.East))
	expectImpossible(t, err, "You already have something in your hands")

	if got := Drop(0, core.East).Length(p, w); got != 15 {
		t.Errorf("drop aside = %v, expected 15", got)
	}
	if got := Drop(0, core.Here).Length(p, w); got != 10 {
		t.Errorf("drop here = %v, expected 10", got)
	}
	_, err = w.Submit(p.ID, Drop(1, core.Here))
	expectImpossible(t, err, "You have nothing to drop")

	w.LoadTile(core.TilePos{X: -1, Y: 0}).Terrain = tilemap.NewPit()
	_, err = w.Submit(p.ID, Drop(0, core.West))
	expectImpossible(t, err, "You can't put items on pit")

	if _, err := w.Submit(p.ID, Drop(0, core.Here)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	w.RunUntilIdle(100)
	if len(p.Wield) != 0 {
		t.Error("item should have left the hands")
	}
	if top, _ := w.LoadTile(p.Pos).TopItem(); top.Kind != tilemap.Shovel {
		t.Errorf("top item = %v", top.Kind)
	}
}

func TestDigPlainTerrain(t *testing.T) {
	w, p := testWorld(t)

	_, err := w.Submit(p.ID, Dig(core.East))
	expectImpossible(t, err, "You need a shovel to dig!")

	p.Wield = append(p.Wield, tilemap.NewItem(tilemap.Shovel))
	action, err := w.Submit(p.ID, Dig(core.East))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if action.Finish != 1000 {
		t.Errorf("dig finish = %v, expected 1000", action.Finish)
	}
	w.RunUntilIdle(2000)

	target := core.TilePos{X: 1, Y: 0}
	if w.LoadTile(target).Terrain.Kind != tilemap.Pit {
		t.Fatalf("terrain = %v, expected pit", w.LoadTile(target).Terrain.Name())
	}
	for _, d := range core.Dir9 {
		if items := w.LoadTile(target.Add(d)).Items; len(items) != 0 {
			t.Errorf("digging dirt spawned %v at %v", items, target.Add(d))
		}
	}

	_, err = w.Submit(p.ID, Dig(core.East))
	expectImpossible(t, err, "You can't dig the pit")
}

func TestDigGraveAndRead(t *testing.T) {
	w, p := testWorld(t)
	p.Wield = append(p.Wield, tilemap.NewItem(tilemap.Shovel))

	target := core.TilePos{X: 1, Y: 0}
	data := tilemap.GraveData{Character: buried, DeathYear: 255}
	w.LoadTile(target).Terrain = tilemap.NewGrave(tilemap.GraveOld, data)

	action, err := w.Submit(p.ID, Dig(core.East))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if action.Finish != 2000 {
		t.Errorf("grave dig finish = %v, expected 2000", action.Finish)
	}
	events, _ := w.RunUntilIdle(3000)
	if msgs := Messages(events); len(msgs) != 1 || msgs[0] != "You dug up the grave of Edith Marsh" {
		t.Errorf("messages = %v", msgs)
	}

	if w.LoadTile(target).Terrain.Kind != tilemap.Pit {
		t.Fatal("grave should become a pit")
	}

	var found []core.TilePos
	for _, d := range core.Dir8 {
		if len(w.LoadTile(target.Add(d)).Items) > 0 {
			found = append(found, target.Add(d))
		}
	}
	north := target.Add(core.North)
	if len(found) != 1 || found[0] != north {
		t.Fatalf("items found at %v, expected only %v", found, north)
	}

	items := w.LoadTile(north).Items
	if len(items) != 2 || items[0].Kind != tilemap.Corpse || items[1].Kind != tilemap.Gravestone {
		t.Fatalf("items = %v", items)
	}
	if items[0].Corpse.Character != buried {
		t.Errorf("corpse is %v, expected %v", items[0].Corpse.Character, buried)
	}
	for _, part := range items[0].Corpse.Body.Parts {
		if part.Freshness != human.Skeletal {
			t.Errorf("part %s is %v", part.Name, part.Freshness)
		}
	}

	text := w.LoadTile(north).Read()
	action, err = w.Submit(p.ID, Read(core.NorthEast))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if action.Finish-w.CurrentTick() != float64(len(text)) {
		t.Errorf("reading takes %v, expected %d", action.Finish-w.CurrentTick(), len(text))
	}
	events, _ = w.RunUntilIdle(100)
	msgs := Messages(events)
	expected := "You read on gravestone: Edith Marsh. 200 — 255"
	if len(msgs) != 1 || msgs[0] != expected {
		t.Errorf("messages = %q, expected %q", msgs, expected)
	}
}

func TestDigGraveWithoutRoom(t *testing.T) {
	w, p := testWorld(t)
	pos := core.TilePos{X: 10, Y: 10}
	w.LoadTile(pos).Terrain = tilemap.NewGrave(tilemap.GraveNew, tilemap.GraveData{Character: buried, DeathYear: 230})
	for _, d := range core.Dir8 {
		n := w.LoadTile(pos.Add(d))
		n.Terrain = tilemap.NewBoulder(3)
		n.Items = nil
	}

	w.dig(p, pos)

	tile := w.LoadTile(pos)
	if tile.Terrain.Kind != tilemap.Pit {
		t.Fatal("grave should become a pit")
	}
	if len(tile.Items) != 2 {
		t.Errorf("items should fall into the pit itself, got %v", tile.Items)
	}
}

func TestReadingNothing(t *testing.T) {
	w, p := testWorld(t)
	_, err := w.Submit(p.ID, Read(core.East))
	expectImpossible(t, err, "There is nothing to read")
	if p.Action != nil {
		t.Error("rejected reading must not be attached")
	}
}

func TestAnimate(t *testing.T) {
	w, p := testWorld(t)
	_, err := w.Submit(p.ID, Raise(core.West))
	expectImpossible(t, err, "There is nothing to rise")

	target := core.TilePos{X: 1, Y: 0}
	corpse := tilemap.NewCorpse(buried, human.NewHumanBody(buried, human.Skeletal))
	w.LoadTile(target).PushItem(corpse)

	action, err := w.Submit(p.ID, Raise(core.East))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if action.Finish != float64(corpse.Mass()/10) {
		t.Errorf("animate finish = %v, expected %d", action.Finish, corpse.Mass()/10)
	}

	events, _ := w.RunUntilIdle(10000)
	var spawned core.ActorID
	for _, e := range events {
		if e.Kind == EventSpawn {
			spawned = e.Actor
		}
	}
	z, ok := w.Actor(spawned)
	if !ok {
		t.Fatal("no zombie spawned")
	}
	if z.IsPlayer() || z.Character != buried || z.Pos != target {
		t.Errorf("zombie = %+v", z)
	}
	if len(w.LoadTile(target).Items) != 0 {
		t.Error("corpse should be consumed")
	}
	if msgs := Messages(events); len(msgs) != 1 || msgs[0] != "You raised Zombie Edith Marsh from the dead" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestSubmitAndCancel(t *testing.T) {
	w, p := testWorld(t)

	if _, err := w.Submit(99, Skip()); !errors.Is(err, ErrUnknownActor) {
		t.Errorf("expected ErrUnknownActor, got %v", err)
	}
	if _, err := w.Submit(p.ID, Walk(core.East)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := w.Submit(p.ID, Skip()); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	w.Tick()
	w.Tick()
	if !w.Cancel(p.ID) {
		t.Fatal("Cancel should report a dropped action")
	}
	if w.Cancel(p.ID) {
		t.Error("second Cancel should be a no-op")
	}
	if w.CurrentTick() != 2 {
		t.Errorf("elapsed time must not be refunded, tick = %v", w.CurrentTick())
	}
	if p.Pos != (core.TilePos{}) {
		t.Error("cancelled walk must not move the player")
	}
}

func TestZombiesWaitForPlayer(t *testing.T) {
	w, p := testWorld(t)
	z := w.SpawnZombie(buried, human.NewHumanBody(buried, human.Rotten), core.TilePos{X: 2, Y: 2})

	for i := 0; i < 50; i++ {
		w.Tick()
	}
	if z.Pos != (core.TilePos{X: 2, Y: 2}) {
		t.Errorf("zombie moved to %v while time stood still", z.Pos)
	}

	p.Wield = append(p.Wield, tilemap.NewItem(tilemap.Shovel))
	if _, err := w.Submit(p.ID, Dig(core.North)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	w.RunUntilIdle(2000)
	if w.CurrentTick() != 1000 {
		t.Errorf("CurrentTick() = %v, expected 1000", w.CurrentTick())
	}
	if w.LoadTile(core.TilePos{X: 0, Y: -1}).Terrain.Kind != tilemap.Pit {
		t.Error("dig should resolve while zombies wander")
	}
}

func TestChunkCache(t *testing.T) {
	w := New(Meta{Seed: 77}, DefaultRules())

	far := core.TilePos{X: 500, Y: -500}
	if _, ok := w.GetTile(far); ok {
		t.Fatal("GetTile must not generate")
	}
	if len(w.LoadedChunks()) != 0 {
		t.Fatal("GetTile loaded a chunk")
	}

	tile := w.LoadTile(far)
	again, ok := w.GetTile(far)
	if !ok || again != tile {
		t.Error("LoadTile should cache the chunk")
	}
	if w.LoadChunk(far.Chunk()) != w.LoadChunk(far.Chunk()) {
		t.Error("LoadChunk must return the cached chunk")
	}

	w.LoadChunk(core.ChunkPos{X: 1, Y: -1})
	w.LoadChunk(core.ChunkPos{X: -3, Y: 2})
	w.LoadChunk(core.ChunkPos{X: 0, Y: -1})
	expected := []core.ChunkPos{{X: 15, Y: -16}, {X: 0, Y: -1}, {X: 1, Y: -1}, {X: -3, Y: 2}}
	if got := w.LoadedChunks(); !reflect.DeepEqual(got, expected) {
		t.Errorf("LoadedChunks() = %v, expected %v", got, expected)
	}

	other := New(Meta{Seed: 77}, DefaultRules())
	pos := core.ChunkPos{X: -2, Y: 5}
	if !reflect.DeepEqual(w.LoadChunk(pos), other.LoadChunk(pos)) {
		t.Error("worlds with the same seed must generate the same chunks")
	}
}

func TestDeterminism(t *testing.T) {
	setup := Setup{Zombies: 6, SpawnRadius: 8}
	meta := Meta{Name: "twin", Seed: 2024}

	w1 := Create(meta, DefaultRules(), setup)
	w2 := Create(meta, DefaultRules(), setup)

	for _, w := range []*World{w1, w2} {
		p := w.Player()
		for i := 0; i < 5; i++ {
			if _, err := w.Submit(p.ID, Skip()); err != nil {
				t.Fatalf("Submit failed: %v", err)
			}
			w.RunUntilIdle(10)
		}
		if _, err := w.Submit(p.ID, Wield(core.Here)); err != nil {
			t.Fatalf("the spawn shovel should be wieldable: %v", err)
		}
		w.RunUntilIdle(100)
	}

	s1, s2 := w1.Snapshot(), w2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Actors < 2 {
		t.Errorf("expected zombies to spawn, got %d actors", s1.Actors)
	}
	if !reflect.DeepEqual(w1.State(), w2.State()) {
		t.Error("states differ")
	}
}
