package game

import (
	"fmt"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game/tilemap"
	"github.com/vovakirdan/gravedigger/internal/human"
)

// act applies a resolved action. Effects are not checked again: whatever
// vanished since the action started is silently skipped.
func (w *World) act(a *Avatar, action Action) []Event {
	t := action.Type
	target := a.Pos.Add(t.Dir)

	switch t.Kind {
	case SkippingTime:
		return nil
	case Walking:
		w.move(a, target)
		return nil
	case Wielding:
		if item, ok := w.LoadTile(target).PopItem(); ok {
			a.Wield = append(a.Wield, item)
		}
		return nil
	case Dropping:
		if t.Index < 0 || t.Index >= len(a.Wield) {
			return nil
		}
		item := a.Wield[t.Index]
		a.Wield = append(a.Wield[:t.Index], a.Wield[t.Index+1:]...)
		w.LoadTile(target).PushItem(item)
		return nil
	case Digging:
		return w.dig(a, target)
	case Reading:
		text := w.LoadTile(target).Read()
		if text == "" {
			return nil
		}
		if a.IsPlayer() {
			return []Event{logEvent("You read on gravestone: " + text)}
		}
		return []Event{logEvent(fmt.Sprintf("%s reads on gravestone: %s", a.NameForActions(), text))}
	case Animate:
		return w.animate(a, target)
	default:
		return nil
	}
}

func (w *World) move(a *Avatar, to core.TilePos) {
	if to == a.Pos {
		return
	}
	w.LoadTile(a.Pos).RemoveOccupant(a.ID)
	w.LoadTile(to).AddOccupant(a.ID)
	if dx := to.X - a.Pos.X; dx > 0 {
		a.Vision = core.East
	} else if dx < 0 {
		a.Vision = core.West
	}
	a.Pos = to
}

func (w *World) dig(a *Avatar, pos core.TilePos) []Event {
	tile := w.LoadTile(pos)
	if !tile.Terrain.IsDiggable() {
		return nil
	}
	var grave *tilemap.GraveData
	if tile.Terrain.Kind == tilemap.Grave && tile.Terrain.Grave != nil {
		data := *tile.Terrain.Grave
		grave = &data
	}
	tile.Terrain = tilemap.NewPit()

	if grave == nil {
		return []Event{logEvent(fmt.Sprintf("%s dug a pit", a.NameForActions()))}
	}

	dest := tile
	for _, d := range core.Dir8 {
		n := w.LoadTile(pos.Add(d))
		if n.Terrain.IsPassable() {
			dest = n
			break
		}
	}
	c := grave.Character
	dest.PushItem(tilemap.NewCorpse(c, human.NewHumanBody(c, human.Skeletal)))
	dest.PushItem(tilemap.NewGravestone(*grave))

	return []Event{logEvent(fmt.Sprintf("%s dug up the grave of %s", a.NameForActions(), c.Name))}
}

func (w *World) animate(a *Avatar, pos core.TilePos) []Event {
	tile := w.LoadTile(pos)
	item, ok := tile.RemoveItem(tile.FirstIndex(tilemap.Corpse))
	if !ok || item.Corpse == nil {
		return nil
	}
	z := w.SpawnZombie(item.Corpse.Character, item.Corpse.Body, pos)
	return []Event{
		logEvent(fmt.Sprintf("%s raised %s from the dead", a.NameForActions(), z.NameForActions())),
		{Kind: EventSpawn, Actor: z.ID},
	}
}
