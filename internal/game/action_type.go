package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game/tilemap"
)

// ActionKind is the closed set of things an actor can spend time on.
type ActionKind uint8

const (
	SkippingTime ActionKind = iota
	Walking
	Wielding
	Dropping
	Digging
	Reading
	Animate
)

var actionNames = [...]string{"skipping", "walking", "wielding", "dropping", "digging", "reading", "animate"}

func (k ActionKind) String() string {
	if int(k) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[k]
}

// MarshalText encodes the kind by name.
func (k ActionKind) MarshalText() ([]byte, error) {
	if int(k) >= len(actionNames) {
		return nil, fmt.Errorf("game: invalid action kind %d", k)
	}
	return []byte(actionNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *ActionKind) UnmarshalText(text []byte) error {
	for i, name := range actionNames {
		if name == string(text) {
			*k = ActionKind(i)
			return nil
		}
	}
	return fmt.Errorf("game: unknown action kind %q", string(text))
}

// ActionType is an action kind with its parameters. Dir is relative to the
// owner's position; Index selects a wielded item for Dropping.
type ActionType struct {
	Kind  ActionKind     `json:"kind"`
	Dir   core.Direction `json:"dir"`
	Index int            `json:"index,omitempty"`
}

func Skip() ActionType { return ActionType{Kind: SkippingTime} }
func Walk(dir core.Direction) ActionType { return ActionType{Kind: Walking, Dir: dir} }
func Wield(dir core.Direction) ActionType { return ActionType{Kind: Wielding, Dir: dir} }
func Dig(dir core.Direction) ActionType { return ActionType{Kind: Digging, Dir: dir} }
func Read(dir core.Direction) ActionType { return ActionType{Kind: Reading, Dir: dir} }
func Raise(dir core.Direction) ActionType { return ActionType{Kind: Animate, Dir: dir} }

// Drop puts down the wielded item at index.
func Drop(index int, dir core.Direction) ActionType {
	return ActionType{Kind: Dropping, Dir: dir, Index: index}
}

func (t ActionType) String() string {
	switch t.Kind {
	case SkippingTime:
		return t.Kind.String()
	case Dropping:
		return fmt.Sprintf("%s %d %s", t.Kind, t.Index, t.Dir)
	default:
		return fmt.Sprintf("%s %s", t.Kind, t.Dir)
	}
}

// Length returns how many ticks the action takes for owner. Targets that
// are not loaded yet take 0 ticks; Possible rejects them.
func (t ActionType) Length(owner *Avatar, w *World) float64 {
	if t.Kind == SkippingTime {
		return 1
	}
	if t.Kind == Dropping {
		if t.Index < 0 || t.Index >= len(owner.Wield) {
			return 0
		}
		k := 1.0
		if t.Dir != core.Here {
			k = 1.5
		}
		return math.Round(owner.Wield[t.Index].DropTime(owner.Character) * k)
	}

	tile, ok := w.GetTile(owner.Pos.Add(t.Dir))
	if !ok {
		return 0
	}
	switch t.Kind {
	case Walking:
		return math.Round(tile.Terrain.Passage().Length * w.speedOf(owner))
	case Wielding:
		item, ok := tile.TopItem()
		if !ok {
			return 0
		}
		return math.Round(item.WieldTime(owner.Character))
	case Digging:
		if tile.Terrain.Kind == tilemap.Grave {
			return 2000
		}
		return 1000
	case Reading:
		return float64(len(tile.Read()))
	case Animate:
		i := tile.FirstIndex(tilemap.Corpse)
		if i < 0 {
			return 0
		}
		return float64(tile.Items[i].Mass() / 10)
	default:
		return 0
	}
}

// Possible checks whether owner can start the action right now. The error,
// if any, is an *ImpossibleError whose message is meant for the player.
func (t ActionType) Possible(owner *Avatar, w *World) error {
	switch t.Kind {
	case SkippingTime:
		return nil
	case Wielding:
		if len(owner.Wield) > 0 {
			return impossible("You already have something in your hands")
		}
	case Dropping:
		if t.Index < 0 || t.Index >= len(owner.Wield) {
			return impossible("You have nothing to drop")
		}
	}

	tile, ok := w.GetTile(owner.Pos.Add(t.Dir))
	if !ok {
		return impossible("Tile isn't loaded yet")
	}

	switch t.Kind {
	case Walking:
		if !tile.Terrain.IsPassable() {
			return impossible(fmt.Sprintf("You can't walk to the %s", tile.Terrain.Name()))
		}
		if id, ok := tile.OccupiedBy(owner.ID); ok {
			name := id.String()
			if other, ok := w.Actor(id); ok {
				name = other.NameForActions()
			}
			return impossible(fmt.Sprintf("%s is on the way", name))
		}
	case Wielding:
		if len(tile.Items) == 0 {
			return impossible("There is nothing to pick up")
		}
	case Dropping:
		if !tile.Terrain.IsPassable() {
			return impossible(fmt.Sprintf("You can't put items on %s", tile.Terrain.Name()))
		}
	case Digging:
		if !tile.Terrain.IsDiggable() {
			return impossible(fmt.Sprintf("You can't dig the %s", tile.Terrain.Name()))
		}
		if !owner.wields(tilemap.TagDig) {
			return impossible("You need a shovel to dig!")
		}
	case Reading:
		if !tile.IsReadable() {
			return impossible("There is nothing to read")
		}
	case Animate:
		if tile.FirstIndex(tilemap.Corpse) < 0 {
			return impossible("There is nothing to rise")
		}
	default:
		return impossible(fmt.Sprintf("Unknown action %d", t.Kind))
	}
	return nil
}
