// Package tilemap contains the static pieces of the world map: terrain,
// items, tiles, chunks and the procedural chunk generator.
package tilemap

import (
	"fmt"

	"github.com/vovakirdan/gravedigger/internal/human"
)

// TerrainKind is the closed set of ground types.
type TerrainKind uint8

const (
	Dirt TerrainKind = iota
	Grass
	Boulder
	Pit
	Grave
)

// GraveVariant distinguishes fresh graves from weathered ones.
type GraveVariant uint8

const (
	GraveNew GraveVariant = iota
	GraveOld
)

// GraveData is what a grave holds: the buried person and the year of death.
type GraveData struct {
	Character human.Character `json:"character"`
	DeathYear int             `json:"death_year"`
}

// Text is the inscription carved for the buried person.
func (g GraveData) Text() string {
	return fmt.Sprintf("%s. %d — %d", g.Character.Name, g.DeathYear-g.Character.Age, g.DeathYear)
}

// Passage describes whether an actor can step onto a tile and how long it takes.
type Passage struct {
	Passable bool
	Length   float64
}

// Terrain is the ground of a tile. Variant is the dirt/grass look, the boulder
// size or the GraveVariant, depending on Kind. Grave is set only for graves.
type Terrain struct {
	Kind    TerrainKind
	Variant uint8
	Grave   *GraveData
}

func NewDirt(variant uint8) Terrain { return Terrain{Kind: Dirt, Variant: variant} }
func NewGrass(variant uint8) Terrain { return Terrain{Kind: Grass, Variant: variant} }
func NewBoulder(size uint8) Terrain { return Terrain{Kind: Boulder, Variant: size} }
func NewPit() Terrain { return Terrain{Kind: Pit} }

// NewGrave creates a grave holding data.
func NewGrave(variant GraveVariant, data GraveData) Terrain {
	return Terrain{Kind: Grave, Variant: uint8(variant), Grave: &data}
}

// Name is the lowercase name used in messages.
func (t Terrain) Name() string {
	switch t.Kind {
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	case Boulder:
		switch t.Variant {
		case 1:
			return "small boulder"
		case 3:
			return "huge boulder"
		default:
			return "boulder"
		}
	case Pit:
		return "pit"
	case Grave:
		return "grave"
	default:
		return "unknown terrain"
	}
}

// Passage returns how the terrain can be walked on.
func (t Terrain) Passage() Passage {
	switch t.Kind {
	case Dirt:
		return Passage{Passable: true, Length: 10}
	case Grass:
		return Passage{Passable: true, Length: 11}
	case Grave:
		return Passage{Passable: true, Length: 12}
	default:
		return Passage{}
	}
}

// IsPassable is shorthand for Passage().Passable.
func (t Terrain) IsPassable() bool {
	return t.Passage().Passable
}

// IsDiggable reports whether a shovel can turn the terrain into a pit.
func (t Terrain) IsDiggable() bool {
	switch t.Kind {
	case Dirt, Grass, Grave:
		return true
	default:
		return false
	}
}

// IsReadable reports whether the terrain carries text.
func (t Terrain) IsReadable() bool {
	return t.Kind == Grave && t.Grave != nil
}

// Read returns the terrain text, or "" when there is none.
func (t Terrain) Read() string {
	if !t.IsReadable() {
		return ""
	}
	return t.Grave.Text()
}
