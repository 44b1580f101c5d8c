package tilemap

import (
	"math/rand"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/human"
)

// TilesPerChunk is the number of tiles in one chunk.
const TilesPerChunk = core.ChunkSize * core.ChunkSize

// Chunk is a square block of tiles stored row-major.
type Chunk struct {
	Pos   core.ChunkPos
	Tiles [TilesPerChunk]Tile
}

// Tile returns the tile at a row-major index.
func (c *Chunk) Tile(index int) *Tile {
	return &c.Tiles[index]
}

// Generation thresholds, per mille of tiles.
const (
	boulderChance = 15
	graveChance   = 5
	itemChance    = 3
	grassChance   = 380
)

var scatteredItems = [...]ItemKind{Shovel, Axe, Knife, Hat, Cloak}

// Generate builds the chunk at pos. The result depends only on seed and pos.
func Generate(seed uint64, pos core.ChunkPos) *Chunk {
	c := &Chunk{Pos: pos}
	// graves draw their dead from a chunk-local source, in tile order
	rng := rand.New(rand.NewSource(int64(core.Hash2(seed, pos.X, pos.Y))))

	for i := range c.Tiles {
		p := pos.Tile(i)
		h := core.Hash2(seed^0x6a09e667f3bcc908, p.X, p.Y)
		roll := int(h % 1000)
		look := uint8((h >> 16) % 5)

		tile := &c.Tiles[i]
		switch {
		case roll < boulderChance:
			tile.Terrain = NewBoulder(uint8(1 + (h>>16)%3))
		case roll < boulderChance+graveChance:
			tile.Terrain = newGrave(rng)
		case roll < boulderChance+graveChance+itemChance:
			tile.Terrain = NewDirt(1 + look)
			tile.Items = []Item{NewItem(scatteredItems[(h>>24)%uint64(len(scatteredItems))])}
		case roll < grassChance:
			tile.Terrain = NewGrass(1 + uint8((h>>16)%3))
		default:
			tile.Terrain = NewDirt(1 + look)
		}
	}
	return c
}

func newGrave(rng *rand.Rand) Terrain {
	deathYear := 200 + rng.Intn(56)
	variant := GraveOld
	if rng.Intn(3) == 0 {
		variant = GraveNew
	}
	return NewGrave(variant, GraveData{
		Character: human.RandomCharacter(rng, 90),
		DeathYear: deathYear,
	})
}
