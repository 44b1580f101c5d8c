package game

import (
	"math/rand"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/human"
)

// Setup controls how a new world is populated.
type Setup struct {
	// Player is the player character. A random one is drawn when nil.
	Player *human.Character
	// Zombies is how many wandering zombies start near the spawn.
	Zombies int
	// SpawnRadius bounds the distance of starting zombies from the spawn.
	SpawnRadius int
}

// Create builds a new world from meta and populates it. Everything it draws
// comes from the seed, so equal inputs give equal worlds.
func Create(meta Meta, rules Rules, setup Setup) *World {
	w := New(meta, rules)
	rng := rand.New(rand.NewSource(int64(core.Hash2(meta.Seed, 0x5eed, 0))))

	c := human.RandomCharacter(rng, 60)
	if setup.Player != nil {
		c = *setup.Player
	}
	spawn := core.TilePos{}
	w.SpawnPlayer(c, spawn)

	radius := setup.SpawnRadius
	if radius < 1 {
		radius = 1
	}
	for i := 0; i < setup.Zombies; i++ {
		// a bounded number of attempts; crowded spawns just get fewer zombies
		for attempt := 0; attempt < 16; attempt++ {
			pos := core.TilePos{
				X: spawn.X + rng.Intn(2*radius+1) - radius,
				Y: spawn.Y + rng.Intn(2*radius+1) - radius,
			}
			tile, ok := w.GetTile(pos)
			if !ok || !tile.Terrain.IsPassable() || len(tile.Occupants) > 0 {
				continue
			}
			dead := human.RandomCharacter(rng, 90)
			w.SpawnZombie(dead, human.NewHumanBody(dead, human.Rotten), pos)
			break
		}
	}
	return w
}
