package game

import (
	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game/tilemap"
	"github.com/vovakirdan/gravedigger/internal/human"
)

// Avatar is an actor in the world. A nil Brain means the actor is driven by
// player input.
type Avatar struct {
	ID        core.ActorID
	Pos       core.TilePos
	Character human.Character
	Body      human.Body
	Wear      []tilemap.Item
	Wield     []tilemap.Item
	Action    *Action
	Vision    core.Direction
	Brain     Brain
}

// IsPlayer reports whether the avatar is driven by input.
func (a *Avatar) IsPlayer() bool {
	return a.Brain == nil
}

// NameForActions is the subject used in log messages.
func (a *Avatar) NameForActions() string {
	if a.IsPlayer() {
		return "You"
	}
	return "Zombie " + a.Character.Name
}

func (a *Avatar) wields(tag tilemap.ItemTag) bool {
	for _, item := range a.Wield {
		if item.HasTag(tag) {
			return true
		}
	}
	return false
}

func newPlayer(c human.Character, pos core.TilePos) *Avatar {
	return &Avatar{
		Pos:       pos,
		Character: c,
		Body:      human.NewHumanBody(c, human.Fresh),
		Wear:      []tilemap.Item{tilemap.NewItem(tilemap.Cloak), tilemap.NewItem(tilemap.Hat)},
		Vision:    core.East,
	}
}

func newZombie(c human.Character, body human.Body, pos core.TilePos) *Avatar {
	return &Avatar{
		Pos:       pos,
		Character: c,
		Body:      body,
		Vision:    core.East,
		Brain:     NewZombieBrain(),
	}
}
