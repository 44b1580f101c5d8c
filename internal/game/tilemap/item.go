package tilemap

import (
	"fmt"

	"github.com/vovakirdan/gravedigger/internal/human"
)

// ItemKind is the closed set of item types.
type ItemKind uint8

const (
	Shovel ItemKind = iota
	Axe
	Knife
	Hat
	Cloak
	Corpse
	Gravestone
)

var itemNames = [...]string{"shovel", "axe", "knife", "hat", "cloak", "corpse", "gravestone"}

func (k ItemKind) String() string {
	if int(k) >= len(itemNames) {
		return "unknown"
	}
	return itemNames[k]
}

// MarshalText encodes the kind by name.
func (k ItemKind) MarshalText() ([]byte, error) {
	if int(k) >= len(itemNames) {
		return nil, fmt.Errorf("tilemap: invalid item kind %d", k)
	}
	return []byte(itemNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *ItemKind) UnmarshalText(text []byte) error {
	for i, name := range itemNames {
		if name == string(text) {
			*k = ItemKind(i)
			return nil
		}
	}
	return fmt.Errorf("tilemap: unknown item kind %q", string(text))
}

// ItemTag marks what an item is good for.
type ItemTag uint8

const (
	TagDig ItemTag = iota
	TagButch
)

// CorpseData is the person a corpse used to be.
type CorpseData struct {
	Character human.Character `json:"character"`
	Body      human.Body      `json:"body"`
}

// Item is anything that can lie on a tile or be held. Corpse and Grave carry
// the payload of Corpse and Gravestone items respectively.
type Item struct {
	Kind   ItemKind    `json:"kind"`
	Corpse *CorpseData `json:"corpse,omitempty"`
	Grave  *GraveData  `json:"grave,omitempty"`
}

// NewItem creates a payload-free item such as a shovel.
func NewItem(kind ItemKind) Item {
	return Item{Kind: kind}
}

// NewCorpse creates the corpse of a character.
func NewCorpse(c human.Character, body human.Body) Item {
	return Item{Kind: Corpse, Corpse: &CorpseData{Character: c, Body: body}}
}

// NewGravestone creates a gravestone for the given grave.
func NewGravestone(data GraveData) Item {
	return Item{Kind: Gravestone, Grave: &data}
}

// Name is the lowercase name used in messages.
func (i Item) Name() string {
	if i.Kind == Corpse && i.Corpse != nil {
		return "corpse of " + i.Corpse.Character.Name
	}
	return i.Kind.String()
}

// Tags returns what the item can be used for.
func (i Item) Tags() []ItemTag {
	switch i.Kind {
	case Shovel:
		return []ItemTag{TagDig}
	case Axe, Knife:
		return []ItemTag{TagButch}
	default:
		return nil
	}
}

// HasTag reports whether the item carries tag.
func (i Item) HasTag(tag ItemTag) bool {
	for _, t := range i.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}

// Mass is the item mass in grams.
func (i Item) Mass() int {
	switch i.Kind {
	case Shovel:
		return 2000
	case Axe:
		return 3000
	case Knife:
		return 300
	case Hat:
		return 100
	case Cloak:
		return 1000
	case Corpse:
		if i.Corpse == nil {
			return 0
		}
		return i.Corpse.Body.Mass()
	case Gravestone:
		return 200000
	default:
		return 0
	}
}

// WieldTime is how many ticks the owner needs to pick the item up.
func (i Item) WieldTime(owner human.Character) float64 {
	var base float64
	switch i.Kind {
	case Shovel, Axe:
		base = 10
	case Knife, Hat:
		base = 5
	case Cloak:
		base = 7
	case Corpse:
		base = float64(i.Mass()) / 100
	case Gravestone:
		base = 50
	}
	return base * ownerFactor(owner)
}

// DropTime is how many ticks the owner needs to put the item down.
func (i Item) DropTime(owner human.Character) float64 {
	var base float64
	switch i.Kind {
	case Shovel, Axe:
		base = 10
	case Knife, Hat:
		base = 5
	case Cloak:
		base = 7
	case Corpse:
		base = float64(i.Mass()) / 200
	case Gravestone:
		base = 30
	}
	return base * ownerFactor(owner)
}

func ownerFactor(owner human.Character) float64 {
	if owner.IsChild() {
		return 1.5
	}
	return 1
}

// IsReadable reports whether the item carries text.
func (i Item) IsReadable() bool {
	return i.Kind == Gravestone && i.Grave != nil
}

// Read returns the item text, or "" when there is none.
func (i Item) Read() string {
	if !i.IsReadable() {
		return ""
	}
	return i.Grave.Text()
}
