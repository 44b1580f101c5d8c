package tilemap

import (
	"sort"

	"github.com/vovakirdan/gravedigger/internal/core"
)

// Tile is one cell of the map. The last item is the top of the stack.
// Occupants are kept sorted ascending and free of duplicates.
type Tile struct {
	Terrain   Terrain
	Items     []Item
	Occupants []core.ActorID
}

// TopItem returns the item on top of the stack.
func (t *Tile) TopItem() (Item, bool) {
	if len(t.Items) == 0 {
		return Item{}, false
	}
	return t.Items[len(t.Items)-1], true
}

// PushItem puts an item on top of the stack.
func (t *Tile) PushItem(item Item) {
	t.Items = append(t.Items, item)
}

// PopItem removes and returns the top item.
func (t *Tile) PopItem() (Item, bool) {
	item, ok := t.TopItem()
	if ok {
		t.Items = t.Items[:len(t.Items)-1]
	}
	return item, ok
}

// FirstIndex returns the index of the lowest item of the given kind, or -1.
func (t *Tile) FirstIndex(kind ItemKind) int {
	for i, item := range t.Items {
		if item.Kind == kind {
			return i
		}
	}
	return -1
}

// RemoveItem takes the item at index out of the stack.
func (t *Tile) RemoveItem(index int) (Item, bool) {
	if index < 0 || index >= len(t.Items) {
		return Item{}, false
	}
	item := t.Items[index]
	t.Items = append(t.Items[:index], t.Items[index+1:]...)
	return item, true
}

// AddOccupant records that an actor stands on the tile.
func (t *Tile) AddOccupant(id core.ActorID) {
	i := sort.Search(len(t.Occupants), func(i int) bool { return t.Occupants[i] >= id })
	if i < len(t.Occupants) && t.Occupants[i] == id {
		return
	}
	t.Occupants = append(t.Occupants, 0)
	copy(t.Occupants[i+1:], t.Occupants[i:])
	t.Occupants[i] = id
}

// RemoveOccupant forgets an actor.
func (t *Tile) RemoveOccupant(id core.ActorID) {
	for i, o := range t.Occupants {
		if o == id {
			t.Occupants = append(t.Occupants[:i], t.Occupants[i+1:]...)
			return
		}
	}
}

// OccupiedBy returns the first occupant other than self.
func (t *Tile) OccupiedBy(self core.ActorID) (core.ActorID, bool) {
	for _, o := range t.Occupants {
		if o != self {
			return o, true
		}
	}
	return 0, false
}

// IsReadable reports whether the terrain or any item carries text.
func (t *Tile) IsReadable() bool {
	if t.Terrain.IsReadable() {
		return true
	}
	for _, item := range t.Items {
		if item.IsReadable() {
			return true
		}
	}
	return false
}

// Read returns the terrain text, or else the text of the topmost readable item.
func (t *Tile) Read() string {
	if t.Terrain.IsReadable() {
		return t.Terrain.Read()
	}
	for i := len(t.Items) - 1; i >= 0; i-- {
		if t.Items[i].IsReadable() {
			return t.Items[i].Read()
		}
	}
	return ""
}
