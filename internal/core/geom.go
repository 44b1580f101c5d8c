// Package core provides fundamental types and utilities shared by the simulation
// and the terminal front-end. It contains no external dependencies (especially no
// Bubble Tea) to keep world logic pure and testable.
package core

import "fmt"

// ChunkSize is the side length of a chunk in tiles.
const ChunkSize = 32

// Direction is one of the eight compass directions or Here (no offset).
type Direction int

const (
	Here Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Dir8 lists the neighbor directions in the fixed scan order used by effects
// that look for free space around a tile.
var Dir8 = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Dir9 is Dir8 preceded by Here.
var Dir9 = [9]Direction{Here, North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var dirNames = [...]string{"here", "north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

// Offset returns the tile delta for the direction. Y grows southwards.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d < Here || int(d) >= len(dirNames) {
		return "unknown"
	}
	return dirNames[d]
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	if d < Here || int(d) >= len(dirNames) {
		return nil, fmt.Errorf("core: invalid direction %d", int(d))
	}
	return []byte(dirNames[d]), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	for i, name := range dirNames {
		if name == string(text) {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("core: unknown direction %q", string(text))
}

// TilePos is a tile coordinate in the unbounded world grid.
type TilePos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the neighboring position in direction d.
func (p TilePos) Add(d Direction) TilePos {
	dx, dy := d.Offset()
	return TilePos{X: p.X + dx, Y: p.Y + dy}
}

// Chunk returns the chunk containing the tile.
func (p TilePos) Chunk() ChunkPos {
	return ChunkPos{X: FloorDiv(p.X, ChunkSize), Y: FloorDiv(p.Y, ChunkSize)}
}

// ChunkAndIndex splits the position into its chunk and the row-major index of
// the tile inside that chunk.
func (p TilePos) ChunkAndIndex() (ChunkPos, int) {
	lx := Mod(p.X, ChunkSize)
	ly := Mod(p.Y, ChunkSize)
	return p.Chunk(), ly*ChunkSize + lx
}

func (p TilePos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ChunkPos addresses a ChunkSize x ChunkSize block of tiles.
type ChunkPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Origin returns the tile position of the chunk's top-left corner.
func (c ChunkPos) Origin() TilePos {
	return TilePos{X: c.X * ChunkSize, Y: c.Y * ChunkSize}
}

// Tile returns the world position of the tile at the given row-major index.
func (c ChunkPos) Tile(index int) TilePos {
	o := c.Origin()
	return TilePos{X: o.X + index%ChunkSize, Y: o.Y + index/ChunkSize}
}

// FloorDiv divides rounding towards negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// Mod returns the non-negative remainder of a / b. b must be positive.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Rect represents an axis-aligned rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
