package core

import (
	"encoding/json"
	"testing"
)

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b    int
		div, md int
	}{
		{0, 32, 0, 0},
		{31, 32, 0, 31},
		{32, 32, 1, 0},
		{-1, 32, -1, 31},
		{-32, 32, -1, 0},
		{-33, 32, -2, 31},
	}

	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.div {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.div)
		}
		if got := Mod(tt.a, tt.b); got != tt.md {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.md)
		}
	}
}

func TestChunkAndIndex(t *testing.T) {
	tests := []struct {
		name  string
		pos   TilePos
		chunk ChunkPos
		index int
	}{
		{"origin", TilePos{0, 0}, ChunkPos{0, 0}, 0},
		{"inside first chunk", TilePos{5, 2}, ChunkPos{0, 0}, 2*ChunkSize + 5},
		{"negative x", TilePos{-1, 0}, ChunkPos{-1, 0}, ChunkSize - 1},
		{"negative both", TilePos{-33, -1}, ChunkPos{-2, -1}, (ChunkSize-1)*ChunkSize + 31},
		{"far east", TilePos{64, 33}, ChunkPos{2, 1}, ChunkSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk, index := tt.pos.ChunkAndIndex()
			if chunk != tt.chunk || index != tt.index {
				t.Errorf("ChunkAndIndex(%v) = %v, %d; expected %v, %d", tt.pos, chunk, index, tt.chunk, tt.index)
			}
			if back := chunk.Tile(index); back != tt.pos {
				t.Errorf("ChunkPos.Tile(%d) = %v, expected %v", index, back, tt.pos)
			}
		})
	}
}

func TestDirectionOffsets(t *testing.T) {
	p := TilePos{X: 3, Y: 3}
	seen := make(map[TilePos]bool)
	for _, d := range Dir8 {
		n := p.Add(d)
		if n == p {
			t.Errorf("%v should move away from the origin", d)
		}
		if seen[n] {
			t.Errorf("%v maps to an already visited neighbor %v", d, n)
		}
		seen[n] = true
	}
	if p.Add(Here) != p {
		t.Error("Here should not move")
	}
	if p.Add(East) != (TilePos{X: 4, Y: 3}) {
		t.Errorf("East of %v is %v", p, p.Add(East))
	}
	if p.Add(North) != (TilePos{X: 3, Y: 2}) {
		t.Errorf("North of %v is %v", p, p.Add(North))
	}
}

func TestDirectionJSON(t *testing.T) {
	data, err := json.Marshal(SouthWest)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"southwest"` {
		t.Errorf("Marshal(SouthWest) = %s", data)
	}

	var d Direction
	if err := json.Unmarshal([]byte(`"east"`), &d); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if d != East {
		t.Errorf("expected East, got %v", d)
	}
	if err := json.Unmarshal([]byte(`"up"`), &d); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestHash2Stable(t *testing.T) {
	if Hash2(1, 2, 3) != Hash2(1, 2, 3) {
		t.Error("Hash2 must be deterministic")
	}
	if Hash2(1, 2, 3) == Hash2(2, 2, 3) {
		t.Error("different seeds should produce different hashes")
	}
	if Hash2(1, 2, 3) == Hash2(1, 3, 2) {
		t.Error("axes should be decorrelated")
	}
	if HashString("graveyard") != HashString("graveyard") {
		t.Error("HashString must be deterministic")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)
	if !r.Contains(10, 10) || !r.Contains(14, 14) {
		t.Error("corners inside the rect should be contained")
	}
	if r.Contains(15, 10) || r.Contains(10, 15) || r.Contains(9, 10) {
		t.Error("points outside the rect should not be contained")
	}
	if r.Right() != 15 || r.Bottom() != 15 {
		t.Errorf("edges = %d, %d", r.Right(), r.Bottom())
	}
}
