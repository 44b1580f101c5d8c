package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game"
	"github.com/vovakirdan/gravedigger/internal/game/tilemap"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorDirt:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorGrass:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorStone:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorPit:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorGrave:   lipgloss.NewStyle().Foreground(lipgloss.Color("187")),
	core.ColorItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorCorpse:  lipgloss.NewStyle().Foreground(lipgloss.Color("131")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorZombie:  lipgloss.NewStyle().Foreground(lipgloss.Color("64")).Bold(true),
	core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// terrainGlyph returns the rune and color of bare terrain.
func terrainGlyph(t tilemap.Terrain) (rune, core.Color) {
	switch t.Kind {
	case tilemap.Dirt:
		if t.Variant%2 == 0 {
			return ',', core.ColorDirt
		}
		return '.', core.ColorDirt
	case tilemap.Grass:
		return '"', core.ColorGrass
	case tilemap.Boulder:
		switch t.Variant {
		case 1:
			return 'o', core.ColorStone
		case 3:
			return '0', core.ColorStone
		default:
			return 'O', core.ColorStone
		}
	case tilemap.Pit:
		return '_', core.ColorPit
	case tilemap.Grave:
		if tilemap.GraveVariant(t.Variant) == tilemap.GraveNew {
			return '+', core.ColorGrave
		}
		return '+', core.ColorDim
	}
	return '?', core.ColorDefault
}

// itemGlyph returns the rune and color of a loose item.
func itemGlyph(i tilemap.Item) (rune, core.Color) {
	switch i.Kind {
	case tilemap.Shovel:
		return '/', core.ColorItem
	case tilemap.Axe:
		return 'P', core.ColorItem
	case tilemap.Knife:
		return '-', core.ColorItem
	case tilemap.Hat:
		return '^', core.ColorItem
	case tilemap.Cloak:
		return '[', core.ColorItem
	case tilemap.Corpse:
		return '%', core.ColorCorpse
	case tilemap.Gravestone:
		return '|', core.ColorGrave
	}
	return '*', core.ColorItem
}

// actorGlyph returns the rune and color of an avatar.
func actorGlyph(a *game.Avatar) (rune, core.Color) {
	if a.IsPlayer() {
		return '@', core.ColorPlayer
	}
	if a.Character.IsChild() {
		return 'z', core.ColorZombie
	}
	return 'Z', core.ColorZombie
}

// tileGlyph picks what is drawn for a tile: the lowest-id occupant, then the
// top item, then the terrain.
func tileGlyph(w *game.World, t *tilemap.Tile) (rune, core.Color) {
	if len(t.Occupants) > 0 {
		if a, ok := w.Actor(t.Occupants[0]); ok {
			return actorGlyph(a)
		}
	}
	if item, ok := t.TopItem(); ok {
		return itemGlyph(item)
	}
	return terrainGlyph(t.Terrain)
}

// DrawWorld draws the map inside view, centered on center. Tiles of chunks
// that are not loaded stay blank.
func DrawWorld(s *core.Screen, w *game.World, view core.Rect, center core.TilePos) {
	originX := center.X - view.W/2
	originY := center.Y - view.H/2
	for sy := 0; sy < view.H; sy++ {
		for sx := 0; sx < view.W; sx++ {
			pos := core.TilePos{X: originX + sx, Y: originY + sy}
			tile, ok := w.GetTile(pos)
			if !ok {
				s.SetColored(view.X+sx, view.Y+sy, ' ', core.ColorDefault)
				continue
			}
			r, c := tileGlyph(w, tile)
			s.SetColored(view.X+sx, view.Y+sy, r, c)
		}
	}
}

// DrawCursor marks the tile in direction d from the center of view.
func DrawCursor(s *core.Screen, view core.Rect, d core.Direction) {
	dx, dy := d.Offset()
	x := view.X + view.W/2 + dx
	y := view.Y + view.H/2 + dy
	if !view.Contains(x, y) {
		return
	}
	cell := s.GetCell(x, y)
	s.SetColored(x, y, cell.Rune, core.ColorCursor)
}

// statusLine describes the world clock and the player.
func statusLine(w *game.World, p *game.Avatar) string {
	var sb strings.Builder
	sb.WriteString(w.Name())
	sb.WriteString("  tick ")
	sb.WriteString(formatTick(w.CurrentTick()))
	sb.WriteString("  ")
	sb.WriteString(p.Pos.String())
	sb.WriteString("  hands: ")
	if len(p.Wield) == 0 {
		sb.WriteString("empty")
	} else {
		names := make([]string, 0, len(p.Wield))
		for _, item := range p.Wield {
			names = append(names, item.Name())
		}
		sb.WriteString(strings.Join(names, ", "))
	}
	if p.Action != nil {
		sb.WriteString("  [")
		sb.WriteString(p.Action.Type.String())
		sb.WriteString(", ")
		sb.WriteString(formatTick(p.Action.Remaining(w.CurrentTick())))
		sb.WriteString(" left]")
	}
	return sb.String()
}

// formatTick prints whole ticks without a fraction.
func formatTick(t float64) string {
	if t == float64(int64(t)) {
		return strconv.FormatInt(int64(t), 10)
	}
	return strconv.FormatFloat(t, 'f', 2, 64)
}
