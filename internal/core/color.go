package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the world renderer.
const (
	ColorDefault Color = iota
	ColorDirt          // brown soil
	ColorGrass         // green
	ColorStone         // boulders
	ColorPit           // dark hole
	ColorGrave         // pale mound
	ColorItem          // loose items
	ColorCorpse        // remains
	ColorPlayer        // the player avatar
	ColorZombie        // undead actors
	ColorCursor        // direction prompts
	ColorMessage       // log lines
	ColorDim           // HUD separators, hints
)
