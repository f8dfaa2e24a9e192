package core

import (
	"fmt"
	"strings"
)

// Level text uses one character per cell in two layers of equal shape.
//
// Ground:  _ blank, I ice, R G B Y targets.
// Content: _ blank, W wall, B box, h hole, r g b y trophies,
//          > < ^ v player (facing is not kept).

// GroundFromGlyph decodes a ground layer character.
func GroundFromGlyph(ch rune) (Ground, bool) {
	switch ch {
	case '_':
		return BlankGround(), true
	case 'I':
		return Ice(), true
	case 'R':
		return Target(ColorRed), true
	case 'G':
		return Target(ColorGreen), true
	case 'B':
		return Target(ColorBlue), true
	case 'Y':
		return Target(ColorYellow), true
	default:
		return Ground{}, false
	}
}

// OccupantFromGlyph decodes a content layer character.
func OccupantFromGlyph(ch rune) (Occupant, bool) {
	switch ch {
	case '_':
		return Empty(), true
	case 'W':
		return Wall(), true
	case 'B':
		return Box(), true
	case 'h':
		return Hole(), true
	case 'r':
		return Trophy(ColorRed), true
	case 'g':
		return Trophy(ColorGreen), true
	case 'b':
		return Trophy(ColorBlue), true
	case 'y':
		return Trophy(ColorYellow), true
	case '>', '<', '^', 'v':
		return Player(), true
	default:
		return Occupant{}, false
	}
}

// Glyph encodes the ground as its level text character.
func (g Ground) Glyph() rune {
	switch g.Kind {
	case GroundIce:
		return 'I'
	case GroundTarget:
		switch g.Color {
		case ColorRed:
			return 'R'
		case ColorGreen:
			return 'G'
		case ColorBlue:
			return 'B'
		case ColorYellow:
			return 'Y'
		}
	}
	return '_'
}

// Glyph encodes the occupant as its level text character.
func (o Occupant) Glyph() rune {
	switch o.Kind {
	case OccupantWall:
		return 'W'
	case OccupantPlayer:
		return '>'
	case OccupantBox:
		return 'B'
	case OccupantHole:
		return 'h'
	case OccupantTrophy:
		switch o.Color {
		case ColorRed:
			return 'r'
		case ColorGreen:
			return 'g'
		case ColorBlue:
			return 'b'
		case ColorYellow:
			return 'y'
		}
	}
	return '_'
}

// ParseLayers builds a board from the two text layers of a level.
// Each layer is a newline separated block; trailing whitespace and a final
// newline are ignored.
func ParseLayers(ground, content string) (*Board, error) {
	gRows := splitLayer(ground)
	cRows := splitLayer(content)
	if len(gRows) == 0 || len(cRows) == 0 {
		return nil, ErrEmptyBoard
	}
	if len(gRows) != len(cRows) {
		return nil, fmt.Errorf("ground has %d rows, content has %d: %w", len(gRows), len(cRows), ErrLayerMismatch)
	}

	grid := make([][]Cell, len(gRows))
	for r := range gRows {
		gr, cr := []rune(gRows[r]), []rune(cRows[r])
		if len(gr) != len(cr) {
			return nil, fmt.Errorf("row %d: ground has %d cells, content has %d: %w", r, len(gr), len(cr), ErrLayerMismatch)
		}
		grid[r] = make([]Cell, len(gr))
		for c := range gr {
			g, ok := GroundFromGlyph(gr[c])
			if !ok {
				return nil, &GlyphError{Layer: "ground", Row: r, Col: c, Glyph: gr[c]}
			}
			o, ok := OccupantFromGlyph(cr[c])
			if !ok {
				return nil, &GlyphError{Layer: "content", Row: r, Col: c, Glyph: cr[c]}
			}
			grid[r][c] = NewCell(P(r, c), g, o)
		}
	}
	return NewBoard(grid)
}

// MustParseLayers is like ParseLayers but panics on error.
// It is meant for boards written in source code.
func MustParseLayers(ground, content string) *Board {
	b, err := ParseLayers(ground, content)
	if err != nil {
		panic(err)
	}
	return b
}

// Layers encodes the board back into its ground and content text.
func (b *Board) Layers() (ground, content string) {
	var gs, cs strings.Builder
	for r, row := range b.grid {
		if r > 0 {
			gs.WriteByte('\n')
			cs.WriteByte('\n')
		}
		for _, cell := range row {
			gs.WriteRune(cell.Ground.Glyph())
			cs.WriteRune(cell.Occupant.Glyph())
		}
	}
	return gs.String(), cs.String()
}

// String renders both layers side by side, one board row per line.
func (b *Board) String() string {
	ground, content := b.Layers()
	gl := strings.Split(ground, "\n")
	cl := strings.Split(content, "\n")
	var sb strings.Builder
	for i := range gl {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(gl[i])
		sb.WriteString("  ")
		sb.WriteString(cl[i])
	}
	return sb.String()
}

func splitLayer(s string) []string {
	s = strings.TrimRight(s, " \t\r\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return lines
}
