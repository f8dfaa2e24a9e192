package core

import (
	"errors"
	"fmt"
)

// Construction errors returned by NewBoard and ParseLayers.
var (
	ErrEmptyBoard      = errors.New("board has no cells")
	ErrRaggedRows      = errors.New("board rows differ in length")
	ErrLayerMismatch   = errors.New("ground and content layers differ in shape")
	ErrMultiplePlayers = errors.New("board has more than one player")
	ErrMisplacedCell   = errors.New("cell position does not match its grid slot")
)

// GlyphError reports a character that maps to no ground or occupant.
type GlyphError struct {
	Layer string // "ground" or "content"
	Row   int
	Col   int
	Glyph rune
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("unknown %s glyph %q at row %d, col %d", e.Layer, e.Glyph, e.Row, e.Col)
}
