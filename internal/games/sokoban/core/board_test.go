package core

import (
	"errors"
	"testing"
)

func TestParseLayersErrors(t *testing.T) {
	tests := []struct {
		name    string
		ground  string
		content string
		wantErr error
	}{
		{"empty", "", "", ErrEmptyBoard},
		{"row count mismatch", lines("___", "___"), "_>_", ErrLayerMismatch},
		{"row length mismatch", lines("___", "___"), lines("_>_", "__"), ErrLayerMismatch},
		{"ragged rows", lines("___", "__"), lines("_>_", "__"), ErrRaggedRows},
		{"two players", "____", "><__", ErrMultiplePlayers},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayers(tc.ground, tc.content)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParseLayers() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseLayersUnknownGlyph(t *testing.T) {
	_, err := ParseLayers(lines("___", "_X_"), lines("_>_", "___"))

	var gerr *GlyphError
	if !errors.As(err, &gerr) {
		t.Fatalf("ParseLayers() error = %v, want *GlyphError", err)
	}
	if gerr.Layer != "ground" || gerr.Row != 1 || gerr.Col != 1 || gerr.Glyph != 'X' {
		t.Errorf("GlyphError = %+v, want ground 'X' at (1,1)", gerr)
	}
}

func TestParseLayersCells(t *testing.T) {
	b := mustBoard(t,
		lines("_IRG", "BY__"),
		lines("W>Bh", "rgby"),
	)

	if b.Rows() != 2 || b.Cols() != 4 {
		t.Fatalf("size = %dx%d, want 2x4", b.Rows(), b.Cols())
	}

	tests := []struct {
		pos  Pos
		want Cell
	}{
		{P(0, 0), NewCell(P(0, 0), BlankGround(), Wall())},
		{P(0, 1), NewCell(P(0, 1), Ice(), Player())},
		{P(0, 2), NewCell(P(0, 2), Target(ColorRed), Box())},
		{P(0, 3), NewCell(P(0, 3), Target(ColorGreen), Hole())},
		{P(1, 0), NewCell(P(1, 0), Target(ColorBlue), Trophy(ColorRed))},
		{P(1, 1), NewCell(P(1, 1), Target(ColorYellow), Trophy(ColorGreen))},
		{P(1, 3), NewCell(P(1, 3), BlankGround(), Trophy(ColorYellow))},
	}
	for _, tc := range tests {
		got, ok := b.Cell(tc.pos)
		if !ok || got != tc.want {
			t.Errorf("Cell(%s) = %v, %v, want %v", tc.pos, got, ok, tc.want)
		}
	}

	if p, ok := b.Player(); !ok || p != P(0, 1) {
		t.Errorf("Player() = %s, %v, want (0,1), true", p, ok)
	}
	if _, ok := b.Cell(P(2, 0)); ok {
		t.Error("Cell() outside the grid should report false")
	}
}

func TestLayersRoundTrip(t *testing.T) {
	ground := lines("__RI", "_IY_")
	content := lines("W>B_", "h_yW")
	b := mustBoard(t, ground, content)

	g, c := b.Layers()
	if g != ground || c != content {
		t.Errorf("Layers() = %q, %q, want %q, %q", g, c, ground, content)
	}
}

func TestParseLayersPlayerFacing(t *testing.T) {
	for _, glyph := range []string{">", "<", "^", "v"} {
		b := mustBoard(t, "___", "_"+glyph+"_")
		if p, ok := b.Player(); !ok || p != P(0, 1) {
			t.Errorf("player glyph %s: Player() = %s, %v", glyph, p, ok)
		}
	}
}

func TestNewBoardValidation(t *testing.T) {
	if _, err := NewBoard(nil); !errors.Is(err, ErrEmptyBoard) {
		t.Errorf("NewBoard(nil) error = %v, want ErrEmptyBoard", err)
	}

	grid := [][]Cell{{NewCell(P(0, 1), BlankGround(), Empty())}}
	if _, err := NewBoard(grid); !errors.Is(err, ErrMisplacedCell) {
		t.Errorf("NewBoard() error = %v, want ErrMisplacedCell", err)
	}

	// Board keeps its own copy of the grid.
	grid = [][]Cell{{NewCell(P(0, 0), BlankGround(), Player())}}
	b, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("NewBoard() error: %v", err)
	}
	grid[0][0] = NewCell(P(0, 0), BlankGround(), Wall())
	if c, _ := b.Cell(P(0, 0)); c.Occupant != Player() {
		t.Error("NewBoard() shares storage with the caller's grid")
	}
}

func TestIsWon(t *testing.T) {
	tests := []struct {
		name    string
		ground  string
		content string
		want    bool
	}{
		{"matching trophy placed", "_R_", "_r>", true},
		{"wrong color", "_R_", "_g>", false},
		{"box on target", "_R_", "_B>", false},
		{"empty target", "_R_", "__>", false},
		{"one of two satisfied", "RB_", "rg>", false},
		{"all satisfied", "RB_", "rb>", true},
		{"extra trophies", "R__", "rg>", true},
		{"no targets", "___", "_B>", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.ground, tc.content)
			if got := b.IsWon(); got != tc.want {
				t.Errorf("IsWon() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestShouldEndAndOutcome(t *testing.T) {
	tests := []struct {
		name    string
		ground  string
		content string
		end     bool
		outcome Outcome
	}{
		{"playing", "R__", "__>", false, OutcomePlaying},
		{"won", "R__", "r_>", true, OutcomeWon},
		{"no player", "R__", "r__", true, OutcomeLost},
		{"no player, unsolved", "R__", "___", true, OutcomeLost},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.ground, tc.content)
			if got := b.ShouldEnd(); got != tc.end {
				t.Errorf("ShouldEnd() = %v, want %v", got, tc.end)
			}
			if got := b.Outcome(); got != tc.outcome {
				t.Errorf("Outcome() = %v, want %v", got, tc.outcome)
			}
		})
	}
}

// A single target already holding its trophy wins with zero moves.
func TestWonBeforeAnyMove(t *testing.T) {
	b := mustBoard(t,
		lines("_____", "__R__", "_____"),
		lines("WWWWW", "W>r_W", "WWWWW"),
	)
	s := NewSession(b)
	if !s.Current().IsWon() || s.Score() != 0 {
		t.Errorf("IsWon() = %v, Score() = %d, want true, 0", s.Current().IsWon(), s.Score())
	}
}

func TestBoardCounts(t *testing.T) {
	b := mustBoard(t, lines("RG_", "B__"), lines("rBB", "_>y"))

	if got := b.Targets(); got != 3 {
		t.Errorf("Targets() = %d, want 3", got)
	}
	if got := b.Satisfied(); got != 1 {
		t.Errorf("Satisfied() = %d, want 1", got)
	}
	if got := b.Count(OccupantBox); got != 2 {
		t.Errorf("Count(box) = %d, want 2", got)
	}
	if got := pieces(b); got != 4 {
		t.Errorf("pieces = %d, want 4", got)
	}
}

func TestBoardEqual(t *testing.T) {
	a := mustBoard(t, "_I_", "_>B")
	b := mustBoard(t, "_I_", "_>B")
	c := mustBoard(t, "___", "_>B")

	if !a.Equal(b) {
		t.Error("boards parsed from the same text should be equal")
	}
	if a.Equal(c) {
		t.Error("boards with different ground should differ")
	}
	if a.Equal(nil) {
		t.Error("board should not equal nil")
	}
}
