package core

import "fmt"

// Outcome classifies a board for the caller.
type Outcome uint8

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Board is an immutable rectangular grid of cells plus the player position.
// Every transition produces a new Board; a Board is safe to share.
type Board struct {
	rows, cols int
	grid       [][]Cell
	player     Pos
	hasPlayer  bool
}

// NewBoard validates grid and builds a board from a copy of it.
// The grid must be non-empty and rectangular, every cell's Pos must match
// its slot, and at most one cell may hold the player.
func NewBoard(grid [][]Cell) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	b := &Board{
		rows: len(grid),
		cols: len(grid[0]),
		grid: make([][]Cell, len(grid)),
	}
	for r, row := range grid {
		if len(row) != b.cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), b.cols, ErrRaggedRows)
		}
		b.grid[r] = make([]Cell, b.cols)
		for c, cell := range row {
			if cell.Pos != P(r, c) {
				return nil, fmt.Errorf("cell %s in slot %s: %w", cell.Pos, P(r, c), ErrMisplacedCell)
			}
			if cell.Occupant.IsPlayerMovable() {
				if b.hasPlayer {
					return nil, fmt.Errorf("players at %s and %s: %w", b.player, cell.Pos, ErrMultiplePlayers)
				}
				b.player = cell.Pos
				b.hasPlayer = true
			}
			b.grid[r][c] = cell
		}
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether p lies on the grid.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Cell returns the cell at p. ok is false outside the grid.
func (b *Board) Cell(p Pos) (cell Cell, ok bool) {
	if !b.InBounds(p) {
		return Cell{}, false
	}
	return b.grid[p.Row][p.Col], true
}

// Player returns the player position. ok is false once the player is gone.
func (b *Board) Player() (pos Pos, ok bool) {
	return b.player, b.hasPlayer
}

// Each calls fn for every cell in row-major order.
func (b *Board) Each(fn func(Cell)) {
	for _, row := range b.grid {
		for _, cell := range row {
			fn(cell)
		}
	}
}

// IsWon reports whether every target is covered by a trophy of its color.
// A board without targets is won.
func (b *Board) IsWon() bool {
	for _, row := range b.grid {
		for _, cell := range row {
			if cell.Ground.IsTarget() && !cell.IsSatisfied() {
				return false
			}
		}
	}
	return true
}

// ShouldEnd reports whether play is over: the player is gone or the board is won.
func (b *Board) ShouldEnd() bool {
	return !b.hasPlayer || b.IsWon()
}

// Outcome classifies the board. A lost player takes precedence over a won
// board.
func (b *Board) Outcome() Outcome {
	switch {
	case !b.hasPlayer:
		return OutcomeLost
	case b.IsWon():
		return OutcomeWon
	default:
		return OutcomePlaying
	}
}

// Targets returns the number of target cells.
func (b *Board) Targets() int {
	n := 0
	b.Each(func(c Cell) {
		if c.Ground.IsTarget() {
			n++
		}
	})
	return n
}

// Satisfied returns the number of targets covered by a matching trophy.
func (b *Board) Satisfied() int {
	n := 0
	b.Each(func(c Cell) {
		if c.IsSatisfied() {
			n++
		}
	})
	return n
}

// Count returns the number of cells whose occupant has kind k.
func (b *Board) Count(k OccupantKind) int {
	n := 0
	b.Each(func(c Cell) {
		if c.Occupant.Kind == k {
			n++
		}
	})
	return n
}

// Equal reports whether two boards hold the same cells and player position.
func (b *Board) Equal(other *Board) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	if b.rows != other.rows || b.cols != other.cols || b.hasPlayer != other.hasPlayer || b.player != other.player {
		return false
	}
	for r := range b.grid {
		for c := range b.grid[r] {
			if b.grid[r][c] != other.grid[r][c] {
				return false
			}
		}
	}
	return true
}

// cloneGrid returns a deep copy of the cell grid.
func (b *Board) cloneGrid() [][]Cell {
	grid := make([][]Cell, b.rows)
	for r := range b.grid {
		grid[r] = make([]Cell, b.cols)
		copy(grid[r], b.grid[r])
	}
	return grid
}
