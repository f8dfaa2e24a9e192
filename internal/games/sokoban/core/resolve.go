package core

// EventKind names what happened during one resolver step.
type EventKind uint8

const (
	EventMove       EventKind = iota // player stepped onto plain ground
	EventSlide                       // player slid across ice
	EventPush                        // player pushed a piece
	EventPieceLost                   // a pushed piece fell into a hole
	EventPlayerLost                  // the player fell into a hole
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventSlide:
		return "slide"
	case EventPush:
		return "push"
	case EventPieceLost:
		return "piece lost"
	case EventPlayerLost:
		return "player lost"
	default:
		return "unknown"
	}
}

// Event records one effect of a move. At is where the affected piece
// ended up, or where it was destroyed.
type Event struct {
	Kind  EventKind
	Piece Occupant
	At    Pos
}

// MoveResult is the outcome of resolving one directional move.
type MoveResult struct {
	// Board is the resulting board. It is the input board itself when
	// nothing changed.
	Board *Board

	// Changed is false for blocked moves.
	Changed bool

	// Events lists the effects in the order they happened.
	Events []Event
}

// Lost reports whether the move destroyed the player or a piece.
func (r MoveResult) Lost() (player, pieces bool) {
	for _, e := range r.Events {
		switch e.Kind {
		case EventPlayerLost:
			player = true
		case EventPieceLost:
			pieces = true
		}
	}
	return player, pieces
}

// Resolve returns the board after the player tries to move one cell in dir,
// including every chained slide and push.
func Resolve(b *Board, dir Direction) *Board {
	return ResolveMove(b, dir).Board
}

// ResolveMove is Resolve with the event trail.
//
// Each step looks at the player cell C0 and the next two cells C1 and C2 in
// the direction of travel. If either of those lies off the grid, the step
// does nothing. Otherwise the first matching rule applies:
//
//  1. C1 is empty ice: the player moves onto it and keeps going.
//  2. C1 is ice carrying a piece and C2 is free: the piece goes to C2, the
//     player to C1, and the player keeps going.
//  3. C1 holds a piece and C2 is empty ice: the piece slides along the ice
//     run starting at C2 (see pushAcrossIce). The player moves onto C1.
//  4. C1 is free: the player moves onto it.
//  5. C1 holds a piece and C2 is free: the piece goes to C2, the player to C1.
//  6. C1 is a hole: the player is destroyed and the hole is used up.
//  7. C1 holds a piece and C2 is a hole: the piece and the hole are both
//     used up and the player moves onto C1.
//  8. Anything else blocks.
//
// Rules 1, 2 and the chained case of 3 continue from the new player cell;
// the others end the move. The loop is bounded by the number of cells.
func ResolveMove(b *Board, dir Direction) MoveResult {
	res := MoveResult{Board: b}
	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return res
	}
	pos, ok := b.Player()
	if !ok {
		return res
	}

	m := &mover{
		board: b,
		grid:  b.cloneGrid(),
		pos:   pos,
		alive: true,
		dir:   dir,
	}
	for i := 0; i < b.rows*b.cols; i++ {
		if !m.step() {
			break
		}
	}
	if !m.changed {
		return res
	}

	res.Changed = true
	res.Events = m.events
	res.Board = &Board{
		rows:      b.rows,
		cols:      b.cols,
		grid:      m.grid,
		player:    m.pos,
		hasPlayer: m.alive,
	}
	return res
}

// mover carries the working copy of the grid through one resolution.
type mover struct {
	board   *Board
	grid    [][]Cell
	pos     Pos
	alive   bool
	dir     Direction
	changed bool
	events  []Event
}

func (m *mover) at(p Pos) Cell {
	return m.grid[p.Row][p.Col]
}

func (m *mover) put(c Cell) {
	m.grid[c.Pos.Row][c.Pos.Col] = c
	m.changed = true
}

func (m *mover) emit(kind EventKind, piece Occupant, at Pos) {
	m.events = append(m.events, Event{Kind: kind, Piece: piece, At: at})
}

// advance moves the player from C0 onto c1.
func (m *mover) advance(c0, c1 Cell) {
	m.put(c0.ClearOccupant())
	m.put(c1.Receive(c0))
	m.pos = c1.Pos
}

// push moves the piece on c1 onto dst, then the player onto c1.
func (m *mover) push(c0, c1, dst Cell) {
	m.put(dst.Receive(c1))
	m.advance(c0, c1)
	m.emit(EventPush, c1.Occupant, dst.Pos)
}

// step applies one rule and reports whether resolution continues.
func (m *mover) step() bool {
	p1, p2 := m.pos.Step(m.dir, 1), m.pos.Step(m.dir, 2)
	if !m.board.InBounds(p1) || !m.board.InBounds(p2) {
		return false
	}
	c0, c1, c2 := m.at(m.pos), m.at(p1), m.at(p2)

	switch {
	case c1.Ground.CanSlide() && c1.CanAcceptEntry():
		m.advance(c0, c1)
		m.emit(EventSlide, c0.Occupant, c1.Pos)
		return true

	case c1.IsSlideSurfaceWithPushableOnTop() && c2.CanAcceptEntry():
		m.push(c0, c1, c2)
		return true

	case c1.Occupant.IsPushable() && c2.Ground.CanSlide() && c2.CanAcceptEntry():
		return m.pushAcrossIce(c0, c1)

	case c1.CanAcceptEntry():
		m.advance(c0, c1)
		m.emit(EventMove, c0.Occupant, c1.Pos)
		return false

	case c1.Occupant.IsPushable() && c2.CanAcceptEntry():
		m.push(c0, c1, c2)
		return false

	case c1.CausesLoss():
		m.put(c0.ClearOccupant())
		m.put(c1.ClearOccupant())
		m.alive = false
		m.emit(EventPlayerLost, c0.Occupant, c1.Pos)
		return false

	case c1.Occupant.IsPushable() && c2.CausesLoss():
		m.put(c2.ClearOccupant())
		m.advance(c0, c1)
		m.emit(EventPieceLost, c1.Occupant, c2.Pos)
		return false

	default:
		return false
	}
}

// pushAcrossIce handles a piece on c1 pushed onto the empty ice at C2.
//
// The run is the maximal stretch of empty ice starting at C2; landing is
// the first cell past it. The piece then:
//
//   - stops on landing when landing is free,
//   - advances only to C2 when landing is ice carrying another piece, and
//     resolution continues from the player's new cell,
//   - is destroyed together with the hole when landing is a hole (landing
//     becomes fully blank),
//   - otherwise stops on the last ice cell of the run.
//
// The player always moves onto c1.
func (m *mover) pushAcrossIce(c0, c1 Cell) bool {
	landing := c1.Pos.Step(m.dir, 1)
	for m.board.InBounds(landing) {
		cell := m.at(landing)
		if !cell.Ground.CanSlide() || !cell.CanAcceptEntry() {
			break
		}
		landing = landing.Step(m.dir, 1)
	}
	last := landing.Step(m.dir, -1)
	piece := c1.Occupant

	m.advance(c0, c1)

	if !m.board.InBounds(landing) {
		m.put(m.at(last).Receive(c1))
		m.emit(EventPush, piece, last)
		return false
	}

	dst := m.at(landing)
	switch {
	case dst.IsSlideSurfaceWithPushableOnTop():
		c2 := c1.Pos.Step(m.dir, 1)
		m.put(m.at(c2).Receive(c1))
		m.emit(EventPush, piece, c2)
		return true
	case dst.CanAcceptEntry():
		m.put(dst.Receive(c1))
		m.emit(EventPush, piece, landing)
	case dst.CausesLoss():
		m.put(dst.ClearAll())
		m.emit(EventPieceLost, piece, landing)
	default:
		m.put(m.at(last).Receive(c1))
		m.emit(EventPush, piece, last)
	}
	return false
}
