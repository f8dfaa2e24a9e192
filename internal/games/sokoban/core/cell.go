package core

import "fmt"

// Cell is one grid square: a fixed position plus a ground and an occupant.
// Cells are values; the replacement methods return new cells and leave the
// receiver untouched.
type Cell struct {
	Pos      Pos
	Ground   Ground
	Occupant Occupant
}

// NewCell builds a cell at pos.
func NewCell(pos Pos, g Ground, o Occupant) Cell {
	return Cell{Pos: pos, Ground: g, Occupant: o}
}

// CanAcceptEntry reports whether something can move into the cell.
func (c Cell) CanAcceptEntry() bool {
	return c.Occupant.CanHostOccupant()
}

// IsSlideSurfaceWithPushableOnTop reports whether the cell is ice carrying
// a box or trophy.
func (c Cell) IsSlideSurfaceWithPushableOnTop() bool {
	return c.Ground.CanSlide() && c.Occupant.IsPushable()
}

// CausesLoss reports whether entering the cell destroys the entrant.
func (c Cell) CausesLoss() bool {
	return c.Occupant.IsDestructive()
}

// IsSatisfied reports whether the cell is a target covered by its trophy.
func (c Cell) IsSatisfied() bool {
	return c.Ground.IsSatisfiedTarget(c.Occupant)
}

// ClearOccupant returns the cell with its occupant removed.
func (c Cell) ClearOccupant() Cell {
	c.Occupant = Empty()
	return c
}

// ClearAll returns the cell with both layers reset to blank.
func (c Cell) ClearAll() Cell {
	c.Ground = BlankGround()
	c.Occupant = Empty()
	return c
}

// Receive returns the cell holding src's occupant. Ice under the arriving
// piece is used up and becomes blank ground.
func (c Cell) Receive(src Cell) Cell {
	c.Occupant = src.Occupant
	if c.Ground.CanSlide() {
		c.Ground = BlankGround()
	}
	return c
}

func (c Cell) String() string {
	return fmt.Sprintf("%s %s on %s", c.Pos, c.Occupant, c.Ground)
}
