// Package core implements the sokoban engine: the two-layer content model,
// cells, immutable boards, the move resolver and the play session.
// It is deterministic and has no terminal or storage dependencies.
package core

// GroundKind enumerates the ground layer variants.
type GroundKind uint8

const (
	GroundBlank GroundKind = iota
	GroundTarget
	GroundIce
)

// Ground is the lower layer of a cell.
type Ground struct {
	Kind  GroundKind
	Color Color // set for GroundTarget only
}

// BlankGround returns plain floor.
func BlankGround() Ground { return Ground{Kind: GroundBlank} }

// Target returns a target of the given color.
func Target(c Color) Ground { return Ground{Kind: GroundTarget, Color: c} }

// Ice returns a frictionless ground.
func Ice() Ground { return Ground{Kind: GroundIce} }

// CanSlide reports whether occupants entering this ground keep moving.
func (g Ground) CanSlide() bool {
	switch g.Kind {
	case GroundIce:
		return true
	case GroundBlank, GroundTarget:
		return false
	default:
		return false
	}
}

// IsSatisfiedTarget reports whether g is a target covered by a trophy of
// its color. Non-target grounds are never satisfied.
func (g Ground) IsSatisfiedTarget(o Occupant) bool {
	switch g.Kind {
	case GroundTarget:
		return o.Kind == OccupantTrophy && o.Color == g.Color
	case GroundBlank, GroundIce:
		return false
	default:
		return false
	}
}

// IsTarget reports whether the ground is a target of any color.
func (g Ground) IsTarget() bool {
	return g.Kind == GroundTarget
}

func (g Ground) String() string {
	switch g.Kind {
	case GroundBlank:
		return "blank"
	case GroundTarget:
		return g.Color.String() + " target"
	case GroundIce:
		return "ice"
	default:
		return "unknown ground"
	}
}

// OccupantKind enumerates the occupant layer variants.
type OccupantKind uint8

const (
	OccupantBlank OccupantKind = iota
	OccupantWall
	OccupantPlayer
	OccupantBox
	OccupantTrophy
	OccupantHole
)

// Occupant is the upper layer of a cell.
type Occupant struct {
	Kind  OccupantKind
	Color Color // set for OccupantTrophy only
}

// Empty returns an absent occupant.
func Empty() Occupant { return Occupant{Kind: OccupantBlank} }

// Wall returns an immovable obstacle.
func Wall() Occupant { return Occupant{Kind: OccupantWall} }

// Player returns the player piece.
func Player() Occupant { return Occupant{Kind: OccupantPlayer} }

// Box returns a colorless pushable piece.
func Box() Occupant { return Occupant{Kind: OccupantBox} }

// Trophy returns a pushable piece that satisfies targets of color c.
func Trophy(c Color) Occupant { return Occupant{Kind: OccupantTrophy, Color: c} }

// Hole returns a hazard that destroys anything entering it.
func Hole() Occupant { return Occupant{Kind: OccupantHole} }

// IsPlayerMovable reports whether the occupant is the player.
func (o Occupant) IsPlayerMovable() bool {
	switch o.Kind {
	case OccupantPlayer:
		return true
	case OccupantBlank, OccupantWall, OccupantBox, OccupantTrophy, OccupantHole:
		return false
	default:
		return false
	}
}

// CanHostOccupant reports whether another occupant may move in.
func (o Occupant) CanHostOccupant() bool {
	switch o.Kind {
	case OccupantBlank:
		return true
	case OccupantWall, OccupantPlayer, OccupantBox, OccupantTrophy, OccupantHole:
		return false
	default:
		return false
	}
}

// IsPushable reports whether the player can push the occupant.
func (o Occupant) IsPushable() bool {
	switch o.Kind {
	case OccupantBox, OccupantTrophy:
		return true
	case OccupantBlank, OccupantWall, OccupantPlayer, OccupantHole:
		return false
	default:
		return false
	}
}

// IsDestructive reports whether entering the occupant destroys the entrant.
func (o Occupant) IsDestructive() bool {
	switch o.Kind {
	case OccupantHole:
		return true
	case OccupantBlank, OccupantWall, OccupantPlayer, OccupantBox, OccupantTrophy:
		return false
	default:
		return false
	}
}

func (o Occupant) String() string {
	switch o.Kind {
	case OccupantBlank:
		return "blank"
	case OccupantWall:
		return "wall"
	case OccupantPlayer:
		return "player"
	case OccupantBox:
		return "box"
	case OccupantTrophy:
		return o.Color.String() + " trophy"
	case OccupantHole:
		return "hole"
	default:
		return "unknown occupant"
	}
}
