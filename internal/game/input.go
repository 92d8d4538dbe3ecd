package game

import (
	"errors"
	"fmt"
)

// Player-facing rejection reasons. Every one of these is an expected,
// recoverable answer to untrusted input, never a bug.
var (
	ErrSlotRange           = errors.New("hand slot outside 0..3")
	ErrRotationRange       = errors.New("rotation outside the four orientations")
	ErrPlacementOutOfBoard = errors.New("placement cell off the board")
	ErrInsufficientSpecial = errors.New("special meter below the card's cost")
	ErrSpecialCollision    = errors.New("special placement over a wall or special square")
	ErrSpecialNotAdjacent  = errors.New("special placement not adjacent to an owned special square")
	ErrInkCollision        = errors.New("placement over a non-empty square")
	ErrInkNotAdjacent      = errors.New("placement not adjacent to owned ink")
)

// RawMove is the untrusted shape of one player's turn choice, as it
// arrives off the wire. Pass ignores the placement fields.
type RawMove struct {
	Slot     int
	Pass     bool
	Anchor   Position
	Rotation Rotation
	Special  bool
}

// PlacedCell is one validated target square of a placement.
type PlacedCell struct {
	Pos Position
	Ink Cell
}

// Placement is a fully validated board write-set. It is built only by
// ValidateMove; the engine trusts its contents.
type Placement struct {
	cells    []PlacedCell
	special  bool
	cost     int
	slot     int
	priority int
}

// Cells exposes the validated target squares.
func (p Placement) Cells() []PlacedCell { return p.cells }

// Move is one player's validated choice for a turn: either a pass or
// a placement.
type Move struct {
	pass      bool
	placement Placement
}

// PassMove is the validated form of a pass.
func PassMove() Move { return Move{pass: true} }

// IsPass reports whether the move places nothing.
func (m Move) IsPass() bool { return m.pass }

// ValidateMove converts untrusted input into a validated Move. It is
// a pure check over borrowed state: neither the board nor the player
// is touched. A pass validates unconditionally.
func ValidateMove(b *Board, p *Player, owner PlayerID, raw RawMove) (Move, error) {
	if raw.Pass {
		return PassMove(), nil
	}
	if raw.Slot < 0 || raw.Slot >= HandSize {
		return Move{}, ErrSlotRange
	}
	if !raw.Rotation.Valid() {
		return Move{}, ErrRotationRange
	}

	card := p.CardInSlot(raw.Slot)

	cells := make([]PlacedCell, 0, GridSize)
	for _, oc := range card.Cells(raw.Rotation) {
		pos, err := AbsolutePosition(raw.Anchor, oc.DX, oc.DY)
		if err != nil {
			return Move{}, fmt.Errorf("%w: %v", ErrPlacementOutOfBoard, err)
		}
		if b.SpaceAt(pos).Kind == SpaceOutOfBounds {
			return Move{}, ErrPlacementOutOfBoard
		}
		cells = append(cells, PlacedCell{Pos: pos, Ink: oc.Ink})
	}

	if raw.Special {
		if err := validateSpecialPlacement(b, p, owner, card, cells); err != nil {
			return Move{}, err
		}
	} else {
		if err := validateInkPlacement(b, owner, cells); err != nil {
			return Move{}, err
		}
	}

	return Move{placement: Placement{
		cells:    cells,
		special:  raw.Special,
		cost:     card.SpecialCost,
		slot:     raw.Slot,
		priority: card.Priority,
	}}, nil
}

func validateSpecialPlacement(b *Board, p *Player, owner PlayerID, card Card, cells []PlacedCell) error {
	if p.Special() < card.SpecialCost {
		return ErrInsufficientSpecial
	}
	for _, c := range cells {
		switch b.SpaceAt(c.Pos).Kind {
		case SpaceWall, SpaceSpecial, SpaceOutOfBounds:
			return ErrSpecialCollision
		}
	}
	for _, c := range cells {
		if b.AdjacentToSpecial(c.Pos, owner) {
			return nil
		}
	}
	return ErrSpecialNotAdjacent
}

func validateInkPlacement(b *Board, owner PlayerID, cells []PlacedCell) error {
	for _, c := range cells {
		if !b.SpaceAt(c.Pos).IsEmpty() {
			return ErrInkCollision
		}
	}
	for _, c := range cells {
		if b.AdjacentToInk(c.Pos, owner) {
			return nil
		}
	}
	return ErrInkNotAdjacent
}
