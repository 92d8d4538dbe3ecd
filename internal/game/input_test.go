package game

import (
	"errors"
	"reflect"
	"testing"
)

// testSetup deals the first four catalog cards (Dribble in slot 0, a
// 3-cell vertical bar) to a player on an 8x8 board.
func testSetup(t *testing.T) (*Board, *Player) {
	t.Helper()
	b, err := NewBoard(emptyRows(8, 8))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	p, err := NewPlayer(NewStandardDeck(), firstRng{})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return b, p
}

func TestValidatePassAlwaysSucceeds(t *testing.T) {
	b, p := testSetup(t)
	m, err := ValidateMove(b, p, PlayerOne, RawMove{Pass: true, Slot: 99, Rotation: Rotation(7)})
	if err != nil {
		t.Fatalf("pass rejected: %v", err)
	}
	if !m.IsPass() {
		t.Fatal("pass did not validate to a pass move")
	}
}

func TestValidateRejectsBadSelectors(t *testing.T) {
	b, p := testSetup(t)
	if _, err := ValidateMove(b, p, PlayerOne, RawMove{Slot: 4}); !errors.Is(err, ErrSlotRange) {
		t.Fatalf("slot 4: got %v", err)
	}
	if _, err := ValidateMove(b, p, PlayerOne, RawMove{Slot: -1}); !errors.Is(err, ErrSlotRange) {
		t.Fatalf("slot -1: got %v", err)
	}
	if _, err := ValidateMove(b, p, PlayerOne, RawMove{Slot: 0, Rotation: Rotation(4)}); !errors.Is(err, ErrRotationRange) {
		t.Fatalf("rotation 4: got %v", err)
	}
}

func TestValidateOutOfBounds(t *testing.T) {
	b, p := testSetup(t)
	// The bar hanging off the bottom edge, a negative anchor, and
	// anchors nowhere near the grid.
	cases := []Position{
		{X: 7, Y: 6},
		{X: -1, Y: 2},
		{X: 0, Y: 100},
		{X: -50, Y: -50},
	}
	for _, anchor := range cases {
		_, err := ValidateMove(b, p, PlayerOne, RawMove{Slot: 0, Anchor: anchor})
		if !errors.Is(err, ErrPlacementOutOfBoard) {
			t.Fatalf("anchor %v: got %v, want %v", anchor, err, ErrPlacementOutOfBoard)
		}
	}
}

func TestValidateInkPlacement(t *testing.T) {
	b, p := testSetup(t)
	b.SetSpaces([]PositionedSpace{
		{Pos: Position{X: 3, Y: 3}, Space: Space{Kind: SpaceInk, Owner: PlayerOne}},
	})

	// Adjacent and collision-free: valid.
	m, err := ValidateMove(b, p, PlayerOne, RawMove{Slot: 0, Anchor: Position{X: 4, Y: 2}})
	if err != nil {
		t.Fatalf("legal placement rejected: %v", err)
	}
	if m.IsPass() {
		t.Fatal("placement validated to a pass")
	}
	if got := len(m.placement.cells); got != 3 {
		t.Fatalf("placement cells: got %d, want 3", got)
	}

	// Covering the existing ink: collision.
	if _, err := ValidateMove(b, p, PlayerOne, RawMove{Slot: 0, Anchor: Position{X: 3, Y: 2}}); !errors.Is(err, ErrInkCollision) {
		t.Fatalf("collision: got %v", err)
	}

	// Far corner: no adjacency.
	if _, err := ValidateMove(b, p, PlayerOne, RawMove{Slot: 0, Anchor: Position{X: 0, Y: 5}}); !errors.Is(err, ErrInkNotAdjacent) {
		t.Fatalf("no adjacency: got %v", err)
	}

	// Adjacency to the opponent's ink does not help.
	if _, err := ValidateMove(b, p, PlayerTwo, RawMove{Slot: 0, Anchor: Position{X: 4, Y: 2}}); !errors.Is(err, ErrInkNotAdjacent) {
		t.Fatalf("opponent adjacency: got %v", err)
	}
}

func TestValidateSpecialPlacement(t *testing.T) {
	b, p := testSetup(t)
	b.SetSpaces([]PositionedSpace{
		{Pos: Position{X: 3, Y: 3}, Space: Space{Kind: SpaceSpecial, Owner: PlayerOne}},
		{Pos: Position{X: 4, Y: 3}, Space: Space{Kind: SpaceInk, Owner: PlayerTwo}},
	})
	raw := RawMove{Slot: 0, Anchor: Position{X: 4, Y: 2}, Special: true}

	// Meter empty: unaffordable.
	if _, err := ValidateMove(b, p, PlayerOne, raw); !errors.Is(err, ErrInsufficientSpecial) {
		t.Fatalf("unaffordable: got %v", err)
	}

	p.GainSpecial(5)

	// Special placements may cover enemy ink.
	if _, err := ValidateMove(b, p, PlayerOne, raw); err != nil {
		t.Fatalf("legal special placement rejected: %v", err)
	}

	// But never walls or special squares.
	b.SetSpaces([]PositionedSpace{
		{Pos: Position{X: 4, Y: 4}, Space: Space{Kind: SpaceWall}},
	})
	if _, err := ValidateMove(b, p, PlayerOne, raw); !errors.Is(err, ErrSpecialCollision) {
		t.Fatalf("wall under special: got %v", err)
	}
	b.SetSpaces([]PositionedSpace{
		{Pos: Position{X: 4, Y: 4}, Space: Space{Kind: SpaceEmpty}},
	})

	// Covering a special square, even one's own, is a collision too.
	onSpecial := RawMove{Slot: 0, Anchor: Position{X: 3, Y: 1}, Special: true}
	if _, err := ValidateMove(b, p, PlayerOne, onSpecial); !errors.Is(err, ErrSpecialCollision) {
		t.Fatalf("special under special: got %v", err)
	}

	// No owned special square in reach.
	far := RawMove{Slot: 0, Anchor: Position{X: 0, Y: 5}, Special: true}
	if _, err := ValidateMove(b, p, PlayerOne, far); !errors.Is(err, ErrSpecialNotAdjacent) {
		t.Fatalf("no special adjacency: got %v", err)
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	b, p := testSetup(t)
	b.SetSpaces([]PositionedSpace{
		{Pos: Position{X: 3, Y: 3}, Space: Space{Kind: SpaceInk, Owner: PlayerOne}},
	})
	p.GainSpecial(3)

	boardBefore := b.Rows()
	handBefore := p.Hand()
	specialBefore := p.Special()

	for _, raw := range []RawMove{
		{Pass: true},
		{Slot: 0, Anchor: Position{X: 4, Y: 2}},
		{Slot: 0, Anchor: Position{X: 4, Y: 2}, Special: true},
		{Slot: 0, Anchor: Position{X: -9, Y: 0}},
	} {
		_, _ = ValidateMove(b, p, PlayerOne, raw)
	}

	if !reflect.DeepEqual(boardBefore, b.Rows()) {
		t.Fatal("validation mutated the board")
	}
	if handBefore != p.Hand() || specialBefore != p.Special() {
		t.Fatal("validation mutated the player")
	}
}
