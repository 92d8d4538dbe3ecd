package game

import (
	"errors"
	"fmt"
	"math"
)

// PlayerID identifies one of the two sides of a match.
type PlayerID int

const (
	PlayerOne PlayerID = iota
	PlayerTwo
)

func (p PlayerID) String() string {
	switch p {
	case PlayerOne:
		return "PLAYER_ONE"
	case PlayerTwo:
		return "PLAYER_TWO"
	default:
		return fmt.Sprintf("PLAYER_%d", int(p))
	}
}

// Opponent returns the other side.
func (p PlayerID) Opponent() PlayerID {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// SpaceKind enumerates the states a board square can be in.
type SpaceKind int

const (
	SpaceEmpty SpaceKind = iota
	SpaceInk
	SpaceSpecial
	SpaceWall
	SpaceOutOfBounds
)

func (k SpaceKind) String() string {
	switch k {
	case SpaceEmpty:
		return "EMPTY"
	case SpaceInk:
		return "INK"
	case SpaceSpecial:
		return "SPECIAL"
	case SpaceWall:
		return "WALL"
	case SpaceOutOfBounds:
		return "OUT_OF_BOUNDS"
	default:
		return fmt.Sprintf("SPACE_%d", int(k))
	}
}

// Space is one board square. Owner is meaningful for ink and special
// squares; Activated only for special squares. OutOfBounds spaces are
// synthesized by lookups and never stored in a board.
type Space struct {
	Kind      SpaceKind
	Owner     PlayerID
	Activated bool
}

// Code renders a space as a compact wire token.
func (s Space) Code() string {
	switch s.Kind {
	case SpaceEmpty:
		return "."
	case SpaceWall:
		return "#"
	case SpaceInk:
		if s.Owner == PlayerOne {
			return "i1"
		}
		return "i2"
	case SpaceSpecial:
		tag := "s1"
		if s.Owner == PlayerTwo {
			tag = "s2"
		}
		if s.Activated {
			tag += "*"
		}
		return tag
	default:
		return "?"
	}
}

// IsEmpty reports whether the square holds nothing yet.
func (s Space) IsEmpty() bool { return s.Kind == SpaceEmpty }

// InkedBy reports whether the square carries player p's ink, either
// kind, either activation state.
func (s Space) InkedBy(p PlayerID) bool {
	return (s.Kind == SpaceInk || s.Kind == SpaceSpecial) && s.Owner == p
}

// Position is a signed board coordinate. X grows rightward, Y downward.
type Position struct {
	X int
	Y int
}

// MaxBoardDim is the largest allowed board extent along either axis.
const MaxBoardDim = 26

var (
	ErrEmptyBoard   = errors.New("board has no rows or an empty row")
	ErrRaggedBoard  = errors.New("board rows have inconsistent lengths")
	ErrBoardTooBig  = errors.New("board exceeds the maximum dimensions")
	ErrBoardTooTiny = errors.New("board too small for a standard arena")
)

// Board is a fixed-size rectangular grid of spaces. The shape is
// validated once at construction and never changes afterwards.
type Board struct {
	spaces [][]Space
	width  int
	height int
}

// NewBoard builds a board from a row-major matrix of spaces.
func NewBoard(spaces [][]Space) (*Board, error) {
	if len(spaces) == 0 || len(spaces[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	if len(spaces) > MaxBoardDim || len(spaces[0]) > MaxBoardDim {
		return nil, ErrBoardTooBig
	}
	width := len(spaces[0])
	rows := make([][]Space, len(spaces))
	for y, row := range spaces {
		if len(row) != width {
			return nil, ErrRaggedBoard
		}
		rows[y] = make([]Space, width)
		copy(rows[y], row)
	}
	return &Board{spaces: rows, width: width, height: len(rows)}, nil
}

// NewStandardBoard builds an empty arena with one inactive special
// start square per player on the vertical centerline, a few rows in
// from each player's edge. Player one starts at the bottom.
func NewStandardBoard(width, height int) (*Board, error) {
	if width < 3 || height < 8 {
		return nil, ErrBoardTooTiny
	}
	rows := make([][]Space, height)
	for y := range rows {
		rows[y] = make([]Space, width)
	}
	b, err := NewBoard(rows)
	if err != nil {
		return nil, err
	}
	cx := (width - 1) / 2
	inset := height / 6
	if inset < 1 {
		inset = 1
	}
	b.spaces[height-1-inset][cx] = Space{Kind: SpaceSpecial, Owner: PlayerOne}
	b.spaces[inset][cx] = Space{Kind: SpaceSpecial, Owner: PlayerTwo}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// SpaceAt looks up a square by signed coordinates. Anything outside
// the grid resolves to an OutOfBounds space rather than an error.
func (b *Board) SpaceAt(p Position) Space {
	if p.X < 0 || p.Y < 0 || p.X >= b.width || p.Y >= b.height {
		return Space{Kind: SpaceOutOfBounds}
	}
	return b.spaces[p.Y][p.X]
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the 8 surrounding spaces of p, with off-board
// neighbors reported as OutOfBounds.
func (b *Board) Neighbors(p Position) [8]Space {
	var out [8]Space
	for i, d := range neighborOffsets {
		out[i] = b.SpaceAt(Position{X: p.X + d[0], Y: p.Y + d[1]})
	}
	return out
}

// IsSurrounded reports whether every one of p's 8 neighbors is
// non-empty. Walls and out-of-bounds spaces count as surrounding.
func (b *Board) IsSurrounded(p Position) bool {
	for _, n := range b.Neighbors(p) {
		if n.IsEmpty() {
			return false
		}
	}
	return true
}

// AdjacentToInk reports whether any neighbor of p carries owner's ink,
// counting both plain ink and special squares.
func (b *Board) AdjacentToInk(p Position, owner PlayerID) bool {
	for _, n := range b.Neighbors(p) {
		if n.InkedBy(owner) {
			return true
		}
	}
	return false
}

// AdjacentToSpecial reports whether any neighbor of p is one of
// owner's special squares, activated or not.
func (b *Board) AdjacentToSpecial(p Position, owner PlayerID) bool {
	for _, n := range b.Neighbors(p) {
		if n.Kind == SpaceSpecial && n.Owner == owner {
			return true
		}
	}
	return false
}

// PositionedSpace pairs a board position with the space to write there.
type PositionedSpace struct {
	Pos   Position
	Space Space
}

// SetSpaces applies a batch of overwrites. Positions must be in
// bounds; callers validate before mutating.
func (b *Board) SetSpaces(writes []PositionedSpace) {
	for _, w := range writes {
		if w.Pos.X < 0 || w.Pos.Y < 0 || w.Pos.X >= b.width || w.Pos.Y >= b.height {
			panic(fmt.Sprintf("game: SetSpaces out of bounds at (%d,%d)", w.Pos.X, w.Pos.Y))
		}
		b.spaces[w.Pos.Y][w.Pos.X] = w.Space
	}
}

// CountInked sums the squares painted by owner, plain ink and special
// squares alike.
func (b *Board) CountInked(owner PlayerID) int {
	total := 0
	for _, row := range b.spaces {
		for _, s := range row {
			if s.InkedBy(owner) {
				total++
			}
		}
	}
	return total
}

// Rows renders the grid as wire tokens, row-major.
func (b *Board) Rows() [][]string {
	out := make([][]string, b.height)
	for y, row := range b.spaces {
		out[y] = make([]string, b.width)
		for x, s := range row {
			out[y][x] = s.Code()
		}
	}
	return out
}

// EachSpace visits every square with its position.
func (b *Board) EachSpace(fn func(Position, Space)) {
	for y, row := range b.spaces {
		for x, s := range row {
			fn(Position{X: x, Y: y}, s)
		}
	}
}

var ErrPositionOverflow = errors.New("position arithmetic overflow")

// AbsolutePosition combines a card-relative offset with a board anchor
// using overflow-checked signed arithmetic. The result may still be
// off-board; bounds are the caller's concern.
func AbsolutePosition(anchor Position, dx, dy int) (Position, error) {
	x, err := checkedAdd(anchor.X, dx)
	if err != nil {
		return Position{}, err
	}
	y, err := checkedAdd(anchor.Y, dy)
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y}, nil
}

func checkedAdd(a, b int) (int, error) {
	if b > 0 && a > math.MaxInt-b {
		return 0, ErrPositionOverflow
	}
	if b < 0 && a < math.MinInt-b {
		return 0, ErrPositionOverflow
	}
	return a + b, nil
}
