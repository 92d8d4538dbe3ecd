package game

import "fmt"

// Cell is one square of a card's 8x8 ink template.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellNormal
	CellSpecial
)

// GridSize is the fixed extent of every card template.
const GridSize = 8

// Grid is a card's ink template, anchored at its top-left corner.
type Grid [GridSize][GridSize]Cell

// Rotation selects a 90-degree-step card orientation.
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

func (r Rotation) String() string {
	switch r {
	case Rotation0:
		return "ROT_0"
	case Rotation90:
		return "ROT_90"
	case Rotation180:
		return "ROT_180"
	case Rotation270:
		return "ROT_270"
	default:
		return fmt.Sprintf("ROT_%d", int(r))
	}
}

// Valid reports whether r is one of the four orientations.
func (r Rotation) Valid() bool {
	return r >= Rotation0 && r <= Rotation270
}

// RotateCCW rotates the template one 90-degree step counter-clockwise.
// Four applications restore the original grid.
func (g Grid) RotateCCW() Grid {
	var out Grid
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			out[GridSize-1-x][y] = g[y][x]
		}
	}
	return out
}

// Rotated returns the template turned by r counter-clockwise steps.
func (g Grid) Rotated(r Rotation) Grid {
	out := g
	for i := Rotation0; i < r; i++ {
		out = out.RotateCCW()
	}
	return out
}

// CellCount is the number of occupied template squares.
func (g Grid) CellCount() int {
	n := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] != CellEmpty {
				n++
			}
		}
	}
	return n
}

// Rows renders the template as strings, '.' empty, 'x' normal ink,
// 'X' special ink.
func (g Grid) Rows() []string {
	out := make([]string, GridSize)
	for y := range g {
		row := make([]byte, GridSize)
		for x := range g[y] {
			switch g[y][x] {
			case CellNormal:
				row[x] = 'x'
			case CellSpecial:
				row[x] = 'X'
			default:
				row[x] = '.'
			}
		}
		out[y] = string(row)
	}
	return out
}

// Card is an immutable ink pattern. Priority is used only to break
// ties when two simultaneous placements contest the same square;
// SpecialCost is the meter price of an empowered placement.
type Card struct {
	Name        string
	Priority    int
	SpecialCost int
	Grid        Grid
}

// OffsetCell is one occupied template square, relative to the card's
// anchor corner.
type OffsetCell struct {
	DX  int
	DY  int
	Ink Cell
}

// Cells lists the occupied squares of the card's template under
// rotation r.
func (c Card) Cells(r Rotation) []OffsetCell {
	g := c.Grid.Rotated(r)
	out := make([]OffsetCell, 0, GridSize)
	for y := range g {
		for x := range g[y] {
			if g[y][x] != CellEmpty {
				out = append(out, OffsetCell{DX: x, DY: y, Ink: g[y][x]})
			}
		}
	}
	return out
}

// parseGrid builds a template from 8 rows of 8 runes; '.' empty,
// 'x' normal, 'X' special. Panics on malformed input: card templates
// are compile-time data.
func parseGrid(rows [8]string) Grid {
	var g Grid
	for y, row := range rows {
		if len(row) != GridSize {
			panic(fmt.Sprintf("game: card row %d has %d cells", y, len(row)))
		}
		for x := 0; x < GridSize; x++ {
			switch row[x] {
			case '.':
				g[y][x] = CellEmpty
			case 'x':
				g[y][x] = CellNormal
			case 'X':
				g[y][x] = CellSpecial
			default:
				panic(fmt.Sprintf("game: card row %d has unknown cell %q", y, row[x]))
			}
		}
	}
	return g
}
