package game

import "testing"

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, c := range StandardCards() {
		g := c.Grid
		for i := 0; i < 4; i++ {
			g = g.RotateCCW()
		}
		if g != c.Grid {
			t.Fatalf("%s: four rotations did not restore the grid", c.Name)
		}
	}
}

func TestRotateCCWMapping(t *testing.T) {
	g := parseGrid([8]string{
		"xX......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
	r := g.RotateCCW()
	// (0,0) -> (7,0), (1,0) -> (6,0): the top row becomes the left column,
	// read bottom-up.
	if r[7][0] != CellNormal {
		t.Fatalf("cell (0,0) landed wrong: %v", r[7][0])
	}
	if r[6][0] != CellSpecial {
		t.Fatalf("cell (1,0) landed wrong: %v", r[6][0])
	}
	if r.CellCount() != 2 {
		t.Fatalf("rotation changed cell count: %d", r.CellCount())
	}
}

func TestRotatedZeroIsUnchanged(t *testing.T) {
	c := StandardCards()[0]
	if c.Grid.Rotated(Rotation0) != c.Grid {
		t.Fatal("Rotated(Rotation0) altered the grid")
	}
	if c.Grid.Rotated(Rotation180) != c.Grid.RotateCCW().RotateCCW() {
		t.Fatal("Rotated(Rotation180) differs from two manual steps")
	}
}

func TestStandardCatalog(t *testing.T) {
	cards := StandardCards()
	names := map[string]bool{}
	for _, c := range cards {
		if names[c.Name] {
			t.Fatalf("duplicate card name %q", c.Name)
		}
		names[c.Name] = true

		if c.Priority != c.Grid.CellCount() {
			t.Fatalf("%s: priority %d != footprint %d", c.Name, c.Priority, c.Grid.CellCount())
		}
		if c.Priority == 0 {
			t.Fatalf("%s: empty template", c.Name)
		}
		if c.SpecialCost < 1 {
			t.Fatalf("%s: special cost %d", c.Name, c.SpecialCost)
		}

		specials := 0
		for _, oc := range c.Cells(Rotation0) {
			if oc.Ink == CellSpecial {
				specials++
			}
		}
		if specials != 1 {
			t.Fatalf("%s: %d special cells, want exactly 1", c.Name, specials)
		}
	}
}

func TestCardCellsMatchGrid(t *testing.T) {
	c := StandardCards()[2] // Splotch: 2x2 block
	cells := c.Cells(Rotation0)
	if len(cells) != 4 {
		t.Fatalf("cells: got %d, want 4", len(cells))
	}
	for _, oc := range cells {
		if oc.DX < 0 || oc.DX > 1 || oc.DY < 0 || oc.DY > 1 {
			t.Fatalf("offset (%d,%d) outside the 2x2 block", oc.DX, oc.DY)
		}
	}
}
