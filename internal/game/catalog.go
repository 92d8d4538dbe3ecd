package game

// The standard catalog: the 15 cards every deck is built from. A
// card's priority is its footprint size; smaller patterns win
// contested squares when two placements collide.

func newCard(name string, specialCost int, rows [8]string) Card {
	g := parseGrid(rows)
	return Card{Name: name, Priority: g.CellCount(), SpecialCost: specialCost, Grid: g}
}

var standardCards = [DeckSize]Card{
	newCard("Dribble", 1, [8]string{
		"X.......",
		"x.......",
		"x.......",
		"........",
		"........",
		"........",
		"........",
		"........",
	}),
	newCard("Inklet", 1, [8]string{
		"xX......",
		".x......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}),
	newCard("Splotch", 2, [8]string{
		"xx......",
		"xX......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}),
	newCard("Comma", 2, [8]string{
		".x......",
		"xX......",
		"x.......",
		"x.......",
		"........",
		"........",
		"........",
		"........",
	}),
	newCard("Elbow", 2, [8]string{
		"x.......",
		"x.......",
		"xXx.....",
		"........",
		"........",
		"........",
		"........",
		"........",
	}),
	newCard("Slash", 2, [8]string{
		"..x.....",
		".Xx.....",
		"xx......",
		"x.......",
		"........",
		"........",
		"........",
		"........",
	}),
	newCard("Ladder", 3, [8]string{
		"xx......",
		".X......",
		".xx.....",
		"..x.....",
		"..xx....",
		"........",
		"........",
		"........",
	}),
	newCard("Crab", 3, [8]string{
		"x.x.....",
		"xXx.....",
		"x.x.....",
		"........",
		"........",
		"........",
		"........",
		"........",
	}),
	newCard("Pylon", 3, [8]string{
		".x......",
		"xXx.....",
		".x......",
		".x......",
		".x......",
		"........",
		"........",
		"........",
	}),
	newCard("Riptide", 3, [8]string{
		"xx......",
		".xx.....",
		"..Xx....",
		"...xx...",
		"....x...",
		"........",
		"........",
		"........",
	}),
	newCard("Anchor", 4, [8]string{
		"..x.....",
		"..x.....",
		"xxXxx...",
		"x...x...",
		"x...x...",
		"........",
		"........",
		"........",
	}),
	newCard("Lantern", 4, [8]string{
		".xxx....",
		"xx.xx...",
		"x.X.x...",
		"xx.xx...",
		".x.x....",
		"........",
		"........",
		"........",
	}),
	newCard("Breaker", 4, [8]string{
		"x.......",
		"xx......",
		"xxx.....",
		"xxXx....",
		"xxx.....",
		"........",
		"........",
		"........",
	}),
	newCard("Tempest", 5, [8]string{
		"..xx....",
		".xxxx...",
		"xxXxxx..",
		".xxxx...",
		"..xx....",
		"........",
		"........",
		"........",
	}),
	newCard("Leviathan", 6, [8]string{
		"xxxxxx..",
		"x....x..",
		"x.Xx.x..",
		"x..x.x..",
		"xxxxxx..",
		"........",
		"........",
		"........",
	}),
}

// StandardCards returns the fixed 15-card catalog.
func StandardCards() [DeckSize]Card {
	return standardCards
}

// NewStandardDeck builds a fresh, fully available deck over the
// standard catalog.
func NewStandardDeck() *Deck {
	return NewDeck(standardCards)
}
