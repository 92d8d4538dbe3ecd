package game

import "fmt"

// DefaultTurns is the standard match length.
const DefaultTurns = 12

// Winner is the outcome of a finished match.
type Winner int

const (
	WinnerDraw Winner = iota
	WinnerPlayerOne
	WinnerPlayerTwo
)

func (w Winner) String() string {
	switch w {
	case WinnerDraw:
		return "DRAW"
	case WinnerPlayerOne:
		return "PLAYER_ONE"
	case WinnerPlayerTwo:
		return "PLAYER_TWO"
	default:
		return fmt.Sprintf("WINNER_%d", int(w))
	}
}

// GameState owns everything one match mutates turn by turn: the
// board, both players and the remaining-turn counter. It is replaced
// wholesale on rematch, never reset in place.
type GameState struct {
	board     *Board
	players   [2]*Player
	turnsLeft int
	rng       Rng
}

// NewGameState deals both starting hands and sets the turn counter.
func NewGameState(board *Board, deckOne, deckTwo *Deck, turns int, rng Rng) (*GameState, error) {
	p1, err := NewPlayer(deckOne, rng)
	if err != nil {
		return nil, fmt.Errorf("player one: %w", err)
	}
	p2, err := NewPlayer(deckTwo, rng)
	if err != nil {
		return nil, fmt.Errorf("player two: %w", err)
	}
	return &GameState{
		board:     board,
		players:   [2]*Player{p1, p2},
		turnsLeft: turns,
		rng:       rng,
	}, nil
}

func (g *GameState) Board() *Board { return g.board }

// Player returns the side identified by id.
func (g *GameState) Player(id PlayerID) *Player {
	if id != PlayerOne && id != PlayerTwo {
		panic(fmt.Sprintf("game: unknown player id %d", int(id)))
	}
	return g.players[id]
}

// TurnsLeft reports the remaining turn count.
func (g *GameState) TurnsLeft() int { return g.turnsLeft }

// Rng exposes the match's randomness source for hand redraws.
func (g *GameState) Rng() Rng { return g.rng }

// Update resolves one full turn from both players' validated moves.
// It is the engine's single mutating entry point and must only be
// called once both inputs for the turn are buffered.
func (g *GameState) Update(moveOne, moveTwo Move) {
	switch {
	case moveOne.IsPass() && moveTwo.IsPass():
		g.players[PlayerOne].GainSpecial(1)
		g.players[PlayerTwo].GainSpecial(1)

	case moveOne.IsPass():
		g.players[PlayerOne].GainSpecial(1)
		g.applySingle(PlayerTwo, moveTwo.placement)

	case moveTwo.IsPass():
		g.players[PlayerTwo].GainSpecial(1)
		g.applySingle(PlayerOne, moveOne.placement)

	default:
		g.applyBoth(moveOne.placement, moveTwo.placement)
	}

	g.activateSurroundedSpecials()

	if g.turnsLeft > 0 {
		g.turnsLeft--
	}
}

// applySingle commits one side's placement with no opponent overlap
// to arbitrate.
func (g *GameState) applySingle(owner PlayerID, pl Placement) {
	if pl.special {
		g.players[owner].SpendSpecial(pl.cost)
	}
	writes := make([]PositionedSpace, 0, len(pl.cells))
	for _, c := range pl.cells {
		writes = append(writes, PositionedSpace{Pos: c.Pos, Space: spaceFor(owner, c.Ink)})
	}
	g.board.SetSpaces(writes)
	g.players[owner].ReplaceSlot(pl.slot, g.rng)
}

// applyBoth commits two simultaneous placements, arbitrating every
// contested square by the played cards' priorities.
func (g *GameState) applyBoth(plOne, plTwo Placement) {
	if plOne.special {
		g.players[PlayerOne].SpendSpecial(plOne.cost)
	}
	if plTwo.special {
		g.players[PlayerTwo].SpendSpecial(plTwo.cost)
	}

	cellsTwo := make(map[Position]Cell, len(plTwo.cells))
	for _, c := range plTwo.cells {
		cellsTwo[c.Pos] = c.Ink
	}

	writes := make([]PositionedSpace, 0, len(plOne.cells)+len(plTwo.cells))
	for _, c := range plOne.cells {
		inkTwo, contested := cellsTwo[c.Pos]
		if !contested {
			writes = append(writes, PositionedSpace{Pos: c.Pos, Space: spaceFor(PlayerOne, c.Ink)})
			continue
		}
		delete(cellsTwo, c.Pos)
		writes = append(writes, PositionedSpace{
			Pos:   c.Pos,
			Space: g.resolveContested(c.Ink, inkTwo, plOne.priority, plTwo.priority),
		})
	}
	for _, c := range plTwo.cells {
		if _, still := cellsTwo[c.Pos]; still {
			writes = append(writes, PositionedSpace{Pos: c.Pos, Space: spaceFor(PlayerTwo, c.Ink)})
		}
	}

	g.board.SetSpaces(writes)
	g.players[PlayerOne].ReplaceSlot(plOne.slot, g.rng)
	g.players[PlayerTwo].ReplaceSlot(plTwo.slot, g.rng)
}

// resolveContested decides the final space of a square both
// placements target. A special-ink template cell beats a normal one
// outright; matched ink types fall back to card priority, where the
// smaller pattern wins. A priority tie turns the square into a
// neutral wall and feeds both special meters.
func (g *GameState) resolveContested(inkOne, inkTwo Cell, prioOne, prioTwo int) Space {
	if inkOne == CellSpecial && inkTwo == CellNormal {
		return Space{Kind: SpaceSpecial, Owner: PlayerOne}
	}
	if inkOne == CellNormal && inkTwo == CellSpecial {
		return Space{Kind: SpaceSpecial, Owner: PlayerTwo}
	}

	if prioOne == prioTwo {
		g.players[PlayerOne].GainSpecial(1)
		g.players[PlayerTwo].GainSpecial(1)
		return Space{Kind: SpaceWall}
	}
	winner := PlayerOne
	if prioTwo < prioOne {
		winner = PlayerTwo
	}
	return spaceFor(winner, inkOne)
}

func spaceFor(owner PlayerID, ink Cell) Space {
	if ink == CellSpecial {
		return Space{Kind: SpaceSpecial, Owner: owner}
	}
	return Space{Kind: SpaceInk, Owner: owner}
}

// activateSurroundedSpecials flips every inactive special square that
// is now fully hemmed in and credits its owner's meter.
func (g *GameState) activateSurroundedSpecials() {
	var flips []PositionedSpace
	counts := [2]int{}
	g.board.EachSpace(func(p Position, s Space) {
		if s.Kind == SpaceSpecial && !s.Activated && g.board.IsSurrounded(p) {
			s.Activated = true
			flips = append(flips, PositionedSpace{Pos: p, Space: s})
			counts[s.Owner]++
		}
	})
	g.board.SetSpaces(flips)
	g.players[PlayerOne].GainSpecial(counts[PlayerOne])
	g.players[PlayerTwo].GainSpecial(counts[PlayerTwo])
}

// CheckWinner compares total painted squares. Strictly more ink wins;
// equal counts are a draw.
func (g *GameState) CheckWinner() Winner {
	one := g.board.CountInked(PlayerOne)
	two := g.board.CountInked(PlayerTwo)
	switch {
	case one > two:
		return WinnerPlayerOne
	case two > one:
		return WinnerPlayerTwo
	default:
		return WinnerDraw
	}
}
