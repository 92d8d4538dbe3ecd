package game

import "fmt"

// Player owns one side's hand, deck and special meter.
type Player struct {
	hand    Hand
	deck    *Deck
	special int
}

// NewPlayer deals a starting hand from deck.
func NewPlayer(deck *Deck, rng Rng) (*Player, error) {
	hand, err := deck.DealHand(rng)
	if err != nil {
		return nil, fmt.Errorf("dealing starting hand: %w", err)
	}
	return &Player{hand: hand, deck: deck}, nil
}

// Hand returns the current four deck references.
func (p *Player) Hand() Hand { return p.hand }

// CardInSlot resolves the card held in hand slot s (0..3).
func (p *Player) CardInSlot(s int) Card {
	return p.deck.Card(p.hand[s])
}

// Special returns the current special-meter value.
func (p *Player) Special() int { return p.special }

// GainSpecial adds n to the special meter.
func (p *Player) GainSpecial(n int) { p.special += n }

// SpendSpecial deducts cost from the meter. Affordability is checked
// during move validation; underflow here means a caller bug.
func (p *Player) SpendSpecial(cost int) {
	if cost > p.special {
		panic(fmt.Sprintf("game: special meter underflow, have %d need %d", p.special, cost))
	}
	p.special -= cost
}

// ReplaceSlot refills a played hand slot with a fresh draw. An
// exhausted deck leaves the slot as is; that only happens on the
// final turn of a match.
func (p *Player) ReplaceSlot(s int, rng Rng) {
	if i, ok := p.deck.DrawCard(rng); ok {
		p.hand[s] = i
	}
}

// RedrawHand returns the current hand to the deck and deals four
// distinct cards again. The same cards may come back.
func (p *Player) RedrawHand(rng Rng) error {
	for _, i := range p.hand {
		p.deck.Return(i)
	}
	hand, err := p.deck.DealHand(rng)
	if err != nil {
		return fmt.Errorf("redrawing hand: %w", err)
	}
	p.hand = hand
	return nil
}
