package game

import (
	"errors"
	"fmt"
)

// DeckSize is the fixed number of cards in every deck.
const DeckSize = 15

// HandSize is the fixed number of cards held at once.
const HandSize = 4

// Deck holds the 15 fixed cards of a match side plus a parallel
// availability flag per card. Availability is toggled only by the
// deal, draw and return operations.
type Deck struct {
	cards     [DeckSize]Card
	available [DeckSize]bool
}

// NewDeck builds a deck with every card available.
func NewDeck(cards [DeckSize]Card) *Deck {
	d := &Deck{cards: cards}
	for i := range d.available {
		d.available[i] = true
	}
	return d
}

// Card returns the card stored at deck index i.
func (d *Deck) Card(i int) Card {
	return d.cards[i]
}

// AvailableCount reports how many cards remain drawable.
func (d *Deck) AvailableCount() int {
	n := 0
	for _, ok := range d.available {
		if ok {
			n++
		}
	}
	return n
}

func (d *Deck) availableIndices() []int {
	out := make([]int, 0, DeckSize)
	for i, ok := range d.available {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

var ErrDeckTooThin = errors.New("deck has fewer than four available cards")

// DealHand atomically draws four distinct cards chosen by rng and
// marks them unavailable.
func (d *Deck) DealHand(rng Rng) (Hand, error) {
	avail := d.availableIndices()
	if len(avail) < HandSize {
		return Hand{}, ErrDeckTooThin
	}
	picks := rng.DrawFour(len(avail))
	var refs [HandSize]int
	for i, p := range picks {
		refs[i] = avail[p]
	}
	hand, err := NewHand(refs)
	if err != nil {
		return Hand{}, err
	}
	for _, i := range refs {
		d.available[i] = false
	}
	return hand, nil
}

// DrawCard draws one card uniformly among the available ones and
// marks it unavailable. An exhausted deck yields no card; that is the
// expected end-of-match condition, not an error.
func (d *Deck) DrawCard(rng Rng) (int, bool) {
	avail := d.availableIndices()
	if len(avail) == 0 {
		return 0, false
	}
	i := avail[rng.DrawOne(len(avail))]
	d.available[i] = false
	return i, true
}

// Return marks a previously drawn card available again. Used only by
// the pre-match hand redraw.
func (d *Deck) Return(i int) {
	d.available[i] = true
}

var ErrDuplicateHandCard = errors.New("hand holds duplicate card references")

// Hand is four pairwise-distinct deck indices.
type Hand [HandSize]int

// NewHand validates the distinctness invariant.
func NewHand(refs [HandSize]int) (Hand, error) {
	for i := 0; i < HandSize; i++ {
		if refs[i] < 0 || refs[i] >= DeckSize {
			return Hand{}, fmt.Errorf("hand reference %d outside deck", refs[i])
		}
		for j := i + 1; j < HandSize; j++ {
			if refs[i] == refs[j] {
				return Hand{}, ErrDuplicateHandCard
			}
		}
	}
	return Hand(refs), nil
}
