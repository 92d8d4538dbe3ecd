package game

import (
	"errors"
	"testing"
)

func TestDealHandMarksUnavailable(t *testing.T) {
	d := NewStandardDeck()
	hand, err := d.DealHand(firstRng{})
	if err != nil {
		t.Fatalf("DealHand: %v", err)
	}
	if hand != (Hand{0, 1, 2, 3}) {
		t.Fatalf("hand: got %v, want first four", hand)
	}
	if got := d.AvailableCount(); got != DeckSize-HandSize {
		t.Fatalf("available after deal: got %d, want %d", got, DeckSize-HandSize)
	}

	// The next deal must skip the dealt cards.
	hand2, err := d.DealHand(firstRng{})
	if err != nil {
		t.Fatalf("second DealHand: %v", err)
	}
	if hand2 != (Hand{4, 5, 6, 7}) {
		t.Fatalf("second hand: got %v", hand2)
	}
}

func TestDealHandExhausted(t *testing.T) {
	d := NewStandardDeck()
	for i := 0; i < 12; i++ {
		if _, ok := d.DrawCard(firstRng{}); !ok {
			t.Fatalf("draw %d failed with cards remaining", i)
		}
	}
	if _, err := d.DealHand(firstRng{}); !errors.Is(err, ErrDeckTooThin) {
		t.Fatalf("thin deal: got %v, want %v", err, ErrDeckTooThin)
	}
}

func TestDrawCardExhaustion(t *testing.T) {
	d := NewStandardDeck()
	seen := map[int]bool{}
	for i := 0; i < DeckSize; i++ {
		idx, ok := d.DrawCard(firstRng{})
		if !ok {
			t.Fatalf("draw %d: deck reported empty early", i)
		}
		if seen[idx] {
			t.Fatalf("card %d drawn twice", idx)
		}
		seen[idx] = true
	}
	if _, ok := d.DrawCard(firstRng{}); ok {
		t.Fatal("empty deck still produced a card")
	}
}

func TestDrawCardUsesRng(t *testing.T) {
	d := NewStandardDeck()
	rng := &scriptedRng{t: t, ones: []int{7}}
	idx, ok := d.DrawCard(rng)
	if !ok || idx != 7 {
		t.Fatalf("draw: got (%d,%v), want card 7", idx, ok)
	}
	// With card 7 gone, position 7 of the remaining list is card 8.
	rng = &scriptedRng{t: t, ones: []int{7}}
	idx, ok = d.DrawCard(rng)
	if !ok || idx != 8 {
		t.Fatalf("draw over gap: got (%d,%v), want card 8", idx, ok)
	}
}

func TestNewHandRejectsDuplicates(t *testing.T) {
	if _, err := NewHand([4]int{1, 2, 3, 2}); !errors.Is(err, ErrDuplicateHandCard) {
		t.Fatalf("duplicate refs: got %v", err)
	}
	if _, err := NewHand([4]int{0, 1, 2, 15}); err == nil {
		t.Fatal("out-of-deck reference accepted")
	}
	if _, err := NewHand([4]int{14, 0, 7, 3}); err != nil {
		t.Fatalf("valid hand rejected: %v", err)
	}
}

func TestRedrawHand(t *testing.T) {
	d := NewStandardDeck()
	p, err := NewPlayer(d, firstRng{})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	// Redraw with a script that picks the back of the refreshed pool.
	rng := &scriptedRng{t: t, fours: [][4]int{{14, 13, 12, 11}}}
	if err := p.RedrawHand(rng); err != nil {
		t.Fatalf("RedrawHand: %v", err)
	}
	if p.Hand() != (Hand{14, 13, 12, 11}) {
		t.Fatalf("redrawn hand: got %v", p.Hand())
	}
	if got := d.AvailableCount(); got != DeckSize-HandSize {
		t.Fatalf("available after redraw: got %d, want %d", got, DeckSize-HandSize)
	}
}

func TestReplaceSlot(t *testing.T) {
	d := NewStandardDeck()
	p, err := NewPlayer(d, firstRng{})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p.ReplaceSlot(2, firstRng{})
	if p.Hand()[2] != 4 {
		t.Fatalf("slot 2 after replace: got %d, want 4", p.Hand()[2])
	}

	// Exhaust the deck; replacement becomes a no-op.
	for {
		if _, ok := d.DrawCard(firstRng{}); !ok {
			break
		}
	}
	before := p.Hand()
	p.ReplaceSlot(0, firstRng{})
	if p.Hand() != before {
		t.Fatal("replace on an exhausted deck changed the hand")
	}
}

func TestSpendSpecialUnderflowPanics(t *testing.T) {
	d := NewStandardDeck()
	p, err := NewPlayer(d, firstRng{})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p.GainSpecial(2)
	p.SpendSpecial(2)
	if p.Special() != 0 {
		t.Fatalf("meter after spend: got %d", p.Special())
	}

	defer func() {
		if recover() == nil {
			t.Fatal("underflow did not panic")
		}
	}()
	p.SpendSpecial(1)
}
