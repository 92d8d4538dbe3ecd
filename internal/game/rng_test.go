package game

import "testing"

// firstRng always draws the lowest admissible indices. Deterministic
// stand-in for the seeded production source.
type firstRng struct{}

func (firstRng) DrawOne(n int) int {
	if n <= 0 {
		panic("DrawOne on empty range")
	}
	return 0
}

func (firstRng) DrawFour(n int) [4]int {
	if n < 4 {
		panic("DrawFour on short range")
	}
	return [4]int{0, 1, 2, 3}
}

// scriptedRng replays a fixed sequence of draws and fails the test if
// the engine asks for more than the script holds.
type scriptedRng struct {
	t     *testing.T
	ones  []int
	fours [][4]int
}

func (s *scriptedRng) DrawOne(n int) int {
	s.t.Helper()
	if len(s.ones) == 0 {
		s.t.Fatalf("unexpected DrawOne(%d)", n)
	}
	v := s.ones[0]
	s.ones = s.ones[1:]
	if v >= n {
		s.t.Fatalf("scripted draw %d out of range %d", v, n)
	}
	return v
}

func (s *scriptedRng) DrawFour(n int) [4]int {
	s.t.Helper()
	if len(s.fours) == 0 {
		s.t.Fatalf("unexpected DrawFour(%d)", n)
	}
	v := s.fours[0]
	s.fours = s.fours[1:]
	return v
}
