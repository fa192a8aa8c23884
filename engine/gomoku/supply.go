package gomoku

import "gomoku-local/types"

// supplyTracker counts the stones each side has left. Counts are not floor-checked:
// placing with an empty supply still decrements.
type supplyTracker struct {
	initial int
	counts  types.Supply
}

func newSupplyTracker(initial int) supplyTracker {
	return supplyTracker{
		initial: initial,
		counts:  types.Supply{Black: initial, White: initial},
	}
}

func (s *supplyTracker) decrement(p types.Player) {
	s.adjust(p, -1)
}

func (s *supplyTracker) increment(p types.Player) {
	s.adjust(p, 1)
}

func (s *supplyTracker) adjust(p types.Player, delta int) {
	if p == types.PlayerBlack {
		s.counts.Black += delta
	} else {
		s.counts.White += delta
	}
}

func (s *supplyTracker) reset() {
	s.counts = types.Supply{Black: s.initial, White: s.initial}
}
