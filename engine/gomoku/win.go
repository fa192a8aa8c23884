package gomoku

import (
	"gomoku-local/engine"
	"gomoku-local/types"
)

// directions holds one vector per line axis: vertical, horizontal and both diagonals.
var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// checkWin tests whether the stone at (row, col) completes a line of at least
// engine.WinLength stones of its owner. On success it returns the cells of the
// first qualifying line, ordered from one end to the other.
func checkWin(b *Board, row, col int) ([]types.BoardPos, bool) {
	if !b.InBounds(row, col) {
		return nil, false
	}
	mark := b.at(row, col)
	if mark == types.Empty {
		return nil, false
	}

	for _, d := range directions {
		back := run(b, row, col, -d[0], -d[1], mark)
		fwd := run(b, row, col, d[0], d[1], mark)
		if 1+back+fwd < engine.WinLength {
			continue
		}

		line := make([]types.BoardPos, 0, 1+back+fwd)
		for step := -back; step <= fwd; step++ {
			line = append(line, types.BoardPos{Row: row + d[0]*step, Col: col + d[1]*step})
		}
		return line, true
	}
	return nil, false
}

// run counts contiguous stones of mark walking away from (row, col) along (dr, dc).
// The walk stops at the board edge, an empty cell or an opposing stone, and never
// goes further than WinLength-1 steps.
func run(b *Board, row, col, dr, dc int, mark types.Cell) int {
	n := 0
	for step := 1; step < engine.WinLength; step++ {
		r, c := row+dr*step, col+dc*step
		if !b.InBounds(r, c) || b.at(r, c) != mark {
			break
		}
		n++
	}
	return n
}
