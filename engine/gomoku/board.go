// Package gomoku implements the rules engine for two-player, single-device Gomoku.
package gomoku

import (
	"fmt"

	"gomoku-local/engine"
	"gomoku-local/types"
)

// Board is a square grid of cell occupancy, indexed [row][col].
type Board struct {
	size  int
	cells [][]types.Cell
}

// NewBoard creates an empty board of the given size.
func NewBoard(size int) *Board {
	cells := make([][]types.Cell, size)
	for i := range cells {
		cells[i] = make([]types.Cell, size)
	}
	return &Board{size: size, cells: cells}
}

// Size returns the width and height of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

// Get returns the occupancy of (row, col).
func (b *Board) Get(row, col int) (types.Cell, error) {
	if !b.InBounds(row, col) {
		return types.Empty, outOfBounds(row, col)
	}
	return b.cells[row][col], nil
}

// Set places a stone of player p on an empty cell.
func (b *Board) Set(row, col int, p types.Player) error {
	if !b.InBounds(row, col) {
		return outOfBounds(row, col)
	}
	if b.cells[row][col] != types.Empty {
		return fmt.Errorf("%w: %s", engine.ErrCellOccupied, engine.Notation(row, col))
	}
	b.cells[row][col] = p.Cell()
	return nil
}

// Remove empties (row, col). Removing from an empty cell is a no-op.
func (b *Board) Remove(row, col int) error {
	if !b.InBounds(row, col) {
		return outOfBounds(row, col)
	}
	b.cells[row][col] = types.Empty
	return nil
}

// Clear empties every cell.
func (b *Board) Clear() {
	for _, row := range b.cells {
		for i := range row {
			row[i] = types.Empty
		}
	}
}

// Count returns the number of stones on the board.
func (b *Board) Count() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != types.Empty {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a deep copy of the grid.
func (b *Board) Snapshot() [][]types.Cell {
	out := make([][]types.Cell, b.size)
	for i := range out {
		out[i] = make([]types.Cell, b.size)
		copy(out[i], b.cells[i])
	}
	return out
}

// at reads a cell without bounds checking. Callers check InBounds first.
func (b *Board) at(row, col int) types.Cell {
	return b.cells[row][col]
}

func outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d, %d)", engine.ErrOutOfBounds, row, col)
}
