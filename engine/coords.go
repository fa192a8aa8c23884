package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Board notation:
// - Columns: A-J (left to right)
// - Rows: 1-10 (from bottom of board)
// - Example: A1 is the bottom-left corner, J10 the top-right.
//
// Engine coordinate system:
// - Row: 0-9 (top to bottom)
// - Col: 0-9 (left to right)
// - Example: (9, 0) for A1

// Notation converts engine coordinates (0-indexed, top-left origin) to board notation.
// (9, 0) -> A1, (0, 0) -> A10, (4, 4) -> E6
func Notation(row, col int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(col), BoardSize-row)
}

// ParseNotation converts board notation to engine coordinates.
func ParseNotation(vertex string) (int, int, error) {
	vertex = strings.TrimSpace(strings.ToUpper(vertex))
	if len(vertex) < 2 {
		return 0, 0, fmt.Errorf("invalid vertex: %s", vertex)
	}

	col := int(vertex[0] - 'A')
	if col < 0 || col >= BoardSize {
		return 0, 0, fmt.Errorf("%w: column in vertex %s", ErrOutOfBounds, vertex)
	}

	n, err := strconv.Atoi(vertex[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in vertex: %s", vertex)
	}

	// Rows count up from the bottom
	row := BoardSize - n
	if row < 0 || row >= BoardSize {
		return 0, 0, fmt.Errorf("%w: row in vertex %s", ErrOutOfBounds, vertex)
	}

	return row, col, nil
}
