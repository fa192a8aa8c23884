// Package sgf implements SGF FF[4] writing for Gomoku game records (GM[4]).
package sgf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gomoku-local/types"
)

// GameRecord tracks a game in progress and writes it as SGF.
type GameRecord struct {
	ID          string
	FilePath    string
	BoardSize   int
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	moves       []string // ";B[ca]", ";W[dd]", ...
	file        *os.File
}

// NewGameRecord creates a new SGF file in dir and writes the initial header.
func NewGameRecord(dir string, boardSize int) (*GameRecord, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	id := uuid.New()
	now := time.Now()
	filename := fmt.Sprintf("%s_%s.sgf", now.Format("2006-01-02_150405"), id.String()[:8])
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create sgf file: %w", err)
	}

	rec := &GameRecord{
		ID:          id.String(),
		FilePath:    path,
		BoardSize:   boardSize,
		PlayerBlack: "Black",
		PlayerWhite: "White",
		Date:        now.Format("2006-01-02"),
		Result:      "?",
		file:        f,
	}

	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

// sgfCoord converts 0-indexed board coordinates to an SGF letter pair, column first.
// (0,0) -> "aa", row 3 col 4 -> "ed", (9,9) -> "jj".
func sgfCoord(row, col int) string {
	return string(rune('a'+col)) + string(rune('a'+row))
}

// AddMove appends a move to the record.
func (r *GameRecord) AddMove(m types.Move) error {
	r.moves = append(r.moves, fmt.Sprintf(";%s[%s]", colorChar(m.Player), sgfCoord(m.Row, m.Col)))
	return r.flush()
}

// UndoMoves removes the last n moves from the record.
func (r *GameRecord) UndoMoves(n int) error {
	if n > len(r.moves) {
		n = len(r.moves)
	}
	r.moves = r.moves[:len(r.moves)-n]
	// A retracted winning move also retracts the result.
	r.Result = "?"
	return r.flush()
}

// SetWinner records a win for p as RE[B+] or RE[W+].
func (r *GameRecord) SetWinner(p types.Player) error {
	r.Result = colorChar(p) + "+"
	return r.flush()
}

// MoveCount returns the number of recorded moves.
func (r *GameRecord) MoveCount() int {
	return len(r.moves)
}

// Close performs a final flush and closes the file handle.
func (r *GameRecord) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.flush()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	r.file = nil
	return err
}

// flush rewrites the complete SGF file from scratch.
func (r *GameRecord) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.WriteString(r.String()); err != nil {
		return err
	}
	return r.file.Sync()
}

// String renders the record as SGF.
func (r *GameRecord) String() string {
	var b strings.Builder

	// Root node
	b.WriteString("(;GM[4]FF[4]CA[UTF-8]")
	b.WriteString("AP[gomoku-local:1.0]")
	b.WriteString(fmt.Sprintf("SZ[%d]", r.BoardSize))
	b.WriteString(fmt.Sprintf("GN[%s]", r.ID))
	b.WriteString(fmt.Sprintf("PB[%s]", r.PlayerBlack))
	b.WriteString(fmt.Sprintf("PW[%s]", r.PlayerWhite))
	b.WriteString(fmt.Sprintf("DT[%s]", r.Date))
	b.WriteString(fmt.Sprintf("RE[%s]", r.Result))
	b.WriteString("\n")

	// Move nodes
	for _, m := range r.moves {
		b.WriteString(m)
	}

	b.WriteString(")\n")
	return b.String()
}

func colorChar(p types.Player) string {
	if p == types.PlayerWhite {
		return "W"
	}
	return "B"
}
