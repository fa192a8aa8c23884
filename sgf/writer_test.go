package sgf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gomoku-local/types"
)

func readRecord(t *testing.T, rec *GameRecord) string {
	t.Helper()
	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(content)
}

func TestSgfCoord(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "aa"},
		{3, 4, "ed"},
		{9, 9, "jj"},
		{0, 2, "ca"},
		{9, 0, "aj"},
	}
	for _, tt := range tests {
		got := sgfCoord(tt.row, tt.col)
		if got != tt.want {
			t.Errorf("sgfCoord(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestNewGameRecord(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 10)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	// File should exist
	if _, err := os.Stat(rec.FilePath); os.IsNotExist(err) {
		t.Fatal("SGF file not created")
	}

	s := readRecord(t, rec)

	// Check required properties
	for _, prop := range []string{"GM[4]", "FF[4]", "SZ[10]", "PB[Black]", "PW[White]", "RE[?]", "GN[" + rec.ID + "]"} {
		if !strings.Contains(s, prop) {
			t.Errorf("SGF missing property %s in:\n%s", prop, s)
		}
	}

	// Verify it's valid SGF structure
	if !strings.HasPrefix(s, "(;") {
		t.Error("SGF should start with '(;'")
	}
	if !strings.HasSuffix(strings.TrimSpace(s), ")") {
		t.Error("SGF should end with ')'")
	}
}

func TestAddMove(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 10)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	rec.AddMove(types.Move{Row: 0, Col: 2, Player: types.PlayerBlack}) // B[ca]
	rec.AddMove(types.Move{Row: 3, Col: 3, Player: types.PlayerWhite}) // W[dd]
	rec.AddMove(types.Move{Row: 9, Col: 0, Player: types.PlayerBlack}) // B[aj]

	s := readRecord(t, rec)
	if !strings.Contains(s, ";B[ca];W[dd];B[aj]") {
		t.Errorf("SGF missing moves in order in:\n%s", s)
	}
	if rec.MoveCount() != 3 {
		t.Errorf("MoveCount() = %d, want 3", rec.MoveCount())
	}
}

func TestUndoMoves(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 10)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	rec.AddMove(types.Move{Row: 4, Col: 4, Player: types.PlayerBlack})
	rec.AddMove(types.Move{Row: 4, Col: 5, Player: types.PlayerWhite})
	if err := rec.UndoMoves(1); err != nil {
		t.Fatalf("UndoMoves: %v", err)
	}

	s := readRecord(t, rec)
	if strings.Contains(s, ";W[fe]") {
		t.Errorf("undone move still present in:\n%s", s)
	}
	if !strings.Contains(s, ";B[ee]") {
		t.Errorf("remaining move missing in:\n%s", s)
	}

	// Undoing more than recorded clamps to zero.
	rec.UndoMoves(5)
	if rec.MoveCount() != 0 {
		t.Errorf("MoveCount() = %d, want 0", rec.MoveCount())
	}
}

func TestSetWinner(t *testing.T) {
	tests := []struct {
		winner types.Player
		want   string
	}{
		{types.PlayerBlack, "RE[B+]"},
		{types.PlayerWhite, "RE[W+]"},
	}
	for _, tt := range tests {
		rec, err := NewGameRecord(t.TempDir(), 10)
		if err != nil {
			t.Fatalf("NewGameRecord: %v", err)
		}
		rec.SetWinner(tt.winner)
		s := readRecord(t, rec)
		rec.Close()

		if !strings.Contains(s, tt.want) {
			t.Errorf("Expected %s in:\n%s", tt.want, s)
		}
	}
}

func TestUndoClearsResult(t *testing.T) {
	rec, err := NewGameRecord(t.TempDir(), 10)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	rec.AddMove(types.Move{Row: 0, Col: 4, Player: types.PlayerBlack})
	rec.SetWinner(types.PlayerBlack)
	rec.UndoMoves(1)

	if s := readRecord(t, rec); !strings.Contains(s, "RE[?]") {
		t.Errorf("Expected RE[?] after undoing the winning move in:\n%s", s)
	}
}

func TestFilenameFormat(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 10)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	base := filepath.Base(rec.FilePath)
	if !strings.HasSuffix(base, "_"+rec.ID[:8]+".sgf") {
		t.Errorf("Filename should end with the record id, got %s", base)
	}
	if !strings.HasPrefix(base, "20") {
		t.Errorf("Filename should start with year, got %s", base)
	}
}

func TestCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 10)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}

	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := rec.AddMove(types.Move{Player: types.PlayerBlack}); err == nil {
		t.Error("AddMove after Close should fail")
	}
}

func TestCrashSafety(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 10)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}

	// Add moves without closing
	rec.AddMove(types.Move{Row: 4, Col: 4, Player: types.PlayerBlack})
	rec.AddMove(types.Move{Row: 2, Col: 2, Player: types.PlayerWhite})

	// Simulate crash: read file directly (it should be valid SGF after each flush)
	s := readRecord(t, rec)

	if !strings.HasPrefix(s, "(;") {
		t.Error("File should be valid SGF even without Close()")
	}
	if !strings.Contains(s, ")") {
		t.Error("File should have closing paren even without Close()")
	}
	if !strings.Contains(s, ";B[ee]") {
		t.Error("File should contain moves even without Close()")
	}

	rec.Close()
}
