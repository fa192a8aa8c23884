// Package engine defines the contract between a Gomoku game engine and its views.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"gomoku-local/types"
)

const (
	// BoardSize is the width and height of the board.
	BoardSize = 10
	// WinLength is the number of contiguous stones that wins the game.
	WinLength = 5
	// InitialSupply is the number of stones each side starts with.
	InitialSupply = 100
)

var (
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrGameAlreadyWon = errors.New("game is already won")
	ErrNothingToUndo  = errors.New("nothing to undo")
)

// IsRejection reports whether err is one of the recoverable engine errors.
// A rejected operation leaves the game unchanged.
func IsRejection(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrGameAlreadyWon) ||
		errors.Is(err, ErrNothingToUndo)
}

// GameEngine defines the operations a view may invoke on a game.
type GameEngine interface {
	// PlaceStone places a stone for the current player at (row, col).
	// Rejected placements return an error and leave the game unchanged.
	PlaceStone(row, col int) (PlacementResult, error)

	// Undo retracts the most recent placement.
	Undo() (UndoResult, error)

	// Reset clears the board and starts a new game with Black to move.
	Reset()

	// BoardSnapshot returns a copy of the grid, indexed [row][col].
	BoardSnapshot() [][]types.Cell

	// SupplyCounts returns the remaining stones of both sides.
	SupplyCounts() types.Supply

	// CurrentPlayer returns the side to move.
	CurrentPlayer() types.Player

	// Status returns whether the game is in progress or won.
	Status() types.GameStatus

	// Winner returns the winning side, if any.
	Winner() (types.Player, bool)

	// History returns the placements not yet undone, oldest first.
	History() []types.Move

	// State returns a deep copy of the full game state.
	State() *types.BoardState

	// OnChange registers a listener called after every successful operation.
	OnChange(func(Event))
}

// Outcome classifies the result of a placement.
type Outcome uint8

const (
	Continued Outcome = iota
	Win
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Win:
		return "win"
	default:
		return "rejected"
	}
}

// PlacementResult describes what a PlaceStone call did.
type PlacementResult struct {
	Outcome    Outcome
	Reason     error
	Move       types.Move
	NextPlayer types.Player // valid when Outcome == Continued
	Winner     types.Player // valid when Outcome == Win
}

// UndoOutcome classifies the result of an undo.
type UndoOutcome uint8

const (
	UndoOk UndoOutcome = iota
	UndoRejected
)

// UndoResult describes what an Undo call did.
type UndoResult struct {
	Outcome  UndoOutcome
	Reason   error
	Restored types.Move
}

// EventKind identifies the operation that produced an Event.
type EventKind uint8

const (
	EventPlaced EventKind = iota
	EventWon
	EventUndone
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventPlaced:
		return "placed"
	case EventWon:
		return "won"
	case EventUndone:
		return "undone"
	default:
		return "reset"
	}
}

// Event is delivered to listeners after a state change.
// State is a copy owned by the listener.
type Event struct {
	Kind  EventKind
	Move  types.Move // zero for EventReset
	State *types.BoardState
}

// UndoMode selects how many consecutive undos are allowed.
type UndoMode uint8

const (
	// UndoOneShot forbids a second undo until a stone is placed again.
	UndoOneShot UndoMode = iota
	// UndoUnlimited allows undoing back to an empty board.
	UndoUnlimited
)

func (m UndoMode) String() string {
	if m == UndoUnlimited {
		return "unlimited"
	}
	return "oneshot"
}

// ParseUndoMode converts a configuration string to an UndoMode.
// An empty string selects UndoOneShot.
func ParseUndoMode(s string) (UndoMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "oneshot", "one-shot", "single":
		return UndoOneShot, nil
	case "unlimited", "stack":
		return UndoUnlimited, nil
	}
	return UndoOneShot, fmt.Errorf("unknown undo mode %q", s)
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	UndoMode UndoMode
}

// DefaultConfig returns the default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		UndoMode: UndoOneShot,
	}
}
