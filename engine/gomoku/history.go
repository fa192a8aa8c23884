package gomoku

import (
	"gomoku-local/engine"
	"gomoku-local/types"
)

// moveHistory is the undo stack. Its top is always the latest placement not yet undone.
type moveHistory struct {
	moves     []types.Move
	mode      engine.UndoMode
	justUndid bool // set by an undo, cleared by the next placement
}

func (h *moveHistory) record(m types.Move) {
	h.moves = append(h.moves, m)
	h.justUndid = false
}

// canUndo reports whether pop would succeed.
func (h *moveHistory) canUndo() bool {
	if len(h.moves) == 0 {
		return false
	}
	return h.mode == engine.UndoUnlimited || !h.justUndid
}

// pop removes and returns the most recent move.
func (h *moveHistory) pop() (types.Move, error) {
	if !h.canUndo() {
		return types.Move{}, engine.ErrNothingToUndo
	}
	last := h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	h.justUndid = true
	return last, nil
}

// top returns the most recent move, if any.
func (h *moveHistory) top() (types.Move, bool) {
	if len(h.moves) == 0 {
		return types.Move{}, false
	}
	return h.moves[len(h.moves)-1], true
}

func (h *moveHistory) size() int {
	return len(h.moves)
}

// list returns a copy of the moves, oldest first.
func (h *moveHistory) list() []types.Move {
	out := make([]types.Move, len(h.moves))
	copy(out, h.moves)
	return out
}

func (h *moveHistory) clear() {
	h.moves = nil
	h.justUndid = false
}
