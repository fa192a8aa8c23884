package gomoku

import "gomoku-local/types"

// turnController tracks the side to move.
type turnController struct {
	current types.Player
}

func newTurnController() turnController {
	return turnController{current: types.PlayerBlack}
}

// advance hands the turn to the opponent and returns the new side to move.
func (t *turnController) advance() types.Player {
	t.current = t.current.Opponent()
	return t.current
}

// revertTo gives the turn back to the player whose move was retracted.
func (t *turnController) revertTo(p types.Player) {
	t.current = p
}

func (t *turnController) reset() {
	t.current = types.PlayerBlack
}
