package gomoku

import (
	"go.uber.org/zap"

	"gomoku-local/engine"
	"gomoku-local/types"
)

// Game implements engine.GameEngine for two players sharing one device.
// It is not safe for concurrent use; every call is expected to come from the
// UI event loop.
type Game struct {
	board   *Board
	turn    turnController
	history moveHistory
	supply  supplyTracker

	status      types.GameStatus
	winner      types.Player
	winningLine []types.BoardPos

	listeners []func(engine.Event)
	log       *zap.Logger
}

var _ engine.GameEngine = (*Game)(nil)

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGame creates a game with an empty board and Black to move.
func NewGame(cfg engine.GameConfig, opts ...Option) *Game {
	g := &Game{
		board:   NewBoard(engine.BoardSize),
		turn:    newTurnController(),
		history: moveHistory{mode: cfg.UndoMode},
		supply:  newSupplyTracker(engine.InitialSupply),
		status:  types.InProgress,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(zap.String("component", "engine"))
	return g
}

// PlaceStone places a stone for the current player at (row, col).
func (g *Game) PlaceStone(row, col int) (engine.PlacementResult, error) {
	if g.status == types.Won {
		return g.reject(row, col, engine.ErrGameAlreadyWon)
	}

	player := g.turn.current
	if err := g.board.Set(row, col, player); err != nil {
		return g.reject(row, col, err)
	}

	move := types.Move{Row: row, Col: col, Player: player}
	g.history.record(move)
	g.supply.decrement(player)

	if line, ok := checkWin(g.board, row, col); ok {
		g.status = types.Won
		g.winner = player
		g.winningLine = line
		g.log.Info("game won",
			zap.Stringer("winner", player),
			zap.String("at", engine.Notation(row, col)),
			zap.Int("moves", g.history.size()))
		g.emit(engine.EventWon, move)
		return engine.PlacementResult{Outcome: engine.Win, Move: move, Winner: player}, nil
	}

	next := g.turn.advance()
	g.log.Debug("stone placed",
		zap.Stringer("player", player),
		zap.Int("row", row),
		zap.Int("col", col),
		zap.Stringer("next", next))
	g.emit(engine.EventPlaced, move)
	return engine.PlacementResult{Outcome: engine.Continued, Move: move, NextPlayer: next}, nil
}

func (g *Game) reject(row, col int, err error) (engine.PlacementResult, error) {
	g.log.Debug("placement rejected",
		zap.Int("row", row),
		zap.Int("col", col),
		zap.Error(err))
	return engine.PlacementResult{Outcome: engine.Rejected, Reason: err}, err
}

// Undo retracts the most recent placement and gives the turn back to its player.
// Undoing a winning move puts the game back in progress.
func (g *Game) Undo() (engine.UndoResult, error) {
	move, err := g.history.pop()
	if err != nil {
		g.log.Debug("undo rejected", zap.Int("history", g.history.size()), zap.Error(err))
		return engine.UndoResult{Outcome: engine.UndoRejected, Reason: err}, err
	}

	if err := g.board.Remove(move.Row, move.Col); err != nil {
		// History only ever holds on-board moves.
		panic(err)
	}
	g.supply.increment(move.Player)
	g.turn.revertTo(move.Player)
	g.status = types.InProgress
	g.winningLine = nil

	g.log.Debug("move undone",
		zap.Stringer("player", move.Player),
		zap.String("at", engine.Notation(move.Row, move.Col)))
	g.emit(engine.EventUndone, move)
	return engine.UndoResult{Outcome: engine.UndoOk, Restored: move}, nil
}

// Reset clears the board, history and supply and gives Black the first move.
func (g *Game) Reset() {
	g.board.Clear()
	g.history.clear()
	g.supply.reset()
	g.turn.reset()
	g.status = types.InProgress
	g.winningLine = nil

	g.log.Debug("game reset")
	g.emit(engine.EventReset, types.Move{})
}

// BoardSnapshot returns a copy of the grid.
func (g *Game) BoardSnapshot() [][]types.Cell {
	return g.board.Snapshot()
}

// SupplyCounts returns the remaining stones of both sides.
func (g *Game) SupplyCounts() types.Supply {
	return g.supply.counts
}

// CurrentPlayer returns the side to move. After a win it is the winner.
func (g *Game) CurrentPlayer() types.Player {
	return g.turn.current
}

// Status returns whether the game is in progress or won.
func (g *Game) Status() types.GameStatus {
	return g.status
}

// Winner returns the winning side when the game is won.
func (g *Game) Winner() (types.Player, bool) {
	if g.status != types.Won {
		return 0, false
	}
	return g.winner, true
}

// History returns the placements not yet undone, oldest first.
func (g *Game) History() []types.Move {
	return g.history.list()
}

// State returns a deep copy of the full game state.
func (g *Game) State() *types.BoardState {
	state := &types.BoardState{
		MoveNumber:   g.history.size(),
		PlayerToMove: g.turn.current,
		Status:       g.status,
		Board:        g.board.Snapshot(),
		Supply:       g.supply.counts,
		Moves:        g.history.list(),
		CanUndo:      g.history.canUndo(),
	}
	if g.status == types.Won {
		state.Winner = g.winner
		state.WinningLine = append([]types.BoardPos(nil), g.winningLine...)
	}
	if last, ok := g.history.top(); ok {
		state.LastMove = &last
	}
	return state
}

// OnChange registers a listener. Listeners run synchronously, in registration
// order, after each successful PlaceStone, Undo and Reset.
func (g *Game) OnChange(fn func(engine.Event)) {
	if fn == nil {
		return
	}
	g.listeners = append(g.listeners, fn)
}

func (g *Game) emit(kind engine.EventKind, move types.Move) {
	if len(g.listeners) == 0 {
		return
	}
	for _, fn := range g.listeners {
		// Each listener gets its own copy.
		fn(engine.Event{Kind: kind, Move: move, State: g.State()})
	}
}
