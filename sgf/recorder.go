package sgf

import (
	"go.uber.org/zap"

	"gomoku-local/engine"
)

// Recorder keeps one GameRecord per game by following engine events.
// A file is created on the first move, so games without moves leave nothing behind.
type Recorder struct {
	dir       string
	boardSize int
	current   *GameRecord
	log       *zap.Logger
}

// NewRecorder creates a recorder writing into dir.
func NewRecorder(dir string, boardSize int, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{
		dir:       dir,
		boardSize: boardSize,
		log:       log.With(zap.String("component", "recorder")),
	}
}

// Attach subscribes the recorder to a game engine.
func (r *Recorder) Attach(e engine.GameEngine) {
	e.OnChange(r.Handle)
}

// Handle applies a single engine event to the current record.
// Write failures are logged and never interrupt the game.
func (r *Recorder) Handle(ev engine.Event) {
	var err error
	switch ev.Kind {
	case engine.EventPlaced, engine.EventWon:
		if r.current == nil {
			if r.current, err = NewGameRecord(r.dir, r.boardSize); err != nil {
				break
			}
			r.log.Debug("record started", zap.String("path", r.current.FilePath))
		}
		if err = r.current.AddMove(ev.Move); err != nil {
			break
		}
		if ev.Kind == engine.EventWon {
			err = r.current.SetWinner(ev.Move.Player)
		}
	case engine.EventUndone:
		if r.current != nil {
			err = r.current.UndoMoves(1)
		}
	case engine.EventReset:
		err = r.Close()
	}
	if err != nil {
		r.log.Warn("game record update failed", zap.Stringer("event", ev.Kind), zap.Error(err))
	}
}

// Current returns the record being written, or nil before the first move.
func (r *Recorder) Current() *GameRecord {
	return r.current
}

// Close finishes the current record.
func (r *Recorder) Close() error {
	if r.current == nil {
		return nil
	}
	err := r.current.Close()
	r.current = nil
	return err
}
