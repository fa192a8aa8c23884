package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomoku-local/config"
	"gomoku-local/engine"
	"gomoku-local/engine/gomoku"
	"gomoku-local/types"
)

func newTestBoard(t *testing.T, mode engine.UndoMode) (*GomokuBoardUI, *tview.TextView, *gomoku.Game) {
	t.Helper()
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	board := NewGomokuBoard(&cfg, hint)
	game := gomoku.NewGame(engine.GameConfig{UndoMode: mode})
	board.ConnectEngine(game, mode)
	return board, hint, game
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestGridRune(t *testing.T) {
	tests := []struct {
		row, col int
		want     rune
	}{
		{0, 0, '┌'},
		{0, 9, '┐'},
		{9, 0, '└'},
		{9, 9, '┘'},
		{0, 4, '┬'},
		{9, 4, '┴'},
		{4, 0, '├'},
		{4, 9, '┤'},
		{4, 4, '┼'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(gridRune(tt.row, tt.col, 10, 10)), "(%d, %d)", tt.row, tt.col)
	}
}

func TestNoticeFor(t *testing.T) {
	g := gomoku.NewGame(engine.DefaultConfig())
	_, err := g.PlaceStone(0, 0)
	require.NoError(t, err)

	_, occupied := g.PlaceStone(0, 0)
	_, outside := g.PlaceStone(10, 0)

	assert.Equal(t, "", noticeFor(nil))
	assert.Equal(t, "Cell occupied", noticeFor(occupied))
	assert.Equal(t, "Off the board", noticeFor(outside))
	assert.Equal(t, "Nothing to undo", noticeFor(engine.ErrNothingToUndo))
	assert.Equal(t, "Game over, r for a new game", noticeFor(engine.ErrGameAlreadyWon))
}

func TestStatusText(t *testing.T) {
	state := types.NewBoardState(engine.BoardSize)
	assert.Equal(t, "● Black to move", statusText(state))

	state.PlayerToMove = types.PlayerWhite
	assert.Equal(t, "○ White to move", statusText(state))

	state.Status = types.Won
	state.Winner = types.PlayerBlack
	assert.Equal(t, "● Black wins!", statusText(state))
}

func TestBoardFollowsEngine(t *testing.T) {
	board, hint, game := newTestBoard(t, engine.UndoOneShot)
	assert.Contains(t, hint.GetText(true), "Black to move")

	board.PlayMove(4, 4)

	assert.Equal(t, types.Black, board.BoardState.Board[4][4])
	assert.Contains(t, hint.GetText(true), "White to move")

	t.Run("rejections show a notice and keep the turn", func(t *testing.T) {
		board.PlayMove(4, 4)
		assert.Contains(t, hint.GetText(true), "Cell occupied")
		assert.Contains(t, hint.GetText(true), "White to move")
	})

	t.Run("undo", func(t *testing.T) {
		board.Undo()
		assert.Equal(t, types.Empty, board.BoardState.Board[4][4])
		assert.Contains(t, hint.GetText(true), "Black to move")

		board.Undo()
		assert.Contains(t, hint.GetText(true), "Nothing to undo")
	})

	t.Run("reset", func(t *testing.T) {
		board.PlayMove(0, 0)
		board.Reset()
		assert.Empty(t, game.History())
		assert.Nil(t, board.BoardState.LastMove)
		assert.Contains(t, hint.GetText(true), "New game")
	})
}

func TestBoardWinHandler(t *testing.T) {
	board, hint, _ := newTestBoard(t, engine.UndoOneShot)
	var winners []types.Player
	board.SetWinHandler(func(p types.Player) { winners = append(winners, p) })

	for _, m := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}, {0, 4}} {
		board.PlayMove(m[0], m[1])
	}

	assert.Equal(t, []types.Player{types.PlayerBlack}, winners)
	assert.True(t, board.IsFinished())
	assert.Contains(t, hint.GetText(true), "Black wins!")

	board.PlayMove(5, 5)
	assert.Contains(t, hint.GetText(true), "Game over")
	assert.Len(t, winners, 1)
}

func TestMoveSelection(t *testing.T) {
	board, _, _ := newTestBoard(t, engine.UndoOneShot)
	assert.Nil(t, board.SelectedTile())

	// The first move of the cursor lands on the board center.
	board.MoveSelection(-1, 0)
	assert.Equal(t, &types.BoardPos{Row: 5, Col: 5}, board.SelectedTile())

	for i := 0; i < 20; i++ {
		board.MoveSelection(-1, -1)
	}
	assert.Equal(t, &types.BoardPos{Row: 0, Col: 0}, board.SelectedTile())

	board.PlaceAtSelection()
	assert.Equal(t, types.Black, board.BoardState.Board[0][0])

	board.ResetSelection()
	board.MoveSelection(0, 1)
	assert.Equal(t, &types.BoardPos{Row: 0, Col: 0}, board.SelectedTile(), "cursor restarts on the last move")
}

func TestBoardDraw(t *testing.T) {
	board, _, _ := newTestBoard(t, engine.UndoOneShot)
	board.PlayMove(0, 0)
	board.PlayMove(9, 9)

	screen := newTestScreen(t)
	board.Box.SetRect(0, 0, 40, 20)
	board.Box.Draw(screen)

	left := labelWidth
	assert.Equal(t, config.DefaultTheme.Symbols.BlackStone, runeAt(screen, left, 0))
	assert.Equal(t, config.DefaultTheme.Symbols.WhiteStone, runeAt(screen, left+18, 9))
	assert.Equal(t, '┬', runeAt(screen, left+2, 0))
	assert.Equal(t, '┼', runeAt(screen, left+8, 4))

	// Row numbers count up from the bottom, column letters run left to right.
	assert.Equal(t, '1', runeAt(screen, 1, 0))
	assert.Equal(t, '0', runeAt(screen, 2, 0))
	assert.Equal(t, '1', runeAt(screen, 2, 9))
	assert.Equal(t, 'A', runeAt(screen, left, 10))
	assert.Equal(t, 'J', runeAt(screen, left+18, 10))
}

func TestMouseClickPlacesStone(t *testing.T) {
	board, _, game := newTestBoard(t, engine.UndoOneShot)
	screen := newTestScreen(t)
	board.Box.SetRect(0, 0, 40, 20)
	board.Box.Draw(screen)

	t.Run("cell mapping", func(t *testing.T) {
		row, col, ok := board.cellAt(labelWidth+7, 3)
		assert.True(t, ok)
		assert.Equal(t, 3, row)
		assert.Equal(t, 3, col)

		_, _, ok = board.cellAt(1, 3)
		assert.False(t, ok)
		_, _, ok = board.cellAt(labelWidth, 10)
		assert.False(t, ok)
	})

	t.Run("left click", func(t *testing.T) {
		ev := tcell.NewEventMouse(labelWidth+4, 2, tcell.Button1, tcell.ModNone)
		_, consumed := board.handleMouse(tview.MouseLeftClick, ev)

		assert.Nil(t, consumed)
		assert.Equal(t, []types.Move{{Row: 2, Col: 2, Player: types.PlayerBlack}}, game.History())
	})

	t.Run("other actions pass through", func(t *testing.T) {
		ev := tcell.NewEventMouse(labelWidth+6, 2, tcell.ButtonNone, tcell.ModNone)
		_, passed := board.handleMouse(tview.MouseMove, ev)

		assert.Equal(t, ev, passed)
		assert.Len(t, game.History(), 1)
	})
}
