// Package ui provides tview controls for playing Gomoku in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku-local/config"
	"gomoku-local/engine"
	"gomoku-local/types"
)

// Left margin taken by the row numbers, and the height of the column letter row.
const (
	labelWidth  = 4
	labelHeight = 1
)

// Style slots indexed by the board drawing code.
const (
	styleBoard = iota
	styleBlack
	styleWhite
	styleBoardAlt
	styleCursorFG
	styleLastPlayed
	styleCursorBG
	styleLine
	styleWinLine
)

type GomokuBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	selRow     int
	selCol     int
	eng        engine.GameEngine
	undoMode   engine.UndoMode
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
	notice     string
	onWin      func(types.Player)

	// top-left corner of the grid at the last draw, for mouse hits
	gridX, gridY int
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *GomokuBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *GomokuBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// SetWinHandler registers fn to be called when a move wins the game.
func (g *GomokuBoardUI) SetWinHandler(fn func(types.Player)) {
	g.onWin = fn
}

func (g *GomokuBoardUI) SelectedTile() *types.BoardPos {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	return &types.BoardPos{Row: g.selRow, Col: g.selCol}
}

// MoveSelection moves the cursor by dRow rows and dCol columns.
// The first call places the cursor on the last move, or the board center.
func (g *GomokuBoardUI) MoveSelection(dRow, dCol int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		if last := g.BoardState.LastMove; last != nil {
			g.selRow, g.selCol = last.Row, last.Col
		} else {
			g.selRow = g.BoardState.Height() / 2
			g.selCol = g.BoardState.Width() / 2
		}
		return
	}
	if g.selRow+dRow < 0 || g.selRow+dRow >= g.BoardState.Height() {
		return
	}
	if g.selCol+dCol < 0 || g.selCol+dCol >= g.BoardState.Width() {
		return
	}
	g.selRow += dRow
	g.selCol += dCol
}

func (g *GomokuBoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

func NewGomokuBoard(c *config.Config, hint *tview.TextView) *GomokuBoardUI {
	board := &GomokuBoardUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(engine.BoardSize),
		hint:       hint,
		selRow:     -1,
		selCol:     -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(board.handleMouse)
	return board
}

func (g *GomokuBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	state := g.BoardState
	if state == nil || state.Width() == 0 {
		return x, y, 1, 1
	}
	g.gridX, g.gridY = x+labelWidth, y
	// 2 characters per cell for square appearance
	boardW, boardH := state.Width()*2, state.Height()

	for row := 0; row < state.Height(); row++ {
		for col := 0; col < state.Width(); col++ {
			style, r := g.cellStyle(row, col)
			if state.Board[row][col] == types.Empty && g.cfg.Theme.UseGridLines {
				drawGridCell(screen, style, r, row, col, g.gridX, g.gridY, state)
			} else {
				drawStoneCell(screen, style, r, row, col, g.gridX, g.gridY)
			}
		}
	}
	g.drawCoordinates(screen, x, y)
	return x, y, boardW + labelWidth, boardH + labelHeight
}

// cellStyle returns the style and rune a single intersection is drawn with.
// Stone colour depends only on the cell's owner; the background carries the
// cursor, winning line and last move highlights in that order.
func (g *GomokuBoardUI) cellStyle(row, col int) (tcell.Style, rune) {
	theme := g.cfg.Theme
	cell := g.BoardState.Board[row][col]

	bg := styleBoard
	if (row+col)%2 == 1 {
		bg = styleBoardAlt
	}

	var r rune
	fg := g.styles[styleLine]
	switch cell {
	case types.Black:
		r, fg = theme.Symbols.BlackStone, g.styles[styleBlack]
	case types.White:
		r, fg = theme.Symbols.WhiteStone, g.styles[styleWhite]
	default:
		if theme.UseGridLines {
			r = gridRune(row, col, g.BoardState.Height(), g.BoardState.Width())
		} else {
			r = theme.Symbols.BoardSquare
		}
	}

	last := g.BoardState.LastMove
	switch {
	case row == g.selRow && col == g.selCol:
		if theme.DrawCursorBackground {
			bg = styleCursorBG
		} else if cell == types.Empty && !theme.UseGridLines {
			r, fg = theme.Symbols.Cursor, g.styles[styleCursorFG]
		}
	case g.BoardState.InWinningLine(row, col):
		bg = styleWinLine
	case last != nil && row == last.Row && col == last.Col:
		if theme.DrawLastPlayedBackground {
			bg = styleLastPlayed
		} else if !theme.UseGridLines {
			r = theme.Symbols.LastPlayed
		}
	}
	return tcell.StyleDefault.Background(g.styles[bg]).Foreground(fg), r
}

// cellAt maps a screen position to a board cell.
func (g *GomokuBoardUI) cellAt(sx, sy int) (row, col int, ok bool) {
	if sx < g.gridX || sy < g.gridY {
		return 0, 0, false
	}
	row, col = sy-g.gridY, (sx-g.gridX)/2
	if row >= g.BoardState.Height() || col >= g.BoardState.Width() {
		return 0, 0, false
	}
	return row, col, true
}

func (g *GomokuBoardUI) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}
	row, col, ok := g.cellAt(event.Position())
	if !ok {
		return action, event
	}
	g.selRow, g.selCol = row, col
	g.PlayMove(row, col)
	return action, nil
}

// ConnectEngine binds the board to a game engine and renders its current state.
func (g *GomokuBoardUI) ConnectEngine(e engine.GameEngine, mode engine.UndoMode) {
	g.eng = e
	g.undoMode = mode
	g.notice = ""
	g.ResetSelection()
	if g.infoPanel != nil {
		g.infoPanel.SetUndoMode(mode)
	}

	// Events are emitted from inside the engine calls below, which all run on
	// the tview event loop, so the next redraw picks the new state up.
	e.OnChange(func(ev engine.Event) {
		g.BoardState = ev.State
		if ev.Kind == engine.EventWon {
			g.ResetSelection()
			if g.onWin != nil {
				g.onWin(ev.Move.Player)
			}
		}
		g.refreshHint()
	})

	g.BoardState = e.State()
	g.refreshHint()
}

// PlaceAtSelection places a stone on the cursor, if there is one.
func (g *GomokuBoardUI) PlaceAtSelection() {
	if sel := g.SelectedTile(); sel != nil {
		g.PlayMove(sel.Row, sel.Col)
	}
}

// PlayMove places a stone for the side to move.
func (g *GomokuBoardUI) PlayMove(row, col int) {
	if g.eng == nil {
		return
	}
	_, err := g.eng.PlaceStone(row, col)
	g.setNotice(err)
}

// Undo retracts the last move.
func (g *GomokuBoardUI) Undo() {
	if g.eng == nil {
		return
	}
	_, err := g.eng.Undo()
	g.setNotice(err)
}

// Reset starts a new game on the same engine.
func (g *GomokuBoardUI) Reset() {
	if g.eng == nil {
		return
	}
	g.eng.Reset()
	g.ResetSelection()
	g.notice = "New game"
	g.refreshHint()
}

func (g *GomokuBoardUI) setNotice(err error) {
	g.notice = noticeFor(err)
	g.refreshHint()
}

// noticeFor turns an engine rejection into a short status message.
func noticeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case !engine.IsRejection(err):
		return "Error: " + err.Error()
	case errors.Is(err, engine.ErrCellOccupied):
		return "Cell occupied"
	case errors.Is(err, engine.ErrOutOfBounds):
		return "Off the board"
	case errors.Is(err, engine.ErrGameAlreadyWon):
		return "Game over, r for a new game"
	case errors.Is(err, engine.ErrNothingToUndo):
		return "Nothing to undo"
	}
	return err.Error()
}

// statusText describes whose turn it is, or who won.
func statusText(state *types.BoardState) string {
	if state.Finished() {
		return fmt.Sprintf("%s %s wins!", stoneGlyph(state.Winner), state.Winner)
	}
	return fmt.Sprintf("%s %s to move", stoneGlyph(state.PlayerToMove), state.PlayerToMove)
}

func stoneGlyph(p types.Player) string {
	if p == types.PlayerWhite {
		return "○"
	}
	return "●"
}

func (g *GomokuBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // styleBlack
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // styleWhite
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // styleCursorFG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayed
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursorBG
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // styleLine
		tcell.PaletteColor(c.Theme.Colors.WinLineColorBG),    // styleWinLine
	}
	g.cfg = c
}

func (g *GomokuBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}
	if g.hint == nil {
		return
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	statusLine := "  " + statusText(g.BoardState)
	if g.notice != "" {
		statusLine += "   · " + g.notice
	}

	var controlsLine string
	if g.BoardState.Finished() {
		controlsLine = "  u undo   r new game   q menu"
	} else {
		controlsLine = "  hjkl/↑↓←→ move   ⏎ place   u undo   r reset   f focus   q menu"
	}
	g.hint.SetText(statusLine + "\n" + controlsLine)
}

// IsFinished returns true if the game has been won.
func (g *GomokuBoardUI) IsFinished() bool {
	return g.BoardState.Finished()
}

// drawStoneCell draws a stone cell (2 characters wide)
func drawStoneCell(s tcell.Screen, c tcell.Style, r rune, row, col, left, top int) {
	s.SetContent(left+col*2, top+row, r, nil, c)
	// Position 1: space (stone covers the area, no line)
	s.SetContent(left+col*2+1, top+row, ' ', nil, c)
}

// drawGridCell draws an empty intersection followed by its right connector.
func drawGridCell(s tcell.Screen, c tcell.Style, r rune, row, col, left, top int, state *types.BoardState) {
	s.SetContent(left+col*2, top+row, r, nil, c)

	rightConn := '─'
	if col == state.Width()-1 || state.Board[row][col+1] != types.Empty {
		rightConn = ' '
	}
	s.SetContent(left+col*2+1, top+row, rightConn, nil, c)
}

// gridRune returns the box-drawing character for an empty intersection.
func gridRune(row, col, height, width int) rune {
	isTop := row == 0
	isBottom := row == height-1
	isLeft := col == 0
	isRight := col == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// drawCoordinates draws column letters under the grid and row numbers to its left.
// Rows are numbered from the bottom, so the top row is 10.
func (g *GomokuBoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	h, w := g.BoardState.Height(), g.BoardState.Width()
	last := g.BoardState.LastMove

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Background(g.styles[styleLastPlayed])

	for col := 0; col < w; col++ {
		st := style
		if col == g.selCol {
			st = highlight
		} else if last != nil && col == last.Col {
			st = lpHighlight
		}
		s.SetContent(g.gridX+col*2, y+h, rune('A'+col), nil, st)
		s.SetContent(g.gridX+col*2+1, y+h, ' ', nil, st)
	}

	for row := 0; row < h; row++ {
		st := style
		if row == g.selRow {
			st = highlight
		} else if last != nil && row == last.Row {
			st = lpHighlight
		}
		label := fmt.Sprintf("%2d", h-row)
		s.SetContent(x+1, y+row, rune(label[0]), nil, st)
		s.SetContent(x+2, y+row, rune(label[1]), nil, st)
	}
}
