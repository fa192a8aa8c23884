package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku-local/config"
	"gomoku-local/types"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedBoardColor int
	selectedLineColor  int
	editingLine        bool // true = editing line color, false = editing board color
}

type paletteEntry struct {
	code int
	name string
}

// Common board colors to choose from (warm wood-like tones)
var boardColors = []paletteEntry{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{228, "Light Gold"},
	{222, "Gold"},
	{214, "Orange Gold"},
	{180, "Tan"},
	{179, "Light Brown"},
	{172, "Brown"},
	{136, "Dark Brown"},
	{252, "Light Gray"},
	{248, "Medium Gray"},
	{188, "Light Beige"},
	{223, "Peach"},
	{151, "Sage"},
	{109, "Slate Blue"},
}

// Line colors (darker tones that contrast with board)
var lineColors = []paletteEntry{
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{88, "Dark Red"},
	{22, "Dark Green"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{236, "Dark Gray"},
	{244, "Medium Gray"},
	{16, "True Black"},
}

// A five in a row with a stray white stone, shown in the preview.
var previewStones = map[types.BoardPos]types.Cell{
	{Row: 1, Col: 1}: types.Black,
	{Row: 2, Col: 2}: types.Black,
	{Row: 3, Col: 3}: types.Black,
	{Row: 4, Col: 4}: types.Black,
	{Row: 5, Col: 5}: types.Black,
	{Row: 2, Col: 1}: types.White,
	{Row: 3, Col: 2}: types.White,
	{Row: 4, Col: 3}: types.White,
	{Row: 1, Col: 5}: types.White,
}

const previewSize = 7

// NewColorConfig creates a new color configuration screen.
// The chosen colors are written to the config file.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedLineColor:  cfg.Theme.Colors.LineColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Moving through the list previews the highlighted color.
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if code, ok := cc.entryAt(index); ok {
			if cc.editingLine {
				cc.selectedLineColor = code
			} else {
				cc.selectedBoardColor = code
			}
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if _, ok := cc.entryAt(index); !ok {
			return
		}
		if cc.editingLine {
			cc.cfg.Theme.Colors.LineColor = cc.selectedLineColor
			cc.save()
			// Switch back to board color selection
			cc.editingLine = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
		if cc.save() {
			onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) entryAt(index int) (int, bool) {
	entries := cc.entries()
	if index < 0 || index >= len(entries) {
		return 0, false
	}
	return entries[index].code, true
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingLine {
		return lineColors
	}
	return boardColors
}

// save writes the config file, reporting failures in the list title.
func (cc *ColorConfigUI) save() bool {
	if err := cc.cfg.Save(); err != nil {
		cc.colorList.SetTitle(fmt.Sprintf(" Save failed: %s ", err))
		return false
	}
	return true
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoardColor
	cc.colorList.SetTitle(" Select Board Color (Tab: switch to line) ")
	if cc.editingLine {
		current = cc.selectedLineColor
		cc.colorList.SetTitle(" Select Line Color (Tab: switch to board) ")
	}

	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.entries() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 20 || height < 10 {
		return x, y, width, height
	}

	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	boardStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selectedLineColor))
	stoneStyles := map[types.Cell]tcell.Style{
		types.Black: tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)),
		types.White: tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)),
	}
	symbols := map[types.Cell]rune{
		types.Black: cc.cfg.Theme.Symbols.BlackStone,
		types.White: cc.cfg.Theme.Symbols.WhiteStone,
	}

	startX := x + 2
	startY := y + 1

	for row := 0; row < previewSize; row++ {
		for col := 0; col < previewSize; col++ {
			screenX := startX + col*2
			screenY := startY + row

			char, style := gridRune(row, col, previewSize, previewSize), boardStyle
			stone, hasStone := previewStones[types.BoardPos{Row: row, Col: col}]
			if hasStone {
				char, style = symbols[stone], stoneStyles[stone]
			}
			screen.SetContent(screenX, screenY, char, nil, style)

			if col < previewSize-1 {
				connector := '─'
				_, hasStoneRight := previewStones[types.BoardPos{Row: row, Col: col + 1}]
				if hasStone || hasStoneRight {
					connector = ' '
				}
				screen.SetContent(screenX+1, screenY, connector, nil, boardStyle)
			}
		}
	}

	var info string
	if cc.editingLine {
		info = fmt.Sprintf("Line: %d  Board: %d", cc.selectedLineColor, cc.selectedBoardColor)
	} else {
		info = fmt.Sprintf("Board: %d  Line: %d", cc.selectedBoardColor, cc.selectedLineColor)
	}
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+previewSize+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and line color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}
