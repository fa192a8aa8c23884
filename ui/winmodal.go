package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"gomoku-local/types"
)

// Buttons of the win dialog.
const (
	WinNewGame = "New game"
	WinReview  = "Review"
)

// NewWinModal creates the dialog announcing winner. done receives the label of
// the pressed button, or "" when the dialog is dismissed with Escape.
func NewWinModal(winner types.Player, done func(label string)) *tview.Modal {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("%s %s wins!", stoneGlyph(winner), winner)).
		AddButtons([]string{WinNewGame, WinReview}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			done(buttonLabel)
		})
	modal.SetBackgroundColor(MenuColors.CardBG)
	modal.SetTextColor(MenuColors.Winner)
	modal.SetButtonBackgroundColor(MenuColors.ButtonBG)
	modal.SetButtonTextColor(MenuColors.ButtonText)
	return modal
}
