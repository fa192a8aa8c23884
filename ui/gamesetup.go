package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku-local/config"
	"gomoku-local/engine"
)

var undoModeOptions = []struct {
	mode  engine.UndoMode
	label string
}{
	{engine.UndoOneShot, "One per move"},
	{engine.UndoUnlimited, "Unlimited"},
}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(config.GameOptions)
	onCancel func()
	onColors func()

	opts config.GameOptions
}

// NewGameSetup creates a new game setup form starting from opts.
func NewGameSetup(opts config.GameOptions, onStart func(config.GameOptions), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		opts:     opts,
	}

	labels := make([]string, len(undoModeOptions))
	initial := 0
	current, _ := engine.ParseUndoMode(opts.UndoMode)
	for i, o := range undoModeOptions {
		labels[i] = o.label
		if o.mode == current {
			initial = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown("Undo", labels, initial, func(option string, index int) {
		if index >= 0 && index < len(undoModeOptions) {
			setup.opts.UndoMode = undoModeOptions[index].mode.String()
		}
	})

	form.AddCheckbox("Record games", opts.RecordGames, func(checked bool) {
		setup.opts.RecordGames = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.opts)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitleColor(MenuColors.Title)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
