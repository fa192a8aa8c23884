package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired palette shared by the setup form and dialogs.
var MenuColors = struct {
	Border     tcell.Color // Muted blue-gray for borders
	CardBG     tcell.Color // Dark gray dialog background
	Title      tcell.Color // Bright white for titles
	Label      tcell.Color // Light gray for labels
	Hint       tcell.Color // Dim gray for hints
	ButtonBG   tcell.Color // Button background
	ButtonText tcell.Color // Button text
	Winner     tcell.Color // Win announcement
}{
	Border:     tcell.PaletteColor(60),
	CardBG:     tcell.PaletteColor(236),
	Title:      tcell.PaletteColor(255),
	Label:      tcell.PaletteColor(250),
	Hint:       tcell.PaletteColor(245),
	ButtonBG:   tcell.PaletteColor(60),
	ButtonText: tcell.PaletteColor(255),
	Winner:     tcell.PaletteColor(222),
}
