package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	// Grid lines on a tan board, highlights drawn as backgrounds.
	DefaultTheme = Theme{
		DrawStoneBackground:      false,
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		UseGridLines:             true,
		Colors: ConfigColors{
			BoardColor:        179,
			BoardColorAlt:     179,
			BlackColor:        16,
			WhiteColor:        231,
			LineColor:         94,
			CursorColorFG:     2,
			CursorColorBG:     31,
			LastPlayedColorBG: 107,
			WinLineColorBG:    160,
		},
		Symbols: ConfigSymbols{
			BlackStone:  '●',
			WhiteStone:  '●',
			BoardSquare: '·',
			Cursor:      '+',
			LastPlayed:  '◆',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameOptions{
			UndoMode:    "oneshot",
			RecordGames: true,
		},
	}
}
