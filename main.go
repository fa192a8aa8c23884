// gomoku-local is a terminal application for two players to play Gomoku on one machine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"gomoku-local/config"
	"gomoku-local/engine"
	"gomoku-local/engine/gomoku"
	"gomoku-local/sgf"
	"gomoku-local/types"
	"gomoku-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagUndo       = flag.String("undo", "", "Undo mode (oneshot or unlimited)")
	flagNoRecord   = flag.Bool("norecord", false, "Do not write SGF game records")
	flagDebug      = flag.Bool("debug", false, "Write a debug log to the XDG state directory")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.GomokuBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var logger *zap.Logger
var recorder *sgf.Recorder

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("gomoku-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err = newLogger(*flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug log: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	quickStart := *flagQuickStart || *flagFocus

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● gomoku ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewGomokuBoard(cfg, gameHint)
	gameBoard.SetWinHandler(showWinner)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)
	gameBoard.Box.SetInputCapture(handleGameKey)

	// Game setup screen
	setupUI := ui.NewGameSetup(cfg.Game,
		func(opts config.GameOptions) {
			startGame(opts)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)
	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			app.Stop()
			return nil
		}
		return event
	})

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(cfg.Game)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	err = app.SetRoot(rootPage, true).Run()
	closeRecorder()
	if err != nil {
		logger.Error("ui stopped", zap.Error(err))
		panic(err)
	}
}

// applyFlags layers command-line overrides on top of the loaded config.
func applyFlags(c *config.Config) error {
	if *flagUndo != "" {
		if _, err := engine.ParseUndoMode(*flagUndo); err != nil {
			return fmt.Errorf("-undo: %w", err)
		}
		c.Game.UndoMode = *flagUndo
	}
	if *flagNoRecord {
		c.Game.RecordGames = false
	}
	return nil
}

// newLogger returns a development logger writing to the debug log file,
// or a no-op logger so the terminal UI is never written over.
func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	path, err := config.DebugLogPath()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

// startGame starts a fresh game with the given options.
func startGame(opts config.GameOptions) {
	cfg.Game = opts
	gameCfg := cfg.GameConfig()

	closeRecorder()
	game := gomoku.NewGame(gameCfg, gomoku.WithLogger(logger))
	if opts.RecordGames {
		recorder = sgf.NewRecorder(cfg.RecordDir(), engine.BoardSize, logger)
		recorder.Attach(game)
	}
	gameBoard.ConnectEngine(game, gameCfg.UndoMode)

	logger.Info("game started",
		zap.Stringer("undo_mode", gameCfg.UndoMode),
		zap.Bool("record", opts.RecordGames))
	rootPage.SwitchToPage("gameview")
}

func closeRecorder() {
	if recorder == nil {
		return
	}
	if err := recorder.Close(); err != nil {
		logger.Warn("closing game record", zap.Error(err))
	}
	recorder = nil
}

// showWinner opens the win dialog. The board stays read-only after Review
// until the game is reset or the last move undone.
func showWinner(winner types.Player) {
	modal := ui.NewWinModal(winner, func(label string) {
		rootPage.RemovePage("winner")
		if label == ui.WinNewGame {
			gameBoard.Reset()
		}
		app.SetFocus(gameBoard.Box)
	})
	rootPage.AddPage("winner", modal, true, true)
}

func handleGameKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		gameBoard.MoveSelection(-1, 0)
	case tcell.KeyDown:
		gameBoard.MoveSelection(1, 0)
	case tcell.KeyLeft:
		gameBoard.MoveSelection(0, -1)
	case tcell.KeyRight:
		gameBoard.MoveSelection(0, 1)
	case tcell.KeyEnter:
		gameBoard.PlaceAtSelection()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				closeRecorder()
				rootPage.SwitchToPage("setup")
			}
			return nil
		case 'h':
			gameBoard.MoveSelection(0, -1)
		case 'j':
			gameBoard.MoveSelection(1, 0)
		case 'k':
			gameBoard.MoveSelection(-1, 0)
		case 'l':
			gameBoard.MoveSelection(0, 1)
		case ' ':
			gameBoard.PlaceAtSelection()
		case 'u':
			gameBoard.Undo()
		case 'r':
			gameBoard.Reset()
		case 'f':
			if gameBoard.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, gameBoard)
			} else {
				ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
			}
		}
	}
	return event
}
