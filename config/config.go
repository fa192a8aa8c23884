package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"gomoku-local/engine"
)

const appName = "gomoku-local"

var (
	cfgFile      = appName + "/config.json"
	historyDir   = appName + "/history"
	debugLogFile = appName + "/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	LineColor         int `json:"line"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
	WinLineColorBG    int `json:"win_line_bg"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	Cursor      rune `json:"cursor"`
	LastPlayed  rune `json:"last_played"`
}

type Theme struct {
	DrawStoneBackground      bool          `json:"draw_stone_bg"`
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	UseGridLines             bool          `json:"use_grid_lines"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameOptions holds gameplay settings. Environment variables override the file.
type GameOptions struct {
	UndoMode    string `json:"undo_mode" env:"GOMOKU_UNDO_MODE"`
	RecordGames bool   `json:"record_games" env:"GOMOKU_RECORD_GAMES"`
	RecordDir   string `json:"record_dir" env:"GOMOKU_RECORD_DIR"`
}

type Config struct {
	Theme Theme       `json:"theme"`
	Game  GameOptions `json:"game"`
}

// InitConfig loads the config file from the XDG config dirs, if any, applies
// environment overrides and validates the result.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		err = cleanenv.ReadConfig(absPath, &config)
	} else {
		err = cleanenv.ReadEnv(&config)
	}
	if err != nil {
		return nil, &InvalidConfig{err.Error()}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone, c.Theme.Symbols.BoardSquare} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if _, err := engine.ParseUndoMode(c.Game.UndoMode); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// GameConfig returns the engine configuration described by the options.
func (c *Config) GameConfig() engine.GameConfig {
	gameCfg := engine.DefaultConfig()
	if mode, err := engine.ParseUndoMode(c.Game.UndoMode); err == nil {
		gameCfg.UndoMode = mode
	}
	return gameCfg
}

// RecordDir returns the directory game records are written to.
func (c *Config) RecordDir() string {
	if c.Game.RecordDir != "" {
		return c.Game.RecordDir
	}
	return HistoryDir()
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// HistoryDir returns the default directory for game records.
func HistoryDir() string {
	return filepath.Join(xdg.DataHome, historyDir)
}

// DebugLogPath returns the debug log location, creating its directory.
func DebugLogPath() (string, error) {
	return xdg.StateFile(debugLogFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}
