// Package types contains shared data structures for gomoku-local.
package types

// Cell is the occupancy of a single board intersection.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Player is one of the two sides. Its values match the Cell a player's stones occupy.
type Player uint8

const (
	PlayerBlack Player = Player(Black)
	PlayerWhite Player = Player(White)
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// Cell returns the cell state a stone of this player occupies.
func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) String() string {
	return Cell(p).String()
}

// GameStatus is the lifecycle state of a game.
type GameStatus uint8

const (
	InProgress GameStatus = iota
	Won
)

func (s GameStatus) String() string {
	if s == Won {
		return "won"
	}
	return "in progress"
}

// Move is a single stone placement.
type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Player Player `json:"player"`
}

// BoardPos represents a position on the board.
type BoardPos struct {
	Row int
	Col int
}

// Supply holds the remaining stone counts of both sides.
type Supply struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Of returns the count for the given player.
func (s Supply) Of(p Player) int {
	if p == PlayerBlack {
		return s.Black
	}
	return s.White
}

// BoardState is a read-only snapshot of a game handed to views.
// Board is indexed as Board[row][col].
type BoardState struct {
	MoveNumber   int        `json:"move_number"`
	PlayerToMove Player     `json:"player_to_move"`
	Status       GameStatus `json:"status"`
	Winner       Player     `json:"winner,omitempty"`
	Board        [][]Cell   `json:"board"`
	Supply       Supply     `json:"supply"`
	Moves        []Move     `json:"moves"`
	WinningLine  []BoardPos `json:"winning_line,omitempty"`
	CanUndo      bool       `json:"can_undo"`
	LastMove     *Move      `json:"last_move,omitempty"`
}

// Finished returns true if the game has been won.
func (b *BoardState) Finished() bool {
	return b.Status == Won
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// InWinningLine reports whether the given cell is part of the winning line.
func (b *BoardState) InWinningLine(row, col int) bool {
	for _, p := range b.WinningLine {
		if p.Row == row && p.Col == col {
			return true
		}
	}
	return false
}

// NewBoardState creates a new empty board of the given size.
func NewBoardState(size int) *BoardState {
	board := make([][]Cell, size)
	for i := range board {
		board[i] = make([]Cell, size)
	}
	return &BoardState{
		PlayerToMove: PlayerBlack, // Black plays first
		Status:       InProgress,
		Board:        board,
	}
}
