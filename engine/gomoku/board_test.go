package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomoku-local/engine"
	"gomoku-local/types"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(engine.BoardSize)
	require.Equal(t, engine.BoardSize, b.Size())
	assert.Equal(t, 0, b.Count())

	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			c, err := b.Get(row, col)
			require.NoError(t, err)
			assert.Equal(t, types.Empty, c)
		}
	}
}

func TestBoardBounds(t *testing.T) {
	b := NewBoard(engine.BoardSize)
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{9, 9, true},
		{0, 9, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 10, false},
		{-3, 12, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.InBounds(tt.row, tt.col), "InBounds(%d, %d)", tt.row, tt.col)

		_, err := b.Get(tt.row, tt.col)
		if tt.want {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, engine.ErrOutOfBounds)
		}
	}
}

func TestBoardSet(t *testing.T) {
	t.Run("places a stone on an empty cell", func(t *testing.T) {
		b := NewBoard(engine.BoardSize)

		require.NoError(t, b.Set(3, 4, types.PlayerWhite))

		c, err := b.Get(3, 4)
		require.NoError(t, err)
		assert.Equal(t, types.White, c)
		assert.Equal(t, 1, b.Count())
	})

	t.Run("rejects an occupied cell without overwriting", func(t *testing.T) {
		b := NewBoard(engine.BoardSize)
		require.NoError(t, b.Set(5, 5, types.PlayerBlack))

		err := b.Set(5, 5, types.PlayerWhite)

		assert.ErrorIs(t, err, engine.ErrCellOccupied)
		c, _ := b.Get(5, 5)
		assert.Equal(t, types.Black, c)
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		b := NewBoard(engine.BoardSize)

		err := b.Set(10, 2, types.PlayerBlack)

		assert.ErrorIs(t, err, engine.ErrOutOfBounds)
		assert.Equal(t, 0, b.Count())
	})
}

func TestBoardRemoveAndClear(t *testing.T) {
	b := NewBoard(engine.BoardSize)
	require.NoError(t, b.Set(1, 1, types.PlayerBlack))
	require.NoError(t, b.Set(2, 2, types.PlayerWhite))

	require.NoError(t, b.Remove(1, 1))
	c, _ := b.Get(1, 1)
	assert.Equal(t, types.Empty, c)
	assert.ErrorIs(t, b.Remove(-1, 0), engine.ErrOutOfBounds)

	b.Clear()
	assert.Equal(t, 0, b.Count())
}

func TestBoardSnapshotIsACopy(t *testing.T) {
	b := NewBoard(engine.BoardSize)
	require.NoError(t, b.Set(0, 0, types.PlayerBlack))

	snap := b.Snapshot()
	snap[0][0] = types.White
	snap[1][1] = types.Black

	c, _ := b.Get(0, 0)
	assert.Equal(t, types.Black, c)
	c, _ = b.Get(1, 1)
	assert.Equal(t, types.Empty, c)
}
