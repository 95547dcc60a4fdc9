package gamey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Rejects zero size", func(t *testing.T) {
		_, err := NewBoard(0)
		require.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("Allocates triangular number of cells", func(t *testing.T) {
		for size, want := range map[int]int{1: 1, 2: 3, 3: 6, 8: 36} {
			b, err := NewBoard(size)
			require.NoError(t, err)
			assert.Equal(t, want, b.Len())
			assert.Len(t, b.AllCoords(), want)
		}
	})
}

func TestBoard_AllCoordsOrder(t *testing.T) {
	// Given: a board of size 3
	b, err := NewBoard(3)
	require.NoError(t, err)

	// Then: cells come row by row from the apex, left to right
	expected := []Coordinates{
		{2, 0, 0},
		{1, 0, 1}, {1, 1, 0},
		{0, 0, 2}, {0, 1, 1}, {0, 2, 0},
	}
	require.Equal(t, expected, b.AllCoords())

	// Then: Index and CoordsAt agree with that order
	for i, c := range expected {
		assert.True(t, b.Contains(c))
		assert.Equal(t, i, b.Index(c))
		assert.Equal(t, c, b.CoordsAt(i))
	}
}

func TestBoard_Contains(t *testing.T) {
	b, err := NewBoard(3)
	require.NoError(t, err)

	assert.False(t, b.Contains(Coordinates{1, 1, 1}))
	assert.False(t, b.Contains(Coordinates{3, -1, 0}))
	assert.False(t, b.Contains(Coordinates{0, 0, 0}))
	assert.True(t, b.Contains(Coordinates{0, 0, 2}))

	// MaxInt + MaxInt + 4 wraps around to 2
	assert.False(t, b.Contains(Coordinates{math.MaxInt, math.MaxInt, 4}))
}

func TestBoard_Neighbors(t *testing.T) {
	b, err := NewBoard(4)
	require.NoError(t, err)

	t.Run("Corner has two neighbours", func(t *testing.T) {
		assert.ElementsMatch(t, []Coordinates{{2, 1, 0}, {2, 0, 1}}, b.Neighbors(Coordinates{3, 0, 0}))
	})

	t.Run("Inner cell has six neighbours", func(t *testing.T) {
		// size 4 has exactly one inner cell
		n := b.Neighbors(Coordinates{1, 1, 1})
		assert.Len(t, n, 6)
		for _, c := range n {
			assert.True(t, b.Contains(c))
		}
	})

	t.Run("Edge cell has four neighbours", func(t *testing.T) {
		assert.Len(t, b.Neighbors(Coordinates{0, 1, 2}), 4)
	})
}

func TestCoordinates_Sides(t *testing.T) {
	assert.Equal(t, []Side{SideY, SideZ}, Coordinates{2, 0, 0}.Sides())
	assert.Equal(t, []Side{SideX}, Coordinates{0, 1, 1}.Sides())
	assert.Empty(t, Coordinates{1, 1, 1}.Sides())
	assert.Equal(t, []Side{SideX, SideY, SideZ}, Coordinates{0, 0, 0}.Sides())
}

func TestCell_Owner(t *testing.T) {
	_, ok := Empty.Owner()
	assert.False(t, ok)

	p, ok := Owned(Player1).Owner()
	assert.True(t, ok)
	assert.Equal(t, Player1, p)
	assert.Equal(t, Player0, Player1.Other())
}
