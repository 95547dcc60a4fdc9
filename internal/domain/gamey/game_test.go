package gamey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, size int) *GameY {
	t.Helper()
	g, err := NewGame(size, DefaultPlayers)
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	// When: a new game of size 3 is created
	g := newTestGame(t, 3)

	// Then: it is empty and player 0 is to move
	assert.Equal(t, 0, g.Ply())
	assert.Equal(t, Ongoing(Player0), g.Status())
	next, ok := g.NextPlayer()
	require.True(t, ok)
	assert.Equal(t, Player0, next)
	assert.Len(t, g.AvailableCells(), 6)
	assert.Equal(t, NewYEN(3, 0, []string{"B", "R"}, "./../..."), g.YEN())

	_, err := NewGame(0, DefaultPlayers)
	require.ErrorIs(t, err, ErrYenSize)
}

func TestGameY_AddMove(t *testing.T) {
	t.Run("Accepted placement", func(t *testing.T) {
		g := newTestGame(t, 3)

		err := g.AddMove(Placement{Player: Player0, Coords: Coordinates{2, 0, 0}})
		require.NoError(t, err)

		assert.Equal(t, 1, g.Ply())
		assert.Equal(t, Ongoing(Player1), g.Status())
		assert.Equal(t, "B/../...", g.YEN().Layout)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where player 0 took the apex
		g := newTestGame(t, 3)
		require.NoError(t, g.AddMove(Placement{Player: Player0, Coords: Coordinates{2, 0, 0}}))
		before := g.YEN()

		// When: player 1 plays the same cell
		err := g.AddMove(Placement{Player: Player1, Coords: Coordinates{2, 0, 0}})

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, before, g.YEN())
		assert.Equal(t, Ongoing(Player1), g.Status())
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		g := newTestGame(t, 3)

		err := g.AddMove(Placement{Player: Player1, Coords: Coordinates{2, 0, 0}})

		require.ErrorIs(t, err, ErrWrongPlayer)
		assert.Equal(t, 0, g.Ply())
		assert.Equal(t, EmptyLayout(3), g.YEN().Layout)
	})

	t.Run("Error on coordinates off the board", func(t *testing.T) {
		g := newTestGame(t, 3)

		for _, c := range []Coordinates{{1, 1, 1}, {3, 0, -1}, {-1, 2, 1}, {0, 0, 0}, {math.MaxInt, math.MaxInt, 4}} {
			err := g.AddMove(Placement{Player: Player0, Coords: c})
			assert.ErrorIs(t, err, ErrOutOfBounds, c.String())
		}
		assert.Equal(t, 0, g.Ply())
	})

	t.Run("Huge components do not wrap around", func(t *testing.T) {
		// Given: a size 1 board, where MaxInt + MaxInt + 2 overflows to 0 == size-1
		g := newTestGame(t, 1)

		// When: the move is played
		err := g.AddMove(Placement{Player: Player0, Coords: Coordinates{math.MaxInt, math.MaxInt, 2}})

		// Then: it is rejected as out of bounds and nothing changes
		require.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, 0, g.Ply())
		_, ok := g.Cell(Coordinates{math.MaxInt, math.MaxInt, 2})
		assert.False(t, ok)
	})

	t.Run("Wrong player wins over out of bounds", func(t *testing.T) {
		g := newTestGame(t, 3)
		err := g.AddMove(Placement{Player: Player1, Coords: Coordinates{5, 5, 5}})
		require.ErrorIs(t, err, ErrWrongPlayer)
	})

	t.Run("Unsupported movement", func(t *testing.T) {
		g := newTestGame(t, 3)
		err := g.AddMove(nil)
		require.ErrorIs(t, err, ErrUnsupportedMovement)
	})
}

func TestGameY_TurnAlternation(t *testing.T) {
	// Given: an empty size 5 board
	g := newTestGame(t, 5)

	// When: moves are played in row-major order until the game ends
	expected := Player0
	for _, c := range g.AvailableCells() {
		next, ok := g.NextPlayer()
		if !ok {
			break
		}
		// Then: the expected player strictly alternates
		require.Equal(t, expected, next)
		require.NoError(t, g.AddMove(Placement{Player: next, Coords: c}))
		expected = expected.Other()
	}

	assert.True(t, g.Status().Finished)
	_, ok := g.NextPlayer()
	assert.False(t, ok)
}

func TestGameY_Win(t *testing.T) {
	t.Run("Minimal chain on size 3", func(t *testing.T) {
		// Given: player 0 holds the whole left edge, which touches all three sides
		g, err := NewGameFromYEN(NewYEN(3, 5, DefaultPlayers, "B/BR/BR."))
		require.NoError(t, err)

		// Then: player 0 has won
		assert.Equal(t, Finished(Player0), g.Status())
	})

	t.Run("Single cell board", func(t *testing.T) {
		g := newTestGame(t, 1)
		require.NoError(t, g.AddMove(Placement{Player: Player0, Coords: Coordinates{0, 0, 0}}))
		assert.Equal(t, Finished(Player0), g.Status())
	})

	t.Run("Two sides are not enough", func(t *testing.T) {
		g, err := NewGameFromYEN(NewYEN(3, 3, DefaultPlayers, "B/B./R.."))
		require.NoError(t, err)
		assert.Equal(t, Ongoing(Player1), g.Status())
	})
}

func TestGameY_EndToEnd(t *testing.T) {
	// Given: an empty size 3 game between B and R
	g := newTestGame(t, 3)
	moves := []Placement{
		{Player0, Coordinates{2, 0, 0}},
		{Player1, Coordinates{1, 1, 0}},
		{Player0, Coordinates{1, 0, 1}},
		{Player1, Coordinates{0, 1, 1}},
		{Player0, Coordinates{0, 0, 2}},
	}

	// When: each move goes through a decode, apply, encode cycle
	yen := g.YEN()
	for i, m := range moves {
		session, err := NewGameFromYEN(yen)
		require.NoError(t, err)
		require.False(t, session.Status().Finished, "move %d", i)
		require.NoError(t, session.AddMove(m))
		yen = session.YEN()
	}

	// Then: player 0 spans all sides and the layout holds every stone
	final, err := NewGameFromYEN(yen)
	require.NoError(t, err)
	assert.Equal(t, Finished(Player0), final.Status())
	assert.Equal(t, NewYEN(3, 5, []string{"B", "R"}, "B/BR/BR."), yen)

	outcome := final.Outcome()
	require.NotNil(t, outcome.Winner)
	assert.Equal(t, Player0, *outcome.Winner)
	assert.Equal(t, 3, outcome.BoardSize)
	assert.Equal(t, 5, outcome.MovesCount)
}

func TestGameY_GameOver(t *testing.T) {
	// Given: a finished game
	g, err := NewGameFromYEN(NewYEN(3, 5, DefaultPlayers, "B/BR/BR."))
	require.NoError(t, err)
	before := g.YEN()

	// When: anyone tries to move
	for _, p := range []PlayerID{Player0, Player1} {
		err = g.AddMove(Placement{Player: p, Coords: Coordinates{0, 2, 0}})

		// Then: the move is rejected and the state is unchanged
		require.ErrorIs(t, err, ErrGameOver)
	}
	assert.Equal(t, before, g.YEN())
	assert.Equal(t, Finished(Player0), g.Status())
}

func TestGameY_ReplayIgnoresStoneCount(t *testing.T) {
	// Given: three B stones but a ply count of 2
	g, err := NewGameFromYEN(NewYEN(2, 2, DefaultPlayers, "B/BB"))
	require.NoError(t, err)

	// Then: the decoded board is accepted and its connectivity decides the status
	assert.Equal(t, Finished(Player0), g.Status())
	assert.Equal(t, 2, g.Ply())
}

func TestGameY_Wins(t *testing.T) {
	// Given: B holds the apex and the bottom-left corner, R sits at (1,1,0)
	g, err := NewGameFromYEN(NewYEN(3, 3, DefaultPlayers, "B/.R/B.."))
	require.NoError(t, err)

	// Then: only the cell joining B's stones wins for B
	assert.True(t, g.Wins(Player0, Coordinates{1, 0, 1}))
	assert.False(t, g.Wins(Player0, Coordinates{0, 1, 1}))
	assert.False(t, g.Wins(Player1, Coordinates{1, 0, 1}))

	// Then: occupied or off-board cells never win
	assert.False(t, g.Wins(Player0, Coordinates{2, 0, 0}))
	assert.False(t, g.Wins(Player0, Coordinates{1, 1, 1}))

	// Then: the probe left the game untouched
	assert.Equal(t, "B/.R/B..", g.YEN().Layout)
	assert.Equal(t, Ongoing(Player1), g.Status())
}

func TestGameY_Cell(t *testing.T) {
	g, err := NewGameFromYEN(NewYEN(2, 1, DefaultPlayers, "R/.."))
	require.NoError(t, err)

	cell, ok := g.Cell(Coordinates{1, 0, 0})
	require.True(t, ok)
	assert.Equal(t, Owned(Player1), cell)

	_, ok = g.Cell(Coordinates{2, 0, 0})
	assert.False(t, ok)
}
