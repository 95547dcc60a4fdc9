package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamey/internal/domain/gamey"
	errs "gamey/internal/errors"
)

func mustGame(t *testing.T, yen gamey.YEN) *gamey.GameY {
	t.Helper()
	g, err := gamey.NewGameFromYEN(yen)
	require.NoError(t, err)
	return g
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	registry := DefaultRegistry()

	t.Run("Lists bots by name", func(t *testing.T) {
		assert.Equal(t, []string{GreedyBotName, RandomBotName}, registry.Names())
	})

	t.Run("Unknown bot", func(t *testing.T) {
		_, err := registry.Find("nope")
		require.ErrorIs(t, err, errs.ErrBotNotFound)

		g := mustGame(t, gamey.NewYEN(3, 0, gamey.DefaultPlayers, gamey.EmptyLayout(3)))
		_, err = registry.Choose(ctx, "nope", g)
		require.ErrorIs(t, err, errs.ErrBotNotFound)
	})

	t.Run("Finished game", func(t *testing.T) {
		g := mustGame(t, gamey.NewYEN(3, 5, gamey.DefaultPlayers, "B/BR/BR."))
		_, err := registry.Choose(ctx, RandomBotName, g)
		require.ErrorIs(t, err, errs.ErrGameFinished)
	})

	t.Run("Chosen cell is a legal move", func(t *testing.T) {
		g := mustGame(t, gamey.NewYEN(4, 1, gamey.DefaultPlayers, "B/../.../...."))
		for _, name := range registry.Names() {
			coords, err := registry.Choose(ctx, name, g)
			require.NoError(t, err, name)
			assert.Contains(t, g.AvailableCells(), coords, name)
		}
	})
}

func TestRandomBot_Choose(t *testing.T) {
	// Given: a size 2 board with a single free cell
	g := mustGame(t, gamey.NewYEN(2, 2, gamey.DefaultPlayers, "B/R."))

	// When: the random bot chooses
	mv, err := NewRandomBot().Choose(context.Background(), g)

	// Then: it must take that cell for player 0
	require.NoError(t, err)
	assert.Equal(t, gamey.Placement{Player: gamey.Player0, Coords: gamey.Coordinates{X: 0, Y: 1, Z: 0}}, mv)
}

func TestGreedyBot_Choose(t *testing.T) {
	ctx := context.Background()

	t.Run("Takes a winning cell", func(t *testing.T) {
		// Given: B to move and (1,0,1) joins B's two corners
		g := mustGame(t, gamey.NewYEN(3, 4, gamey.DefaultPlayers, "B/.R/BR."))

		mv, err := NewGreedyBot().Choose(ctx, g)

		require.NoError(t, err)
		assert.Equal(t, gamey.Placement{Player: gamey.Player0, Coords: gamey.Coordinates{X: 1, Y: 0, Z: 1}}, mv)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: R to move, R cannot win now but B wins at (1,0,1)
		g := mustGame(t, gamey.NewYEN(3, 3, gamey.DefaultPlayers, "B/.R/B.."))

		mv, err := NewGreedyBot().Choose(ctx, g)

		require.NoError(t, err)
		assert.Equal(t, gamey.Placement{Player: gamey.Player1, Coords: gamey.Coordinates{X: 1, Y: 0, Z: 1}}, mv)
	})
}
