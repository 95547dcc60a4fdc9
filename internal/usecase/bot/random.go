package bot

import (
	"context"
	"math/rand"

	"gamey/internal/domain/gamey"
	errs "gamey/internal/errors"
)

const RandomBotName = "random_bot"

// RandomBot picks uniformly among empty cells.
type RandomBot struct{}

func NewRandomBot() *RandomBot {
	return &RandomBot{}
}

func (b *RandomBot) Name() string {
	return RandomBotName
}

func (b *RandomBot) Choose(_ context.Context, g *gamey.GameY) (gamey.Movement, error) {
	free := g.AvailableCells()
	if len(free) == 0 {
		return nil, errs.ErrBotUnavailable
	}
	return placementFor(g, free[rand.Intn(len(free))]) //nolint: gosec // move choice, not crypto
}
