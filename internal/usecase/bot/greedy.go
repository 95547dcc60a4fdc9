package bot

import (
	"context"

	"gamey/internal/domain/gamey"
)

const GreedyBotName = "greedy_bot"

// GreedyBot looks one move ahead: it takes a winning cell, otherwise blocks
// the opponent's winning cell, otherwise plays like RandomBot.
type GreedyBot struct {
	fallback *RandomBot
}

func NewGreedyBot() *GreedyBot {
	return &GreedyBot{fallback: NewRandomBot()}
}

func (b *GreedyBot) Name() string {
	return GreedyBotName
}

func (b *GreedyBot) Choose(ctx context.Context, g *gamey.GameY) (gamey.Movement, error) {
	me, ok := g.NextPlayer()
	if !ok {
		return placementFor(g, gamey.Coordinates{})
	}
	free := g.AvailableCells()
	for _, p := range []gamey.PlayerID{me, me.Other()} {
		for _, c := range free {
			if g.Wins(p, c) {
				return placementFor(g, c)
			}
		}
	}
	return b.fallback.Choose(ctx, g)
}
