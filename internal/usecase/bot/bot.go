package bot

import (
	"context"
	"fmt"
	"sort"

	"gamey/internal/domain/gamey"
	errs "gamey/internal/errors"
)

// YBot chooses the next move for whoever is to play in g.
type YBot interface {
	Name() string
	Choose(ctx context.Context, g *gamey.GameY) (gamey.Movement, error)
}

// Registry maps bot ids to strategies. It is filled at startup and only read afterwards.
type Registry struct {
	bots map[string]YBot
}

func NewRegistry() *Registry {
	return &Registry{bots: make(map[string]YBot)}
}

// DefaultRegistry holds the strategies that run in-process.
func DefaultRegistry() *Registry {
	return NewRegistry().
		WithBot(NewRandomBot()).
		WithBot(NewGreedyBot())
}

func (r *Registry) WithBot(b YBot) *Registry {
	r.bots[b.Name()] = b
	return r
}

func (r *Registry) Find(name string) (YBot, error) {
	b, ok := r.bots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrBotNotFound, name)
	}
	return b, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.bots))
	for name := range r.bots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Choose looks up the bot and asks it for a placement coordinate.
func (r *Registry) Choose(ctx context.Context, name string, g *gamey.GameY) (gamey.Coordinates, error) {
	b, err := r.Find(name)
	if err != nil {
		return gamey.Coordinates{}, err
	}
	if _, ok := g.NextPlayer(); !ok {
		return gamey.Coordinates{}, errs.ErrGameFinished
	}

	mv, err := b.Choose(ctx, g)
	if err != nil {
		return gamey.Coordinates{}, err
	}
	placement, ok := mv.(gamey.Placement)
	if !ok {
		return gamey.Coordinates{}, fmt.Errorf("%w: %s returned %T", errs.ErrBotUnavailable, name, mv)
	}
	return placement.Coords, nil
}

func placementFor(g *gamey.GameY, c gamey.Coordinates) (gamey.Movement, error) {
	player, ok := g.NextPlayer()
	if !ok {
		return nil, errs.ErrGameFinished
	}
	return gamey.Placement{Player: player, Coords: c}, nil
}
