package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"gamey/internal/domain/game"
)

const gamesCollection = "games"

type GameRepository struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewGameRepository(log *zap.SugaredLogger, mongo *mongo.Database) *GameRepository {
	return &GameRepository{
		log:   log,
		mongo: mongo,
	}
}

func (g *GameRepository) SaveGameRecord(ctx context.Context, record game.Record) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := g.mongo.Collection(gamesCollection)

	if _, err := collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert game record: %w", err)
	}

	g.log.Infof("game record saved: game %s, %d moves on size %d", record.GameID, record.MovesCount, record.BoardSize)
	return nil
}
