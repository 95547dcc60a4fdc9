package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gamey/internal/domain/game"
	errs "gamey/internal/errors"
)

const sessionKeyPrefix = "gamey:session:"

// RedisSessionStorage keeps games in progress as JSON under a per-game key.
type RedisSessionStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRedisStorage(client *redis.Client, ttl time.Duration) *RedisSessionStorage {
	return &RedisSessionStorage{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(gameID string) string {
	return sessionKeyPrefix + gameID
}

func (r *RedisSessionStorage) StoreSession(ctx context.Context, session game.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, sessionKey(session.GameID), data, r.ttl).Err()
}

func (r *RedisSessionStorage) GetSession(ctx context.Context, gameID string) (game.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(gameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return game.Session{}, fmt.Errorf("%w: %s", errs.ErrGameNotFound, gameID)
		}
		return game.Session{}, err
	}

	var session game.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return game.Session{}, fmt.Errorf("failed to unmarshal session %s: %w", gameID, err)
	}
	return session, nil
}

func (r *RedisSessionStorage) DeleteSession(ctx context.Context, gameID string) error {
	return r.client.Del(ctx, sessionKey(gameID)).Err()
}
