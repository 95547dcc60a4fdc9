package suite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

type Suite struct {
	*testing.T
	Logger *zap.SugaredLogger

	Storage *redis.Client
}

// New starts a throwaway Redis container. The test is skipped when Docker
// is not reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not construct docker pool: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}
	pool.MaxWait = maxWaitDuration

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
		Env:        []string{},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge resource: %v", err)
		}
	})

	if err = resource.Expire(expireDuration); err != nil {
		t.Fatalf("could not set expiration: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("localhost:%s", resource.GetPort(redisPort)),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	if err = pool.Retry(func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  zap.NewNop().Sugar(),
		Storage: client,
	}
}
