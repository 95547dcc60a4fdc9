package bot_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"gamey/internal/domain/gamey"
	errs "gamey/internal/errors"
	"gamey/internal/usecase/bot"
	ybot "gamey/microservices/proto"
	"gamey/microservices/usecase"
)

func startBotService(t *testing.T) ybot.BotServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	ybot.RegisterBotServiceServer(server, usecase.NewBotUseCase(bot.DefaultRegistry(), zap.NewNop().Sugar()))
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return ybot.NewBotServiceClient(conn)
}

func TestRemoteBot_Choose(t *testing.T) {
	ctx := context.Background()
	client := startBotService(t)

	t.Run("Remote greedy bot wins", func(t *testing.T) {
		// Given: B to move with a winning cell at (1,0,1)
		g, err := gamey.NewGameFromYEN(gamey.NewYEN(3, 4, gamey.DefaultPlayers, "B/.R/BR."))
		require.NoError(t, err)

		// When: the remote greedy bot is asked through the registry
		registry := bot.NewRegistry().WithBot(bot.NewRemoteBot(bot.GreedyBotName, client))
		coords, err := registry.Choose(ctx, bot.GreedyBotName, g)

		// Then: the reply crosses the wire intact
		require.NoError(t, err)
		assert.Equal(t, gamey.Coordinates{X: 1, Y: 0, Z: 1}, coords)
	})

	t.Run("Unknown remote bot", func(t *testing.T) {
		g, err := gamey.NewGame(3, gamey.DefaultPlayers)
		require.NoError(t, err)

		_, err = bot.NewRemoteBot("missing_bot", client).Choose(ctx, g)

		require.ErrorIs(t, err, errs.ErrBotNotFound)
	})
}
