package bot

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gamey/internal/domain/gamey"
	errs "gamey/internal/errors"
	ybot "gamey/microservices/proto"
)

const remoteChooseTimeout = 5 * time.Second

// RemoteBot forwards Choose to the bot service over gRPC.
type RemoteBot struct {
	name   string
	client ybot.BotServiceClient
}

func NewRemoteBot(name string, client ybot.BotServiceClient) *RemoteBot {
	return &RemoteBot{name: name, client: client}
}

func (b *RemoteBot) Name() string {
	return b.name
}

func (b *RemoteBot) Choose(ctx context.Context, g *gamey.GameY) (gamey.Movement, error) {
	req, err := ybot.NewChooseRequest(b.name, g.YEN())
	if err != nil {
		return nil, fmt.Errorf("failed to encode choose request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, remoteChooseTimeout)
	defer cancel()

	reply, err := b.client.Choose(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s on bot service", errs.ErrBotNotFound, b.name)
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrBotUnavailable, err)
	}

	coords, err := ybot.ParseChooseReply(reply)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBotUnavailable, err)
	}
	return placementFor(g, coords)
}
