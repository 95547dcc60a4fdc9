package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"gamey/internal/domain/gamey"
	errs "gamey/internal/errors"
	ybot "gamey/microservices/proto"
)

// BotChooser is the part of the bot registry the gRPC server needs.
type BotChooser interface {
	Choose(ctx context.Context, name string, g *gamey.GameY) (gamey.Coordinates, error)
}

type BotUseCase struct {
	bots BotChooser
	log  *zap.SugaredLogger
}

func NewBotUseCase(bots BotChooser, log *zap.SugaredLogger) *BotUseCase {
	return &BotUseCase{
		bots: bots,
		log:  log,
	}
}

func (b *BotUseCase) Choose(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	botID, yen, err := ybot.ParseChooseRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	g, err := gamey.NewGameFromYEN(yen)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid YEN format: %v", err)
	}

	coords, err := b.bots.Choose(ctx, botID, g)
	if err != nil {
		b.log.Errorf("bot %s failed to choose a move: %v", botID, err)
		return nil, status.Error(grpcCode(err), err.Error())
	}

	b.log.Infof("bot %s chose %s", botID, coords)
	return ybot.NewChooseReply(coords)
}

func grpcCode(err error) codes.Code {
	switch {
	case errors.Is(err, errs.ErrBotNotFound):
		return codes.NotFound
	case errors.Is(err, errs.ErrGameFinished):
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}
