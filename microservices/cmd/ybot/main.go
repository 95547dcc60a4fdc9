package main

import (
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"gamey/internal/bootstrap"
	"gamey/internal/usecase/bot"
	ybot "gamey/microservices/proto"
	"gamey/microservices/usecase"
)

func main() {
	logger := NewLogger()
	defer logger.Sync() //nolint: errcheck

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	lis, err := net.Listen("tcp", ":"+cfg.BotGrpcPort)
	if err != nil {
		logger.Fatalf("cant listen port %s: %v", cfg.BotGrpcPort, err)
	}

	registry := bot.DefaultRegistry()
	server := grpc.NewServer()
	ybot.RegisterBotServiceServer(server, usecase.NewBotUseCase(registry, logger))

	logger.Infof("bot service with %v listening at :%s", registry.Names(), cfg.BotGrpcPort)
	if err := server.Serve(lis); err != nil {
		logger.Fatal("grpc server stopped", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return logger.Sugar()
}
