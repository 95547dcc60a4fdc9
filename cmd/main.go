package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"gamey/internal/adapters"
	"gamey/internal/bootstrap"
	botDelivery "gamey/internal/delivery/bot"
	gameDelivery "gamey/internal/delivery/game"
	playDelivery "gamey/internal/delivery/play"
	userDelivery "gamey/internal/delivery/user"
	ownMiddleware "gamey/internal/middleware"
	repo "gamey/internal/repository"
	"gamey/internal/usecase/bot"
	gameuc "gamey/internal/usecase/game"
	userUC "gamey/internal/usecase/user"
	ybot "gamey/microservices/proto"
)

type mainDeliveryHandler struct {
	game *gameDelivery.GameHandler
	bot  *botDelivery.BotHandler
	user *userDelivery.UserHandler
	play *playDelivery.PlayHandler
}

// either adapter is nil when its url is not configured
type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	defer logger.Sync() //nolint: errcheck

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	defer databaseAdapters.Close(context.Background())

	registry := bot.DefaultRegistry()
	if cfg.BotGrpcAddr != "" {
		grpcBots, err := grpc.NewClient(cfg.BotGrpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			logger.Fatal("Failed to create grpc client", zap.Error(err))
		}
		defer grpcBots.Close()

		client := ybot.NewBotServiceClient(grpcBots)
		for _, id := range cfg.RemoteBotIDs() {
			registry.WithBot(bot.NewRemoteBot(id, client))
		}
	}
	logger.Infof("bots available: %v", registry.Names())

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(*cfg, logger, registry, databaseAdapters)
	handlers.Router(r, cfg.IsLocalCors)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown server", zap.Error(err))
		}
	}()

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)

	r.Get("/status", handleStatus)
	r.Post("/createuser", h.user.CreateUser)

	r.Route("/{api_version}", func(r chi.Router) {
		r.Post("/game/move", h.game.HandleMove)
		r.Post("/game/new", h.game.HandleNewGame)
		r.Get("/game/play/{bot_id}", h.play.HandlePlay)
		r.Get("/game/{game_id}", h.game.HandleGetGame)
		r.Post("/ybot/choose/{bot_id}", h.bot.HandleChoose)
	})
}

func handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	result := &dataBaseAdapters{}

	if cfg.MongoUri != "" {
		mongoAdapter := adapters.NewAdapterMongo(cfg, log)
		if err := mongoAdapter.Init(ctx); err != nil {
			log.Fatal("Failed to initialize MongoDB", zap.Error(err))
		}
		result.mongoAdapter = mongoAdapter
	} else {
		log.Warn("MONGO_URI is empty, finished games and users are not persisted")
	}

	if cfg.RedisUrl != "" {
		redisAdapter := adapters.NewAdapterRedis(cfg, log)
		if err := redisAdapter.Init(ctx); err != nil {
			log.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		result.redisAdapter = redisAdapter
	} else {
		log.Warn("REDIS_URL is empty, game sessions are disabled")
	}

	return result
}

func (d *dataBaseAdapters) Close(ctx context.Context) {
	if d.mongoAdapter != nil {
		_ = d.mongoAdapter.Close(ctx)
	}
	if d.redisAdapter != nil {
		_ = d.redisAdapter.Close(ctx)
	}
}

func initializeDeliveryHandlers(
	cfg bootstrap.Config,
	log *zap.SugaredLogger,
	bots *bot.Registry,
	databaseAdapters *dataBaseAdapters,
) *mainDeliveryHandler {
	// interfaces stay nil unless the backing store exists
	var (
		sessions gameuc.SessionStore
		records  gameuc.RecordStore
		users    userUC.UserStorage
	)
	if databaseAdapters.redisAdapter != nil {
		ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
		sessions = repo.NewSessionRedisStorage(databaseAdapters.redisAdapter.GetClient(), ttl)
	}
	if databaseAdapters.mongoAdapter != nil {
		records = repo.NewGameRepository(log, databaseAdapters.mongoAdapter.Database)
		users = repo.NewMongoUserStorage(databaseAdapters.mongoAdapter.Database)
	}

	gameUC := gameuc.NewGameUseCase(sessions, records, bots, log, cfg.DefaultBoardSize)

	return &mainDeliveryHandler{
		game: gameDelivery.NewGameHandler(cfg, log, gameUC),
		bot:  botDelivery.NewBotHandler(cfg, log, gameUC),
		user: userDelivery.NewUserHandler(userUC.NewUserUsecaseHandler(users), log),
		play: playDelivery.NewPlayHandler(cfg, log, gameUC),
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
	time.Sleep(1 * time.Second)
}
