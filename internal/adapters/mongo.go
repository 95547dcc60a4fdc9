package adapters

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"gamey/internal/bootstrap"
)

type AdapterMongo struct {
	Client   *mongo.Client
	Database *mongo.Database
	cfg      *bootstrap.Config
	log      *zap.SugaredLogger
}

func NewAdapterMongo(cfg *bootstrap.Config, log *zap.SugaredLogger) *AdapterMongo {
	return &AdapterMongo{
		cfg: cfg,
		log: log,
	}
}

func (a *AdapterMongo) Init(ctx context.Context) error {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOpts := options.Client().ApplyURI(a.cfg.MongoUri).SetServerAPIOptions(serverAPI)

	ctxConnect, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctxConnect, clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err = client.Database("admin").RunCommand(ctxConnect, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	a.Client = client
	a.Database = client.Database(a.cfg.MongoDatabase)

	a.log.Infof("connected to MongoDB database %s", a.cfg.MongoDatabase)
	return nil
}

func (a *AdapterMongo) Close(ctx context.Context) error {
	if a.Client != nil {
		return a.Client.Disconnect(ctx)
	}
	return nil
}
