package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gamey/internal/domain/user"
	errs "gamey/internal/errors"
)

const usersCollection = "users"

type MongoUserStorage struct {
	mongo *mongo.Database
}

func NewMongoUserStorage(mongo *mongo.Database) *MongoUserStorage {
	return &MongoUserStorage{mongo: mongo}
}

func (m *MongoUserStorage) GetUser(ctx context.Context, username string) (user.User, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := m.mongo.Collection(usersCollection)
	filter := bson.D{{Key: "username", Value: username}}

	var result user.User
	err := collection.FindOne(ctx, filter).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, false, nil
	} else if err != nil {
		return user.User{}, false, err
	}
	return result, true, nil
}

func (m *MongoUserStorage) CreateUser(ctx context.Context, username string) (user.User, error) {
	_, found, err := m.GetUser(ctx, username)
	if err != nil {
		return user.User{}, err
	}
	if found {
		return user.User{}, errs.ErrUserExists
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	newUser := user.User{
		Username:  username,
		CreatedAt: time.Now(),
	}
	res, err := m.mongo.Collection(usersCollection).InsertOne(ctx, newUser)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		newUser.ID = id.Hex()
	}
	return newUser, nil
}
