package user

import (
	"context"
	"fmt"
	"strings"

	userDomain "gamey/internal/domain/user"
	errs "gamey/internal/errors"
)

type UserStorage interface {
	CreateUser(ctx context.Context, username string) (userDomain.User, error)
}

type UserUsecaseHandler struct {
	userStorage UserStorage
}

// NewUserUsecaseHandler accepts a nil storage when Mongo is not configured.
func NewUserUsecaseHandler(u UserStorage) *UserUsecaseHandler {
	return &UserUsecaseHandler{
		userStorage: u,
	}
}

// returns ErrEmptyUsername, ErrUserExists, ErrStorageDisabled or a storage error
func (u *UserUsecaseHandler) CreateUser(ctx context.Context, req userDomain.CreateUserRequest) (userDomain.CreateUserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return userDomain.CreateUserResponse{}, errs.ErrEmptyUsername
	}
	if u.userStorage == nil {
		return userDomain.CreateUserResponse{}, errs.ErrStorageDisabled
	}

	created, err := u.userStorage.CreateUser(ctx, username)
	if err != nil {
		return userDomain.CreateUserResponse{}, err
	}
	return userDomain.CreateUserResponse{
		Message: fmt.Sprintf("User %s created successfully!", created.Username),
	}, nil
}
