package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gamey/internal/domain/game"
	"gamey/internal/domain/gamey"
)

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) StoreSession(ctx context.Context, session game.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionStore) GetSession(ctx context.Context, gameID string) (game.Session, error) {
	args := m.Called(ctx, gameID)
	return args.Get(0).(game.Session), args.Error(1)
}

func (m *mockSessionStore) DeleteSession(ctx context.Context, gameID string) error {
	args := m.Called(ctx, gameID)
	return args.Error(0)
}

type mockRecordStore struct {
	mock.Mock
}

func (m *mockRecordStore) SaveGameRecord(ctx context.Context, record game.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type mockBotChooser struct {
	mock.Mock
}

func (m *mockBotChooser) Choose(ctx context.Context, name string, g *gamey.GameY) (gamey.Coordinates, error) {
	args := m.Called(ctx, name, g)
	return args.Get(0).(gamey.Coordinates), args.Error(1)
}
