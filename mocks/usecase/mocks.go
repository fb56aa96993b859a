package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/connect4-bot/internal/entity"
)

type MockGameClient struct {
	mock.Mock
}

func NewMockGameClient(t mock.TestingT) *MockGameClient {
	m := &MockGameClient{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}

	return m
}

func (m *MockGameClient) Register(ctx context.Context, creds entity.Credentials) (uuid.UUID, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGameClient) NewGame(ctx context.Context, playerID uuid.UUID) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockGameClient) GetGameState(ctx context.Context, playerID uuid.UUID) (*entity.Game, error) {
	args := m.Called(ctx, playerID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *MockGameClient) MakeMove(ctx context.Context, playerID uuid.UUID, password string, column int) error {
	args := m.Called(ctx, playerID, password, column)
	return args.Error(0)
}

type MockMoveSelector struct {
	mock.Mock
}

func NewMockMoveSelector(t mock.TestingT) *MockMoveSelector {
	m := &MockMoveSelector{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}

	return m
}

func (m *MockMoveSelector) NextMove(game *entity.Game) int {
	args := m.Called(game)
	return args.Int(0)
}

type MockGameJournal struct {
	mock.Mock
}

func NewMockGameJournal(t mock.TestingT) *MockGameJournal {
	m := &MockGameJournal{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}

	return m
}

func (m *MockGameJournal) Append(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}
