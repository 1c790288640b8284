package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

type mockArchiveRepo struct {
	mock.Mock
}

func (that *mockArchiveRepo) Save(ctx context.Context, game *entity.Game, endedAt time.Time) error {
	args := that.Called(ctx, game, endedAt)
	return args.Error(0)
}

func (that *mockArchiveRepo) Stats(ctx context.Context) (*entity.Stats, error) {
	args := that.Called(ctx)
	stats, _ := args.Get(0).(*entity.Stats)
	return stats, args.Error(1)
}

type mockEvents struct {
	mock.Mock
}

func (that *mockEvents) Emit(ctx context.Context, eventType string, game *entity.Game, move *entity.Move) {
	that.Called(ctx, eventType, game, move)
}
