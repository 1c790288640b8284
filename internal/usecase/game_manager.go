package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/analytics"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type archiveRepo interface {
	Save(ctx context.Context, game *entity.Game, endedAt time.Time) error
	Stats(ctx context.Context) (*entity.Stats, error)
}

type eventEmitter interface {
	Emit(ctx context.Context, eventType string, game *entity.Game, move *entity.Move)
}

// engineOptions builds the strategies for one engine.
type engineOptions func() ([]gomoku.Option, error)

// GameManager runs human against AI games stored by id. Calls for the same game are serialised.
type GameManager struct {
	logger *slog.Logger

	gameRepo    gameRepo
	archiveRepo archiveRepo
	events      eventEmitter
	options     engineOptions

	locker *gameLocker
	now    func() time.Time
}

// NewGameManager - archiveRepo may be nil, in which case finished games are not archived.
func NewGameManager(
	logger *slog.Logger,
	gameRepo gameRepo,
	archiveRepo archiveRepo,
	events eventEmitter,
	settings gomoku.Settings,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "gameManager"),

		gameRepo:    gameRepo,
		archiveRepo: archiveRepo,
		events:      events,
		options:     settings.Options,

		locker: newGameLocker(),
		now:    time.Now,
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	opts, err := that.options()
	if err != nil {
		return nil, fmt.Errorf("failed to configure engine: %w", err)
	}

	game := gomoku.New(pkg.GenerateGameID(), opts...).Game()
	game.StartedAt = that.now().UTC()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.events.Emit(ctx, analytics.EventGameStart, game, nil)

	log.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the human's stone and, when the game goes on, the AI reply.
func (that *GameManager) MakeTurn(ctx context.Context, id string, column, row int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	unlock := that.locker.Lock(id)
	defer unlock()

	engine, err := that.loadEngine(ctx, id)
	if err != nil {
		return nil, err
	}

	// The stored game always waits for the human unless it is over.
	if status := engine.Status(); status.Status == entity.StatusOngoing && status.Turn != entity.HumanPlayer {
		return nil, apperror.ErrNotYourTurn
	}

	if err = engine.Place(column, row); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	game := engine.Game()
	humanMove, _ := game.LastMove()
	that.events.Emit(ctx, analytics.EventMove, game, &humanMove)

	if game.IsOngoing() {
		aiMove, err := engine.RequestAiMove()
		if err != nil {
			return nil, fmt.Errorf("failed to make ai turn: %w", err)
		}

		game = engine.Game()
		that.events.Emit(ctx, analytics.EventMove, game, &aiMove)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.finishGame(ctx, game)
	}

	log.Debug("turn made", "column", column, "row", row, "status", game.Status)

	return game, nil
}

func (that *GameManager) Undo(ctx context.Context, id string) (*entity.Game, error) {
	return that.update(ctx, "Undo", id, analytics.EventGameUndo, func(engine *gomoku.Engine) *entity.Game {
		engine.Undo()
		return engine.Game()
	})
}

// Restart - clears the board of an existing game and starts a new round under the same id.
func (that *GameManager) Restart(ctx context.Context, id string) (*entity.Game, error) {
	return that.update(ctx, "Restart", id, analytics.EventGameRestart, func(engine *gomoku.Engine) *entity.Game {
		engine.Restart()

		game := engine.Game()
		game.StartedAt = that.now().UTC()

		return game
	})
}

// Hint - suggests a cell for the human without changing the game.
func (that *GameManager) Hint(ctx context.Context, id string) (entity.Position, error) {
	engine, err := that.loadEngine(ctx, id)
	if err != nil {
		return entity.Position{}, err
	}

	cell, err := engine.HintCell()
	if err != nil {
		return entity.Position{}, fmt.Errorf("failed to get hint: %w", err)
	}

	return cell, nil
}

func (that *GameManager) Stats(ctx context.Context) (*entity.Stats, error) {
	if that.archiveRepo == nil {
		return nil, apperror.ErrArchiveDisabled
	}

	stats, err := that.archiveRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (that *GameManager) update(
	ctx context.Context, method, id, event string, apply func(engine *gomoku.Engine) *entity.Game,
) (*entity.Game, error) {
	log := that.logger.With("method", method, "gameID", id)

	unlock := that.locker.Lock(id)
	defer unlock()

	engine, err := that.loadEngine(ctx, id)
	if err != nil {
		return nil, err
	}

	game := apply(engine)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.events.Emit(ctx, event, game, nil)

	log.Debug("game updated", "moves", len(game.Moves))

	return game, nil
}

func (that *GameManager) loadEngine(ctx context.Context, id string) (*gomoku.Engine, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	opts, err := that.options()
	if err != nil {
		return nil, fmt.Errorf("failed to configure engine: %w", err)
	}

	engine, err := gomoku.Restore(game, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	return engine, nil
}

// finishGame - archiving is best effort; the finished game is already stored.
func (that *GameManager) finishGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	that.events.Emit(ctx, analytics.EventGameEnd, game, nil)

	if that.archiveRepo == nil {
		return
	}

	if err := that.archiveRepo.Save(ctx, game, that.now().UTC()); err != nil {
		log.Error("failed to archive game", "error", err)
		return
	}

	log.Info("game finished", "status", game.Status, "winner", game.Winner.String())
}
