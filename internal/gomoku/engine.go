package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Engine owns one game and the strategies that play and advise in it.
// It is not safe for concurrent use.
type Engine struct {
	game *entity.Game

	rnd  Random
	ai   Strategy
	hint Strategy
}

type Option func(*Engine)

func WithRandom(rnd Random) Option {
	return func(engine *Engine) {
		engine.rnd = rnd
	}
}

func WithAIStrategy(strategy Strategy) Option {
	return func(engine *Engine) {
		engine.ai = strategy
	}
}

func WithHintStrategy(strategy Strategy) Option {
	return func(engine *Engine) {
		engine.hint = strategy
	}
}

// New - starts an engine on an empty board. Without options the AI is heuristic and
// hints are random.
func New(id string, opts ...Option) *Engine {
	engine := &Engine{game: entity.NewGame(id)}

	for _, opt := range opts {
		opt(engine)
	}

	if engine.rnd == nil {
		engine.rnd = NewRandom(0)
	}

	if engine.ai == nil {
		engine.ai = NewHeuristicStrategy(engine.rnd)
	}

	if engine.hint == nil {
		engine.hint = NewRandomStrategy(engine.rnd)
	}

	return engine
}

// Restore - resumes a stored game. The board is rebuilt from the move log.
func Restore(game *entity.Game, opts ...Option) (*Engine, error) {
	replayed, err := Replay(game.ID, game.Moves)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game %s: %w", game.ID, err)
	}

	replayed.StartedAt = game.StartedAt

	engine := New(game.ID, opts...)
	engine.game = replayed

	return engine, nil
}

// Place - puts a stone for whoever is to move.
func (that *Engine) Place(column, row int) error {
	return Place(that.game, column, row, that.game.Turn)
}

// RequestAiMove - lets the AI strategy choose and play its move.
func (that *Engine) RequestAiMove() (entity.Move, error) {
	if that.game.Board.IsFull() {
		return entity.Move{}, apperror.ErrNoLegalMoves
	}

	if that.game.IsFinished() {
		return entity.Move{}, apperror.ErrGameAlreadyOver
	}

	if that.game.Turn != entity.AIPlayer {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	cell, err := that.ai.SelectMove(that.game.Board, entity.AIPlayer)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	if err = that.Place(cell.Column, cell.Row); err != nil {
		return entity.Move{}, fmt.Errorf("failed to play selected move: %w", err)
	}

	return entity.Move{Column: cell.Column, Row: cell.Row, Player: entity.AIPlayer}, nil
}

// HintCell - suggests a cell to the human. Only offered while the human is to move.
func (that *Engine) HintCell() (entity.Position, error) {
	if that.game.Board.IsFull() {
		return entity.Position{}, apperror.ErrNoLegalMoves
	}

	if that.game.IsFinished() {
		return entity.Position{}, apperror.ErrGameAlreadyOver
	}

	if !that.game.IsHumanTurn() {
		return entity.Position{}, apperror.ErrNotYourTurn
	}

	cell, err := that.hint.SelectMove(that.game.Board, entity.HumanPlayer)
	if err != nil {
		return entity.Position{}, fmt.Errorf("failed to select hint: %w", err)
	}

	return cell, nil
}

func (that *Engine) Undo() {
	Undo(that.game)
}

func (that *Engine) Restart() {
	Restart(that.game)
}

func (that *Engine) Status() entity.Snapshot {
	return that.game.Snapshot()
}

// Game - returns a copy of the current game for storage or transport.
func (that *Engine) Game() *entity.Game {
	return that.game.Clone()
}
