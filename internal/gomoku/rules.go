package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Place - puts player's stone at (column, row) and settles the game status.
// A rejected placement leaves the game untouched.
func Place(game *entity.Game, column, row int, player entity.Cell) error {
	if game.IsFinished() {
		return apperror.ErrGameAlreadyOver
	}

	if err := validateMove(game, column, row, player); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	game.Board.Set(column, row, player)
	game.Moves = append(game.Moves, entity.Move{Column: column, Row: row, Player: player})

	updateGameStatus(game, column, row, player)

	return nil
}

// Restart - resets the game to the canonical empty position. ID and start time are kept.
func Restart(game *entity.Game) {
	game.Board = entity.Board{}
	game.Turn = entity.PlayerOne
	game.Status = entity.StatusOngoing
	game.Winner = entity.Empty
	game.Moves = []entity.Move{}
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, column, row int, player entity.Cell) error {
	if !entity.InBounds(column, row) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, column, row)
	}

	if !game.Board.IsEmpty(column, row) {
		return apperror.ErrCellOccupied
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, column, row int, player entity.Cell) {
	switch {
	case CheckWin(&game.Board, column, row, player):
		game.Status = entity.StatusWon
		game.Winner = player
	case game.Board.IsFull():
		game.Status = entity.StatusDrawn
	default:
		game.Turn = player.Opponent()
	}
}
