package gomoku

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// patternCell - colours a board so that no line ever holds more than two equal stones.
func patternCell(column, row int) entity.Cell {
	if (column/2+row)%2 == 0 {
		return entity.PlayerOne
	}
	return entity.PlayerTwo
}

func fullBoard() entity.Board {
	var board entity.Board
	for row := 0; row < entity.BoardSize; row++ {
		for column := 0; column < entity.BoardSize; column++ {
			board.Set(column, row, patternCell(column, row))
		}
	}
	return board
}

func placeAll(t *testing.T, game *entity.Game, moves ...entity.Move) {
	t.Helper()

	for _, move := range moves {
		require.NoError(t, Place(game, move.Column, move.Row, move.Player))
	}
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // tests
}

func stones(board *entity.Board) int {
	count := 0
	for row := range board {
		for _, cell := range board[row] {
			if cell != entity.Empty {
				count++
			}
		}
	}
	return count
}

// nextPatternCell - the first empty cell whose pattern colour matches the player to move.
func nextPatternCell(game *entity.Game) (entity.Position, bool) {
	for _, cell := range game.Board.EmptyCells() {
		if patternCell(cell.Column, cell.Row) == game.Turn {
			return cell, true
		}
	}
	return entity.Position{}, false
}

func at(column, row int) entity.Position {
	return entity.Position{Column: column, Row: row}
}
