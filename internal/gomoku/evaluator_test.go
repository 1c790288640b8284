package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func TestLineScore(t *testing.T) {
	want := map[int][3]int{
		0: {0, 0, 0},
		1: {10, 5, 0},
		2: {20, 15, 0},
		3: {40, 30, 0},
		4: {80, 80, 80},
		5: {80, 80, 80},
		8: {80, 80, 80},
	}

	for consecutive, scores := range want {
		for blocked, score := range scores {
			assert.Equal(t, score, lineScore(consecutive, blocked), "consecutive=%d blocked=%d", consecutive, blocked)
		}
	}
}

func TestScoreDirection(t *testing.T) {
	t.Run("Empty board scores nothing", func(t *testing.T) {
		var board entity.Board

		for _, dir := range Directions {
			assert.Zero(t, ScoreDirection(&board, 7, 7, dir[0], dir[1], entity.PlayerOne))
		}
	})

	t.Run("Open three", func(t *testing.T) {
		// Given: black (5,5)-(5,6)-(5,7) with both ends empty
		board := lineBoard(entity.PlayerOne, at(5, 5), at(5, 6), at(5, 7))

		// When: scoring (5,8) vertically for black
		score := ScoreDirection(board, 5, 8, 0, 1, entity.PlayerOne)

		// Then: it is an open three
		assert.Equal(t, 40, score)

		// And: the cross axes see nothing
		assert.Zero(t, ScoreDirection(board, 5, 8, 1, 0, entity.PlayerOne))
	})

	t.Run("Three blocked on one side", func(t *testing.T) {
		board := lineBoard(entity.PlayerOne, at(5, 5), at(5, 6), at(5, 7))
		board.Set(5, 4, entity.PlayerTwo)

		assert.Equal(t, 30, ScoreDirection(board, 5, 8, 0, 1, entity.PlayerOne))
	})

	t.Run("Three blocked on both sides is worthless", func(t *testing.T) {
		board := lineBoard(entity.PlayerOne, at(5, 5), at(5, 6), at(5, 7))
		board.Set(5, 4, entity.PlayerTwo)
		board.Set(5, 9, entity.PlayerTwo)

		assert.Zero(t, ScoreDirection(board, 5, 8, 0, 1, entity.PlayerOne))
	})

	t.Run("Board edge counts as a block", func(t *testing.T) {
		board := lineBoard(entity.PlayerOne, at(0, 0), at(0, 1))

		assert.Equal(t, 15, ScoreDirection(board, 0, 2, 0, 1, entity.PlayerOne))
	})

	t.Run("Stones on both sides add up", func(t *testing.T) {
		board := lineBoard(entity.PlayerOne, at(6, 7), at(8, 7))

		assert.Equal(t, 20, ScoreDirection(board, 7, 7, 1, 0, entity.PlayerOne))
		assert.Equal(t, 20, ScoreDirection(board, 7, 7, -1, 0, entity.PlayerOne))
	})

	t.Run("An empty cell ends the scan", func(t *testing.T) {
		board := lineBoard(entity.PlayerOne, at(5, 7))

		assert.Zero(t, ScoreDirection(board, 7, 7, 1, 0, entity.PlayerOne))
	})

	t.Run("Four scores highest even when blocked", func(t *testing.T) {
		board := lineBoard(entity.PlayerOne, at(3, 7), at(4, 7), at(5, 7), at(6, 7))
		board.Set(8, 7, entity.PlayerTwo)

		assert.Equal(t, 80, ScoreDirection(board, 7, 7, 1, 0, entity.PlayerOne))
	})

	t.Run("Opponent stones are blocks, not runs", func(t *testing.T) {
		board := lineBoard(entity.PlayerTwo, at(6, 7), at(8, 7))

		assert.Zero(t, ScoreDirection(board, 7, 7, 1, 0, entity.PlayerOne))
		assert.Equal(t, 20, ScoreDirection(board, 7, 7, 1, 0, entity.PlayerTwo))
	})
}
