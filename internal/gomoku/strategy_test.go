package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func TestHeuristicStrategy_Candidates(t *testing.T) {
	t.Run("Centre is the only best cell on an empty board", func(t *testing.T) {
		// Given: a heuristic without jitter
		strategy := NewHeuristicStrategy(seeded(1))
		strategy.Jitter = 0

		// When: collecting the best cells of an empty board
		score, best, err := strategy.Candidates(entity.Board{}, entity.AIPlayer)
		require.NoError(t, err)

		// Then: only the centre gets the full centrality bonus
		assert.Equal(t, []entity.Position{at(7, 7)}, best)
		assert.InDelta(t, CentralityWeight, score, 1e-9)
	})

	t.Run("Orthogonal neighbours of a lone stone tie", func(t *testing.T) {
		// Given: a single human stone in the centre
		var board entity.Board
		board.Set(7, 7, entity.HumanPlayer)

		strategy := NewHeuristicStrategy(seeded(1))
		strategy.Jitter = 0

		// When: collecting the AI's best cells
		_, best, err := strategy.Candidates(board, entity.AIPlayer)
		require.NoError(t, err)

		// Then: the four orthogonal neighbours share the top score in row-major order
		assert.Equal(t, []entity.Position{at(7, 6), at(6, 7), at(8, 7), at(7, 8)}, best)
	})

	t.Run("Full board has no candidates", func(t *testing.T) {
		strategy := NewHeuristicStrategy(seeded(1))

		_, best, err := strategy.Candidates(fullBoard(), entity.AIPlayer)

		require.ErrorIs(t, err, apperror.ErrNoLegalMoves)
		assert.Empty(t, best)
	})
}

func TestHeuristicStrategy_SelectMove(t *testing.T) {
	t.Run("Seeded pick comes from the tie set", func(t *testing.T) {
		var board entity.Board
		board.Set(7, 7, entity.HumanPlayer)

		strategy := NewHeuristicStrategy(seeded(3))
		strategy.Jitter = 0

		cell, err := strategy.SelectMove(board, entity.AIPlayer)
		require.NoError(t, err)

		assert.Contains(t, []entity.Position{at(7, 6), at(6, 7), at(8, 7), at(7, 8)}, cell)
	})

	t.Run("Same seed gives the same move", func(t *testing.T) {
		var board entity.Board
		board.Set(7, 7, entity.HumanPlayer)
		board.Set(8, 8, entity.AIPlayer)
		board.Set(6, 8, entity.HumanPlayer)

		first, err := NewHeuristicStrategy(seeded(99)).SelectMove(board, entity.AIPlayer)
		require.NoError(t, err)
		second, err := NewHeuristicStrategy(seeded(99)).SelectMove(board, entity.AIPlayer)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Completes its own five", func(t *testing.T) {
		// Given: the AI holds an open four, the human has scattered stones
		board := lineBoard(entity.AIPlayer, at(3, 3), at(4, 3), at(5, 3), at(6, 3))
		for _, cell := range []entity.Position{at(3, 10), at(5, 10), at(7, 10), at(9, 10)} {
			board.Set(cell.Column, cell.Row, entity.HumanPlayer)
		}

		// When: the AI chooses
		cell, err := NewHeuristicStrategy(seeded(5)).SelectMove(*board, entity.AIPlayer)
		require.NoError(t, err)

		// Then: the move makes five
		board.Set(cell.Column, cell.Row, entity.AIPlayer)
		assert.True(t, CheckWin(board, cell.Column, cell.Row, entity.AIPlayer))
	})

	t.Run("Blocks the opponent's five", func(t *testing.T) {
		// Given: the human holds an open four and the AI has nothing
		board := lineBoard(entity.HumanPlayer, at(3, 3), at(4, 3), at(5, 3), at(6, 3))
		for _, cell := range []entity.Position{at(0, 14), at(2, 14), at(4, 14)} {
			board.Set(cell.Column, cell.Row, entity.AIPlayer)
		}

		// When: the AI chooses
		cell, err := NewHeuristicStrategy(seeded(5)).SelectMove(*board, entity.AIPlayer)
		require.NoError(t, err)

		// Then: it takes one end of the four
		assert.Contains(t, []entity.Position{at(2, 3), at(7, 3)}, cell)
	})

	t.Run("Selection leaves the board untouched", func(t *testing.T) {
		board := lineBoard(entity.HumanPlayer, at(5, 5), at(5, 6), at(5, 7))
		before := *board

		_, err := NewHeuristicStrategy(seeded(5)).SelectMove(*board, entity.AIPlayer)
		require.NoError(t, err)

		assert.Equal(t, before, *board)
	})
}

func TestHeuristicStrategy_Score(t *testing.T) {
	t.Run("Open three threat outranks an unrelated cell", func(t *testing.T) {
		// Given: black open three (5,5)-(5,6)-(5,7) with (5,4) and (5,8) empty
		board := lineBoard(entity.PlayerOne, at(5, 5), at(5, 6), at(5, 7))

		// When: computing the opponent-threat term for the AI
		threat := func(cell entity.Position) int {
			total := 0
			for _, dir := range Directions {
				total += ScoreDirection(board, cell.Column, cell.Row, dir[0], dir[1], entity.PlayerOne)
			}
			return total
		}

		// Then: (5,8) carries the threat and a far cell does not
		assert.Greater(t, threat(at(5, 8)), threat(at(12, 1)))

		strategy := NewHeuristicStrategy(seeded(1))
		assert.Greater(t, strategy.Score(*board, at(5, 8), entity.PlayerTwo), strategy.Score(*board, at(12, 1), entity.PlayerTwo))
	})

	t.Run("Win and block bonuses", func(t *testing.T) {
		board := lineBoard(entity.PlayerTwo, at(3, 3), at(4, 3), at(5, 3), at(6, 3))
		strategy := NewHeuristicStrategy(seeded(1))

		own := strategy.Score(*board, at(7, 3), entity.PlayerTwo)
		blocking := strategy.Score(*board, at(7, 3), entity.PlayerOne)

		// own: win + four; blocking: block + weighted four
		assert.InDelta(t, WinBonus+fourScore+centrality(at(7, 3)), own, 1e-9)
		assert.InDelta(t, BlockBonus+ThreatWeight*fourScore+centrality(at(7, 3)), blocking, 1e-9)
	})

	t.Run("Centrality decreases outwards", func(t *testing.T) {
		assert.InDelta(t, CentralityWeight, centrality(at(7, 7)), 1e-9)
		assert.Greater(t, centrality(at(7, 8)), centrality(at(8, 9)))
		assert.Greater(t, centrality(at(0, 0)), 0.0)
	})
}

func TestRandomStrategy(t *testing.T) {
	t.Run("Picks an empty cell", func(t *testing.T) {
		board := fullBoard()
		board.Set(3, 9, entity.Empty)

		cell, err := NewRandomStrategy(seeded(1)).SelectMove(board, entity.AIPlayer)
		require.NoError(t, err)

		assert.Equal(t, at(3, 9), cell)
	})

	t.Run("Full board", func(t *testing.T) {
		_, err := NewRandomStrategy(seeded(1)).SelectMove(fullBoard(), entity.AIPlayer)

		assert.ErrorIs(t, err, apperror.ErrNoLegalMoves)
	})
}

func TestNewStrategy(t *testing.T) {
	heuristic, err := NewStrategy(StrategyHeuristic, seeded(1), 0.5)
	require.NoError(t, err)
	assert.IsType(t, &HeuristicStrategy{}, heuristic)
	assert.InDelta(t, 0.5, heuristic.(*HeuristicStrategy).Jitter, 1e-9)

	random, err := NewStrategy(StrategyRandom, seeded(1), 0)
	require.NoError(t, err)
	assert.IsType(t, &RandomStrategy{}, random)

	_, err = NewStrategy("minimax", seeded(1), 0)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
