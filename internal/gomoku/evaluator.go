package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

const fourScore = 80

// Scores for 1..3 existing stones, indexed by consecutive count.
var (
	openLineScores      = [4]int{0, 10, 20, 40}
	halfClosedLineScores = [4]int{0, 5, 15, 30}
)

// ScoreDirection - rates a stone of player at (column, row) along one axis.
// Up to four cells are scanned each way: own stones extend the run, an empty cell ends the
// scan open, an opponent stone or the board edge ends it blocked.
func ScoreDirection(board *entity.Board, column, row, dx, dy int, player entity.Cell) int {
	forward, forwardBlocked := scanLine(board, column, row, dx, dy, player)
	backward, backwardBlocked := scanLine(board, column, row, -dx, -dy, player)

	return lineScore(forward+backward, forwardBlocked+backwardBlocked)
}

func scanLine(board *entity.Board, column, row, dx, dy int, player entity.Cell) (int, int) {
	consecutive := 0
	for step := 1; step < winLength; step++ {
		x, y := column+step*dx, row+step*dy
		if !entity.InBounds(x, y) {
			return consecutive, 1
		}

		switch board.At(x, y) {
		case player:
			consecutive++
		case entity.Empty:
			return consecutive, 0
		default:
			return consecutive, 1
		}
	}

	return consecutive, 0
}

// lineScore - four or more existing stones complete five whatever the blocking.
func lineScore(consecutive, blocked int) int {
	switch {
	case consecutive >= winLength-1:
		return fourScore
	case consecutive == 0 || blocked >= 2:
		return 0
	case blocked == 1:
		return halfClosedLineScores[consecutive]
	default:
		return openLineScores[consecutive]
	}
}
