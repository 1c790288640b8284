package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

const winLength = 5

// Directions are the four axes as (dx, dy): horizontal, vertical and both diagonals.
// Each axis is scanned both ways, so the opposite vectors are not listed.
var Directions = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// CheckWin - reports whether the stone of player at (column, row) is part of five or more in a row.
// The cell must already hold player's stone; nothing is placed here.
func CheckWin(board *entity.Board, column, row int, player entity.Cell) bool {
	for _, dir := range Directions {
		count := 1
		count += countRun(board, column, row, dir[0], dir[1], player)
		count += countRun(board, column, row, -dir[0], -dir[1], player)

		if count >= winLength {
			return true
		}
	}

	return false
}

// countRun - counts player's stones next to (column, row) walking along (dx, dy).
func countRun(board *entity.Board, column, row, dx, dy int, player entity.Cell) int {
	count := 0
	for step := 1; step < winLength; step++ {
		x, y := column+step*dx, row+step*dy
		if !entity.InBounds(x, y) || board.At(x, y) != player {
			break
		}
		count++
	}

	return count
}
