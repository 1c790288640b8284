package entity

const BoardSize = 15

// Position addresses an intersection by column (x) and row (y).
type Position struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// Move is a stone placed by a player. Moves are never mutated once recorded.
type Move struct {
	Column int  `json:"column"`
	Row    int  `json:"row"`
	Player Cell `json:"player"`
}

func (that Move) Position() Position {
	return Position{Column: that.Column, Row: that.Row}
}

// Board is indexed [row][column]. It is a value type: assigning it copies every cell.
type Board [BoardSize][BoardSize]Cell

func InBounds(column, row int) bool {
	return column >= 0 && column < BoardSize && row >= 0 && row < BoardSize
}

func (that *Board) At(column, row int) Cell {
	return that[row][column]
}

func (that *Board) Set(column, row int, cell Cell) {
	that[row][column] = cell
}

func (that *Board) IsEmpty(column, row int) bool {
	return InBounds(column, row) && that[row][column] == Empty
}

// EmptyCells - returns every empty intersection in row-major order.
func (that *Board) EmptyCells() []Position {
	cells := make([]Position, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for column := 0; column < BoardSize; column++ {
			if that[row][column] == Empty {
				cells = append(cells, Position{Column: column, Row: row})
			}
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for row := range that {
		for _, cell := range that[row] {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}
