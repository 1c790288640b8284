package entity

// Cell is the occupancy of a single intersection. The same values identify players.
type Cell int8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// The human always plays black and moves first.
const (
	HumanPlayer = PlayerOne
	AIPlayer    = PlayerTwo
)

// Opponent - returns the other player. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

func (that Cell) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

func (that Cell) String() string {
	switch that {
	case PlayerOne:
		return "black"
	case PlayerTwo:
		return "white"
	default:
		return "empty"
	}
}
