package entity

import "time"

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"
)

type Game struct {
	ID        string    `json:"id"`
	Board     Board     `json:"board"`
	Turn      Cell      `json:"turn"`
	Status    string    `json:"status"`
	Winner    Cell      `json:"winner"`
	Moves     []Move    `json:"moves"`
	StartedAt time.Time `json:"started_at"`
}

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	Turn      Cell   `json:"turn"`
	Status    string `json:"status"`
	Winner    Cell   `json:"winner"`
	MoveCount int    `json:"move_count"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Turn:   PlayerOne,
		Status: StatusOngoing,
		Winner: Empty,
		Moves:  []Move{},
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsHumanTurn() bool {
	return that.Turn == HumanPlayer
}

func (that *Game) LastMove() (Move, bool) {
	if len(that.Moves) == 0 {
		return Move{}, false
	}

	return that.Moves[len(that.Moves)-1], true
}

func (that *Game) Snapshot() Snapshot {
	return Snapshot{
		Turn:      that.Turn,
		Status:    that.Status,
		Winner:    that.Winner,
		MoveCount: len(that.Moves),
	}
}

// Clone - returns a deep copy that shares nothing with the receiver.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Moves = append(make([]Move, 0, len(that.Moves)), that.Moves...)

	return &clone
}
