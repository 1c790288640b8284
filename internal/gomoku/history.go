package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Undo - takes back the human's last move together with the AI reply that followed it.
// When the AI has not replied yet only the human move is removed. The game is always
// handed back to the human in the ongoing state.
func Undo(game *entity.Game) {
	last, ok := game.LastMove()
	if !ok {
		return
	}

	popMove(game)
	if last.Player == entity.AIPlayer && len(game.Moves) > 0 {
		popMove(game)
	}

	game.Status = entity.StatusOngoing
	game.Winner = entity.Empty
	game.Turn = entity.HumanPlayer
}

func popMove(game *entity.Game) {
	last := game.Moves[len(game.Moves)-1]
	game.Moves = game.Moves[:len(game.Moves)-1]
	game.Board.Set(last.Column, last.Row, entity.Empty)
}

// Replay - rebuilds a game from its move log.
func Replay(id string, moves []entity.Move) (*entity.Game, error) {
	game := entity.NewGame(id)

	for i, move := range moves {
		if err := Place(game, move.Column, move.Row, move.Player); err != nil {
			return nil, fmt.Errorf("failed to replay move %d: %w", i+1, err)
		}
	}

	return game, nil
}
