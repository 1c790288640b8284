package apperror

import "errors"

var (
	ErrOutOfBounds     = errors.New("cell is out of bounds")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrNoLegalMoves    = errors.New("no legal moves left")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrGameNotFound    = errors.New("game not found")
)

var ErrArchiveDisabled = errors.New("game archive is not configured")
