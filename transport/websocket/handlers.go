package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("column and row are required")
)

func (that *Server) handleNewGame(ctx context.Context, conn *connection, msg *Message) error {
	game, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return that.sendFailure(conn, msg.Action, err)
	}

	return conn.sendMessage(msg.Action, gamePayload(game))
}

func (that *Server) handleGameState(ctx context.Context, conn *connection, msg *Message) error {
	return that.withGameID(conn, msg, func(req RequestPayload) error {
		game, err := that.gameService.GetGame(ctx, req.GameID)
		if err != nil {
			return that.sendFailure(conn, msg.Action, err)
		}

		return conn.sendMessage(msg.Action, gamePayload(game))
	})
}

func (that *Server) handleGameTurn(ctx context.Context, conn *connection, msg *Message) error {
	return that.withGameID(conn, msg, func(req RequestPayload) error {
		if req.Column == nil || req.Row == nil {
			return conn.sendError(msg.Action, errCellRequired.Error())
		}

		game, err := that.gameService.MakeTurn(ctx, req.GameID, *req.Column, *req.Row)
		if err != nil {
			return that.sendFailure(conn, msg.Action, err)
		}

		return conn.sendMessage(msg.Action, gamePayload(game))
	})
}

func (that *Server) handleGameUndo(ctx context.Context, conn *connection, msg *Message) error {
	return that.withGameID(conn, msg, func(req RequestPayload) error {
		game, err := that.gameService.Undo(ctx, req.GameID)
		if err != nil {
			return that.sendFailure(conn, msg.Action, err)
		}

		return conn.sendMessage(msg.Action, gamePayload(game))
	})
}

func (that *Server) handleGameRestart(ctx context.Context, conn *connection, msg *Message) error {
	return that.withGameID(conn, msg, func(req RequestPayload) error {
		game, err := that.gameService.Restart(ctx, req.GameID)
		if err != nil {
			return that.sendFailure(conn, msg.Action, err)
		}

		return conn.sendMessage(msg.Action, gamePayload(game))
	})
}

func (that *Server) handleGameHint(ctx context.Context, conn *connection, msg *Message) error {
	return that.withGameID(conn, msg, func(req RequestPayload) error {
		cell, err := that.gameService.Hint(ctx, req.GameID)
		if err != nil {
			return that.sendFailure(conn, msg.Action, err)
		}

		return conn.sendMessage(msg.Action, ResponsePayload{Hint: &cell})
	})
}

// withGameID - decodes the payload and rejects requests that name no game.
func (that *Server) withGameID(conn *connection, msg *Message, next func(req RequestPayload) error) error {
	var req RequestPayload
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return conn.sendError(msg.Action, "invalid payload")
	}

	if req.GameID == "" {
		return conn.sendError(msg.Action, errGameIDRequired.Error())
	}

	return next(req)
}

// sendFailure - game rule rejections go back to the client as is; anything else is logged and hidden.
func (that *Server) sendFailure(conn *connection, action string, err error) error {
	if isRejection(err) {
		return conn.sendError(action, err.Error())
	}

	that.logger.Error("failed to process message", "action", action, "error", err)

	return conn.sendError(action, http.StatusText(http.StatusInternalServerError))
}

func isRejection(err error) bool {
	for _, target := range []error{
		apperror.ErrGameNotFound,
		apperror.ErrOutOfBounds,
		apperror.ErrCellOccupied,
		apperror.ErrNotYourTurn,
		apperror.ErrGameAlreadyOver,
		apperror.ErrNoLegalMoves,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
