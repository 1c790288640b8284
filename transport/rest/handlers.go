package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var errInvalidBody = errors.New("body must be {\"column\": int, \"row\": int}")

type turnRequest struct {
	Column *int `json:"column" binding:"required"`
	Row    *int `json:"row" binding:"required"`
}

type gameResponse struct {
	Game     *entity.Game    `json:"game"`
	Snapshot entity.Snapshot `json:"snapshot"`
}

type hintResponse struct {
	Hint entity.Position `json:"hint"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) createGame(c *gin.Context) {
	game, err := that.gameService.CreateGame(c.Request.Context())
	if err != nil {
		that.abort(c, "createGame", err)
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

func (that *Server) getGame(c *gin.Context) {
	game, err := that.gameService.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.abort(c, "getGame", err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

func (that *Server) makeTurn(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: errInvalidBody.Error()})
		return
	}

	game, err := that.gameService.MakeTurn(c.Request.Context(), c.Param("id"), *req.Column, *req.Row)
	if err != nil {
		that.abort(c, "makeTurn", err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

func (that *Server) undo(c *gin.Context) {
	game, err := that.gameService.Undo(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.abort(c, "undo", err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

func (that *Server) restart(c *gin.Context) {
	game, err := that.gameService.Restart(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.abort(c, "restart", err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

func (that *Server) hint(c *gin.Context) {
	cell, err := that.gameService.Hint(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.abort(c, "hint", err)
		return
	}

	c.JSON(http.StatusOK, hintResponse{Hint: cell})
}

func (that *Server) stats(c *gin.Context) {
	stats, err := that.gameService.Stats(c.Request.Context())
	if err != nil {
		that.abort(c, "stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// abort - rejected moves are client errors; anything unrecognised is logged and hidden.
func (that *Server) abort(c *gin.Context, method string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		c.JSON(status, errorResponse{Error: http.StatusText(status)})
		return
	}

	c.JSON(status, errorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameAlreadyOver),
		errors.Is(err, apperror.ErrNoLegalMoves):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrArchiveDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func newGameResponse(game *entity.Game) gameResponse {
	return gameResponse{Game: game, Snapshot: game.Snapshot()}
}
