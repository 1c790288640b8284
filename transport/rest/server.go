package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameService interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, column, row int) (*entity.Game, error)
	Undo(ctx context.Context, id string) (*entity.Game, error)
	Restart(ctx context.Context, id string) (*entity.Game, error)
	Hint(ctx context.Context, id string) (entity.Position, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type Server struct {
	logger      *slog.Logger
	gameService gameService
	router      *gin.Engine
}

func New(logger *slog.Logger, gameService gameService) *Server {
	gin.SetMode(gin.ReleaseMode)

	server := &Server{
		logger:      logger.With("component", "rest"),
		gameService: gameService,
		router:      gin.New(),
	}

	server.router.Use(gin.Recovery(), server.logRequest)

	server.router.GET("/ping", pingHandler)

	games := server.router.Group("/games")
	games.POST("", server.createGame)
	games.GET("/:id", server.getGame)
	games.POST("/:id/moves", server.makeTurn)
	games.POST("/:id/undo", server.undo)
	games.POST("/:id/restart", server.restart)
	games.GET("/:id/hint", server.hint)

	server.router.GET("/stats", server.stats)

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) logRequest(c *gin.Context) {
	start := time.Now()

	c.Next()

	that.logger.Debug("request handled",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}
