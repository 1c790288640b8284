package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

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
}

type handler func(ctx context.Context, conn *connection, msg *Message) error

type Server struct {
	logger      *slog.Logger
	gameService gameService
	upgrader    websocket.Upgrader

	handlers map[string]handler
}

func New(logger *slog.Logger, gameService gameService) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameService: gameService,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handler),
	}

	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:state"] = server.handleGameState
	server.handlers["game:turn"] = server.handleGameTurn
	server.handlers["game:undo"] = server.handleGameUndo
	server.handlers["game:restart"] = server.handleGameRestart
	server.handlers["game:hint"] = server.handleGameHint

	return server
}

// Handler - the /ws endpoint. Connections live until the client leaves or ctx is cancelled.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
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

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	wsConn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &connection{Conn: wsConn}
	defer conn.Close()

	// Unblocks ReadMessage on shutdown.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, body, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = conn.sendError("error", "invalid message"); err != nil {
				return err
			}
			continue
		}

		handle, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = conn.sendError(message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handle(ctx, conn, &message); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}
