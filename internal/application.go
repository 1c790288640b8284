package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomoku-backend/internal/analytics"
	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/rest"
	"github.com/rocketscienceinc/gomoku-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	settings := gomoku.Settings{
		AIStrategy:   conf.Engine.AIStrategy,
		HintStrategy: conf.Engine.HintStrategy,
		Seed:         conf.Engine.Seed,
		Jitter:       conf.Engine.Jitter,
	}

	// fail fast on a misspelled strategy
	if _, err := settings.Options(); err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	archiveRepo, closeArchive, err := initArchive(ctx, log, conf.Postgres)
	if err != nil {
		return err
	}
	defer closeArchive()

	producer := analytics.NewProducer(logger, conf.Kafka.BrokerList(), conf.Kafka.Topic)
	defer func() {
		if err = producer.Close(); err != nil {
			log.Error("could not close analytics producer", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL)
	gameUseCase := usecase.NewGameManager(logger, gameRepo, archiveRepo, producer, settings)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gameUseCase)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// initArchive - the archive is optional; without a DSN finished games are not kept.
func initArchive(ctx context.Context, log *slog.Logger, conf config.Postgres) (repository.ArchiveRepository, func(), error) {
	if conf.DSN == "" {
		log.Warn("postgres dsn is empty, game archive disabled")
		return nil, func() {}, nil
	}

	postgresStorage, err := storage.NewPostgresStorage(ctx, conf.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
	}

	if err = postgresStorage.Init(ctx); err != nil {
		postgresStorage.Close()
		return nil, nil, fmt.Errorf("could not init postgres storage: %w", err)
	}

	return repository.NewArchiveRepository(postgresStorage.Pool), postgresStorage.Close, nil
}
