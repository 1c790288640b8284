package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	EventGameStart   = "game.start"
	EventMove        = "move"
	EventGameUndo    = "game.undo"
	EventGameRestart = "game.restart"
	EventGameEnd     = "game.end"
)

const writeTimeout = 2 * time.Second

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Event is the JSON document published for every game action.
type Event struct {
	Type      string       `json:"event"`
	GameID    string       `json:"game_id"`
	Move      *entity.Move `json:"move,omitempty"`
	Status    string       `json:"status,omitempty"`
	Winner    *entity.Cell `json:"winner,omitempty"`
	MoveCount int          `json:"move_count"`
	Timestamp time.Time    `json:"ts"`
}

// Producer publishes game events to Kafka. A nil writer turns it into a no-op.
type Producer struct {
	logger *slog.Logger
	writer writer
	now    func() time.Time
}

func NewProducer(logger *slog.Logger, brokers []string, topic string) *Producer {
	if len(brokers) == 0 {
		return NewNopProducer(logger)
	}

	return newProducer(logger, &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	})
}

func NewNopProducer(logger *slog.Logger) *Producer {
	return newProducer(logger, nil)
}

func newProducer(logger *slog.Logger, w writer) *Producer {
	return &Producer{
		logger: logger.With("component", "analytics"),
		writer: w,
		now:    time.Now,
	}
}

func (that *Producer) Enabled() bool {
	return that.writer != nil
}

// Emit - publishes an event keyed by game so a game's events stay ordered. Failures are logged, never returned.
func (that *Producer) Emit(ctx context.Context, eventType string, game *entity.Game, move *entity.Move) {
	if !that.Enabled() {
		return
	}

	log := that.logger.With("method", "Emit", "event", eventType, "gameID", game.ID)

	event := Event{
		Type:      eventType,
		GameID:    game.ID,
		Move:      move,
		Status:    game.Status,
		MoveCount: len(game.Moves),
		Timestamp: that.now().UTC(),
	}

	if eventType == EventGameEnd {
		winner := game.Winner
		event.Winner = &winner
	}

	value, err := json.Marshal(event)
	if err != nil {
		log.Error("failed to marshal event", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err = that.writer.WriteMessages(ctx, kafka.Message{Key: []byte(game.ID), Value: value}); err != nil {
		log.Error("failed to write event", "error", err)
	}
}

func (that *Producer) Close() error {
	if !that.Enabled() {
		return nil
	}

	if err := that.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}
