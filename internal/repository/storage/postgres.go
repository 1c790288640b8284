package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStorage struct {
	Pool *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &PostgresStorage{Pool: pool}, nil
}

// Init - creates the archive schema if it does not exist yet.
func (that *PostgresStorage) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS games (
			id         TEXT NOT NULL,
			status     TEXT NOT NULL,
			winner     SMALLINT NOT NULL DEFAULT 0,
			move_count INTEGER NOT NULL,
			moves      JSONB NOT NULL,
			started_at TIMESTAMPTZ NOT NULL,
			ended_at   TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (id, started_at)
		);
		CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at);
	`

	if _, err := that.Pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *PostgresStorage) Close() {
	that.Pool.Close()
}
