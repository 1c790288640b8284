package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// ArchiveRepository keeps finished games for statistics.
type ArchiveRepository interface {
	Save(ctx context.Context, game *entity.Game, endedAt time.Time) error
	Stats(ctx context.Context) (*entity.Stats, error)
}

type dbArchive struct {
	pool *pgxpool.Pool
}

func NewArchiveRepository(pool *pgxpool.Pool) ArchiveRepository {
	return &dbArchive{
		pool: pool,
	}
}

// Save - upserts by game and round start, so a round undone and finished again keeps only its last
// outcome while a restarted game is archived as a new round.
func (that *dbArchive) Save(ctx context.Context, game *entity.Game, endedAt time.Time) error {
	moves, err := json.Marshal(game.Moves)
	if err != nil {
		return fmt.Errorf("could not marshal moves: %w", err)
	}

	query := `
		INSERT INTO games (id, status, winner, move_count, moves, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id, started_at) DO UPDATE SET
			status     = EXCLUDED.status,
			winner     = EXCLUDED.winner,
			move_count = EXCLUDED.move_count,
			moves      = EXCLUDED.moves,
			ended_at   = EXCLUDED.ended_at
	`

	_, err = that.pool.Exec(ctx, query,
		game.ID, game.Status, int16(game.Winner), len(game.Moves), moves, game.StartedAt, endedAt)
	if err != nil {
		return fmt.Errorf("can't save game: %w", err)
	}

	return nil
}

func (that *dbArchive) Stats(ctx context.Context) (*entity.Stats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $1 AND winner = $2),
			COUNT(*) FILTER (WHERE status = $1 AND winner = $3),
			COUNT(*) FILTER (WHERE status = $4),
			COUNT(*)
		FROM games
	`

	var stats entity.Stats

	err := that.pool.QueryRow(ctx, query,
		entity.StatusWon, int16(entity.HumanPlayer), int16(entity.AIPlayer), entity.StatusDrawn,
	).Scan(&stats.HumanWins, &stats.AIWins, &stats.Draws, &stats.Total)
	if err != nil {
		return nil, fmt.Errorf("can't query stats: %w", err)
	}

	return &stats, nil
}
