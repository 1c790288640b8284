package gomoku

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	StrategyHeuristic = "heuristic"
	StrategyRandom    = "random"
)

// Heuristic weights.
const (
	WinBonus         = 100.0
	BlockBonus       = 90.0
	ThreatWeight     = 0.8
	CentralityWeight = 5.0
	DefaultJitter    = 2.0
)

var ErrUnknownStrategy = errors.New("unknown strategy")

var (
	boardCenter = entity.BoardSize / 2
	maxDistance = math.Sqrt(2*entity.BoardSize*entity.BoardSize) / 2
)

// Random is the randomness source used for jitter and tie-breaking. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// NewRandom - returns a seeded source; seed 0 seeds from the clock.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint: gosec // game randomness
}

// Strategy picks a cell for player. The board is passed by value and never written back.
type Strategy interface {
	SelectMove(board entity.Board, player entity.Cell) (entity.Position, error)
}

// NewStrategy - builds a strategy by its configured name.
func NewStrategy(name string, rnd Random, jitter float64) (Strategy, error) {
	switch name {
	case StrategyHeuristic:
		strategy := NewHeuristicStrategy(rnd)
		strategy.Jitter = jitter

		return strategy, nil
	case StrategyRandom:
		return NewRandomStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// RandomStrategy plays a uniformly random empty cell.
type RandomStrategy struct {
	rnd Random
}

func NewRandomStrategy(rnd Random) *RandomStrategy {
	return &RandomStrategy{rnd: rnd}
}

func (that *RandomStrategy) SelectMove(board entity.Board, _ entity.Cell) (entity.Position, error) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return entity.Position{}, apperror.ErrNoLegalMoves
	}

	return cells[that.rnd.Intn(len(cells))], nil
}

// HeuristicStrategy scores every empty cell one ply deep and picks among the best.
type HeuristicStrategy struct {
	rnd Random

	// Jitter is the width of the uniform noise added to every score.
	Jitter float64
}

func NewHeuristicStrategy(rnd Random) *HeuristicStrategy {
	return &HeuristicStrategy{
		rnd:    rnd,
		Jitter: DefaultJitter,
	}
}

func (that *HeuristicStrategy) SelectMove(board entity.Board, player entity.Cell) (entity.Position, error) {
	_, best, err := that.Candidates(board, player)
	if err != nil {
		return entity.Position{}, err
	}

	return best[that.rnd.Intn(len(best))], nil
}

// Candidates - returns the top score and every cell tied for it, in row-major order.
func (that *HeuristicStrategy) Candidates(board entity.Board, player entity.Cell) (float64, []entity.Position, error) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return 0, nil, apperror.ErrNoLegalMoves
	}

	bestScore := math.Inf(-1)
	var best []entity.Position

	for _, cell := range cells {
		score := that.score(&board, cell, player) + that.jitter()

		switch {
		case score > bestScore:
			bestScore = score
			best = []entity.Position{cell}
		case score == bestScore:
			best = append(best, cell)
		}
	}

	return bestScore, best, nil
}

// Score - the noise-free value of playing player's stone at an empty cell.
func (that *HeuristicStrategy) Score(board entity.Board, cell entity.Position, player entity.Cell) float64 {
	return that.score(&board, cell, player)
}

// score - trial placements write to board and restore the cell before returning,
// so board must be a private copy.
func (that *HeuristicStrategy) score(board *entity.Board, cell entity.Position, player entity.Cell) float64 {
	opponent := player.Opponent()
	score := 0.0

	if wouldWin(board, cell, player) {
		score += WinBonus
	}

	if wouldWin(board, cell, opponent) {
		score += BlockBonus
	}

	for _, dir := range Directions {
		score += float64(ScoreDirection(board, cell.Column, cell.Row, dir[0], dir[1], player))
		score += float64(ScoreDirection(board, cell.Column, cell.Row, dir[0], dir[1], opponent)) * ThreatWeight
	}

	return score + centrality(cell)
}

func (that *HeuristicStrategy) jitter() float64 {
	if that.Jitter <= 0 {
		return 0
	}

	return that.rnd.Float64() * that.Jitter
}

func wouldWin(board *entity.Board, cell entity.Position, player entity.Cell) bool {
	original := board.At(cell.Column, cell.Row)
	board.Set(cell.Column, cell.Row, player)
	win := CheckWin(board, cell.Column, cell.Row, player)
	board.Set(cell.Column, cell.Row, original)

	return win
}

// centrality - up to CentralityWeight, falling linearly with distance from the centre.
func centrality(cell entity.Position) float64 {
	dx := float64(cell.Column - boardCenter)
	dy := float64(cell.Row - boardCenter)

	return CentralityWeight * (1 - math.Hypot(dx, dy)/maxDistance)
}
