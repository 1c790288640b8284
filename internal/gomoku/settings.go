package gomoku

import "fmt"

// Settings selects the strategies of every engine built from it.
type Settings struct {
	AIStrategy   string
	HintStrategy string
	Seed         int64
	Jitter       float64
}

// Options - builds a fresh randomness source and strategies for one engine.
// A *rand.Rand is not safe for concurrent use, so engines never share them.
func (that Settings) Options() ([]Option, error) {
	rnd := NewRandom(that.Seed)

	ai, err := NewStrategy(that.AIStrategy, rnd, that.Jitter)
	if err != nil {
		return nil, fmt.Errorf("failed to build ai strategy: %w", err)
	}

	hint, err := NewStrategy(that.HintStrategy, rnd, that.Jitter)
	if err != nil {
		return nil, fmt.Errorf("failed to build hint strategy: %w", err)
	}

	return []Option{WithRandom(rnd), WithAIStrategy(ai), WithHintStrategy(hint)}, nil
}
