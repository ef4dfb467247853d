package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/snake/constants"
)

// ErrInvalidRules is wrapped by Rules.Validate failures
var ErrInvalidRules = errors.New("invalid rules")

// Rules are the per-process gameplay constants
type Rules struct {
	GridWidth      int
	GridHeight     int
	BaseSpeed      float64 // Ticks per second at round start
	SpeedIncrement float64 // Added per food eaten
	MaxSpeed       float64 // Cap for speed
	ScoreIncrement int     // Awarded per food eaten
}

// DefaultRules returns the classic 40x30 board settings
func DefaultRules() Rules {
	return Rules{
		GridWidth:      constants.WindowWidth / constants.CellSize,
		GridHeight:     constants.WindowHeight / constants.CellSize,
		BaseSpeed:      constants.BaseSpeed,
		SpeedIncrement: constants.SpeedIncrement,
		MaxSpeed:       constants.MaxSpeed,
		ScoreIncrement: constants.ScoreIncrement,
	}
}

// Validate checks that a round can be set up and paced with these rules
func (r Rules) Validate() error {
	switch {
	case r.GridWidth < 1 || r.GridHeight < 1:
		return fmt.Errorf("%w: grid %dx%d must be at least 1x1", ErrInvalidRules, r.GridWidth, r.GridHeight)
	case r.GridWidth*r.GridHeight < 2:
		return fmt.Errorf("%w: grid needs room for snake and food", ErrInvalidRules)
	case r.BaseSpeed <= 0:
		return fmt.Errorf("%w: base speed %.2f must be positive", ErrInvalidRules, r.BaseSpeed)
	case r.MaxSpeed < r.BaseSpeed:
		return fmt.Errorf("%w: max speed %.2f below base speed %.2f", ErrInvalidRules, r.MaxSpeed, r.BaseSpeed)
	case r.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed increment %.2f is negative", ErrInvalidRules, r.SpeedIncrement)
	case r.ScoreIncrement < 0:
		return fmt.Errorf("%w: score increment %d is negative", ErrInvalidRules, r.ScoreIncrement)
	}
	return nil
}
