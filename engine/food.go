package engine

import (
	"errors"

	"github.com/lixenwraith/snake/core"
)

// ErrNoFreeCell is returned when every grid cell is occupied
var ErrNoFreeCell = errors.New("no free cell for food")

// Random is the sampling source used for food placement
// *rand.Rand from golang.org/x/exp/rand satisfies it
type Random interface {
	Intn(n int) int
}

// maxRespawnSamples bounds rejection sampling per grid cell before falling back to a scan
const maxRespawnSamples = 4

// Food is the single consumable on the board
type Food struct {
	Position core.Cell
	rng      Random
}

// NewFood places food anywhere on the grid
func NewFood(gridWidth, gridHeight int, rng Random) *Food {
	f := &Food{rng: rng}
	f.Position = f.Spawn(gridWidth, gridHeight)
	return f
}

// Spawn returns a uniformly random cell of the full grid
func (f *Food) Spawn(gridWidth, gridHeight int) core.Cell {
	return core.Cell{
		X: f.rng.Intn(gridWidth),
		Y: f.rng.Intn(gridHeight),
	}
}

// Respawn moves the food to a random cell not in occupied
// Sampling is bounded; past the bound a free cell is picked from a full scan
// Returns ErrNoFreeCell without moving when the grid is full
func (f *Food) Respawn(gridWidth, gridHeight int, occupied []core.Cell) error {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	limit := maxRespawnSamples * gridWidth * gridHeight
	for i := 0; i < limit; i++ {
		c := f.Spawn(gridWidth, gridHeight)
		if _, ok := taken[c]; !ok {
			f.Position = c
			return nil
		}
	}

	free := make([]core.Cell, 0, max(gridWidth*gridHeight-len(taken), 0))
	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			c := core.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return ErrNoFreeCell
	}
	f.Position = free[f.rng.Intn(len(free))]
	return nil
}
