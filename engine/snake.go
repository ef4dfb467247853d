package engine

import "github.com/lixenwraith/snake/core"

// Snake is the player entity: an ordered run of cells, head first
type Snake struct {
	body             []core.Cell
	direction        core.Direction // last committed movement
	pendingDirection core.Direction // applied on next Advance
	pendingGrowth    bool           // next Advance keeps the tail
}

// NewSnake creates a single-cell snake at start heading right
func NewSnake(start core.Cell) *Snake {
	return &Snake{
		body:             []core.Cell{start},
		direction:        core.Right,
		pendingDirection: core.Right,
	}
}

// SetDirection queues d for the next Advance
// Requests that reverse the committed direction are ignored
func (s *Snake) SetDirection(d core.Direction) {
	if !d.Valid() || d.IsOpposite(s.direction) {
		return
	}
	s.pendingDirection = d
}

// Advance commits the pending direction and moves one cell
func (s *Snake) Advance() {
	s.direction = s.pendingDirection
	newHead := s.Head().Step(s.direction)

	if s.pendingGrowth {
		s.body = append(s.body, core.Cell{})
		s.pendingGrowth = false
	}
	// Shift toward the tail, dropping the last cell unless it was just extended
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
}

// Grow lengthens the snake by one cell on the next Advance
func (s *Snake) Grow() {
	s.pendingGrowth = true
}

// Head returns the first body cell
func (s *Snake) Head() core.Cell {
	if len(s.body) == 0 {
		panic("engine: snake has empty body")
	}
	return s.body[0]
}

// DetectCollision reports a wall hit or the head overlapping any other segment
func (s *Snake) DetectCollision(gridWidth, gridHeight int) bool {
	head := s.Head()
	if !head.InBounds(gridWidth, gridHeight) {
		return true
	}
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment covers c
func (s *Snake) Occupies(c core.Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// Body returns a copy of the cells, head first
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Len() int                         { return len(s.body) }
func (s *Snake) Direction() core.Direction        { return s.direction }
func (s *Snake) PendingDirection() core.Direction { return s.pendingDirection }
func (s *Snake) Growing() bool                    { return s.pendingGrowth }
