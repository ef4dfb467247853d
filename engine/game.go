package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/snake/core"
)

// Game is the controller: it owns the snake, the food, score, speed and lifecycle state
// All methods must be called from the owning loop
type Game struct {
	rules Rules
	rng   Random
	clock *PausableClock

	snake     *Snake
	food      *Food
	score     int
	speed     float64
	state     State
	boardFull bool

	roundID string
	ticks   uint64 // Updates applied this round

	events EventQueue
}

// Snapshot is a read-only view of the game for renderers
type Snapshot struct {
	Cells      []core.Cell // Head first
	Food       core.Cell
	Score      int
	Speed      float64
	State      State
	BoardFull  bool
	GridWidth  int
	GridHeight int
	Elapsed    time.Duration
	RoundID    string
}

// Head returns the first snake cell of the snapshot
func (s Snapshot) Head() core.Cell {
	return s.Cells[0]
}

// NewGame validates rules and starts the first round in the Running state
func NewGame(rules Rules, rng Random, provider TimeProvider) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidRules)
	}

	g := &Game{
		rules: rules,
		rng:   rng,
		clock: NewPausableClock(provider),
	}
	g.reset()
	return g, nil
}

// reset sets up a fresh round: snake at the grid center, food, score, speed, Running
func (g *Game) reset() {
	g.snake = NewSnake(core.Cell{X: g.rules.GridWidth / 2, Y: g.rules.GridHeight / 2})
	g.food = NewFood(g.rules.GridWidth, g.rules.GridHeight, g.rng)
	if g.snake.Occupies(g.food.Position) {
		// Validated rules guarantee a free cell
		_ = g.food.Respawn(g.rules.GridWidth, g.rules.GridHeight, g.snake.Body())
	}

	g.score = 0
	g.speed = g.rules.BaseSpeed
	g.state = StateRunning
	g.boardFull = false
	g.ticks = 0
	g.roundID = uuid.NewString()
	g.clock.Reset()

	log.Printf("[game] round=%s started grid=%dx%d head=%v food=%v",
		g.roundID, g.rules.GridWidth, g.rules.GridHeight, g.snake.Head(), g.food.Position)
}

// transition moves to a new lifecycle state if the edge is legal
func (g *Game) transition(to State) bool {
	if !CanTransition(g.state, to) {
		return false
	}
	g.state = to
	return true
}

// Update runs one tick; a no-op unless Running
func (g *Game) Update() {
	if g.state != StateRunning {
		return
	}
	g.ticks++

	g.snake.Advance()

	if g.snake.DetectCollision(g.rules.GridWidth, g.rules.GridHeight) {
		g.transition(StateOver)
		g.clock.Stop()
		g.push(EventGameOver)
		log.Printf("[game] round=%s over tick=%d head=%v score=%d length=%d",
			g.roundID, g.ticks, g.snake.Head(), g.score, g.snake.Len())
		return
	}

	if g.snake.Head() != g.food.Position {
		return
	}

	g.snake.Grow()
	g.score += g.rules.ScoreIncrement
	g.speed = min(g.speed+g.rules.SpeedIncrement, g.rules.MaxSpeed)
	g.push(EventFoodEaten)

	if err := g.food.Respawn(g.rules.GridWidth, g.rules.GridHeight, g.snake.Body()); err != nil {
		// ErrNoFreeCell: the snake covers the whole grid
		g.boardFull = true
		g.transition(StateOver)
		g.clock.Stop()
		g.push(EventBoardFull)
		log.Printf("[game] round=%s board full tick=%d score=%d", g.roundID, g.ticks, g.score)
		return
	}

	log.Printf("[game] round=%s ate tick=%d score=%d speed=%.1f food=%v",
		g.roundID, g.ticks, g.score, g.speed, g.food.Position)
}

// HandleSignal applies an input signal immediately
// Returns true when the loop should exit; quitting mutates nothing
func (g *Game) HandleSignal(sig Signal) (quit bool) {
	if d, ok := sig.Direction(); ok {
		g.snake.SetDirection(d)
		return false
	}

	switch sig {
	case SignalTogglePause:
		switch g.state {
		case StateRunning:
			g.Pause()
		case StatePaused:
			g.Resume()
		case StateOver:
			g.Restart()
		}
	case SignalRestart:
		g.Restart()
	case SignalQuit:
		log.Printf("[game] round=%s quit state=%s score=%d", g.roundID, g.state, g.score)
		return true
	}
	return false
}

// Pause moves Running to Paused
func (g *Game) Pause() bool {
	if !g.transition(StatePaused) {
		return false
	}
	g.clock.Pause()
	g.push(EventPaused)
	return true
}

// Resume moves Paused to Running
func (g *Game) Resume() bool {
	if g.state != StatePaused || !g.transition(StateRunning) {
		return false
	}
	g.clock.Resume()
	g.push(EventResumed)
	return true
}

// Restart begins a new round; only legal from Over
func (g *Game) Restart() bool {
	if g.state != StateOver || !CanTransition(g.state, StateRunning) {
		return false
	}
	g.reset()
	g.push(EventRestarted)
	return true
}

func (g *Game) push(t EventType) {
	g.events.Push(Event{
		Type:    t,
		RoundID: g.roundID,
		Tick:    g.ticks,
		Score:   g.score,
		Length:  g.snake.Len(),
	})
}

// DrainEvents returns events produced since the last drain
func (g *Game) DrainEvents() []Event {
	return g.events.Drain()
}

// Snapshot copies the state renderers need
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Cells:      g.snake.Body(),
		Food:       g.food.Position,
		Score:      g.score,
		Speed:      g.speed,
		State:      g.state,
		BoardFull:  g.boardFull,
		GridWidth:  g.rules.GridWidth,
		GridHeight: g.rules.GridHeight,
		Elapsed:    g.clock.Elapsed(),
		RoundID:    g.roundID,
	}
}

func (g *Game) State() State                { return g.state }
func (g *Game) Score() int                  { return g.score }
func (g *Game) Speed() float64              { return g.speed }
func (g *Game) RoundID() string             { return g.roundID }
func (g *Game) Rules() Rules                { return g.rules }
func (g *Game) TickInterval() time.Duration { return TickInterval(g.speed) }
func (g *Game) Snake() *Snake               { return g.snake }
func (g *Game) FoodPosition() core.Cell     { return g.food.Position }
func (g *Game) Elapsed() time.Duration      { return g.clock.Elapsed() }
