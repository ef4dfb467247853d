// Package engine holds the snake game model and its controller.
//
// The controller is the sole mutator of the model and is driven from a single loop:
// signals from the input collaborator are applied as they arrive, Update runs once per
// due tick, and renderers read a Snapshot. Side effects the model does not own (sound,
// logging) are announced through a small event queue drained by the loop.
package engine

// EventType represents the type of game event
type EventType int

const (
	// EventFoodEaten is pushed when the head reaches the food
	EventFoodEaten EventType = iota

	// EventGameOver is pushed on wall or self collision
	EventGameOver

	// EventBoardFull is pushed when no free cell remains for food; the round ends
	EventBoardFull

	// EventPaused and EventResumed follow the pause toggle
	EventPaused
	EventResumed

	// EventRestarted is pushed after a new round has been set up
	EventRestarted
)

func (t EventType) String() string {
	switch t {
	case EventFoodEaten:
		return "FoodEaten"
	case EventGameOver:
		return "GameOver"
	case EventBoardFull:
		return "BoardFull"
	case EventPaused:
		return "Paused"
	case EventResumed:
		return "Resumed"
	case EventRestarted:
		return "Restarted"
	default:
		return "Unknown"
	}
}

// Event describes something that happened during a tick or signal
type Event struct {
	Type    EventType
	RoundID string
	Tick    uint64 // Update count within the round
	Score   int
	Length  int
}

// EventQueue buffers events until the loop drains them
type EventQueue struct {
	events []Event
}

// Push appends an event
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all pending events in push order and empties the queue
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}
