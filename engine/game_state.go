package engine

// State is the game lifecycle phase
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// validTransitions lists every legal lifecycle edge
// Over -> Running is the restart edge and implies a full round reset
var validTransitions = map[State][]State{
	StateRunning: {StatePaused, StateOver},
	StatePaused:  {StateRunning},
	StateOver:    {StateRunning},
}

// CanTransition checks if a lifecycle transition is valid
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
