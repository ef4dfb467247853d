package engine

import "github.com/lixenwraith/snake/core"

// Signal is a discrete control request from the input collaborator
type Signal uint8

const (
	SignalNone Signal = iota
	SignalMoveUp
	SignalMoveDown
	SignalMoveLeft
	SignalMoveRight
	SignalTogglePause // Pause, resume, or restart depending on state
	SignalRestart     // Restart only when over
	SignalQuit
)

func (s Signal) String() string {
	switch s {
	case SignalMoveUp:
		return "MoveUp"
	case SignalMoveDown:
		return "MoveDown"
	case SignalMoveLeft:
		return "MoveLeft"
	case SignalMoveRight:
		return "MoveRight"
	case SignalTogglePause:
		return "TogglePause"
	case SignalRestart:
		return "Restart"
	case SignalQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Direction maps a move signal to its direction
func (s Signal) Direction() (core.Direction, bool) {
	switch s {
	case SignalMoveUp:
		return core.Up, true
	case SignalMoveDown:
		return core.Down, true
	case SignalMoveLeft:
		return core.Left, true
	case SignalMoveRight:
		return core.Right, true
	default:
		return 0, false
	}
}
