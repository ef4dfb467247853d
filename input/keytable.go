// Package input translates terminal key events into game signals.
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/engine"
)

// KeyTable maps keys to controller signals
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]engine.Signal

	// Printable rune bindings
	Runes map[rune]engine.Signal
}

// DefaultKeyTable returns the default key bindings: arrows, WASD and hjkl steer
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Signal{
			tcell.KeyUp:     engine.SignalMoveUp,
			tcell.KeyDown:   engine.SignalMoveDown,
			tcell.KeyLeft:   engine.SignalMoveLeft,
			tcell.KeyRight:  engine.SignalMoveRight,
			tcell.KeyEscape: engine.SignalQuit,
			tcell.KeyCtrlC:  engine.SignalQuit,
			tcell.KeyCtrlQ:  engine.SignalQuit,
		},
		Runes: map[rune]engine.Signal{
			'w': engine.SignalMoveUp,
			's': engine.SignalMoveDown,
			'a': engine.SignalMoveLeft,
			'd': engine.SignalMoveRight,
			'k': engine.SignalMoveUp,
			'j': engine.SignalMoveDown,
			'h': engine.SignalMoveLeft,
			'l': engine.SignalMoveRight,
			' ': engine.SignalTogglePause,
			'p': engine.SignalTogglePause,
			'r': engine.SignalRestart,
			'q': engine.SignalQuit,
		},
	}
}

// Translate returns the signal bound to a key event, SignalNone if unbound
// Rune bindings are case-insensitive
func (kt *KeyTable) Translate(ev *tcell.EventKey) engine.Signal {
	if ev.Key() != tcell.KeyRune {
		if sig, ok := kt.SpecialKeys[ev.Key()]; ok {
			return sig
		}
		return engine.SignalNone
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if sig, ok := kt.Runes[r]; ok {
		return sig
	}
	return engine.SignalNone
}

// Bind overrides or adds a rune binding
func (kt *KeyTable) Bind(r rune, sig engine.Signal) {
	kt.Runes[r] = sig
}
