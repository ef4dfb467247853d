package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/engine"
)

func TestTranslate_SpecialKeys(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		key  tcell.Key
		want engine.Signal
	}{
		{tcell.KeyUp, engine.SignalMoveUp},
		{tcell.KeyDown, engine.SignalMoveDown},
		{tcell.KeyLeft, engine.SignalMoveLeft},
		{tcell.KeyRight, engine.SignalMoveRight},
		{tcell.KeyEscape, engine.SignalQuit},
		{tcell.KeyCtrlC, engine.SignalQuit},
		{tcell.KeyTab, engine.SignalNone},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, 0, tcell.ModNone)
		if got := kt.Translate(ev); got != tt.want {
			t.Errorf("Key %v: expected %s, got %s", tt.key, tt.want, got)
		}
	}
}

func TestTranslate_Runes(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		r    rune
		want engine.Signal
	}{
		{'w', engine.SignalMoveUp},
		{'W', engine.SignalMoveUp},
		{'a', engine.SignalMoveLeft},
		{'S', engine.SignalMoveDown},
		{'d', engine.SignalMoveRight},
		{'h', engine.SignalMoveLeft},
		{'j', engine.SignalMoveDown},
		{'k', engine.SignalMoveUp},
		{'l', engine.SignalMoveRight},
		{' ', engine.SignalTogglePause},
		{'p', engine.SignalTogglePause},
		{'r', engine.SignalRestart},
		{'q', engine.SignalQuit},
		{'x', engine.SignalNone},
		{'7', engine.SignalNone},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone)
		if got := kt.Translate(ev); got != tt.want {
			t.Errorf("Rune %q: expected %s, got %s", tt.r, tt.want, got)
		}
	}
}

func TestBind(t *testing.T) {
	kt := DefaultKeyTable()
	kt.Bind('x', engine.SignalRestart)

	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	if got := kt.Translate(ev); got != engine.SignalRestart {
		t.Errorf("Expected Restart after Bind, got %s", got)
	}
}
