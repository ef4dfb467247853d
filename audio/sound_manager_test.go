package audio

import (
	"testing"

	"github.com/lixenwraith/snake/engine"
)

func TestSoundManager_DisabledStaysSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize with audio disabled should not fail: %v", err)
	}

	sm.HandleEvent(engine.Event{Type: engine.EventFoodEaten})
	sm.Play(SoundCrash)
	if sm.PlayedCount(SoundEat) != 0 || sm.PlayedCount(SoundCrash) != 0 {
		t.Error("Uninitialized manager should not queue sounds")
	}

	// Safe without initialization
	sm.Cleanup()
}

func TestNewSoundManager_NilConfig(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.config == nil || !sm.config.Enabled {
		t.Error("Expected default config for nil input")
	}
}

func TestSoundForEvent(t *testing.T) {
	tests := []struct {
		event engine.EventType
		want  SoundType
		ok    bool
	}{
		{engine.EventFoodEaten, SoundEat, true},
		{engine.EventGameOver, SoundCrash, true},
		{engine.EventBoardFull, SoundStart, true},
		{engine.EventRestarted, SoundStart, true},
		{engine.EventPaused, SoundPause, true},
		{engine.EventResumed, SoundPause, true},
		{engine.EventType(99), 0, false},
	}

	for _, tt := range tests {
		got, ok := SoundForEvent(tt.event)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s: expected (%s, %v), got (%s, %v)", tt.event, tt.want, tt.ok, got, ok)
		}
	}
}
