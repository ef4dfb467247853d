package main

import (
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"golang.org/x/exp/rand"
)

type recordingSink struct {
	events []engine.EventType
}

func (r *recordingSink) HandleEvent(e engine.Event) {
	r.events = append(r.events, e.Type)
}

func newTestLoop(t *testing.T) (*gameLoop, *engine.MockTimeProvider, *recordingSink, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)

	mockTime := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	game, err := engine.NewGame(engine.DefaultRules(), rand.New(rand.NewSource(7)), mockTime)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	sink := &recordingSink{}
	return newGameLoop(screen, game, sink, mockTime), mockTime, sink, screen
}

// queueKey injects a key into the screen and forwards what the screen reports, as the poller does
func queueKey(gl *gameLoop, screen tcell.SimulationScreen, key tcell.Key, r rune) {
	screen.InjectKey(key, r, tcell.ModNone)
	for {
		ev := screen.PollEvent()
		gl.events <- ev
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}

func screenHasText(screen tcell.SimulationScreen, text string) bool {
	cells, w, h := screen.GetContents()
	target := []rune(text)
	for y := 0; y < h; y++ {
		row := make([]rune, w)
		for x := 0; x < w; x++ {
			if runes := cells[y*w+x].Runes; len(runes) > 0 {
				row[x] = runes[0]
			}
		}
		for x := 0; x+len(target) <= w; x++ {
			if slices.Equal(row[x:x+len(target)], target) {
				return true
			}
		}
	}
	return false
}

func TestTick_AppliesQueuedInputBeforeUpdate(t *testing.T) {
	gl, mockTime, _, screen := newTestLoop(t)

	// Key and tick deadline arrive together
	queueKey(gl, screen, tcell.KeyUp, 0)
	mockTime.AdvanceTicks(1, gl.game.Speed())

	if quit := gl.tick(); quit {
		t.Fatal("Unexpected quit")
	}

	if head := gl.game.Snapshot().Head(); head != (core.Cell{X: 20, Y: 14}) {
		t.Errorf("Expected head (20,14) after turning up, got %v", head)
	}
	if len(gl.events) != 0 {
		t.Errorf("Expected input queue drained, %d events left", len(gl.events))
	}
	if gl.sched.TickCount() != 1 {
		t.Errorf("Expected 1 tick, got %d", gl.sched.TickCount())
	}
}

func TestTick_QueuedQuitSkipsUpdate(t *testing.T) {
	gl, mockTime, _, screen := newTestLoop(t)

	queueKey(gl, screen, tcell.KeyRune, 'q')
	mockTime.AdvanceTicks(1, gl.game.Speed())

	if quit := gl.tick(); !quit {
		t.Fatal("Expected quit")
	}
	if head := gl.game.Snapshot().Head(); head != (core.Cell{X: 20, Y: 15}) {
		t.Errorf("Expected head unchanged at (20,15), got %v", head)
	}
	if gl.sched.TickCount() != 0 {
		t.Errorf("Expected no tick, got %d", gl.sched.TickCount())
	}
}

func TestTick_WaitsForDeadline(t *testing.T) {
	gl, mockTime, _, _ := newTestLoop(t)

	mockTime.Advance(gl.game.TickInterval() / 2)
	gl.tick()

	if head := gl.game.Snapshot().Head(); head != (core.Cell{X: 20, Y: 15}) {
		t.Errorf("Expected no movement before the deadline, got %v", head)
	}

	mockTime.Advance(gl.game.TickInterval() / 2)
	gl.tick()
	if head := gl.game.Snapshot().Head(); head != (core.Cell{X: 21, Y: 15}) {
		t.Errorf("Expected head (21,15) at the deadline, got %v", head)
	}
}

func TestSettle_PauseResume(t *testing.T) {
	gl, mockTime, sink, _ := newTestLoop(t)
	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)

	gl.handleEvent(space)
	gl.settle()
	if gl.game.State() != engine.StatePaused {
		t.Fatalf("Expected Paused, got %s", gl.game.State())
	}
	if !screenHasText(gl.screen.(tcell.SimulationScreen), "PAUSED") {
		t.Error("Expected PAUSED overlay after settle")
	}

	mockTime.Advance(5 * time.Second)
	gl.tick()
	if head := gl.game.Snapshot().Head(); head != (core.Cell{X: 20, Y: 15}) {
		t.Errorf("Expected frozen head while paused, got %v", head)
	}

	gl.handleEvent(space)
	gl.settle()
	if gl.sched.Until() != gl.game.TickInterval() {
		t.Errorf("Expected a full interval after resume, got %v", gl.sched.Until())
	}

	want := []engine.EventType{engine.EventPaused, engine.EventResumed}
	if !slices.Equal(sink.events, want) {
		t.Errorf("Expected events %v, got %v", want, sink.events)
	}
}

func TestPollEvents_ForwardsUntilFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}

	events := make(chan tcell.Event, 8)
	done := make(chan struct{})
	go func() {
		pollEvents(screen, events)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	deadline := time.After(2 * time.Second)
	for gotKey := false; !gotKey; {
		select {
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok && key.Rune() == 'x' {
				gotKey = true
			}
		case <-deadline:
			t.Fatal("Timed out waiting for forwarded key")
		}
	}

	screen.Fini()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Poller did not stop after Fini")
	}
}
