package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

// eventSink consumes game events after each loop step
type eventSink interface {
	HandleEvent(e engine.Event)
}

// gameLoop holds everything one step of the main loop touches
// All methods run on the owning goroutine
type gameLoop struct {
	screen   tcell.Screen
	game     *engine.Game
	sink     eventSink
	renderer *render.TerminalRenderer
	keys     *input.KeyTable
	sched    *engine.ClockScheduler
	events   chan tcell.Event
}

func newGameLoop(screen tcell.Screen, game *engine.Game, sink eventSink, provider engine.TimeProvider) *gameLoop {
	return &gameLoop{
		screen:   screen,
		game:     game,
		sink:     sink,
		renderer: render.NewTerminalRenderer(screen),
		keys:     input.DefaultKeyTable(),
		sched:    engine.NewClockScheduler(provider, game.Speed()),
		events:   make(chan tcell.Event, constants.EventChannelSize),
	}
}

// handleEvent applies one terminal event; returns true on quit
func (gl *gameLoop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return gl.game.HandleSignal(gl.keys.Translate(ev))
	case *tcell.EventResize:
		gl.screen.Sync()
	}
	return false
}

// drainInput applies every queued event without blocking; returns true on quit
func (gl *gameLoop) drainInput() bool {
	for {
		select {
		case ev := <-gl.events:
			if gl.handleEvent(ev) {
				return true
			}
		default:
			return false
		}
	}
}

// tick applies pending input, then advances the game if a tick is due
// Returns true if a queued quit ended the loop before the update
func (gl *gameLoop) tick() bool {
	if gl.drainInput() {
		return true
	}
	if gl.game.State() == engine.StateRunning && gl.sched.Due() {
		gl.game.Update()
		gl.sched.Advance(gl.game.Speed())
	}
	return false
}

// settle forwards game events and redraws
func (gl *gameLoop) settle() {
	for _, e := range gl.game.DrainEvents() {
		gl.sink.HandleEvent(e)
		switch e.Type {
		case engine.EventResumed, engine.EventRestarted:
			gl.sched.Restart(gl.game.Speed())
		}
	}
	gl.renderer.RenderFrame(gl.game.Snapshot())
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		events <- ev
	}
}
