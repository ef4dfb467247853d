package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"golang.org/x/exp/rand"
	"golang.org/x/term"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	seedFlag  = flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	envFlag   = flag.String("env", ".env", "Optional env file with SNAKE_* settings")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Debug && logFile == nil {
		logFile = setupLogging(true)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "snake must be run in a terminal")
		os.Exit(1)
	}

	game, err := engine.NewGame(cfg.Rules(), rand.New(rand.NewSource(cfg.Seed)), engine.NewMonotonicTimeProvider())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[main] seed=%d", cfg.Seed)

	// Audio comes up before the screen so failures can still be printed
	audioCfg := audio.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
		log.Printf("[audio] init failed: %v", err)
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	run(screen, game, sounds)
}

// run owns the game until quit; the poller goroutine only forwards terminal events
func run(screen tcell.Screen, game *engine.Game, sounds *audio.SoundManager) {
	gl := newGameLoop(screen, game, sounds, engine.NewMonotonicTimeProvider())
	go pollEvents(screen, gl.events)

	tickTimer := time.NewTimer(gl.sched.Until())
	defer tickTimer.Stop()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	gl.settle()

	for {
		var quit bool
		select {
		case ev := <-gl.events:
			quit = gl.handleEvent(ev)

		case <-tickTimer.C:
			// Input queued alongside the timer lands before the update
			quit = gl.tick()

		case <-frameTicker.C:
			// Keeps the play clock in the status bar moving between ticks
		}
		if quit {
			return
		}

		gl.settle()

		// Only a running round needs tick wakeups
		if game.State() == engine.StateRunning {
			tickTimer.Reset(gl.sched.Until())
		} else {
			tickTimer.Stop()
		}
	}
}
