package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML match config")
	bestOfFlag = flag.Int("bestof", 0, "Start a best-of-N match instead of the configured target score")
	seedFlag   = flag.Uint64("seed", 0, "Seed for serves and launches, 0 uses the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/vi-pong.log")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := engine.DefaultConfig()
	if *configFlag != "" {
		loaded, err := engine.LoadConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	queue := event.NewQueue()
	metrics := status.NewRegistry()
	eng, err := engine.New(cfg, engine.WithEventQueue(queue), engine.WithMetrics(metrics))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create engine: %v\n", err)
		os.Exit(1)
	}
	if *bestOfFlag != 0 {
		if err := eng.RequestReplay(*bestOfFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -bestof: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before reporting
	setCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	audioOn := true
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game runs silent
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		audioOn = false
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)

	router := event.NewRouter(queue)
	router.Register(sounds)

	log.Printf("Starting match: target_score=%d seed=%d", eng.TargetScore(), cfg.Seed)
	newGame(screen, eng, router, metrics, sounds, audioOn).run()
}
