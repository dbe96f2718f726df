package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/calloway-games/wagontrail/audio"
	"github.com/calloway-games/wagontrail/config"
	"github.com/calloway-games/wagontrail/engine"
	"github.com/calloway-games/wagontrail/event"
	"github.com/calloway-games/wagontrail/modes"
	"github.com/calloway-games/wagontrail/sim"
	"github.com/calloway-games/wagontrail/terminal"
)

func main() {
	configPath := flag.String("config", "wagontrail.toml", "path to the TOML configuration")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "wagontrail:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	world := sim.New(cfg.Leader)
	cues := audio.NewCues(cfg.Sound)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ctx := engine.NewContext(world, rng, log)

	modeFactory := engine.NewModeFactory()
	stateFactory := engine.NewStateFactory()
	modes.RegisterAll(modeFactory, stateFactory, modes.Deps{
		World:    world,
		Cues:     cues,
		SavePath: cfg.SavePath,
	})

	windows := engine.NewWindowManager(modeFactory, stateFactory, log)
	ctx.Windows = windows
	router := engine.NewInputRouter(windows)
	scene := engine.NewSceneGraph(windows, router, world)
	sched := engine.NewScheduler(ctx, windows, router, scene, log)

	term, err := terminal.New()
	if err != nil {
		return err
	}
	defer term.Fini()

	windows.ModeChangedSignal.Subscribe(func(mc event.ModeChanged) {
		log.Debug("active window", "window", mc.Window)
		cues.Play(audio.CueModeChange)
	})
	scene.BufferChangedSignal.Subscribe(func(bc event.BufferChanged) {
		term.Draw(bc.Frame)
	})

	if err := windows.Add(ctx, engine.ModeMainMenu); err != nil {
		return err
	}

	term.Start()
	ticker := time.NewTicker(time.Duration(cfg.TickMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-term.Events():
			if !term.Feed(ev, router) {
				return nil
			}
		case <-ticker.C:
			if err := sched.Tick(); err != nil {
				return err
			}
			if windows.Count() == 0 {
				// Quitting the last window ends the run
				return nil
			}
		}
	}
}

// newLogger opens the debug log file, or a null logger when logging is
// disabled
func newLogger(path string) (hclog.Logger, func(), error) {
	if path == "" {
		return hclog.NewNullLogger(), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	log := hclog.New(&hclog.LoggerOptions{
		Name:   "wagontrail",
		Level:  hclog.Debug,
		Output: file,
	})
	return log, func() { file.Close() }, nil
}
