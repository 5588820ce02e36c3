package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/audio"
	"github.com/lixenwraith/grid-snake/config"
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/input"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/status"
	"github.com/lixenwraith/grid-snake/systems"
)

const keyHint = "arrows/wasd move  r restart  m mute  q quit"

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug log to the log directory")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Prize placement seed, 0 for time based")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Start with sound muted")
	flag.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Master volume 0.0-1.0")
	flag.StringVar(&cfg.Color, "color", cfg.Color, "Color mode: auto, truecolor, 256")
	flag.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "Debug log directory")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logDir = cfg.LogDir
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

func run(cfg config.Config) error {
	applyColorMode(cfg.Color)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	reg := status.NewRegistry()
	scene := render.NewTerminalScene(screen, reg)

	// Audio is optional, failures leave the game silent
	audioCfg := audio.DefaultAudioConfig().WithMasterVolume(cfg.Volume)
	audioCfg.Enabled = !cfg.Mute
	audioEngine := audio.NewAudioEngine(audioCfg)
	if err := audioEngine.Start(); err != nil {
		log.Printf("Audio start failed: %v (continuing without audio)", err)
	} else {
		defer audioEngine.Stop()
	}
	reg.Bools.Get(status.KeyAudioEnabled).Store(audioEngine.IsRunning() && !audioEngine.IsMuted())
	scene.Hint = hint(audioEngine)

	game := engine.NewGame(scene, engine.NewTickTimer(constants.TickInterval), reg)
	game.AddSystem(systems.NewDirectionSystem())
	game.AddSystem(systems.NewMovementSystem(reg))
	game.AddSystem(systems.NewPrizeSystem(cfg.Seed, reg))

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	done := make(chan struct{})
	defer close(done)

	// Poller exits when the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), constants.MaxFrameDelta)
	keys := input.NewFrame()

	scene.Draw()

	for {
		select {
		case ev := <-eventChan:
			switch intent := keys.HandleEvent(ev); intent.Type {
			case input.IntentQuit:
				log.Printf("Quit requested")
				return nil
			case input.IntentRestart:
				game.Reset()
			case input.IntentToggleMute:
				if audioEngine.IsRunning() {
					muted := audioEngine.ToggleMute()
					reg.Bools.Get(status.KeyAudioEnabled).Store(!muted)
					scene.Hint = hint(audioEngine)
				}
			case input.IntentResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			result := game.Step(clock.Delta(), keys)
			keys.Reset()

			if result.Ate {
				playSound(audioEngine, audio.SoundChomp)
			}
			if result.Spawned {
				playSound(audioEngine, audio.SoundBlip)
			}

			scene.Draw()
		}
	}
}

func hint(ae *audio.AudioEngine) string {
	switch {
	case !ae.IsRunning():
		return keyHint + "  [no audio]"
	case ae.IsMuted():
		return keyHint + "  [muted]"
	default:
		return keyHint
	}
}

func playSound(ae *audio.AudioEngine, sound audio.SoundType) {
	if err := ae.Play(sound); err != nil {
		log.Printf("Sound %v: %v", sound, err)
	}
}
