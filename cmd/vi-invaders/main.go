package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/input"
	"github.com/lixenwraith/vi-invaders/render"
	"github.com/lixenwraith/vi-invaders/scores"
	"github.com/lixenwraith/vi-invaders/status"
	"github.com/lixenwraith/vi-invaders/systems"
)

var (
	debugFlag     = flag.Bool("debug", false, "Write a debug log to logs/vi-invaders.log")
	configFlag    = flag.String("config", "", "Path to a JSON config file")
	colorModeFlag = flag.String("color", "", "Color mode: auto, truecolor, 256, mono (overrides config)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			emergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-INVADERS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-invaders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load(*configFlag); err != nil {
		return err
	}
	settings, err := config.Get()
	if err != nil {
		return err
	}
	if *colorModeFlag != "" {
		settings.Render.ColorMode = *colorModeFlag
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	logger, logFile := setupLogging(*debugFlag, settings.LogLevel)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := asset.Default().Validate(asset.Required()...); err != nil {
		return fmt.Errorf("asset validation: %w", err)
	}

	metrics, err := status.NewRegistry(otel.Meter(status.MeterName))
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	var store *scores.Store
	if settings.Scores.Enabled {
		if store, err = scores.Open(settings.Scores.Path, logger); err != nil {
			return err
		}
		defer store.Close()
	}

	// Audio failure leaves the manager silent
	sound := audio.NewSoundManager(audio.Config{
		Enabled:      settings.Audio.Enabled,
		MasterVolume: settings.Audio.MasterVolume,
		SampleRate:   settings.Audio.SampleRate,
	})
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	colorMode := resolveColorMode(settings.Render.ColorMode, screen.Colors())
	renderer := render.NewTerminalRenderer(screen, asset.Default(), colorMode)
	keys := input.NewKeyState(settings.Input.HoldWindow)

	ctx := engine.NewGameContext(keys, sound, rand.New(rand.NewSource(time.Now().UnixNano())))
	ctx.Tuning = engine.Tuning{
		EnemyFireChance:     settings.Simulation.EnemyFireChance,
		InfiniteSpawnChance: settings.Simulation.InfiniteSpawnChance,
	}
	ctx.Metrics = metrics
	ctx.Log = logger
	systems.Install(ctx)

	logger.Info().
		Str("color_mode", colorMode).
		Int("ticks_per_frame", settings.Simulation.TicksPerFrame).
		Bool("scores", store != nil).
		Msg("Game started")

	rec := newRecorder(nil, logger)
	if store != nil {
		rec.store = store
		rec.onBoard = renderer.SetScoreboard
		rec.loadBoard()
	}
	defer logSession(logger, metrics)

	events := make(chan tcell.Event, 256)
	stop := make(chan struct{})
	defer close(stop)

	// Input polling runs on its own goroutine as PollEvent blocks
	go func() {
		defer func() {
			if r := recover(); r != nil {
				emergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.RenderFrame(ctx.State)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !keys.HandleEvent(ev) {
					rec.finish(ctx.State)
					logger.Info().Msg("Game closed by user")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			case *tcell.EventError:
				rec.finish(ctx.State)
				logger.Error().Err(ev).Msg("Terminal error")
				return nil
			}

		case <-frameTicker.C:
			for range settings.Simulation.TicksPerFrame {
				ctx.Update()
				rec.observe(ctx.State)
				if ctx.Done() {
					break
				}
			}
			if ctx.Done() {
				rec.finish(ctx.State)
				logger.Info().Uint64("tick", ctx.State.Tick).Msg("Game exited")
				return nil
			}
			renderer.RenderFrame(ctx.State)
		}
	}
}

// logSession writes the counters gathered over every run of this process
func logSession(log zerolog.Logger, metrics *status.Registry) {
	totals := metrics.Snapshot()
	log.Info().
		Int64("runs", totals.Runs).
		Int64("kills", totals.Kills).
		Int64("shots", totals.PlayerShots).
		Int64("enemy_shots", totals.EnemyShots).
		Int64("hits_taken", totals.PlayerHits).
		Int64("levels_cleared", totals.LevelsCleared).
		Msg("Session totals")
}

// resolveColorMode turns "auto" into a concrete mode from the terminal colour count
func resolveColorMode(mode string, colors int) string {
	if mode != config.ColorAuto {
		return mode
	}
	switch {
	case colors >= 1<<24:
		return config.ColorTrueColor
	case colors >= 256:
		return config.Color256
	case colors > 0:
		return config.ColorMono
	default:
		return config.ColorTrueColor
	}
}
