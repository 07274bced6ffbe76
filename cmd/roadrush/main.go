package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/roadrush/audio"
	"github.com/lixenwraith/roadrush/config"
	"github.com/lixenwraith/roadrush/engine"
	"github.com/lixenwraith/roadrush/input"
	"github.com/lixenwraith/roadrush/session"
	"go.uber.org/zap"
)

var (
	configFlag = flag.String("config", "", "Path to a .toml or .yaml config file")
	seedFlag   = flag.Int64("seed", 0, "RNG seed, 0 uses the config or the clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to the configured log file")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roadrush: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	logger, logFile, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roadrush: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	scores, err := play(cfg, logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "roadrush: %v\n", err)
		os.Exit(1)
	}

	if n := len(scores); n > 0 {
		fmt.Printf("Game Over! Your score: %d\n", scores[n-1])
	}
}

// loadConfig reads the optional file, then environment overrides, then validates
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *debugFlag {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
}

// play owns the terminal for the lifetime of the game and returns the final scores
func play(cfg *config.Config, logger *zap.Logger) ([]int, error) {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state, err := engine.NewGameState(cfg.Game.Params(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	sound := audio.NewSoundManager(cfg.Audio.SoundConfig())

	// Panic recovery: os.Exit skips every deferred cleanup, so the handler does it
	defer func() {
		if r := recover(); r != nil {
			reportCrash(os.Stderr, r, debug.Stack(), screen, sound, logger)
			os.Exit(1)
		}
	}()
	screen.HideCursor()

	if err := sound.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Cleanup()

	runner, err := session.New(session.Options{
		Screen:       screen,
		State:        state,
		Tracker:      input.NewTracker(cfg.Input.HoldWindow, nil),
		Sound:        sound,
		Logger:       logger,
		TickInterval: cfg.Game.TickInterval,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("starting", zap.Int64("seed", seed), zap.Bool("audio", sound.Initialized()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = runner.Run(ctx)
	return runner.Scores(), err
}

// shutdowner is the part of the sound manager the crash handler needs
type shutdowner interface {
	Cleanup()
}

// reportCrash restores the terminal, stops audio and flushes the log, then prints the panic
func reportCrash(w io.Writer, r any, stack []byte, screen tcell.Screen, sound shutdowner, logger *zap.Logger) {
	screen.Fini()
	sound.Cleanup()
	logger.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", stack))
	_ = logger.Sync()

	fmt.Fprintf(w, "\n\x1b[31mROADRUSH CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
}
