// Package session runs the frame loop of a game session and its restarts
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/roadrush/constants"
	"github.com/lixenwraith/roadrush/engine"
	"github.com/lixenwraith/roadrush/events"
	"github.com/lixenwraith/roadrush/input"
	"github.com/lixenwraith/roadrush/render"
	"go.uber.org/zap"
)

var (
	ErrNoScreen = errors.New("session requires a screen")
	ErrNoState  = errors.New("session requires a game state")
)

// Renderer consumes one frame per tick
type Renderer interface {
	Draw(f engine.Frame)
}

// SoundPlayer is the fire-and-forget audio sink
type SoundPlayer interface {
	PlayCollision()
	PlayBoost()
}

type silentPlayer struct{}

func (silentPlayer) PlayCollision() {}
func (silentPlayer) PlayBoost()     {}

// Options wires a Runner; nil collaborators get defaults
type Options struct {
	Screen       tcell.Screen
	State        *engine.GameState
	Renderer     Renderer
	Tracker      *input.Tracker
	Sound        SoundPlayer
	Logger       *zap.Logger
	TickInterval time.Duration
}

// Runner owns the loop: terminal events in, one tick and one draw per interval
type Runner struct {
	screen   tcell.Screen
	state    *engine.GameState
	renderer Renderer
	tracker  *input.Tracker
	sound    SoundPlayer
	log      *zap.Logger
	interval time.Duration

	last   engine.Frame
	scores []int
}

// New validates the options and fills defaults
func New(opts Options) (*Runner, error) {
	if opts.Screen == nil {
		return nil, ErrNoScreen
	}
	if opts.State == nil {
		return nil, ErrNoState
	}

	r := &Runner{
		screen:   opts.Screen,
		state:    opts.State,
		renderer: opts.Renderer,
		tracker:  opts.Tracker,
		sound:    opts.Sound,
		log:      opts.Logger,
		interval: opts.TickInterval,
	}
	if r.renderer == nil {
		r.renderer = render.NewTerminalRenderer(opts.Screen)
	}
	if r.tracker == nil {
		r.tracker = input.NewTracker(constants.KeyHoldWindow, nil)
	}
	if r.sound == nil {
		r.sound = silentPlayer{}
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	if r.interval <= 0 {
		r.interval = constants.FrameUpdateInterval
	}
	r.last = r.state.Snapshot()
	return r, nil
}

// Run drives the session until the player quits (nil) or ctx ends (ctx.Err())
// The poll goroutine has exited by the time Run returns, so Run can be called again
func (r *Runner) Run(ctx context.Context) error {
	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.poll(eventChan, done)
	}()
	defer func() {
		close(done)
		// Wake PollEvent; a full queue already has events for it to return
		_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
		wg.Wait()
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.renderer.Draw(r.last)
	p := r.state.Params()
	r.log.Info("session started",
		zap.Duration("tick", r.interval),
		zap.Float64("spawn_chance", p.SpawnChance),
		zap.Int("boost_duration", p.BoostDuration),
		zap.Int("boost_cooldown", p.BoostCooldownMax))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !r.HandleEvent(ev) {
				r.log.Info("quit", zap.Int("sessions", len(r.scores)))
				return nil
			}

		case <-ticker.C:
			r.Step()
		}
	}
}

// poll forwards terminal events until the screen is finalized or Run returns
func (r *Runner) poll(out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-done:
			return
		default:
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one terminal event, returns false when the player quits
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch r.tracker.HandleKey(ev) {
		case input.ActionQuit:
			return false
		case input.ActionRestart:
			if r.state.Over() {
				r.restart()
			}
		}

	case *tcell.EventResize:
		r.screen.Sync()
		r.renderer.Draw(r.last)
	}
	return true
}

// Step advances one tick and draws it; a finished session is frozen until restart
func (r *Runner) Step() {
	if r.state.Over() {
		return
	}
	f := r.state.Tick(r.tracker.Snapshot())
	r.dispatch(f)
	r.last = f
	r.renderer.Draw(f)
}

// dispatch routes the tick's events to the audio sink and the log
func (r *Runner) dispatch(f engine.Frame) {
	for _, ev := range f.Events {
		switch ev.Type {
		case events.EventBoostActivated:
			r.sound.PlayBoost()
			r.log.Debug("boost", zap.Uint64("tick", ev.Tick))

		case events.EventBoostReady:
			r.log.Debug("boost ready", zap.Uint64("tick", ev.Tick))

		case events.EventCollision:
			r.sound.PlayCollision()
			if p, ok := ev.Payload.(*events.CollisionPayload); ok && !p.Fatal {
				r.log.Debug("obstacle destroyed", zap.Uint64("tick", ev.Tick),
					zap.Float64("x", p.X), zap.Float64("y", p.Y))
			}

		case events.EventGameOver:
			if p, ok := ev.Payload.(*events.GameOverPayload); ok {
				r.scores = append(r.scores, p.Score)
				r.log.Info("game over", zap.Int("score", p.Score), zap.Uint64("tick", ev.Tick))
			}
		}
	}
}

// restart replaces the finished session with a fresh one
func (r *Runner) restart() {
	r.state.Reset()
	r.tracker.Release()
	r.last = r.state.Snapshot()
	r.renderer.Draw(r.last)
	r.log.Info("session restarted", zap.Int("previous", len(r.scores)))
}

// Last returns the most recently drawn frame
func (r *Runner) Last() engine.Frame {
	return r.last
}

// Scores returns the final score of every finished session in order
func (r *Runner) Scores() []int {
	out := make([]int, len(r.scores))
	copy(out, r.scores)
	return out
}
