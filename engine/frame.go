package engine

import (
	"github.com/lixenwraith/roadrush/events"
)

// Frame is the render model of one tick, detached from the live state
type Frame struct {
	Tick uint64

	CanvasWidth  float64
	CanvasHeight float64

	Vehicle   Rect
	Obstacles []Rect
	Particles []Particle

	Score          int
	Boosting       bool
	Phase          BoostPhase
	BoostRemaining int
	BoostDuration  int
	Cooldown       int
	ObstacleSpeed  float64
	RoadOffset     float64

	Over   bool
	Events []events.GameEvent
}

// frame snapshots the state together with the events of this tick
func (s *GameState) frame(evs []events.GameEvent) Frame {
	obstacles := make([]Rect, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = o.Rect
	}
	particles := make([]Particle, len(s.particles))
	copy(particles, s.particles)

	return Frame{
		Tick:           s.tick,
		CanvasWidth:    s.params.CanvasWidth,
		CanvasHeight:   s.params.CanvasHeight,
		Vehicle:        s.vehicle.Rect,
		Obstacles:      obstacles,
		Particles:      particles,
		Score:          s.score,
		Boosting:       s.boost.Active,
		Phase:          s.boost.Phase(),
		BoostRemaining: s.boost.Remaining,
		BoostDuration:  s.boost.Duration,
		Cooldown:       s.boost.Cooldown,
		ObstacleSpeed:  s.obstacleSpeed,
		RoadOffset:     s.roadOffset,
		Over:           s.over,
		Events:         evs,
	}
}

// Snapshot returns the current render model without advancing the simulation
func (s *GameState) Snapshot() Frame {
	return s.frame(nil)
}

// GameOver returns the terminal event of the frame, if any
func (f Frame) GameOver() (*events.GameOverPayload, bool) {
	for _, ev := range f.Events {
		if ev.Type != events.EventGameOver {
			continue
		}
		if p, ok := ev.Payload.(*events.GameOverPayload); ok {
			return p, true
		}
	}
	return nil, false
}

// BoostFraction is the share of the boost still to run, 0 when not boosting
func (f Frame) BoostFraction() float64 {
	if !f.Boosting || f.BoostDuration <= 0 {
		return 0
	}
	return float64(f.BoostRemaining) / float64(f.BoostDuration)
}

// CooldownSeconds is the cooldown as shown in the HUD
func (f Frame) CooldownSeconds(divisor float64) float64 {
	if divisor <= 0 {
		return 0
	}
	return float64(f.Cooldown) / divisor
}
