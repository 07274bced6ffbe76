package engine

import (
	"github.com/lixenwraith/roadrush/events"
)

// RandomSource supplies uniform floats in [0, 1)
// *rand.Rand satisfies it; tests script the sequence
type RandomSource interface {
	Float64() float64
}

// GameState is the whole simulation of one session
// Single writer: only the session loop calls Tick and Reset
type GameState struct {
	params Params
	rng    RandomSource

	vehicle       Vehicle
	obstacles     []Obstacle
	particles     []Particle
	boost         Boost
	obstacleSpeed float64
	roadOffset    float64
	score         int
	tick          uint64
	over          bool
}

// NewGameState validates the parameters and builds a fresh session
func NewGameState(p Params, rng RandomSource) (*GameState, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &GameState{params: p, rng: rng}
	s.Reset()
	return s, nil
}

// Reset discards the session and starts a new one with the same parameters
func (s *GameState) Reset() {
	p := s.params
	s.vehicle = Vehicle{Rect: p.vehicleStart(), Speed: p.VehicleSpeed}
	s.obstacles = s.obstacles[:0]
	s.particles = s.particles[:0]
	s.boost = Boost{Duration: p.BoostDuration, CooldownMax: p.BoostCooldownMax}
	s.obstacleSpeed = p.ObstacleSpeed
	s.roadOffset = 0
	s.score = 0
	s.tick = 0
	s.over = false
}

// Tick advances the simulation by one frame and returns the render model
// Once a fatal collision has ended the session further calls change nothing
// and carry no events
func (s *GameState) Tick(in Input) Frame {
	if s.over {
		return s.frame(nil)
	}
	s.tick++

	var evs []events.GameEvent
	emit := func(t events.EventType, payload any) {
		evs = append(evs, events.GameEvent{Type: t, Payload: payload, Tick: s.tick})
	}

	startPhase := s.boost.Phase()

	s.scrollRoad()
	s.steer(in)

	if in.Boost && s.boost.CanActivate() {
		s.activateBoost()
		emit(events.EventBoostActivated, &events.BoostPayload{
			Duration: s.boost.Remaining,
			Cooldown: s.boost.Cooldown,
		})
	}

	if s.boost.Active {
		s.vehicle.Speed = s.params.VehicleBoostSpeed
		if s.boost.decay() {
			s.vehicle.Speed = s.params.VehicleCruiseSpeed
			s.obstacleSpeed = s.params.ObstacleSpeed
			emit(events.EventBoostEnded, &events.BoostPayload{Cooldown: s.boost.Cooldown})
		}
	}

	s.boost.cool()
	if startPhase != BoostIdle && s.boost.Phase() == BoostIdle {
		emit(events.EventBoostReady, nil)
	}

	if s.updateObstacles(emit) {
		return s.frame(evs)
	}

	s.spawnObstacle()
	s.updateParticles()

	return s.frame(evs)
}

// scrollRoad advances the tiled road background, wrapping at canvas height
func (s *GameState) scrollRoad() {
	s.roadOffset += s.obstacleSpeed
	if s.roadOffset >= s.params.CanvasHeight {
		s.roadOffset = 0
	}
}

// steer applies lateral input, keeping the car on the canvas
func (s *GameState) steer(in Input) {
	x := s.vehicle.X
	if in.Left {
		x -= s.vehicle.Speed
	}
	if in.Right {
		x += s.vehicle.Speed
	}
	s.vehicle.X = clamp(x, 0, s.params.CanvasWidth-s.vehicle.W)
}

func (s *GameState) activateBoost() {
	s.boost.activate()
	s.obstacleSpeed = s.params.ObstacleBoostSpeed
	s.spawnWindBurst()
}

// updateObstacles moves every obstacle and resolves scoring and collisions
// Returns true when a fatal collision ended the session
func (s *GameState) updateObstacles(emit func(events.EventType, any)) bool {
	kept := s.obstacles[:0]
	for i, o := range s.obstacles {
		o.Y += s.obstacleSpeed

		if o.Y > s.params.CanvasHeight {
			s.score++
			emit(events.EventObstaclePassed, &events.ScorePayload{Score: s.score})
			continue
		}

		if !s.vehicle.Intersects(o.Rect) {
			kept = append(kept, o)
			continue
		}

		if s.boost.Active {
			emit(events.EventCollision, &events.CollisionPayload{X: o.X, Y: o.Y})
			continue
		}

		emit(events.EventCollision, &events.CollisionPayload{X: o.X, Y: o.Y, Fatal: true})
		emit(events.EventGameOver, &events.GameOverPayload{Score: s.score})
		s.over = true

		// Freeze the rest of the road as it was for the final frame
		kept = append(kept, o)
		kept = append(kept, s.obstacles[i+1:]...)
		s.obstacles = kept
		return true
	}
	s.obstacles = kept
	return false
}

// spawnObstacle rolls the per-tick spawn chance
func (s *GameState) spawnObstacle() {
	if s.rng.Float64() >= s.params.SpawnChance {
		return
	}
	p := s.params
	s.obstacles = append(s.obstacles, Obstacle{Rect{
		X: s.rng.Float64() * (p.CanvasWidth - p.ObstacleWidth),
		Y: -p.ObstacleHeight,
		W: p.ObstacleWidth,
		H: p.ObstacleHeight,
	}})
}

func (s *GameState) spawnWindBurst() {
	p := s.params
	for i := 0; i < p.ParticleBurst; i++ {
		s.particles = append(s.particles, Particle{
			X:     s.rng.Float64() * p.CanvasWidth,
			Y:     s.rng.Float64() * p.CanvasHeight,
			Alpha: 1,
			Size:  p.ParticleMinSize + s.rng.Float64()*(p.ParticleMaxSize-p.ParticleMinSize),
		})
	}
}

// updateParticles drifts and fades the wind, dropping faded particles
// Survivors keep spawn order
func (s *GameState) updateParticles() {
	kept := s.particles[:0]
	for _, pt := range s.particles {
		pt.Y += s.params.ParticleSpeed
		pt.Alpha -= s.params.ParticleFade
		if pt.expired() {
			continue
		}
		kept = append(kept, pt)
	}
	s.particles = kept
}

// Params returns the tuning the state was built with
func (s *GameState) Params() Params {
	return s.params
}

// Score returns the number of obstacles passed
func (s *GameState) Score() int {
	return s.score
}

// Over reports whether a fatal collision has ended the session
func (s *GameState) Over() bool {
	return s.over
}

// Boost returns a copy of the boost counters
func (s *GameState) Boost() Boost {
	return s.boost
}

// Vehicle returns a copy of the car
func (s *GameState) Vehicle() Vehicle {
	return s.vehicle
}
