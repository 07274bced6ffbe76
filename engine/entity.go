package engine

// Vehicle is the player car
type Vehicle struct {
	Rect
	Speed float64
}

// Obstacle is a pedestrian falling down the road
type Obstacle struct {
	Rect
}

// Particle is a decorative wind mark spawned by a boost burst
type Particle struct {
	X, Y  float64
	Alpha float64
	Size  float64
}

// alphaEpsilon absorbs float drift from repeated fade subtraction
const alphaEpsilon = 1e-9

// expired reports whether the particle has faded out
func (p Particle) expired() bool {
	return p.Alpha <= alphaEpsilon
}
