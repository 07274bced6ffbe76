package events

// BoostPayload carries boost timers at the moment of the transition
type BoostPayload struct {
	Duration int // Ticks of boost remaining
	Cooldown int // Ticks until boost can be reactivated
}

// ScorePayload carries the score after an increment
type ScorePayload struct {
	Score int
}

// CollisionPayload describes a struck obstacle
// Fatal is false when the obstacle was destroyed by a boosting car
type CollisionPayload struct {
	X, Y  float64
	Fatal bool
}

// GameOverPayload carries the score at the moment of the fatal collision
type GameOverPayload struct {
	Score int
}
