package events

// EventType represents the type of game event
type EventType int

const (
	// EventBoostActivated signals the car entering boost
	// Trigger: boost key held while idle | Payload: *BoostPayload
	EventBoostActivated EventType = iota

	// EventBoostEnded signals boost duration expiry, cooldown keeps running
	// Payload: *BoostPayload
	EventBoostEnded

	// EventBoostReady signals cooldown reaching zero
	// Payload: nil
	EventBoostReady

	// EventObstaclePassed signals an obstacle leaving the bottom edge uncollided
	// Consumer: score | Payload: *ScorePayload
	EventObstaclePassed

	// EventCollision signals the car striking an obstacle
	// Consumer: audio sink | Payload: *CollisionPayload
	EventCollision

	// EventGameOver terminates the session, no further ticks advance state
	// Trigger: collision without boost | Payload: *GameOverPayload
	EventGameOver
)

// String returns the event name for logging
func (t EventType) String() string {
	switch t {
	case EventBoostActivated:
		return "BoostActivated"
	case EventBoostEnded:
		return "BoostEnded"
	case EventBoostReady:
		return "BoostReady"
	case EventObstaclePassed:
		return "ObstaclePassed"
	case EventCollision:
		return "Collision"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent is a single occurrence emitted by a tick
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
