package engine

// BoostPhase is the externally visible state of the boost state machine
type BoostPhase int

const (
	// BoostIdle accepts boost input
	BoostIdle BoostPhase = iota
	// BoostActive counts the boost duration down, input ignored
	BoostActive
	// BoostCooldown waits for the cooldown to drain, input ignored
	BoostCooldown
)

func (p BoostPhase) String() string {
	switch p {
	case BoostIdle:
		return "idle"
	case BoostActive:
		return "boosting"
	case BoostCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Boost tracks the timed speed-up and its reactivation gate
// Cooldown starts together with the boost and counts down independently of it
type Boost struct {
	Active      bool
	Remaining   int
	Cooldown    int
	Duration    int
	CooldownMax int
}

// Phase derives the state machine position from the counters
func (b Boost) Phase() BoostPhase {
	switch {
	case b.Active:
		return BoostActive
	case b.Cooldown > 0:
		return BoostCooldown
	default:
		return BoostIdle
	}
}

// CanActivate reports whether boost input would be accepted this tick
func (b Boost) CanActivate() bool {
	return !b.Active && b.Cooldown == 0
}

// activate enters the boosting state, caller has checked CanActivate
func (b *Boost) activate() {
	b.Active = true
	b.Remaining = b.Duration
	b.Cooldown = b.CooldownMax
}

// decay advances the duration counter, returns true on the tick the boost expires
func (b *Boost) decay() bool {
	if !b.Active {
		return false
	}
	b.Remaining--
	if b.Remaining <= 0 {
		b.Remaining = 0
		b.Active = false
		return true
	}
	return false
}

// cool advances the cooldown counter, returns true on the tick it reaches zero
func (b *Boost) cool() bool {
	if b.Cooldown <= 0 {
		return false
	}
	b.Cooldown--
	return b.Cooldown == 0
}
