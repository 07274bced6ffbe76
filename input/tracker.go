package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/roadrush/engine"
)

// Action is the logical meaning of a key
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionBoost
	ActionQuit
	ActionRestart
	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionBoost:
		return "boost"
	case ActionQuit:
		return "quit"
	case ActionRestart:
		return "restart"
	default:
		return "none"
	}
}

// Classify maps a terminal key to its action
func Classify(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionRestart
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return ActionLeft
		case 'd', 'D', 'l':
			return ActionRight
		case ' ', 'k':
			return ActionBoost
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R':
			return ActionRestart
		}
	}
	return ActionNone
}

// Tracker turns discrete key presses into held state
// Terminals deliver presses and autorepeat but no releases, so an action
// counts as held while its last press is younger than the hold window
type Tracker struct {
	clock     Clock
	hold      time.Duration
	lastPress [actionCount]time.Time
}

// NewTracker creates a tracker, nil clock selects SystemClock
func NewTracker(hold time.Duration, clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Tracker{clock: clock, hold: hold}
}

// HandleKey records the press and returns its action
func (t *Tracker) HandleKey(ev *tcell.EventKey) Action {
	a := Classify(ev)
	if a != ActionNone {
		t.lastPress[a] = t.clock.Now()
	}
	return a
}

// Held reports whether the action is currently held
func (t *Tracker) Held(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	last := t.lastPress[a]
	if last.IsZero() {
		return false
	}
	return t.clock.Now().Sub(last) < t.hold
}

// Snapshot samples the driving actions for one tick
func (t *Tracker) Snapshot() engine.Input {
	return engine.Input{
		Left:  t.Held(ActionLeft),
		Right: t.Held(ActionRight),
		Boost: t.Held(ActionBoost),
	}
}

// Release forgets every press, used when a new session starts
func (t *Tracker) Release() {
	t.lastPress = [actionCount]time.Time{}
}
