package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/roadrush/engine"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionRight},
		{"a", runeKey('a'), ActionLeft},
		{"h", runeKey('h'), ActionLeft},
		{"d", runeKey('d'), ActionRight},
		{"l", runeKey('l'), ActionRight},
		{"space", runeKey(' '), ActionBoost},
		{"k", runeKey('k'), ActionBoost},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"q", runeKey('q'), ActionQuit},
		{"r", runeKey('r'), ActionRestart},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionRestart},
		{"unmapped", runeKey('z'), ActionNone},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ev); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTrackerHoldWindow verifies a press stays held for the window then releases
func TestTrackerHoldWindow(t *testing.T) {
	clock := NewMockClock(time.Unix(1000, 0))
	tr := NewTracker(150*time.Millisecond, clock)

	if got := tr.Snapshot(); got != (engine.Input{}) {
		t.Fatalf("Snapshot before any press = %+v", got)
	}

	if a := tr.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)); a != ActionLeft {
		t.Fatalf("HandleKey = %v, want left", a)
	}
	if got := tr.Snapshot(); !got.Left || got.Right || got.Boost {
		t.Fatalf("Snapshot after press = %+v", got)
	}

	clock.Advance(149 * time.Millisecond)
	if !tr.Snapshot().Left {
		t.Error("Left should still be held inside the window")
	}

	clock.Advance(1 * time.Millisecond)
	if tr.Snapshot().Left {
		t.Error("Left should release at the window boundary")
	}
}

// TestTrackerAutorepeatExtendsHold verifies repeated presses keep the action held
func TestTrackerAutorepeatExtendsHold(t *testing.T) {
	clock := NewMockClock(time.Unix(1000, 0))
	tr := NewTracker(100*time.Millisecond, clock)

	for i := 0; i < 10; i++ {
		tr.HandleKey(runeKey(' '))
		clock.Advance(60 * time.Millisecond)
		if !tr.Snapshot().Boost {
			t.Fatalf("Repeat %d: boost should stay held", i)
		}
	}
}

// TestTrackerIndependentActions verifies actions are tracked separately
func TestTrackerIndependentActions(t *testing.T) {
	clock := NewMockClock(time.Unix(1000, 0))
	tr := NewTracker(100*time.Millisecond, clock)

	tr.HandleKey(runeKey('d'))
	clock.Advance(80 * time.Millisecond)
	tr.HandleKey(runeKey(' '))
	clock.Advance(30 * time.Millisecond)

	got := tr.Snapshot()
	if got.Right {
		t.Error("Right should have expired")
	}
	if !got.Boost {
		t.Error("Boost should be held")
	}
}

// TestTrackerRelease verifies Release clears held state
func TestTrackerRelease(t *testing.T) {
	tr := NewTracker(time.Second, NewMockClock(time.Unix(1000, 0)))
	tr.HandleKey(runeKey('a'))
	tr.HandleKey(runeKey(' '))

	tr.Release()

	if got := tr.Snapshot(); got != (engine.Input{}) {
		t.Errorf("Snapshot after release = %+v", got)
	}
	if tr.Held(ActionNone) || tr.Held(Action(42)) {
		t.Error("Out of range actions are never held")
	}
}

// TestTrackerIgnoresUnmapped verifies unmapped keys do not touch state
func TestTrackerIgnoresUnmapped(t *testing.T) {
	tr := NewTracker(time.Second, NewMockClock(time.Unix(1000, 0)))
	if a := tr.HandleKey(runeKey('x')); a != ActionNone {
		t.Errorf("HandleKey = %v, want none", a)
	}
	if got := tr.Snapshot(); got != (engine.Input{}) {
		t.Errorf("Snapshot = %+v", got)
	}
}
