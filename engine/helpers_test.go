package engine

import (
	"testing"

	"github.com/lixenwraith/roadrush/events"
)

// scriptedRand replays fixed values, then a value that never passes the spawn roll
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	if r.i < len(r.vals) {
		v := r.vals[r.i]
		r.i++
		return v
	}
	return 0.99
}

func newTestState(t *testing.T, vals ...float64) *GameState {
	t.Helper()
	s, err := NewGameState(DefaultParams(), &scriptedRand{vals: vals})
	if err != nil {
		t.Fatalf("NewGameState failed: %v", err)
	}
	return s
}

// placeObstacle drops an obstacle at an exact position
func placeObstacle(s *GameState, x, y float64) {
	p := s.params
	s.obstacles = append(s.obstacles, Obstacle{Rect{X: x, Y: y, W: p.ObstacleWidth, H: p.ObstacleHeight}})
}

func countEvents(f Frame, t events.EventType) int {
	n := 0
	for _, ev := range f.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
