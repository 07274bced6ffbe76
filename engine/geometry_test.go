package engine

import "testing"

func TestRectIntersects(t *testing.T) {
	car := Rect{X: 100, Y: 100, W: 50, H: 100}

	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlap", Rect{X: 120, Y: 150, W: 50, H: 80}, true},
		{"contained", Rect{X: 110, Y: 110, W: 10, H: 10}, true},
		{"touch left edge", Rect{X: 50, Y: 100, W: 50, H: 80}, false},
		{"touch right edge", Rect{X: 150, Y: 100, W: 50, H: 80}, false},
		{"touch top edge", Rect{X: 100, Y: 20, W: 50, H: 80}, false},
		{"touch bottom edge", Rect{X: 100, Y: 200, W: 50, H: 80}, false},
		{"far away", Rect{X: 500, Y: 500, W: 50, H: 80}, false},
		{"one pixel into bottom", Rect{X: 100, Y: 199, W: 50, H: 80}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := car.Intersects(tt.o); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.o, got, tt.want)
			}
			if got := tt.o.Intersects(car); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.o)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-5, 0, 10); got != 0 {
		t.Errorf("clamp below = %v, want 0", got)
	}
	if got := clamp(15, 0, 10); got != 10 {
		t.Errorf("clamp above = %v, want 10", got)
	}
	if got := clamp(7, 0, 10); got != 7 {
		t.Errorf("clamp inside = %v, want 7", got)
	}
}
