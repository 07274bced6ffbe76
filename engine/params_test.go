package engine

import (
	"errors"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams should validate, got %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero canvas", func(p *Params) { p.CanvasWidth = 0 }},
		{"negative vehicle", func(p *Params) { p.VehicleHeight = -1 }},
		{"vehicle wider than canvas", func(p *Params) { p.VehicleWidth = 2000 }},
		{"start ratio above one", func(p *Params) { p.VehicleStartRatio = 1.2 }},
		{"obstacle wider than canvas", func(p *Params) { p.ObstacleWidth = 1000 }},
		{"stopped obstacles", func(p *Params) { p.ObstacleSpeed = 0 }},
		{"negative spawn chance", func(p *Params) { p.SpawnChance = -0.1 }},
		{"zero boost duration", func(p *Params) { p.BoostDuration = 0 }},
		{"negative cooldown", func(p *Params) { p.BoostCooldownMax = -1 }},
		{"non-fading particles", func(p *Params) { p.ParticleFade = 0 }},
		{"inverted particle size", func(p *Params) { p.ParticleMinSize = 9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestBoostPhaseTransitions(t *testing.T) {
	b := Boost{Duration: 2, CooldownMax: 3}
	if b.Phase() != BoostIdle || !b.CanActivate() {
		t.Fatalf("New boost should be idle and ready")
	}

	b.activate()
	if b.Phase() != BoostActive || b.CanActivate() {
		t.Fatalf("Activated boost phase = %v", b.Phase())
	}

	if b.decay() {
		t.Fatal("Boost expired one tick early")
	}
	if !b.decay() {
		t.Fatal("Boost should expire after its duration")
	}
	b.cool()
	if b.Phase() != BoostCooldown || b.CanActivate() {
		t.Fatalf("Expired boost with cooldown phase = %v", b.Phase())
	}

	b.cool()
	if !b.cool() {
		t.Fatal("cool should report reaching zero")
	}
	if b.Phase() != BoostIdle || !b.CanActivate() {
		t.Errorf("Boost should be idle after cooldown, got %v", b.Phase())
	}
	if b.cool() {
		t.Error("cool at zero should be a no-op")
	}
}
