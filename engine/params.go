package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/roadrush/constants"
)

// ErrInvalidParams is wrapped by every Params validation failure
var ErrInvalidParams = errors.New("invalid game parameters")

// Params holds the tuning of a session; distances in pixels, durations in ticks
type Params struct {
	CanvasWidth  float64
	CanvasHeight float64

	VehicleWidth        float64
	VehicleHeight       float64
	VehicleStartRatio   float64
	VehicleBottomMargin float64
	VehicleSpeed        float64
	VehicleBoostSpeed   float64
	VehicleCruiseSpeed  float64

	ObstacleWidth      float64
	ObstacleHeight     float64
	ObstacleSpeed      float64
	ObstacleBoostSpeed float64
	SpawnChance        float64

	BoostDuration    int
	BoostCooldownMax int

	ParticleBurst   int
	ParticleSpeed   float64
	ParticleFade    float64
	ParticleMinSize float64
	ParticleMaxSize float64
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		CanvasWidth:  constants.CanvasWidth,
		CanvasHeight: constants.CanvasHeight,

		VehicleWidth:        constants.VehicleWidth,
		VehicleHeight:       constants.VehicleHeight,
		VehicleStartRatio:   constants.VehicleStartRatio,
		VehicleBottomMargin: constants.VehicleBottomMargin,
		VehicleSpeed:        constants.VehicleSpeed,
		VehicleBoostSpeed:   constants.VehicleBoostSpeed,
		VehicleCruiseSpeed:  constants.VehicleCruiseSpeed,

		ObstacleWidth:      constants.ObstacleWidth,
		ObstacleHeight:     constants.ObstacleHeight,
		ObstacleSpeed:      constants.ObstacleSpeed,
		ObstacleBoostSpeed: constants.ObstacleBoostSpeed,
		SpawnChance:        constants.ObstacleSpawnChance,

		BoostDuration:    constants.BoostDuration,
		BoostCooldownMax: constants.BoostCooldownMax,

		ParticleBurst:   constants.ParticleBurstCount,
		ParticleSpeed:   constants.ParticleSpeed,
		ParticleFade:    constants.ParticleFadeStep,
		ParticleMinSize: constants.ParticleMinSize,
		ParticleMaxSize: constants.ParticleMaxSize,
	}
}

// Validate rejects tunings the tick loop cannot run with
func (p Params) Validate() error {
	switch {
	case p.CanvasWidth <= 0 || p.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas %vx%v", ErrInvalidParams, p.CanvasWidth, p.CanvasHeight)
	case p.VehicleWidth <= 0 || p.VehicleHeight <= 0:
		return fmt.Errorf("%w: vehicle %vx%v", ErrInvalidParams, p.VehicleWidth, p.VehicleHeight)
	case p.VehicleWidth > p.CanvasWidth || p.VehicleBottomMargin > p.CanvasHeight:
		return fmt.Errorf("%w: vehicle does not fit the canvas", ErrInvalidParams)
	case p.VehicleStartRatio < 0 || p.VehicleStartRatio > 1:
		return fmt.Errorf("%w: vehicle start ratio %v", ErrInvalidParams, p.VehicleStartRatio)
	case p.ObstacleWidth <= 0 || p.ObstacleHeight <= 0 || p.ObstacleWidth > p.CanvasWidth:
		return fmt.Errorf("%w: obstacle %vx%v", ErrInvalidParams, p.ObstacleWidth, p.ObstacleHeight)
	case p.ObstacleSpeed <= 0 || p.ObstacleBoostSpeed <= 0:
		return fmt.Errorf("%w: obstacle speed must be positive", ErrInvalidParams)
	case p.SpawnChance < 0 || p.SpawnChance > 1:
		return fmt.Errorf("%w: spawn chance %v", ErrInvalidParams, p.SpawnChance)
	case p.BoostDuration <= 0 || p.BoostCooldownMax < 0:
		return fmt.Errorf("%w: boost %d/%d ticks", ErrInvalidParams, p.BoostDuration, p.BoostCooldownMax)
	case p.ParticleBurst < 0 || p.ParticleFade <= 0:
		return fmt.Errorf("%w: particle burst %d fade %v", ErrInvalidParams, p.ParticleBurst, p.ParticleFade)
	case p.ParticleMinSize > p.ParticleMaxSize:
		return fmt.Errorf("%w: particle size range [%v, %v)", ErrInvalidParams, p.ParticleMinSize, p.ParticleMaxSize)
	}
	return nil
}

// vehicleStart returns the initial car box
func (p Params) vehicleStart() Rect {
	return Rect{
		X: p.CanvasWidth * p.VehicleStartRatio,
		Y: p.CanvasHeight - p.VehicleBottomMargin,
		W: p.VehicleWidth,
		H: p.VehicleHeight,
	}
}
