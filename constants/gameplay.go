package constants

// Vehicle
const (
	VehicleWidth  = 50
	VehicleHeight = 100

	// VehicleStartRatio places the car at this fraction of canvas width
	VehicleStartRatio = 0.2

	// VehicleBottomMargin is the distance from car top to canvas bottom
	VehicleBottomMargin = 150

	// VehicleSpeed is the lateral speed of a fresh session
	VehicleSpeed = 8

	// VehicleBoostSpeed is the lateral speed while boosting
	VehicleBoostSpeed = 15

	// VehicleCruiseSpeed replaces VehicleSpeed once the first boost ends
	VehicleCruiseSpeed = 10
)

// Obstacles
const (
	ObstacleWidth  = 50
	ObstacleHeight = 80

	// ObstacleSpeed is the fall speed in pixels per tick, also the road scroll rate
	ObstacleSpeed      = 10
	ObstacleBoostSpeed = 15

	// ObstacleSpawnChance is the per-tick probability of a new obstacle
	ObstacleSpawnChance = 0.1
)

// Boost Mechanics (ticks)
const (
	BoostDuration    = 100
	BoostCooldownMax = 200
)

// Wind Particles
const (
	ParticleBurstCount = 10
	ParticleSpeed      = 10
	ParticleFadeStep   = 0.02
	ParticleMinSize    = 2
	ParticleMaxSize    = 7
)
