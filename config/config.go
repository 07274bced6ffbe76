// Package config loads game, input, audio and logging settings from TOML or YAML
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/roadrush/audio"
	"github.com/lixenwraith/roadrush/constants"
	"github.com/lixenwraith/roadrush/engine"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

type Config struct {
	Game    GameConfig    `toml:"game" yaml:"game"`
	Input   InputConfig   `toml:"input" yaml:"input"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// GameConfig mirrors engine.Params plus loop timing
type GameConfig struct {
	CanvasWidth  float64 `toml:"canvas_width" yaml:"canvas_width"`
	CanvasHeight float64 `toml:"canvas_height" yaml:"canvas_height"`

	VehicleSpeed       float64 `toml:"vehicle_speed" yaml:"vehicle_speed"`
	VehicleBoostSpeed  float64 `toml:"vehicle_boost_speed" yaml:"vehicle_boost_speed"`
	VehicleCruiseSpeed float64 `toml:"vehicle_cruise_speed" yaml:"vehicle_cruise_speed"`

	ObstacleSpeed      float64 `toml:"obstacle_speed" yaml:"obstacle_speed"`
	ObstacleBoostSpeed float64 `toml:"obstacle_boost_speed" yaml:"obstacle_boost_speed"`
	SpawnChance        float64 `toml:"spawn_chance" yaml:"spawn_chance"`

	BoostDuration    int `toml:"boost_duration" yaml:"boost_duration"`       // ticks
	BoostCooldownMax int `toml:"boost_cooldown_max" yaml:"boost_cooldown_max"` // ticks

	ParticleBurst int     `toml:"particle_burst" yaml:"particle_burst"`
	ParticleSpeed float64 `toml:"particle_speed" yaml:"particle_speed"`
	ParticleFade  float64 `toml:"particle_fade" yaml:"particle_fade"`

	TickInterval time.Duration `toml:"tick_interval" yaml:"tick_interval"`
	Seed         int64         `toml:"seed" yaml:"seed"` // 0 seeds from the clock
}

type InputConfig struct {
	HoldWindow time.Duration `toml:"hold_window" yaml:"hold_window"`
}

type AudioConfig struct {
	Enabled         bool    `toml:"enabled" yaml:"enabled"`
	MasterVolume    float64 `toml:"master_volume" yaml:"master_volume"`       // 0.0-1.0
	CollisionVolume float64 `toml:"collision_volume" yaml:"collision_volume"` // 0.0-1.0
	BoostVolume     float64 `toml:"boost_volume" yaml:"boost_volume"`         // 0.0-1.0
	SampleRate      int     `toml:"sample_rate" yaml:"sample_rate"`
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Level   string `toml:"level" yaml:"level"`
	Format  string `toml:"format" yaml:"format"` // "json" or "console"
	File    string `toml:"file" yaml:"file"`
	MaxSize int64  `toml:"max_size" yaml:"max_size"` // bytes, rotated at startup
}

// Default returns the stock configuration
func Default() *Config {
	p := engine.DefaultParams()
	ac := audio.DefaultAudioConfig()
	return &Config{
		Game: GameConfig{
			CanvasWidth:        p.CanvasWidth,
			CanvasHeight:       p.CanvasHeight,
			VehicleSpeed:       p.VehicleSpeed,
			VehicleBoostSpeed:  p.VehicleBoostSpeed,
			VehicleCruiseSpeed: p.VehicleCruiseSpeed,
			ObstacleSpeed:      p.ObstacleSpeed,
			ObstacleBoostSpeed: p.ObstacleBoostSpeed,
			SpawnChance:        p.SpawnChance,
			BoostDuration:      p.BoostDuration,
			BoostCooldownMax:   p.BoostCooldownMax,
			ParticleBurst:      p.ParticleBurst,
			ParticleSpeed:      p.ParticleSpeed,
			ParticleFade:       p.ParticleFade,
			TickInterval:       constants.FrameUpdateInterval,
		},
		Input: InputConfig{
			HoldWindow: constants.KeyHoldWindow,
		},
		Audio: AudioConfig{
			Enabled:         ac.Enabled,
			MasterVolume:    ac.MasterVolume,
			CollisionVolume: ac.EffectVolumes[audio.SoundCrash],
			BoostVolume:     ac.EffectVolumes[audio.SoundWhoosh],
			SampleRate:      ac.SampleRate,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Format:  "console",
			File:    filepath.Join("logs", "roadrush.log"),
			MaxSize: 10 * 1024 * 1024,
		},
	}
}

// Load reads path over the defaults, the extension selects the decoder
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from ROADRUSH_* environment variables
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ROADRUSH_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}

	// Master volume 0-100
	if v := os.Getenv("ROADRUSH_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = clampUnit(float64(n) / 100.0)
		}
	}

	if v := os.Getenv("ROADRUSH_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Game.Seed = n
		}
	}

	if v := os.Getenv("ROADRUSH_LOG_LEVEL"); v != "" {
		c.Logging.Enabled = true
		c.Logging.Level = v
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.Game.Params().Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if c.Game.TickInterval <= 0 {
		return fmt.Errorf("game: tick_interval must be positive, got %v", c.Game.TickInterval)
	}
	if c.Input.HoldWindow <= 0 {
		return fmt.Errorf("input: hold_window must be positive, got %v", c.Input.HoldWindow)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio: sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	for name, v := range map[string]float64{
		"master_volume":    c.Audio.MasterVolume,
		"collision_volume": c.Audio.CollisionVolume,
		"boost_volume":     c.Audio.BoostVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("audio: %s must be within [0, 1], got %v", name, v)
		}
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging: format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Params converts the game section into engine tuning
func (g GameConfig) Params() engine.Params {
	p := engine.DefaultParams()
	p.CanvasWidth = g.CanvasWidth
	p.CanvasHeight = g.CanvasHeight
	p.VehicleSpeed = g.VehicleSpeed
	p.VehicleBoostSpeed = g.VehicleBoostSpeed
	p.VehicleCruiseSpeed = g.VehicleCruiseSpeed
	p.ObstacleSpeed = g.ObstacleSpeed
	p.ObstacleBoostSpeed = g.ObstacleBoostSpeed
	p.SpawnChance = g.SpawnChance
	p.BoostDuration = g.BoostDuration
	p.BoostCooldownMax = g.BoostCooldownMax
	p.ParticleBurst = g.ParticleBurst
	p.ParticleSpeed = g.ParticleSpeed
	p.ParticleFade = g.ParticleFade
	return p
}

// SoundConfig converts the audio section for the sound manager
func (a AudioConfig) SoundConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = a.Enabled
	ac.MasterVolume = a.MasterVolume
	ac.EffectVolumes[audio.SoundCrash] = a.CollisionVolume
	ac.EffectVolumes[audio.SoundWhoosh] = a.BoostVolume
	ac.SampleRate = a.SampleRate
	return ac
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
