// Package config provides configuration loading for the particle fountain.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Vec3 is a YAML-friendly three component vector.
type Vec3 [3]float32

// Mgl converts to the math library type.
func (v Vec3) Mgl() mgl32.Vec3 { return mgl32.Vec3(v) }

// Config holds every tunable. It is read once at startup.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Pool      PoolConfig      `yaml:"pool"`
	Emitter   EmitterConfig   `yaml:"emitter"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	VSync   bool   `yaml:"vsync"`
	Samples int    `yaml:"samples"` // MSAA samples, 0 = off
}

// CameraConfig describes the static look-at camera.
type CameraConfig struct {
	Position   Vec3    `yaml:"position"`
	Target     Vec3    `yaml:"target"`
	Up         Vec3    `yaml:"up"`
	FovDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

type PoolConfig struct {
	Capacity int `yaml:"capacity"`
}

// EmitterConfig holds spawn parameters. Rate is per simulation tick.
type EmitterConfig struct {
	Rate      int     `yaml:"rate"`
	Origin    Vec3    `yaml:"origin"`
	Direction Vec3    `yaml:"direction"`
	Spread    float32 `yaml:"spread"`
	LifeMs    float32 `yaml:"life_ms"`
	SizeMin   float32 `yaml:"size_min"`
	SizeMax   float32 `yaml:"size_max"`
	AlphaMax  float32 `yaml:"alpha_max"`
}

type PhysicsConfig struct {
	Gravity          Vec3 `yaml:"gravity"`
	TickRate         int  `yaml:"tick_rate"`
	MaxTicksPerFrame int  `yaml:"max_ticks_per_frame"`
}

type TelemetryConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	TickMillis   float32       // life decrement and integration step
	TickDuration time.Duration // pacer step
	Aspect       float32
	Interval     time.Duration
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate reports every field that would break the simulation.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.Samples >= 0, "window.samples %d must not be negative", c.Window.Samples)
	check(c.Camera.Near > 0 && c.Camera.Near < c.Camera.Far, "camera near/far %g/%g must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far)
	check(c.Camera.FovDegrees > 0 && c.Camera.FovDegrees < 180, "camera.fov_degrees %g must be in (0, 180)", c.Camera.FovDegrees)
	check(c.Pool.Capacity > 0, "pool.capacity %d must be positive", c.Pool.Capacity)
	check(c.Emitter.Rate >= 0, "emitter.rate %d must not be negative", c.Emitter.Rate)
	check(c.Emitter.LifeMs > 0, "emitter.life_ms %g must be positive", c.Emitter.LifeMs)
	check(c.Emitter.SizeMin >= 0 && c.Emitter.SizeMin <= c.Emitter.SizeMax, "emitter size range [%g, %g] is invalid", c.Emitter.SizeMin, c.Emitter.SizeMax)
	check(c.Emitter.AlphaMax >= 0 && c.Emitter.AlphaMax <= 1, "emitter.alpha_max %g must be in [0, 1]", c.Emitter.AlphaMax)
	check(c.Physics.TickRate > 0, "physics.tick_rate %d must be positive", c.Physics.TickRate)
	check(c.Physics.MaxTicksPerFrame >= 1, "physics.max_ticks_per_frame %d must be at least 1", c.Physics.MaxTicksPerFrame)
	check(c.Telemetry.IntervalMs > 0, "telemetry.interval_ms %d must be positive", c.Telemetry.IntervalMs)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) computeDerived() {
	c.Derived.TickMillis = 1000.0 / float32(c.Physics.TickRate)
	c.Derived.TickDuration = time.Second / time.Duration(c.Physics.TickRate)
	c.Derived.Aspect = float32(c.Window.Width) / float32(c.Window.Height)
	c.Derived.Interval = time.Duration(c.Telemetry.IntervalMs) * time.Millisecond
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
