// Package config holds the tuning values for a game session and loads
// overrides from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Physics describes the simulation and the pixel/physics unit relation.
type Physics struct {
	GravityY float64 `yaml:"gravity_y"`
	// Scale is pixels per physics unit.
	Scale float64 `yaml:"scale"`
}

// Room is the pixel size of one grid cell.
type Room struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// SwapSeconds is how long the swap animation of one room takes.
	SwapSeconds float64 `yaml:"swap_seconds"`
}

// Character holds the shared body and movement settings.
type Character struct {
	HalfWidth   float64 `yaml:"half_width"`
	HalfHeight  float64 `yaml:"half_height"`
	RunSpeed    float64 `yaml:"run_speed"`
	JumpSpeed   float64 `yaml:"jump_speed"`
	TrailLength int     `yaml:"trail_length"`
}

// Reynard holds the player-only movement settings.
type Reynard struct {
	Character   `yaml:",inline"`
	DashSpeed   float64 `yaml:"dash_speed"`
	DashSeconds float64 `yaml:"dash_seconds"`
	WallSlide   float64 `yaml:"wall_slide_speed"`
}

// Enemy holds perception and behaviour settings.
type Enemy struct {
	Character    `yaml:",inline"`
	PatrolSpeed  float64 `yaml:"patrol_speed"`
	DetectRadius float64 `yaml:"detect_radius"`
	RealizeTime  float64 `yaml:"realize_time"`
	SearchTime   float64 `yaml:"search_time"`
	AlertHop     float64 `yaml:"alert_hop"`
	AttackRange  float64 `yaml:"attack_range"`
	ProbeLength  float64 `yaml:"probe_length"`
	// StillSpeed is the vertical speed under which the player counts as not
	// jumping or falling.
	StillSpeed float64 `yaml:"still_speed"`
}

// Viewer configures the ebiten window.
type Viewer struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Zoom   float64 `yaml:"zoom"`
	TPS    int     `yaml:"tps"`
}

// Tuning is the complete set of values a session runs with.
type Tuning struct {
	Physics  Physics `yaml:"physics"`
	Room     Room    `yaml:"room"`
	Reynard  Reynard `yaml:"reynard"`
	Enemy    Enemy   `yaml:"enemy"`
	Viewer   Viewer  `yaml:"viewer"`
	LogLevel string  `yaml:"log_level"`
	// Bindings maps extra key codes to action names, e.g. "j": "Jump".
	Bindings map[string]string `yaml:"bindings,omitempty"`
}

// Default returns the built-in tuning.
func Default() Tuning {
	return Tuning{
		Physics: Physics{GravityY: -20, Scale: 32},
		Room:    Room{Width: 320, Height: 224, SwapSeconds: 0.35},
		Reynard: Reynard{
			Character: Character{
				HalfWidth:   0.35,
				HalfHeight:  0.6,
				RunSpeed:    6,
				JumpSpeed:   11,
				TrailLength: 32,
			},
			DashSpeed:   14,
			DashSeconds: 0.18,
			WallSlide:   2,
		},
		Enemy: Enemy{
			Character: Character{
				HalfWidth:   0.4,
				HalfHeight:  0.5,
				RunSpeed:    5,
				JumpSpeed:   9,
				TrailLength: 8,
			},
			PatrolSpeed:  2,
			DetectRadius: 8,
			RealizeTime:  0.5,
			SearchTime:   2,
			AlertHop:     4,
			AttackRange:  0.8,
			ProbeLength:  1.2,
			StillSpeed:   0.1,
		},
		Viewer:   Viewer{Width: 1280, Height: 720, Zoom: 1, TPS: 60},
		LogLevel: "info",
	}
}

// Parse overlays YAML on top of the defaults. Keys missing from data keep
// their default value.
func Parse(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Default(), err
	}
	return t, nil
}

// Load reads a tuning file. An empty path returns the defaults.
func Load(path string) (Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read tuning %s: %w", path, err)
	}
	return Parse(data)
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Physics.Scale <= 0:
		return fmt.Errorf("physics.scale must be positive, got %v", t.Physics.Scale)
	case t.Room.Width <= 0 || t.Room.Height <= 0:
		return fmt.Errorf("room size must be positive, got %vx%v", t.Room.Width, t.Room.Height)
	case t.Enemy.DetectRadius <= 0:
		return fmt.Errorf("enemy.detect_radius must be positive, got %v", t.Enemy.DetectRadius)
	case t.Enemy.RealizeTime < 0:
		return fmt.Errorf("enemy.realize_time must not be negative, got %v", t.Enemy.RealizeTime)
	}
	return nil
}

// RoomWorldSize returns the room size in physics units.
func (t Tuning) RoomWorldSize() (float64, float64) {
	return t.Room.Width / t.Physics.Scale, t.Room.Height / t.Physics.Scale
}
