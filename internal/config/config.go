// Package config loads the host settings for the breakout CLI from YAML.
//
// Only host concerns live here: which variant to start, tick rate, logging,
// headless run limits and keyboard step. Game constants are compiled into
// the breakout package and are not configurable.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// HostConfig contains all host-level configuration.
type HostConfig struct {
	Variant  string         `yaml:"variant"`
	TickRate int            `yaml:"tick_rate"`
	Log      LogConfig      `yaml:"log"`
	Sim      SimConfig      `yaml:"sim"`
	Controls ControlsConfig `yaml:"controls"`
}

// LogConfig controls where gameplay logs go.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty discards logs during play
}

// SimConfig bounds a headless run.
type SimConfig struct {
	MaxTicks int   `yaml:"max_ticks"`
	Seed     int64 `yaml:"seed"` // 0 = derive from time
}

// ControlsConfig tunes keyboard input.
type ControlsConfig struct {
	KeyStep float64 `yaml:"key_step"` // pointer pixels per Left/Right press
}

// DefaultHostConfig returns the hardcoded fallback configuration.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		Variant:  "classic",
		TickRate: 60,
		Log: LogConfig{
			Level: "info",
		},
		Sim: SimConfig{
			MaxTicks: 36000,
		},
		Controls: ControlsConfig{
			KeyStep: breakout.DefaultKeyStep,
		},
	}
}

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrTickRate       = errors.New("tick_rate must be positive")
)

// Validate checks values the host cannot run with.
func (c HostConfig) Validate() error {
	if _, ok := breakout.Variant(c.Variant); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, c.Variant)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrTickRate, c.TickRate)
	}
	if c.Sim.MaxTicks < 0 {
		return fmt.Errorf("sim.max_ticks must not be negative: got %d", c.Sim.MaxTicks)
	}
	if c.Controls.KeyStep < 0 {
		return fmt.Errorf("controls.key_step must not be negative: got %v", c.Controls.KeyStep)
	}
	return nil
}
