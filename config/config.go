package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/Vascofr/flixel/parameter"
)

// Config holds engine and demo settings. Values come from a TOML file,
// then environment variables override (FLIXEL_* prefix)
type Config struct {
	// UpdateIntervalMs is the logic tick interval in milliseconds
	UpdateIntervalMs int `toml:"update_interval_ms" env:"FLIXEL_UPDATE_INTERVAL_MS"`

	// SpawnIntervalMs is the demo character spawn interval in milliseconds
	SpawnIntervalMs int `toml:"spawn_interval_ms" env:"FLIXEL_SPAWN_INTERVAL_MS"`

	// AudioEnabled toggles the beep-backed sound cues
	AudioEnabled bool `toml:"audio_enabled" env:"FLIXEL_AUDIO"`
}

// Default returns the built-in settings used when no file is present
func Default() Config {
	return Config{
		UpdateIntervalMs: int(parameter.GameUpdateInterval / time.Millisecond),
		SpawnIntervalMs:  2000,
		AudioEnabled:     true,
	}
}

// Load reads the TOML file at path, applies environment overrides, and
// validates. An empty path skips the file and starts from Default
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects intervals that would stall or spin the loop
func (c Config) Validate() error {
	if c.UpdateIntervalMs < 1 {
		return fmt.Errorf("update_interval_ms must be >= 1, got %d", c.UpdateIntervalMs)
	}
	if c.SpawnIntervalMs < 1 {
		return fmt.Errorf("spawn_interval_ms must be >= 1, got %d", c.SpawnIntervalMs)
	}
	return nil
}

// UpdateInterval returns the tick interval as a duration
func (c Config) UpdateInterval() time.Duration {
	return time.Duration(c.UpdateIntervalMs) * time.Millisecond
}

// SpawnInterval returns the spawn interval as a duration
func (c Config) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs) * time.Millisecond
}
