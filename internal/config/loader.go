package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvWidth          = "MAZE_WIDTH"
	EnvHeight         = "MAZE_HEIGHT"
	EnvGenerator      = "MAZE_GENERATOR"
	EnvSolver         = "MAZE_SOLVER"
	EnvStepsPerSecond = "MAZE_STEPS_PER_SECOND"
)

// Load loads the visualizer configuration.
// Search order: customPath -> ~/.maze/config.yaml -> ./configs/maze.yaml -> embedded default.
// Keys missing from a file keep their default values. Environment
// variables (optionally from a .env file) are applied last.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	// A missing .env file is normal.
	_ = godotenv.Load()

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "maze.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMazeYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvWidth, err)
		}
		cfg.Grid.Width = n
	}
	if v, ok := lookup(EnvHeight); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvHeight, err)
		}
		cfg.Grid.Height = n
	}
	if v, ok := lookup(EnvGenerator); ok && v != "" {
		cfg.Algorithms.Generator = v
	}
	if v, ok := lookup(EnvSolver); ok && v != "" {
		cfg.Algorithms.Solver = v
	}
	if v, ok := lookup(EnvStepsPerSecond); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvStepsPerSecond, err)
		}
		cfg.Timing.StepsPerSecond = f
	}
	return nil
}

// UserConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "config.yaml")
}
