package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/maze.yaml.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  0,
			Height: 0,
		},
		Timing: TimingConfig{
			StepsPerSecond: 60,
			FPS:            60,
			StartPaused:    true,
		},
		Algorithms: AlgorithmConfig{
			Generator: "backtracker",
			Solver:    "bfs",
		},
		Layout: LayoutConfig{
			TileWidth:  3,
			TileHeight: 1,
			Border:     1,
		},
		Palette: PaletteConfig{
			Tags: map[string]string{
				"unvisited": "light_gray",
				"neutral":   "bright_white",
				"visited":   "cyan",
				"frontier":  "yellow",
				"current":   "bright_green",
				"dead":      "gray",
				"solved":    "orange",
			},
			Wall:      "black",
			Highlight: "green",
			Path:      "red",
			Label:     "black",
		},
		Limits: LimitsConfig{
			MaxInstantSteps: 0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
