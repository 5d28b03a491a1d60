// Package config provides YAML-based configuration loading for the maze
// visualizer: grid size, pacing, algorithm choice, layout, palette and
// step limits.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Config contains all configuration for a visualizer run.
type Config struct {
	Grid       GridConfig      `yaml:"grid"`
	Timing     TimingConfig    `yaml:"timing"`
	Algorithms AlgorithmConfig `yaml:"algorithms"`
	Layout     LayoutConfig    `yaml:"layout"`
	Palette    PaletteConfig   `yaml:"palette"`
	Limits     LimitsConfig    `yaml:"limits"`
}

// GridConfig sets the maze size in cells. Zero fits the terminal.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines animation pacing.
type TimingConfig struct {
	StepsPerSecond float64 `yaml:"steps_per_second"`
	FPS            int     `yaml:"fps"`
	StartPaused    bool    `yaml:"start_paused"`
}

// AlgorithmConfig names the registered generator and solver to use.
type AlgorithmConfig struct {
	Generator string `yaml:"generator"`
	Solver    string `yaml:"solver"`
}

// LayoutConfig defines tile and wall sizes in terminal cells.
type LayoutConfig struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
	Border     int `yaml:"border"`
}

// PaletteConfig maps tag names and overlay roles to color names.
type PaletteConfig struct {
	Tags      map[string]string `yaml:"tags"`
	Wall      string            `yaml:"wall"`
	Highlight string            `yaml:"highlight"`
	Path      string            `yaml:"path"`
	Label     string            `yaml:"label"`
}

// LimitsConfig bounds synchronous work.
type LimitsConfig struct {
	MaxInstantSteps int `yaml:"max_instant_steps"` // 0 = derive from grid size
}

// MazeLayout converts the layout section for the grid model.
func (c Config) MazeLayout() maze.Layout {
	return maze.Layout{
		TileWidth:  c.Layout.TileWidth,
		TileHeight: c.Layout.TileHeight,
		Border:     c.Layout.Border,
	}
}

// MazePalette resolves color names. Tags missing from the file keep the
// default palette's colors.
func (c Config) MazePalette() (maze.Palette, error) {
	pal := maze.DefaultPalette()

	for name, colorName := range c.Palette.Tags {
		tag, ok := maze.ParseTag(name)
		if !ok {
			return pal, fmt.Errorf("config: palette: unknown tag %q", name)
		}
		col, ok := core.ParseColor(colorName)
		if !ok {
			return pal, fmt.Errorf("config: palette: tag %s: unknown color %q", name, colorName)
		}
		pal.Tags[tag] = col
	}

	roles := []struct {
		name string
		val  string
		dst  *core.Color
	}{
		{"wall", c.Palette.Wall, &pal.Wall},
		{"highlight", c.Palette.Highlight, &pal.Highlight},
		{"path", c.Palette.Path, &pal.Path},
		{"label", c.Palette.Label, &pal.Label},
	}
	for _, r := range roles {
		if r.val == "" {
			continue
		}
		col, ok := core.ParseColor(r.val)
		if !ok {
			return pal, fmt.Errorf("config: palette: %s: unknown color %q", r.name, r.val)
		}
		*r.dst = col
	}
	return pal, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must not be negative", c.Grid.Width, c.Grid.Height))
	}
	if c.Timing.StepsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("timing.steps_per_second must be positive, got %v", c.Timing.StepsPerSecond))
	}
	if c.Timing.FPS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fps must be positive, got %d", c.Timing.FPS))
	}
	if c.Algorithms.Generator == "" {
		errs = append(errs, errors.New("algorithms.generator is empty"))
	}
	if c.Algorithms.Solver == "" {
		errs = append(errs, errors.New("algorithms.solver is empty"))
	}
	if c.Layout.TileWidth < 1 || c.Layout.TileHeight < 1 {
		errs = append(errs, fmt.Errorf("layout tile %dx%d must be at least 1x1", c.Layout.TileWidth, c.Layout.TileHeight))
	}
	if c.Layout.Border < 0 {
		errs = append(errs, fmt.Errorf("layout.border must not be negative, got %d", c.Layout.Border))
	}
	if c.Limits.MaxInstantSteps < 0 {
		errs = append(errs, fmt.Errorf("limits.max_instant_steps must not be negative, got %d", c.Limits.MaxInstantSteps))
	}
	if _, err := c.MazePalette(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
