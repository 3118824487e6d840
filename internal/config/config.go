package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Grid shaping constants. ThetaDelta and RadiusDelta are derived from these
// and from the grid resolution; they never change after construction.
const (
	ThetaDeltaFactor  = 4.0
	RadiusDeltaFactor = 1.0
)

// Grid describes the immutable mesh resolution and scale.
type Grid struct {
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	FlowerSize float64 `yaml:"flowerSize"`
	AlphaValue int     `yaml:"alphaValue"`
	FrameRate  int     `yaml:"frameRate"`
}

// ThetaDelta returns the angular step in degrees.
func (g Grid) ThetaDelta() float64 {
	return 180 * ThetaDeltaFactor / float64(g.Cols)
}

// RadiusDelta returns the radial step.
func (g Grid) RadiusDelta() float64 {
	return RadiusDeltaFactor / float64(g.Rows)
}

// Validate rejects grids that would produce a degenerate or empty mesh.
func (g Grid) Validate() error {
	if g.Cols < 1 {
		return fmt.Errorf("grid cols must be >= 1, got %d", g.Cols)
	}
	if g.Rows < 1 {
		return fmt.Errorf("grid rows must be >= 1, got %d", g.Rows)
	}
	if g.FlowerSize <= 0 {
		return fmt.Errorf("grid flowerSize must be > 0, got %g", g.FlowerSize)
	}
	if g.AlphaValue < 0 || g.AlphaValue > 255 {
		return fmt.Errorf("grid alphaValue must be in [0,255], got %d", g.AlphaValue)
	}
	if g.FrameRate < 1 {
		return fmt.Errorf("grid frameRate must be >= 1, got %d", g.FrameRate)
	}
	return nil
}

// Window describes the application window.
type Window struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	HUDWidth  int `yaml:"hudWidth"`
	PanelSize int `yaml:"panelSize"`
}

// Config is the full application configuration.
type Config struct {
	Grid   Grid   `yaml:"grid"`
	Window Window `yaml:"window"`

	// Scheme names a registered color scheme; the flower palette and the
	// chrome colors are derived from it.
	Scheme string `yaml:"scheme"`

	// Soundtrack is an optional path to a wav/mp3/flac file looped in the
	// background. Empty disables audio.
	Soundtrack string `yaml:"soundtrack"`

	Seed int64 `yaml:"seed"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Grid: Grid{
			Cols:       120,
			Rows:       60,
			FlowerSize: 220,
			AlphaValue: 255,
			FrameRate:  30,
		},
		Window: Window{
			Width:    900,
			Height:   900,
			HUDWidth: 260,
		},
		Scheme: "dusk",
		Seed:   42,
	}
}

// Load reads a YAML config file layered over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the whole configuration and fails fast on degenerate
// values; configuration errors are fatal at construction time.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.HUDWidth < 0 {
		return fmt.Errorf("window hudWidth must be >= 0, got %d", c.Window.HUDWidth)
	}
	if c.Scheme == "" {
		return fmt.Errorf("scheme must name a registered color scheme")
	}
	return nil
}
