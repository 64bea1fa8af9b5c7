package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config is the example's window and scene settings, read from a TOML file.
//
//	[window]
//	width = 1280
//	height = 720
//	vsync = false
//
//	[sky]
//	faces = ["px.png", "nx.png", "py.png", "ny.png", "pz.png", "nz.png"]
//	size = 512
type config struct {
	Window windowConfig `toml:"window"`
	Sky    skyConfig    `toml:"sky"`
	Debug  bool         `toml:"debug"`
}

type windowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type skyConfig struct {
	// Faces are cube map images in +X, -X, +Y, -Y, +Z, -Z order. When empty
	// a gradient of Size pixels per side is generated.
	Faces []string `toml:"faces"`
	Size  int      `toml:"size"`
}

func defaultConfig() config {
	return config{
		Window: windowConfig{
			Width:  800,
			Height: 600,
			Title:  "glutil example",
			VSync:  true,
		},
		Sky: skyConfig{Size: 256},
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return config{}, fmt.Errorf("config %s: unknown key %s", path, undec[0])
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if n := len(c.Sky.Faces); n != 0 && n != 6 {
		return fmt.Errorf("sky needs 6 faces, got %d", n)
	}
	if len(c.Sky.Faces) == 0 && c.Sky.Size <= 0 {
		return fmt.Errorf("sky size %d must be positive", c.Sky.Size)
	}
	return nil
}
