// Package config loads UI options from a TOML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pluginui/imbridge/bridge"
	"github.com/pluginui/imbridge/colors"
	"github.com/pluginui/imbridge/platform"
)

// File is the on-disk option set. Zero/missing fields fall back to the
// defaults from Default.
type File struct {
	Window WindowOptions `toml:"window"`
	UI     UIOptions     `toml:"ui"`
}

type WindowOptions struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

type UIOptions struct {
	BackgroundColor   [4]float32 `toml:"background_color"`
	RepaintIntervalMS int        `toml:"repaint_interval_ms"`
	ScaleFactor       float32    `toml:"scale_factor"`
}

// Default returns the built-in option set.
func Default() File {
	return File{
		Window: WindowOptions{
			Title:  "imbridge",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		UI: UIOptions{
			BackgroundColor:   [4]float32(colors.DefaultBackground),
			RepaintIntervalMS: 15,
			ScaleFactor:       1,
		},
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error; it yields the defaults unchanged.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return f, err
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// BridgeConfig converts the UI options to a bridge configuration.
func (f File) BridgeConfig() bridge.Config {
	return bridge.Config{
		Width:           f.Window.Width,
		Height:          f.Window.Height,
		BackgroundColor: colors.Color(f.UI.BackgroundColor),
		RepaintInterval: time.Duration(f.UI.RepaintIntervalMS) * time.Millisecond,
		ScaleFactor:     f.UI.ScaleFactor,
	}
}

// WindowConfig converts the window options to a platform configuration.
func (f File) WindowConfig() platform.Config {
	return platform.Config{
		Title:  f.Window.Title,
		Width:  f.Window.Width,
		Height: f.Window.Height,
		VSync:  f.Window.VSync,
	}
}
