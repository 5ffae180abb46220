// seehuhn.de/go/mdl - an animation interpreter for scene descriptions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mdl

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/mdl/light"
	"seehuhn.de/go/mdl/screen"
	"seehuhn.de/go/mdl/script"
)

// Config holds the settings which are not part of a scene program.
type Config struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	Supersample int `yaml:"supersample"`

	Background light.RGB `yaml:"background"`

	// View is the direction towards the viewer.
	View    [3]float64    `yaml:"view"`
	Ambient light.RGB     `yaml:"ambient"`
	Lights  []LightConfig `yaml:"lights"`

	LineColor light.RGB `yaml:"line_color"`
	LineWidth float64   `yaml:"line_width"`
	LineCap   string    `yaml:"line_cap"` // butt, round or square

	// Steps is the tessellation resolution of curved primitives.
	Steps int `yaml:"steps"`

	// FramesDir is the directory for the per-frame images and the
	// animation. Format is the image format used there and for "save"
	// commands without a file name extension.
	FramesDir string `yaml:"frames_dir"`
	Format    string `yaml:"format"`

	// GIFDelay is the time between animation frames in 100ths of a
	// second.
	GIFDelay int `yaml:"gif_delay"`

	// Workers is the number of frames rendered concurrently.
	Workers int `yaml:"workers"`

	// Logger receives progress messages. If nil, nothing is logged.
	Logger *log.Logger `yaml:"-"`

	// Viewer is used by the "display" command. If nil, "display" does
	// nothing.
	Viewer screen.Viewer `yaml:"-"`
}

// LightConfig describes a point light.
type LightConfig struct {
	Location [3]float64 `yaml:"location"`
	Color    light.RGB  `yaml:"color"`
}

// DefaultConfig returns the default settings: a 500x500 black screen,
// grey ambient light and one white light source.
func DefaultConfig() *Config {
	return &Config{
		Width:       500,
		Height:      500,
		Supersample: 1,
		View:        [3]float64{0, 0, 1},
		Ambient:     light.RGB{50, 50, 50},
		Lights: []LightConfig{{
			Location: [3]float64{0.5, 0.75, 1},
			Color:    light.RGB{255, 255, 255},
		}},
		LineColor: light.RGB{255, 255, 255},
		LineWidth: 1,
		LineCap:   "butt",
		Steps:     100,
		FramesDir: "anim",
		Format:    "png",
		GIFDelay:  3,
		Workers:   1,
	}
}

// LoadConfig reads settings in YAML format. Settings missing from the
// input keep their default values; unknown settings are an error.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", script.ErrConfiguration, err)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) check() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: invalid screen size %dx%d", script.ErrConfiguration, c.Width, c.Height)
	case c.Supersample < 1:
		return fmt.Errorf("%w: invalid supersampling factor %d", script.ErrConfiguration, c.Supersample)
	case c.Steps < 3:
		return fmt.Errorf("%w: at least 3 tessellation steps are needed", script.ErrConfiguration)
	case c.Workers < 1:
		return fmt.Errorf("%w: invalid number of workers %d", script.ErrConfiguration, c.Workers)
	case c.GIFDelay < 0:
		return fmt.Errorf("%w: negative animation delay", script.ErrConfiguration)
	case !slices.Contains(screen.Formats(), c.Format):
		return fmt.Errorf("%w: unsupported image format %q", script.ErrConfiguration, c.Format)
	}
	if _, err := c.lineCap(); err != nil {
		return err
	}
	return nil
}

func (c *Config) lineCap() (graphics.LineCapStyle, error) {
	switch c.LineCap {
	case "", "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	default:
		return 0, fmt.Errorf("%w: unknown line cap %q", script.ErrConfiguration, c.LineCap)
	}
}

// lighting returns the lighting model of the configuration.
func (c *Config) lighting() light.Model {
	m := light.Model{
		View:    r3.Vec{X: c.View[0], Y: c.View[1], Z: c.View[2]},
		Ambient: c.Ambient,
	}
	for _, l := range c.Lights {
		m.Sources = append(m.Sources, light.Source{
			Location: r3.Vec{X: l.Location[0], Y: l.Location[1], Z: l.Location[2]},
			Color:    l.Color,
		})
	}
	return m
}
