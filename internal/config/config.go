// Package config handles application configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/viewcube/pkg/cube"
)

// Config holds all application settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Cube      CubeConfig      `yaml:"cube"`
	Animation AnimationConfig `yaml:"animation"`
	Stream    StreamConfig    `yaml:"stream"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings for the interactive viewer.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// CubeConfig holds the widget geometry parameters.
type CubeConfig struct {
	Size         float32 `yaml:"size"`
	RoundRadius  float32 `yaml:"round_radius"`
	DrawAxes     bool    `yaml:"draw_axes"`
	DrawEdges    bool    `yaml:"draw_edges"`
	DrawVertices bool    `yaml:"draw_vertices"`
	Yup          bool    `yaml:"y_up"`
}

// AnimationConfig holds camera transition settings.
type AnimationConfig struct {
	// Duration is the transition length in seconds.
	Duration float64 `yaml:"duration"`
	// Fixed drives transitions synchronously instead of per-frame.
	Fixed bool `yaml:"fixed"`
	// FitSelected frames the selection instead of the scene when present.
	FitSelected bool `yaml:"fit_selected"`
	// ResetUp snaps to the canonical up instead of preserving roll.
	ResetUp bool `yaml:"reset_up"`
}

// StreamConfig holds the pose streaming server settings.
type StreamConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "viewcube",
			VSync:  true,
		},
		Cube: CubeConfig{
			Size:         70,
			RoundRadius:  0,
			DrawAxes:     true,
			DrawEdges:    true,
			DrawVertices: true,
		},
		Animation: AnimationConfig{
			Duration:    cube.DefaultDuration,
			Fixed:       false,
			FitSelected: true,
		},
		Stream: StreamConfig{
			Addr: "127.0.0.1:8475",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Style builds the widget style described by the cube section.
func (c *Config) Style() cube.Style {
	st := cube.DefaultStyle()
	st.SetSize(c.Cube.Size, true)
	st.RoundRadius = c.Cube.RoundRadius
	st.DrawAxes = c.Cube.DrawAxes
	st.DrawEdges = c.Cube.DrawEdges
	st.DrawVertices = c.Cube.DrawVertices
	st.Yup = c.Cube.Yup
	return st
}

// Validate checks the whole configuration, including the derived widget
// style.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Animation.Duration < 0 {
		return fmt.Errorf("animation duration %v must not be negative", c.Animation.Duration)
	}
	if err := c.Style().Validate(); err != nil {
		return fmt.Errorf("cube style: %w", err)
	}
	return nil
}
