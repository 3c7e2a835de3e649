package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Cube.Size != 70 {
		t.Errorf("expected cube size 70, got %f", cfg.Cube.Size)
	}
	if !cfg.Cube.DrawAxes || !cfg.Cube.DrawEdges || !cfg.Cube.DrawVertices {
		t.Error("expected all cube parts enabled by default")
	}
	if cfg.Cube.Yup {
		t.Error("expected Z-up convention by default")
	}

	if cfg.Animation.Duration != 0.5 {
		t.Errorf("expected animation duration 0.5, got %f", cfg.Animation.Duration)
	}
	if !cfg.Animation.FitSelected {
		t.Error("expected fit_selected to be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestStyleFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Cube.Size = 100
	cfg.Cube.RoundRadius = 0.2
	cfg.Cube.DrawEdges = false
	cfg.Cube.Yup = true

	st := cfg.Style()
	if st.Size != 100 {
		t.Errorf("expected style size 100, got %f", st.Size)
	}
	if st.FacetExtension != 15 {
		t.Errorf("expected adapted facet extension 15, got %f", st.FacetExtension)
	}
	if st.RoundRadius != 0.2 {
		t.Errorf("expected round radius 0.2, got %f", st.RoundRadius)
	}
	if st.DrawEdges {
		t.Error("expected edges disabled")
	}
	if !st.Yup {
		t.Error("expected Y-up convention")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "viewcube.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  title: "demo"
  vsync: false

cube:
  size: 90
  round_radius: 0.25
  draw_axes: false
  draw_edges: true
  draw_vertices: true
  y_up: true

animation:
  duration: 1.5
  fixed: true
  fit_selected: false
  reset_up: true

stream:
  addr: "0.0.0.0:9000"

logging:
  level: "debug"
  log_file: "viewcube.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Cube.Size != 90 {
		t.Errorf("expected cube size 90, got %f", cfg.Cube.Size)
	}
	if cfg.Cube.RoundRadius != 0.25 {
		t.Errorf("expected round radius 0.25, got %f", cfg.Cube.RoundRadius)
	}
	if cfg.Cube.DrawAxes {
		t.Error("expected axes disabled")
	}
	if !cfg.Cube.Yup {
		t.Error("expected Y-up convention")
	}
	if cfg.Animation.Duration != 1.5 {
		t.Errorf("expected duration 1.5, got %f", cfg.Animation.Duration)
	}
	if !cfg.Animation.Fixed || !cfg.Animation.ResetUp {
		t.Error("expected fixed and reset_up enabled")
	}
	if cfg.Animation.FitSelected {
		t.Error("expected fit_selected disabled")
	}
	if cfg.Stream.Addr != "0.0.0.0:9000" {
		t.Errorf("expected stream addr 0.0.0.0:9000, got %s", cfg.Stream.Addr)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewcube.log" {
		t.Errorf("expected log file 'viewcube.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadRejectsInvalidStyle(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "viewcube.yaml")

	yamlContent := `
cube:
  size: 70
  round_radius: 0.9
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for out-of-range round radius, got nil")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := Load("/nonexistent/path/viewcube.yaml"); err == nil {
		t.Error("expected error loading missing explicit file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "viewcube.yaml")

	cfg := Default()
	cfg.Cube.Size = 42
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Cube.Size != 42 {
		t.Errorf("expected reloaded size 42, got %f", loaded.Cube.Size)
	}
}
