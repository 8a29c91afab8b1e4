package bough

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownConfigFormat is returned for config files that are neither YAML
// nor TOML.
var ErrUnknownConfigFormat = errors.New("bough: unknown config format")

// Config describes a scene's driver settings.
type Config struct {
	Debug      bool           `yaml:"debug" toml:"debug"`
	ClearColor [4]float64     `yaml:"clear_color" toml:"clear_color"`
	Cameras    []CameraConfig `yaml:"cameras" toml:"cameras"`
}

// CameraConfig describes one camera.
type CameraConfig struct {
	Viewport [4]float64 `yaml:"viewport" toml:"viewport"` // x, y, width, height
	Zoom     float64    `yaml:"zoom,omitempty" toml:"zoom,omitempty"`
	Rotation float64    `yaml:"rotation,omitempty" toml:"rotation,omitempty"`
	ScrollX  float64    `yaml:"scroll_x,omitempty" toml:"scroll_x,omitempty"`
	ScrollY  float64    `yaml:"scroll_y,omitempty" toml:"scroll_y,omitempty"`
	// Bounds enables scroll clamping when its width and height are positive.
	Bounds [4]float64 `yaml:"bounds,omitempty" toml:"bounds,omitempty"`
}

// ParseConfig decodes data in the given format ("yaml", "yml" or "toml").
func ParseConfig(data []byte, format string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, format)
	}
	return &cfg, nil
}

// LoadConfig reads a config file, picking the format from its extension.
func LoadConfig(path string) (*Config, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("config loaded", "path", path, "cameras", len(cfg.Cameras))
	return cfg, nil
}

// LoadConfigOptional is LoadConfig that returns an empty Config when the
// file does not exist.
func LoadConfigOptional(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// NewSceneFromConfig creates a scene with the configured cameras.
func NewSceneFromConfig(cfg *Config) *Scene {
	s := NewScene()
	c := cfg.ClearColor
	s.ClearColor = Color{c[0], c[1], c[2], c[3]}
	for _, cc := range cfg.Cameras {
		v := cc.Viewport
		cam := s.NewCamera(Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]})
		if cc.Zoom != 0 {
			cam.Zoom = cc.Zoom
		}
		cam.Rotation = cc.Rotation
		cam.ScrollX = cc.ScrollX
		cam.ScrollY = cc.ScrollY
		if b := cc.Bounds; b[2] > 0 && b[3] > 0 {
			cam.SetBounds(Rect{X: b[0], Y: b[1], Width: b[2], Height: b[3]})
		}
	}
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	return s
}
