package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/goroad/internal/placement"
	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/stencil"
	"github.com/philipparndt/goroad/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the CLI and the editor
type Config struct {
	Tool   ToolConfig   `yaml:"tool" toml:"tool"`
	Ground GroundConfig `yaml:"ground" toml:"ground"`
	Editor EditorConfig `yaml:"editor" toml:"editor"`
	Export ExportConfig `yaml:"export" toml:"export"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

type ToolConfig struct {
	StencilName  string `yaml:"stencil_name" toml:"stencil_name"`
	ObjectName   string `yaml:"object_name" toml:"object_name"`
	SnapCategory string `yaml:"snap_category" toml:"snap_category"`
	StatusText   string `yaml:"status_text" toml:"status_text"`
}

// GroundConfig is the fallback plane for pointer rays that hit no road
type GroundConfig struct {
	Point  []float64 `yaml:"point" toml:"point"`
	Normal []float64 `yaml:"normal" toml:"normal"`
}

type EditorConfig struct {
	Width          int     `yaml:"width" toml:"width"`
	Height         int     `yaml:"height" toml:"height"`
	FPS            int     `yaml:"fps" toml:"fps"`
	CameraDistance float64 `yaml:"camera_distance" toml:"camera_distance"`
}

// ExportConfig anchors the local road coordinates on the globe
type ExportConfig struct {
	OriginLat float64 `yaml:"origin_lat" toml:"origin_lat"`
	OriginLon float64 `yaml:"origin_lon" toml:"origin_lon"`
}

type LogConfig struct {
	Level    string `yaml:"level" toml:"level"`
	Encoding string `yaml:"encoding" toml:"encoding"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Tool: ToolConfig{
			StencilName:  stencil.DefaultName,
			ObjectName:   road.DefaultMeshName,
			SnapCategory: road.GeometryLine,
			StatusText:   placement.DefaultStatusText,
		},
		Ground: GroundConfig{
			Point:  []float64{0, 0, 0},
			Normal: []float64{0, 0, 1},
		},
		Editor: EditorConfig{
			Width:          1400,
			Height:         900,
			FPS:            60,
			CameraDistance: 60,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads a yaml or toml file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Validate checks the settings the tool cannot run without
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Tool.StencilName) == "" {
		errs = append(errs, errors.New("tool.stencil_name must not be empty"))
	}
	if strings.TrimSpace(c.Tool.ObjectName) == "" {
		errs = append(errs, errors.New("tool.object_name must not be empty"))
	}
	if c.Tool.StencilName == c.Tool.ObjectName {
		errs = append(errs, errors.New("tool.stencil_name and tool.object_name must differ"))
	}
	if len(c.Ground.Point) != 3 {
		errs = append(errs, fmt.Errorf("ground.point needs 3 components, got %d", len(c.Ground.Point)))
	}
	if len(c.Ground.Normal) != 3 {
		errs = append(errs, fmt.Errorf("ground.normal needs 3 components, got %d", len(c.Ground.Normal)))
	} else if vec(c.Ground.Normal).IsZero() {
		errs = append(errs, errors.New("ground.normal must not be zero"))
	}
	if c.Editor.Width <= 0 || c.Editor.Height <= 0 {
		errs = append(errs, errors.New("editor size must be positive"))
	}
	if c.Editor.FPS <= 0 {
		errs = append(errs, errors.New("editor.fps must be positive"))
	}
	if c.Export.OriginLat < -90 || c.Export.OriginLat > 90 {
		errs = append(errs, fmt.Errorf("export.origin_lat out of range: %v", c.Export.OriginLat))
	}
	if c.Export.OriginLon < -180 || c.Export.OriginLon > 180 {
		errs = append(errs, fmt.Errorf("export.origin_lon out of range: %v", c.Export.OriginLon))
	}
	return errors.Join(errs...)
}

// GroundPlane returns the configured fallback plane
func (c Config) GroundPlane() geometry.Plane {
	return geometry.Plane{
		Point:  vec(c.Ground.Point),
		Normal: vec(c.Ground.Normal).Normalize(),
	}
}

// ToolOptions maps the tool section onto placement options
func (c Config) ToolOptions() placement.Options {
	return placement.Options{
		StencilName:  c.Tool.StencilName,
		ObjectName:   c.Tool.ObjectName,
		SnapCategory: c.Tool.SnapCategory,
		StatusText:   c.Tool.StatusText,
		Ground:       c.GroundPlane(),
	}
}

func vec(c []float64) geometry.Vector3 {
	if len(c) != 3 {
		return geometry.Vector3{}
	}
	return geometry.NewVector3(c[0], c[1], c[2])
}
