// Package config loads and saves yaml scene files and holds the preset
// scenes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/scene3d/internal/scene"
	"github.com/san-kum/scene3d/internal/shape"
	"github.com/san-kum/scene3d/internal/widget"
)

const (
	DefaultWidth  = 60
	DefaultHeight = 24
	DefaultTheme  = "cyberpunk"
)

// Object kinds accepted in scene files.
const (
	KindPrism  = "prism"
	KindCuboid = "cuboid"
	KindSphere = "sphere"
)

type Config struct {
	View    ViewConfig     `yaml:"view"`
	Canvas  CanvasConfig   `yaml:"canvas"`
	Theme   string         `yaml:"theme"`
	Objects []ObjectConfig `yaml:"objects"`
}

type ViewConfig struct {
	Angle float64 `yaml:"angle"`
	Scale float64 `yaml:"scale"`
}

// CanvasConfig is the terminal canvas size in cells.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ObjectConfig struct {
	Kind       string     `yaml:"kind"`
	Center     [3]float64 `yaml:"center"`
	BaseCenter [3]float64 `yaml:"base_center"`
	Height     float64    `yaml:"height,omitempty"`
	Dimensions [3]float64 `yaml:"dimensions"`
	Radius     float64    `yaml:"radius,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		View:   ViewConfig{Angle: widget.AngleInit, Scale: widget.ScaleInit},
		Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		Theme:  DefaultTheme,
		Objects: []ObjectConfig{
			{Kind: KindPrism, BaseCenter: [3]float64{0, 0, 0}, Height: 5},
			{Kind: KindCuboid, Center: [3]float64{2, 2, 2}, Dimensions: [3]float64{2, 2, 2}},
			{Kind: KindSphere, Center: [3]float64{4, -3, 3}, Radius: 1},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Objects = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Objects) == 0 {
		cfg.Objects = DefaultConfig().Objects
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build converts the object list into shapes, in file order.
func (c *Config) Build() ([]shape.Renderable, error) {
	out := make([]shape.Renderable, 0, len(c.Objects))
	for i, o := range c.Objects {
		r, err := o.Build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Scene builds the configured scene.
func (c *Config) Scene() (*scene.Scene, error) {
	objs, err := c.Build()
	if err != nil {
		return nil, err
	}
	return scene.New(objs...), nil
}

func (o ObjectConfig) Build() (shape.Renderable, error) {
	switch o.Kind {
	case KindPrism:
		return shape.NewPrism(shape.Vec3(o.BaseCenter), o.Height), nil
	case KindCuboid:
		return shape.NewCuboid(shape.Vec3(o.Center), shape.Vec3(o.Dimensions)), nil
	case KindSphere:
		return shape.NewSphere(shape.Vec3(o.Center), o.Radius), nil
	default:
		return nil, fmt.Errorf("unknown object kind: %q", o.Kind)
	}
}
