// Package config holds settings shared by the serve and render commands.
// Values come from defaults, then an optional YAML file, then CLI flags.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Diagram Diagram `yaml:"diagram"`
	Render  Render  `yaml:"render"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Diagram struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Sites  int   `yaml:"sites"`
	Random bool  `yaml:"random"`
	Seed   int64 `yaml:"seed"`
	// PointsFile overrides generated sites when set.
	PointsFile string `yaml:"points_file"`
}

type Render struct {
	Output    string  `yaml:"output"`
	Scale     float64 `yaml:"scale"`
	RayLength float64 `yaml:"ray_length"`
	Imgcat    bool    `yaml:"imgcat"`
}

func Default() Config {
	return Config{
		Server: Server{Addr: ":8080"},
		Diagram: Diagram{
			Width:  960,
			Height: 500,
			Sites:  12,
		},
		Render: Render{
			Output:    "voronoi.png",
			Scale:     1,
			RayLength: 2000,
		},
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Diagram.Width <= 0 || c.Diagram.Height <= 0 {
		return errors.Errorf("diagram size must be positive, got %dx%d", c.Diagram.Width, c.Diagram.Height)
	}
	if c.Diagram.Sites < 0 {
		return errors.Errorf("negative number of sites: %d", c.Diagram.Sites)
	}
	if c.Render.Scale <= 0 {
		return errors.Errorf("render scale must be positive, got %v", c.Render.Scale)
	}
	return nil
}
