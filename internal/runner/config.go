package runner

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the example programs.
type Config struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Scale     int    `yaml:"scale"`
	FPS       int    `yaml:"fps"`
	Headless  bool   `yaml:"headless"`
	Frames    uint64 `yaml:"frames"`
	DumpDir   string `yaml:"dump_dir"`
	DumpEvery int    `yaml:"dump_every"`
	HUD       bool   `yaml:"hud"`
	Verbose   bool   `yaml:"verbose"`
}

// Done reports whether frame is the last one allowed by Frames.
func (c Config) Done(frame uint64) bool {
	return c.Frames > 0 && frame+1 >= c.Frames
}

// Parse reads flags from args on top of defaults. A YAML file named by
// -config is applied first; flags given explicitly override it.
func Parse(name string, args []string, defaults Config) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var configPath string
	fl := defaults
	fs.StringVar(&configPath, "config", "", "YAML file with run settings.")
	fs.BoolVar(&fl.Headless, "headless", defaults.Headless, "Run without a window.")
	fs.Uint64Var(&fl.Frames, "frames", defaults.Frames, "Stop after N frames (0 = run until the window closes).")
	fs.IntVar(&fl.FPS, "fps", defaults.FPS, "Frame rate cap (0 = follow the display).")
	fs.IntVar(&fl.Scale, "scale", defaults.Scale, "Window size multiplier.")
	fs.StringVar(&fl.DumpDir, "dump", defaults.DumpDir, "Headless mode: write frames as BMP files into this directory.")
	fs.IntVar(&fl.DumpEvery, "dump-every", defaults.DumpEvery, "Headless mode: dump every N-th frame.")
	fs.BoolVar(&fl.HUD, "hud", defaults.HUD, "Draw the frame counter overlay.")
	fs.BoolVar(&fl.Verbose, "v", defaults.Verbose, "Log debug output.")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := defaults
	if configPath != "" {
		if err := loadYAML(configPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Headless = fl.Headless
		case "frames":
			cfg.Frames = fl.Frames
		case "fps":
			cfg.FPS = fl.FPS
		case "scale":
			cfg.Scale = fl.Scale
		case "dump":
			cfg.DumpDir = fl.DumpDir
		case "dump-every":
			cfg.DumpEvery = fl.DumpEvery
		case "hud":
			cfg.HUD = fl.HUD
		case "v":
			cfg.Verbose = fl.Verbose
		}
	})

	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.FPS < 0 {
		return fmt.Errorf("invalid fps: %d", c.FPS)
	}
	if c.DumpEvery < 0 {
		return fmt.Errorf("invalid dump-every: %d", c.DumpEvery)
	}
	return nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}
