package runner

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tinec/canvas"
	"tinec/hal"
	"tinec/tinec"
)

var testDefaults = Config{Title: "demo", Width: 64, Height: 48, FPS: 60}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("demo", nil, testDefaults)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.FPS != 60 || cfg.Scale != 1 {
		t.Fatalf("Parse() = %+v", cfg)
	}
	if cfg.Headless {
		t.Fatalf("Headless = true by default")
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse("demo", []string{"-headless", "-frames", "10", "-fps", "0", "-scale", "3", "-hud"}, testDefaults)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.Headless || cfg.Frames != 10 || cfg.FPS != 0 || cfg.Scale != 3 || !cfg.HUD {
		t.Fatalf("Parse() = %+v", cfg)
	}
}

func TestParseYAMLThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := "title: from-file\nwidth: 320\nheight: 200\nfps: 30\nheadless: true\nframes: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse("demo", []string{"-config", path, "-fps", "15"}, testDefaults)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Title != "from-file" || cfg.Width != 320 || cfg.Height != 200 {
		t.Fatalf("YAML not applied: %+v", cfg)
	}
	if !cfg.Headless || cfg.Frames != 7 {
		t.Fatalf("YAML not applied: %+v", cfg)
	}
	if cfg.FPS != 15 {
		t.Fatalf("FPS = %d, want flag value 15", cfg.FPS)
	}
}

func TestParseErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("colour: red\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	badSize := filepath.Join(dir, "size.yaml")
	if err := os.WriteFile(badSize, []byte("width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{
		{"-config", unknown},
		{"-config", badSize},
		{"-config", filepath.Join(dir, "missing.yaml")},
		{"-fps", "-1"},
		{"-frames", "many"},
		{"extra"},
	} {
		if _, err := Parse("demo", args, testDefaults); err == nil {
			t.Fatalf("Parse(%v) err = nil, want error", args)
		}
	}

	if _, err := Parse("demo", []string{"-h"}, testDefaults); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Parse(-h) err = %v, want flag.ErrHelp", err)
	}
}

func TestParseEmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse("demo", []string{"-config", path}, testDefaults)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 64 {
		t.Fatalf("Width = %d, want default 64", cfg.Width)
	}
}

func TestConfigDone(t *testing.T) {
	cfg := Config{Frames: 3}
	if cfg.Done(1) || !cfg.Done(2) {
		t.Fatalf("Done with Frames=3 wrong at frame 1 or 2")
	}
	if (Config{}).Done(1 << 40) {
		t.Fatalf("Done with Frames=0 = true")
	}
}

func TestRunHeadless(t *testing.T) {
	dir := t.TempDir()
	cfg := testDefaults
	cfg.Headless = true
	cfg.Frames = 4
	cfg.FPS = 0
	cfg.DumpDir = dir
	cfg.DumpEvery = 2
	cfg.Verbose = true

	var logs bytes.Buffer
	var steps int
	err := Run(cfg, &logs, func(cfg Config, open hal.Opener) error {
		if !strings.HasPrefix(cfg.Title, "demo (") {
			t.Errorf("title = %q, want build info appended", cfg.Title)
		}
		c, err := tinec.Init(cfg.Title, cfg.Width, cfg.Height, open)
		if err != nil {
			return err
		}
		defer c.Deinit()
		return c.Loop(tinec.Pacing{FPS: cfg.FPS}, func(frame uint64) error {
			steps++
			c.Fill(canvas.Black)
			c.DrawRect(float64(frame), 0, 4, 4, canvas.Red, canvas.Filled)
			return nil
		})
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 4 {
		t.Fatalf("ran %d frames, want 4", steps)
	}

	dumps, _ := filepath.Glob(filepath.Join(dir, "*.bmp"))
	if len(dumps) != 2 {
		t.Fatalf("dumped %d frames, want 2", len(dumps))
	}
	if out := logs.String(); !strings.Contains(out, "canvas created") || !strings.Contains(out, "frame dumped") {
		t.Fatalf("logs missing lifecycle lines: %q", out)
	}
	if out := logs.String(); !strings.Contains(out, "msg=starting") || !strings.Contains(out, "build.version=") {
		t.Fatalf("logs missing build attributes: %q", out)
	}
}

func TestRunPropagatesInitError(t *testing.T) {
	cfg := testDefaults
	cfg.Headless = true
	err := Run(cfg, &bytes.Buffer{}, func(cfg Config, open hal.Opener) error {
		_, err := tinec.Init(cfg.Title, -1, 1, open)
		return err
	})
	if !errors.Is(err, tinec.ErrAllocation) {
		t.Fatalf("Run err = %v, want ErrAllocation", err)
	}
}
