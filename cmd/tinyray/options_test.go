package main

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/render"
	"github.com/taigrr/tinyray/pkg/scene"
)

func parsed(t *testing.T, args ...string) *options {
	t.Helper()
	o := defaultOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return o
}

func TestConfigDefaults(t *testing.T) {
	o := parsed(t)
	cfg, err := config(o, scene.Default[float64]())
	if err != nil {
		t.Fatal(err)
	}
	want := render.DefaultConfig[float64]()
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestConfigFOV(t *testing.T) {
	s := scene.Default[float64]()
	s.FOV = 1.2

	cfg, err := config(parsed(t), s)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FOV != 1.2 {
		t.Errorf("FOV = %v, want scene camera 1.2", cfg.FOV)
	}

	cfg, err = config(parsed(t, "--fov", "60"), s)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cfg.FOV-math.Pi/3) > 1e-12 {
		t.Errorf("FOV = %v, want pi/3 from the flag", cfg.FOV)
	}

	if _, err := config(parsed(t, "--fov", "180"), s); !errors.Is(err, render.ErrInvalidConfig) {
		t.Errorf("--fov 180: err = %v, want ErrInvalidConfig", err)
	}
}

func TestConfigBackground(t *testing.T) {
	tests := []struct {
		flag    string
		want    math3d.Vec3[float32]
		wantErr bool
	}{
		{"#ff0000", math3d.V3[float32](1, 0, 0), false},
		{"0000ff", math3d.V3[float32](0, 0, 1), false},
		{"nope", math3d.Vec3[float32]{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			cfg, err := config(parsed(t, "--background", tt.flag), scene.Single[float32]())
			if tt.wantErr {
				if !errors.Is(err, render.ErrInvalidConfig) {
					t.Errorf("err = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Background != tt.want {
				t.Errorf("background = %v, want %v", cfg.Background, tt.want)
			}
		})
	}
}

func TestLoadScene(t *testing.T) {
	s, err := loadScene[float64]("eclipse")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "eclipse" {
		t.Errorf("name = %q", s.Name)
	}
	if _, err := loadScene[float64]("nope"); !errors.Is(err, scene.ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
	if _, err := loadScene[float64](filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("expected error for missing glTF file")
	}
}

func TestFramePath(t *testing.T) {
	tests := []struct {
		out  string
		i, n int
		want string
	}{
		{"out.ppm", 0, 1, "out.ppm"},
		{"out.ppm", 3, 10, "out-0003.ppm"},
		{"dir/frame.png", 12, 20, "dir/frame-0012.png"},
		{"noext", 1, 2, "noext-0001"},
	}
	for _, tt := range tests {
		if got := framePath(tt.out, tt.i, tt.n); got != tt.want {
			t.Errorf("framePath(%q, %d, %d) = %q, want %q", tt.out, tt.i, tt.n, got, tt.want)
		}
	}
}

func TestValidatePrecision(t *testing.T) {
	if err := parsed(t, "--precision", "64").validatePrecision(); err != nil {
		t.Error(err)
	}
	if err := parsed(t, "--precision", "16").validatePrecision(); !errors.Is(err, errPrecision) {
		t.Errorf("err = %v, want errPrecision", err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	for _, precision := range []string{"32", "64"} {
		t.Run(precision, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.ppm")
			if _, err := execute(t, "render", "--width", "8", "--height", "6", "--precision", precision, path); err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			header := "P6\n8 6\n255\n"
			if !strings.HasPrefix(string(data), header) || len(data) != len(header)+8*6*3 {
				t.Errorf("unexpected ppm: %d bytes, header %q", len(data), data[:min(len(data), len(header))])
			}
		})
	}
}

func TestRenderCommandFrames(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "anim.png")
	if _, err := execute(t, "render", "-a", "-n", "3", "--width", "8", "--height", "6", "--scene", "single", out); err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		if _, err := os.Stat(framePath(out, i, 3)); err != nil {
			t.Error(err)
		}
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"render", "--width", "4", "--height", "4", filepath.Join(dir, "out.bmp")}},
		{"bad scene", []string{"render", "--scene", "nope", filepath.Join(dir, "out.ppm")}},
		{"bad size", []string{"render", "--width", "0", filepath.Join(dir, "out.ppm")}},
		{"bad precision", []string{"render", "--precision", "8", filepath.Join(dir, "out.ppm")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	out, err := execute(t, "scenes")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range scene.PresetNames() {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %q:\n%s", name, out)
		}
	}
}
