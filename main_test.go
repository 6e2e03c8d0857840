package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"primitives scene", "primitives", false},
		{"primitives with visible lines", "primitives-proximity", false},
		{"sphere row scene", "sphere-row", false},

		// Scene files (by name and path)
		{"scene file by name", "primitives-file", false},
		{"scene file by id", "file:triangle-fan", false},
		{"direct scene file path", "scenes/primitives-file.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid scene file path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.sceneName)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s', but got none", tt.sceneName)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for invalid scene '%s'", tt.sceneName)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneName, err)
			}
			if sc.SamplingConfig.Width <= 0 || sc.SamplingConfig.Height <= 0 {
				t.Errorf("Scene sampling size should be positive, got %dx%d", sc.SamplingConfig.Width, sc.SamplingConfig.Height)
			}
			if sc.GetPrimitiveCount() == 0 {
				t.Errorf("Scene '%s' has no primitives", tt.sceneName)
			}
		})
	}
}

func TestCreateIntegrator(t *testing.T) {
	tests := []struct {
		mode        string
		expectError bool
	}{
		{"path", false},
		{"normals", false},
		{"albedo", false},
		{"bdpt", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			integratorInst, err := createIntegrator(tt.mode, 10)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for mode '%s'", tt.mode)
				}
				return
			}
			if err != nil || integratorInst == nil {
				t.Errorf("Unexpected error for mode '%s': %v", tt.mode, err)
			}
		})
	}

	pt, _ := createIntegrator("path", 7)
	if pt.(*integrator.PathTracingIntegrator).MaxDepth != 7 {
		t.Error("Expected path mode to carry the requested depth")
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		sceneName string
		expected  string
	}{
		{"built-in scene", "default", filepath.Join("output", "default")},
		{"scene file id", "file:triangle-fan", filepath.Join("output", "triangle-fan")},
		{"scene file path", "scenes/primitives-file.json", filepath.Join("output", "primitives-file")},
		{"nested scene file path", "scenes/subdir/my-scene.json", filepath.Join("output", "my-scene")},
		{"empty name", "", filepath.Join("output", "scene")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createOutputDir("output", tt.sceneName); got != tt.expected {
				t.Errorf("createOutputDir(%q) = %q, want %q", tt.sceneName, got, tt.expected)
			}
		})
	}
}

func TestImageSize(t *testing.T) {
	sc, err := createScene("default")
	if err != nil {
		t.Fatalf("createScene: %v", err)
	}

	if w, h := imageSize(sc, 0); w != 400 || h != 225 {
		t.Errorf("Expected scene default 400x225, got %dx%d", w, h)
	}
	if w, h := imageSize(sc, 160); w != 160 || h != 90 {
		t.Errorf("Expected 160x90 from the 16:9 camera, got %dx%d", w, h)
	}
	if _, h := imageSize(sc, 1); h != 1 {
		t.Errorf("Expected height clamped to 1, got %d", h)
	}
}

func TestRenderAndSave(t *testing.T) {
	sc, err := createScene("default")
	if err != nil {
		t.Fatalf("createScene: %v", err)
	}

	config := renderer.DefaultProgressiveConfig()
	config.MaxPasses = 2
	config.MaxSamplesPerPixel = 2
	config.TileSize = 8

	img, stats, err := renderProgressive(context.Background(), sc, 16, 9, config, integrator.NewPathTracingIntegrator(3))
	if err != nil {
		t.Fatalf("renderProgressive: %v", err)
	}
	if stats.MinSamples != 2 {
		t.Errorf("Expected 2 samples per pixel after the last pass, got %d", stats.MinSamples)
	}

	filename := filepath.Join(t.TempDir(), "render.png")
	if err := savePNG(filename, img); err != nil {
		t.Fatalf("savePNG: %v", err)
	}
	if info, err := os.Stat(filename); err != nil || info.Size() == 0 {
		t.Errorf("Expected a non-empty PNG file, got %v", err)
	}
}
