package geometry

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(16.0 / 9.0)

	tests := []struct {
		name      string
		u, v      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-16.0/9.0, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(16.0/9.0, 1, -1)},
		{"upper left", 0, 1, core.NewVec3(-16.0/9.0, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.u, tt.v)

			if ray.Origin != core.NewVec3(0, 0, 0) {
				t.Errorf("Expected origin at eye point, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_SquareViewport(t *testing.T) {
	camera := NewCamera(1.0)

	if camera.AspectRatio() != 1.0 {
		t.Errorf("Expected aspect ratio 1, got %f", camera.AspectRatio())
	}

	// Viewport height is 2 and focal length 1 regardless of aspect ratio
	corner := camera.GetRay(1, 0).Direction
	if corner != core.NewVec3(1, -1, -1) {
		t.Errorf("Expected lower right direction (1, -1, -1), got %v", corner)
	}
}
