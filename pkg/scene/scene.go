package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// It is built once and treated as read-only while a render is in progress.
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	Shapes         []geometry.Shape // Objects in the scene, scanned in order
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns 10 spp and 30 bounces on a 400x225 (16:9) image
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 10,
		MaxDepth:        30,
	}
}

// New creates an empty scene with a camera matching the configured image shape
func New(name string, config SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		Camera:         geometry.NewCamera(float64(config.Width) / float64(config.Height)),
		Shapes:         make([]geometry.Shape, 0),
		SamplingConfig: config,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// ClosestHit finds the nearest intersection beyond geometry.AcneEpsilon with a linear scan.
// When two shapes report the same t the first one added wins.
func (s *Scene) ClosestHit(ray core.Ray) (geometry.Shape, *geometry.HitRecord, bool) {
	var closestShape geometry.Shape
	var closestHit *geometry.HitRecord

	for _, shape := range s.Shapes {
		hit, isHit := shape.Hit(ray)
		if !isHit || hit.T <= geometry.AcneEpsilon {
			continue
		}
		if closestHit == nil || hit.T < closestHit.T {
			closestShape = shape
			closestHit = hit
		}
	}

	return closestShape, closestHit, closestHit != nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// GetSamplingConfig returns the scene's recommended render settings
func (s *Scene) GetSamplingConfig() SamplingConfig {
	return s.SamplingConfig
}
