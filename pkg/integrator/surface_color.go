package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// SurfaceColorIntegrator shades the first hit with the shape's own color and never bounces.
// Useful for checking geometry and normals without noise.
type SurfaceColorIntegrator struct {
	Mode geometry.ColorMode
}

// NewSurfaceColorIntegrator creates a debug integrator for the given color mode
func NewSurfaceColorIntegrator(mode geometry.ColorMode) *SurfaceColorIntegrator {
	return &SurfaceColorIntegrator{Mode: mode}
}

// RayColor returns the nearest shape's color, or the background on a miss
func (sci *SurfaceColorIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	shape, hit, isHit := sc.ClosestHit(ray)
	if !isHit {
		return BackgroundGradient(ray)
	}
	return shape.Color(hit, sci.Mode)
}
