package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Attenuation is the fraction of light kept at every diffuse bounce
const Attenuation = 0.5

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with an implicit
// grey diffuse surface on every shape
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth: maxDepth,
	}
}

// RayColor follows the path for at most MaxDepth segments. Each hit scales the running
// throughput by Attenuation and continues in a random direction around the normal.
// The loop draws samples in the same order as the recursive formulation.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	throughput := 1.0

	for depth := pt.MaxDepth; depth > 0; depth-- {
		_, hit, isHit := sc.ClosestHit(ray)
		if !isHit {
			return BackgroundGradient(ray).Multiply(throughput)
		}

		target := hit.Point.Add(hit.Normal).Add(core.RandomUnitVector(sampler))
		ray = core.NewRay(hit.Point, target.Subtract(hit.Point).Normalize())
		throughput *= Attenuation
	}

	// Bounce limit reached, no more light is gathered
	return core.Vec3{X: 0, Y: 0, Z: 0}
}

// BackgroundGradient returns the sky color for a ray that escaped the scene:
// white at the bottom blending to light blue at the top.
func BackgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return white.Lerp(skyBlue, t)
}
