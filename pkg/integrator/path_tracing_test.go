package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// recursiveRayColor is the textbook recursive estimator the loop must match
func recursiveRayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}
	_, hit, isHit := sc.ClosestHit(ray)
	if !isHit {
		return BackgroundGradient(ray)
	}
	target := hit.Point.Add(hit.Normal).Add(core.RandomUnitVector(sampler))
	bounce := core.NewRay(hit.Point, target.Subtract(hit.Point).Normalize())
	return recursiveRayColor(bounce, sc, sampler, depth-1).Multiply(Attenuation)
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	sc := scene.NewDefaultScene()
	sampler := core.NewSeededSampler(42)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), // at the sphere
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),  // at the sky
	}

	integrator := NewPathTracingIntegrator(0)
	for _, ray := range rays {
		if color := integrator.RayColor(ray, sc, sampler); color != (core.Vec3{}) {
			t.Errorf("Expected black color for depth 0, got %v", color)
		}
	}

	// Negative depth behaves like zero
	integrator = NewPathTracingIntegrator(-3)
	if color := integrator.RayColor(rays[1], sc, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black color for negative depth, got %v", color)
	}

	integrator = NewPathTracingIntegrator(3)
	if color := integrator.RayColor(rays[1], sc, sampler); color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestBackgroundGradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(0, 0, -1), core.NewVec3(0.75, 0.85, 1.0)},
		{"unnormalized up", core.NewVec3(0, 10, 0), core.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := BackgroundGradient(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			if color.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracingMissReturnsBackground(t *testing.T) {
	sc := scene.New("empty", scene.DefaultSamplingConfig())
	integrator := NewPathTracingIntegrator(30)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.3, 0.4, -1))

	color := integrator.RayColor(ray, sc, core.NewSeededSampler(1))
	if color != BackgroundGradient(ray) {
		t.Errorf("Expected unattenuated background %v on a miss, got %v", BackgroundGradient(ray), color)
	}
}

// TestPathTracingMatchesRecursiveForm checks the loop gives bit-identical results to the
// recursive estimator when both consume the same random stream
func TestPathTracingMatchesRecursiveForm(t *testing.T) {
	scenes := []*scene.Scene{
		scene.NewDefaultScene(),
		scene.NewPrimitivesScene(true),
		scene.NewSphereRowScene(),
	}

	for _, sc := range scenes {
		t.Run(sc.Name, func(t *testing.T) {
			for _, depth := range []int{1, 2, 5, 30} {
				integrator := NewPathTracingIntegrator(depth)
				loopSampler := core.NewSeededSampler(int64(depth))
				recursiveSampler := core.NewSeededSampler(int64(depth))

				for i := 0; i < 200; i++ {
					u := float64(i%20) / 19
					v := float64(i/20) / 9
					ray := sc.Camera.GetRay(u, v)

					got := integrator.RayColor(ray, sc, loopSampler)
					want := recursiveRayColor(ray, sc, recursiveSampler, depth)
					if got != want {
						t.Fatalf("depth %d ray %d: loop %v != recursive %v", depth, i, got, want)
					}
				}
			}
		})
	}
}

// TestPathTracingAttenuation checks a single bounce into the sky keeps half the light
func TestPathTracingAttenuation(t *testing.T) {
	// Floor far below so the bounce off the sphere's top always escapes
	sc := scene.New("single", scene.DefaultSamplingConfig())
	sc.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5))

	integrator := NewPathTracingIntegrator(2)
	sampler := core.NewSeededSampler(7)

	// Straight down onto the top of the sphere
	ray := core.NewRay(core.NewVec3(0, 2, -1), core.NewVec3(0, -1, 0))
	for i := 0; i < 50; i++ {
		color := integrator.RayColor(ray, sc, sampler)

		// The bounce leaves from the top hemisphere so the result is half a sky color
		maxSky := core.NewVec3(1, 1, 1).Multiply(Attenuation)
		minSky := core.NewVec3(0.5, 0.7, 1.0).Multiply(Attenuation)
		if color.X > maxSky.X+1e-12 || color.X < minSky.X-1e-12 || math.Abs(color.Z-0.5) > 1e-12 {
			t.Fatalf("Expected half of a sky color, got %v", color)
		}
	}
}

func TestSurfaceColorIntegrator(t *testing.T) {
	sc := scene.NewDefaultScene()
	sampler := core.NewSeededSampler(1)
	center := sc.Camera.GetRay(0.5, 0.5)

	albedo := NewSurfaceColorIntegrator(geometry.ColorAlbedo)
	if color := albedo.RayColor(center, sc, sampler); color != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red sphere albedo, got %v", color)
	}

	// Centre ray hits the sphere head on, normal (0, 0, 1)
	normals := NewSurfaceColorIntegrator(geometry.ColorNormal)
	expected := core.NewVec3(0.5, 0.5, 1.0)
	if color := normals.RayColor(center, sc, sampler); color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal color %v, got %v", expected, color)
	}

	sky := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if color := albedo.RayColor(sky, sc, sampler); color != BackgroundGradient(sky) {
		t.Errorf("Expected background on miss, got %v", color)
	}
}

func TestIntegratorInterface(t *testing.T) {
	var _ Integrator = (*PathTracingIntegrator)(nil)
	var _ Integrator = (*SurfaceColorIntegrator)(nil)
}
