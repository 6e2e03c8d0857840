package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// NewDefaultScene creates the classic scene: one sphere resting on a huge floor sphere
func NewDefaultScene() *Scene {
	s := New("default", DefaultSamplingConfig())

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100),
	)

	return s
}

// NewPrimitivesScene places one of every primitive kind in view.
// Lines and segments stay invisible unless proximityHits is set.
func NewPrimitivesScene(proximityHits bool) *Scene {
	s := New("primitives", DefaultSamplingConfig())

	line := geometry.NewLine(core.NewVec3(1, 0, -10), core.NewVec3(0, 1, 0))
	line.ProximityHits = proximityHits
	segment := geometry.NewLineSegment(core.NewVec3(2, 0, -10), core.NewVec3(3, 2, -10))
	segment.ProximityHits = proximityHits

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.5, -5), 100),
		geometry.NewTriangle(
			core.NewVec3(-1, -1, -1.3), // left
			core.NewVec3(1, -1, -1.3),  // right
			core.NewVec3(0, 1, -2),     // top
		),
		line,
		segment,
	)

	return s
}

// NewSphereRowScene lines up spheres of increasing size at increasing depth
func NewSphereRowScene() *Scene {
	s := New("sphere-row", DefaultSamplingConfig())

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100))
	for i := 0; i < 5; i++ {
		x := -2.0 + float64(i)
		radius := 0.2 + 0.075*float64(i)
		z := -1.5 - 0.5*float64(i)
		s.Add(geometry.NewSphere(core.NewVec3(x, radius-0.5, z), radius))
	}

	return s
}
