package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// AcneEpsilon is the minimum ray parameter accepted as a hit. Bounce rays start on the
// surface they left, so anything closer is treated as self-intersection.
const AcneEpsilon = 1e-3

// ColorMode selects what a shape reports from its surface color query
type ColorMode int

const (
	// ColorAlbedo returns the shape's fixed albedo
	ColorAlbedo ColorMode = iota
	// ColorNormal visualizes the surface normal as (n + 1) / 2 where supported
	ColorNormal
)

// String returns the mode name
func (m ColorMode) String() string {
	switch m {
	case ColorNormal:
		return "normal"
	default:
		return "albedo"
	}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the outward normal already faced the ray
}

// SetFaceNormal orients the normal against the incoming ray.
// After this call ray.Direction.Dot(h.Normal) <= 0 holds.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is implemented by every primitive that can be placed in a scene:
// *Sphere, *Triangle, *Line and *LineSegment.
type Shape interface {
	// Hit reports the intersection of the ray with the shape, if any.
	// Shapes filter only what their own formula requires; the scene applies AcneEpsilon.
	Hit(ray core.Ray) (*HitRecord, bool)
	// Color returns the surface color at a hit
	Color(hit *HitRecord, mode ColorMode) core.Vec3
	// Name returns the primitive kind, e.g. "sphere"
	Name() string
}

// normalColor maps a unit normal into [0, 1] per channel
func normalColor(normal core.Vec3) core.Vec3 {
	return normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
