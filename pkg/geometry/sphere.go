package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. Radius must be positive.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Near root first; fall back to the far root when the origin is inside
	// the sphere or sits on its surface.
	root := (-b - sqrtD) / (2 * a)
	if root <= AcneEpsilon {
		root = (-b + sqrtD) / (2 * a)
		if root <= AcneEpsilon {
			return nil, false
		}
	}

	hitRecord := &HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Normalize()
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// Color returns red, or the normal visualization
func (s *Sphere) Color(hit *HitRecord, mode ColorMode) core.Vec3 {
	if mode == ColorNormal {
		return normalColor(hit.Normal)
	}
	return core.NewVec3(1, 0, 0)
}

// Name implements Shape
func (s *Sphere) Name() string {
	return "sphere"
}
