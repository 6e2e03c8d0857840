package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// determinantEpsilon rejects back-facing and grazing rays
const determinantEpsilon = 1e-6

// Triangle represents a single-sided triangle defined by three vertices.
// The front side is the one the counter-clockwise winding A, B, C faces.
type Triangle struct {
	A, B, C core.Vec3
	edge1   core.Vec3 // B - A
	edge2   core.Vec3 // C - A
	normal  core.Vec3 // Unnormalized (B - A) x (C - A)
}

// NewTriangle creates a new triangle from three non-collinear vertices
func NewTriangle(a, b, c core.Vec3) *Triangle {
	t := &Triangle{A: a, B: b, C: c}
	t.edge1 = b.Subtract(a)
	t.edge2 = c.Subtract(a)
	t.normal = t.edge1.Cross(t.edge2)
	return t
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray) (*HitRecord, bool) {
	determinant := -ray.Direction.Dot(t.normal)
	if determinant < determinantEpsilon {
		return nil, false
	}

	invDeterminant := 1.0 / determinant
	ao := ray.Origin.Subtract(t.A)
	dao := ao.Cross(ray.Direction)

	// Barycentric coordinates (u, v, 1-u-v) and ray parameter
	u := t.edge2.Dot(dao) * invDeterminant
	v := -t.edge1.Dot(dao) * invDeterminant
	tParam := ao.Dot(t.normal) * invDeterminant

	if tParam < 0 || u < 0 || v < 0 || u+v > 1 {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:     tParam,
		Point: ray.At(tParam),
	}
	hitRecord.SetFaceNormal(ray, t.normal.Normalize())

	return hitRecord, true
}

// Color returns pink, or the normal visualization
func (t *Triangle) Color(hit *HitRecord, mode ColorMode) core.Vec3 {
	if mode == ColorNormal {
		return normalColor(hit.Normal)
	}
	return core.NewVec3(1, 0.4, 0.6)
}

// Name implements Shape
func (t *Triangle) Name() string {
	return "triangle"
}

// GetNormal returns the triangle's unit normal
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal.Normalize()
}

// IsDegenerate reports whether the vertices are collinear
func (t *Triangle) IsDegenerate() bool {
	return t.normal.LengthSquared() == 0
}
