package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	parallelEpsilon         = 1e-10
	lineHitThreshold        = 1e-2
	lineSegmentHitThreshold = 5e-2
)

// ClosestApproach describes the closest points between a ray's line and another line
type ClosestApproach struct {
	LinePoint core.Vec3 // Closest point on the primitive's line
	RayPoint  core.Vec3 // Closest point on the ray's line
	LineParam float64   // Parameter of LinePoint along the primitive's direction
	RayParam  float64   // Parameter of RayPoint along the ray (the hit t)
	Distance  float64   // |LinePoint - RayPoint|
}

// closestApproach computes the closest points between the line point + mua*direction
// and the ray. It reports false when the two are parallel.
func closestApproach(point, direction core.Vec3, ray core.Ray) (ClosestApproach, bool) {
	po := point.Subtract(ray.Origin)

	d1343 := po.Dot(ray.Direction)
	d4321 := ray.Direction.Dot(direction)
	d1321 := po.Dot(direction)
	d4343 := ray.Direction.Dot(ray.Direction)
	d2121 := direction.Dot(direction)

	denom := d2121*d4343 - d4321*d4321
	if math.Abs(denom) < parallelEpsilon {
		return ClosestApproach{}, false
	}

	numer := d1343*d4321 - d1321*d4343
	mua := numer / denom
	mub := (d1343 + d4321*mua) / d4343

	linePoint := point.Add(direction.Multiply(mua))
	rayPoint := ray.At(mub)

	return ClosestApproach{
		LinePoint: linePoint,
		RayPoint:  rayPoint,
		LineParam: mua,
		RayParam:  mub,
		Distance:  linePoint.Subtract(rayPoint).Length(),
	}, true
}

// approachHit builds a hit record at the closest point on the ray.
// The normal points from the line toward the ray.
func approachHit(ray core.Ray, approach ClosestApproach) *HitRecord {
	hitRecord := &HitRecord{
		T:     approach.RayParam,
		Point: approach.RayPoint,
	}

	offset := approach.RayPoint.Subtract(approach.LinePoint)
	outwardNormal := ray.Direction.Negate().Normalize()
	if offset.LengthSquared() > 0 {
		outwardNormal = offset.Normalize()
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord
}

// Line is an infinite line through Point along Direction.
//
// With ProximityHits unset, Hit never reports an intersection.
// With it set, rays passing within 1e-2 of the line hit it.
type Line struct {
	Point         core.Vec3
	Direction     core.Vec3
	ProximityHits bool
}

// NewLine creates a new line. Direction must be non-zero.
func NewLine(point, direction core.Vec3) *Line {
	return &Line{
		Point:     point,
		Direction: direction,
	}
}

// ClosestApproach returns the closest points between the line and the ray
func (l *Line) ClosestApproach(ray core.Ray) (ClosestApproach, bool) {
	return closestApproach(l.Point, l.Direction, ray)
}

// Hit tests if the ray passes close enough to the line
func (l *Line) Hit(ray core.Ray) (*HitRecord, bool) {
	approach, ok := l.ClosestApproach(ray)
	if !ok || !l.ProximityHits {
		return nil, false
	}

	if approach.Distance >= lineHitThreshold {
		return nil, false
	}

	return approachHit(ray, approach), true
}

// Color returns the line's fixed green
func (l *Line) Color(hit *HitRecord, mode ColorMode) core.Vec3 {
	return core.NewVec3(0.3, 0.9, 0.5)
}

// Name implements Shape
func (l *Line) Name() string {
	return "line"
}

// LineSegment is the finite segment between PointA and PointB.
//
// With ProximityHits unset, Hit never reports an intersection.
// With it set, rays passing within 5e-2 of the segment hit it,
// provided the closest point lies inside the segment's axis-aligned bounds.
type LineSegment struct {
	PointA        core.Vec3
	PointB        core.Vec3
	ProximityHits bool
}

// NewLineSegment creates a new line segment. The endpoints must differ.
func NewLineSegment(pointA, pointB core.Vec3) *LineSegment {
	return &LineSegment{
		PointA: pointA,
		PointB: pointB,
	}
}

// ClosestApproach returns the closest points between the segment's line and the ray
func (ls *LineSegment) ClosestApproach(ray core.Ray) (ClosestApproach, bool) {
	return closestApproach(ls.PointA, ls.PointB.Subtract(ls.PointA), ray)
}

// Hit tests if the ray passes close enough to the segment
func (ls *LineSegment) Hit(ray core.Ray) (*HitRecord, bool) {
	approach, ok := ls.ClosestApproach(ray)
	if !ok || !ls.ProximityHits {
		return nil, false
	}

	if approach.Distance >= lineSegmentHitThreshold || !ls.withinBounds(approach.LinePoint) {
		return nil, false
	}

	return approachHit(ray, approach), true
}

// withinBounds checks p against the axis-aligned box spanned by the endpoints
func (ls *LineSegment) withinBounds(p core.Vec3) bool {
	lo := core.NewVec3(min(ls.PointA.X, ls.PointB.X), min(ls.PointA.Y, ls.PointB.Y), min(ls.PointA.Z, ls.PointB.Z))
	hi := core.NewVec3(max(ls.PointA.X, ls.PointB.X), max(ls.PointA.Y, ls.PointB.Y), max(ls.PointA.Z, ls.PointB.Z))

	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}

// Color returns the segment's fixed purple
func (ls *LineSegment) Color(hit *HitRecord, mode ColorMode) core.Vec3 {
	return core.NewVec3(0.4, 0.3, 0.5)
}

// Name implements Shape
func (ls *LineSegment) Name() string {
	return "segment"
}
