package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Whether lines and segments should be visible at all is unresolved. By default
// (ProximityHits unset) they compute the closest approach but never report a hit.
// The proximity tests below cover the opt-in behavior only and are not a statement
// about the intended default.

func TestLine_ClosestApproach(t *testing.T) {
	forward := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name             string
		line             *Line
		ray              core.Ray
		expectedParallel bool
		expectedRayParam float64
		expectedDistance float64
		expectedLinePt   core.Vec3
	}{
		{
			name:             "intersecting lines",
			line:             NewLine(core.NewVec3(0, 0, -5), core.NewVec3(0, 1, 0)),
			ray:              forward,
			expectedRayParam: 5,
			expectedDistance: 0,
			expectedLinePt:   core.NewVec3(0, 0, -5),
		},
		{
			name:             "skew lines",
			line:             NewLine(core.NewVec3(0.5, 3, -2), core.NewVec3(0, 1, 0)),
			ray:              forward,
			expectedRayParam: 2,
			expectedDistance: 0.5,
			expectedLinePt:   core.NewVec3(0.5, 0, -2),
		},
		{
			name:             "unnormalized ray direction",
			line:             NewLine(core.NewVec3(0, 0, -5), core.NewVec3(0, 2, 0)),
			ray:              core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2)),
			expectedRayParam: 2.5,
			expectedDistance: 0,
			expectedLinePt:   core.NewVec3(0, 0, -5),
		},
		{
			name:             "parallel lines",
			line:             NewLine(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -3)),
			ray:              forward,
			expectedParallel: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approach, ok := tt.line.ClosestApproach(tt.ray)
			if ok == tt.expectedParallel {
				t.Fatalf("Expected parallel=%v, got ok=%v", tt.expectedParallel, ok)
			}
			if tt.expectedParallel {
				return
			}

			if math.Abs(approach.RayParam-tt.expectedRayParam) > 1e-9 {
				t.Errorf("Expected ray parameter %f, got %f", tt.expectedRayParam, approach.RayParam)
			}
			if math.Abs(approach.Distance-tt.expectedDistance) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expectedDistance, approach.Distance)
			}
			if approach.LinePoint.Subtract(tt.expectedLinePt).Length() > 1e-9 {
				t.Errorf("Expected line point %v, got %v", tt.expectedLinePt, approach.LinePoint)
			}
			if tt.ray.At(approach.RayParam).Subtract(approach.RayPoint).Length() > 1e-9 {
				t.Errorf("Ray point %v is not on the ray at t=%f", approach.RayPoint, approach.RayParam)
			}
		})
	}
}

func TestLine_Hit_DefaultNeverHits(t *testing.T) {
	// Passes straight through the line; still unresolved whether this should render
	line := NewLine(core.NewVec3(0, 0, -5), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := line.Hit(ray); isHit {
		t.Error("Line without proximity hits reported a hit")
	}
}

func TestLine_Hit_Proximity(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		offset    float64
		shouldHit bool
	}{
		{"through the line", 0, true},
		{"inside threshold", 0.005, true},
		{"outside threshold", 0.02, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := NewLine(core.NewVec3(tt.offset, 0, -5), core.NewVec3(0, 1, 0))
			line.ProximityHits = true

			hit, isHit := line.Hit(ray)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}

			if math.Abs(hit.T-5) > 1e-9 {
				t.Errorf("Expected t=5, got %f", hit.T)
			}
			if ray.Direction.Dot(hit.Normal) > 0 {
				t.Errorf("Normal %v faces along ray direction", hit.Normal)
			}
			if math.Abs(hit.Normal.Length()-1) > 1e-9 {
				t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
			}
		})
	}
}

func TestLineSegment_Hit_DefaultNeverHits(t *testing.T) {
	segment := NewLineSegment(core.NewVec3(-1, 0, -5), core.NewVec3(1, 0, -5))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := segment.Hit(ray); isHit {
		t.Error("Line segment without proximity hits reported a hit")
	}
}

func TestLineSegment_Hit_Proximity(t *testing.T) {
	tests := []struct {
		name      string
		a, b      core.Vec3
		origin    core.Vec3
		shouldHit bool
	}{
		{
			name:      "through the middle",
			a:         core.NewVec3(-1, 0, -5),
			b:         core.NewVec3(1, 0, -5),
			origin:    core.NewVec3(0, 0, 0),
			shouldHit: true,
		},
		{
			name:      "reversed endpoints",
			a:         core.NewVec3(1, 0, -5),
			b:         core.NewVec3(-1, 0, -5),
			origin:    core.NewVec3(0, 0, 0),
			shouldHit: true,
		},
		{
			name:      "within segment threshold but wider than line threshold",
			a:         core.NewVec3(-1, 0, -5),
			b:         core.NewVec3(1, 0, -5),
			origin:    core.NewVec3(0, 0.03, 0),
			shouldHit: true,
		},
		{
			name:      "past the endpoint",
			a:         core.NewVec3(-1, 0, -5),
			b:         core.NewVec3(1, 0, -5),
			origin:    core.NewVec3(2, 0, 0),
			shouldHit: false,
		},
		{
			name:      "too far from the segment",
			a:         core.NewVec3(-1, 0, -5),
			b:         core.NewVec3(1, 0, -5),
			origin:    core.NewVec3(0, 0.1, 0),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segment := NewLineSegment(tt.a, tt.b)
			segment.ProximityHits = true
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, -1))

			hit, isHit := segment.Hit(ray)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if isHit && math.Abs(hit.T-5) > 1e-9 {
				t.Errorf("Expected t=5, got %f", hit.T)
			}
		})
	}
}

func TestLine_Colors(t *testing.T) {
	hit := &HitRecord{Normal: core.NewVec3(0, 0, 1)}

	line := NewLine(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if got := line.Color(hit, ColorNormal); got != core.NewVec3(0.3, 0.9, 0.5) {
		t.Errorf("Expected fixed line color in every mode, got %v", got)
	}

	segment := NewLineSegment(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if got := segment.Color(hit, ColorAlbedo); got != core.NewVec3(0.4, 0.3, 0.5) {
		t.Errorf("Expected fixed segment color, got %v", got)
	}
}
