package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sauerbraten/jsonfile"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// File is the on-disk JSON description of a scene.
// Lines starting with // are treated as comments.
type File struct {
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Group           string      `json:"group"`
	AspectRatio     float64     `json:"aspectRatio"` // Optional, defaults to width/height
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	SamplesPerPixel int         `json:"samplesPerPixel"`
	MaxDepth        int         `json:"maxDepth"`
	Shapes          []ShapeSpec `json:"shapes"`
}

// ShapeSpec describes one primitive in a scene file
type ShapeSpec struct {
	Type          string     `json:"type"` // sphere, triangle, line or segment
	Center        [3]float64 `json:"center"`
	Radius        float64    `json:"radius"`
	A             [3]float64 `json:"a"`
	B             [3]float64 `json:"b"`
	C             [3]float64 `json:"c"`
	Point         [3]float64 `json:"point"`
	Direction     [3]float64 `json:"direction"`
	ProximityHits bool       `json:"proximityHits"`
}

// ReadFile parses a scene file without building it
func ReadFile(path string) (*File, error) {
	var f File
	if err := jsonfile.ParseFile(path, &f); err != nil {
		return nil, fmt.Errorf("parse scene file %s: %w", path, err)
	}
	return &f, nil
}

// LoadFile reads and builds a scene from a JSON scene file
func LoadFile(path string) (*Scene, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("build scene %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Build validates the file and creates the scene it describes
func (f *File) Build() (*Scene, error) {
	config := DefaultSamplingConfig()
	if f.Width > 0 {
		config.Width = f.Width
	}
	if f.Height > 0 {
		config.Height = f.Height
	}
	if f.SamplesPerPixel > 0 {
		config.SamplesPerPixel = f.SamplesPerPixel
	}
	if f.MaxDepth > 0 {
		config.MaxDepth = f.MaxDepth
	}

	s := New(f.Name, config)
	if f.AspectRatio > 0 {
		s.Camera = geometry.NewCamera(f.AspectRatio)
	}

	for i, spec := range f.Shapes {
		shape, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		s.Add(shape)
	}

	return s, nil
}

func (spec ShapeSpec) build() (geometry.Shape, error) {
	switch strings.ToLower(spec.Type) {
	case "sphere":
		if spec.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %g", spec.Radius)
		}
		return geometry.NewSphere(vec(spec.Center), spec.Radius), nil

	case "triangle":
		triangle := geometry.NewTriangle(vec(spec.A), vec(spec.B), vec(spec.C))
		if triangle.IsDegenerate() {
			return nil, fmt.Errorf("triangle vertices are collinear")
		}
		return triangle, nil

	case "line":
		direction := vec(spec.Direction)
		if direction.LengthSquared() == 0 {
			return nil, fmt.Errorf("line direction must be non-zero")
		}
		line := geometry.NewLine(vec(spec.Point), direction)
		line.ProximityHits = spec.ProximityHits
		return line, nil

	case "segment", "linesegment":
		a, b := vec(spec.A), vec(spec.B)
		if a == b {
			return nil, fmt.Errorf("segment endpoints must differ")
		}
		segment := geometry.NewLineSegment(a, b)
		segment.ProximityHits = spec.ProximityHits
		return segment, nil

	default:
		return nil, fmt.Errorf("unknown shape type %q", spec.Type)
	}
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
