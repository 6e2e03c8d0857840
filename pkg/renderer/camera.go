package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// PixelCamera maps image pixels to camera rays.
// Pixel (x, y) uses buffer coordinates with y = 0 at the top of the image,
// which is scanline j = height-1-y in camera space.
type PixelCamera struct {
	camera        *geometry.Camera
	width, height int
}

// NewPixelCamera creates a pixel mapping for an image of the given size
func NewPixelCamera(camera *geometry.Camera, width, height int) *PixelCamera {
	return &PixelCamera{
		camera: camera,
		width:  width,
		height: height,
	}
}

// GetRay returns a ray through pixel (x, y) jittered within the pixel cell.
// u is drawn before v.
func (pc *PixelCamera) GetRay(x, y int, sampler core.Sampler) core.Ray {
	jx := sampler.Get1D()
	jy := sampler.Get1D()
	return pc.rayAt(x, y, jx, jy)
}

// CenterRay returns the un-jittered ray through the middle of pixel (x, y)
func (pc *PixelCamera) CenterRay(x, y int) core.Ray {
	return pc.rayAt(x, y, 0.5, 0.5)
}

func (pc *PixelCamera) rayAt(x, y int, jx, jy float64) core.Ray {
	j := pc.height - 1 - y
	u := (float64(x) + jx) / spanOf(pc.width)
	v := (float64(j) + jy) / spanOf(pc.height)
	return pc.camera.GetRay(u, v)
}

// spanOf is the u/v denominator for an image dimension; a single pixel has span 1
func spanOf(size int) float64 {
	return float64(max(size-1, 1))
}
