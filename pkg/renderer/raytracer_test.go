package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestRender_BufferLayout(t *testing.T) {
	width, height := 32, 18
	img := Render(scene.NewDefaultScene(), width, height, 2, 5)

	if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
		t.Fatalf("Expected %dx%d image, got %v", width, height, img.Bounds())
	}
	if len(img.Pix) != width*height*4 {
		t.Fatalf("Expected %d bytes, got %d", width*height*4, len(img.Pix))
	}
	if img.Stride != width*4 {
		t.Errorf("Expected row-major stride %d, got %d", width*4, img.Stride)
	}

	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("Expected alpha 255 at byte %d, got %d", i, img.Pix[i])
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	a := Render(scene.NewDefaultScene(), 24, 16, 3, 10)
	b := Render(scene.NewDefaultScene(), 24, 16, 3, 10)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Expected identical renders for identical inputs")
	}
}

func TestRender_SkyAtTopOfBuffer(t *testing.T) {
	// Nothing to hit: the image is just the background gradient
	sc := scene.New("empty", scene.DefaultSamplingConfig())
	img := RenderWithIntegrator(sc, 8, 8, 1, integrator.NewSurfaceColorIntegrator(geometry.ColorAlbedo), 1)

	top := img.RGBAAt(4, 0)
	bottom := img.RGBAAt(4, 7)
	if top.R >= bottom.R {
		t.Errorf("Expected bluer sky at the top row (R=%d) than the bottom row (R=%d)", top.R, bottom.R)
	}
	if top.B != 254 || bottom.B != 254 {
		t.Errorf("Expected full blue channel, got top %d bottom %d", top.B, bottom.B)
	}
}

func TestRender_SingleSampleIsRaw(t *testing.T) {
	color := core.NewVec3(0.3, 0.6, 0.9)
	mock := &MockIntegrator{returnColor: color}

	img := RenderWithIntegrator(scene.NewDefaultScene(), 4, 4, 1, mock, 2)

	expected := ToneMap(color, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.RGBAAt(x, y) != expected {
				t.Fatalf("Pixel (%d, %d) = %v, want %v", x, y, img.RGBAAt(x, y), expected)
			}
		}
	}
	if mock.callCount.Load() != 16 {
		t.Errorf("Expected one sample per pixel, got %d calls", mock.callCount.Load())
	}
}

func TestRender_CenterPixelSeesSphere(t *testing.T) {
	// The red sphere sits in the middle of the default scene with the sky above it
	sc := scene.NewDefaultScene()
	img := RenderWithIntegrator(sc, 41, 23, 1, integrator.NewSurfaceColorIntegrator(geometry.ColorAlbedo), 0)

	center := img.RGBAAt(20, 11)
	if center.R != 254 || center.G != 0 || center.B != 0 {
		t.Errorf("Expected red sphere at the center pixel, got %v", center)
	}
	sky := img.RGBAAt(20, 0)
	if sky.B != 254 || sky.R == 254 {
		t.Errorf("Expected sky at the top of the image, got %v", sky)
	}
}

func TestRender_NonPositiveSamples(t *testing.T) {
	mock := &MockIntegrator{returnColor: core.NewVec3(1, 1, 1)}
	img := RenderWithIntegrator(scene.NewDefaultScene(), 2, 2, 0, mock, 1)

	if mock.callCount.Load() != 4 {
		t.Errorf("Expected spp <= 0 to take one sample per pixel, got %d calls", mock.callCount.Load())
	}
	if img.RGBAAt(0, 0).A != 255 {
		t.Error("Expected opaque pixels")
	}
}
