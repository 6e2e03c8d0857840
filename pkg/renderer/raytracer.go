package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Render path traces the scene into a width x height image with spp samples per pixel
// and at most maxDepth bounces per path. Pix holds row-major RGBA bytes, top row first.
func Render(sc *scene.Scene, width, height, spp, maxDepth int) *image.RGBA {
	return RenderWithIntegrator(sc, width, height, spp, integrator.NewPathTracingIntegrator(maxDepth), 0)
}

// RenderWithIntegrator renders a single full-quality pass with the given integrator.
// numWorkers <= 0 uses one worker per CPU. The result does not depend on numWorkers.
func RenderWithIntegrator(sc *scene.Scene, width, height, spp int, integratorInst integrator.Integrator, numWorkers int) *image.RGBA {
	config := DefaultProgressiveConfig()
	config.MaxPasses = 1
	config.MaxSamplesPerPixel = spp
	config.NumWorkers = numWorkers

	pr := NewProgressiveRaytracer(sc, width, height, config, integratorInst, core.NopLogger{})
	defer pr.Close()

	img, _, err := pr.RenderPass(1, nil)
	if err != nil {
		// The pool is owned here and only stopped by the deferred Close
		panic(fmt.Sprintf("render: %v", err))
	}
	return img
}
