package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config holds the command line settings for one render
type Config struct {
	SceneName  string
	Width      int
	Samples    int
	MaxDepth   int
	Passes     int
	Workers    int
	Mode       string
	OutputRoot string
}

func main() {
	config := Config{}
	flag.StringVar(&config.SceneName, "scene", "default", "Built-in scene name, scene file name from scenes/, or path to a .json scene file")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default); height follows the camera aspect ratio")
	flag.IntVar(&config.Samples, "spp", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum bounces per path (0 = scene default)")
	flag.IntVar(&config.Passes, "passes", 1, "Number of progressive passes")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Mode, "mode", "path", "Shading mode: 'path', 'normals' or 'albedo'")
	flag.StringVar(&config.OutputRoot, "out", "output", "Root directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if err := run(config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Go Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-22s %s\n", info.ID, info.Description)
	}
	if files, err := scene.ListSceneFiles(scene.FindScenesDir()); err == nil {
		for _, info := range files {
			fmt.Printf("  %-22s %s\n", strings.TrimPrefix(info.ID, "file:"), info.Description)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

func run(config Config) error {
	fmt.Println("Starting Go Path Tracer...")

	sc, err := createScene(config.SceneName)
	if err != nil {
		return err
	}
	width, height := imageSize(sc, config.Width)
	samples := config.Samples
	if samples <= 0 {
		samples = sc.SamplingConfig.SamplesPerPixel
	}
	maxDepth := config.MaxDepth
	if maxDepth <= 0 {
		maxDepth = sc.SamplingConfig.MaxDepth
	}

	integratorInst, err := createIntegrator(config.Mode, maxDepth)
	if err != nil {
		return err
	}

	outputDir := createOutputDir(config.OutputRoot, config.SceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	fmt.Printf("Scene %q: %d primitives, %dx%d, %d spp, depth %d, mode %s\n",
		sc.Name, sc.GetPrimitiveCount(), width, height, samples, maxDepth, config.Mode)

	progressiveConfig := renderer.DefaultProgressiveConfig()
	progressiveConfig.MaxSamplesPerPixel = samples
	progressiveConfig.MaxPasses = config.Passes
	progressiveConfig.NumWorkers = config.Workers

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startTime := time.Now()
	img, stats, err := renderProgressive(ctx, sc, width, height, progressiveConfig, integratorInst)
	if err != nil {
		return err
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	if err := savePNG(filename, img); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// renderProgressive drains the pass channel and returns the last completed pass
func renderProgressive(ctx context.Context, sc *scene.Scene, width, height int, config renderer.ProgressiveConfig, integratorInst integrator.Integrator) (*image.RGBA, renderer.RenderStats, error) {
	pr := renderer.NewProgressiveRaytracer(sc, width, height, config, integratorInst, renderer.NewDefaultLogger())
	passChan, _, errChan := pr.RenderProgressive(ctx, renderer.RenderOptions{})

	var last renderer.PassResult
	for result := range passChan {
		last = result
	}
	if err := <-errChan; err != nil {
		return nil, renderer.RenderStats{}, fmt.Errorf("rendering: %w", err)
	}
	if last.Image == nil {
		return nil, renderer.RenderStats{}, fmt.Errorf("rendering produced no passes")
	}
	return last.Image, last.Stats, nil
}

// createScene resolves a built-in name, a scene file name or a scene file path
func createScene(sceneName string) (*scene.Scene, error) {
	sc, err := scene.Load(sceneName)
	if err != nil {
		return nil, fmt.Errorf("loading scene: %w", err)
	}
	return sc, nil
}

// createIntegrator maps a shading mode to its integrator
func createIntegrator(mode string, maxDepth int) (integrator.Integrator, error) {
	switch mode {
	case "path":
		return integrator.NewPathTracingIntegrator(maxDepth), nil
	case "normals":
		return integrator.NewSurfaceColorIntegrator(geometry.ColorNormal), nil
	case "albedo":
		return integrator.NewSurfaceColorIntegrator(geometry.ColorAlbedo), nil
	default:
		return nil, fmt.Errorf("unknown mode %q (expected path, normals or albedo)", mode)
	}
}

// imageSize returns the scene's configured size, or the requested width with the
// height derived from the camera aspect ratio
func imageSize(sc *scene.Scene, width int) (int, int) {
	if width <= 0 {
		return sc.SamplingConfig.Width, sc.SamplingConfig.Height
	}
	height := max(int(math.Round(float64(width)/sc.Camera.AspectRatio())), 1)
	return width, height
}

// createOutputDir names the output directory after the scene, without path or extension
func createOutputDir(root, sceneName string) string {
	base := strings.TrimPrefix(sceneName, "file:")
	base = strings.TrimSuffix(filepath.Base(base), filepath.Ext(base))
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join(root, base)
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	return nil
}
