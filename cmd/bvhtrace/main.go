// Command bvhtrace is the CLI front-end for the path tracer: it selects a demo
// scene, drives progressive rendering through a worker pool, and writes the
// result out as a PPM image.
package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"strconv"
	"time"

	"github.com/df07/bvhtracer/pkg/core"
	"github.com/df07/bvhtracer/pkg/integrator"
	"github.com/df07/bvhtracer/pkg/ppm"
	"github.com/df07/bvhtracer/pkg/renderer"
	"github.com/df07/bvhtracer/pkg/scene"
	"github.com/urfave/cli/v2"
)

// sceneNames lists the demo scenes selectable via the "scene" flag or a positional
// argument; a positional integer is an index into this list. It is also the list
// shown in --help.
var sceneNames = []string{"default", "cornell", "spheregrid", "texture-gallery", "triangle-mesh"}

func buildScene(name, meshPath string) (core.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cornell":
		return scene.NewCornellScene(), nil
	case "spheregrid":
		return scene.NewSphereGridScene(), nil
	case "texture-gallery":
		return scene.NewTextureGalleryScene(), nil
	case "triangle-mesh":
		return scene.NewTriangleMeshScene(meshPath), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (known scenes: %v)", name, sceneNames)
	}
}

func main() {
	app := &cli.App{
		Name:  "bvhtrace",
		Usage: "offline BVH-accelerated path tracer",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scene", Value: "default", Usage: fmt.Sprintf("demo scene to render: %v", sceneNames)},
			&cli.StringFlag{Name: "mesh", Value: "scenes/mesh.tri", Usage: "mesh file path, used only by the triangle-mesh scene"},
			&cli.IntFlag{Name: "max-passes", Value: 5, Usage: "maximum number of progressive passes"},
			&cli.IntFlag{Name: "max-samples", Value: 0, Usage: "maximum samples per pixel (0 = use the scene's recommended config)"},
			&cli.IntFlag{Name: "workers", Value: 0, Usage: "parallel render workers (0 = auto-detect CPU count)"},
			&cli.StringFlag{Name: "out", Value: "render.ppm", Usage: "output PPM file path"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "bvhtrace: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := renderer.NewZapLogger()
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to build logger: %v", err), 1)
	}
	defer logger.Sync()

	sceneName := c.String("scene")
	if c.Args().Present() {
		// A positional argument overrides --scene: an index into sceneNames, or a name.
		arg := c.Args().First()
		if idx, convErr := strconv.Atoi(arg); convErr == nil {
			if idx < 0 || idx >= len(sceneNames) {
				return cli.Exit(fmt.Sprintf("unknown scene index %d (valid: 0-%d)", idx, len(sceneNames)-1), 1)
			}
			sceneName = sceneNames[idx]
		} else {
			sceneName = arg
		}
	}
	sceneObj, err := buildScene(sceneName, c.String("mesh"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	samplingConfig := sceneObj.GetSamplingConfig()
	maxSamples := c.Int("max-samples")
	if maxSamples <= 0 {
		maxSamples = samplingConfig.SamplesPerPixel
	}

	logger.Printf("rendering scene %q (%dx%d, %d samples/px, depth %d)\n",
		sceneName, samplingConfig.Width, samplingConfig.Height, maxSamples, samplingConfig.MaxDepth)

	pathTracer := integrator.NewPathTracingIntegrator(samplingConfig)

	progressiveConfig := renderer.DefaultProgressiveConfig()
	progressiveConfig.MaxPasses = c.Int("max-passes")
	progressiveConfig.MaxSamplesPerPixel = maxSamples
	progressiveConfig.NumWorkers = c.Int("workers")

	raytracer := renderer.NewProgressiveRaytracer(
		sceneObj, pathTracer, samplingConfig.Width, samplingConfig.Height, progressiveConfig, logger)

	start := time.Now()
	finalImage, stats, err := renderToCompletion(raytracer)
	if err != nil {
		return cli.Exit(fmt.Sprintf("render failed: %v", err), 1)
	}

	logger.Printf("render completed in %v (avg %.1f samples/px, range %d-%d)\n",
		time.Since(start), stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)

	outPath := c.String("out")
	if err := ppm.WriteImageFile(outPath, finalImage); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write %q: %v", outPath, err), 1)
	}

	logger.Printf("wrote %s\n", outPath)
	return nil
}

// renderToCompletion drains the progressive render's pass/error channels until the
// final pass lands or an error arrives, returning the last completed image.
func renderToCompletion(raytracer *renderer.ProgressiveRaytracer) (*image.RGBA, renderer.RenderStats, error) {
	passChan, _, errChan := raytracer.RenderProgressive(context.Background(), renderer.RenderOptions{TileUpdates: false})

	var finalImage *image.RGBA
	var finalStats renderer.RenderStats

	for passChan != nil || errChan != nil {
		select {
		case result, ok := <-passChan:
			if !ok {
				passChan = nil
				continue
			}
			finalImage = result.Image
			finalStats = result.Stats
		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			if err != nil {
				return nil, renderer.RenderStats{}, err
			}
		}
	}

	if finalImage == nil {
		return nil, renderer.RenderStats{}, fmt.Errorf("no passes were rendered")
	}
	return finalImage, finalStats, nil
}
