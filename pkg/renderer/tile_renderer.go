package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/df07/bvhtracer/pkg/core"
)

// gamma is the output gamma applied when converting a linear color to a displayable byte
// triplet. 1.25 rather than the conventional 2.2/2.0: a deliberately gentler curve that
// keeps midtones brighter without fully linear output.
const gamma = 1.25

// vec3ToColor converts a linear-space color to clamped, gamma-corrected 8-bit RGBA.
func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0).GammaCorrect(gamma)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

// TileRenderer renders pixels within a bounds rectangle using an Integrator against a
// Scene's world, tracking per-pixel statistics so adaptive sampling can stop early.
type TileRenderer struct {
	scene      core.Scene
	integrator core.Integrator
}

// NewTileRenderer creates a tile renderer for the given scene and integrator.
func NewTileRenderer(scene core.Scene, integratorInst core.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: integratorInst,
	}
}

// RenderTileBounds renders every pixel within bounds, writing accumulated statistics
// into the corresponding entries of the shared pixelStats array, up to targetSamples
// per pixel (fewer if adaptive sampling converges early).
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand, targetSamples int) RenderStats {
	camera := tr.scene.GetCamera()
	samplingConfig := tr.scene.GetSamplingConfig()

	stats := tr.initRenderStatsForBounds(bounds, targetSamples)

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			samplesUsed := tr.adaptiveSamplePixel(camera, i, j, &pixelStats[j][i], random, targetSamples, samplingConfig)
			tr.updateStats(&stats, samplesUsed)
		}
	}

	tr.finalizeStats(&stats)
	return stats
}

// adaptiveSamplePixel draws samples for pixel (i, j) until either targetSamples is
// reached or the running variance converges below the configured threshold.
func (tr *TileRenderer) adaptiveSamplePixel(camera core.Camera, i, j int, ps *PixelStats, random *rand.Rand, maxSamples int, samplingConfig core.SamplingConfig) int {
	initialSampleCount := ps.SampleCount

	for ps.SampleCount < maxSamples && !tr.shouldStopSampling(ps, maxSamples, samplingConfig) {
		ray := camera.GetRay(i, j, random)
		color := tr.integrator.RayColor(ray, tr.scene, random)
		ps.AddSample(color)
	}

	return ps.SampleCount - initialSampleCount
}

// shouldStopSampling reports whether the pixel has converged: it must have taken at
// least AdaptiveMinSamples of maxSamples, and its coefficient of variation must be below
// AdaptiveThreshold (or its mean luminance must itself be near zero).
func (tr *TileRenderer) shouldStopSampling(ps *PixelStats, maxSamples int, samplingConfig core.SamplingConfig) bool {
	minSamples := max(1, int(float64(maxSamples)*samplingConfig.AdaptiveMinSamples))
	if ps.SampleCount < minSamples {
		return false
	}

	mean, variance := ps.MeanVariance()

	if mean <= 1e-8 {
		return variance < 1e-6
	}

	relativeError := math.Sqrt(variance) / mean
	return relativeError < samplingConfig.AdaptiveThreshold
}

// initRenderStatsForBounds initializes the render statistics tracking for specific bounds
func (tr *TileRenderer) initRenderStatsForBounds(bounds image.Rectangle, maxSamples int) RenderStats {
	pixelCount := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalPixels:    pixelCount,
		TotalSamples:   0,
		AverageSamples: 0,
		MaxSamples:     maxSamples,
		MinSamples:     maxSamples,
		MaxSamplesUsed: 0,
	}
}

// updateStats updates the render statistics with data from a single pixel
func (tr *TileRenderer) updateStats(stats *RenderStats, samplesUsed int) {
	stats.TotalSamples += samplesUsed
	stats.MinSamples = min(stats.MinSamples, samplesUsed)
	stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, samplesUsed)
}

// finalizeStats calculates final statistics after all pixels are rendered
func (tr *TileRenderer) finalizeStats(stats *RenderStats) {
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
}
