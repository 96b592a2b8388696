package renderer

import (
	"image"

	"github.com/df07/bvhtracer/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MaxSamples     int     // Maximum samples allowed per pixel
	MinSamples     int     // Minimum samples taken per pixel
	MaxSamplesUsed int     // Maximum samples actually used by any pixel
}

// PixelStats tracks sampling statistics for a single pixel. Luminances retains every
// sample so convergence can be judged from its true running variance (via gonum/stat)
// rather than a hand-rolled Welford accumulator.
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	Luminances  []float64 // Per-sample luminance, in draw order
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.Luminances = append(ps.Luminances, color.Luminance())
	ps.SampleCount++
}

// MeanVariance returns the mean and variance of the luminance samples taken so far,
// via gonum/stat.MeanVariance over the full running sample buffer.
func (ps *PixelStats) MeanVariance() (mean, variance float64) {
	if len(ps.Luminances) == 0 {
		return 0, 0
	}
	return stat.MeanVariance(ps.Luminances, nil)
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance computes the mean perceptual luminance across every pixel
// of a rendered image, used by tests to compare renders without a pixel-by-pixel diff.
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return 0.0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			r := float64(c.R) / 255.0
			g := float64(c.G) / 255.0
			b := float64(c.B) / 255.0
			total += 0.2126*r + 0.7152*g + 0.0722*b
		}
	}

	return total / float64(bounds.Dx()*bounds.Dy())
}
