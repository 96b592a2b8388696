// Package ppm writes the ASCII Netpbm P3 wire format the render pipeline uses as its
// external image output, gamma-correcting and clamping each pixel immediately before
// emission.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/df07/bvhtracer/pkg/core"
)

// gamma matches the renderer's own output curve (see pkg/renderer/tile_renderer.go):
// deliberately gentler than the conventional 2.2/2.0, keeping midtones brighter.
const gamma = 1.25

// Write emits a P3 image of the given width/height to w. colorAt(x, y) must return
// the linear-space color for every pixel in [0, width) x [0, height); it is
// gamma-corrected and clamped to [0,255] here, not by the caller.
func Write(w io.Writer, width, height int, colorAt func(x, y int) core.Vec3) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := colorAt(x, y).Clamp(0.0, 1.0).GammaCorrect(gamma)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n",
				int(255*c.X), int(255*c.Y), int(255*c.Z)); err != nil {
				return fmt.Errorf("failed to write PPM pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes a P3 image to it via Write.
func WriteFile(path string, width, height int, colorAt func(x, y int) core.Vec3) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PPM file %q: %w", path, err)
	}
	defer f.Close()

	return Write(f, width, height, colorAt)
}

// WriteImage emits a P3 image of img's pixels to w as-is: unlike Write, it assumes
// img already holds gamma-corrected, clamped 8-bit color (the renderer's own output
// convention; see pkg/renderer/tile_renderer.go's vec3ToColor), so no further gamma
// correction is applied here.
func WriteImage(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return fmt.Errorf("failed to write PPM pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}

// WriteImageFile creates (or truncates) path and writes img to it via WriteImage.
func WriteImageFile(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PPM file %q: %w", path, err)
	}
	defer f.Close()

	return WriteImage(f, img)
}
