// Package loaders decodes the external resources the renderer treats as "out of
// scope" for its core: textures and triangle meshes. Both failure modes documented
// here are resource I/O failures (non-fatal): a texture falls back to a debug
// sentinel, a mesh falls back to an empty primitive set.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // registers the JPEG decoder with image.Decode
	_ "image/png"  // registers the PNG decoder with image.Decode
	"os"

	_ "golang.org/x/image/bmp"  // registers the BMP decoder with image.Decode
	_ "golang.org/x/image/tiff" // registers the TIFF decoder with image.Decode

	"github.com/df07/bvhtracer/pkg/core"
	"github.com/df07/bvhtracer/pkg/material"
)

// LoadImage decodes path into a material.Image texture. A missing or corrupt file
// logs a warning through logger (if non-nil) and returns the cyan debug sentinel
// texture instead of an error, so a bad texture path never fails scene construction.
func LoadImage(path string, logger core.Logger) *material.Image {
	pixels, err := decodeImagePixels(path)
	if err != nil {
		if logger != nil {
			logger.Printf("warning: failed to load image %q: %v; using debug sentinel texture\n", path, err)
		}
		return material.NewImage(nil)
	}
	return material.NewImage(pixels)
}

// decodeImagePixels reads and decodes path, converting it to a linear [0,1] RGB
// pixel buffer. Format is auto-detected from the file header across PNG, JPEG, BMP
// and TIFF, whichever decoder is registered above matches first.
func decodeImagePixels(path string) (*material.ImagePixels, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]; normalize to [0, 1].
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &material.ImagePixels{Width: width, Height: height, Pixels: pixels}, nil
}
