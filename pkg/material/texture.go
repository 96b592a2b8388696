// Package material implements the texture and material graph that feeds shading
// decisions: value-producing texture nodes (solid, checker, gradient, image) and the
// core.Material implementations that sample them (Lambertian, Metal, Dielectric,
// TwoSided, the diffuse light emitter).
package material

import (
	"math"

	"github.com/df07/bvhtracer/pkg/core"
)

// Solid is a texture that always returns the same color, ignoring (u, v, p) entirely.
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a solid-color texture.
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

// Value implements core.Texture.
func (s *Solid) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker3D alternates between two sub-textures based on which cell of world space
// (p.x, p.y, p.z) falls into, each cell 1/InvScale (the constructor's scale) wide. Used for surfaces (e.g. planes,
// triangle meshes) where object-space position is the more natural pattern coordinate
// than surface (u, v).
type Checker3D struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewCheckerboard3D creates a 3D checker texture with the given cell scale.
func NewCheckerboard3D(scale float64, even, odd core.Texture) *Checker3D {
	return &Checker3D{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// Value implements core.Texture.
func (c *Checker3D) Value(u, v float64, p core.Vec3) core.Vec3 {
	x := int(math.Floor(c.InvScale * p.X))
	y := int(math.Floor(c.InvScale * p.Y))
	z := int(math.Floor(c.InvScale * p.Z))
	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}

// Checker2D is Checker3D's surface-parameter counterpart: it keys parity off (u, v)
// instead of world position, which is what spheres and quads expose meaningfully.
type Checker2D struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewCheckerboard2D creates a 2D checker texture with the given cell scale.
func NewCheckerboard2D(scale float64, even, odd core.Texture) *Checker2D {
	return &Checker2D{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// Value implements core.Texture.
func (c *Checker2D) Value(u, v float64, p core.Vec3) core.Vec3 {
	ui := int(math.Floor(c.InvScale * u))
	vi := int(math.Floor(c.InvScale * v))
	if (ui+vi)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}

// GradientAxis selects which surface parameter Gradient interpolates along.
type GradientAxis int

const (
	// GradientU blends by u alone.
	GradientU GradientAxis = iota
	// GradientV blends by v alone.
	GradientV
	// GradientUV blends by the product u*v.
	GradientUV
)

// Gradient linearly blends two sub-textures along u, v, or u*v.
type Gradient struct {
	Axis GradientAxis
	From core.Texture
	To   core.Texture
}

// NewGradient creates a gradient texture blending From (t=0) to To (t=1) along axis.
func NewGradient(axis GradientAxis, from, to core.Texture) *Gradient {
	return &Gradient{Axis: axis, From: from, To: to}
}

// Value implements core.Texture.
func (g *Gradient) Value(u, v float64, p core.Vec3) core.Vec3 {
	var t float64
	switch g.Axis {
	case GradientV:
		t = v
	case GradientUV:
		t = u * v
	default:
		t = u
	}
	t = math.Max(0, math.Min(1, t))

	from := g.From.Value(u, v, p)
	to := g.To.Value(u, v, p)
	return from.Multiply(1 - t).Add(to.Multiply(t))
}

// cyanSentinel is returned by Image whenever the backing pixel buffer failed to decode,
// per spec's documented debug-sentinel policy for resource I/O failure (kind 3).
var cyanSentinel = core.NewVec3(0, 1, 1)

// ImagePixels is a decoded 2D RGB pixel buffer in linear [0,1] per channel, row-major
// top-to-bottom. A nil/empty Pixels slice models a failed decode.
type ImagePixels struct {
	Width, Height int
	Pixels        []core.Vec3
}

// Image samples a decoded pixel buffer. A missing image (Pixels empty) returns the cyan
// debug sentinel for every query instead of failing.
type Image struct {
	Data *ImagePixels
}

// NewImage creates an image texture backed by the given decoded pixel buffer. Pass nil
// (or a buffer with no pixels) to get the cyan sentinel texture used when decode fails.
func NewImage(data *ImagePixels) *Image {
	return &Image{Data: data}
}

// Value implements core.Texture. u is clamped to [0,1]; v is clamped then flipped to 1-v,
// so v=1 addresses the top row (row 0), matching conventional image coordinates.
func (img *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	if img.Data == nil || len(img.Data.Pixels) == 0 || img.Data.Width <= 0 || img.Data.Height <= 0 {
		return cyanSentinel
	}

	u = math.Max(0, math.Min(1, u))
	v = 1.0 - math.Max(0, math.Min(1, v))

	i := int(u * float64(img.Data.Width))
	j := int(v * float64(img.Data.Height))
	if i >= img.Data.Width {
		i = img.Data.Width - 1
	}
	if j >= img.Data.Height {
		j = img.Data.Height - 1
	}
	if i < 0 {
		i = 0
	}
	if j < 0 {
		j = 0
	}

	return img.Data.Pixels[j*img.Data.Width+i]
}
