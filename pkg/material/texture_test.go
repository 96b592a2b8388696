package material

import (
	"testing"

	"github.com/df07/bvhtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestSolid_IgnoresCoordinates(t *testing.T) {
	tex := NewSolid(core.NewVec3(0.2, 0.4, 0.6))
	assert.Equal(t, tex.Color, tex.Value(0, 0, core.NewVec3(0, 0, 0)))
	assert.Equal(t, tex.Color, tex.Value(0.9, 0.1, core.NewVec3(99, -3, 2)))
}

func TestCheckerboard3D_AlternatesByWorldCell(t *testing.T) {
	even := NewSolid(core.NewVec3(1, 1, 1))
	odd := NewSolid(core.NewVec3(0, 0, 0))
	tex := NewCheckerboard3D(1.0, even, odd)

	assert.Equal(t, even.Color, tex.Value(0, 0, core.NewVec3(0.1, 0.1, 0.1)))
	assert.Equal(t, odd.Color, tex.Value(0, 0, core.NewVec3(1.1, 0.1, 0.1)))
	assert.Equal(t, even.Color, tex.Value(0, 0, core.NewVec3(1.1, 1.1, 0.1)))
}

func TestCheckerboard2D_AlternatesByUV(t *testing.T) {
	even := NewSolid(core.NewVec3(1, 1, 1))
	odd := NewSolid(core.NewVec3(0, 0, 0))
	tex := NewCheckerboard2D(1.0, even, odd)

	assert.Equal(t, even.Color, tex.Value(0.1, 0.1, core.Vec3{}))
	assert.Equal(t, odd.Color, tex.Value(1.1, 0.1, core.Vec3{}))
}

func TestGradient_BlendsEndpoints(t *testing.T) {
	from := NewSolid(core.NewVec3(0, 0, 0))
	to := NewSolid(core.NewVec3(1, 1, 1))

	u := NewGradient(GradientU, from, to)
	assert.Equal(t, from.Color, u.Value(0, 0.5, core.Vec3{}))
	assert.Equal(t, to.Color, u.Value(1, 0.5, core.Vec3{}))
	assert.Equal(t, core.NewVec3(0.5, 0.5, 0.5), u.Value(0.5, 0, core.Vec3{}))

	v := NewGradient(GradientV, from, to)
	assert.Equal(t, to.Color, v.Value(0, 1, core.Vec3{}))

	uv := NewGradient(GradientUV, from, to)
	assert.Equal(t, core.NewVec3(0.25, 0.25, 0.25), uv.Value(0.5, 0.5, core.Vec3{}))
}

func TestGradient_ClampsOutOfRangeParameter(t *testing.T) {
	from := NewSolid(core.NewVec3(0, 0, 0))
	to := NewSolid(core.NewVec3(1, 1, 1))
	g := NewGradient(GradientU, from, to)

	assert.Equal(t, from.Color, g.Value(-5, 0, core.Vec3{}))
	assert.Equal(t, to.Color, g.Value(5, 0, core.Vec3{}))
}

func TestImage_ReturnsCyanSentinelWhenDataMissing(t *testing.T) {
	assert.Equal(t, cyanSentinel, NewImage(nil).Value(0.5, 0.5, core.Vec3{}))
	assert.Equal(t, cyanSentinel, NewImage(&ImagePixels{}).Value(0.5, 0.5, core.Vec3{}))
}

func TestImage_SamplesNearestPixelWithFlippedV(t *testing.T) {
	pixels := &ImagePixels{
		Width:  2,
		Height: 2,
		Pixels: []core.Vec3{
			core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), // row 0 (top)
			core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1), // row 1 (bottom)
		},
	}
	tex := NewImage(pixels)

	// v=1 addresses the top row after the flip (1-v=0 -> row 0).
	assert.Equal(t, core.NewVec3(1, 0, 0), tex.Value(0, 1, core.Vec3{}))
	assert.Equal(t, core.NewVec3(0, 0, 1), tex.Value(0, 0, core.Vec3{}))
}
