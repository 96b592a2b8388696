package ppm

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/df07/bvhtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_HeaderMatchesExactFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, 2, 1, func(x, y int) core.Vec3 { return core.Vec3{} })
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), "P3\n2 1\n255\n"))
}

func TestWrite_ClampsAndGammaCorrects(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, 1, 1, func(x, y int) core.Vec3 { return core.NewVec3(2.0, 1.0, -1.0) })
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header (3 lines) + 1 pixel row

	assert.Equal(t, "255 255 0", lines[3])
}

func TestWrite_RowsAreTopToBottom(t *testing.T) {
	var buf bytes.Buffer
	colors := map[[2]int]core.Vec3{
		{0, 0}: core.NewVec3(1, 0, 0),
		{0, 1}: core.NewVec3(0, 1, 0),
	}
	err := Write(&buf, 1, 2, func(x, y int) core.Vec3 { return colors[[2]int{x, y}] })
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "255 0 0", lines[3])
	assert.Equal(t, "0 255 0", lines[4])
}

func TestWriteImage_EmitsBytesVerbatimWithNoFurtherGammaCorrection(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 200, G: 150, B: 100, A: 255})

	var buf bytes.Buffer
	require.NoError(t, WriteImage(&buf, img))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "P3", lines[0])
	assert.Equal(t, "2 1", lines[1])
	assert.Equal(t, "10 20 30", lines[3])
	assert.Equal(t, "200 150 100", lines[4])
}
