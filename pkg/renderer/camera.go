package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/bvhtracer/pkg/core"
)

// CameraConfig describes the parameters used to derive a Camera's viewport basis.
type CameraConfig struct {
	Center        core.Vec3 // Eye position (look_from).
	LookAt        core.Vec3 // Point the camera is aimed at.
	Up            core.Vec3 // World up hint used to orthonormalize the basis.
	Width         int
	AspectRatio   float64
	VFov          float64 // Vertical field of view, in degrees.
	Aperture      float64 // Defocus cone angle, in degrees; 0 disables depth of field.
	FocusDistance float64
}

// Camera generates jittered primary rays from a pinhole-with-defocus-disk model: an
// orthonormal basis (u, v, w) derived from Center/LookAt/Up, a viewport sized by VFov and
// FocusDistance, and pixel-space sampling for anti-aliasing.
type Camera struct {
	center         core.Vec3
	pixel00        core.Vec3
	deltaU         core.Vec3
	deltaV         core.Vec3
	defocusU       core.Vec3
	defocusV       core.Vec3
	lensRadius     float64
	width, height  int
}

// Width returns the image width, in pixels, this camera was configured for.
func (c *Camera) Width() int { return c.width }

// Height returns the image height, in pixels, derived from Width and AspectRatio.
func (c *Camera) Height() int { return c.height }

// NewCamera derives a Camera's viewport and defocus-disk basis from cfg.
func NewCamera(cfg CameraConfig) *Camera {
	height := int(float64(cfg.Width) / cfg.AspectRatio)
	if height < 1 {
		height = 1
	}

	theta := core.DegreesToRadians(cfg.VFov)
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2 * halfHeight * cfg.FocusDistance
	viewportWidth := viewportHeight * (float64(cfg.Width) / float64(height))

	w := cfg.Center.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	deltaU := viewportU.Multiply(1.0 / float64(cfg.Width))
	deltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := cfg.Center.
		Subtract(w.Multiply(cfg.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(deltaU.Add(deltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDistance * math.Tan(core.DegreesToRadians(cfg.Aperture/2))

	return &Camera{
		center:     cfg.Center,
		pixel00:    pixel00,
		deltaU:     deltaU,
		deltaV:     deltaV,
		defocusU:   u.Multiply(defocusRadius),
		defocusV:   v.Multiply(defocusRadius),
		lensRadius: defocusRadius,
		width:      cfg.Width,
		height:     height,
	}
}

// GetRay returns a jittered ray through pixel (i, j), sampling the pixel footprint for
// anti-aliasing and the defocus disk for depth-of-field blur.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetU := random.Float64() - 0.5
	offsetV := random.Float64() - 0.5

	pixelSample := c.pixel00.
		Add(c.deltaU.Multiply(float64(i) + offsetU)).
		Add(c.deltaV.Multiply(float64(j) + offsetV))

	origin := c.center
	if c.lensRadius > 0 {
		disk := core.RandomInUnitDisk(random)
		origin = c.center.Add(c.defocusU.Multiply(disk.X)).Add(c.defocusV.Multiply(disk.Y))
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}
