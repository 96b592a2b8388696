package core

// HittableList is the simplest possible aggregate: it tests a ray against every member
// in order and keeps the closest hit. It exists as the un-accelerated baseline that
// BVH traversal is validated against.
type HittableList struct {
	Primitives []Primitive
}

// NewHittableList creates a HittableList from the given primitives.
func NewHittableList(primitives ...Primitive) *HittableList {
	return &HittableList{Primitives: primitives}
}

// Add appends a primitive to the list.
func (l *HittableList) Add(p Primitive) {
	l.Primitives = append(l.Primitives, p)
}

// Hit implements Hittable via brute-force linear search, shrinking tMax as closer hits
// are found so later primitives are tested against an ever-tighter interval.
func (l *HittableList) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, p := range l.Primitives {
		if rec, ok := p.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of every member's bounding box.
func (l *HittableList) BoundingBox() AABB {
	box := EmptyAABB()
	for _, p := range l.Primitives {
		box = box.Union(p.BoundingBox())
	}
	return box
}

// SamplingConfig controls how many rays are traced and how deep they are allowed to
// bounce. Width/Height describe the output image; the rest tune the integrator.
type SamplingConfig struct {
	Width              int     // Output image width in pixels
	Height             int     // Output image height in pixels
	SamplesPerPixel    int     // Target samples per pixel
	MaxDepth           int     // Fixed recursion depth cutoff (no probabilistic termination)
	AdaptiveMinSamples float64 // Minimum samples as a fraction of SamplesPerPixel before convergence can stop a pixel early
	AdaptiveThreshold  float64 // Relative error threshold below which a pixel is considered converged
}

// SamplingConfigProvider lets a scene offer a recommended SamplingConfig, e.g. so a
// CLI can pick reasonable defaults for a chosen demo scene without hardcoding them.
type SamplingConfigProvider interface {
	RecommendedSamplingConfig() SamplingConfig
}
