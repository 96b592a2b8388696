package material

import (
	"math/rand"
	"testing"

	"github.com/df07/bvhtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDielectric_AlwaysScattersWithWhiteAttenuation(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	rec := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	scatter, didScatter := glass.Scatter(rayIn, rec, random)
	require.True(t, didScatter, "dielectric must always scatter")
	assert.Equal(t, core.NewVec3(1, 1, 1), scatter.Attenuation)
}

func TestDielectric_ProducesBothReflectionAndRefraction(t *testing.T) {
	glass := NewDielectric(1.5)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	rec := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	hasReflection, hasRefraction := false, false
	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		random := rand.New(rand.NewSource(seed))
		scatter, _ := glass.Scatter(rayIn, rec, random)

		// For a 45-degree incoming ray, refraction bends toward the normal (Y more
		// negative) while reflection keeps the angle of incidence.
		if scatter.Scattered.Direction.Normalize().Y > -0.5 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	assert.True(t, hasReflection, "expected reflection in at least some samples")
	assert.True(t, hasRefraction, "expected refraction in at least some samples")
}

func TestDielectric_TotalInternalReflectionAlwaysReflects(t *testing.T) {
	glass := NewDielectric(1.5)
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	rec := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: false}

	for i := int64(0); i < 10; i++ {
		random := rand.New(rand.NewSource(i))
		scatter, didScatter := glass.Scatter(rayIn, rec, random)
		require.True(t, didScatter)

		assert.Greater(t, scatter.Scattered.Direction.Y, 0.0, "total internal reflection should send the ray back up")
		assert.InDelta(t, rayDirection.X, scatter.Scattered.Direction.X, 1e-9, "specular reflection preserves the tangential component")
	}
}

func TestReflectance(t *testing.T) {
	r0 := Reflectance(1.0, 1.0/1.5)
	assert.InDelta(t, 0.04, r0, 0.02, "normal incidence reflectance should be near 4%% for air->glass")

	r90 := Reflectance(0.0, 1.0/1.5)
	assert.Greater(t, r90, 0.95, "grazing incidence reflectance should approach 1")

	r45 := Reflectance(0.707, 1.0/1.5)
	assert.Greater(t, r45, r0)
	assert.Greater(t, r90, r45)
}
