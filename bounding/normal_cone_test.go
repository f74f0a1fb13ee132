package bounding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dezzmeister/ncollide/types"
)

func randomNormalCone(rng *rand.Rand) SpatializedNormalCone {
	return SpatializedNormalCone{
		AABB:    randomAABB(rng, 10, 3),
		Normals: randomCone(rng, 1),
	}
}

func TestSpatializedNormalConeQueries(t *testing.T) {
	type spec struct {
		other         SpatializedNormalCone
		expIntersects bool
		expContains   bool
	}

	unit := AABB{types.Vec3{0, 0, 0}, types.Vec3{1, 1, 1}}
	inner := AABB{types.Vec3{0.25, 0.25, 0.25}, types.Vec3{0.5, 0.5, 0.5}}
	far := AABB{types.Vec3{4, 4, 4}, types.Vec3{5, 5, 5}}
	up := CircularCone{Axis: types.Vec3{0, 0, 1}, HalfAngle: 0.5}
	down := CircularCone{Axis: types.Vec3{0, 0, -1}, HalfAngle: 0.25}
	side := CircularCone{Axis: types.Vec3{1, 0, 0}, HalfAngle: 0.25}

	bound := NewSpatializedNormalCone(unit, up)
	specs := []spec{
		{NewSpatializedNormalCone(inner, down), true, true},
		{NewSpatializedNormalCone(inner, side), false, false},
		{NewSpatializedNormalCone(far, down), false, false},
		{NewSpatializedNormalCone(unit.Loosened(1), down), true, false},
		{bound, true, true},
	}

	for index, s := range specs {
		if got := bound.Intersects(s.other); got != s.expIntersects {
			t.Fatalf("[spec %d] expected Intersects to return %t; got %t", index, s.expIntersects, got)
		}
		if got := bound.Contains(s.other); got != s.expContains {
			t.Fatalf("[spec %d] expected Contains to return %t; got %t", index, s.expContains, got)
		}
	}
}

func TestSpatializedNormalConeMerge(t *testing.T) {
	a := NewSpatializedNormalCone(
		AABB{types.Vec3{0, 0, 0}, types.Vec3{1, 1, 1}},
		CircularCone{Axis: types.Vec3{1, 0, 0}, HalfAngle: 0.1},
	)
	b := NewSpatializedNormalCone(
		AABB{types.Vec3{2, 2, 2}, types.Vec3{3, 3, 3}},
		CircularCone{Axis: types.Vec3{0, 1, 0}, HalfAngle: 0.1},
	)

	merged := a.Merged(b)
	assert.Equal(t, AABB{types.Vec3{0, 0, 0}, types.Vec3{3, 3, 3}}, merged.AABB)
	assert.Equal(t, a.Normals.Merged(b.Normals), merged.Normals)
	assert.True(t, merged.Contains(a))
	assert.True(t, merged.Contains(b))
	assert.Equal(t, types.Vec3{1.5, 1.5, 1.5}, merged.Center())

	a.Merge(b)
	assert.Equal(t, merged, a)
}

func TestSpatializedNormalConeMargins(t *testing.T) {
	bound := NewSpatializedNormalCone(
		AABB{types.Vec3{0, 0, 0}, types.Vec3{1, 1, 1}},
		CircularCone{Axis: types.Vec3{0, 1, 0}, HalfAngle: 0.3},
	)

	loose := bound.Loosened(0.5)
	assert.Equal(t, bound.AABB.Loosened(0.5), loose.AABB)
	assert.Equal(t, bound.Normals, loose.Normals)

	tight := bound.Tightened(0.25)
	assert.Equal(t, bound.AABB.Tightened(0.25), tight.AABB)
	assert.Equal(t, bound.Normals, tight.Normals)

	assert.True(t, loose.Tightened(0.5).Contains(bound))

	inPlace := bound
	inPlace.Loosen(0.5)
	assert.Equal(t, loose, inPlace)
	inPlace.Tighten(0.5)
	assert.Equal(t, bound, inPlace)
	assert.Equal(t, float32(3), bound.SurfaceArea())
}

func TestSpatializedNormalConeMergeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		a := randomNormalCone(rng)
		b := randomNormalCone(rng)

		ab := a.Merged(b)
		ba := b.Merged(a)
		require.True(t, ab.Contains(a), "iteration %d", i)
		require.True(t, ab.Contains(b), "iteration %d", i)
		require.True(t, ba.Contains(a), "iteration %d", i)
		require.True(t, ba.Contains(b), "iteration %d", i)

		// Containment implies intersection.
		require.True(t, ab.Intersects(a), "iteration %d", i)
		require.True(t, ab.Intersects(b), "iteration %d", i)

		margin := rng.Float32()
		require.True(t, a.Loosened(margin).Tightened(margin).Contains(a), "iteration %d", i)
	}
}
