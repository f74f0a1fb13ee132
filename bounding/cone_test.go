package bounding

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dezzmeister/ncollide/types"
)

func randomCone(rng *rand.Rand, maxHalfAngle float32) CircularCone {
	for {
		axis := types.Vec3{
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
		}
		if axis.Len() > 0.1 {
			return CircularCone{Axis: axis.Normalize(), HalfAngle: rng.Float32() * maxHalfAngle}
		}
	}
}

func TestDoubleConesIntersect(t *testing.T) {
	x := CircularCone{Axis: types.Vec3{1, 0, 0}, HalfAngle: 0.1}
	negX := CircularCone{Axis: types.Vec3{-1, 0, 0}, HalfAngle: 0.1}
	y := CircularCone{Axis: types.Vec3{0, 1, 0}, HalfAngle: 0.1}

	assert.True(t, x.DoubleConesIntersect(negX), "antipodal axes should intersect")
	assert.True(t, negX.DoubleConesIntersect(x), "antipodal axes should intersect")
	assert.False(t, x.DoubleConesIntersect(y), "orthogonal narrow cones should not intersect")
	assert.False(t, y.DoubleConesIntersect(x), "orthogonal narrow cones should not intersect")

	wide := CircularCone{Axis: types.Vec3{0, 1, 0}, HalfAngle: 1.5}
	assert.True(t, x.Intersects(wide))
	assert.True(t, AllDirections().Intersects(x))
}

func TestDoubleConesIntersectAntipodalSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := randomCone(rng, 1)
		b := randomCone(rng, 1)
		flipped := CircularCone{Axis: b.Axis.Neg(), HalfAngle: b.HalfAngle}
		require.Equal(t, a.DoubleConesIntersect(b), a.DoubleConesIntersect(flipped), "iteration %d", i)
	}
}

func TestConeContains(t *testing.T) {
	x := CircularCone{Axis: types.Vec3{1, 0, 0}, HalfAngle: 0.5}

	assert.True(t, x.Contains(x))
	assert.True(t, x.Contains(CircularCone{Axis: types.Vec3{-1, 0, 0}, HalfAngle: 0.25}))
	assert.True(t, x.Contains(ConeFromDirection(types.Vec3{1, 0.1, 0})))
	assert.False(t, x.Contains(CircularCone{Axis: types.Vec3{1, 0, 0}, HalfAngle: 0.75}))
	assert.False(t, x.Contains(ConeFromDirection(types.Vec3{0, 1, 0})))

	assert.True(t, AllDirections().Contains(x))
	assert.True(t, AllDirections().Contains(AllDirections()))
	assert.False(t, x.Contains(AllDirections()))

	assert.True(t, x.ContainsDirection(types.Vec3{-1, 0, 0}))
	assert.False(t, x.ContainsDirection(types.Vec3{0, 0, 1}))
}

func TestConeSelfContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		c := randomCone(rng, math32.Pi)
		require.True(t, c.Contains(c), "iteration %d: %v should contain itself", i, c)
	}
}

func TestConeMergeOrthogonal(t *testing.T) {
	x := CircularCone{Axis: types.Vec3{1, 0, 0}, HalfAngle: 0.1}
	y := CircularCone{Axis: types.Vec3{0, 1, 0}, HalfAngle: 0.1}

	merged := x.Merged(y)
	expRadius := (math32.Pi/2 + 0.2) / 2
	assert.InDelta(t, expRadius, merged.HalfAngle, 1e-4)

	// Both alignments cost the same; the direct one is kept.
	expAxis := types.Vec3{math32.Sqrt(2) / 2, math32.Sqrt(2) / 2, 0}
	assert.True(t, merged.Axis.ApproxEqual(expAxis, 1e-4), "unexpected merged axis %v", merged.Axis)

	assert.True(t, merged.Contains(x))
	assert.True(t, merged.Contains(y))
}

func TestConeMergePrefersAntipodalAlignment(t *testing.T) {
	x := CircularCone{Axis: types.Vec3{1, 0, 0}, HalfAngle: 0.1}
	nearNegX := CircularCone{Axis: types.Vec3{-1, 0.1, 0}.Normalize(), HalfAngle: 0.1}

	merged := x.Merged(nearNegX)
	assert.Less(t, merged.HalfAngle, float32(0.2), "merge should bridge through the antipode")
	assert.True(t, merged.Contains(x))
	assert.True(t, merged.Contains(nearNegX))
}

func TestConeMergeShortcuts(t *testing.T) {
	wide := CircularCone{Axis: types.Vec3{0, 0, 1}, HalfAngle: 1}
	narrow := CircularCone{Axis: types.Vec3{0, 0.1, -1}.Normalize(), HalfAngle: 0.2}

	assert.Equal(t, wide, wide.Merged(narrow), "a containing cone should absorb the other")
	assert.Equal(t, wide, narrow.Merged(wide), "a containing cone should absorb the other")

	assert.True(t, wide.Merged(AllDirections()).IsFull())
	assert.True(t, AllDirections().Merged(narrow).IsFull())

	// Caps that span more than a half turn degrade to all directions.
	a := CircularCone{Axis: types.Vec3{1, 0, 0}, HalfAngle: 2.5}
	b := CircularCone{Axis: types.Vec3{0, 1, 0}, HalfAngle: 2.5}
	assert.True(t, a.Merged(b).IsFull())
}

func TestConeMergeContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		a := randomCone(rng, 1.2)
		b := randomCone(rng, 1.2)

		ab := a.Merged(b)
		ba := b.Merged(a)
		require.True(t, ab.Contains(a), "iteration %d: %v merged %v = %v", i, a, b, ab)
		require.True(t, ab.Contains(b), "iteration %d: %v merged %v = %v", i, a, b, ab)
		require.True(t, ba.Contains(a), "iteration %d: %v merged %v = %v", i, b, a, ba)
		require.True(t, ba.Contains(b), "iteration %d: %v merged %v = %v", i, b, a, ba)

		require.True(t, ab.Intersects(a), "iteration %d", i)
		require.True(t, ab.Intersects(b), "iteration %d", i)
	}
}

func TestConeMergeOrderIndependentContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cones := make([]CircularCone, 16)
	for i := range cones {
		cones[i] = randomCone(rng, 0.3)
	}

	forward := MergeAll(cones[0], cones[1:]...)
	backward := cones[len(cones)-1]
	for i := len(cones) - 2; i >= 0; i-- {
		backward.Merge(cones[i])
	}

	for i, c := range cones {
		require.True(t, forward.Contains(c), "cone %d", i)
		require.True(t, backward.Contains(c), "cone %d", i)
	}
}

func TestConeFromDirections(t *testing.T) {
	dirs := []types.Vec3{
		{0, 0, 1},
		{0.1, 0, 1},
		{0, -0.1, -1},
		{-0.05, 0.05, 1},
	}

	cone := ConeFromDirections(dirs...)
	for _, dir := range dirs {
		assert.True(t, cone.ContainsDirection(dir.Normalize()), "direction %v", dir)
	}
	assert.Less(t, cone.HalfAngle, float32(0.2))
	assert.True(t, ConeFromDirections().IsFull())
}

func TestConeMayBePerpendicularTo(t *testing.T) {
	up := CircularCone{Axis: types.Vec3{0, 0, 1}, HalfAngle: 0.1}

	assert.False(t, up.MayBePerpendicularTo(types.Vec3{0, 0, 1}))
	assert.False(t, up.MayBePerpendicularTo(types.Vec3{0, 0, -1}))
	assert.True(t, up.MayBePerpendicularTo(types.Vec3{1, 0, 0}))
	assert.True(t, up.MayBePerpendicularTo(types.Vec3{0, 1, 0.05}.Normalize()))
	assert.True(t, AllDirections().MayBePerpendicularTo(types.Vec3{0, 0, 1}))
}

func TestConeMarginsAreNoops(t *testing.T) {
	c := CircularCone{Axis: types.Vec3{0, 1, 0}, HalfAngle: 0.3}

	assert.Equal(t, c, c.Loosened(10))
	assert.Equal(t, c, c.Tightened(10))

	c.Loosen(1)
	c.Tighten(1)
	assert.Equal(t, CircularCone{Axis: types.Vec3{0, 1, 0}, HalfAngle: 0.3}, c)
	assert.Equal(t, types.Vec3{}, c.Center())
}
