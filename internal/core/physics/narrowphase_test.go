package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
)

func TestCircleCircleOverlap(t *testing.T) {
	contact, hit := CircleCircle(fix.Vec2FromInt(0, 0), fix.FromInt(2), fix.Vec2FromInt(3, 0), fix.FromInt(2))
	require.True(t, hit)
	assert.Equal(t, fix.FromInt(1), contact.Normal.X)
	assert.Equal(t, fix.FromInt(1), contact.Penetration)
}

func TestCircleCircleNoOverlap(t *testing.T) {
	_, hit := CircleCircle(fix.Vec2FromInt(0, 0), fix.FromInt(1), fix.Vec2FromInt(10, 0), fix.FromInt(1))
	assert.False(t, hit)
}

func TestCircleCircleConcentricPicksAxis(t *testing.T) {
	contact, hit := CircleCircle(fix.Vec2FromInt(5, 5), fix.FromInt(2), fix.Vec2FromInt(5, 5), fix.FromInt(2))
	require.True(t, hit)
	assert.Equal(t, fix.One, contact.Normal.X)
	assert.Equal(t, fix.Zero, contact.Normal.Y)
}

func TestCircleAABBOutsideBox(t *testing.T) {
	box := AABB{Center: fix.Vec2FromInt(0, 0), Half: fix.Vec2FromInt(1, 1)}
	contact, hit := CircleAABB(fix.Vec2FromInt(2, 0), fix.FromInt(2), box)
	require.True(t, hit)
	assert.True(t, contact.Normal.X.Sign() > 0)
}

func TestCircleAABBCenterInsideBox(t *testing.T) {
	box := AABB{Center: fix.Vec2FromInt(0, 0), Half: fix.Vec2FromInt(5, 5)}
	contact, hit := CircleAABB(fix.Vec2FromInt(4, 0), fix.FromInt(1), box)
	require.True(t, hit)
	assert.True(t, contact.Normal.X.Sign() > 0)
}

func TestAABBAABBOverlap(t *testing.T) {
	a := AABB{Center: fix.Vec2FromInt(0, 0), Half: fix.Vec2FromInt(1, 1)}
	b := AABB{Center: fix.Vec2FromInt(1, 0), Half: fix.Vec2FromInt(1, 1)}
	contact, hit := AABBAABB(a, b)
	require.True(t, hit)
	assert.Equal(t, fix.One, contact.Normal.X)
}

func TestNarrowDispatchesCircleBox(t *testing.T) {
	circle := &components.CollisionShape{Kind: components.ShapeCircle, Radius: fix.FromInt(2)}
	box := &components.CollisionShape{Kind: components.ShapeBox, Size: fix.Vec2FromInt(2, 2)}

	contact, hit := Narrow(fix.Vec2FromInt(0, 0), circle, fix.Vec2FromInt(2, 0), box)
	require.True(t, hit)

	reverse, hit2 := Narrow(fix.Vec2FromInt(2, 0), box, fix.Vec2FromInt(0, 0), circle)
	require.True(t, hit2)
	assert.Equal(t, contact.Normal.Neg(), reverse.Normal)
}
