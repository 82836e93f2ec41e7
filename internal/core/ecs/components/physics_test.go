package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siegefall/internal/core/ecs"
)

func TestCollisionBagDedupesAndOverflows(t *testing.T) {
	var c Collision
	for i := ecs.EntityID(1); i <= 10; i++ {
		c.Add(i)
	}
	// Re-adding an existing entry must not grow the bag.
	c.Add(3)

	assert.Equal(t, CollisionBagCap, c.Len())
	assert.True(t, c.Contains(1))
	assert.True(t, c.Contains(8))
	assert.False(t, c.Contains(9)) // dropped: overflowed capacity
	assert.False(t, c.Contains(10))
}

func TestCollisionClearResetsBag(t *testing.T) {
	var c Collision
	c.Add(1)
	c.Add(2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Contains(1))
}

func TestCloneIsDeep(t *testing.T) {
	gm := &GridMap{Width: 4, Height: 4}
	gm.AddObstacle(GridCell{X: 1, Y: 1})

	clone := gm.Clone().(*GridMap)
	clone.AddObstacle(GridCell{X: 2, Y: 2})

	assert.True(t, gm.IsObstacle(GridCell{X: 1, Y: 1}))
	assert.False(t, gm.IsObstacle(GridCell{X: 2, Y: 2}))
	assert.True(t, clone.IsObstacle(GridCell{X: 2, Y: 2}))
}
