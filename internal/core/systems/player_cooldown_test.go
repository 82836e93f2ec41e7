package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

func TestPlayerCooldownDecrementsAllThree(t *testing.T) {
	world := newTestWorld()
	e := spawnPlayer(world, 1, fix.ZeroVec2)
	c, _ := world.GetComponent(e, ecs.ComponentTypePlayer)
	player := c.(*components.Player)
	player.BulletCooldown = 5
	player.WallCooldown = 1
	player.BarrelCooldown = 0

	NewPlayerCooldownSystem().Execute(world, input.Frame{})

	assert.Equal(t, 4, player.BulletCooldown)
	assert.Equal(t, 0, player.WallCooldown)
	assert.Equal(t, 0, player.BarrelCooldown)
}

func TestDecrementClampedNeverGoesNegative(t *testing.T) {
	assert.Equal(t, 0, decrementClamped(0))
	assert.Equal(t, 0, decrementClamped(-3))
	assert.Equal(t, 4, decrementClamped(5))
}
