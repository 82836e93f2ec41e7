package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

func TestPlayerShootSpawnsBulletAndSetsCooldown(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	e := spawnPlayer(world, 1, fix.ZeroVec2)

	NewPlayerShootSystem(cfg).Execute(world, input.Frame{{
		PlayerID: 1,
		IsFire:   true,
		FireX:    fix.FromInt(5).Raw(),
		FireY:    0,
	}})

	bullets := world.Query().With(ecs.ComponentTypeBullet).Entities()
	require.Len(t, bullets, 1)

	bc, _ := world.GetComponent(bullets[0], ecs.ComponentTypeBullet)
	assert.Equal(t, e, bc.(*components.Bullet).OwnerEntityID)

	vc, _ := world.GetComponent(bullets[0], ecs.ComponentTypeVelocity)
	assert.True(t, vc.(*components.Velocity).V.X.Sign() > 0)

	pc, _ := world.GetComponent(e, ecs.ComponentTypePlayer)
	assert.Equal(t, cfg.BulletCooldown, pc.(*components.Player).BulletCooldown)
}

func TestPlayerShootSkipsWhenOnCooldown(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	e := spawnPlayer(world, 1, fix.ZeroVec2)
	pc, _ := world.GetComponent(e, ecs.ComponentTypePlayer)
	pc.(*components.Player).BulletCooldown = 5

	NewPlayerShootSystem(cfg).Execute(world, input.Frame{{
		PlayerID: 1, IsFire: true, FireX: fix.FromInt(5).Raw(),
	}})

	assert.Empty(t, world.Query().With(ecs.ComponentTypeBullet).Entities())
}

func TestPlayerShootSkipsWrongMode(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	e := spawnPlayer(world, 1, fix.ZeroVec2)
	pc, _ := world.GetComponent(e, ecs.ComponentTypePlayer)
	pc.(*components.Player).CurrentModeIndex = components.ModeWall

	NewPlayerShootSystem(cfg).Execute(world, input.Frame{{
		PlayerID: 1, IsFire: true, FireX: fix.FromInt(5).Raw(),
	}})

	assert.Empty(t, world.Query().With(ecs.ComponentTypeBullet).Entities())
}
