package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

func spawnBullet(world *ecs.World, owner ecs.EntityID, pos, vel fix.FixVec2, damage int) ecs.EntityID {
	e := world.CreateEntity()
	world.AddComponent(e, &components.Transform2D{Position: pos})
	world.AddComponent(e, &components.Velocity{V: vel})
	world.AddComponent(e, &components.Bullet{OwnerEntityID: owner, Damage: damage})
	return e
}

func TestBulletCheckAppliesDamageAndDestroysBullet(t *testing.T) {
	world := newTestWorld()
	owner := world.CreateEntity()
	target := world.CreateEntity()
	world.AddComponent(target, &components.HP{Current: 30, Max: 30})
	world.AddComponent(target, &components.Velocity{})

	bullet := spawnBullet(world, owner, fix.ZeroVec2, fix.Vec2FromInt(1, 0), 10)
	bag := &components.Collision{}
	bag.Add(target)
	world.AddComponent(bullet, bag)

	NewBulletCheckSystem().Execute(world, input.Frame{})

	assert.False(t, world.IsValid(bullet))
	hc, _ := world.GetComponent(target, ecs.ComponentTypeHP)
	assert.Equal(t, 20, hc.(*components.HP).Current)
}

func TestBulletCheckMarksDeathOnLethalHit(t *testing.T) {
	world := newTestWorld()
	owner := world.CreateEntity()
	target := world.CreateEntity()
	world.AddComponent(target, &components.HP{Current: 5, Max: 30})
	world.AddComponent(target, &components.Velocity{})

	bullet := spawnBullet(world, owner, fix.ZeroVec2, fix.ZeroVec2, 10)
	bag := &components.Collision{}
	bag.Add(target)
	world.AddComponent(bullet, bag)

	NewBulletCheckSystem().Execute(world, input.Frame{})

	assert.True(t, world.HasComponent(target, ecs.ComponentTypeDeath))
}

func TestBulletCheckIgnoresOwnerInBag(t *testing.T) {
	world := newTestWorld()
	owner := world.CreateEntity()
	world.AddComponent(owner, &components.HP{Current: 30, Max: 30})

	bullet := spawnBullet(world, owner, fix.ZeroVec2, fix.ZeroVec2, 10)
	bag := &components.Collision{}
	bag.Add(owner)
	world.AddComponent(bullet, bag)

	NewBulletCheckSystem().Execute(world, input.Frame{})

	hc, _ := world.GetComponent(owner, ecs.ComponentTypeHP)
	assert.Equal(t, 30, hc.(*components.HP).Current)
}
