package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

func spawnWall(world *ecs.World, pos fix.FixVec2, placer ecs.EntityID, halfExtent fix.Fix64) ecs.EntityID {
	e := world.CreateEntity()
	world.AddComponent(e, &components.Transform2D{Position: pos})
	world.AddComponent(e, &components.PhysicsBody{IsStatic: true, IsTrigger: true})
	world.AddComponent(e, &components.CollisionShape{
		Kind: components.ShapeBox,
		Size: fix.Vec2(halfExtent.Add(halfExtent), halfExtent.Add(halfExtent)),
	})
	world.AddComponent(e, &components.WallPlacement{PlacerEntityID: placer})
	return e
}

func TestWallPlacementActivatesOncePlacerLeaves(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	placer := spawnPlayer(world, 1, fix.Vec2FromInt(100, 100))
	wall := spawnWall(world, fix.ZeroVec2, placer, cfg.WallObstacleHalfExtent)

	NewWallPlacementSystem(cfg).Execute(world, input.Frame{})

	assert.False(t, world.HasComponent(wall, ecs.ComponentTypeWallPlacement))
	bc, _ := world.GetComponent(wall, ecs.ComponentTypePhysicsBody)
	assert.False(t, bc.(*components.PhysicsBody).IsTrigger)
}

func TestWallPlacementStaysTriggerWhilePlacerInside(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	placer := spawnPlayer(world, 1, fix.ZeroVec2)
	wall := spawnWall(world, fix.ZeroVec2, placer, cfg.WallObstacleHalfExtent)

	NewWallPlacementSystem(cfg).Execute(world, input.Frame{})

	assert.True(t, world.HasComponent(wall, ecs.ComponentTypeWallPlacement))
	bc, _ := world.GetComponent(wall, ecs.ComponentTypePhysicsBody)
	assert.True(t, bc.(*components.PhysicsBody).IsTrigger)
}
