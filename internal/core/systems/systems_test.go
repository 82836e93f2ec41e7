package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

func newTestWorld() *ecs.World {
	registry := ecs.NewRegistry()
	components.Register(registry)
	return ecs.NewWorld(registry)
}

func spawnPlayer(world *ecs.World, id input.PlayerID, pos fix.FixVec2) ecs.EntityID {
	e := world.CreateEntity()
	world.AddComponent(e, &components.Transform2D{Position: pos})
	world.AddComponent(e, &components.Velocity{})
	world.AddComponent(e, &components.PhysicsBody{Mass: fix.One, Layer: components.MaskPlayer})
	world.AddComponent(e, &components.CollisionShape{Kind: components.ShapeCircle, Radius: fix.Half})
	world.AddComponent(e, &components.HP{Current: 100, Max: 100})
	world.AddComponent(e, &components.Player{PlayerID: id, ModeCount: 3})
	return e
}

func newGridMap(world *ecs.World, width, height int32) *components.GridMap {
	grid := &components.GridMap{Width: width, Height: height, CellSize: fix.One}
	world.SetSingleton(grid)
	return grid
}
