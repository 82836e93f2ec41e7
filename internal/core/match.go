package core

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/core/systems"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

// gridWidth and gridHeight size the single fixed arena this host runs.
const (
	gridWidth  int32 = 24
	gridHeight int32 = 18
)

// newMatchWorld builds the starting World for a fresh match: the grid
// singleton, one local player entity, and nothing else — the zombie roster
// is handed to the pipeline separately (spec §4.3 system 11 spawns it on
// the first tick).
func newMatchWorld(localPlayerID input.PlayerID) *ecs.World {
	registry := ecs.NewRegistry()
	components.Register(registry)
	world := ecs.NewWorld(registry)

	world.SetSingleton(&components.GridMap{
		Width:    gridWidth,
		Height:   gridHeight,
		CellSize: fix.One,
	})

	spawnPlayer(world, localPlayerID, fix.Vec2FromInt(int64(gridWidth/2), int64(gridHeight/2)))

	return world
}

// spawnPlayer adds a fully-componentised player entity at pos, matching the
// fixture shape the pipeline's own system tests spawn players with.
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

// zombieRoster is the fixed, deterministic spawn roster for a match on the
// arena newMatchWorld builds — four corners, inset from the walls.
func zombieRoster() []systems.ZombieSpawnRoster {
	inset := int64(2)
	return []systems.ZombieSpawnRoster{
		{Position: fix.Vec2FromInt(inset, inset)},
		{Position: fix.Vec2FromInt(int64(gridWidth)-inset, inset)},
		{Position: fix.Vec2FromInt(inset, int64(gridHeight)-inset)},
		{Position: fix.Vec2FromInt(int64(gridWidth)-inset, int64(gridHeight)-inset)},
	}
}
