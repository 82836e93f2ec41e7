package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

// placeStructure is the shared teardown for PlayerPlaceWallSystem and
// PlayerPlaceBarrelSystem: both snap to the grid cell the player occupies,
// refuse to place atop an existing obstacle, and mark the new entity as a
// trigger until WallPlacementSystem observes the placer has moved clear
// (spec §4.3 systems 7 and 13).
func placeStructure(world *ecs.World, placer ecs.EntityID, origin fix.FixVec2, halfExtent fix.Fix64, layer components.LayerMask, marker ecs.Component) (ecs.EntityID, bool) {
	gm, ok := world.GetSingleton(ecs.ComponentTypeGridMap)
	if !ok {
		return ecs.InvalidEntityID, false
	}
	grid := gm.(*components.GridMap)
	cell := grid.CellAt(origin)
	if !grid.IsWalkable(cell) {
		return ecs.InvalidEntityID, false
	}
	center := grid.CellCenter(cell)

	e := world.CreateEntity()
	world.AddComponent(e, &components.Transform2D{Position: center})
	world.AddComponent(e, &components.Velocity{})
	world.AddComponent(e, &components.PhysicsBody{
		IsStatic:  true,
		IsTrigger: true,
		Layer:     layer,
	})
	world.AddComponent(e, &components.CollisionShape{
		Kind: components.ShapeBox,
		Size: fix.Vec2(halfExtent.Add(halfExtent), halfExtent.Add(halfExtent)),
	})
	world.AddComponent(e, &components.WallPlacement{PlacerEntityID: placer})
	world.AddComponent(e, marker)

	grid.AddObstacle(cell)
	return e, true
}

// PlayerPlaceWallSystem places a wall at a player's cell when in wall mode
// (spec §4.3 system 7).
type PlayerPlaceWallSystem struct {
	cfg Config
}

// NewPlayerPlaceWallSystem constructs the system with cfg's wall tuning.
func NewPlayerPlaceWallSystem(cfg Config) *PlayerPlaceWallSystem { return &PlayerPlaceWallSystem{cfg: cfg} }

// Type implements ecs.System.
func (s *PlayerPlaceWallSystem) Type() ecs.SystemType { return ecs.SystemTypePlayerPlaceWall }

// Execute implements ecs.System.
func (s *PlayerPlaceWallSystem) Execute(world *ecs.World, inputs input.Frame) {
	for _, fd := range inputs {
		if !fd.IsFire {
			continue
		}
		e, player, ok := findPlayer(world, fd.PlayerID)
		if !ok || player.CurrentModeIndex != components.ModeWall || player.WallCooldown > 0 {
			continue
		}
		tc, ok := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		if !ok {
			continue
		}
		origin := tc.(*components.Transform2D).Position
		if _, placed := placeStructure(world, e, origin, s.cfg.WallObstacleHalfExtent, components.LayerWall, &components.Wall{}); placed {
			player.WallCooldown = s.cfg.WallCooldown
		}
	}
}

// PlayerPlaceBarrelSystem places a barrel at a player's cell when in barrel
// mode (spec §4.3 system 7).
type PlayerPlaceBarrelSystem struct {
	cfg Config
}

// NewPlayerPlaceBarrelSystem constructs the system with cfg's barrel tuning.
func NewPlayerPlaceBarrelSystem(cfg Config) *PlayerPlaceBarrelSystem {
	return &PlayerPlaceBarrelSystem{cfg: cfg}
}

// Type implements ecs.System.
func (s *PlayerPlaceBarrelSystem) Type() ecs.SystemType { return ecs.SystemTypePlayerPlaceBarrel }

// Execute implements ecs.System.
func (s *PlayerPlaceBarrelSystem) Execute(world *ecs.World, inputs input.Frame) {
	for _, fd := range inputs {
		if !fd.IsFire {
			continue
		}
		e, player, ok := findPlayer(world, fd.PlayerID)
		if !ok || player.CurrentModeIndex != components.ModeBarrel || player.BarrelCooldown > 0 {
			continue
		}
		tc, ok := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		if !ok {
			continue
		}
		origin := tc.(*components.Transform2D).Position
		barrel, placed := placeStructure(world, e, origin, s.cfg.BarrelHalfExtent, components.LayerBarrel, &components.Barrel{})
		if !placed {
			continue
		}
		world.AddComponent(barrel, &components.HP{Current: s.cfg.BarrelHP, Max: s.cfg.BarrelHP})
		player.BarrelCooldown = s.cfg.BarrelCooldown
	}
}
