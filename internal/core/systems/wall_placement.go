package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/core/physics"
	"siegefall/internal/input"
)

// WallPlacementSystem activates a freshly placed wall or barrel once its
// placer has moved clear of it: the WallPlacement marker is removed and the
// body stops being a trigger, so it starts participating in normal
// collision resolution (spec §4.3 system 13).
type WallPlacementSystem struct {
	cfg Config
}

// NewWallPlacementSystem constructs the system with cfg's clearance margin.
func NewWallPlacementSystem(cfg Config) *WallPlacementSystem { return &WallPlacementSystem{cfg: cfg} }

// Type implements ecs.System.
func (s *WallPlacementSystem) Type() ecs.SystemType { return ecs.SystemTypeWallPlacement }

// Execute implements ecs.System.
func (s *WallPlacementSystem) Execute(world *ecs.World, _ input.Frame) {
	for _, e := range world.Query().With(ecs.ComponentTypeWallPlacement).Entities() {
		wpc, _ := world.GetComponent(e, ecs.ComponentTypeWallPlacement)
		placement := wpc.(*components.WallPlacement)

		tc, ok := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		if !ok {
			world.RemoveComponent(e, ecs.ComponentTypeWallPlacement)
			continue
		}
		sc, ok := world.GetComponent(e, ecs.ComponentTypeCollisionShape)
		if !ok {
			world.RemoveComponent(e, ecs.ComponentTypeWallPlacement)
			continue
		}
		shape := sc.(*components.CollisionShape)
		box := physics.AABB{Center: tc.(*components.Transform2D).Position, Half: shape.HalfExtents()}
		expanded := box.Expand(s.cfg.WallPlacementMargin)

		if s.placerStillInside(world, placement.PlacerEntityID, expanded) {
			continue
		}

		world.RemoveComponent(e, ecs.ComponentTypeWallPlacement)
		if bc, ok := world.GetComponent(e, ecs.ComponentTypePhysicsBody); ok {
			bc.(*components.PhysicsBody).IsTrigger = false
		}
	}
}

func (s *WallPlacementSystem) placerStillInside(world *ecs.World, placer ecs.EntityID, area physics.AABB) bool {
	tc, ok := world.GetComponent(placer, ecs.ComponentTypeTransform2D)
	if !ok {
		return false
	}
	return area.Contains(tc.(*components.Transform2D).Position)
}
