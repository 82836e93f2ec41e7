package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/input"
)

// DeathSystem handles every entity marked with Death this tick: barrels
// schedule an Explosion, walls clear their grid obstacle, and in every case
// the entity is destroyed after its per-kind teardown runs (spec §4.3
// system 4, spec §3 "Lifecycles").
type DeathSystem struct {
	cfg Config
}

// NewDeathSystem constructs the system with cfg's explosion tuning.
func NewDeathSystem(cfg Config) *DeathSystem { return &DeathSystem{cfg: cfg} }

// Type implements ecs.System.
func (s *DeathSystem) Type() ecs.SystemType { return ecs.SystemTypeDeath }

// Execute implements ecs.System.
func (s *DeathSystem) Execute(world *ecs.World, _ input.Frame) {
	for _, e := range world.Query().With(ecs.ComponentTypeDeath).Entities() {
		if _, ok := world.GetComponent(e, ecs.ComponentTypeBarrel); ok {
			s.spawnExplosion(world, e)
		}
		if _, ok := world.GetComponent(e, ecs.ComponentTypeWall); ok {
			s.clearObstacle(world, e)
		}
		world.DestroyEntity(e)
	}
}

func (s *DeathSystem) spawnExplosion(world *ecs.World, dying ecs.EntityID) {
	transform, ok := world.GetComponent(dying, ecs.ComponentTypeTransform2D)
	if !ok {
		return
	}
	pos := transform.(*components.Transform2D).Position

	e := world.CreateEntity()
	world.AddComponent(e, &components.Transform2D{Position: pos})
	world.AddComponent(e, &components.Explosion{
		Position: pos,
		Radius:   s.cfg.BarrelHalfExtent.Add(s.cfg.BarrelHalfExtent),
		Damage:   s.cfg.BulletDamage,
		Duration: s.cfg.ExplosionDuration,
	})
}

func (s *DeathSystem) clearObstacle(world *ecs.World, dying ecs.EntityID) {
	gm, ok := world.GetSingleton(ecs.ComponentTypeGridMap)
	if !ok {
		return
	}
	grid := gm.(*components.GridMap)
	transform, ok := world.GetComponent(dying, ecs.ComponentTypeTransform2D)
	if !ok {
		return
	}
	grid.RemoveObstacle(grid.CellAt(transform.(*components.Transform2D).Position))
}
