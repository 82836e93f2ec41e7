package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/core/physics"
	"siegefall/internal/input"
)

// ExplosionSystem ticks every Explosion's lifetime and, on expiry, damages
// every HP-bearing entity in its blast radius before destroying the
// explosion entity itself (spec §4.3 system 14). Because DeathSystem runs
// earlier in the pipeline than this System, a chain reaction (explosion
// kills a second barrel) only produces that barrel's own explosion on the
// *next* tick, not this one (spec §8 scenario 6).
type ExplosionSystem struct{}

// NewExplosionSystem constructs the system.
func NewExplosionSystem() *ExplosionSystem { return &ExplosionSystem{} }

// Type implements ecs.System.
func (s *ExplosionSystem) Type() ecs.SystemType { return ecs.SystemTypeExplosion }

// Execute implements ecs.System.
func (s *ExplosionSystem) Execute(world *ecs.World, _ input.Frame) {
	for _, e := range world.Query().With(ecs.ComponentTypeExplosion).Entities() {
		ec, _ := world.GetComponent(e, ecs.ComponentTypeExplosion)
		explosion := ec.(*components.Explosion)
		explosion.CurrentFrame++
		if !explosion.Expired() {
			continue
		}

		hits := physics.QueryCircle(world, explosion.Position, explosion.Radius, 0)
		for _, target := range hits {
			if target == e {
				continue
			}
			hc, ok := world.GetComponent(target, ecs.ComponentTypeHP)
			if !ok {
				continue
			}
			hp := hc.(*components.HP)
			hp.ApplyDamage(explosion.Damage)
			if hp.IsDead() && !world.HasComponent(target, ecs.ComponentTypeDeath) {
				world.AddComponent(target, &components.Death{Reason: components.DeathReasonExplosion})
			}
		}
		world.DestroyEntity(e)
	}
}
