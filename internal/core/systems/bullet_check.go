package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/input"
)

// BulletCheckSystem resolves bullet impacts recorded by the physics step
// this tick (spec §4.3 system 8): the first valid target in a bullet's
// collision bag takes damage and a knockback impulse, the bullet is
// destroyed, and a target reduced to zero HP is marked Death.
type BulletCheckSystem struct{}

// NewBulletCheckSystem constructs the system.
func NewBulletCheckSystem() *BulletCheckSystem { return &BulletCheckSystem{} }

// Type implements ecs.System.
func (s *BulletCheckSystem) Type() ecs.SystemType { return ecs.SystemTypeBulletCheck }

// Execute implements ecs.System.
func (s *BulletCheckSystem) Execute(world *ecs.World, _ input.Frame) {
	for _, e := range world.Query().With(ecs.ComponentTypeBullet).Entities() {
		bc, _ := world.GetComponent(e, ecs.ComponentTypeBullet)
		bullet := bc.(*components.Bullet)

		cc, ok := world.GetComponent(e, ecs.ComponentTypeCollision)
		if !ok {
			continue
		}
		collision := cc.(*components.Collision)

		target, hit := firstValidTarget(collision.Others(), bullet.OwnerEntityID)
		if hit {
			s.applyHit(world, e, target, bullet)
			world.DestroyEntity(e)
		}
	}
}

// firstValidTarget returns the first entity in others that is not owner, in
// bag insertion order (deterministic because the physics step fills the bag
// in its fixed entity-pair iteration order).
func firstValidTarget(others []ecs.EntityID, owner ecs.EntityID) (ecs.EntityID, bool) {
	for _, o := range others {
		if o != owner {
			return o, true
		}
	}
	return ecs.InvalidEntityID, false
}

func (s *BulletCheckSystem) applyHit(world *ecs.World, bullet, target ecs.EntityID, b *components.Bullet) {
	bvc, _ := world.GetComponent(bullet, ecs.ComponentTypeVelocity)
	knockback := bvc.(*components.Velocity).V

	if tvc, ok := world.GetComponent(target, ecs.ComponentTypeVelocity); ok {
		tv := tvc.(*components.Velocity)
		tv.V = tv.V.Add(knockback)
	}

	hc, ok := world.GetComponent(target, ecs.ComponentTypeHP)
	if !ok {
		return
	}
	hp := hc.(*components.HP)
	hp.ApplyDamage(b.Damage)
	if hp.IsDead() && !world.HasComponent(target, ecs.ComponentTypeDeath) {
		world.AddComponent(target, &components.Death{Reason: components.DeathReasonBulletHit})
	}
}
