package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

// PlayerShootSystem spawns a bullet for a player in shoot mode who fires
// with no cooldown remaining (spec §4.3 system 6). The cooldown check reads
// the value PlayerCooldownSystem already decremented this same tick.
type PlayerShootSystem struct {
	cfg Config
}

// NewPlayerShootSystem constructs the system with cfg's bullet tuning.
func NewPlayerShootSystem(cfg Config) *PlayerShootSystem { return &PlayerShootSystem{cfg: cfg} }

// Type implements ecs.System.
func (s *PlayerShootSystem) Type() ecs.SystemType { return ecs.SystemTypePlayerShoot }

// Execute implements ecs.System.
func (s *PlayerShootSystem) Execute(world *ecs.World, inputs input.Frame) {
	for _, fd := range inputs {
		if !fd.IsFire {
			continue
		}
		e, player, ok := findPlayer(world, fd.PlayerID)
		if !ok || player.CurrentModeIndex != components.ModeShoot || player.BulletCooldown > 0 {
			continue
		}
		tc, ok := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		if !ok {
			continue
		}
		origin := tc.(*components.Transform2D).Position
		target := fix.Vec2(fix.FromRaw(fd.FireX), fix.FromRaw(fd.FireY))
		direction := target.Sub(origin)
		if direction.LengthSq().Sign() == 0 {
			continue
		}
		velocity := direction.Normalize().Scale(s.cfg.BulletSpeed)

		bullet := world.CreateEntity()
		world.AddComponent(bullet, &components.Transform2D{Position: origin})
		world.AddComponent(bullet, &components.Velocity{V: velocity})
		world.AddComponent(bullet, &components.PhysicsBody{
			Mass:      fix.One,
			Layer:     components.MaskBullet,
			IsTrigger: true,
		})
		world.AddComponent(bullet, &components.CollisionShape{
			Kind:   components.ShapeCircle,
			Radius: s.cfg.BulletRadius,
		})
		world.AddComponent(bullet, &components.Bullet{
			OwnerEntityID: e,
			Damage:        s.cfg.BulletDamage,
		})

		player.BulletCooldown = s.cfg.BulletCooldown
	}
}
