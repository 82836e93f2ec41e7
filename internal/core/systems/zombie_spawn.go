package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

// ZombieSpawnRoster is one fixed spawn point in the deterministic zombie
// roster (spec §4.3 system 11: "spawns a fixed roster if none exist").
type ZombieSpawnRoster struct {
	Position fix.FixVec2
}

// ZombieSpawnSystem spawns the fixed roster on every tick that begins with no
// ZombieAI entity in the world; while any ZombieAI entity exists it is a
// no-op.
type ZombieSpawnSystem struct {
	cfg    Config
	roster []ZombieSpawnRoster
}

// NewZombieSpawnSystem constructs the system with a fixed, caller-supplied
// roster (positions are match content, not core behaviour, so they are
// injected rather than hardcoded here).
func NewZombieSpawnSystem(cfg Config, roster []ZombieSpawnRoster) *ZombieSpawnSystem {
	return &ZombieSpawnSystem{cfg: cfg, roster: roster}
}

// Type implements ecs.System.
func (s *ZombieSpawnSystem) Type() ecs.SystemType { return ecs.SystemTypeZombieSpawn }

// Execute implements ecs.System.
func (s *ZombieSpawnSystem) Execute(world *ecs.World, _ input.Frame) {
	if len(world.Query().With(ecs.ComponentTypeZombieAI).Entities()) > 0 {
		return
	}
	for _, spawn := range s.roster {
		e := world.CreateEntity()
		world.AddComponent(e, &components.Transform2D{Position: spawn.Position})
		world.AddComponent(e, &components.Velocity{})
		world.AddComponent(e, &components.PhysicsBody{
			Mass:  fix.One,
			Layer: components.MaskZombie,
		})
		world.AddComponent(e, &components.CollisionShape{
			Kind:   components.ShapeCircle,
			Radius: s.cfg.ZombieRadius,
		})
		world.AddComponent(e, &components.HP{Current: s.cfg.ZombieHP, Max: s.cfg.ZombieHP})
		world.AddComponent(e, &components.ZombieAI{
			MoveSpeed:              s.cfg.ZombieMoveSpeed,
			AttackRange:            s.cfg.ZombieAttackRange,
			AttackDamage:           s.cfg.ZombieAttackDamage,
			AttackWindupDuration:   s.cfg.ZombieAttackWindupDuration,
			AttackStrikeDuration:   s.cfg.ZombieAttackStrikeDuration,
			AttackCooldownDuration: s.cfg.ZombieAttackCooldownDuration,
		})
	}
}
