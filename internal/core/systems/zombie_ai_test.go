package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

func spawnZombie(world *ecs.World, pos fix.FixVec2, cfg Config) ecs.EntityID {
	e := world.CreateEntity()
	world.AddComponent(e, &components.Transform2D{Position: pos})
	world.AddComponent(e, &components.Velocity{})
	world.AddComponent(e, &components.ZombieAI{
		MoveSpeed:              cfg.ZombieMoveSpeed,
		AttackRange:            cfg.ZombieAttackRange,
		AttackDamage:           cfg.ZombieAttackDamage,
		AttackWindupDuration:   cfg.ZombieAttackWindupDuration,
		AttackStrikeDuration:   cfg.ZombieAttackStrikeDuration,
		AttackCooldownDuration: cfg.ZombieAttackCooldownDuration,
	})
	return e
}

func TestZombieChaseMovesTowardNearestPlayer(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	newGridMap(world, 20, 20)
	spawnPlayer(world, 1, fix.Vec2FromInt(10, 0))
	z := spawnZombie(world, fix.ZeroVec2, cfg)

	NewZombieAISystem(cfg).Execute(world, input.Frame{})

	vc, _ := world.GetComponent(z, ecs.ComponentTypeVelocity)
	assert.True(t, vc.(*components.Velocity).V.X.Sign() > 0)
}

func TestZombieEntersWindupWithinAttackRange(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	newGridMap(world, 20, 20)
	spawnPlayer(world, 1, fix.ZeroVec2)
	z := spawnZombie(world, fix.ZeroVec2, cfg)

	NewZombieAISystem(cfg).Execute(world, input.Frame{})

	zc, _ := world.GetComponent(z, ecs.ComponentTypeZombieAI)
	zombie := zc.(*components.ZombieAI)
	assert.Equal(t, components.ZombieWindup, zombie.State)
	assert.Equal(t, cfg.ZombieAttackWindupDuration, zombie.AttackWindupTimer)
}

func TestZombieAttackCycleReturnsToChase(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	cfg.ZombieAttackWindupDuration = 1
	cfg.ZombieAttackStrikeDuration = 1
	cfg.ZombieAttackCooldownDuration = 1
	newGridMap(world, 20, 20)
	target := spawnPlayer(world, 1, fix.ZeroVec2)
	z := spawnZombie(world, fix.ZeroVec2, cfg)

	sys := NewZombieAISystem(cfg)
	zc, _ := world.GetComponent(z, ecs.ComponentTypeZombieAI)
	zombie := zc.(*components.ZombieAI)

	sys.Execute(world, input.Frame{}) // chase -> windup
	require.Equal(t, components.ZombieWindup, zombie.State)

	sys.Execute(world, input.Frame{}) // windup expires -> strike, damage applied
	require.Equal(t, components.ZombieStrike, zombie.State)

	hc, _ := world.GetComponent(target, ecs.ComponentTypeHP)
	hp := hc.(*components.HP)
	assert.Equal(t, 100-cfg.ZombieAttackDamage, hp.Current)

	sys.Execute(world, input.Frame{}) // strike -> cooldown
	assert.Equal(t, components.ZombieCooldown, zombie.State)

	sys.Execute(world, input.Frame{}) // cooldown -> chase
	assert.Equal(t, components.ZombieChase, zombie.State)
}

func TestZombieChaseIsStationaryWithNoPlayers(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	newGridMap(world, 20, 20)
	z := spawnZombie(world, fix.ZeroVec2, cfg)

	assert.NotPanics(t, func() {
		NewZombieAISystem(cfg).Execute(world, input.Frame{})
	})

	vc, _ := world.GetComponent(z, ecs.ComponentTypeVelocity)
	assert.True(t, vc.(*components.Velocity).V.Equal(fix.ZeroVec2))
}
