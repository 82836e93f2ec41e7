package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/physics"
	"siegefall/internal/fix"
)

// NewPipeline assembles the canonical fourteen-stage StateMachine in the
// fixed order spec §4.3 prescribes, as fifteen Systems: the placement stage
// is split into NewPlayerPlaceWallSystem and NewPlayerPlaceBarrelSystem. The ordering here is itself observable
// simulation behaviour (spec §9's PlayerCooldownSystem note, §8 scenario 6's
// explosion timing) and must never be reshuffled once a match has started.
func NewPipeline(cfg Config, dt fix.Fix64, physicsCfg physics.Config, zombieRoster []ZombieSpawnRoster) *ecs.StateMachine {
	return ecs.NewStateMachine(
		NewPlayerToggleSystem(),
		NewPlayerCooldownSystem(),
		NewStiffSystem(),
		NewDeathSystem(cfg),
		NewPlayerMoveSystem(cfg),
		NewPlayerShootSystem(cfg),
		NewPlayerPlaceWallSystem(cfg),
		NewPlayerPlaceBarrelSystem(cfg),
		NewBulletCheckSystem(),
		NewPhysicsSystem(dt, physicsCfg),
		NewFlowFieldSystem(cfg),
		NewZombieSpawnSystem(cfg, zombieRoster),
		NewZombieAISystem(cfg),
		NewWallPlacementSystem(cfg),
		NewExplosionSystem(),
	)
}
