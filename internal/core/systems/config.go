// Package systems implements the fourteen-stage pipeline spec §4.3 defines,
// in the fixed order the spec prescribes. Every System here is a small,
// stateless struct whose Execute method queries the World, mutates
// components, and returns — no System holds simulation state of its own,
// so a StateMachine built from these is trivially cloneable along with the
// World it steps.
package systems

import "siegefall/internal/fix"

// Config bundles the tuning constants the pipeline's gameplay Systems need
// that are not themselves part of simulation state (cooldown lengths,
// speeds, damage values). Unlike component fields, these are the same for
// every entity and every tick, so they live on Config rather than being
// duplicated onto components.
type Config struct {
	BulletCooldown  int
	WallCooldown    int
	BarrelCooldown  int
	BulletSpeed     fix.Fix64
	BulletDamage    int
	BulletRadius    fix.Fix64
	PlayerMoveSpeed fix.Fix64

	WallObstacleHalfExtent fix.Fix64
	WallPlacementMargin    fix.Fix64

	BarrelHalfExtent fix.Fix64
	BarrelHP         int

	FlowFieldCooldown int

	ZombieHP                     int
	ZombieRadius                 fix.Fix64
	ZombieMoveSpeed              fix.Fix64
	ZombiePathfindingCooldown    int
	ZombieAttackRange            fix.Fix64
	ZombieAttackDamage           int
	ZombieAttackWindupDuration   int
	ZombieAttackStrikeDuration   int
	ZombieAttackCooldownDuration int

	ExplosionDuration int
}

// DefaultConfig matches the tuning values exercised by the end-to-end
// scenarios in spec §8 (e.g. bullet speed 0.2, player/zombie circle radius
// 0.5, barrel explosion radius 2 / damage 10).
func DefaultConfig() Config {
	return Config{
		BulletCooldown:  20,
		WallCooldown:    30,
		BarrelCooldown:  30,
		BulletSpeed:     fix.FromRaw(13107), // 0.2
		BulletDamage:    10,
		BulletRadius:    fix.FromRaw(32768), // 0.5
		PlayerMoveSpeed: fix.FromRaw(19661), // 0.3

		WallObstacleHalfExtent: fix.One,
		WallPlacementMargin:    fix.Half,

		BarrelHalfExtent: fix.One,
		BarrelHP:         1,

		FlowFieldCooldown: 60,

		ZombieHP:                     50,
		ZombieRadius:                 fix.Half,
		ZombieMoveSpeed:              fix.FromRaw(9830), // 0.15
		ZombiePathfindingCooldown:    30,
		ZombieAttackRange:            fix.One,
		ZombieAttackDamage:           10,
		ZombieAttackWindupDuration:   15,
		ZombieAttackStrikeDuration:   5,
		ZombieAttackCooldownDuration: 20,

		ExplosionDuration: 1,
	}
}
