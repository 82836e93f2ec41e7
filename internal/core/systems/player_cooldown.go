package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/input"
)

// PlayerCooldownSystem decrements every player's action cooldowns by one
// logical tick, clamped at zero (spec §4.3 system 2). It runs before
// PlayerShootSystem/PlayerPlaceWallSystem/PlayerPlaceBarrelSystem, so a fire
// input at tick k is checked against the cooldown value *after* this
// decrement — an ordering spec §9 explicitly calls out to preserve.
type PlayerCooldownSystem struct{}

// NewPlayerCooldownSystem constructs the system.
func NewPlayerCooldownSystem() *PlayerCooldownSystem { return &PlayerCooldownSystem{} }

// Type implements ecs.System.
func (s *PlayerCooldownSystem) Type() ecs.SystemType { return ecs.SystemTypePlayerCooldown }

// Execute implements ecs.System.
func (s *PlayerCooldownSystem) Execute(world *ecs.World, _ input.Frame) {
	for _, e := range world.Query().With(ecs.ComponentTypePlayer).Entities() {
		c, _ := world.GetComponent(e, ecs.ComponentTypePlayer)
		p := c.(*components.Player)
		p.BulletCooldown = decrementClamped(p.BulletCooldown)
		p.WallCooldown = decrementClamped(p.WallCooldown)
		p.BarrelCooldown = decrementClamped(p.BarrelCooldown)
	}
}

func decrementClamped(v int) int {
	if v <= 0 {
		return 0
	}
	return v - 1
}
