package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/input"
)

// PlayerMoveSystem adds a movement impulse to a player's Velocity for each
// directional input this tick (spec §4.3 system 5). It adds rather than
// sets velocity, so physics damping/collision response from the previous
// tick carries forward rather than being clobbered every frame. A stunned
// player (State == PlayerStateStunned) is not moved.
type PlayerMoveSystem struct {
	cfg Config
}

// NewPlayerMoveSystem constructs the system with cfg's move speed.
func NewPlayerMoveSystem(cfg Config) *PlayerMoveSystem { return &PlayerMoveSystem{cfg: cfg} }

// Type implements ecs.System.
func (s *PlayerMoveSystem) Type() ecs.SystemType { return ecs.SystemTypePlayerMove }

// Execute implements ecs.System.
func (s *PlayerMoveSystem) Execute(world *ecs.World, inputs input.Frame) {
	for _, fd := range inputs {
		if fd.Direction == input.DirNone {
			continue
		}
		e, player, ok := findPlayer(world, fd.PlayerID)
		if !ok || player.State == components.PlayerStateStunned {
			continue
		}
		vc, ok := world.GetComponent(e, ecs.ComponentTypeVelocity)
		if !ok {
			continue
		}
		velocity := vc.(*components.Velocity)
		impulse := components.DirectionUnitVector(fd.Direction).Scale(s.cfg.PlayerMoveSpeed)
		velocity.V = velocity.V.Add(impulse)
	}
}
