package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/input"
)

// PlayerToggleSystem rotates a player's current_mode_index on toggle input
// (spec §4.3 system 1).
type PlayerToggleSystem struct{}

// NewPlayerToggleSystem constructs the system.
func NewPlayerToggleSystem() *PlayerToggleSystem { return &PlayerToggleSystem{} }

// Type implements ecs.System.
func (s *PlayerToggleSystem) Type() ecs.SystemType { return ecs.SystemTypePlayerToggle }

// Execute implements ecs.System.
func (s *PlayerToggleSystem) Execute(world *ecs.World, inputs input.Frame) {
	for _, fd := range inputs {
		if !fd.IsToggle {
			continue
		}
		_, player, ok := findPlayer(world, fd.PlayerID)
		if !ok {
			continue
		}
		player.Toggle()
	}
}

// findPlayer locates the entity carrying the Player component matching id,
// the query-then-cast pattern every gameplay System in this package uses to
// skip entities missing an expected component rather than erroring (spec
// §4.3 failure semantics).
func findPlayer(world *ecs.World, id input.PlayerID) (ecs.EntityID, *components.Player, bool) {
	entities := world.Query().With(ecs.ComponentTypePlayer).Entities()
	for _, e := range entities {
		c, ok := world.GetComponent(e, ecs.ComponentTypePlayer)
		if !ok {
			continue
		}
		p := c.(*components.Player)
		if p.PlayerID == id {
			return e, p, true
		}
	}
	return ecs.InvalidEntityID, nil, false
}
