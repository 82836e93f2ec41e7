package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/input"
)

// StiffSystem decrements Stiff.timer for every entity carrying one (spec
// §4.3 system 3). When a Stiff entity's timer expires, the marker is
// removed and, if the entity is also a Player, its State reverts to normal.
type StiffSystem struct{}

// NewStiffSystem constructs the system.
func NewStiffSystem() *StiffSystem { return &StiffSystem{} }

// Type implements ecs.System.
func (s *StiffSystem) Type() ecs.SystemType { return ecs.SystemTypeStiff }

// Execute implements ecs.System.
func (s *StiffSystem) Execute(world *ecs.World, _ input.Frame) {
	for _, e := range world.Query().With(ecs.ComponentTypeStiff).Entities() {
		c, _ := world.GetComponent(e, ecs.ComponentTypeStiff)
		stiff := c.(*components.Stiff)
		stiff.Timer = decrementClamped(stiff.Timer)
		if stiff.Timer > 0 {
			continue
		}
		world.RemoveComponent(e, ecs.ComponentTypeStiff)
		if pc, ok := world.GetComponent(e, ecs.ComponentTypePlayer); ok {
			pc.(*components.Player).State = components.PlayerStateNormal
		}
	}
}
