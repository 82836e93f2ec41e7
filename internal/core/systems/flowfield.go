package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/core/physics"
	"siegefall/internal/input"
)

// FlowFieldSystem refreshes the FlowField singleton toward every player's
// current cell once its cooldown expires (spec §4.3 system 10). Zombies
// read the cached gradient rather than repathing individually every tick.
type FlowFieldSystem struct {
	cfg Config
}

// NewFlowFieldSystem constructs the system with cfg's refresh cooldown.
func NewFlowFieldSystem(cfg Config) *FlowFieldSystem { return &FlowFieldSystem{cfg: cfg} }

// Type implements ecs.System.
func (s *FlowFieldSystem) Type() ecs.SystemType { return ecs.SystemTypeFlowField }

// Execute implements ecs.System.
func (s *FlowFieldSystem) Execute(world *ecs.World, _ input.Frame) {
	gm, ok := world.GetSingleton(ecs.ComponentTypeGridMap)
	if !ok {
		return
	}
	grid := gm.(*components.GridMap)

	ffc, ok := world.GetSingleton(ecs.ComponentTypeFlowField)
	var field *components.FlowField
	if ok {
		field = ffc.(*components.FlowField)
		if field.UpdateCooldown > 0 {
			field.UpdateCooldown--
			return
		}
	}

	targets := s.playerCells(world, grid)
	computed := physics.ComputeFlowField(grid, targets)
	computed.UpdateCooldown = s.cfg.FlowFieldCooldown
	world.SetSingleton(computed)
}

func (s *FlowFieldSystem) playerCells(world *ecs.World, grid *components.GridMap) []components.GridCell {
	var cells []components.GridCell
	for _, e := range world.Query().With(ecs.ComponentTypePlayer).With(ecs.ComponentTypeTransform2D).Entities() {
		tc, ok := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		if !ok {
			continue
		}
		cells = append(cells, grid.CellAt(tc.(*components.Transform2D).Position))
	}
	return cells
}
