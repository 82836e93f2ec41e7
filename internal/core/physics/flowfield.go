package physics

import "siegefall/internal/core/ecs/components"

// ComputeFlowField runs a multi-source breadth-first search from targets
// outward over grid's walkable cells and records, per cell, the neighbor
// step that moves toward the nearest target. Zombies sharing a destination
// then need only a single O(1) lookup per tick instead of running their own
// A*, which is the whole point of caching this field (spec §4.3 system 10).
//
// Multiple targets at equal distance are resolved by BFS layer order, which
// itself depends only on grid.Width/Height and the targets slice — both
// deterministic simulation state — so the field is reproducible given the
// same GridMap and target set.
func ComputeFlowField(grid *components.GridMap, targets []components.GridCell) *components.FlowField {
	field := &components.FlowField{
		Width:    grid.Width,
		Height:   grid.Height,
		Gradient: make([]components.GridCell, int(grid.Width)*int(grid.Height)),
	}
	if grid.Width <= 0 || grid.Height <= 0 {
		return field
	}

	visited := make([]bool, len(field.Gradient))
	idx := func(c components.GridCell) int { return int(c.Y)*int(grid.Width) + int(c.X) }

	var queue []components.GridCell
	for _, t := range targets {
		if !grid.IsWalkable(t) {
			continue
		}
		i := idx(t)
		if visited[i] {
			continue
		}
		visited[i] = true
		field.Gradient[i] = t // a target steps to itself: arrived
		queue = append(queue, t)
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, off := range astarNeighborOffsets {
			next := components.GridCell{X: cur.X + off.X, Y: cur.Y + off.Y}
			if !grid.IsWalkable(next) {
				continue
			}
			i := idx(next)
			if visited[i] {
				continue
			}
			visited[i] = true
			field.Gradient[i] = cur // step from next toward cur, its BFS parent
			queue = append(queue, next)
		}
	}
	return field
}
