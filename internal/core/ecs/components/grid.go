package components

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/fix"
)

// GridCell is an integer grid coordinate. Comparable, so it can key a
// membership set; ordering for deterministic tie-breaks is lexicographic on
// (X, Y) (spec §4.4 A* contract).
type GridCell struct {
	X, Y int32
}

// Less implements the lexicographic (x, y) tie-break spec §4.4 requires of
// A*'s open-set ordering.
func (c GridCell) Less(o GridCell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// GridMap is the singleton describing the walkable grid: its dimensions,
// cell size (in Fix64 world units), and the set of obstacle cells. Wall
// placement and A* pathfinding both read/write this singleton.
type GridMap struct {
	Width, Height int32
	CellSize      fix.Fix64
	Obstacles     map[GridCell]struct{}
}

// Type implements ecs.Component.
func (c *GridMap) Type() ecs.ComponentType { return ecs.ComponentTypeGridMap }

// Clone implements ecs.Component.
func (c *GridMap) Clone() ecs.Component {
	cp := &GridMap{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
	cp.Obstacles = make(map[GridCell]struct{}, len(c.Obstacles))
	for k := range c.Obstacles {
		cp.Obstacles[k] = struct{}{}
	}
	return cp
}

// IsObstacle reports whether cell is blocked.
func (c *GridMap) IsObstacle(cell GridCell) bool {
	_, blocked := c.Obstacles[cell]
	return blocked
}

// IsInBounds reports whether cell lies within [0,Width)x[0,Height).
func (c *GridMap) IsInBounds(cell GridCell) bool {
	return cell.X >= 0 && cell.X < c.Width && cell.Y >= 0 && cell.Y < c.Height
}

// IsWalkable reports whether cell is in bounds and not an obstacle.
func (c *GridMap) IsWalkable(cell GridCell) bool {
	return c.IsInBounds(cell) && !c.IsObstacle(cell)
}

// CellAt converts a world position to the grid cell containing it.
func (c *GridMap) CellAt(pos fix.FixVec2) GridCell {
	return GridCell{
		X: int32(pos.X.Div(c.CellSize).ToInt()),
		Y: int32(pos.Y.Div(c.CellSize).ToInt()),
	}
}

// CellCenter returns the world-space center of cell.
func (c *GridMap) CellCenter(cell GridCell) fix.FixVec2 {
	half := c.CellSize.Div(fix.FromInt(2))
	return fix.Vec2(
		fix.FromInt(int64(cell.X)).Mul(c.CellSize).Add(half),
		fix.FromInt(int64(cell.Y)).Mul(c.CellSize).Add(half),
	)
}

// AddObstacle marks cell as blocked.
func (c *GridMap) AddObstacle(cell GridCell) {
	if c.Obstacles == nil {
		c.Obstacles = make(map[GridCell]struct{})
	}
	c.Obstacles[cell] = struct{}{}
}

// RemoveObstacle unmarks cell.
func (c *GridMap) RemoveObstacle(cell GridCell) {
	delete(c.Obstacles, cell)
}

// FlowField is an optional singleton caching a precomputed gradient toward
// player positions, refreshed by FlowFieldSystem when UpdateCooldown
// expires (spec §4.3 system 10).
type FlowField struct {
	Width, Height  int32
	Gradient       []GridCell // per-cell "step toward target" direction, flattened row-major
	UpdateCooldown int
}

// Type implements ecs.Component.
func (c *FlowField) Type() ecs.ComponentType { return ecs.ComponentTypeFlowField }

// Clone implements ecs.Component.
func (c *FlowField) Clone() ecs.Component {
	cp := &FlowField{Width: c.Width, Height: c.Height, UpdateCooldown: c.UpdateCooldown}
	cp.Gradient = make([]GridCell, len(c.Gradient))
	copy(cp.Gradient, c.Gradient)
	return cp
}

// At returns the cached gradient direction for cell.
func (c *FlowField) At(cell GridCell) (GridCell, bool) {
	if cell.X < 0 || cell.X >= c.Width || cell.Y < 0 || cell.Y >= c.Height {
		return GridCell{}, false
	}
	idx := int(cell.Y)*int(c.Width) + int(cell.X)
	if idx < 0 || idx >= len(c.Gradient) {
		return GridCell{}, false
	}
	return c.Gradient[idx], true
}
