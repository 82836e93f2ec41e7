// Package components implements the closed set of component kinds the core
// recognises (spec §3): plain data, no references to external runtime
// objects, each with a deep Clone.
package components

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/fix"
)

// Transform2D holds an entity's world position.
type Transform2D struct {
	Position fix.FixVec2
}

// Type implements ecs.Component.
func (c *Transform2D) Type() ecs.ComponentType { return ecs.ComponentTypeTransform2D }

// Clone implements ecs.Component.
func (c *Transform2D) Clone() ecs.Component {
	cp := *c
	return &cp
}

// Velocity holds an entity's linear velocity.
type Velocity struct {
	V fix.FixVec2
}

// Type implements ecs.Component.
func (c *Velocity) Type() ecs.ComponentType { return ecs.ComponentTypeVelocity }

// Clone implements ecs.Component.
func (c *Velocity) Clone() ecs.Component {
	cp := *c
	return &cp
}
