package systems

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/physics"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

// PhysicsSystem is the pipeline's thin wrapper around physics.Step (spec
// §4.3 system 9, §4.4). All the broadphase/narrowphase/resolution logic
// lives in the physics package; this System only supplies the fixed tick
// delta and sub-step configuration.
type PhysicsSystem struct {
	dt  fix.Fix64
	cfg physics.Config
}

// NewPhysicsSystem constructs the system with a fixed per-tick delta and
// sub-step configuration.
func NewPhysicsSystem(dt fix.Fix64, cfg physics.Config) *PhysicsSystem {
	return &PhysicsSystem{dt: dt, cfg: cfg}
}

// Type implements ecs.System.
func (s *PhysicsSystem) Type() ecs.SystemType { return ecs.SystemTypePhysics }

// Execute implements ecs.System.
func (s *PhysicsSystem) Execute(world *ecs.World, _ input.Frame) {
	physics.Step(world, s.dt, s.cfg)
}
