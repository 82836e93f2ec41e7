package components

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/fix"
)

// Explosion is a timed area-damage effect: it lives for a fixed number of
// frames and, on expiry, ExplosionSystem queries its circle region and
// damages every HP-bearing entity inside (spec §4.3 system 14, §8 scenario
// 6 "barrel chain").
type Explosion struct {
	Position     fix.FixVec2
	Radius       fix.Fix64
	Damage       int
	CurrentFrame int
	Duration     int
}

// Type implements ecs.Component.
func (c *Explosion) Type() ecs.ComponentType { return ecs.ComponentTypeExplosion }

// Clone implements ecs.Component.
func (c *Explosion) Clone() ecs.Component {
	cp := *c
	return &cp
}

// Expired reports whether the explosion has run out its lifetime.
func (c *Explosion) Expired() bool {
	return c.CurrentFrame >= c.Duration
}
