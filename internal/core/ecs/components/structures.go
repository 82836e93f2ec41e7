package components

import "siegefall/internal/core/ecs"

// Bullet identifies a projectile: its owner (for knockback/credit) and the
// damage it deals on impact. Bullet identity is the entity ID itself — spec
// §9 explicitly forbids any process-wide counter for bullet identity,
// since that breaks rollback (a counter's value depends on simulation
// history outside the World it would need to live in).
type Bullet struct {
	OwnerEntityID ecs.EntityID
	Damage        int
}

// Type implements ecs.Component.
func (c *Bullet) Type() ecs.ComponentType { return ecs.ComponentTypeBullet }

// Clone implements ecs.Component.
func (c *Bullet) Clone() ecs.Component {
	cp := *c
	return &cp
}

// Wall is a marker for wall entities.
type Wall struct{}

// Type implements ecs.Component.
func (c *Wall) Type() ecs.ComponentType { return ecs.ComponentTypeWall }

// Clone implements ecs.Component.
func (c *Wall) Clone() ecs.Component {
	return &Wall{}
}

// Barrel is a marker for barrel entities (explode when destroyed).
type Barrel struct{}

// Type implements ecs.Component.
func (c *Barrel) Type() ecs.ComponentType { return ecs.ComponentTypeBarrel }

// Clone implements ecs.Component.
func (c *Barrel) Clone() ecs.Component {
	return &Barrel{}
}

// WallPlacement is transient: a freshly placed wall is a trigger until its
// placer leaves its expanded AABB, at which point WallPlacementSystem
// removes this component and flips PhysicsBody.IsTrigger to false.
type WallPlacement struct {
	PlacerEntityID ecs.EntityID
}

// Type implements ecs.Component.
func (c *WallPlacement) Type() ecs.ComponentType { return ecs.ComponentTypeWallPlacement }

// Clone implements ecs.Component.
func (c *WallPlacement) Clone() ecs.Component {
	cp := *c
	return &cp
}
