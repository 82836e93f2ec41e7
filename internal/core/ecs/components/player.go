package components

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/input"
)

// PlayerState tracks whether a player is free to act.
type PlayerState uint8

const (
	PlayerStateNormal PlayerState = iota
	PlayerStateStunned
)

// Player carries per-player mode/cooldown/health-adjacent state. Modes cycle
// through a fixed roster (e.g. shoot / wall / barrel) via toggle input.
type Player struct {
	PlayerID         input.PlayerID
	CurrentModeIndex int
	ModeCount        int
	BulletCooldown   int
	WallCooldown     int
	BarrelCooldown   int
	HitStunTimer     int
	State            PlayerState
}

// Type implements ecs.Component.
func (c *Player) Type() ecs.ComponentType { return ecs.ComponentTypePlayer }

// Clone implements ecs.Component.
func (c *Player) Clone() ecs.Component {
	cp := *c
	return &cp
}

// Mode indices into the fixed mode roster: shoot, wall, barrel.
const (
	ModeShoot = iota
	ModeWall
	ModeBarrel
)

// Toggle advances to the next mode, wrapping around ModeCount.
func (c *Player) Toggle() {
	if c.ModeCount <= 0 {
		return
	}
	c.CurrentModeIndex = (c.CurrentModeIndex + 1) % c.ModeCount
}

// HP is current/max hit points.
type HP struct {
	Current int
	Max     int
}

// Type implements ecs.Component.
func (c *HP) Type() ecs.ComponentType { return ecs.ComponentTypeHP }

// Clone implements ecs.Component.
func (c *HP) Clone() ecs.Component {
	cp := *c
	return &cp
}

// ApplyDamage subtracts amount, clamped at zero.
func (c *HP) ApplyDamage(amount int) {
	c.Current -= amount
	if c.Current < 0 {
		c.Current = 0
	}
}

// IsDead reports whether HP has been exhausted.
func (c *HP) IsDead() bool {
	return c.Current <= 0
}

// DeathReason records what killed an entity, for DeathSystem's per-kind
// teardown dispatch.
type DeathReason uint8

const (
	DeathReasonUnknown DeathReason = iota
	DeathReasonBulletHit
	DeathReasonExplosion
)

// Death is a marker component: its presence triggers DeathSystem's teardown
// for the tick it appears, after which the entity is destroyed.
type Death struct {
	Reason DeathReason
}

// Type implements ecs.Component.
func (c *Death) Type() ecs.ComponentType { return ecs.ComponentTypeDeath }

// Clone implements ecs.Component.
func (c *Death) Clone() ecs.Component {
	cp := *c
	return &cp
}

// Stiff marks an entity briefly unable to act (e.g. after taking a hit),
// counting down to zero.
type Stiff struct {
	Timer int
}

// Type implements ecs.Component.
func (c *Stiff) Type() ecs.ComponentType { return ecs.ComponentTypeStiff }

// Clone implements ecs.Component.
func (c *Stiff) Clone() ecs.Component {
	cp := *c
	return &cp
}
