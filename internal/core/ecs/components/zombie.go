package components

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/fix"
)

// ZombieAttackState is the windup/strike/cooldown attack sub-state machine
// nested inside the chase behaviour (spec §4.3 system 12).
type ZombieAttackState uint8

const (
	ZombieChase ZombieAttackState = iota
	ZombieWindup
	ZombieStrike
	ZombieCooldown
)

// ZombieAI carries pathfinding and attack state for a zombie entity.
type ZombieAI struct {
	State ZombieAttackState

	TargetPos fix.FixVec2
	MoveSpeed fix.Fix64

	Path                []GridCell
	PathIndex           int
	PathfindingCooldown int

	AttackWindupTimer   int
	AttackStrikeTimer   int
	AttackCooldownTimer int
	AttackRange         fix.Fix64
	AttackDamage        int

	AttackWindupDuration   int
	AttackStrikeDuration   int
	AttackCooldownDuration int
}

// Type implements ecs.Component.
func (c *ZombieAI) Type() ecs.ComponentType { return ecs.ComponentTypeZombieAI }

// Clone implements ecs.Component.
func (c *ZombieAI) Clone() ecs.Component {
	cp := *c
	cp.Path = make([]GridCell, len(c.Path))
	copy(cp.Path, c.Path)
	return &cp
}

// NextWaypoint returns the next cell on the current path, or false if the
// path is exhausted.
func (c *ZombieAI) NextWaypoint() (GridCell, bool) {
	if c.PathIndex >= len(c.Path) {
		return GridCell{}, false
	}
	return c.Path[c.PathIndex], true
}

// AdvanceWaypoint moves the path cursor forward by one.
func (c *ZombieAI) AdvanceWaypoint() {
	c.PathIndex++
}

// SetPath installs a freshly computed path and resets the cursor.
func (c *ZombieAI) SetPath(path []GridCell) {
	c.Path = path
	c.PathIndex = 0
}
