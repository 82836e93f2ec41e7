package systems

import (
	"sort"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/core/physics"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

// ZombieAISystem drives every ZombieAI entity's chase -> windup -> strike ->
// cooldown attack state machine and its A*-backed pursuit of the nearest
// reachable player (spec §4.3 system 12, §4.4 "Pathfinding support").
type ZombieAISystem struct {
	cfg Config
}

// NewZombieAISystem constructs the system with cfg's attack/move tuning.
func NewZombieAISystem(cfg Config) *ZombieAISystem { return &ZombieAISystem{cfg: cfg} }

// Type implements ecs.System.
func (s *ZombieAISystem) Type() ecs.SystemType { return ecs.SystemTypeZombieAI }

// Execute implements ecs.System.
func (s *ZombieAISystem) Execute(world *ecs.World, _ input.Frame) {
	gmc, ok := world.GetSingleton(ecs.ComponentTypeGridMap)
	if !ok {
		return
	}
	grid := gmc.(*components.GridMap)

	playerPositions := s.playerPositions(world)

	for _, e := range world.Query().With(ecs.ComponentTypeZombieAI).Entities() {
		tc, ok := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		if !ok {
			continue
		}
		vc, ok := world.GetComponent(e, ecs.ComponentTypeVelocity)
		if !ok {
			continue
		}
		zc, _ := world.GetComponent(e, ecs.ComponentTypeZombieAI)
		zombie := zc.(*components.ZombieAI)
		transform := tc.(*components.Transform2D)
		velocity := vc.(*components.Velocity)

		switch zombie.State {
		case components.ZombieChase:
			players := sortByDistanceTo(transform.Position, playerPositions)
			s.chase(world, grid, transform, velocity, zombie, players)
		case components.ZombieWindup:
			velocity.V = fix.ZeroVec2
			zombie.AttackWindupTimer = decrementClamped(zombie.AttackWindupTimer)
			if zombie.AttackWindupTimer == 0 {
				s.strike(world, transform, zombie)
			}
		case components.ZombieStrike:
			velocity.V = fix.ZeroVec2
			zombie.AttackStrikeTimer = decrementClamped(zombie.AttackStrikeTimer)
			if zombie.AttackStrikeTimer == 0 {
				zombie.State = components.ZombieCooldown
				zombie.AttackCooldownTimer = zombie.AttackCooldownDuration
			}
		case components.ZombieCooldown:
			velocity.V = fix.ZeroVec2
			zombie.AttackCooldownTimer = decrementClamped(zombie.AttackCooldownTimer)
			if zombie.AttackCooldownTimer == 0 {
				zombie.State = components.ZombieChase
			}
		}
	}
}

// chase advances the zombie toward its target, entering an attack windup
// once within AttackRange of the closest candidate target position.
func (s *ZombieAISystem) chase(world *ecs.World, grid *components.GridMap, transform *components.Transform2D, velocity *components.Velocity, zombie *components.ZombieAI, players []playerPos) {
	if len(players) == 0 {
		velocity.V = fix.ZeroVec2
		return
	}
	nearest := players[0].pos
	if nearest.Sub(transform.Position).LengthSq().Cmp(zombie.AttackRange.Mul(zombie.AttackRange)) <= 0 {
		velocity.V = fix.ZeroVec2
		zombie.State = components.ZombieWindup
		zombie.AttackWindupTimer = zombie.AttackWindupDuration
		zombie.TargetPos = nearest
		return
	}

	zombie.PathfindingCooldown = decrementClamped(zombie.PathfindingCooldown)
	if zombie.PathfindingCooldown == 0 {
		s.repath(grid, transform.Position, zombie, players)
		zombie.PathfindingCooldown = s.cfg.ZombiePathfindingCooldown
	}

	waypoint, ok := zombie.NextWaypoint()
	var target fix.FixVec2
	if ok {
		target = grid.CellCenter(waypoint)
	} else {
		target = zombie.TargetPos
	}

	toTarget := target.Sub(transform.Position)
	distSq := toTarget.LengthSq()
	arriveSq := s.cfg.ZombieMoveSpeed.Mul(s.cfg.ZombieMoveSpeed)
	if ok && distSq.Cmp(arriveSq) <= 0 {
		zombie.AdvanceWaypoint()
	}
	if distSq.Sign() == 0 {
		velocity.V = fix.ZeroVec2
		return
	}
	velocity.V = toTarget.Normalize().Scale(s.cfg.ZombieMoveSpeed)
}

// strike applies attack damage to every player (LayerPlayer) within a circle
// of AttackRange around the zombie's own position and advances to the strike
// sub-state.
func (s *ZombieAISystem) strike(world *ecs.World, transform *components.Transform2D, zombie *components.ZombieAI) {
	zombie.State = components.ZombieStrike
	zombie.AttackStrikeTimer = zombie.AttackStrikeDuration

	hits := physics.QueryCircle(world, transform.Position, zombie.AttackRange, components.LayerPlayer)
	for _, target := range hits {
		hc, ok := world.GetComponent(target, ecs.ComponentTypeHP)
		if !ok {
			continue
		}
		hp := hc.(*components.HP)
		hp.ApplyDamage(zombie.AttackDamage)
		if hp.IsDead() && !world.HasComponent(target, ecs.ComponentTypeDeath) {
			world.AddComponent(target, &components.Death{Reason: components.DeathReasonUnknown})
		}
	}
}

// repath recomputes zombie's path to the nearest reachable player, trying
// candidates in ascending distance order and falling back to a straight
// line toward the nearest player if none has a walkable path (spec §4.4).
func (s *ZombieAISystem) repath(grid *components.GridMap, from fix.FixVec2, zombie *components.ZombieAI, players []playerPos) {
	start := grid.CellAt(from)
	for _, p := range players {
		goal := grid.CellAt(p.pos)
		if path, ok := physics.FindPath(grid, start, goal); ok {
			zombie.SetPath(path)
			zombie.TargetPos = p.pos
			return
		}
	}
	zombie.SetPath(nil)
	zombie.TargetPos = players[0].pos
}

type playerPos struct {
	pos    fix.FixVec2
	distSq fix.Fix64
}

// playerPositions collects every player's current position, in query
// (component-store insertion) order.
func (s *ZombieAISystem) playerPositions(world *ecs.World) []fix.FixVec2 {
	var out []fix.FixVec2
	for _, e := range world.Query().With(ecs.ComponentTypePlayer).With(ecs.ComponentTypeTransform2D).Entities() {
		tc, ok := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		if !ok {
			continue
		}
		out = append(out, tc.(*components.Transform2D).Position)
	}
	return out
}

// sortByDistanceTo orders positions by ascending squared distance from
// origin (spec §4.4: "nearest player by squared distance"), breaking ties
// by the positions' original (query) order for determinism.
func sortByDistanceTo(origin fix.FixVec2, positions []fix.FixVec2) []playerPos {
	out := make([]playerPos, len(positions))
	for i, pos := range positions {
		out[i] = playerPos{pos: pos, distSq: pos.Sub(origin).LengthSq()}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].distSq.Cmp(out[j].distSq) < 0
	})
	return out
}
