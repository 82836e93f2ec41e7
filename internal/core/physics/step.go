package physics

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
)

// Config bundles the fixed tuning values a physics step needs that are not
// themselves simulation state (spec §4.4: sub-step count, resolution
// iterations, broadphase cell size are ship-time constants, not
// entity data, so they live in Config rather than a component).
type Config struct {
	SubSteps         int
	ResolutionPasses int
	BroadphaseCell   fix.Fix64
	Gravity          fix.FixVec2
}

// DefaultConfig matches the values exercised by the end-to-end scenarios in
// spec §8: two sub-steps per tick, four resolution passes, a broadphase cell
// sized for the player/bullet/wall collider scale in play, and zero gravity
// (spec §4.4 step 1: "a configured FixVec2, default zero") — this top-down
// roster has no gravity-receiving bodies today, but UseGravity is honored
// for any that set it.
func DefaultConfig() Config {
	return Config{
		SubSteps:         2,
		ResolutionPasses: 4,
		BroadphaseCell:   fix.FromInt(4),
		Gravity:          fix.ZeroVec2,
	}
}

// Step advances every physics-eligible entity in world by one full tick,
// split into cfg.SubSteps equal sub-steps, each running integrate ->
// broadphase -> narrowphase -> resolve the cfg.ResolutionPasses times spec
// §4.4 prescribes. Collision components on every participating entity are
// cleared once at the top of the tick and repopulated as contacts are
// found, so a Collision bag always reflects exactly this tick's contacts.
func Step(world *ecs.World, dt fix.Fix64, cfg Config) {
	entities := world.Query().
		With(ecs.ComponentTypeTransform2D).
		With(ecs.ComponentTypeVelocity).
		With(ecs.ComponentTypePhysicsBody).
		With(ecs.ComponentTypeCollisionShape).
		Entities()

	clearCollisionBags(world, entities)
	if len(entities) == 0 {
		return
	}

	subDt := dt.Div(fix.FromInt(int64(cfg.SubSteps)))
	for s := 0; s < cfg.SubSteps; s++ {
		stepOnce(world, entities, subDt, cfg)
	}
}

func clearCollisionBags(world *ecs.World, entities []ecs.EntityID) {
	for _, e := range entities {
		if c, ok := world.GetComponent(e, ecs.ComponentTypeCollision); ok {
			c.(*components.Collision).Clear()
		}
	}
}

func stepOnce(world *ecs.World, entities []ecs.EntityID, subDt fix.Fix64, cfg Config) {
	bodies := make(map[ecs.EntityID]*Body, len(entities))
	for _, e := range entities {
		bodies[e] = loadBody(world, e)
	}

	for _, e := range entities {
		Integrate(bodies[e], subDt, cfg.Gravity)
	}

	for pass := 0; pass < cfg.ResolutionPasses; pass++ {
		grid := NewGrid(cfg.BroadphaseCell.Raw())
		for _, e := range entities {
			grid.Insert(e, bodies[e].AABBOf())
		}

		for _, a := range entities {
			ba := bodies[a]
			if ba.Phys.IsStatic {
				// Static bodies never act as the aggressor side of a pair
				// (spec invariant: they're still visible as the passive
				// side whenever some lower-ID dynamic body pairs against
				// them).
				continue
			}
			candidates := grid.QuerySet(ba.AABBOf())
			for _, b := range entities {
				if b <= a {
					continue
				}
				if _, in := candidates[b]; !in {
					continue
				}
				bb := bodies[b]
				if !ba.Phys.Layer.Intersects(bb.Phys.Layer) {
					continue
				}
				contact, hit := Narrow(ba.Position, ba.Shape, bb.Position, bb.Shape)
				if !hit {
					continue
				}
				recordCollision(world, a, b)
				if ba.Phys.IsTrigger || bb.Phys.IsTrigger {
					continue
				}
				Resolve(ba, bb, contact)
			}
		}
	}

	for _, e := range entities {
		storeBody(world, e, bodies[e])
	}
}

func loadBody(world *ecs.World, e ecs.EntityID) *Body {
	transform, _ := world.GetComponent(e, ecs.ComponentTypeTransform2D)
	velocity, _ := world.GetComponent(e, ecs.ComponentTypeVelocity)
	shape, _ := world.GetComponent(e, ecs.ComponentTypeCollisionShape)
	body, _ := world.GetComponent(e, ecs.ComponentTypePhysicsBody)
	return &Body{
		Position: transform.(*components.Transform2D).Position,
		Velocity: velocity.(*components.Velocity).V,
		Shape:    shape.(*components.CollisionShape),
		Phys:     body.(*components.PhysicsBody),
	}
}

func storeBody(world *ecs.World, e ecs.EntityID, b *Body) {
	if t, ok := world.GetComponent(e, ecs.ComponentTypeTransform2D); ok {
		t.(*components.Transform2D).Position = b.Position
	}
	if v, ok := world.GetComponent(e, ecs.ComponentTypeVelocity); ok {
		v.(*components.Velocity).V = b.Velocity
	}
}

// recordCollision adds the symmetric contact record to both entities'
// Collision bags, creating the bag lazily if the entity was not already
// carrying one (spec §4.3 system 9 "collision bags are populated for any
// pair that touched, whether or not either side has a dedicated reaction
// system").
func recordCollision(world *ecs.World, a, b ecs.EntityID) {
	addToBag(world, a, b)
	addToBag(world, b, a)
}

func addToBag(world *ecs.World, owner, other ecs.EntityID) {
	c, ok := world.GetComponent(owner, ecs.ComponentTypeCollision)
	if !ok {
		bag := &components.Collision{}
		world.AddComponent(owner, bag)
		c = bag
	}
	c.(*components.Collision).Add(other)
}
