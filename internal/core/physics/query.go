package physics

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
)

// QueryCircle returns every entity carrying Transform2D+CollisionShape whose
// shape overlaps the given circle and whose PhysicsBody layer (when
// present) intersects layerMask, in entity-insertion order. It is the
// region-query primitive ExplosionSystem and ZombieAISystem consume (spec
// §4.4 "physics system exposes query helpers"); it does not use a broadphase
// but tests every Transform2D+CollisionShape entity in turn, since callers
// invoke it outside the physics sub-step loop.
func QueryCircle(world *ecs.World, center fix.FixVec2, radius fix.Fix64, layerMask components.LayerMask) []ecs.EntityID {
	entities := world.Query().
		With(ecs.ComponentTypeTransform2D).
		With(ecs.ComponentTypeCollisionShape).
		Entities()

	var out []ecs.EntityID
	for _, e := range entities {
		if layerMask != 0 && !layerMatches(world, e, layerMask) {
			continue
		}
		transform, _ := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		shape, _ := world.GetComponent(e, ecs.ComponentTypeCollisionShape)
		pos := transform.(*components.Transform2D).Position
		sh := shape.(*components.CollisionShape)

		if sh.Kind == components.ShapeCircle {
			if _, hit := CircleCircle(center, radius, pos, sh.Radius); hit {
				out = append(out, e)
			}
			continue
		}
		box := AABB{Center: pos, Half: sh.HalfExtents()}
		if _, hit := CircleAABB(center, radius, box); hit {
			out = append(out, e)
		}
	}
	return out
}

// QueryRotatedRect returns every entity whose shape overlaps the axis
// aligned bounding box enclosing a rectangle of size centered at center and
// rotated by angle (spec §4.4: the core never produces rotated colliders
// itself, but the host/view layer may ask whether an arbitrary oriented
// rectangle — e.g. a player's aim reticle — overlaps anything). The rotated
// rect is conservatively tested via its enclosing AABB, which only ever
// over-reports, never under-reports, a hit.
func QueryRotatedRect(world *ecs.World, center fix.FixVec2, size fix.FixVec2, angle fix.Fix64, layerMask components.LayerMask) []ecs.EntityID {
	half := fix.Vec2(size.X.Mul(fix.Half), size.Y.Mul(fix.Half))
	corners := [4]fix.FixVec2{
		fix.Vec2(half.X, half.Y).Rotate(angle),
		fix.Vec2(half.X.Neg(), half.Y).Rotate(angle),
		fix.Vec2(half.X, half.Y.Neg()).Rotate(angle),
		fix.Vec2(half.X.Neg(), half.Y.Neg()).Rotate(angle),
	}
	maxX, maxY := corners[0].X, corners[0].Y
	if maxX.Sign() < 0 {
		maxX = maxX.Neg()
	}
	if maxY.Sign() < 0 {
		maxY = maxY.Neg()
	}
	for _, c := range corners[1:] {
		x, y := c.X, c.Y
		if x.Sign() < 0 {
			x = x.Neg()
		}
		if y.Sign() < 0 {
			y = y.Neg()
		}
		if x.Cmp(maxX) > 0 {
			maxX = x
		}
		if y.Cmp(maxY) > 0 {
			maxY = y
		}
	}
	enclosing := AABB{Center: center, Half: fix.Vec2(maxX, maxY)}

	entities := world.Query().
		With(ecs.ComponentTypeTransform2D).
		With(ecs.ComponentTypeCollisionShape).
		Entities()

	var out []ecs.EntityID
	for _, e := range entities {
		if layerMask != 0 && !layerMatches(world, e, layerMask) {
			continue
		}
		transform, _ := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		shape, _ := world.GetComponent(e, ecs.ComponentTypeCollisionShape)
		pos := transform.(*components.Transform2D).Position
		sh := shape.(*components.CollisionShape)
		box := AABB{Center: pos, Half: sh.HalfExtents()}
		if enclosing.Overlaps(box) {
			out = append(out, e)
		}
	}
	return out
}

func layerMatches(world *ecs.World, e ecs.EntityID, mask components.LayerMask) bool {
	body, ok := world.GetComponent(e, ecs.ComponentTypePhysicsBody)
	if !ok {
		return true
	}
	return body.(*components.PhysicsBody).Layer.Intersects(mask)
}
