package physics

import (
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
)

// CircleCircle tests two circles for overlap and, if they overlap, returns
// the contact separating A from B along the A->B center line. Concentric
// circles (zero-length center line) are resolved with an arbitrary fixed
// axis so the simulation never divides by zero (spec §4.4 edge case).
func CircleCircle(posA fix.FixVec2, radA fix.Fix64, posB fix.FixVec2, radB fix.Fix64) (Contact, bool) {
	delta := posB.Sub(posA)
	distSq := delta.LengthSq()
	radiusSum := radA.Add(radB)
	if distSq.Cmp(radiusSum.Mul(radiusSum)) >= 0 {
		return Contact{}, false
	}
	dist := distSq.Sqrt()
	var normal fix.FixVec2
	if dist.Sign() == 0 {
		normal = fix.Vec2(fix.One, fix.Zero)
	} else {
		normal = fix.Vec2(delta.X.Div(dist), delta.Y.Div(dist))
	}
	return Contact{Normal: normal, Penetration: radiusSum.Sub(dist)}, true
}

// CircleAABB tests a circle against an axis-aligned box, clamping the
// circle's center onto the box to find the nearest surface point. When the
// center lies inside the box, the clamp point coincides with the center and
// the push-out direction is the axis of least penetration. The returned
// normal always points from the box toward the circle (the direction the
// circle should move to separate) — callers that need the A-to-B convention
// must negate it when the box is argument A (see Narrow).
func CircleAABB(circlePos fix.FixVec2, radius fix.Fix64, box AABB) (Contact, bool) {
	boxMin, boxMax := box.Min(), box.Max()
	clampedX := circlePos.X.Clamp(boxMin.X, boxMax.X)
	clampedY := circlePos.Y.Clamp(boxMin.Y, boxMax.Y)
	closest := fix.Vec2(clampedX, clampedY)

	if clampedX != circlePos.X || clampedY != circlePos.Y {
		delta := circlePos.Sub(closest)
		distSq := delta.LengthSq()
		if distSq.Cmp(radius.Mul(radius)) >= 0 {
			return Contact{}, false
		}
		dist := distSq.Sqrt()
		var normal fix.FixVec2
		if dist.Sign() == 0 {
			normal = fix.Vec2(fix.Zero, fix.One)
		} else {
			normal = delta.Scale(fix.One.Div(dist))
		}
		return Contact{Normal: normal, Penetration: radius.Sub(dist)}, true
	}

	// Center is inside the box: push out along the axis of least
	// penetration, away from the box center.
	dxLeft := circlePos.X.Sub(boxMin.X)
	dxRight := boxMax.X.Sub(circlePos.X)
	dyTop := circlePos.Y.Sub(boxMin.Y)
	dyBottom := boxMax.Y.Sub(circlePos.Y)

	negOne := fix.One.Neg()
	minPen := dxLeft
	normal := fix.Vec2(negOne, fix.Zero)
	if dxRight.Cmp(minPen) < 0 {
		minPen = dxRight
		normal = fix.Vec2(fix.One, fix.Zero)
	}
	if dyTop.Cmp(minPen) < 0 {
		minPen = dyTop
		normal = fix.Vec2(fix.Zero, negOne)
	}
	if dyBottom.Cmp(minPen) < 0 {
		minPen = dyBottom
		normal = fix.Vec2(fix.Zero, fix.One)
	}
	return Contact{Normal: normal, Penetration: minPen.Add(radius)}, true
}

// AABBAABB tests two boxes for overlap using the standard Minkowski-sum
// penetration-on-least-axis approach.
func AABBAABB(a, b AABB) (Contact, bool) {
	delta := b.Center.Sub(a.Center)
	overlapX := a.Half.X.Add(b.Half.X).Sub(delta.X.Abs())
	overlapY := a.Half.Y.Add(b.Half.Y).Sub(delta.Y.Abs())
	if overlapX.Sign() <= 0 || overlapY.Sign() <= 0 {
		return Contact{}, false
	}
	if overlapX.Cmp(overlapY) < 0 {
		normal := fix.Vec2(fix.One, fix.Zero)
		if delta.X.Sign() < 0 {
			normal = fix.Vec2(fix.One.Neg(), fix.Zero)
		}
		return Contact{Normal: normal, Penetration: overlapX}, true
	}
	normal := fix.Vec2(fix.Zero, fix.One)
	if delta.Y.Sign() < 0 {
		normal = fix.Vec2(fix.Zero, fix.One.Neg())
	}
	return Contact{Normal: normal, Penetration: overlapY}, true
}

// Narrow dispatches to the shape-pair-specific test, normalizing argument
// order so the returned normal always points from A to B regardless of
// which shape kind is "circle" and which is "box".
func Narrow(posA fix.FixVec2, shapeA *components.CollisionShape, posB fix.FixVec2, shapeB *components.CollisionShape) (Contact, bool) {
	boxA := AABB{Center: posA, Half: shapeA.HalfExtents()}
	boxB := AABB{Center: posB, Half: shapeB.HalfExtents()}

	switch {
	case shapeA.Kind == components.ShapeCircle && shapeB.Kind == components.ShapeCircle:
		return CircleCircle(posA, shapeA.Radius, posB, shapeB.Radius)
	case shapeA.Kind == components.ShapeCircle && shapeB.Kind == components.ShapeBox:
		// CircleAABB returns box->circle (B->A); flip to the A->B convention.
		c, ok := CircleAABB(posA, shapeA.Radius, boxB)
		if !ok {
			return Contact{}, false
		}
		return Contact{Normal: c.Normal.Neg(), Penetration: c.Penetration}, true
	case shapeA.Kind == components.ShapeBox && shapeB.Kind == components.ShapeCircle:
		// CircleAABB(posB, boxA) returns box(A)->circle(B), already A->B.
		return CircleAABB(posB, shapeB.Radius, boxA)
	default:
		return AABBAABB(boxA, boxB)
	}
}
