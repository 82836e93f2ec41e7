package physics

import (
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/fix"
)

// Body is the minimal per-entity physics state the resolver needs, decoupled
// from ecs.World so contact generation and resolution stay unit-testable
// without constructing a World.
type Body struct {
	Position fix.FixVec2
	Velocity fix.FixVec2
	Shape    *components.CollisionShape
	Phys     *components.PhysicsBody
}

// AABBOf returns the world-space AABB enclosing b's shape at its current
// position.
func (b *Body) AABBOf() AABB {
	return AABB{Center: b.Position, Half: b.Shape.HalfExtents()}
}

// Integrate applies gravity's force-accumulation contribution, advances b's
// position by its velocity over dt, and applies linear damping, per spec
// §4.4 step 1. gravity contributes mass * gravity * dt to velocity for
// every non-static body with UseGravity set; it is not itself simulation
// state, so nothing beyond the velocity it produces is snapshotted.
func Integrate(b *Body, dt fix.Fix64, gravity fix.FixVec2) {
	if b.Phys.IsStatic {
		return
	}
	if b.Phys.UseGravity {
		b.Velocity = b.Velocity.Add(gravity.Scale(b.Phys.Mass).Scale(dt))
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	damp := fix.One.Sub(b.Phys.LinearDamping.Mul(dt))
	if damp.Sign() < 0 {
		damp = fix.Zero
	}
	b.Velocity = b.Velocity.Scale(damp)
}

// correctionPercent and correctionSlop tune the positional-correction pass:
// only a fraction of the overlap is resolved per tick (Baumgarte
// stabilization), and penetration below the slop threshold is ignored
// outright to avoid correction jitter on resting contacts.
var (
	correctionPercent = fix.One.Div(fix.FromInt(5)) // 0.2
	correctionSlop    = fix.FromRaw(6)              // ~0.0001 world units
)

// Resolve applies positional correction and a velocity impulse to separate
// a and b along contact, per spec §4.4 step 5. Static bodies never move and
// never receive velocity change; the entire correction lands on the
// non-static side(s).
func Resolve(a, b *Body, contact Contact) {
	invMassA := a.Phys.InverseMass()
	invMassB := b.Phys.InverseMass()
	invMassSum := invMassA.Add(invMassB)
	if invMassSum.Sign() == 0 {
		return
	}

	penetration := contact.Penetration.Sub(correctionSlop)
	if penetration.Sign() > 0 {
		correctionMag := penetration.Div(invMassSum).Mul(correctionPercent)
		correction := contact.Normal.Scale(correctionMag)
		if !a.Phys.IsStatic {
			a.Position = a.Position.Sub(correction.Scale(invMassA))
		}
		if !b.Phys.IsStatic {
			b.Position = b.Position.Add(correction.Scale(invMassB))
		}
	}

	relVel := b.Velocity.Sub(a.Velocity)
	velAlongNormal := relVel.Dot(contact.Normal)
	if velAlongNormal.Sign() > 0 {
		return // separating already
	}

	restitution := fix.Min(a.Phys.Restitution, b.Phys.Restitution)
	j := fix.Zero.Sub(fix.One.Add(restitution)).Mul(velAlongNormal).Div(invMassSum)
	impulse := contact.Normal.Scale(j)
	if !a.Phys.IsStatic {
		a.Velocity = a.Velocity.Sub(impulse.Scale(invMassA))
	}
	if !b.Phys.IsStatic {
		b.Velocity = b.Velocity.Add(impulse.Scale(invMassB))
	}

	applyFriction(a, b, contact, invMassA, invMassB, invMassSum, j)
}

// applyFriction removes the tangential component of relative velocity,
// clamped by Coulomb's law against the normal impulse magnitude (spec §4.4
// step 5 friction pass).
func applyFriction(a, b *Body, contact Contact, invMassA, invMassB, invMassSum, normalImpulse fix.Fix64) {
	relVel := b.Velocity.Sub(a.Velocity)
	velAlongNormal := relVel.Dot(contact.Normal)
	tangent := relVel.Sub(contact.Normal.Scale(velAlongNormal))
	tangentLen := tangent.Length()
	if tangentLen.Sign() == 0 {
		return
	}
	tangent = tangent.Scale(fix.One.Div(tangentLen))

	jt := fix.Zero.Sub(relVel.Dot(tangent)).Div(invMassSum)
	friction := a.Phys.Friction.Mul(a.Phys.Friction).Add(b.Phys.Friction.Mul(b.Phys.Friction)).Sqrt()
	maxFriction := normalImpulse.Mul(friction)
	if maxFriction.Sign() < 0 {
		maxFriction = maxFriction.Neg()
	}
	if jt.Cmp(maxFriction) > 0 {
		jt = maxFriction
	} else if jt.Cmp(maxFriction.Neg()) < 0 {
		jt = maxFriction.Neg()
	}

	frictionImpulse := tangent.Scale(jt)
	if !a.Phys.IsStatic {
		a.Velocity = a.Velocity.Sub(frictionImpulse.Scale(invMassA))
	}
	if !b.Phys.IsStatic {
		b.Velocity = b.Velocity.Add(frictionImpulse.Scale(invMassB))
	}
}
