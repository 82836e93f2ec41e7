// Package physics implements the deterministic 2D physics step: broadphase,
// narrowphase, resolution, and the region-query/pathfinding helpers other
// Systems consume (spec §4.4). Every numeric path here runs on fix.Fix64 —
// no float64 ever enters a contact, impulse, or query result.
package physics

import "siegefall/internal/fix"

// AABB is an axis-aligned bounding box expressed as a center and
// half-extents, which makes both broadphase overlap tests and Minkowski-sum
// narrowphase tests symmetric to write.
type AABB struct {
	Center fix.FixVec2
	Half   fix.FixVec2
}

// Min returns the box's minimum corner.
func (a AABB) Min() fix.FixVec2 {
	return a.Center.Sub(a.Half)
}

// Max returns the box's maximum corner.
func (a AABB) Max() fix.FixVec2 {
	return a.Center.Add(a.Half)
}

// Overlaps reports whether a and b intersect (inclusive on the boundary).
func (a AABB) Overlaps(b AABB) bool {
	return a.Min().X <= b.Max().X && a.Max().X >= b.Min().X &&
		a.Min().Y <= b.Max().Y && a.Max().Y >= b.Min().Y
}

// Contains reports whether point p lies within a (inclusive).
func (a AABB) Contains(p fix.FixVec2) bool {
	return p.X >= a.Min().X && p.X <= a.Max().X && p.Y >= a.Min().Y && p.Y <= a.Max().Y
}

// Expand returns a grown by margin on every side (used for the wall's
// "expanded AABB" placer-exit check, spec §4.3 system 13).
func (a AABB) Expand(margin fix.Fix64) AABB {
	return AABB{Center: a.Center, Half: a.Half.Add(fix.Vec2(margin, margin))}
}

// Contact is the result of a narrowphase test between two shapes: the
// separating normal (pointing from A to B) and the penetration depth along
// it. Exactly one Contact is produced per ordered pair per spec §4.4's
// determinism constraints.
type Contact struct {
	Normal      fix.FixVec2
	Penetration fix.Fix64
}
