package physics

import "siegefall/internal/core/ecs"

// cellKey is a broadphase bucket coordinate. Unlike components.GridCell this
// indexes the physics broadphase's own partition, which is sized for contact
// density rather than gameplay tile size — the two grids are deliberately
// independent (spec §4.4 "the broadphase partition need not coincide with
// any gameplay grid").
type cellKey struct {
	X, Y int32
}

// Grid is a uniform-bucket broadphase. It is rebuilt from scratch every
// physics step (Clear + Insert for every eligible entity) rather than kept
// resident, which keeps it trivially deterministic: its contents are a pure
// function of this tick's entity set.
type Grid struct {
	cellSize int64
	buckets  map[cellKey][]ecs.EntityID
}

// NewGrid constructs a broadphase with the given bucket size in raw fixed
// units. cellSize should be a small multiple of the largest expected
// collider so that any overlap test touches at most a handful of buckets.
func NewGrid(cellSize int64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{cellSize: cellSize, buckets: make(map[cellKey][]ecs.EntityID)}
}

func (g *Grid) cellOf(raw int64) int32 {
	if raw >= 0 {
		return int32(raw / g.cellSize)
	}
	return int32((raw+1)/g.cellSize - 1)
}

// Clear empties the grid for reuse across ticks without reallocating the
// bucket map.
func (g *Grid) Clear() {
	for k := range g.buckets {
		delete(g.buckets, k)
	}
}

// Insert files id into every bucket overlapped by box.
func (g *Grid) Insert(id ecs.EntityID, box AABB) {
	minX := g.cellOf(box.Min().X.Raw())
	maxX := g.cellOf(box.Max().X.Raw())
	minY := g.cellOf(box.Min().Y.Raw())
	maxY := g.cellOf(box.Max().Y.Raw())
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			k := cellKey{x, y}
			g.buckets[k] = append(g.buckets[k], id)
		}
	}
}

// QuerySet returns the (unordered, deduplicated) superset of entities whose
// bucket footprint overlaps box. Callers are expected to restore a
// deterministic order themselves by filtering a canonical entity list
// against this set (spec §4.4) rather than trusting bucket iteration order.
func (g *Grid) QuerySet(box AABB) map[ecs.EntityID]struct{} {
	minX := g.cellOf(box.Min().X.Raw())
	maxX := g.cellOf(box.Max().X.Raw())
	minY := g.cellOf(box.Min().Y.Raw())
	maxY := g.cellOf(box.Max().Y.Raw())
	out := make(map[ecs.EntityID]struct{})
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for _, id := range g.buckets[cellKey{x, y}] {
				out[id] = struct{}{}
			}
		}
	}
	return out
}
