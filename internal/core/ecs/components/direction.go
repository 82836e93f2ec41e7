package components

import (
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

// diagonalScale is √2/2 in Q47.16, used so the four diagonal directions have
// the same magnitude as the four cardinal ones (spec §4.3 PlayerMoveSystem:
// "diagonals scaled by √2/2").
const diagonalScale fix.Fix64 = 46341

// DirectionUnitVector maps dir to its fixed-point unit vector, wrapping
// input.DirectionDeltas in Fix64 and applying diagonalScale to the four
// diagonal entries.
func DirectionUnitVector(dir input.Direction) fix.FixVec2 {
	delta, ok := input.DirectionDeltas[dir]
	if !ok || (delta[0] == 0 && delta[1] == 0) {
		return fix.ZeroVec2
	}
	x := fix.FromInt(int64(delta[0]))
	y := fix.FromInt(int64(delta[1]))
	if delta[0] != 0 && delta[1] != 0 {
		x = x.Mul(diagonalScale)
		y = y.Mul(diagonalScale)
	}
	return fix.Vec2(x, y)
}
