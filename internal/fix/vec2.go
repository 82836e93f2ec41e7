package fix

// FixVec2 is a deterministic 2D vector built from two Fix64 scalars.
type FixVec2 struct {
	X, Y Fix64
}

// Vec2 constructs a FixVec2 from two Fix64 values.
func Vec2(x, y Fix64) FixVec2 {
	return FixVec2{X: x, Y: y}
}

// Vec2FromInt constructs a FixVec2 from plain integers.
func Vec2FromInt(x, y int64) FixVec2 {
	return FixVec2{X: FromInt(x), Y: FromInt(y)}
}

// ZeroVec2 is the zero vector.
var ZeroVec2 = FixVec2{}

// Add returns v+o.
func (v FixVec2) Add(o FixVec2) FixVec2 {
	return FixVec2{X: v.X.Add(o.X), Y: v.Y.Add(o.Y)}
}

// Sub returns v-o.
func (v FixVec2) Sub(o FixVec2) FixVec2 {
	return FixVec2{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y)}
}

// Scale returns v*s.
func (v FixVec2) Scale(s Fix64) FixVec2 {
	return FixVec2{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// Neg returns -v.
func (v FixVec2) Neg() FixVec2 {
	return FixVec2{X: v.X.Neg(), Y: v.Y.Neg()}
}

// Dot returns the dot product of v and o.
func (v FixVec2) Dot(o FixVec2) Fix64 {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y))
}

// Cross returns the 2D cross product (a scalar: v.X*o.Y - v.Y*o.X).
func (v FixVec2) Cross(o FixVec2) Fix64 {
	return v.X.Mul(o.Y).Sub(v.Y.Mul(o.X))
}

// LengthSq returns the squared magnitude, avoiding a Sqrt call where only a
// comparison is needed (e.g. broadphase distance pruning).
func (v FixVec2) LengthSq() Fix64 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v FixVec2) Length() Fix64 {
	return v.LengthSq().Sqrt()
}

// Normalize returns a unit vector in the direction of v, or (0,0) when v has
// zero magnitude — an explicit contract per spec §4.1, not an error.
func (v FixVec2) Normalize() FixVec2 {
	l := v.Length()
	if l == 0 {
		return ZeroVec2
	}
	return FixVec2{X: v.X.Div(l), Y: v.Y.Div(l)}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v FixVec2) Perp() FixVec2 {
	return FixVec2{X: v.Y.Neg(), Y: v.X}
}

// Rotate returns v rotated by angle (fixed-point radians) about the origin.
// Used only by the rotated-rect query helper physics.QueryRotatedRect;
// axis-aligned boxes used for physics resolution never call this.
func (v FixVec2) Rotate(angle Fix64) FixVec2 {
	s, c := Sin(angle), Cos(angle)
	return FixVec2{
		X: v.X.Mul(c).Sub(v.Y.Mul(s)),
		Y: v.X.Mul(s).Add(v.Y.Mul(c)),
	}
}

// DistanceSq returns the squared distance between v and o.
func (v FixVec2) DistanceSq(o FixVec2) Fix64 {
	return v.Sub(o).LengthSq()
}

// Equal reports whether v and o are exactly bit-equal — the only sensible
// equality for deterministic fixed-point values.
func (v FixVec2) Equal(o FixVec2) bool {
	return v.X == o.X && v.Y == o.Y
}
