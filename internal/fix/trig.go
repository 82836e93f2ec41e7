package fix

// Trigonometric helpers. All of them are table/polynomial constructions over
// integer fixed-point arithmetic — spec §4.1 forbids any IEEE-754 path in the
// simulation, including inside sin/cos/atan2.
//
// Sin/Cos use Bhaskara I's 7th-century rational approximation of sine, which
// is exact at 0°/90°/180° and stays within ~0.0016 absolute error elsewhere.
// It is expressed entirely with Fix64 multiply/divide, so it carries no
// floating-point dependency at all — only the two baked constants PiFixed
// and DegPerRad below are derived from π, and they are literals, not
// runtime float computations.

// PiFixed is Fix64(π), precomputed to the nearest raw unit (π×65536 ≈
// 205887.416).
const PiFixed Fix64 = 205887

// HalfPi and TwoPi are derived from PiFixed so every quadrant boundary used
// below agrees with the same baked constant.
const (
	HalfPi Fix64 = PiFixed / 2
	TwoPi  Fix64 = PiFixed * 2
)

// DegPerRad is Fix64(180/π), used to reduce a radian angle into the domain
// Bhaskara's formula expects (degrees, 0..180).
const DegPerRad Fix64 = 3754937

const bhaskara180 Fix64 = 180 << FractionalBits
const bhaskara40500 Fix64 = 40500 << FractionalBits

// bhaskaraSin evaluates Bhaskara I's approximation for x in degrees,
// x ∈ [0, 180] (fixed-point). Returns sin(x°) in [0, 1] (fixed-point).
func bhaskaraSin(xDeg Fix64) Fix64 {
	term := xDeg.Mul(bhaskara180.Sub(xDeg))
	num := term.Mul(FromInt(4))
	den := bhaskara40500.Sub(term)
	return num.Div(den)
}

// Sin returns sin(angle), angle in fixed-point radians.
func Sin(angle Fix64) Fix64 {
	a := angle.Mod(TwoPi)
	switch {
	case a < HalfPi:
		return bhaskaraSin(a.Mul(DegPerRad))
	case a < PiFixed:
		return bhaskaraSin(PiFixed.Sub(a).Mul(DegPerRad))
	case a < HalfPi.Add(PiFixed):
		return bhaskaraSin(a.Sub(PiFixed).Mul(DegPerRad)).Neg()
	default:
		return bhaskaraSin(TwoPi.Sub(a).Mul(DegPerRad)).Neg()
	}
}

// Cos returns cos(angle), angle in fixed-point radians.
func Cos(angle Fix64) Fix64 {
	return Sin(angle.Add(HalfPi))
}

// atan-approximation constants: atan(z) ≈ z*(c1 - c2*z²) for |z| <= 1, a
// standard single-term minimax fit with max error ~0.0015 rad.
const (
	atanC1 Fix64 = 63727 // 0.97239 in fixed-point
	atanC2 Fix64 = 12579 // 0.19194 in fixed-point
)

func atanApprox(z Fix64) Fix64 {
	z2 := z.Mul(z)
	return z.Mul(atanC1.Sub(atanC2.Mul(z2)))
}

// Atan2 returns the fixed-point angle (radians) of the vector (x, y),
// matching math.Atan2's argument order and quadrant conventions.
func Atan2(y, x Fix64) Fix64 {
	if x == 0 && y == 0 {
		return 0
	}
	ax, ay := x.Abs(), y.Abs()
	if ax >= ay {
		z := y.Div(x)
		switch {
		case x > 0:
			return atanApprox(z)
		case y >= 0:
			return atanApprox(z).Add(PiFixed)
		default:
			return atanApprox(z).Sub(PiFixed)
		}
	}
	z := x.Div(y)
	if y > 0 {
		return HalfPi.Sub(atanApprox(z))
	}
	return HalfPi.Neg().Sub(atanApprox(z))
}
