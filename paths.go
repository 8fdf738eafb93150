package motion

import "math"

// PathFunc returns the point between start and end at progress alpha. Path
// functions hold no state beyond their construction parameters.
type PathFunc func(start, end Vec3, alpha float64) Vec3

// straightPathThreshold is the arc angle below which arcs degrade to
// straight paths.
const straightPathThreshold = 0.01

// StraightPath interpolates linearly; exact at alpha 0 and 1.
func StraightPath(start, end Vec3, alpha float64) Vec3 {
	return start.Lerp(end, alpha)
}

// PathAlongArc returns a path function that moves points along a circular
// arc of the given angle about axis. The arc's center is implied by the
// chord and the angle. Tiny angles use StraightPath and a zero axis means
// Out.
func PathAlongArc(angle float64, axis Vec3) PathFunc {
	if math.Abs(angle) < straightPathThreshold {
		return StraightPath
	}
	axis = axis.Normalize(Out)
	// cot(angle/2) scales the perpendicular offset from chord midpoint to center.
	var cot float64
	if math.Abs(math.Abs(angle)-math.Pi) > 1e-12 {
		cot = 1 / math.Tan(angle/2)
	}
	return func(start, end Vec3, alpha float64) Vec3 {
		switch alpha {
		case 0:
			return start
		case 1:
			return end
		}
		half := end.Sub(start).Scale(0.5)
		center := start.Add(half).Add(axis.Cross(half).Scale(cot))
		return center.Add(start.Sub(center).RotateAbout(alpha*angle, axis))
	}
}

// ClockwisePath arcs half a turn clockwise.
func ClockwisePath() PathFunc {
	return PathAlongArc(-math.Pi, Out)
}

// CounterclockwisePath arcs half a turn counterclockwise.
func CounterclockwisePath() PathFunc {
	return PathAlongArc(math.Pi, Out)
}
