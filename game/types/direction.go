package types

import "math"

// NormalizeAngle wraps an angle into [-Pi, Pi]
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// AngleTo returns the heading pointing from one position to another
func AngleTo(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// AngleDiff returns the signed smallest rotation taking from onto to
func AngleDiff(to, from float64) float64 {
	return NormalizeAngle(to - from)
}

// ReflectX mirrors a heading off a vertical wall
func ReflectX(angle float64) float64 {
	return NormalizeAngle(math.Pi - angle)
}

// ReflectY mirrors a heading off a horizontal wall
func ReflectY(angle float64) float64 {
	return NormalizeAngle(-angle)
}

// Reverse turns a heading around
func Reverse(angle float64) float64 {
	return NormalizeAngle(angle + math.Pi)
}

// CutsCorner reports whether a diagonal step from one cell to the next
// squeezes between two blocked orthogonal neighbours.
func CutsCorner(from, to Point, blocked func(Point) bool) bool {
	if from.X == to.X || from.Y == to.Y {
		return false
	}
	return blocked(Point{X: to.X, Y: from.Y}) && blocked(Point{X: from.X, Y: to.Y})
}

// Fan returns n headings spread evenly over [heading-spread, heading+spread].
// A single direction looks straight ahead.
func Fan(heading, spread float64, n int) []float64 {
	if n <= 1 {
		return []float64{NormalizeAngle(heading)}
	}
	out := make([]float64, n)
	step := 2 * spread / float64(n-1)
	for i := range out {
		out[i] = NormalizeAngle(heading - spread + float64(i)*step)
	}
	return out
}
