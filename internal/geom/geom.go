// Package geom holds the float64 2D math the simulation runs on. Headings are
// radians measured counter-clockwise from +X; a heading h faces (cos h, sin h).
package geom

import "math"

type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{x, y} }

func (a Vec2) Add(b Vec2) Vec2        { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2        { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2   { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) LenSq() float64         { return a.X*a.X + a.Y*a.Y }
func (a Vec2) Len() float64           { return math.Sqrt(a.LenSq()) }
func (a Vec2) Dist(b Vec2) float64    { return b.Sub(a).Len() }
func (a Vec2) IsZero() bool           { return a.X == 0 && a.Y == 0 }
func (a Vec2) Heading() float64       { return math.Atan2(a.Y, a.X) }
func (a Vec2) Equal(b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// Normalize returns the unit vector, or zero for a zero vector.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	inv := 1 / l
	return Vec2{a.X * inv, a.Y * inv}
}

// FromHeading returns the unit vector for heading h.
func FromHeading(h float64) Vec2 {
	return Vec2{math.Cos(h), math.Sin(h)}
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// AngleDiff returns the signed shortest rotation from a to b.
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// LerpAngle interpolates along the shortest arc. t is clamped to [0, 1].
func LerpAngle(from, to, t float64) float64 {
	t = Clamp(t, 0, 1)
	return NormalizeAngle(from + AngleDiff(from, to)*t)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Deg2Rad(d float64) float64 { return d * math.Pi / 180 }
func Rad2Deg(r float64) float64 { return r * 180 / math.Pi }
