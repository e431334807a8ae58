package stroke

import (
	"math"

	"github.com/skishore/inkstone/internal/models"
)

type Point = models.Point
type Polyline = models.Polyline

func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func PathLength(points Polyline) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += Distance(points[i-1], points[i])
	}
	return d
}

// Angle is the direction of the chord from the first to the last point.
func Angle(points Polyline) float64 {
	first, last := points[0], points[len(points)-1]
	return math.Atan2(last.Y-first.Y, last.X-first.X)
}

// AngleDiff returns the absolute difference of two angles, folded into [0, pi].
func AngleDiff(a, b float64) float64 {
	diff := math.Abs(a - b)
	return math.Min(diff, 2*math.Pi-diff)
}

// Rect is an axis-aligned bounding box. T is the minimum y, B the maximum.
type Rect struct {
	L, R, T, B float64
}

func (r Rect) TL() Point { return Point{X: r.L, Y: r.T} }
func (r Rect) TR() Point { return Point{X: r.R, Y: r.T} }
func (r Rect) BL() Point { return Point{X: r.L, Y: r.B} }
func (r Rect) BR() Point { return Point{X: r.R, Y: r.B} }

func (r Rect) Midpoint() Point {
	return Point{X: (r.L + r.R) / 2, Y: (r.T + r.B) / 2}
}

func (r Rect) Diagonal() float64 {
	return math.Hypot(r.R-r.L, r.B-r.T)
}

func Bounds(points Polyline) Rect {
	r := Rect{L: points[0].X, R: points[0].X, T: points[0].Y, B: points[0].Y}
	for _, p := range points {
		if p.X < r.L {
			r.L = p.X
		}
		if p.X > r.R {
			r.R = p.X
		}
		if p.Y < r.T {
			r.T = p.Y
		}
		if p.Y > r.B {
			r.B = p.Y
		}
	}
	return r
}

func Reverse(points Polyline) Polyline {
	reversed := make(Polyline, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}

// Resample walks the polyline and emits a point every interval units of arc
// length, starting with the first point. The input is not modified.
func Resample(points Polyline, interval float64) Polyline {
	if len(points) == 0 || interval <= 0 {
		return append(Polyline(nil), points...)
	}
	points = append(Polyline(nil), points...)
	D := 0.0
	newPoints := Polyline{points[0]}
	for i := 1; i < len(points); i++ {
		d := Distance(points[i-1], points[i])
		if D+d >= interval {
			t := (interval - D) / d
			q := Point{
				X: points[i-1].X + t*(points[i].X-points[i-1].X),
				Y: points[i-1].Y + t*(points[i].Y-points[i-1].Y),
			}
			newPoints = append(newPoints, q)
			points = append(points[:i], append(Polyline{q}, points[i:]...)...)
			D = 0
		} else {
			D += d
		}
	}
	return newPoints
}

// IsTap reports whether every point lies within minDistance of the last one,
// i.e. the input was a tap rather than a stroke.
func IsTap(points Polyline, minDistance float64) bool {
	if len(points) < 2 {
		return true
	}
	last := points[len(points)-1]
	for _, p := range points {
		if Distance(p, last) > minDistance {
			return false
		}
	}
	return true
}
