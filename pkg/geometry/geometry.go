// pkg/geometry/geometry.go
package geometry

import "github.com/chewxy/math32"

// Point is a 2D point in screen coordinates.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float32 {
	return math32.Hypot(p.X-q.X, p.Y-q.Y)
}

// PlaceAtAngle places a point at the same distance from center as p, but at
// the absolute angle angle+baseAngle (radians). Used to position shape
// handles on a rotated axis.
func PlaceAtAngle(p, center Point, angle, baseAngle float32) Point {
	hyp := p.Dist(center)
	return Point{
		X: hyp*math32.Cos(angle+baseAngle) + center.X,
		Y: hyp*math32.Sin(angle+baseAngle) + center.Y,
	}
}

// Centroid returns the arithmetic mean of the points. Returns the zero point
// for an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sx, sy float32
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float32(len(points))
	return Point{X: sx / n, Y: sy / n}
}

// Bounds returns the min and max corners of the axis-aligned box containing
// all points.
func Bounds(points []Point) (min, max Point) {
	if len(points) == 0 {
		return Point{}, Point{}
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X = math32.Min(min.X, p.X)
		min.Y = math32.Min(min.Y, p.Y)
		max.X = math32.Max(max.X, p.X)
		max.Y = math32.Max(max.Y, p.Y)
	}
	return min, max
}

// ScaleAbout moves p away from (or toward) center so that its distance to
// center is multiplied by scale.
func ScaleAbout(p, center Point, scale float32) Point {
	return Point{
		X: (p.X-center.X)*scale + center.X,
		Y: (p.Y-center.Y)*scale + center.Y,
	}
}

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float32) float32 {
	return from + (to-from)*t
}

// NormalizeAngle normalizes an angle to the range [0, 2π).
func NormalizeAngle(angle float32) float32 {
	twoPi := 2 * math32.Pi
	angle = math32.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	return angle
}
