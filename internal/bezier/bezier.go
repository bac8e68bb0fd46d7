// Package bezier holds the cubic Bezier math the editor is built on.
// All coordinates here are field-space inches unless a Transform says
// otherwise.
package bezier

import "math"

// slopeEpsilon bounds the horizontal derivative below which a tangent is
// treated as vertical.
const slopeEpsilon = 1e-9

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp linearly interpolates between two points.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p−o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul scales both coordinates by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (p Point) DistanceSquared(o Point) float64 {
	x := p.X - o.X
	y := p.Y - o.Y
	return x*x + y*y
}

// Reflect returns the point-reflection of o through p.
func (p Point) Reflect(o Point) Point {
	return Point{X: 2*p.X - o.X, Y: 2*p.Y - o.Y}
}

// Part names one of the three points a BezPoint carries.
type Part int

const (
	PartAnchor Part = iota
	PartCP1
	PartCP2
)

// BezPoint is one path point: the on-curve anchor plus the two control
// points shaping the tangent there. CP1 belongs to the segment arriving at
// the anchor, CP2 to the segment leaving it. ID is a stable identity used
// as the animation key of the segment that ends at this anchor.
type BezPoint struct {
	ID     string
	Anchor Point
	CP1    Point
	CP2    Point
}

// PointFor returns the named part.
func (bp BezPoint) PointFor(part Part) Point {
	switch part {
	case PartCP1:
		return bp.CP1
	case PartCP2:
		return bp.CP2
	default:
		return bp.Anchor
	}
}

// Interpolate evaluates the cubic Bezier segment between a and b at
// t in [0,1]. The control polygon is (a.Anchor, a.CP2, b.CP1, b.Anchor),
// so t=0 lands exactly on a.Anchor and t=1 exactly on b.Anchor.
func Interpolate(a, b BezPoint, t float64) Point {
	p0, p1, p2, p3 := a.Anchor, a.CP2, b.CP1, b.Anchor
	mt := 1.0 - t
	w0 := mt * mt * mt
	w1 := 3.0 * mt * mt * t
	w2 := 3.0 * mt * t * t
	w3 := t * t * t
	return Point{
		X: w0*p0.X + w1*p1.X + w2*p2.X + w3*p3.X,
		Y: w0*p0.Y + w1*p1.Y + w2*p2.Y + w3*p3.Y,
	}
}

// InterpolateSlope returns dy/dx of the same cubic at t. The second result
// is false when the tangent is vertical, i.e. the horizontal derivative
// component is numerically zero.
func InterpolateSlope(a, b BezPoint, t float64) (float64, bool) {
	d0 := a.CP2.Sub(a.Anchor)
	d1 := b.CP1.Sub(a.CP2)
	d2 := b.Anchor.Sub(b.CP1)
	mt := 1.0 - t
	w0 := 3.0 * mt * mt
	w1 := 6.0 * mt * t
	w2 := 3.0 * t * t
	dx := w0*d0.X + w1*d1.X + w2*d2.X
	dy := w0*d0.Y + w1*d1.Y + w2*d2.Y
	if math.Abs(dx) < slopeEpsilon {
		return 0, false
	}
	return dy / dx, true
}
