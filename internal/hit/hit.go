// Package hit answers the two pointer queries the editor runs each frame:
// which drawn point, if any, the pointer is over, and which revealed curve
// sample is nearest to it.
package hit

import (
	"math"

	"FieldPath/internal/anim"
	"FieldPath/internal/bezier"
)

// PointRadius is the screen-space hit radius around a drawn point, in
// pixels.
const PointRadius = 8.0

const pointRadiusSq = PointRadius * PointRadius

// PointMatch identifies the point the pointer is over: the BezPoint index
// and which of its three parts matched.
type PointMatch struct {
	Index int
	Part  bezier.Part
}

// HitPoint scans points in path order and returns the first one whose hit
// circle contains the pointer, so at most one point is ever reported even
// when circles overlap on screen. Anchors are tested before handles;
// anchorsOnly skips the handles entirely (Delete and Trim ignore them).
func HitPoint(points []bezier.BezPoint, tr bezier.Transform, pointer bezier.Point, anchorsOnly bool) (PointMatch, bool) {
	parts := []bezier.Part{bezier.PartAnchor, bezier.PartCP1, bezier.PartCP2}
	if anchorsOnly {
		parts = parts[:1]
	}
	for i, bp := range points {
		for _, part := range parts {
			if tr.ToScreen(bp.PointFor(part)).DistanceSquared(pointer) <= pointRadiusSq {
				return PointMatch{Index: i, Part: part}, true
			}
		}
	}
	return PointMatch{}, false
}

// CurveMatch is the winning sample of a curve query: the index of the
// segment's lower point, the sample's screen position, and the curve slope
// there. HasSlope is false when the tangent at the sample is vertical.
type CurveMatch struct {
	Segment  int
	Screen   bezier.Point
	Slope    float64
	HasSlope bool
}

// HitCurve samples every segment at the fixed resolution, bounded by how
// many of its samples the reveal animation has drawn so far, and returns
// the sample nearest to the pointer across the whole path. Unrevealed
// curve is not a candidate.
func HitCurve(points []bezier.BezPoint, tr bezier.Transform, pointer bezier.Point, revealed func(id string) int) (CurveMatch, bool) {
	var best CurveMatch
	bestDist := math.MaxFloat64
	found := false
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		steps := revealed(b.ID)
		for j := 1; j < steps; j++ {
			t := float64(j) / anim.Steps
			sp := tr.ToScreen(bezier.Interpolate(a, b, t))
			d := sp.DistanceSquared(pointer)
			if d < bestDist {
				bestDist = d
				slope, ok := bezier.InterpolateSlope(a, b, t)
				best = CurveMatch{Segment: i, Screen: sp, Slope: slope, HasSlope: ok}
				found = true
			}
		}
	}
	return best, found
}
