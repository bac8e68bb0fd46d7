// Package path implements the ordered sequence of Bezier points that makes
// up a motion path, along with the structural edits the editor performs on
// it. All index-taking operations treat an out-of-range index as a no-op.
package path

import (
	"FieldPath/internal/bezier"

	"github.com/google/uuid"
)

// firstHandleOffset is the symmetric handle half-length, in field inches,
// given to the very first point of a path.
const firstHandleOffset = 10.0

// First builds the opening point of a path: fixed symmetric handles either
// side of the anchor.
func First(anchor bezier.Point) bezier.BezPoint {
	return bezier.BezPoint{
		ID:     uuid.NewString(),
		Anchor: anchor,
		CP1:    bezier.Pt(anchor.X-firstHandleOffset, anchor.Y),
		CP2:    bezier.Pt(anchor.X+firstHandleOffset, anchor.Y),
	}
}

// Smooth builds a point whose incoming handle is the midpoint of the
// previous point's outgoing handle and the new anchor, with the outgoing
// handle mirrored through the anchor. This keeps the tangent continuous at
// the join.
func Smooth(prevCP2, anchor bezier.Point) bezier.BezPoint {
	cp1 := prevCP2.Lerp(anchor, 0.5)
	return bezier.BezPoint{
		ID:     uuid.NewString(),
		Anchor: anchor,
		CP1:    cp1,
		CP2:    anchor.Reflect(cp1),
	}
}

// Path is an ordered sequence of BezPoints; index 0 is the start. Segment i
// runs between points i and i+1, so a path shorter than 2 has no drawable
// segments.
type Path struct {
	points []bezier.BezPoint
}

func New() *Path {
	return &Path{points: make([]bezier.BezPoint, 0)}
}

func (p *Path) Len() int {
	return len(p.points)
}

// At returns the point at index i.
func (p *Path) At(i int) (bezier.BezPoint, bool) {
	if i < 0 || i >= len(p.points) {
		return bezier.BezPoint{}, false
	}
	return p.points[i], true
}

// Last returns the final point of the path.
func (p *Path) Last() (bezier.BezPoint, bool) {
	return p.At(len(p.points) - 1)
}

// Points returns a copy of the point sequence.
func (p *Path) Points() []bezier.BezPoint {
	out := make([]bezier.BezPoint, len(p.points))
	copy(out, p.points)
	return out
}

// Append adds bp to the end of the path.
func (p *Path) Append(bp bezier.BezPoint) {
	p.points = append(p.points, bp)
}

// AppendAnchor appends a new point at anchor, choosing the first-point
// handle rule on an empty path and the smooth-join rule otherwise, and
// returns the point it added.
func (p *Path) AppendAnchor(anchor bezier.Point) bezier.BezPoint {
	var bp bezier.BezPoint
	if prev, ok := p.Last(); ok {
		bp = Smooth(prev.CP2, anchor)
	} else {
		bp = First(anchor)
	}
	p.Append(bp)
	return bp
}

// InsertAfter places bp at index i+1, shifting the tail up. Reports whether
// the path changed.
func (p *Path) InsertAfter(i int, bp bezier.BezPoint) bool {
	if i < 0 || i >= len(p.points) {
		return false
	}
	p.points = append(p.points, bezier.BezPoint{})
	copy(p.points[i+2:], p.points[i+1:])
	p.points[i+1] = bp
	return true
}

// RemoveAt deletes the point at index i, preserving the order of the rest.
func (p *Path) RemoveAt(i int) bool {
	if i < 0 || i >= len(p.points) {
		return false
	}
	p.points = append(p.points[:i], p.points[i+1:]...)
	return true
}

// TruncateBefore keeps points [0,i) and drops the rest.
func (p *Path) TruncateBefore(i int) bool {
	if i < 0 || i > len(p.points) {
		return false
	}
	p.points = p.points[:i]
	return true
}

// SetPoint overwrites the coordinates of one part of the point at index i.
func (p *Path) SetPoint(i int, part bezier.Part, pt bezier.Point) bool {
	if i < 0 || i >= len(p.points) {
		return false
	}
	switch part {
	case bezier.PartCP1:
		p.points[i].CP1 = pt
	case bezier.PartCP2:
		p.points[i].CP2 = pt
	default:
		p.points[i].Anchor = pt
	}
	return true
}

// SetAnchor overwrites the anchor coordinates of the point at index i.
func (p *Path) SetAnchor(i int, pt bezier.Point) bool {
	return p.SetPoint(i, bezier.PartAnchor, pt)
}

// Clear empties the path.
func (p *Path) Clear() {
	p.points = p.points[:0]
}
