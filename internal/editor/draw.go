package editor

import (
	"image/color"

	"FieldPath/internal/anim"
	"FieldPath/internal/bezier"
)

// Draw primitives produced by the core each frame. The render surface maps
// them onto whatever canvas it owns; the core never touches the toolkit.
type (
	// Circle is drawn filled when Fill is set and stroked when
	// StrokeWidth is non-zero. Coordinates are screen space.
	Circle struct {
		Center      bezier.Point
		Radius      float64
		Fill        color.Color
		Stroke      color.Color
		StrokeWidth float64
	}

	// Line is a straight screen-space stroke.
	Line struct {
		From, To bezier.Point
		Color    color.Color
		Width    float64
	}
)

// Frame is everything the renderer needs to draw one frame, in paint
// order: handle bars first, then curve samples, then points, then the
// hover cursor.
type Frame struct {
	Handles []Line
	Samples []Circle
	Points  []Circle
	Cursor  *Circle
}

var (
	colorSample = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	colorAnchor = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
	colorHandle = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	colorRemove = color.NRGBA{R: 221, G: 68, B: 68, A: 255}
	colorLock   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	sampleRadius = 2.0
	anchorRadius = 5.0
	handleRadius = 3.5
	cursorRadius = 5.0
)

// Frame builds the draw list from the state left by the last Step.
func (c *Controller) Frame() Frame {
	var f Frame
	tr := c.Transform()
	pts := c.Path.Points()

	// Revealed samples of every segment.
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		steps := c.Anim.Revealed(b.ID)
		for j := 1; j < steps; j++ {
			t := float64(j) / anim.Steps
			f.Samples = append(f.Samples, Circle{
				Center: tr.ToScreen(bezier.Interpolate(a, b, t)),
				Radius: sampleRadius,
				Fill:   colorSample,
			})
		}
	}

	// Points and their handles. In Trim mode everything from the matched
	// point onward is what a click would cut, and is marked accordingly.
	trimFrom := -1
	if c.mode == ModeTrim && c.pointOK {
		trimFrom = c.pointHit.Index
	}
	for i, bp := range pts {
		anchorFill := colorAnchor
		switch {
		case trimFrom >= 0 && i >= trimFrom:
			anchorFill = colorRemove
		case c.mode == ModeDelete && c.pointOK && c.pointHit.Index == i:
			anchorFill = colorRemove
		case c.dragging && c.selected.Index == i:
			anchorFill = colorLock
		}
		if c.mode != ModeDelete && c.mode != ModeTrim {
			f.Handles = append(f.Handles,
				Line{From: tr.ToScreen(bp.Anchor), To: tr.ToScreen(bp.CP1), Color: colorHandle, Width: 1},
				Line{From: tr.ToScreen(bp.Anchor), To: tr.ToScreen(bp.CP2), Color: colorHandle, Width: 1},
			)
			f.Points = append(f.Points,
				Circle{Center: tr.ToScreen(bp.CP1), Radius: handleRadius, Fill: colorHandle},
				Circle{Center: tr.ToScreen(bp.CP2), Radius: handleRadius, Fill: colorHandle},
			)
		}
		f.Points = append(f.Points, Circle{
			Center: tr.ToScreen(bp.Anchor),
			Radius: anchorRadius,
			Fill:   anchorFill,
		})
	}

	// Hover cursor: Create shows where a click would land, Insert rings
	// the sample a click would split at.
	switch c.mode {
	case ModeCreate:
		if c.hover && !c.pointOK && !c.dragging && c.inField(c.pointer) {
			f.Cursor = &Circle{Center: c.pointer, Radius: cursorRadius, Stroke: colorSample, StrokeWidth: 2}
		}
	case ModeInsert:
		if c.curveOK {
			f.Cursor = &Circle{Center: c.curveHit.Screen, Radius: cursorRadius, Stroke: colorSample, StrokeWidth: 2}
		}
	}
	return f
}
