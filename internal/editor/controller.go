package editor

import (
	"log"
	"time"

	"github.com/google/uuid"

	"FieldPath/internal/anim"
	"FieldPath/internal/bezier"
	"FieldPath/internal/hit"
	"FieldPath/internal/path"
	"FieldPath/internal/storage"
)

// Input is the per-frame snapshot of pointer and button state the
// controller consumes. Pointer coordinates are screen space.
type Input struct {
	Pointer  bezier.Point
	Hover    bool // pointer is over the field
	Down     bool // primary button held
	Released bool // primary button released this frame
	Clicked  bool // press and release without drag
	Dragged  bool // pointer moved while the button was held
	DT       time.Duration
}

// Controller owns the cursor mode and applies at most one structural edit
// per frame to the path, using the frame's hit-test results. It is
// single-threaded: one Step per rendered frame.
type Controller struct {
	Path *path.Path
	Anim *anim.Scheduler

	size  float64 // field edge, inches
	scale int     // field edge, pixels

	mode   CursorMode
	origin bezier.Point

	// Drag lock: at most one point is owned by an active drag.
	selected hit.PointMatch
	dragging bool

	// Results of this frame's hit queries, reused by Frame.
	pointHit hit.PointMatch
	pointOK  bool
	curveHit hit.CurveMatch
	curveOK  bool
	pointer  bezier.Point
	hover    bool
}

func NewController() *Controller {
	c := &Controller{
		Path: path.New(),
		Anim: anim.NewScheduler(),
	}
	c.Load(storage.Default())
	return c
}

func (c *Controller) Mode() CursorMode { return c.mode }

// ToggleMode applies the toggle semantics for the mode buttons and keys.
func (c *Controller) ToggleMode(m CursorMode) {
	c.mode = c.mode.Toggle(m)
}

func (c *Controller) Size() float64 { return c.size }

// SetSize changes the field size. Rejected once the path exists, since the
// points are stored in field inches.
func (c *Controller) SetSize(size float64) bool {
	if size <= 0 || c.Path.Len() > 0 {
		return false
	}
	c.size = size
	return true
}

func (c *Controller) Scale() int { return c.scale }

func (c *Controller) SetScale(scale int) bool {
	if scale <= 0 {
		return false
	}
	c.scale = scale
	return true
}

// SetOrigin tells the controller where the field square sits on screen.
func (c *Controller) SetOrigin(o bezier.Point) { c.origin = o }

// Transform is the current field-to-screen map.
func (c *Controller) Transform() bezier.Transform {
	return bezier.NewTransform(c.scale, c.size, c.origin)
}

// Dragging reports whether a point is currently locked by a drag.
func (c *Controller) Dragging() bool { return c.dragging }

// Step runs one frame: advances the reveal animation, performs the frame's
// hit queries, maintains the drag lock, and dispatches at most one edit if
// the frame carried a click.
func (c *Controller) Step(in Input) {
	c.Anim.Advance(in.DT)
	c.pointer, c.hover = in.Pointer, in.Hover
	tr := c.Transform()
	pts := c.Path.Points()

	// Hit queries run at most once per frame. The curve query exists only
	// for Insert mode; Delete and Trim consider anchors only.
	c.curveOK = false
	if c.mode == ModeInsert && in.Hover {
		c.curveHit, c.curveOK = hit.HitCurve(pts, tr, in.Pointer, c.Anim.Revealed)
	}
	anchorsOnly := c.mode == ModeDelete || c.mode == ModeTrim
	c.pointOK = false
	if in.Hover {
		c.pointHit, c.pointOK = hit.HitPoint(pts, tr, in.Pointer, anchorsOnly)
	}

	// Drag lock: acquired on a press over a point in any mode that drags,
	// released unconditionally when the button comes up.
	if in.Down && !anchorsOnly && !c.dragging && c.pointOK {
		c.selected = c.pointHit
		c.dragging = true
	}
	if in.Released {
		c.dragging = false
	}

	if in.Clicked {
		c.dispatchClick(in)
	}

	if in.Dragged && in.Hover && c.dragging {
		c.dragTo(in.Pointer, tr)
	}
}

// dispatchClick applies the mode-dependent edit for a click. One edit per
// click; anything that does not line up is a silent no-op.
func (c *Controller) dispatchClick(in Input) {
	switch c.mode {
	case ModeCreate:
		if c.pointOK || !in.Hover || !c.inField(in.Pointer) {
			return
		}
		anchor := c.Transform().FromScreen(in.Pointer)
		bp := c.Path.AppendAnchor(anchor)
		if c.Path.Len() > 1 {
			c.Anim.Seed(bp.ID)
		}
	case ModeInsert:
		// Requires a revealed sample with a usable slope; vertical
		// tangents are skipped, not errors.
		if !c.curveOK || !c.curveHit.HasSlope {
			return
		}
		lower, ok := c.Path.At(c.curveHit.Segment)
		if !ok {
			return
		}
		anchor := c.Transform().FromScreen(c.curveHit.Screen)
		bp := path.Smooth(lower.CP2, anchor)
		if c.Path.InsertAfter(c.curveHit.Segment, bp) {
			c.Anim.Seed(bp.ID)
		}
	case ModeDelete:
		if !c.pointOK {
			return
		}
		if bp, ok := c.Path.At(c.pointHit.Index); ok {
			c.Anim.Drop(bp.ID)
		}
		c.Path.RemoveAt(c.pointHit.Index)
		c.releaseStaleLock()
	case ModeTrim:
		if !c.pointOK {
			return
		}
		for _, bp := range c.Path.Points()[c.pointHit.Index:] {
			c.Anim.Drop(bp.ID)
		}
		c.Path.TruncateBefore(c.pointHit.Index)
		c.releaseStaleLock()
	}
}

// dragTo overwrites the locked point's coordinates with the pointer's
// field-space position. A lock whose point no longer exists is treated as
// released; a failed write skips the frame's update rather than failing
// the frame.
func (c *Controller) dragTo(pointer bezier.Point, tr bezier.Transform) {
	if c.selected.Index >= c.Path.Len() {
		log.Printf("editor: locked point %d is gone, releasing drag lock", c.selected.Index)
		c.dragging = false
		return
	}
	if !c.Path.SetPoint(c.selected.Index, c.selected.Part, tr.FromScreen(pointer)) {
		log.Printf("editor: failed to update point %d", c.selected.Index)
	}
}

// releaseStaleLock drops the drag lock if a structural edit removed the
// point it referenced. Not reachable from the documented mode set, since
// Delete and Trim never drag, but defended against regardless.
func (c *Controller) releaseStaleLock() {
	if c.dragging && c.selected.Index >= c.Path.Len() {
		log.Printf("editor: locked point %d removed mid-drag, releasing lock", c.selected.Index)
		c.dragging = false
	}
}

// inField reports whether a screen point lies on the field square.
func (c *Controller) inField(p bezier.Point) bool {
	return p.X >= c.origin.X && p.X <= c.origin.X+float64(c.scale) &&
		p.Y >= c.origin.Y && p.Y <= c.origin.Y+float64(c.scale)
}

// Clear empties the path and all animation state.
func (c *Controller) Clear() {
	c.Path.Clear()
	c.Anim.Reset()
	c.dragging = false
}

// Load replaces the editor state with a persisted record. Mode, selection
// and animation state always reset to their defaults; every point gets a
// fresh identity.
func (c *Controller) Load(rec storage.Record) {
	c.size = rec.Size
	c.scale = rec.Scale
	c.mode = ModeDefault
	c.dragging = false
	c.Path.Clear()
	c.Anim.Reset()
	for _, pr := range rec.Points {
		c.Path.Append(bezier.BezPoint{
			ID:     uuid.NewString(),
			Anchor: bezier.Pt(pr.X, pr.Y),
			CP1:    bezier.Pt(pr.CP1X, pr.CP1Y),
			CP2:    bezier.Pt(pr.CP2X, pr.CP2Y),
		})
	}
}

// Snapshot captures the persistable state. Mode, selection and background
// are excluded.
func (c *Controller) Snapshot() storage.Record {
	rec := storage.Record{Size: c.size, Scale: c.scale}
	for _, bp := range c.Path.Points() {
		rec.Points = append(rec.Points, storage.PointRecord{
			X: bp.Anchor.X, Y: bp.Anchor.Y,
			CP1X: bp.CP1.X, CP1Y: bp.CP1.Y,
			CP2X: bp.CP2.X, CP2Y: bp.CP2.Y,
		})
	}
	return rec
}
