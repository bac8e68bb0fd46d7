package ui

import (
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"FieldPath/internal/bezier"
	"FieldPath/internal/editor"
)

// FieldWidget is the interactive field canvas. It collects Fyne pointer
// events into a per-frame input snapshot, steps the controller once per
// tick, and renders the controller's draw primitives.
type FieldWidget struct {
	widget.BaseWidget

	mu   sync.Mutex
	ctrl *editor.Controller

	background image.Image
	frame      editor.Frame

	// Raw event state folded into the next frame's Input.
	pointer  bezier.Point
	hover    bool
	down     bool
	moved    bool // pointer moved since the press
	clicked  bool
	released bool
	lastTick time.Time

	// OnEdited fires after any frame that may have changed the path, so
	// the toolbar can follow (field size locks once a path exists).
	OnEdited func()
}

var _ fyne.Widget = (*FieldWidget)(nil)
var _ fyne.Draggable = (*FieldWidget)(nil)
var _ desktop.Mouseable = (*FieldWidget)(nil)
var _ desktop.Hoverable = (*FieldWidget)(nil)

func NewFieldWidget(ctrl *editor.Controller) *FieldWidget {
	f := &FieldWidget{ctrl: ctrl, lastTick: time.Now()}
	f.ExtendBaseWidget(f)
	return f
}

// Tick runs one editor frame. Must be called on the Fyne goroutine.
func (f *FieldWidget) Tick() {
	f.mu.Lock()
	now := time.Now()
	in := editor.Input{
		Pointer:  f.pointer,
		Hover:    f.hover,
		Down:     f.down,
		Released: f.released,
		Clicked:  f.clicked,
		Dragged:  f.down && f.moved,
		DT:       now.Sub(f.lastTick),
	}
	f.clicked = false
	f.released = false
	f.lastTick = now

	f.ctrl.Step(in)
	f.frame = f.ctrl.Frame()
	f.mu.Unlock()

	if f.OnEdited != nil && (in.Clicked || in.Dragged) {
		f.OnEdited()
	}
	f.Refresh()
}

// SetBackground swaps the field background image. Passing nil clears it.
func (f *FieldWidget) SetBackground(img image.Image) {
	f.mu.Lock()
	f.background = img
	f.mu.Unlock()
	f.Refresh()
}

func (f *FieldWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	f.mu.Lock()
	f.down = true
	f.moved = false
	f.pointer = toPoint(e.Position)
	f.mu.Unlock()
}

func (f *FieldWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	f.mu.Lock()
	if f.down && !f.moved {
		f.clicked = true
	}
	f.down = false
	f.released = true
	f.pointer = toPoint(e.Position)
	f.mu.Unlock()
}

func (f *FieldWidget) MouseIn(e *desktop.MouseEvent) {
	f.mu.Lock()
	f.hover = true
	f.pointer = toPoint(e.Position)
	f.mu.Unlock()
}

func (f *FieldWidget) MouseMoved(e *desktop.MouseEvent) {
	f.mu.Lock()
	f.hover = true
	f.pointer = toPoint(e.Position)
	f.mu.Unlock()
}

func (f *FieldWidget) MouseOut() {
	f.mu.Lock()
	f.hover = false
	f.mu.Unlock()
}

func (f *FieldWidget) Dragged(e *fyne.DragEvent) {
	f.mu.Lock()
	f.moved = true
	f.hover = true
	f.pointer = toPoint(e.Position)
	f.mu.Unlock()
}

func (f *FieldWidget) DragEnd() {
	f.mu.Lock()
	f.down = false
	f.released = true
	f.mu.Unlock()
}

func (f *FieldWidget) MinSize() fyne.Size {
	side := float32(f.ctrl.Scale())
	return fyne.NewSize(side, side)
}

func (f *FieldWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &fieldRenderer{field: f}
	r.fieldRect = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	return r
}

func toPoint(p fyne.Position) bezier.Point {
	return bezier.Pt(float64(p.X), float64(p.Y))
}

type fieldRenderer struct {
	field     *FieldWidget
	fieldRect *canvas.Rectangle
}

// Objects rebuilds the canvas object list from the last frame's draw
// primitives, the same way the path list is re-rendered wholesale each
// refresh.
func (r *fieldRenderer) Objects() []fyne.CanvasObject {
	r.field.mu.Lock()
	defer r.field.mu.Unlock()

	side := float32(r.field.ctrl.Scale())
	objects := []fyne.CanvasObject{r.fieldRect}
	r.fieldRect.Resize(fyne.NewSize(side, side))

	if r.field.background != nil {
		img := canvas.NewImageFromImage(r.field.background)
		img.FillMode = canvas.ImageFillStretch
		img.Resize(fyne.NewSize(side, side))
		objects = append(objects, img)
	}

	frame := r.field.frame
	for _, l := range frame.Handles {
		line := canvas.NewLine(l.Color)
		line.StrokeWidth = float32(l.Width)
		line.Position1 = fyne.NewPos(float32(l.From.X), float32(l.From.Y))
		line.Position2 = fyne.NewPos(float32(l.To.X), float32(l.To.Y))
		objects = append(objects, line)
	}
	for _, s := range frame.Samples {
		objects = append(objects, circleObject(s))
	}
	for _, p := range frame.Points {
		objects = append(objects, circleObject(p))
	}
	if frame.Cursor != nil {
		objects = append(objects, circleObject(*frame.Cursor))
	}
	return objects
}

func circleObject(c editor.Circle) *canvas.Circle {
	obj := canvas.NewCircle(c.Fill)
	if c.StrokeWidth > 0 {
		obj.StrokeColor = c.Stroke
		obj.StrokeWidth = float32(c.StrokeWidth)
	}
	obj.Position1 = fyne.NewPos(float32(c.Center.X-c.Radius), float32(c.Center.Y-c.Radius))
	obj.Position2 = fyne.NewPos(float32(c.Center.X+c.Radius), float32(c.Center.Y+c.Radius))
	return obj
}

func (r *fieldRenderer) Layout(size fyne.Size) {
	side := float32(r.field.ctrl.Scale())
	r.fieldRect.Resize(fyne.NewSize(side, side))
}

func (r *fieldRenderer) MinSize() fyne.Size {
	return r.field.MinSize()
}

func (r *fieldRenderer) Refresh() {
	canvas.Refresh(r.field)
}

func (r *fieldRenderer) Destroy() {}
