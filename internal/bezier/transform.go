package bezier

// Transform maps field-space inches to screen-space pixels. Scale is
// pixels per inch, Origin the screen position of the field's corner.
type Transform struct {
	Scale  float64
	Origin Point
}

// NewTransform builds the field-to-screen map for a field of sizeInches
// rendered as a scalePx square at origin.
func NewTransform(scalePx int, sizeInches float64, origin Point) Transform {
	return Transform{
		Scale:  float64(scalePx) / sizeInches,
		Origin: origin,
	}
}

// ToScreen maps a field-space point to screen space.
func (tr Transform) ToScreen(p Point) Point {
	return Point{
		X: tr.Origin.X + p.X*tr.Scale,
		Y: tr.Origin.Y + p.Y*tr.Scale,
	}
}

// FromScreen is the exact inverse of ToScreen.
func (tr Transform) FromScreen(s Point) Point {
	return Point{
		X: (s.X - tr.Origin.X) / tr.Scale,
		Y: (s.Y - tr.Origin.Y) / tr.Scale,
	}
}
