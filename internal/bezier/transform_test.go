package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformScale(t *testing.T) {
	tr := NewTransform(500, 100, Pt(0, 0))
	assert.Equal(t, 5.0, tr.Scale)
	assert.Equal(t, Pt(250, 250), tr.ToScreen(Pt(50, 50)))
}

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransform(720, 140.5, Pt(12, 34))
	for _, p := range []Point{Pt(0, 0), Pt(140.5, 140.5), Pt(17.25, 99.9), Pt(-4, 3)} {
		back := tr.FromScreen(tr.ToScreen(p))
		assert.InDelta(t, p.X, back.X, 1e-12)
		assert.InDelta(t, p.Y, back.Y, 1e-12)
	}
}

func TestTransformOrigin(t *testing.T) {
	tr := NewTransform(100, 100, Pt(50, 60))
	assert.Equal(t, Pt(50, 60), tr.ToScreen(Pt(0, 0)))
	assert.Equal(t, Pt(0, 0), tr.FromScreen(Pt(50, 60)))
}
