package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FieldPath/internal/bezier"
)

func fourPointPath() *Path {
	p := New()
	p.Append(First(bezier.Pt(0, 0)))
	for _, a := range []bezier.Point{{X: 30, Y: 10}, {X: 60, Y: 40}, {X: 90, Y: 20}} {
		prev, _ := p.Last()
		p.Append(Smooth(prev.CP2, a))
	}
	return p
}

func TestFirstHandles(t *testing.T) {
	bp := First(bezier.Pt(42, 17))
	assert.Equal(t, bezier.Pt(42, 17), bp.Anchor)
	assert.Equal(t, bezier.Pt(32, 17), bp.CP1)
	assert.Equal(t, bezier.Pt(52, 17), bp.CP2)
	assert.NotEmpty(t, bp.ID)
}

func TestSmoothHandles(t *testing.T) {
	prevCP2 := bezier.Pt(10, 0)
	anchor := bezier.Pt(50, 50)
	bp := Smooth(prevCP2, anchor)
	assert.Equal(t, bezier.Pt(30, 25), bp.CP1)
	// cp2 is cp1 reflected through the anchor, keeping the join smooth.
	assert.Equal(t, bezier.Pt(70, 75), bp.CP2)
	assert.Equal(t, anchor, bp.Anchor)
}

func TestSmoothPointIdentitiesDiffer(t *testing.T) {
	a := Smooth(bezier.Pt(0, 0), bezier.Pt(1, 1))
	b := Smooth(bezier.Pt(0, 0), bezier.Pt(1, 1))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAppendAnchorRules(t *testing.T) {
	p := New()
	first := p.AppendAnchor(bezier.Pt(5, 5))
	assert.Equal(t, bezier.Pt(-5, 5), first.CP1)
	assert.Equal(t, bezier.Pt(15, 5), first.CP2)

	second := p.AppendAnchor(bezier.Pt(25, 25))
	assert.Equal(t, first.CP2.Lerp(bezier.Pt(25, 25), 0.5), second.CP1)
	assert.Equal(t, bezier.Pt(25, 25).Reflect(second.CP1), second.CP2)
	assert.Equal(t, 2, p.Len())
}

func TestInsertAfter(t *testing.T) {
	p := fourPointPath()
	before := p.Points()
	inserted := Smooth(before[1].CP2, bezier.Pt(45, 25))

	require.True(t, p.InsertAfter(1, inserted))
	assert.Equal(t, 5, p.Len())

	after := p.Points()
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[1], after[1])
	assert.Equal(t, inserted, after[2])
	assert.Equal(t, before[2], after[3])
	assert.Equal(t, before[3], after[4])
}

func TestRemoveAt(t *testing.T) {
	p := fourPointPath()
	before := p.Points()

	require.True(t, p.RemoveAt(1))
	assert.Equal(t, 3, p.Len())

	after := p.Points()
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[1])
	assert.Equal(t, before[3], after[2])
}

func TestTruncateBefore(t *testing.T) {
	for i := 0; i <= 4; i++ {
		p := fourPointPath()
		before := p.Points()
		require.True(t, p.TruncateBefore(i), "i=%d", i)
		assert.Equal(t, i, p.Len(), "i=%d", i)
		assert.Equal(t, before[:i], p.Points(), "i=%d", i)
	}
}

func TestIndexValidation(t *testing.T) {
	p := fourPointPath()
	bp := First(bezier.Pt(0, 0))

	assert.False(t, p.InsertAfter(-1, bp))
	assert.False(t, p.InsertAfter(4, bp))
	assert.False(t, p.RemoveAt(-1))
	assert.False(t, p.RemoveAt(4))
	assert.False(t, p.TruncateBefore(-1))
	assert.False(t, p.TruncateBefore(5))
	assert.False(t, p.SetAnchor(4, bezier.Pt(1, 1)))
	assert.Equal(t, 4, p.Len())

	empty := New()
	assert.False(t, empty.RemoveAt(0))
	assert.False(t, empty.InsertAfter(0, bp))
	assert.True(t, empty.TruncateBefore(0))
	assert.Equal(t, 0, empty.Len())
}

func TestSetPoint(t *testing.T) {
	p := fourPointPath()
	require.True(t, p.SetPoint(2, bezier.PartAnchor, bezier.Pt(61, 41)))
	require.True(t, p.SetPoint(2, bezier.PartCP1, bezier.Pt(55, 35)))
	require.True(t, p.SetPoint(2, bezier.PartCP2, bezier.Pt(67, 47)))

	bp, ok := p.At(2)
	require.True(t, ok)
	assert.Equal(t, bezier.Pt(61, 41), bp.Anchor)
	assert.Equal(t, bezier.Pt(55, 35), bp.CP1)
	assert.Equal(t, bezier.Pt(67, 47), bp.CP2)
}

func TestPointsIsACopy(t *testing.T) {
	p := fourPointPath()
	pts := p.Points()
	pts[0].Anchor = bezier.Pt(999, 999)
	bp, _ := p.At(0)
	assert.Equal(t, bezier.Pt(0, 0), bp.Anchor)
}
