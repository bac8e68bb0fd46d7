// Package export writes a printable diagram of the field and path.
package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"FieldPath/internal/anim"
	"FieldPath/internal/bezier"
)

const pageMargin = 15.0 // mm

// PathDiagram renders the field square and the path, sampled at the same
// resolution the editor draws with, onto a single A4 page.
func PathDiagram(w io.Writer, sizeInches float64, points []bezier.BezPoint) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	side := pageW - 2*pageMargin
	scale := side / sizeInches

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Rect(pageMargin, pageMargin, side, side, "D")

	pdf.SetDrawColor(40, 90, 200)
	pdf.SetLineWidth(0.6)
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		prev := a.Anchor
		for j := 1; j <= anim.Steps; j++ {
			cur := bezier.Interpolate(a, b, float64(j)/anim.Steps)
			pdf.Line(
				pageMargin+prev.X*scale, pageMargin+prev.Y*scale,
				pageMargin+cur.X*scale, pageMargin+cur.Y*scale,
			)
			prev = cur
		}
	}

	pdf.SetDrawColor(200, 60, 60)
	pdf.SetLineWidth(0.3)
	for _, bp := range points {
		pdf.Circle(pageMargin+bp.Anchor.X*scale, pageMargin+bp.Anchor.Y*scale, 1.2, "D")
	}

	return pdf.Output(w)
}
