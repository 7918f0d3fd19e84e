// internal/shape/draw.go
package shape

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-painter/pkg/geometry"
)

const (
	ellipseSegments = 64
	dashLength      = 4.0
)

var whiteImage = ebiten.NewImage(1, 1)

func init() {
	whiteImage.Fill(color.White)
}

func colorScale(clr color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff,
		float32(cb) / 0xffff, float32(ca) / 0xffff
}

// strokePath strokes the path onto dst using the triangle technique, so that
// widths below one pixel and joined polylines render consistently.
func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	op := &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, clr, ebiten.FillRuleFillAll)
}

// fillPath fills the area enclosed by the path. The non-zero rule keeps
// self-overlapping freeform outlines filled solidly.
func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr, ebiten.FillRuleNonZero)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color, rule ebiten.FillRule) {
	r, g, b, a := colorScale(clr)
	for i := range vs {
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

// drawHandle draws a grab point.
func drawHandle(dst *ebiten.Image, p geometry.Point, size float32, clr color.Color) {
	vector.DrawFilledCircle(dst, p.X, p.Y, size, clr, true)
}

// dashedLine draws the segment from a to b as 4px dashes. Used for the
// closing edge of an unfinished polygon.
func dashedLine(dst *ebiten.Image, a, b geometry.Point, width float32, clr color.Color) {
	total := a.Dist(b)
	if total <= 0 {
		return
	}
	step := dashLength / total
	for t := float32(0); t < 1; t += 2 * step {
		end := math32.Min(t+step, 1)
		x0 := geometry.Lerp(a.X, b.X, t)
		y0 := geometry.Lerp(a.Y, b.Y, t)
		x1 := geometry.Lerp(a.X, b.X, end)
		y1 := geometry.Lerp(a.Y, b.Y, end)
		vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
	}
}

// appendEllipsePath appends a rotated ellipse outline to the path.
func appendEllipsePath(path *vector.Path, center geometry.Point, rx, ry, angle float32) {
	sin, cos := math32.Sincos(angle)
	for i := 0; i <= ellipseSegments; i++ {
		theta := 2 * math32.Pi * float32(i) / ellipseSegments
		x := rx * math32.Cos(theta)
		y := ry * math32.Sin(theta)
		px := center.X + x*cos - y*sin
		py := center.Y + x*sin + y*cos
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
}
