// internal/shape/ellipse.go
package shape

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-painter/internal/config"
	"go-painter/pkg/geometry"
)

// Ellipse is an ellipse with a handle on each axis. Dragging a handle both
// rotates the ellipse and resizes the corresponding radius; the x-axis
// handle is also the selection point.
type Ellipse struct {
	base
	center  geometry.Point
	radiusX float32
	radiusY float32
	angle   float32 // radians, counter-clockwise rotation of the x-axis
}

// NewEllipse creates an unfinished ellipse with the default radii. Like a
// circle it is valid and ready to finish as soon as it is placed.
func NewEllipse(style Style) *Ellipse {
	return &Ellipse{
		base: base{
			variant: VariantEllipse,
			style:   style,
			valid:   true,
			ready:   true,
		},
		radiusX: config.DefaultEllipseRadiusX,
		radiusY: config.DefaultEllipseRadiusY,
	}
}

func (e *Ellipse) Center() geometry.Point { return e.center }
func (e *Ellipse) RadiusX() float32       { return e.radiusX }
func (e *Ellipse) RadiusY() float32       { return e.radiusY }
func (e *Ellipse) Angle() float32         { return e.angle }

// handleX is the selection point at the tip of the rotated x-axis.
func (e *Ellipse) handleX() geometry.Point {
	p := geometry.Pt(e.center.X+e.radiusX, e.center.Y)
	return geometry.PlaceAtAngle(p, e.center, e.angle, 0)
}

// handleY is the secondary handle at the tip of the rotated y-axis.
func (e *Ellipse) handleY() geometry.Point {
	p := geometry.Pt(e.center.X, e.center.Y+e.radiusY)
	return geometry.PlaceAtAngle(p, e.center, e.angle, math32.Pi/2)
}

func (e *Ellipse) HandleTouchDown(t Touch) {
	if !e.finished {
		e.center = t.Pos
	}
}

func (e *Ellipse) HandleTouchMove(t Touch) {
	if !e.finished || !e.interacting {
		return
	}

	px, py := t.Prev.X-e.center.X, t.Prev.Y-e.center.Y
	x, y := t.Pos.X-e.center.X, t.Pos.Y-e.center.Y

	// the touch manipulates whichever axis handle it is closer to
	d1, d2 := e.handleDists(t.Pos)
	angle := e.angle
	if d1 > d2 {
		angle += math32.Pi / 2
	}

	rrx, rry := math32.Cos(angle), math32.Sin(angle)
	prevR := px*rrx + py*rry
	r := x*rrx + y*rry
	if r <= config.MinShapeRadius || prevR <= config.MinShapeRadius {
		return
	}

	prevTheta := math32.Atan2(py, px)
	theta := math32.Atan2(y, x)
	e.angle = geometry.NormalizeAngle(e.angle + theta - prevTheta)

	if d1 <= d2 {
		e.radiusX = math32.Max(e.radiusX+r-prevR, config.MinShapeRadius)
	} else {
		e.radiusY = math32.Max(e.radiusY+r-prevR, config.MinShapeRadius)
	}
	e.notify()
}

func (e *Ellipse) HandleTouchUp(t Touch, outside bool) {}

func (e *Ellipse) SelectionPointDist(pos geometry.Point) float32 {
	return pos.Dist(e.handleX())
}

func (e *Ellipse) InteractionPointDist(pos geometry.Point) float32 {
	d1, d2 := e.handleDists(pos)
	return math32.Min(d1, d2)
}

func (e *Ellipse) handleDists(pos geometry.Point) (d1, d2 float32) {
	return pos.Dist(e.handleX()), pos.Dist(e.handleY())
}

func (e *Ellipse) Translate(d geometry.Point) bool {
	e.center = e.center.Add(d)
	e.notify()
	return true
}

func (e *Ellipse) Rescale(scale float32) {
	e.radiusX *= scale
	e.radiusY *= scale
	e.notify()
}

func (e *Ellipse) Draw(dst *ebiten.Image) {
	if e.hidden {
		return
	}
	path := &vector.Path{}
	appendEllipsePath(path, e.center, e.radiusX, e.radiusY, e.angle)
	strokePath(dst, path, e.lineWidth(), e.lineColor())

	// y-handle in the line color, x-handle (selection point) highlighted
	drawHandle(dst, e.handleY(), e.pointSize(), e.lineColor())
	drawHandle(dst, e.handleX(), e.pointSize(), e.style.SelectionColor)
}

func (e *Ellipse) DrawFill(dst *ebiten.Image, clr color.Color) {
	if e.hidden {
		return
	}
	path := &vector.Path{}
	appendEllipsePath(path, e.center, e.radiusX, e.radiusY, e.angle)
	fillPath(dst, path, clr)
}

func (e *Ellipse) State() *State {
	st := e.baseState()
	st.Center = e.center
	st.RadiusX = e.radiusX
	st.RadiusY = e.radiusY
	st.Angle = e.angle
	return st
}

func (e *Ellipse) Clone() Shape {
	clone, _ := FromState(e.State())
	return clone
}
