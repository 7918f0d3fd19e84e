// internal/shape/circle.go
package shape

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-painter/internal/config"
	"go-painter/pkg/geometry"
)

// Circle is a circle dragged and resized by the single handle on its right
// edge.
type Circle struct {
	base
	center geometry.Point
	radius float32
}

// NewCircle creates an unfinished circle with the default radius. A circle
// is valid and ready to finish from the moment it's placed.
func NewCircle(style Style) *Circle {
	return &Circle{
		base: base{
			variant: VariantCircle,
			style:   style,
			valid:   true,
			ready:   true,
		},
		radius: config.DefaultCircleRadius,
	}
}

func (c *Circle) Center() geometry.Point { return c.center }
func (c *Circle) Radius() float32        { return c.radius }

// handle is the selection point at the right edge of the circle.
func (c *Circle) handle() geometry.Point {
	return geometry.Pt(c.center.X+c.radius, c.center.Y)
}

func (c *Circle) HandleTouchDown(t Touch) {
	if !c.finished {
		c.center = t.Pos
	}
}

func (c *Circle) HandleTouchMove(t Touch) {
	if !c.finished {
		return
	}
	if c.interacting {
		// dragging the handle away from the center grows the radius
		dx := t.Delta().X
		if t.Pos.X < c.center.X {
			dx = -dx
		}
		c.radius = math32.Max(c.radius+dx, config.MinShapeRadius)
		c.notify()
	}
}

func (c *Circle) HandleTouchUp(t Touch, outside bool) {}

func (c *Circle) SelectionPointDist(pos geometry.Point) float32 {
	return pos.Dist(c.handle())
}

func (c *Circle) InteractionPointDist(pos geometry.Point) float32 {
	return c.SelectionPointDist(pos)
}

func (c *Circle) Translate(d geometry.Point) bool {
	c.center = c.center.Add(d)
	c.notify()
	return true
}

func (c *Circle) Rescale(scale float32) {
	c.radius *= scale
	c.notify()
}

func (c *Circle) Draw(dst *ebiten.Image) {
	if c.hidden {
		return
	}
	vector.StrokeCircle(dst, c.center.X, c.center.Y, c.radius, c.lineWidth(), c.lineColor(), true)
	drawHandle(dst, c.handle(), c.pointSize(), c.style.SelectionColor)
}

func (c *Circle) DrawFill(dst *ebiten.Image, clr color.Color) {
	if c.hidden {
		return
	}
	vector.DrawFilledCircle(dst, c.center.X, c.center.Y, c.radius, clr, true)
}

func (c *Circle) State() *State {
	st := c.baseState()
	st.Center = c.center
	st.Radius = c.radius
	return st
}

func (c *Circle) Clone() Shape {
	clone, _ := FromState(c.State())
	return clone
}
