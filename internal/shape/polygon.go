// internal/shape/polygon.go
package shape

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-painter/pkg/geometry"
)

// Polygon is a closed polygon. While unfinished, one vertex is appended per
// tap and a double tap finishes the shape; the outline auto-closes, shown as
// a dashed edge until then. Once finished every vertex can be dragged while
// the canvas interacts with the shape. At least 3 vertices are required for
// the polygon to be valid.
type Polygon struct {
	base
	points         []geometry.Point
	selectionPoint *geometry.Point

	// index of the vertex being dragged, for continuity across move events
	lastPointMoved int
}

// NewPolygon creates an empty, unfinished polygon.
func NewPolygon(style Style) *Polygon {
	return &Polygon{
		base: base{
			variant: VariantPolygon,
			style:   style,
		},
		lastPointMoved: -1,
	}
}

// Points returns the polygon's perimeter vertices.
func (p *Polygon) Points() []geometry.Point { return p.points }

// SelectionPoint returns the vertex by which the polygon is selected, or nil
// if none was placed yet.
func (p *Polygon) SelectionPoint() *geometry.Point { return p.selectionPoint }

func (p *Polygon) SetValid() {
	p.valid = len(p.points) >= 3
}

// addPoint appends a perimeter vertex while the polygon is being drawn.
func (p *Polygon) addPoint(pos geometry.Point) {
	if p.selectionPoint == nil {
		sp := pos
		p.selectionPoint = &sp
	}
	p.points = append(p.points, pos)
	if len(p.points) >= 3 {
		p.valid = true
	}
}

func (p *Polygon) HandleTouchDown(t Touch) {}

func (p *Polygon) HandleTouchMove(t Touch) {
	if !p.finished {
		return
	}

	// drag the vertex nearest to where the interaction started
	i := p.lastPointMoved
	if i < 0 {
		var ok bool
		i, _, ok = p.closestVertex(t.Pos)
		if !ok {
			return
		}
		p.lastPointMoved = i
	}

	p.points[i] = p.points[i].Add(t.Delta())
	if i == 0 {
		sp := p.points[0]
		p.selectionPoint = &sp
	}
	p.notify()
}

func (p *Polygon) HandleTouchUp(t Touch, outside bool) {
	if !p.finished {
		if t.DoubleTap {
			p.ready = true
			return
		}
		if !outside {
			p.addPoint(t.Pos)
		}
		return
	}
	p.lastPointMoved = -1
}

func (p *Polygon) SelectionPointDist(pos geometry.Point) float32 {
	if p.selectionPoint == nil {
		return farDist
	}
	return pos.Dist(*p.selectionPoint)
}

func (p *Polygon) InteractionPointDist(pos geometry.Point) float32 {
	_, dist, ok := p.closestVertex(pos)
	if !ok {
		return farDist
	}
	return dist
}

func (p *Polygon) closestVertex(pos geometry.Point) (i int, dist float32, ok bool) {
	if len(p.points) == 0 {
		return 0, 0, false
	}
	dist = farDist
	for j, pt := range p.points {
		if d := pos.Dist(pt); d < dist {
			dist = d
			i = j
		}
	}
	return i, dist, true
}

func (p *Polygon) Translate(d geometry.Point) bool {
	for i := range p.points {
		p.points[i] = p.points[i].Add(d)
	}
	if len(p.points) > 0 {
		sp := p.points[0]
		p.selectionPoint = &sp
	}
	p.notify()
	return true
}

func (p *Polygon) Rescale(scale float32) {
	if len(p.points) == 0 {
		return
	}
	center := geometry.Centroid(p.points)
	for i := range p.points {
		p.points[i] = geometry.ScaleAbout(p.points[i], center, scale)
	}
	sp := p.points[0]
	p.selectionPoint = &sp
	p.notify()
}

func (p *Polygon) Draw(dst *ebiten.Image) {
	if p.hidden || len(p.points) == 0 {
		return
	}

	if len(p.points) > 1 {
		path := &vector.Path{}
		path.MoveTo(p.points[0].X, p.points[0].Y)
		for _, pt := range p.points[1:] {
			path.LineTo(pt.X, pt.Y)
		}
		if p.finished {
			path.Close()
		}
		strokePath(dst, path, p.lineWidth(), p.lineColor())
	}

	if !p.finished && len(p.points) > 2 {
		// preview of the auto-closing edge
		dashedLine(dst, p.points[len(p.points)-1], p.points[0], p.lineWidth(), p.lineColor())
	}

	for _, pt := range p.points {
		drawHandle(dst, pt, p.pointSize(), p.lineColor())
	}
	if p.selectionPoint != nil {
		drawHandle(dst, *p.selectionPoint, p.pointSize(), p.style.SelectionColor)
	}
}

func (p *Polygon) DrawFill(dst *ebiten.Image, clr color.Color) {
	if p.hidden || len(p.points) < 3 {
		return
	}
	path := &vector.Path{}
	path.MoveTo(p.points[0].X, p.points[0].Y)
	for _, pt := range p.points[1:] {
		path.LineTo(pt.X, pt.Y)
	}
	path.Close()
	fillPath(dst, path, clr)
}

func (p *Polygon) State() *State {
	st := p.baseState()
	st.Points = append([]geometry.Point(nil), p.points...)
	if p.selectionPoint != nil {
		sp := *p.selectionPoint
		st.SelectionPoint = &sp
	}
	return st
}

func (p *Polygon) restorePoints(st *State) {
	p.points = append([]geometry.Point(nil), st.Points...)
	if st.SelectionPoint != nil {
		sp := *st.SelectionPoint
		p.selectionPoint = &sp
	} else if len(p.points) > 0 {
		sp := p.points[0]
		p.selectionPoint = &sp
	}
}

func (p *Polygon) Clone() Shape {
	clone, _ := FromState(p.State())
	return clone
}
