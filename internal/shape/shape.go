// internal/shape/shape.go
package shape

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-painter/internal/config"
	"go-painter/pkg/geometry"
)

// Shape variant names. These are also the draw mode values accepted by the
// canvas and the variant tags used when serializing shapes.
const (
	VariantCircle   = "circle"
	VariantEllipse  = "ellipse"
	VariantPolygon  = "polygon"
	VariantFreeform = "freeform"
)

// farDist is returned by hit tests when a shape has no point to test against.
const farDist float32 = 1e4

// Touch is a single pointer event routed to the canvas or a shape. Prev is
// the position at the previous event of the same touch, Origin the position
// where the touch first went down.
type Touch struct {
	ID        int
	Pos       geometry.Point
	Prev      geometry.Point
	Origin    geometry.Point
	DoubleTap bool
}

// Delta returns the movement since the previous event of this touch.
func (t Touch) Delta() geometry.Point {
	return t.Pos.Sub(t.Prev)
}

// Style configures how a shape is drawn.
type Style struct {
	LineColor      color.RGBA `json:"lineColor"`
	LockedColor    color.RGBA `json:"lockedColor"`
	SelectionColor color.RGBA `json:"selectionColor"`
	LineWidth      float32    `json:"lineWidth"`
	PointSize      float32    `json:"pointSize"`
}

// DefaultStyle returns the stock green-line style.
func DefaultStyle() Style {
	return Style{
		LineColor:      config.LineColor,
		LockedColor:    config.LockedLineColor,
		SelectionColor: config.SelectionPointColor,
		LineWidth:      config.DefaultLineWidth,
		PointSize:      config.DefaultPointSize,
	}
}

// Shape is a drawable, selectable entity on the paint canvas.
//
// Each shape has a single selection point by which the canvas selects and
// drags it, and a set of interaction points (the selection point, axis
// handles, polygon vertices) that can be manipulated while the canvas is
// interacting with the shape.
type Shape interface {
	Variant() string
	Style() Style
	SetStyle(Style)

	// Finished reports whether the user is done drawing the shape.
	Finished() bool
	// Finish marks the shape finished. Returns false if it already was.
	Finish() bool
	// ReadyToFinish reports whether the shape wants to be finished, e.g. a
	// freeform polygon after its touch was released.
	ReadyToFinish() bool
	// IsValid reports whether the shape may be kept on the canvas.
	IsValid() bool
	// SetValid recomputes validity after the shape was built manually.
	SetValid()

	Selected() bool
	Select() bool
	Deselect() bool

	Locked() bool
	Lock() bool
	Unlock() bool

	Interacting() bool
	StartInteraction(pos geometry.Point) bool
	StopInteraction() bool

	HandleTouchDown(t Touch)
	HandleTouchMove(t Touch)
	HandleTouchUp(t Touch, outside bool)

	// SelectionPointDist returns the distance from pos to the shape's
	// selection point.
	SelectionPointDist(pos geometry.Point) float32
	// InteractionPointDist returns the minimum distance from pos to any of
	// the shape's interaction points.
	InteractionPointDist(pos geometry.Point) float32

	Translate(d geometry.Point) bool
	// Rescale multiplies the distance of all perimeter points from the
	// shape's center by scale.
	Rescale(scale float32)

	Hidden() bool
	Show()
	Hide()

	Draw(dst *ebiten.Image)
	// DrawFill paints the enclosed area of the shape in the given color.
	DrawFill(dst *ebiten.Image, clr color.Color)

	// State returns a serializable snapshot from which the shape can be
	// reconstructed with FromState.
	State() *State
	Clone() Shape

	// SetOnUpdate installs a callback invoked whenever the finished shape
	// changes geometry.
	SetOnUpdate(fn func())
}

// State is the serializable snapshot of a shape.
type State struct {
	Variant string `json:"variant"`
	Style   Style  `json:"style"`
	Locked  bool   `json:"locked"`

	Center  geometry.Point `json:"center,omitzero"`
	Radius  float32        `json:"radius,omitempty"`
	RadiusX float32        `json:"radiusX,omitempty"`
	RadiusY float32        `json:"radiusY,omitempty"`
	Angle   float32        `json:"angle,omitempty"`

	Points         []geometry.Point `json:"points,omitempty"`
	SelectionPoint *geometry.Point  `json:"selectionPoint,omitempty"`
}

// FromState reconstructs a finished shape from a snapshot. The returned
// shape is validated and finished; an invalid snapshot is an error.
func FromState(st *State) (Shape, error) {
	var s Shape
	switch st.Variant {
	case VariantCircle:
		c := NewCircle(st.Style)
		c.center = st.Center
		c.radius = st.Radius
		s = c
	case VariantEllipse:
		e := NewEllipse(st.Style)
		e.center = st.Center
		e.radiusX = st.RadiusX
		e.radiusY = st.RadiusY
		e.angle = st.Angle
		s = e
	case VariantPolygon:
		p := NewPolygon(st.Style)
		p.restorePoints(st)
		s = p
	case VariantFreeform:
		f := NewFreeform(st.Style)
		f.restorePoints(st)
		s = f
	default:
		return nil, fmt.Errorf("unknown shape variant %q", st.Variant)
	}

	s.SetValid()
	s.Finish()
	if st.Locked {
		s.Lock()
	}
	if !s.IsValid() {
		return nil, fmt.Errorf("%s shape state is not valid", st.Variant)
	}
	return s, nil
}

// base carries the state machine flags shared by all shape variants.
type base struct {
	variant string
	style   Style

	selected    bool
	locked      bool
	finished    bool
	interacting bool
	valid       bool
	ready       bool
	hidden      bool

	onUpdate func()
}

func (b *base) notify() {
	if b.finished && b.onUpdate != nil {
		b.onUpdate()
	}
}

func (b *base) Variant() string       { return b.variant }
func (b *base) Style() Style          { return b.style }
func (b *base) SetStyle(s Style)      { b.style = s }
func (b *base) Finished() bool        { return b.finished }
func (b *base) ReadyToFinish() bool   { return b.ready }
func (b *base) IsValid() bool         { return b.valid }
func (b *base) SetValid()             {}
func (b *base) Selected() bool        { return b.selected }
func (b *base) Locked() bool          { return b.locked }
func (b *base) Interacting() bool     { return b.interacting }
func (b *base) Hidden() bool          { return b.hidden }
func (b *base) Show()                 { b.hidden = false }
func (b *base) Hide()                 { b.hidden = true }
func (b *base) SetOnUpdate(fn func()) { b.onUpdate = fn }

func (b *base) Finish() bool {
	if b.finished {
		return false
	}
	b.finished = true
	return true
}

func (b *base) Select() bool {
	if b.selected {
		return false
	}
	b.selected = true
	return true
}

func (b *base) Deselect() bool {
	if !b.selected {
		return false
	}
	b.selected = false
	return true
}

func (b *base) Lock() bool {
	if b.locked {
		return false
	}
	b.locked = true
	return true
}

func (b *base) Unlock() bool {
	if !b.locked {
		return false
	}
	b.locked = false
	return true
}

func (b *base) StartInteraction(pos geometry.Point) bool {
	if b.interacting {
		return false
	}
	b.interacting = true
	return true
}

func (b *base) StopInteraction() bool {
	if !b.interacting {
		return false
	}
	b.interacting = false
	return true
}

// lineColor is the stroke color honoring the locked state.
func (b *base) lineColor() color.RGBA {
	if b.locked {
		return b.style.LockedColor
	}
	return b.style.LineColor
}

// lineWidth is the stroke width honoring the selected state.
func (b *base) lineWidth() float32 {
	if b.selected {
		return 2 * b.style.LineWidth
	}
	return b.style.LineWidth
}

// pointSize is the handle radius honoring the interacting state.
func (b *base) pointSize() float32 {
	if b.interacting {
		return 2 * b.style.PointSize
	}
	return b.style.PointSize
}

// baseState fills the variant-independent part of a snapshot.
func (b *base) baseState() *State {
	return &State{
		Variant: b.variant,
		Style:   b.style,
		Locked:  b.locked,
	}
}
