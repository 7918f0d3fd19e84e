// internal/paint/canvas.go
package paint

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-painter/internal/config"
	"go-painter/internal/event"
	"go-painter/internal/shape"
	"go-painter/pkg/geometry"
)

// Mode selects which shape variant a touch creates.
type Mode string

const (
	ModeCircle   Mode = shape.VariantCircle
	ModeEllipse  Mode = shape.VariantEllipse
	ModePolygon  Mode = shape.VariantPolygon
	ModeFreeform Mode = shape.VariantFreeform
	ModeNone     Mode = "none"
)

// Modes lists all draw modes in toolbar order.
var Modes = []Mode{ModeCircle, ModeEllipse, ModePolygon, ModeFreeform, ModeNone}

// newShape instantiates an unfinished shape for a draw mode. ModeNone has no
// entry.
var newShape = map[Mode]func(shape.Style) shape.Shape{
	ModeCircle:   func(st shape.Style) shape.Shape { return shape.NewCircle(st) },
	ModeEllipse:  func(st shape.Style) shape.Shape { return shape.NewEllipse(st) },
	ModePolygon:  func(st shape.Style) shape.Shape { return shape.NewPolygon(st) },
	ModeFreeform: func(st shape.Style) shape.Shape { return shape.NewFreeform(st) },
}

// Canvas is the shape-drawing controller for an interactive surface.
//
// Each shape has a single selection point by which it is selected and
// dragged. A touch goes to the current shape first if there is one, then to
// the nearest selection point, and finally creates a new shape. A long
// touch near a shape starts point-level editing of that shape. Holding ctrl
// acts like Multiselect.
type Canvas struct {
	shapes   []shape.Shape
	selected []shape.Shape
	current  shape.Shape

	mode        Mode
	locked      bool
	multiselect bool
	ctrlDown    bool

	// styles per draw mode, falling back to shape.DefaultStyle
	styles map[Mode]shape.Style

	boundsMin geometry.Point
	boundsMax geometry.Point

	dispatcher *event.Dispatcher

	touch *touchState
}

// NewCanvas creates a canvas covering the whole screen below the toolbar.
// The dispatcher may be nil when no one listens.
func NewCanvas(dispatcher *event.Dispatcher) *Canvas {
	return &Canvas{
		mode:       ModeFreeform,
		styles:     make(map[Mode]shape.Style),
		dispatcher: dispatcher,
		boundsMin:  geometry.Pt(0, config.ToolbarHeight),
		boundsMax:  geometry.Pt(config.ScreenWidth, config.ScreenHeight-config.StatusHeight),
	}
}

// SetBounds sets the rectangle within which touches are accepted.
func (c *Canvas) SetBounds(min, max geometry.Point) {
	c.boundsMin, c.boundsMax = min, max
}

// Contains reports whether pos falls on the canvas.
func (c *Canvas) Contains(pos geometry.Point) bool {
	return pos.X >= c.boundsMin.X && pos.X < c.boundsMax.X &&
		pos.Y >= c.boundsMin.Y && pos.Y < c.boundsMax.Y
}

// SetStyle sets the style used for new shapes of the given mode.
func (c *Canvas) SetStyle(mode Mode, st shape.Style) {
	c.styles[mode] = st
}

func (c *Canvas) styleFor(mode Mode) shape.Style {
	if st, ok := c.styles[mode]; ok {
		return st
	}
	return shape.DefaultStyle()
}

// Shapes returns the shapes on the canvas in z-order (first drawn first).
func (c *Canvas) Shapes() []shape.Shape { return c.shapes }

// SelectedShapes returns the currently selected shapes.
func (c *Canvas) SelectedShapes() []shape.Shape { return c.selected }

// CurrentShape returns the shape being drawn or edited, if any.
func (c *Canvas) CurrentShape() shape.Shape { return c.current }

func (c *Canvas) DrawMode() Mode    { return c.mode }
func (c *Canvas) IsLocked() bool    { return c.locked }
func (c *Canvas) Multiselect() bool { return c.multiselect }
func (c *Canvas) CtrlDown() bool    { return c.ctrlDown }

// SetDrawMode changes the draw mode, finishing any shape in progress.
func (c *Canvas) SetDrawMode(mode Mode) {
	if mode == c.mode {
		return
	}
	c.mode = mode
	c.FinishCurrentShape()
	c.dispatch(event.DrawModeChanged, mode)
}

// SetLocked locks or unlocks the canvas. Locking finishes any shape being
// drawn and clears the selection.
func (c *Canvas) SetLocked(locked bool) {
	if locked == c.locked {
		return
	}
	c.locked = locked
	if locked {
		c.cancelLongTouch()
		c.FinishCurrentShape()
		c.ClearSelectedShapes()
	}
}

// SetMultiselect toggles whether selecting a shape keeps previous selections.
func (c *Canvas) SetMultiselect(multiselect bool) {
	c.multiselect = multiselect
}

// SetCtrlDown tracks the ctrl key, which acts like Multiselect while held.
func (c *Canvas) SetCtrlDown(down bool) {
	c.ctrlDown = down
}

func (c *Canvas) dispatch(typ event.EventType, data interface{}) {
	if c.dispatcher != nil {
		c.dispatcher.Dispatch(event.Event{Type: typ, Data: data})
	}
}

// CreateShape constructs a new unfinished shape of the given mode, styled
// per the canvas, without attaching it. Returns nil for mode none.
func (c *Canvas) CreateShape(mode Mode) shape.Shape {
	create, ok := newShape[mode]
	if !ok {
		return nil
	}
	return create(c.styleFor(mode))
}

// CreateShapeWithTouch constructs a new unfinished shape of the current draw
// mode for the touch. Returns nil when the canvas is locked or the mode is
// none; attaching the shape to the canvas is the caller's job.
func (c *Canvas) CreateShapeWithTouch(t shape.Touch) shape.Shape {
	if c.locked {
		return nil
	}
	return c.CreateShape(c.mode)
}

// CreateAddShape creates a finished shape of the given mode at pos and
// places it on the canvas. Returns nil for mode none or an invalid result.
func (c *Canvas) CreateAddShape(mode Mode, pos geometry.Point) shape.Shape {
	s := c.CreateShape(mode)
	if s == nil {
		return nil
	}
	s.HandleTouchDown(shape.Touch{Pos: pos, Prev: pos, Origin: pos})
	s.SetValid()
	s.Finish()
	if !s.IsValid() {
		return nil
	}
	c.AddShape(s)
	return s
}

// AddShape appends the shape to the canvas. The new shape goes on top.
func (c *Canvas) AddShape(s shape.Shape) bool {
	if s == nil {
		return false
	}
	c.shapes = append(c.shapes, s)
	c.dispatch(event.ShapeAdded, s)
	return true
}

// RemoveShape deletes the shape from the canvas, deselecting it first.
func (c *Canvas) RemoveShape(s shape.Shape) bool {
	c.DeselectShape(s)
	if s == c.current {
		c.FinishCurrentShape()
	}
	for i, other := range c.shapes {
		if other == s {
			c.shapes = append(c.shapes[:i], c.shapes[i+1:]...)
			c.dispatch(event.ShapeRemoved, s)
			return true
		}
	}
	return false
}

// ReorderShape moves the shape to the top of the z-order, or directly below
// before when given.
func (c *Canvas) ReorderShape(s shape.Shape, before shape.Shape) {
	idx := -1
	for i, other := range c.shapes {
		if other == s {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	c.shapes = append(c.shapes[:idx], c.shapes[idx+1:]...)

	if before == nil {
		c.shapes = append(c.shapes, s)
		return
	}
	for i, other := range c.shapes {
		if other == before {
			c.shapes = append(c.shapes[:i], append([]shape.Shape{s}, c.shapes[i:]...)...)
			return
		}
	}
	c.shapes = append(c.shapes, s)
}

// SelectShape adds the shape to the selection.
func (c *Canvas) SelectShape(s shape.Shape) bool {
	if !s.Select() {
		return false
	}
	c.FinishCurrentShape()
	c.selected = append(c.selected, s)
	c.dispatch(event.ShapeSelected, s)
	return true
}

// DeselectShape removes the shape from the selection.
func (c *Canvas) DeselectShape(s shape.Shape) bool {
	if !s.Deselect() {
		return false
	}
	for i, other := range c.selected {
		if other == s {
			c.selected = append(c.selected[:i], c.selected[i+1:]...)
			break
		}
	}
	c.dispatch(event.ShapeDeselected, s)
	return true
}

// ClearSelectedShapes deselects everything and returns what was selected.
func (c *Canvas) ClearSelectedShapes() []shape.Shape {
	selected := append([]shape.Shape(nil), c.selected...)
	for _, s := range selected {
		c.DeselectShape(s)
	}
	return selected
}

// DeleteSelectedShapes removes all selected shapes, plus the shape being
// edited if any, and returns them.
func (c *Canvas) DeleteSelectedShapes() []shape.Shape {
	shapes := c.ClearSelectedShapes()
	if c.current != nil {
		shapes = append(shapes, c.current)
	}
	for _, s := range shapes {
		c.RemoveShape(s)
	}
	return shapes
}

// DeleteAllShapes removes every shape; locked shapes survive unless
// keepLocked is false. Returns the removed shapes.
func (c *Canvas) DeleteAllShapes(keepLocked bool) []shape.Shape {
	c.FinishCurrentShape()
	var removed []shape.Shape
	for _, s := range append([]shape.Shape(nil), c.shapes...) {
		if !s.Locked() || !keepLocked {
			if c.RemoveShape(s) {
				removed = append(removed, s)
			}
		}
	}
	c.dispatch(event.CanvasCleared, removed)
	return removed
}

// DuplicateShape clones the shape onto the canvas at a slight offset.
func (c *Canvas) DuplicateShape(s shape.Shape) shape.Shape {
	clone := s.Clone()
	if clone == nil {
		return nil
	}
	c.AddShape(clone)
	clone.Translate(geometry.Pt(config.DuplicateOffset, config.DuplicateOffset))
	return clone
}

// DuplicateSelectedShapes clones the selection and returns the originals.
func (c *Canvas) DuplicateSelectedShapes() []shape.Shape {
	shapes := c.ClearSelectedShapes()
	for _, s := range shapes {
		c.DuplicateShape(s)
	}
	return shapes
}

// LockShape locks the shape so touches pass over it.
func (c *Canvas) LockShape(s shape.Shape) bool {
	if s.Locked() {
		return false
	}
	res := false
	if s == c.current {
		res = c.FinishCurrentShape()
	}
	if s.Selected() {
		res = c.DeselectShape(s)
	}
	return s.Lock() || res
}

// UnlockShape makes the shape interactive again.
func (c *Canvas) UnlockShape(s shape.Shape) bool {
	if s.Locked() {
		return s.Unlock()
	}
	return false
}

// FinishCurrentShape completes the shape in progress. A finished, valid
// shape is added to the canvas; an invalid one is dropped. Returns true if
// there was a current shape.
func (c *Canvas) FinishCurrentShape() bool {
	s := c.current
	if s == nil {
		return false
	}
	if s.Finished() {
		c.EndShapeInteraction()
	} else {
		s.Finish()
		c.current = nil
		if s.IsValid() {
			c.AddShape(s)
		}
	}
	return true
}

// StartShapeInteraction makes the shape current for point-level editing.
func (c *Canvas) StartShapeInteraction(s shape.Shape, pos geometry.Point) {
	if c.current != nil {
		return
	}
	c.current = s
	s.StartInteraction(pos)
}

// EndShapeInteraction stops editing the current shape.
func (c *Canvas) EndShapeInteraction() {
	if s := c.current; s != nil {
		c.current = nil
		s.StopInteraction()
	}
}

// CreateShapeFromState reconstructs a shape snapshot and, when add is true,
// places it on the canvas.
func (c *Canvas) CreateShapeFromState(st *shape.State, add bool) (shape.Shape, error) {
	s, err := shape.FromState(st)
	if err != nil {
		return nil, err
	}
	if add {
		c.AddShape(s)
	}
	return s, nil
}

// ClosestSelectionPointShape finds the unlocked shape whose selection point
// is nearest to pos, within the touch radius. Shapes on top win ties.
func (c *Canvas) ClosestSelectionPointShape(pos geometry.Point) shape.Shape {
	minDist := float32(config.MinTouchDist)
	var closest shape.Shape
	for i := len(c.shapes) - 1; i >= 0; i-- {
		s := c.shapes[i]
		if s.Locked() {
			continue
		}
		if d := s.SelectionPointDist(pos); d < minDist {
			closest = s
			minDist = d
		}
	}
	return closest
}

// ClosestShape finds the unlocked shape with any interaction point nearest
// to pos, within the touch radius.
func (c *Canvas) ClosestShape(pos geometry.Point) shape.Shape {
	minDist := float32(config.MinTouchDist)
	var closest shape.Shape
	for i := len(c.shapes) - 1; i >= 0; i-- {
		s := c.shapes[i]
		if s.Locked() {
			continue
		}
		if d := s.InteractionPointDist(pos); d < minDist {
			closest = s
			minDist = d
		}
	}
	return closest
}

// MoveSelected translates all selected shapes, e.g. from the arrow keys.
func (c *Canvas) MoveSelected(d geometry.Point) bool {
	if len(c.selected) == 0 {
		return false
	}
	for _, s := range c.selected {
		s.Translate(d)
	}
	return true
}

// SelectAll selects every unlocked shape.
func (c *Canvas) SelectAll() {
	for _, s := range c.shapes {
		if !s.Locked() {
			c.SelectShape(s)
		}
	}
}

// Draw renders all shapes in z-order, plus the shape in progress.
func (c *Canvas) Draw(dst *ebiten.Image) {
	onCanvas := false
	for _, s := range c.shapes {
		s.Draw(dst)
		if s == c.current {
			onCanvas = true
		}
	}
	if c.current != nil && !onCanvas {
		c.current.Draw(dst)
	}
}
