// internal/paint/canvas_test.go
package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-painter/internal/config"
	"go-painter/internal/event"
	"go-painter/internal/shape"
	"go-painter/pkg/geometry"
)

// tap runs a full down/up gesture at pos.
func tap(c *Canvas, pos geometry.Point) {
	c.HandleTouchDown(shape.Touch{Pos: pos, Prev: pos, Origin: pos})
	c.HandleTouchUp(shape.Touch{Pos: pos, Prev: pos, Origin: pos})
}

// doubleTap runs a tap flagged as the second of a double tap.
func doubleTap(c *Canvas, pos geometry.Point) {
	c.HandleTouchDown(shape.Touch{Pos: pos, Prev: pos, Origin: pos, DoubleTap: true})
	c.HandleTouchUp(shape.Touch{Pos: pos, Prev: pos, Origin: pos, DoubleTap: true})
}

// drag runs a down/move/.../up gesture through the given positions.
func drag(c *Canvas, positions ...geometry.Point) {
	origin := positions[0]
	c.HandleTouchDown(shape.Touch{Pos: origin, Prev: origin, Origin: origin})
	prev := origin
	for _, pos := range positions[1:] {
		c.HandleTouchMove(shape.Touch{Pos: pos, Prev: prev, Origin: origin})
		prev = pos
	}
	c.HandleTouchUp(shape.Touch{Pos: prev, Prev: prev, Origin: origin})
}

func pt(x, y float32) geometry.Point { return geometry.Pt(x, y) }

func newTestCanvas() *Canvas {
	return NewCanvas(event.NewDispatcher())
}

func TestCreateShapeWithTouchPerMode(t *testing.T) {
	tests := []struct {
		mode    Mode
		variant string
	}{
		{ModeCircle, shape.VariantCircle},
		{ModeEllipse, shape.VariantEllipse},
		{ModePolygon, shape.VariantPolygon},
		{ModeFreeform, shape.VariantFreeform},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			c := newTestCanvas()
			c.SetDrawMode(tt.mode)
			s := c.CreateShapeWithTouch(shape.Touch{Pos: pt(100, 100)})
			require.NotNil(t, s)
			assert.Equal(t, tt.variant, s.Variant())
			assert.False(t, s.Finished())
		})
	}
}

func TestCreateShapeWithTouchNoneMode(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModeNone)
	assert.Nil(t, c.CreateShapeWithTouch(shape.Touch{Pos: pt(100, 100)}))
}

func TestCreateShapeWithTouchLocked(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModeCircle)
	c.SetLocked(true)
	assert.Nil(t, c.CreateShapeWithTouch(shape.Touch{Pos: pt(100, 100)}))
}

func TestCreateAddShape(t *testing.T) {
	c := newTestCanvas()

	s := c.CreateAddShape(ModeCircle, pt(300, 300))
	require.NotNil(t, s)
	assert.True(t, s.Finished())
	assert.Len(t, c.Shapes(), 1)

	assert.Nil(t, c.CreateAddShape(ModeNone, pt(300, 300)))
	assert.Nil(t, c.CreateAddShape(ModePolygon, pt(300, 300)),
		"a single point can't seed a polygon")
	assert.Len(t, c.Shapes(), 1)
}

func TestAddShape(t *testing.T) {
	c := newTestCanvas()
	s := shape.NewCircle(shape.DefaultStyle())
	assert.True(t, c.AddShape(s))
	assert.Len(t, c.Shapes(), 1)
	assert.False(t, c.AddShape(nil))
	assert.Len(t, c.Shapes(), 1)
}

func TestTapCreatesCircle(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModeCircle)
	tap(c, pt(200, 200))

	require.Len(t, c.Shapes(), 1)
	s := c.Shapes()[0]
	assert.Equal(t, shape.VariantCircle, s.Variant())
	assert.True(t, s.Finished())
	assert.Nil(t, c.CurrentShape())
}

func TestPolygonTapScenario(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModePolygon)

	tap(c, pt(100, 100))
	tap(c, pt(300, 100))
	tap(c, pt(200, 300))
	require.NotNil(t, c.CurrentShape(), "polygon stays in progress between taps")
	assert.Empty(t, c.Shapes())

	doubleTap(c, pt(200, 300))
	assert.Nil(t, c.CurrentShape())
	require.Len(t, c.Shapes(), 1)

	p, ok := c.Shapes()[0].(*shape.Polygon)
	require.True(t, ok)
	assert.Len(t, p.Points(), 3)
	assert.True(t, p.Finished())
}

func TestInvalidPolygonDropped(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModePolygon)

	tap(c, pt(100, 100))
	tap(c, pt(300, 100))
	c.FinishCurrentShape()

	assert.Empty(t, c.Shapes(), "a two-point polygon is not kept")
	assert.Nil(t, c.CurrentShape())
}

func TestFreeformDragScenario(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModeFreeform)

	drag(c, pt(100, 100), pt(150, 120), pt(200, 100), pt(150, 200))

	require.Len(t, c.Shapes(), 1)
	f, ok := c.Shapes()[0].(*shape.Freeform)
	require.True(t, ok)
	assert.True(t, f.Finished())
	assert.GreaterOrEqual(t, len(f.Points()), 3)
}

func TestLockedCanvasIgnoresTouches(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModeFreeform)
	c.SetLocked(true)

	assert.False(t, c.HandleTouchDown(shape.Touch{Pos: pt(100, 100)}))
	drag(c, pt(100, 100), pt(150, 120), pt(200, 100))
	assert.Empty(t, c.Shapes())
}

func TestTouchOutsideBoundsIgnored(t *testing.T) {
	c := newTestCanvas()
	// the toolbar strip is above the canvas
	assert.False(t, c.HandleTouchDown(shape.Touch{Pos: pt(100, 10)}))
}

func TestLockFinishesAndDeselects(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModeCircle)
	tap(c, pt(200, 200))
	s := c.Shapes()[0]
	c.SelectShape(s)

	c.SetLocked(true)
	assert.Empty(t, c.SelectedShapes())
	assert.False(t, s.Selected())
}

func TestSetDrawModeFinishesCurrent(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModePolygon)
	tap(c, pt(100, 100))
	tap(c, pt(300, 100))
	tap(c, pt(200, 300))
	require.NotNil(t, c.CurrentShape())

	c.SetDrawMode(ModeCircle)
	assert.Nil(t, c.CurrentShape())
	assert.Len(t, c.Shapes(), 1, "the valid in-progress polygon is kept")
}

// addCircle places a finished circle with its selection handle at
// (x+radius, y).
func addCircle(c *Canvas, x, y float32) *shape.Circle {
	s := shape.NewCircle(shape.DefaultStyle())
	s.HandleTouchDown(shape.Touch{Pos: pt(x, y)})
	s.Finish()
	c.AddShape(s)
	return s
}

func TestTapOnSelectionPointSelects(t *testing.T) {
	c := newTestCanvas()
	s := addCircle(c, 200, 200) // handle at (210, 200)

	tap(c, pt(210, 200))
	assert.True(t, s.Selected())
	require.Len(t, c.SelectedShapes(), 1)

	// tapping again without multiselect keeps the single selection
	tap(c, pt(210, 200))
	assert.True(t, s.Selected())
}

func TestTapElsewhereClearsSelection(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModeCircle)
	s := addCircle(c, 200, 200)
	c.SelectShape(s)

	// the touch is consumed clearing the selection, no shape is created
	tap(c, pt(500, 500))
	assert.False(t, s.Selected())
	assert.Len(t, c.Shapes(), 1)
}

func TestMultiselectToggle(t *testing.T) {
	c := newTestCanvas()
	c.SetMultiselect(true)
	s1 := addCircle(c, 200, 200)
	s2 := addCircle(c, 400, 200)

	tap(c, pt(210, 200))
	tap(c, pt(410, 200))
	assert.True(t, s1.Selected())
	assert.True(t, s2.Selected())
	assert.Len(t, c.SelectedShapes(), 2)

	// tapping a selected shape again deselects only it
	tap(c, pt(210, 200))
	assert.False(t, s1.Selected())
	assert.True(t, s2.Selected())
}

func TestCtrlActsAsMultiselect(t *testing.T) {
	c := newTestCanvas()
	s1 := addCircle(c, 200, 200)
	s2 := addCircle(c, 400, 200)

	c.SetCtrlDown(true)
	tap(c, pt(210, 200))
	tap(c, pt(410, 200))
	assert.True(t, s1.Selected())
	assert.True(t, s2.Selected())
}

func TestDragMovesShapeWithoutKeepingSelection(t *testing.T) {
	c := newTestCanvas()
	s := addCircle(c, 200, 200)

	drag(c, pt(210, 200), pt(260, 250))
	assert.Equal(t, pt(250, 250), s.Center(), "the drag moves the shape")
	assert.False(t, s.Selected(), "a shape grabbed just to drag it is not left selected")
}

func TestDragMovesWholeSelection(t *testing.T) {
	c := newTestCanvas()
	c.SetMultiselect(true)
	s1 := addCircle(c, 200, 200)
	s2 := addCircle(c, 400, 200)
	tap(c, pt(210, 200))
	tap(c, pt(410, 200))

	drag(c, pt(210, 200), pt(220, 210))
	assert.Equal(t, pt(210, 210), s1.Center())
	assert.Equal(t, pt(410, 210), s2.Center())
	assert.True(t, s1.Selected(), "dragging an already selected shape keeps the selection")
}

func TestLockedShapeNotSelectable(t *testing.T) {
	c := newTestCanvas()
	c.SetDrawMode(ModeNone)
	s := addCircle(c, 200, 200)
	c.LockShape(s)

	tap(c, pt(210, 200))
	assert.False(t, s.Selected())
	assert.Empty(t, c.SelectedShapes())
}

func TestLongTouchStartsInteraction(t *testing.T) {
	c := newTestCanvas()
	s := addCircle(c, 200, 200)

	c.HandleTouchDown(shape.Touch{Pos: pt(210, 200), Prev: pt(210, 200), Origin: pt(210, 200)})
	c.Update(config.LongTouchDelay + 0.01)

	assert.Same(t, s, c.CurrentShape())
	assert.True(t, s.Interacting())

	// dragging the handle now resizes instead of moving
	c.HandleTouchMove(shape.Touch{Pos: pt(215, 200), Prev: pt(210, 200), Origin: pt(210, 200)})
	assert.Equal(t, float32(15), s.Radius())
	assert.Equal(t, pt(200, 200), s.Center())

	c.HandleTouchUp(shape.Touch{Pos: pt(215, 200), Prev: pt(215, 200), Origin: pt(210, 200)})
	assert.True(t, s.Interacting(), "editing continues until the next touch ends it")
}

func TestMoveCancelsLongTouch(t *testing.T) {
	c := newTestCanvas()
	s := addCircle(c, 200, 200)

	c.HandleTouchDown(shape.Touch{Pos: pt(210, 200), Prev: pt(210, 200), Origin: pt(210, 200)})
	c.HandleTouchMove(shape.Touch{Pos: pt(212, 202), Prev: pt(210, 200), Origin: pt(210, 200)})
	c.Update(config.LongTouchDelay + 0.01)

	assert.Nil(t, c.CurrentShape())
	assert.False(t, s.Interacting())
	c.HandleTouchUp(shape.Touch{Pos: pt(212, 202), Prev: pt(212, 202), Origin: pt(210, 200)})
}

func TestDeleteSelectedShapes(t *testing.T) {
	c := newTestCanvas()
	s1 := addCircle(c, 200, 200)
	addCircle(c, 400, 200)
	c.SelectShape(s1)

	deleted := c.DeleteSelectedShapes()
	assert.Len(t, deleted, 1)
	assert.Len(t, c.Shapes(), 1)
	assert.Empty(t, c.SelectedShapes())
}

func TestDeleteAllShapesKeepsLocked(t *testing.T) {
	c := newTestCanvas()
	addCircle(c, 200, 200)
	locked := addCircle(c, 400, 200)
	c.LockShape(locked)

	removed := c.DeleteAllShapes(true)
	assert.Len(t, removed, 1)
	require.Len(t, c.Shapes(), 1)
	assert.Same(t, locked, c.Shapes()[0])

	c.DeleteAllShapes(false)
	assert.Empty(t, c.Shapes())
}

func TestDuplicateShapeOffset(t *testing.T) {
	c := newTestCanvas()
	s := addCircle(c, 200, 200)

	clone := c.DuplicateShape(s)
	require.NotNil(t, clone)
	assert.Len(t, c.Shapes(), 2)
	cc, ok := clone.(*shape.Circle)
	require.True(t, ok)
	assert.Equal(t, pt(200+config.DuplicateOffset, 200+config.DuplicateOffset), cc.Center())
}

func TestDuplicateSelectedShapesDeselectsOriginals(t *testing.T) {
	c := newTestCanvas()
	s := addCircle(c, 200, 200)
	c.SelectShape(s)

	originals := c.DuplicateSelectedShapes()
	assert.Len(t, originals, 1)
	assert.Len(t, c.Shapes(), 2)
	assert.Empty(t, c.SelectedShapes())
}

func TestSelectAllSkipsLocked(t *testing.T) {
	c := newTestCanvas()
	addCircle(c, 200, 200)
	locked := addCircle(c, 400, 200)
	c.LockShape(locked)

	c.SelectAll()
	assert.Len(t, c.SelectedShapes(), 1)
	assert.False(t, locked.Selected())
}

func TestMoveSelected(t *testing.T) {
	c := newTestCanvas()
	s := addCircle(c, 200, 200)

	assert.False(t, c.MoveSelected(pt(1, 0)), "nothing selected")

	c.SelectShape(s)
	assert.True(t, c.MoveSelected(pt(config.ArrowMoveStep, 0)))
	assert.Equal(t, pt(201, 200), s.Center())
}

func TestReorderShape(t *testing.T) {
	c := newTestCanvas()
	s1 := addCircle(c, 200, 200)
	s2 := addCircle(c, 400, 200)
	s3 := addCircle(c, 600, 200)

	c.ReorderShape(s1, nil)
	assert.Equal(t, []shape.Shape{s2, s3, s1}, c.Shapes())

	c.ReorderShape(s1, s2)
	assert.Equal(t, []shape.Shape{s1, s2, s3}, c.Shapes())
}

func TestClosestSelectionPointShapePrefersTopmost(t *testing.T) {
	c := newTestCanvas()
	addCircle(c, 200, 200)
	top := addCircle(c, 200, 200)

	got := c.ClosestSelectionPointShape(pt(210, 200))
	assert.Same(t, top, got)

	assert.Nil(t, c.ClosestSelectionPointShape(pt(500, 500)))
}

func TestCreateShapeFromState(t *testing.T) {
	c := newTestCanvas()
	st := &shape.State{
		Variant: shape.VariantCircle,
		Style:   shape.DefaultStyle(),
		Center:  pt(100, 100),
		Radius:  25,
	}
	s, err := c.CreateShapeFromState(st, true)
	require.NoError(t, err)
	assert.Len(t, c.Shapes(), 1)
	assert.True(t, s.Finished())

	_, err = c.CreateShapeFromState(&shape.State{Variant: "bogus"}, true)
	assert.Error(t, err)
	assert.Len(t, c.Shapes(), 1)
}

func TestShapeEvents(t *testing.T) {
	d := event.NewDispatcher()
	var got []event.EventType
	for _, typ := range []event.EventType{
		event.ShapeAdded, event.ShapeRemoved, event.ShapeSelected, event.ShapeDeselected,
	} {
		typ := typ
		d.Subscribe(typ, event.ListenerFunc(func(e event.Event) {
			got = append(got, e.Type)
		}))
	}

	c := NewCanvas(d)
	s := addCircle(c, 200, 200)
	c.SelectShape(s)
	c.DeselectShape(s)
	c.RemoveShape(s)

	assert.Equal(t, []event.EventType{
		event.ShapeAdded, event.ShapeSelected, event.ShapeDeselected, event.ShapeRemoved,
	}, got)
}
