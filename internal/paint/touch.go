// internal/paint/touch.go
package paint

import (
	"go-painter/internal/config"
	"go-painter/internal/shape"
)

// interactionKind records what an in-flight touch is being used for.
type interactionKind int

const (
	interactNone interactionKind = iota
	interactCurrent
	interactCurrentNew
	interactSelected
	interactDone
)

// touchState is the bookkeeping for the single touch the canvas processes
// at a time.
type touchState struct {
	last shape.Touch
	kind interactionKind

	moved            bool
	clearedSelection bool

	// set when the touch went down near a selection point
	selectedShape shape.Shape
	// whether that shape was not yet selected at touch down
	newlySelected bool

	longTouchLeft  float64
	longTouchArmed bool
}

func (c *Canvas) armLongTouch() {
	c.touch.longTouchArmed = true
	c.touch.longTouchLeft = config.LongTouchDelay
}

func (c *Canvas) cancelLongTouch() {
	if c.touch != nil {
		c.touch.longTouchArmed = false
	}
}

// Update advances the long-touch timer; call it once per frame.
func (c *Canvas) Update(deltaTime float64) {
	ts := c.touch
	if ts == nil || !ts.longTouchArmed {
		return
	}
	ts.longTouchLeft -= deltaTime
	if ts.longTouchLeft <= 0 {
		ts.longTouchArmed = false
		c.handleLongTouch()
	}
}

// HandleTouchDown processes a touch landing on the canvas. Returns whether
// the canvas used the touch; while one touch is being processed all others
// are ignored.
func (c *Canvas) HandleTouchDown(t shape.Touch) bool {
	if c.locked || c.touch != nil || !c.Contains(t.Pos) {
		return false
	}

	ts := &touchState{last: t}
	c.touch = ts

	// an active current shape gets the touch first
	if current := c.current; current != nil {
		ts.clearedSelection = current.Finished() &&
			current.InteractionPointDist(t.Pos) >= config.MinTouchDist
		if ts.clearedSelection {
			c.FinishCurrentShape()
		} else {
			ts.kind = interactCurrent
			current.HandleTouchDown(t)
			return true
		}
	}

	// next, try grabbing a shape by its selection point
	if s := c.ClosestSelectionPointShape(t.Pos); s != nil {
		ts.kind = interactSelected
		ts.selectedShape = s
		ts.newlySelected = !s.Selected()
		c.armLongTouch()
		return true
	}

	if c.ctrlDown {
		ts.kind = interactDone
		return true
	}

	c.armLongTouch()
	return true
}

// handleLongTouch fires when a touch has been held in place long enough to
// start editing the shape under it.
func (c *Canvas) handleLongTouch() {
	ts := c.touch
	if ts == nil {
		return
	}
	if ts.kind == interactSelected {
		if c.ctrlDown {
			ts.kind = interactDone
			return
		}
		ts.kind = interactNone
	}
	if ts.kind != interactNone {
		return
	}

	c.ClearSelectedShapes()
	if s := c.ClosestShape(ts.last.Pos); s != nil {
		ts.kind = interactCurrent
		c.StartShapeInteraction(s, ts.last.Pos)
	} else {
		ts.kind = interactDone
	}
}

// HandleTouchMove processes movement of the in-flight touch.
func (c *Canvas) HandleTouchMove(t shape.Touch) bool {
	ts := c.touch
	if ts == nil {
		return false
	}
	c.cancelLongTouch()
	ts.last = t

	if ts.kind == interactDone {
		return true
	}

	ts.moved = true
	if !c.Contains(t.Pos) {
		return true
	}

	if ts.kind == interactNone {
		if !c.startNewShape(ts, t) {
			return true
		}
	}

	switch ts.kind {
	case interactCurrent, interactCurrentNew:
		if c.current == nil {
			ts.kind = interactDone
		} else {
			c.current.HandleTouchMove(t)
		}
		return true
	}

	// dragging by a selection point moves the whole selection
	s := ts.selectedShape
	if !c.hasShape(s) {
		ts.kind = interactDone
		return true
	}

	if c.ctrlDown || c.multiselect {
		if !s.Selected() {
			c.SelectShape(s)
		}
	} else if len(c.selected) != 1 || c.selected[0] != s {
		c.ClearSelectedShapes()
		c.SelectShape(s)
	}

	for _, sel := range c.selected {
		sel.Translate(t.Delta())
	}
	return true
}

// HandleTouchUp processes the end of the in-flight touch.
func (c *Canvas) HandleTouchUp(t shape.Touch) bool {
	ts := c.touch
	if ts == nil {
		return false
	}
	c.cancelLongTouch()
	ts.last = t
	defer func() { c.touch = nil }()

	if ts.kind == interactDone {
		return true
	}

	outside := !c.Contains(t.Pos)

	if ts.kind == interactNone {
		if !c.startNewShape(ts, t) {
			return true
		}
	}

	switch ts.kind {
	case interactCurrent, interactCurrentNew:
		if c.current != nil {
			c.current.HandleTouchUp(t, outside)
			if c.checkNewShapeDone(c.current) {
				c.FinishCurrentShape()
				ts.kind = interactDone
			}
		}
		return true
	}

	if outside {
		ts.kind = interactDone
		return true
	}

	s := ts.selectedShape
	if ts.moved {
		// a drag doesn't change the selection state, except that a shape
		// selected just to be dragged doesn't stay selected
		ts.kind = interactDone
		if ts.newlySelected && len(c.selected) == 1 && c.selected[0] == s {
			c.ClearSelectedShapes()
		}
		return true
	}

	if !c.hasShape(s) {
		ts.kind = interactDone
		return true
	}

	if c.ctrlDown || c.multiselect {
		if !ts.newlySelected && s.Selected() {
			c.DeselectShape(s)
		} else if ts.newlySelected {
			c.SelectShape(s)
		}
	} else if len(c.selected) != 1 || c.selected[0] != s {
		c.ClearSelectedShapes()
		c.SelectShape(s)
	}
	return true
}

// startNewShape tries to turn an unclaimed touch into a new shape. It
// returns false when the touch is fully consumed (selection cleared or
// nothing to create).
func (c *Canvas) startNewShape(ts *touchState, t shape.Touch) bool {
	if ts.clearedSelection || len(c.ClearSelectedShapes()) > 0 {
		ts.kind = interactDone
		return false
	}

	s := c.CreateShapeWithTouch(t)
	if s == nil {
		ts.kind = interactDone
		return false
	}

	// replay the touch origin as the shape's first point
	down := t
	down.Pos = t.Origin
	down.Prev = t.Origin
	s.HandleTouchDown(down)

	c.current = s
	if c.checkNewShapeDone(s) {
		c.FinishCurrentShape()
		ts.kind = interactDone
		return false
	}
	ts.kind = interactCurrentNew
	return true
}

// checkNewShapeDone reports whether the shape has been fully drawn and can
// be finished.
func (c *Canvas) checkNewShapeDone(s shape.Shape) bool {
	return !s.Finished() && s.ReadyToFinish()
}

func (c *Canvas) hasShape(s shape.Shape) bool {
	for _, other := range c.shapes {
		if other == s {
			return true
		}
	}
	return false
}
