// internal/shape/freeform.go
package shape

// Freeform is a polygon whose vertices stream in while the user holds a
// single touch down and moves it; releasing the touch finishes the shape.
// Once finished it behaves exactly like Polygon.
type Freeform struct {
	Polygon
}

// NewFreeform creates an empty, unfinished freeform polygon.
func NewFreeform(style Style) *Freeform {
	f := &Freeform{}
	f.base = base{
		variant: VariantFreeform,
		style:   style,
	}
	f.lastPointMoved = -1
	return f
}

func (f *Freeform) HandleTouchDown(t Touch) {
	if !f.finished {
		f.addPoint(t.Pos)
	}
}

func (f *Freeform) HandleTouchMove(t Touch) {
	if f.finished {
		f.Polygon.HandleTouchMove(t)
		return
	}
	f.addPoint(t.Pos)
}

func (f *Freeform) HandleTouchUp(t Touch, outside bool) {
	if f.finished {
		f.Polygon.HandleTouchUp(t, outside)
		return
	}
	f.ready = true
}

func (f *Freeform) Clone() Shape {
	clone, _ := FromState(f.State())
	return clone
}
