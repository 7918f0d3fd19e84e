// internal/state/paint_state.go
package state

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"go-painter/internal/app"
	"go-painter/internal/config"
	"go-painter/internal/paint"
	"go-painter/internal/shape"
	"go-painter/internal/ui"
	"go-painter/pkg/geometry"
)

// PaintState is the main drawing state. It translates mouse and keyboard
// input into canvas touches and keyboard operations.
type PaintState struct {
	sm      *StateMachine
	painter *app.Painter
	toolbar *ui.Toolbar
	status  *ui.StatusPanel

	touchDown  bool
	doubleTap  bool
	prevCursor geometry.Point
	origin     geometry.Point

	lastClickTime time.Time
	lastClickPos  geometry.Point
}

func NewPaintState(sm *StateMachine, painter *app.Painter) *PaintState {
	face := ui.LoadFontFace(config.FontSize)
	return &PaintState{
		sm:      sm,
		painter: painter,
		toolbar: ui.NewToolbar(face),
		status:  ui.NewStatusPanel(face, painter.Dispatcher),
	}
}

func (p *PaintState) Enter() {}

func (p *PaintState) Update(deltaTime float64) {
	canvas := p.painter.Canvas
	canvas.SetCtrlDown(ebiten.IsKeyPressed(ebiten.KeyControl))

	if !ebiten.IsFocused() {
		canvas.FinishCurrentShape()
		p.touchDown = false
	}

	x, y := ebiten.CursorPosition()
	pos := geometry.Pt(float32(x), float32(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if p.toolbar.Contains(x, y) {
			p.handleToolbarClick(x, y)
		} else {
			p.doubleTap = time.Since(p.lastClickTime).Seconds() < config.DoubleTapDelay &&
				pos.Dist(p.lastClickPos) < config.DoubleTapDist
			p.origin = pos
			p.prevCursor = pos
			p.touchDown = canvas.HandleTouchDown(p.touch(pos, pos))
			p.lastClickTime = time.Now()
			p.lastClickPos = pos
		}
	} else if p.touchDown && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if pos != p.prevCursor {
			canvas.HandleTouchMove(p.touch(pos, p.prevCursor))
			p.prevCursor = pos
		}
	} else if p.touchDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		canvas.HandleTouchUp(p.touch(pos, p.prevCursor))
		p.touchDown = false
	}

	p.handleKeys(canvas)

	p.painter.Update(deltaTime)
	p.status.Update(deltaTime)
}

// touch builds the touch value for the gesture in flight.
func (p *PaintState) touch(pos, prev geometry.Point) shape.Touch {
	return shape.Touch{
		Pos:       pos,
		Prev:      prev,
		Origin:    p.origin,
		DoubleTap: p.doubleTap,
	}
}

func (p *PaintState) handleToolbarClick(x, y int) {
	canvas := p.painter.Canvas
	if mode, ok := p.toolbar.ModeAt(x, y); ok {
		canvas.SetDrawMode(mode)
		return
	}
	switch {
	case p.toolbar.LockButton.Contains(x, y):
		canvas.SetLocked(!canvas.IsLocked())
	case p.toolbar.MultiButton.Contains(x, y):
		canvas.SetMultiselect(!canvas.Multiselect())
	case p.toolbar.FillButton.Contains(x, y):
		p.painter.ToggleFill()
	}
}

func (p *PaintState) handleKeys(canvas *paint.Canvas) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete),
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		canvas.DeleteSelectedShapes()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if canvas.CurrentShape() != nil {
			canvas.FinishCurrentShape()
		} else {
			canvas.ClearSelectedShapes()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		canvas.MoveSelected(geometry.Pt(-config.ArrowMoveStep, 0))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		canvas.MoveSelected(geometry.Pt(config.ArrowMoveStep, 0))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		canvas.MoveSelected(geometry.Pt(0, -config.ArrowMoveStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		canvas.MoveSelected(geometry.Pt(0, config.ArrowMoveStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		p.painter.ToggleFill()
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		p.sm.SetState(NewHelpState(p.sm, p))
	}

	if !ebiten.IsKeyPressed(ebiten.KeyControl) {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		canvas.SelectAll()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		canvas.DuplicateSelectedShapes()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		p.painter.NewDocument("untitled")
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := p.painter.SaveDocument(context.Background()); err != nil {
			logrus.WithError(err).Error("Failed to save document")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		if err := p.painter.LoadLatestDocument(context.Background()); err != nil {
			logrus.WithError(err).Error("Failed to load document")
		}
	}
}

func (p *PaintState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	p.painter.Draw(screen)

	canvas := p.painter.Canvas
	p.toolbar.Draw(screen, canvas.DrawMode(), canvas.IsLocked(), canvas.Multiselect(), p.painter.FillVisible())
	p.status.Draw(screen, string(canvas.DrawMode()),
		len(canvas.Shapes()), len(canvas.SelectedShapes()),
		canvas.IsLocked(), canvas.Multiselect() || canvas.CtrlDown())
}

func (p *PaintState) Exit() {
	p.painter.Canvas.FinishCurrentShape()
}
