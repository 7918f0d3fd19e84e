// internal/app/painter_test.go
package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-painter/internal/event"
	"go-painter/internal/paint"
	"go-painter/internal/shape"
	"go-painter/internal/store/memory"
	"go-painter/pkg/geometry"
)

func newTestPainter() *Painter {
	return NewPainter(memory.NewStore(), 42)
}

func addCircle(p *Painter, x, y float32) *shape.Circle {
	s := shape.NewCircle(shape.DefaultStyle())
	s.HandleTouchDown(shape.Touch{Pos: geometry.Pt(x, y)})
	s.Finish()
	p.Canvas.AddShape(s)
	return s
}

func TestNewPainterStartsWithDocument(t *testing.T) {
	p := newTestPainter()
	require.NotNil(t, p.Document())
	assert.NotEmpty(t, p.Document().ID)
	assert.Equal(t, "Untitled", p.Document().Name)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	p := newTestPainter()
	ctx := context.Background()

	addCircle(p, 200, 200)
	addCircle(p, 400, 300)
	require.NoError(t, p.SaveDocument(ctx))
	id := p.Document().ID

	p.NewDocument("scratch")
	assert.Empty(t, p.Canvas.Shapes())
	assert.NotEqual(t, id, p.Document().ID)

	require.NoError(t, p.LoadDocument(ctx, id))
	assert.Len(t, p.Canvas.Shapes(), 2)
	assert.Equal(t, id, p.Document().ID)
}

func TestSaveFinishesCurrentShape(t *testing.T) {
	p := newTestPainter()
	p.Canvas.SetDrawMode(paint.ModePolygon)

	for _, pos := range []geometry.Point{
		geometry.Pt(100, 100), geometry.Pt(300, 100), geometry.Pt(200, 300),
	} {
		touch := shape.Touch{Pos: pos, Prev: pos, Origin: pos}
		p.Canvas.HandleTouchDown(touch)
		p.Canvas.HandleTouchUp(touch)
	}
	require.NotNil(t, p.Canvas.CurrentShape())

	require.NoError(t, p.SaveDocument(context.Background()))
	assert.Nil(t, p.Canvas.CurrentShape())
	require.Len(t, p.Document().Shapes, 1)
	assert.Equal(t, shape.VariantPolygon, p.Document().Shapes[0].Variant)
}

func TestLoadLatestDocument(t *testing.T) {
	p := newTestPainter()
	ctx := context.Background()

	assert.Error(t, p.LoadLatestDocument(ctx), "empty store")

	addCircle(p, 200, 200)
	require.NoError(t, p.SaveDocument(ctx))
	first := p.Document().ID

	p.NewDocument("second")
	addCircle(p, 300, 300)
	addCircle(p, 500, 300)
	require.NoError(t, p.SaveDocument(ctx))
	second := p.Document().ID

	p.NewDocument("scratch")
	require.NoError(t, p.LoadLatestDocument(ctx))
	assert.Equal(t, second, p.Document().ID)
	assert.NotEqual(t, first, p.Document().ID)
	assert.Len(t, p.Canvas.Shapes(), 2)
}

func TestLoadSkipsInvalidShapes(t *testing.T) {
	p := newTestPainter()
	ctx := context.Background()

	addCircle(p, 200, 200)
	require.NoError(t, p.SaveDocument(ctx))
	id := p.Document().ID

	// corrupt one snapshot in the stored document
	stored, err := p.Store.Get(ctx, id)
	require.NoError(t, err)
	stored.Shapes = append(stored.Shapes, &shape.State{Variant: "bogus"})
	require.NoError(t, p.Store.Save(ctx, stored))

	require.NoError(t, p.LoadDocument(ctx, id))
	assert.Len(t, p.Canvas.Shapes(), 1)
}

func TestSaveDispatchesEvent(t *testing.T) {
	p := newTestPainter()
	saved := 0
	p.Dispatcher.Subscribe(event.DocumentSaved, event.ListenerFunc(func(event.Event) {
		saved++
	}))

	require.NoError(t, p.SaveDocument(context.Background()))
	assert.Equal(t, 1, saved)
}

func TestToggleFill(t *testing.T) {
	p := newTestPainter()
	assert.False(t, p.FillVisible())
	assert.True(t, p.ToggleFill())
	assert.False(t, p.ToggleFill())
}

func TestFillColorStablePerShape(t *testing.T) {
	p := newTestPainter()
	s := addCircle(p, 200, 200)

	c1 := p.fillColor(s)
	c2 := p.fillColor(s)
	assert.Equal(t, c1, c2)
	assert.Equal(t, uint8(255), c1.A)

	// removing the shape drops its cached color
	p.Canvas.RemoveShape(s)
	assert.NotContains(t, p.fillColors, s)
}
