// internal/app/painter.go
package app

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"go-painter/internal/defs"
	"go-painter/internal/document"
	"go-painter/internal/event"
	"go-painter/internal/paint"
	"go-painter/internal/shape"
	"go-painter/internal/store"
	"go-painter/internal/utils"
)

// Painter ties the canvas to persistence and app-level features like the
// colored fill overlay.
type Painter struct {
	Canvas     *paint.Canvas
	Dispatcher *event.Dispatcher
	Store      store.Store
	PRNG       *utils.PRNGService

	doc *document.Document

	showFill   bool
	fillColors map[shape.Shape]color.RGBA
}

// NewPainter creates the app object. A seed of 0 gives time-based
// randomness.
func NewPainter(st store.Store, seed int64) *Painter {
	dispatcher := event.NewDispatcher()
	prng := utils.NewPRNGService(seed)

	canvas := paint.NewCanvas(dispatcher)
	for mode, style := range defs.StyleLibrary {
		canvas.SetStyle(paint.Mode(mode), style)
	}

	p := &Painter{
		Canvas:     canvas,
		Dispatcher: dispatcher,
		Store:      st,
		PRNG:       prng,
		doc:        document.New("Untitled", prng.Rand()),
		fillColors: make(map[shape.Shape]color.RGBA),
	}

	dispatcher.Subscribe(event.ShapeRemoved, event.ListenerFunc(func(e event.Event) {
		if s, ok := e.Data.(shape.Shape); ok {
			delete(p.fillColors, s)
		}
	}))
	return p
}

// Document returns the document the canvas currently belongs to.
func (p *Painter) Document() *document.Document { return p.doc }

// Update advances canvas timers. Call once per frame.
func (p *Painter) Update(deltaTime float64) {
	p.Canvas.Update(deltaTime)
}

// FillVisible reports whether the colored area overlay is on.
func (p *Painter) FillVisible() bool { return p.showFill }

// ToggleFill switches the colored area overlay, assigning each shape a
// fresh random color when it turns on.
func (p *Painter) ToggleFill() bool {
	p.showFill = !p.showFill
	if p.showFill {
		p.fillColors = make(map[shape.Shape]color.RGBA)
	}
	return p.showFill
}

func (p *Painter) fillColor(s shape.Shape) color.RGBA {
	if clr, ok := p.fillColors[s]; ok {
		return clr
	}
	clr := color.RGBA{
		R: uint8(40 + p.PRNG.Intn(200)),
		G: uint8(40 + p.PRNG.Intn(200)),
		B: uint8(40 + p.PRNG.Intn(200)),
		A: 255,
	}
	p.fillColors[s] = clr
	return clr
}

// Draw renders the fill overlay (when enabled) under the shape outlines.
func (p *Painter) Draw(dst *ebiten.Image) {
	if p.showFill {
		for _, s := range p.Canvas.Shapes() {
			s.DrawFill(dst, p.fillColor(s))
		}
	}
	p.Canvas.Draw(dst)
}

// NewDocument clears the canvas and starts a fresh document.
func (p *Painter) NewDocument(name string) {
	p.Canvas.DeleteAllShapes(false)
	p.doc = document.New(name, p.PRNG.Rand())
	logrus.WithField("document_id", p.doc.ID).Info("New document")
}

// SaveDocument snapshots the canvas into the current document and persists
// it.
func (p *Painter) SaveDocument(ctx context.Context) error {
	p.Canvas.FinishCurrentShape()
	p.doc.Snapshot(p.Canvas.Shapes())
	if err := p.Store.Save(ctx, p.doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	p.Dispatcher.Dispatch(event.Event{Type: event.DocumentSaved, Data: p.doc})
	return nil
}

// LoadDocument replaces the canvas contents with a stored document.
func (p *Painter) LoadDocument(ctx context.Context, id string) error {
	doc, err := p.Store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	p.Canvas.DeleteAllShapes(false)
	for _, st := range doc.Shapes {
		if _, err := p.Canvas.CreateShapeFromState(st, true); err != nil {
			logrus.WithError(err).WithField("variant", st.Variant).Warn("Skipping invalid shape")
		}
	}
	p.doc = doc
	p.Dispatcher.Dispatch(event.Event{Type: event.DocumentLoaded, Data: doc})
	return nil
}

// LoadLatestDocument loads the most recently updated document, if any.
func (p *Painter) LoadLatestDocument(ctx context.Context) error {
	docs, err := p.Store.List(ctx)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no saved documents")
	}
	latest := docs[0]
	for _, doc := range docs[1:] {
		if doc.UpdatedAt.After(latest.UpdatedAt) {
			latest = doc
		}
	}
	return p.LoadDocument(ctx, latest.ID)
}
