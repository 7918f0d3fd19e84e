// internal/ui/status_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-painter/internal/config"
	"go-painter/internal/document"
	"go-painter/internal/event"
)

const messageDuration = 2.5 // seconds a transient message stays visible

// StatusPanel draws the status strip at the bottom of the screen. It shows
// the current mode and shape counts, plus transient messages for document
// events.
type StatusPanel struct {
	face font.Face

	message     string
	messageLeft float64
}

// NewStatusPanel subscribes to document events on the dispatcher for
// transient messages.
func NewStatusPanel(face font.Face, dispatcher *event.Dispatcher) *StatusPanel {
	p := &StatusPanel{face: face}
	dispatcher.Subscribe(event.DocumentSaved, event.ListenerFunc(func(e event.Event) {
		p.ShowMessage("saved " + documentName(e.Data))
	}))
	dispatcher.Subscribe(event.DocumentLoaded, event.ListenerFunc(func(e event.Event) {
		p.ShowMessage("loaded " + documentName(e.Data))
	}))
	dispatcher.Subscribe(event.CanvasCleared, event.ListenerFunc(func(e event.Event) {
		p.ShowMessage("canvas cleared")
	}))
	return p
}

func documentName(data interface{}) string {
	if doc, ok := data.(*document.Document); ok && doc.Name != "" {
		return doc.Name
	}
	return "document"
}

// ShowMessage displays a transient message in the panel.
func (p *StatusPanel) ShowMessage(msg string) {
	p.message = msg
	p.messageLeft = messageDuration
}

// Update decays the transient message timer.
func (p *StatusPanel) Update(deltaTime float64) {
	if p.messageLeft > 0 {
		p.messageLeft -= deltaTime
		if p.messageLeft <= 0 {
			p.message = ""
		}
	}
}

// Draw renders the status strip with the current canvas summary.
func (p *StatusPanel) Draw(screen *ebiten.Image, mode string, shapeCount, selectedCount int, locked, multiselect bool) {
	top := float32(config.ScreenHeight - config.StatusHeight)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, config.StatusHeight, config.StatusColor, false)

	status := fmt.Sprintf("mode: %s   shapes: %d   selected: %d", mode, shapeCount, selectedCount)
	if locked {
		status += "   [locked]"
	}
	if multiselect {
		status += "   [multi-select]"
	}
	if p.message != "" {
		status += "   " + p.message
	}

	baseline := config.ScreenHeight - config.StatusHeight/2 + config.FontSize/2 - 2
	text.Draw(screen, status, p.face, config.ToolbarMarginX, baseline, config.StatusTextColor)
}
