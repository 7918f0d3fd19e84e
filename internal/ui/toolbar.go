// internal/ui/toolbar.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-painter/internal/config"
	"go-painter/internal/paint"
)

// Toolbar is the strip of mode and toggle buttons at the top of the screen.
type Toolbar struct {
	modeButtons []*Button
	modes       []paint.Mode

	LockButton  *Button
	MultiButton *Button
	FillButton  *Button

	face font.Face
}

// NewToolbar lays out one button per draw mode plus the lock, multi-select
// and fill toggles.
func NewToolbar(face font.Face) *Toolbar {
	t := &Toolbar{face: face}

	x := config.ToolbarMarginX
	y := config.ToolbarMarginY
	w := config.ToolbarButtonWidth
	h := config.ToolbarButtonHeight

	for _, mode := range paint.Modes {
		t.modeButtons = append(t.modeButtons,
			NewButton(image.Rect(x, y, x+w, y+h), string(mode)))
		t.modes = append(t.modes, mode)
		x += w + config.ToolbarButtonSpacing
	}

	x += config.ToolbarButtonSpacing
	t.LockButton = NewButton(image.Rect(x, y, x+w, y+h), "lock")
	x += w + config.ToolbarButtonSpacing
	t.MultiButton = NewButton(image.Rect(x, y, x+w, y+h), "multi-select")
	x += w + config.ToolbarButtonSpacing
	t.FillButton = NewButton(image.Rect(x, y, x+w, y+h), "fill")

	return t
}

// Contains reports whether the point falls on the toolbar strip.
func (t *Toolbar) Contains(x, y int) bool {
	return y < config.ToolbarHeight
}

// ModeAt returns the draw mode of the mode button at the point, if any.
func (t *Toolbar) ModeAt(x, y int) (paint.Mode, bool) {
	for i, b := range t.modeButtons {
		if b.Contains(x, y) {
			return t.modes[i], true
		}
	}
	return "", false
}

// Draw renders the toolbar reflecting the canvas state.
func (t *Toolbar) Draw(screen *ebiten.Image, mode paint.Mode, locked, multiselect, fill bool) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ToolbarHeight, config.ToolbarColor, false)

	for i, b := range t.modeButtons {
		b.Draw(screen, t.face, t.modes[i] == mode)
	}
	t.LockButton.Draw(screen, t.face, locked)
	t.MultiButton.Draw(screen, t.face, multiselect)
	t.FillButton.Draw(screen, t.face, fill)
}
