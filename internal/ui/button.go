// internal/ui/button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-painter/internal/config"
)

// Button is a clickable UI button.
type Button struct {
	Rect  image.Rectangle
	Label string
}

// NewButton creates a button with the given rectangle and label.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Label: label}
}

// Contains reports whether the point is on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw renders the button, highlighted when active.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, active bool) {
	bg := config.ButtonColor
	if active {
		bg = config.ButtonActiveColor
	}

	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.ButtonBorderColor, true)

	bounds := text.BoundString(face, b.Label)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Label, face, tx, ty, config.ButtonTextColor)
}
