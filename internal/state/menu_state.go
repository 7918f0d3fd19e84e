// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-painter/internal/app"
	"go-painter/internal/config"
	"go-painter/internal/ui"
)

// MenuState is the title screen shown at startup.
type MenuState struct {
	sm        *StateMachine
	painter   *app.Painter
	titleFace font.Face
	face      font.Face
}

func NewMenuState(sm *StateMachine, painter *app.Painter) *MenuState {
	return &MenuState{
		sm:        sm,
		painter:   painter,
		titleFace: ui.LoadFontFace(config.TitleFontSize),
		face:      ui.LoadFontFace(config.FontSize),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewPaintState(m.sm, m.painter))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "Painter", m.titleFace,
		config.ScreenWidth/2-50, config.ScreenHeight/2-20, config.ButtonTextColor)
	text.Draw(screen, "press space or click to start", m.face,
		config.ScreenWidth/2-95, config.ScreenHeight/2+20, config.StatusTextColor)
}

func (m *MenuState) Exit() {}
