// internal/state/help_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-painter/internal/config"
	"go-painter/internal/ui"
)

var _ State = (*HelpState)(nil)

// HelpState overlays the keyboard shortcuts on top of the previous state.
type HelpState struct {
	sm            *StateMachine
	previousState State
	titleFace     font.Face
	face          font.Face
}

func NewHelpState(sm *StateMachine, prevState State) *HelpState {
	return &HelpState{
		sm:            sm,
		previousState: prevState,
		titleFace:     ui.LoadFontFace(config.TitleFontSize),
		face:          ui.LoadFontFace(config.FontSize),
	}
}

func (s *HelpState) Enter() {}

func (s *HelpState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.previousState)
	}
}

var helpLines = []string{
	"drag               draw or move shapes",
	"hold               edit shape points",
	"double tap         close a polygon",
	"ctrl+click         multi-select",
	"delete             delete selection",
	"escape             finish shape / clear selection",
	"arrows             nudge selection",
	"ctrl+a / ctrl+d    select all / duplicate",
	"ctrl+s / ctrl+l    save / load document",
	"ctrl+n             new document",
	"f                  toggle fill",
}

func (s *HelpState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 160}, false)

	x := config.ScreenWidth/2 - 180
	y := config.ScreenHeight/2 - 20*len(helpLines)/2 - 40
	text.Draw(screen, "Shortcuts", s.titleFace, x, y, config.ButtonTextColor)
	for i, line := range helpLines {
		text.Draw(screen, line, s.face, x, y+40+20*i, config.StatusTextColor)
	}
}

func (s *HelpState) Exit() {}
